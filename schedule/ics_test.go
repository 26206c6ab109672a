package schedule

import (
	"strings"
	"testing"
	"time"
)

func TestHolidaysSurviveICSRoundTrip(t *testing.T) {
	stamp := time.Date(2024, time.August, 1, 12, 0, 0, 0, time.UTC)
	holidays := SeedHolidays()

	payload := ExportHolidaysICS(holidays, "Holiday Calendar", stamp)
	if !strings.Contains(payload, "BEGIN:VCALENDAR") || strings.Count(payload, "BEGIN:VEVENT") != len(holidays) {
		t.Fatalf("unexpected calendar:\n%s", payload)
	}

	drafts, err := ParseHolidaysICS(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(drafts) != len(holidays) {
		t.Fatalf("expected %d events, got %d", len(holidays), len(drafts))
	}

	byName := map[string]HolidayDraft{}
	for _, d := range drafts {
		byName[d.Name] = d
	}
	for _, h := range holidays {
		d, ok := byName[h.Name]
		if !ok {
			t.Fatalf("missing %s after round trip", h.Name)
		}
		if d.Date != h.Date || d.Type != string(h.Type) {
			t.Fatalf("%s changed: %+v", h.Name, d)
		}
		if _, err := d.Validate(); err != nil {
			t.Fatalf("%s no longer validates: %v", h.Name, err)
		}
	}

	// exported in date order
	if first := drafts[0]; first.Name != "Labor Day" {
		t.Fatalf("first event mismatch: %s", first.Name)
	}
}

func TestExportSkipsUnparseableDates(t *testing.T) {
	payload := ExportHolidaysICS([]Holiday{{ID: "1", Name: "Broken", Date: "soon", Type: HolidayAcademic}}, "", time.Now())
	if strings.Contains(payload, "BEGIN:VEVENT") {
		t.Fatalf("broken holiday exported:\n%s", payload)
	}
}

func TestParseHolidaysICSSkipsIncompleteEvents(t *testing.T) {
	payload := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//EN",
		"BEGIN:VEVENT",
		"UID:a@test",
		"DTSTART;VALUE=DATE:20250704",
		"SUMMARY:Independence Day",
		"CATEGORIES:NATIONAL",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:b@test",
		"DTSTART:20250901T090000Z",
		"SUMMARY:Convocation",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:c@test",
		"SUMMARY:No date",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:d@test",
		"DTSTART;VALUE=DATE:20250101",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	drafts, err := ParseHolidaysICS(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %+v", drafts)
	}
	if drafts[0].Date != "2025-07-04" || drafts[0].Type != string(HolidayNational) {
		t.Fatalf("first draft mismatch: %+v", drafts[0])
	}
	if drafts[1].Date != "2025-09-01" || drafts[1].Type != string(HolidayAcademic) {
		t.Fatalf("second draft mismatch: %+v", drafts[1])
	}
}
