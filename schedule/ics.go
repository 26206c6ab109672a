package schedule

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

const icsProductID = "-//Pjt727//classboard//EN"

// ExportHolidaysICS renders holidays as all-day VEVENTs. The holiday type is
// carried in CATEGORIES so an import can restore it. Holidays whose date
// does not parse are skipped.
func ExportHolidaysICS(holidays []Holiday, calendarName string, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	if calendarName != "" {
		cal.SetXWRCalName(calendarName)
	}

	sorted := append([]Holiday(nil), holidays...)
	SortByDate(sorted)
	for _, h := range sorted {
		day, ok := h.Day()
		if !ok {
			continue
		}
		event := cal.AddEvent(h.ID + "@classboard")
		event.SetDtStampTime(stamp.UTC())
		event.SetAllDayStartAt(day)
		event.SetAllDayEndAt(day.AddDate(0, 0, 1))
		event.SetSummary(h.Name)
		if h.Description != "" {
			event.SetDescription(h.Description)
		}
		event.AddProperty(ics.ComponentPropertyCategories, string(h.Type))
	}
	return cal.Serialize()
}

// ParseHolidaysICS reads VEVENTs back into holiday drafts. Events without a
// summary or a readable start date are skipped.
func ParseHolidaysICS(r io.Reader) ([]HolidayDraft, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parse ics: %w", err)
	}

	var drafts []HolidayDraft
	for _, event := range cal.Events() {
		name := sanitize(propertyValue(event.GetProperty(ics.ComponentPropertySummary)))
		if name == "" {
			continue
		}
		day, ok := parseICSDay(propertyValue(event.GetProperty(ics.ComponentPropertyDtStart)))
		if !ok {
			continue
		}

		kind := HolidayAcademic
		categories := strings.ToLower(propertyValue(event.GetProperty(ics.ComponentPropertyCategories)))
		if strings.Contains(categories, string(HolidayNational)) {
			kind = HolidayNational
		}

		drafts = append(drafts, HolidayDraft{
			Name:        name,
			Date:        day.Format(DateLayout),
			Type:        string(kind),
			Description: strings.TrimSpace(propertyValue(event.GetProperty(ics.ComponentPropertyDescription))),
		})
	}
	return drafts, nil
}

// only the date part matters for a holiday, whatever form DTSTART takes
func parseICSDay(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < 8 {
		return time.Time{}, false
	}
	day, err := time.Parse("20060102", trimmed[:8])
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

func propertyValue(property *ics.IANAProperty) string {
	if property == nil {
		return ""
	}
	return property.Value
}

func sanitize(value string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(value)), " ")
}
