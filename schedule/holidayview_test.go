package schedule

import (
	"slices"
	"testing"
	"time"
)

func TestRelativeDateBoundaries(t *testing.T) {
	now := time.Date(2025, time.March, 1, 15, 30, 0, 0, time.UTC)
	cases := []struct {
		days int
		want string
	}{
		{-1, "Past"},
		{-40, "Past"},
		{0, "Today"},
		{1, "Tomorrow"},
		{2, "In 2 days"},
		{7, "In 7 days"},
		{8, "In 2 weeks"},
		{14, "In 2 weeks"},
		{15, "In 3 weeks"},
		{30, "In 5 weeks"},
		{31, "In 2 months"},
		{60, "In 2 months"},
		{61, "In 3 months"},
	}
	for _, tc := range cases {
		day := time.Date(2025, time.March, 1+tc.days, 0, 0, 0, 0, time.UTC)
		if got := RelativeDate(day, now); got != tc.want {
			t.Errorf("%d days: got %q want %q", tc.days, got, tc.want)
		}
	}
}

func TestRelativeDateUsesCalendarDays(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	// 23:00 local is already the next day in UTC
	now := time.Date(2025, time.March, 1, 23, 0, 0, 0, loc)
	today, _ := ParseDay("2025-03-01")
	tomorrow, _ := ParseDay("2025-03-02")
	if got := RelativeDate(today, now); got != "Today" {
		t.Fatalf("expected Today, got %q", got)
	}
	if got := RelativeDate(tomorrow, now); got != "Tomorrow" {
		t.Fatalf("expected Tomorrow, got %q", got)
	}
}

func TestFilterHolidaysIsDateOrdered(t *testing.T) {
	holidays := SeedHolidays()
	filters := []HolidayFilter{
		{},
		{Type: AllTypes},
		{Type: string(HolidayAcademic)},
		{Type: string(HolidayNational)},
		{Search: "day"},
		{Search: "BREAK", Type: string(HolidayAcademic)},
	}
	for _, f := range filters {
		got := FilterHolidays(holidays, f)
		for i := 1; i < len(got); i++ {
			prev, _ := got[i-1].Day()
			cur, _ := got[i].Day()
			if cur.Before(prev) {
				t.Fatalf("filter %+v out of order at %d: %s before %s", f, i, got[i-1].Date, got[i].Date)
			}
		}
		for _, h := range got {
			if !f.Matches(h) {
				t.Fatalf("filter %+v let %s through", f, h.Name)
			}
		}
	}
}

func TestFilterHolidaysSortsRealDates(t *testing.T) {
	holidays := SeedHolidays()
	all := FilterHolidays(holidays, HolidayFilter{})
	// Finals Week is stored after Memorial Day but falls first
	var order []string
	for _, h := range all {
		if h.Name == "Finals Week" || h.Name == "Memorial Day" {
			order = append(order, h.Name)
		}
	}
	if !slices.Equal(order, []string{"Finals Week", "Memorial Day"}) {
		t.Fatalf("unexpected order: %v", order)
	}

	academic := FilterHolidays(holidays, HolidayFilter{Type: "academic", Search: "break"})
	var got []string
	for _, h := range academic {
		got = append(got, h.Name)
	}
	want := []string{"Fall Break", "Thanksgiving Break", "Christmas Break", "Spring Break"}
	if !slices.Equal(got, want) {
		t.Fatalf("academic breaks mismatch: %v", got)
	}
}

func TestFilterHolidaysDoesNotReorderInput(t *testing.T) {
	holidays := SeedHolidays()
	FilterHolidays(holidays, HolidayFilter{})
	if holidays[7].Name != "Finals Week" {
		t.Fatalf("input was reordered")
	}
}

func TestUnparseableDatesSortLast(t *testing.T) {
	holidays := []Holiday{
		{ID: "1", Name: "Broken", Date: "someday"},
		{ID: "2", Name: "Real", Date: "2025-01-01"},
	}
	got := FilterHolidays(holidays, HolidayFilter{})
	if got[0].Name != "Real" || got[1].Name != "Broken" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestUpcomingHolidays(t *testing.T) {
	holidays := SeedHolidays()
	now := time.Date(2025, time.May, 5, 18, 0, 0, 0, time.UTC)

	upcoming := UpcomingHolidays(holidays, now, UpcomingLimit)
	var got []string
	for _, h := range upcoming {
		got = append(got, h.Name)
	}
	// Finals Week is today and still counts
	want := []string{"Finals Week", "Memorial Day", "Summer Session Begins"}
	if !slices.Equal(got, want) {
		t.Fatalf("upcoming mismatch: %v", got)
	}

	late := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	if len(UpcomingHolidays(holidays, late, UpcomingLimit)) != 0 {
		t.Fatalf("expected nothing upcoming")
	}
}

func TestSummarizeHolidays(t *testing.T) {
	stats := SummarizeHolidays(SeedHolidays())
	if stats != (HolidayStats{Total: 10, Academic: 6, National: 4}) {
		t.Fatalf("stats mismatch: %+v", stats)
	}
}

func TestFormatLongDate(t *testing.T) {
	day, _ := ParseDay("2024-09-02")
	if got := FormatLongDate(day); got != "Monday, September 2, 2024" {
		t.Fatalf("format mismatch: %s", got)
	}
}
