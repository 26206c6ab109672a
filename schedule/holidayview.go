package schedule

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// AllTypes disables holiday type filtering
const AllTypes = "all"

const UpcomingLimit = 3

type HolidayFilter struct {
	Search string `json:"search"`
	Type   string `json:"type"`
}

func (f HolidayFilter) Matches(h Holiday) bool {
	if f.Type != "" && f.Type != AllTypes && string(h.Type) != f.Type {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(h.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// FilterHolidays returns the matching holidays in ascending date order
func FilterHolidays(holidays []Holiday, f HolidayFilter) []Holiday {
	out := make([]Holiday, 0, len(holidays))
	for _, h := range holidays {
		if f.Matches(h) {
			out = append(out, h)
		}
	}
	SortByDate(out)
	return out
}

// SortByDate orders by calendar date, stable on equal dates. Dates that do
// not parse go last.
func SortByDate(holidays []Holiday) {
	slices.SortStableFunc(holidays, func(a, b Holiday) int {
		da, okA := a.Day()
		db, okB := b.Day()
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		}
		return da.Compare(db)
	})
}

// UpcomingHolidays returns up to limit holidays falling on now's calendar day
// or later, soonest first.
func UpcomingHolidays(holidays []Holiday, now time.Time, limit int) []Holiday {
	today := calendarDay(now)
	out := make([]Holiday, 0, limit)
	for _, h := range holidays {
		day, ok := h.Day()
		if ok && !day.Before(today) {
			out = append(out, h)
		}
	}
	SortByDate(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

type HolidayStats struct {
	Total    int `json:"total_holidays"`
	Academic int `json:"academic"`
	National int `json:"national"`
}

func SummarizeHolidays(holidays []Holiday) HolidayStats {
	stats := HolidayStats{Total: len(holidays)}
	for _, h := range holidays {
		switch h.Type {
		case HolidayAcademic:
			stats.Academic++
		case HolidayNational:
			stats.National++
		}
	}
	return stats
}

// DaysUntil counts whole calendar days from now's date to day. Both are read
// as calendar dates so DST shifts never change the count.
func DaysUntil(day time.Time, now time.Time) int {
	return int(calendarDay(day).Sub(calendarDay(now)).Hours() / 24)
}

// RelativeDate labels a holiday date relative to now.
//
//	< 0        Past
//	0          Today
//	1          Tomorrow
//	2..7       In N days
//	8..30      In ceil(N/7) weeks
//	> 30       In ceil(N/30) months
func RelativeDate(day time.Time, now time.Time) string {
	n := DaysUntil(day, now)
	switch {
	case n < 0:
		return "Past"
	case n == 0:
		return "Today"
	case n == 1:
		return "Tomorrow"
	case n <= 7:
		return fmt.Sprintf("In %d days", n)
	case n <= 30:
		return fmt.Sprintf("In %d weeks", ceilDiv(n, 7))
	}
	return fmt.Sprintf("In %d months", ceilDiv(n, 30))
}

// FormatLongDate renders "Monday, September 2, 2024"
func FormatLongDate(day time.Time) string {
	return day.Format("Monday, January 2, 2006")
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
