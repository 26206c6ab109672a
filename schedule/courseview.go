package schedule

import (
	"slices"
	"strings"
)

// AllDays disables day filtering
const AllDays = "all"

type ViewMode string

const (
	ViewWeekly ViewMode = "weekly"
	ViewTable  ViewMode = "table"
)

func ParseViewMode(raw string) (ViewMode, bool) {
	switch ViewMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ViewWeekly:
		return ViewWeekly, true
	// daily and monthly are aliases of the table
	case ViewTable, "daily", "monthly":
		return ViewTable, true
	}
	return "", false
}

type CourseFilter struct {
	Search string `json:"search"`
	Day    string `json:"day"`
}

func (f CourseFilter) Matches(c Course) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Name), term) &&
			!strings.Contains(strings.ToLower(c.Instructor), term) {
			return false
		}
	}
	if f.Day != "" && f.Day != AllDays && !c.MeetsOn(f.Day) {
		return false
	}
	return true
}

// FilterCourses keeps collection order, which is also the table order
func FilterCourses(courses []Course, f CourseFilter) []Course {
	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

type DayBucket struct {
	Day     string   `json:"day"`
	Courses []Course `json:"courses"`
}

// WeeklyView groups already filtered courses under each weekday. Within a
// day courses are ordered by their time text compared byte by byte, so
// "10:00 AM" lands before "9:00 AM". Ties keep collection order.
func WeeklyView(filtered []Course) []DayBucket {
	buckets := make([]DayBucket, 0, len(Weekdays))
	for _, day := range Weekdays {
		var meeting []Course
		for _, c := range filtered {
			if c.MeetsOn(day) {
				meeting = append(meeting, c)
			}
		}
		slices.SortStableFunc(meeting, func(a, b Course) int {
			return strings.Compare(a.Time, b.Time)
		})
		if meeting == nil {
			meeting = []Course{}
		}
		buckets = append(buckets, DayBucket{Day: day, Courses: meeting})
	}
	return buckets
}

type CourseStats struct {
	Courses     int `json:"total_courses"`
	Credits     int `json:"total_credits"`
	WeeklyHours int `json:"weekly_hours"`
}

func SummarizeCourses(courses []Course) CourseStats {
	stats := CourseStats{Courses: len(courses)}
	for _, c := range courses {
		stats.Credits += c.Credits
		stats.WeeklyHours += c.WeeklyHours()
	}
	return stats
}
