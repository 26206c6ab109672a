package planner

import (
	"time"

	"github.com/Pjt727/classboard/schedule"
)

type SectionSummary struct {
	Section schedule.Section     `json:"section"`
	Stats   schedule.CourseStats `json:"stats"`
}

// Dashboard is the home page overview across every collection
type Dashboard struct {
	Sections     []SectionSummary `json:"sections"`
	TotalCourses int              `json:"total_courses"`
	TotalCredits int              `json:"total_credits"`
	WeeklyHours  int              `json:"weekly_hours"`
	Holidays     int              `json:"holidays"`
	Upcoming     []DatedHoliday   `json:"upcoming"`
}

func (p *Planner) Dashboard(now time.Time) Dashboard {
	d := Dashboard{Sections: make([]SectionSummary, 0, len(p.sections))}
	for _, s := range p.sections {
		stats := schedule.SummarizeCourses(p.courses[s.ID].Get())
		d.Sections = append(d.Sections, SectionSummary{Section: s, Stats: stats})
		d.TotalCourses += stats.Courses
		d.TotalCredits += stats.Credits
		d.WeeklyHours += stats.WeeklyHours
	}
	holidays := p.holidays.Get()
	d.Holidays = len(holidays)
	d.Upcoming = dated(schedule.UpcomingHolidays(holidays, now, schedule.UpcomingLimit), now)
	return d
}
