package schedule

import (
	"slices"
	"strings"
)

const DefaultCredits = 3

// credits outside this range are rejected by input surfaces only
const (
	MinCredits = 1
	MaxCredits = 6
)

// Weekdays are the only day labels a course may meet on, in display order
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func IsWeekday(day string) bool {
	return slices.Contains(Weekdays, day)
}

type Course struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Instructor string   `json:"instructor"`
	Room       string   `json:"room"`
	Time       string   `json:"time"`
	Days       []string `json:"days"`
	Credits    int      `json:"credits"`
}

func (c Course) RecordID() string {
	return c.ID
}

func (c Course) MeetsOn(day string) bool {
	return slices.Contains(c.Days, day)
}

// WeeklyHours counts one contact hour per credit per meeting day
func (c Course) WeeklyHours() int {
	return c.Credits * len(c.Days)
}

// CourseDraft is the editable field set of a course before validation
type CourseDraft struct {
	Name       string   `json:"name"`
	Instructor string   `json:"instructor"`
	Room       string   `json:"room"`
	Time       string   `json:"time"`
	Days       []string `json:"days"`
	Credits    int      `json:"credits"`
}

func NewCourseDraft() CourseDraft {
	return CourseDraft{Credits: DefaultCredits}
}

// DraftFromCourse fills a draft for editing an existing course
func DraftFromCourse(c Course) CourseDraft {
	return CourseDraft{
		Name:       c.Name,
		Instructor: c.Instructor,
		Room:       c.Room,
		Time:       c.Time,
		Days:       slices.Clone(c.Days),
		Credits:    c.Credits,
	}
}

// ToggleDay adds day to the draft or removes it if already selected
func (d *CourseDraft) ToggleDay(day string) {
	if i := slices.Index(d.Days, day); i >= 0 {
		d.Days = slices.Delete(d.Days, i, i+1)
		return
	}
	d.Days = append(d.Days, day)
}

// Validate checks required fields and returns the course the draft describes
// with an empty ID. A zero credit count becomes DefaultCredits.
func (d CourseDraft) Validate() (Course, error) {
	verr := &ValidationError{}
	name := strings.TrimSpace(d.Name)
	instructor := strings.TrimSpace(d.Instructor)
	room := strings.TrimSpace(d.Room)
	time := strings.TrimSpace(d.Time)

	if name == "" {
		verr.Missing = append(verr.Missing, FieldName)
	}
	if instructor == "" {
		verr.Missing = append(verr.Missing, FieldInstructor)
	}
	if room == "" {
		verr.Missing = append(verr.Missing, FieldRoom)
	}
	if time == "" {
		verr.Missing = append(verr.Missing, FieldTime)
	}

	days := make([]string, 0, len(d.Days))
	for _, day := range d.Days {
		day = strings.TrimSpace(day)
		if !IsWeekday(day) {
			verr.invalid(FieldDays)
			continue
		}
		if !slices.Contains(days, day) {
			days = append(days, day)
		}
	}
	if len(days) == 0 && !slices.Contains(verr.Invalid, FieldDays) {
		verr.Missing = append(verr.Missing, FieldDays)
	}

	credits := d.Credits
	if credits == 0 {
		credits = DefaultCredits
	}
	if credits < 0 {
		verr.invalid(FieldCredits)
	}

	if verr.any() {
		return Course{}, verr
	}
	return Course{
		Name:       name,
		Instructor: instructor,
		Room:       room,
		Time:       time,
		Days:       days,
		Credits:    credits,
	}, nil
}
