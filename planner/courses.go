package planner

import (
	"context"
	"fmt"

	"github.com/Pjt727/classboard/schedule"
)

type CourseView struct {
	Section schedule.Section      `json:"section"`
	Filter  schedule.CourseFilter `json:"filter"`
	Courses []schedule.Course     `json:"courses"`
	Weekly  []schedule.DayBucket  `json:"weekly,omitempty"`
	Stats   schedule.CourseStats  `json:"stats"`
}

func (p *Planner) Courses(sectionID string) ([]schedule.Course, error) {
	slice, err := p.slice(sectionID)
	if err != nil {
		return nil, err
	}
	return slice.Get(), nil
}

// CourseView derives the table, the weekly grid and the stats of the
// filtered courses in one pass over the current collection.
func (p *Planner) CourseView(sectionID string, filter schedule.CourseFilter) (CourseView, error) {
	section, err := p.Section(sectionID)
	if err != nil {
		return CourseView{}, err
	}
	courses, err := p.Courses(sectionID)
	if err != nil {
		return CourseView{}, err
	}
	filtered := schedule.FilterCourses(courses, filter)
	return CourseView{
		Section: section,
		Filter:  filter,
		Courses: filtered,
		Weekly:  schedule.WeeklyView(filtered),
		Stats:   schedule.SummarizeCourses(filtered),
	}, nil
}

// AddCourse validates draft and appends it under a fresh id. A
// persist.ErrNotPersisted error still returns the created course.
func (p *Planner) AddCourse(ctx context.Context, sectionID string, draft schedule.CourseDraft) (schedule.Course, error) {
	slice, err := p.slice(sectionID)
	if err != nil {
		return schedule.Course{}, err
	}
	course, err := draft.Validate()
	if err != nil {
		return schedule.Course{}, err
	}

	_, err = slice.Update(ctx, func(courses []schedule.Course) []schedule.Course {
		course.ID = schedule.NewID(courses)
		return schedule.Create(courses, course)
	})
	p.logger.WithField("section", sectionID).Info("Added course ", course.ID)
	p.publish(slice.Key(), ChangeCreated, course.ID)
	return course, err
}

// UpdateCourse replaces the course with id. An unknown id changes nothing
// and reports false.
func (p *Planner) UpdateCourse(ctx context.Context, sectionID string, id string, draft schedule.CourseDraft) (schedule.Course, bool, error) {
	slice, err := p.slice(sectionID)
	if err != nil {
		return schedule.Course{}, false, err
	}
	course, err := draft.Validate()
	if err != nil {
		return schedule.Course{}, false, err
	}
	course.ID = id

	found := false
	_, err = slice.Update(ctx, func(courses []schedule.Course) []schedule.Course {
		var out []schedule.Course
		out, found = schedule.Replace(courses, course)
		return out
	})
	if !found {
		p.logger.WithField("section", sectionID).Debug("No course to update with id ", id)
		return schedule.Course{}, false, err
	}
	p.publish(slice.Key(), ChangeUpdated, id)
	return course, true, err
}

func (p *Planner) DeleteCourse(ctx context.Context, sectionID string, id string) error {
	slice, err := p.slice(sectionID)
	if err != nil {
		return err
	}

	found := false
	_, err = slice.Update(ctx, func(courses []schedule.Course) []schedule.Course {
		var out []schedule.Course
		out, found = schedule.Remove(courses, id)
		return out
	})
	if !found {
		return fmt.Errorf("%w: course %s in %s", ErrNotFound, id, sectionID)
	}
	p.publish(slice.Key(), ChangeDeleted, id)
	return err
}
