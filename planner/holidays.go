package planner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Pjt727/classboard/schedule"
)

const calendarName = "Holiday Calendar"

// DatedHoliday is a holiday with its date rendered for display
type DatedHoliday struct {
	schedule.Holiday
	LongDate string `json:"long_date"`
	Relative string `json:"relative"`
}

func dated(holidays []schedule.Holiday, now time.Time) []DatedHoliday {
	out := make([]DatedHoliday, 0, len(holidays))
	for _, h := range holidays {
		d := DatedHoliday{Holiday: h}
		if day, ok := h.Day(); ok {
			d.LongDate = schedule.FormatLongDate(day)
			d.Relative = schedule.RelativeDate(day, now)
		}
		out = append(out, d)
	}
	return out
}

type HolidayView struct {
	Filter   schedule.HolidayFilter `json:"filter"`
	Holidays []DatedHoliday         `json:"holidays"`
	Upcoming []DatedHoliday         `json:"upcoming"`
	Stats    schedule.HolidayStats  `json:"stats"`
}

func (p *Planner) Holidays() []schedule.Holiday {
	return p.holidays.Get()
}

// HolidayView filters by filter while the upcoming list and stats always
// cover the whole calendar.
func (p *Planner) HolidayView(filter schedule.HolidayFilter, now time.Time) HolidayView {
	holidays := p.holidays.Get()
	return HolidayView{
		Filter:   filter,
		Holidays: dated(schedule.FilterHolidays(holidays, filter), now),
		Upcoming: dated(schedule.UpcomingHolidays(holidays, now, schedule.UpcomingLimit), now),
		Stats:    schedule.SummarizeHolidays(holidays),
	}
}

func (p *Planner) AddHoliday(ctx context.Context, draft schedule.HolidayDraft) (schedule.Holiday, error) {
	holiday, err := draft.Validate()
	if err != nil {
		return schedule.Holiday{}, err
	}
	_, err = p.holidays.Update(ctx, func(holidays []schedule.Holiday) []schedule.Holiday {
		holiday.ID = schedule.NewID(holidays)
		return schedule.Create(holidays, holiday)
	})
	p.logger.Info("Added holiday ", holiday.ID)
	p.publish(p.holidays.Key(), ChangeCreated, holiday.ID)
	return holiday, err
}

// UpdateHoliday replaces the holiday with id. An unknown id changes nothing
// and reports false.
func (p *Planner) UpdateHoliday(ctx context.Context, id string, draft schedule.HolidayDraft) (schedule.Holiday, bool, error) {
	holiday, err := draft.Validate()
	if err != nil {
		return schedule.Holiday{}, false, err
	}
	holiday.ID = id

	found := false
	_, err = p.holidays.Update(ctx, func(holidays []schedule.Holiday) []schedule.Holiday {
		var out []schedule.Holiday
		out, found = schedule.Replace(holidays, holiday)
		return out
	})
	if !found {
		p.logger.Debug("No holiday to update with id ", id)
		return schedule.Holiday{}, false, err
	}
	p.publish(p.holidays.Key(), ChangeUpdated, id)
	return holiday, true, err
}

func (p *Planner) DeleteHoliday(ctx context.Context, id string) error {
	found := false
	_, err := p.holidays.Update(ctx, func(holidays []schedule.Holiday) []schedule.Holiday {
		var out []schedule.Holiday
		out, found = schedule.Remove(holidays, id)
		return out
	})
	if !found {
		return fmt.Errorf("%w: holiday %s", ErrNotFound, id)
	}
	p.publish(p.holidays.Key(), ChangeDeleted, id)
	return err
}

// ImportHolidays adds every valid event of an ICS calendar. Events that fail
// validation, or that repeat the name and date of a holiday already on the
// calendar, are skipped.
func (p *Planner) ImportHolidays(ctx context.Context, r io.Reader) ([]schedule.Holiday, error) {
	drafts, err := schedule.ParseHolidaysICS(r)
	if err != nil {
		return nil, err
	}

	var added []schedule.Holiday
	_, err = p.holidays.Update(ctx, func(holidays []schedule.Holiday) []schedule.Holiday {
		for _, draft := range drafts {
			holiday, verr := draft.Validate()
			if verr != nil {
				p.logger.Warn("Skipping calendar event: ", verr)
				continue
			}
			if duplicate(holidays, holiday) {
				p.logger.Debug("Skipping duplicate calendar event ", holiday.Name)
				continue
			}
			holiday.ID = schedule.NewID(holidays)
			holidays = schedule.Create(holidays, holiday)
			added = append(added, holiday)
		}
		return holidays
	})
	p.logger.WithField("count", len(added)).Info("Imported holidays")
	if len(added) > 0 {
		p.publish(p.holidays.Key(), ChangeImported, "")
	}
	return added, err
}

func duplicate(holidays []schedule.Holiday, h schedule.Holiday) bool {
	for _, existing := range holidays {
		if existing.Name == h.Name && existing.Date == h.Date {
			return true
		}
	}
	return false
}

func (p *Planner) ExportHolidays(now time.Time) string {
	return schedule.ExportHolidaysICS(p.holidays.Get(), calendarName, now)
}
