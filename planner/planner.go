// Package planner ties the persisted course sections and the holiday calendar
// together. Every mutation validates a draft, applies the record operation as
// one atomic slice update, then publishes a Change to subscribers.
package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Pjt727/classboard/data/kv"
	"github.com/Pjt727/classboard/data/persist"
	"github.com/Pjt727/classboard/schedule"
	log "github.com/sirupsen/logrus"
)

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrNotFound       = errors.New("record not found")
)

type Planner struct {
	sections []schedule.Section
	courses  map[string]*persist.Slice[[]schedule.Course]
	holidays *persist.Slice[[]schedule.Holiday]
	broker   *Broker
	logger   *log.Entry
	clock    func() time.Time
}

// New opens one slice per section plus the holiday slice, each seeded with
// its default records when the store has nothing usable.
func New(ctx context.Context, store kv.Store, logger *log.Entry) *Planner {
	if logger == nil {
		logger = log.WithField("job", "planner")
	}
	p := &Planner{
		sections: schedule.Sections(),
		courses:  map[string]*persist.Slice[[]schedule.Course]{},
		broker:   NewBroker(),
		logger:   logger,
		clock:    time.Now,
	}
	for _, s := range p.sections {
		p.courses[s.ID] = persist.Open(ctx, store, s.StorageKey(), s.Seed, logger)
	}
	p.holidays = persist.Open(ctx, store, schedule.HolidaysKey, schedule.SeedHolidays(), logger)
	return p
}

func (p *Planner) Sections() []schedule.Section {
	return p.sections
}

func (p *Planner) Section(id string) (schedule.Section, error) {
	for _, s := range p.sections {
		if s.ID == id {
			return s, nil
		}
	}
	return schedule.Section{}, fmt.Errorf("%w: %s", ErrUnknownSection, id)
}

func (p *Planner) Broker() *Broker {
	return p.broker
}

func (p *Planner) slice(sectionID string) (*persist.Slice[[]schedule.Course], error) {
	s, ok := p.courses[sectionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, sectionID)
	}
	return s, nil
}

func (p *Planner) publish(key string, kind ChangeKind, id string) {
	p.broker.Publish(Change{Key: key, Kind: kind, ID: id, At: p.clock().UTC()})
}

// Reset restores the collection under key to its seed records. key is a
// section id or schedule.HolidaysKey.
func (p *Planner) Reset(ctx context.Context, key string) error {
	if key == schedule.HolidaysKey {
		err := p.holidays.Set(ctx, schedule.SeedHolidays())
		p.publish(p.holidays.Key(), ChangeReset, "")
		return err
	}
	section, err := p.Section(key)
	if err != nil {
		return err
	}
	slice, err := p.slice(key)
	if err != nil {
		return err
	}
	err = slice.Set(ctx, section.Seed)
	p.publish(slice.Key(), ChangeReset, "")
	return err
}
