package schedule

import (
	"strings"
	"time"
)

// DateLayout is the ISO calendar date every holiday date is stored in
const DateLayout = "2006-01-02"

type HolidayType string

const (
	HolidayAcademic HolidayType = "academic"
	HolidayNational HolidayType = "national"
)

func ParseHolidayType(raw string) (HolidayType, bool) {
	switch HolidayType(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return HolidayAcademic, true
	case HolidayAcademic:
		return HolidayAcademic, true
	case HolidayNational:
		return HolidayNational, true
	}
	return "", false
}

type Holiday struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Date        string      `json:"date"`
	Type        HolidayType `json:"type"`
	Description string      `json:"description,omitempty"`
}

func (h Holiday) RecordID() string {
	return h.ID
}

// Day parses Date as a calendar day at midnight UTC
func (h Holiday) Day() (time.Time, bool) {
	return ParseDay(h.Date)
}

func ParseDay(raw string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type HolidayDraft struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func NewHolidayDraft() HolidayDraft {
	return HolidayDraft{Type: string(HolidayAcademic)}
}

func DraftFromHoliday(h Holiday) HolidayDraft {
	return HolidayDraft{
		Name:        h.Name,
		Date:        h.Date,
		Type:        string(h.Type),
		Description: h.Description,
	}
}

// Validate requires a name and a YYYY-MM-DD date. An empty type means
// academic.
func (d HolidayDraft) Validate() (Holiday, error) {
	verr := &ValidationError{}
	name := strings.TrimSpace(d.Name)
	date := strings.TrimSpace(d.Date)

	if name == "" {
		verr.Missing = append(verr.Missing, FieldName)
	}
	if date == "" {
		verr.Missing = append(verr.Missing, FieldDate)
	} else if _, ok := ParseDay(date); !ok {
		verr.invalid(FieldDate)
	}
	kind, ok := ParseHolidayType(d.Type)
	if !ok {
		verr.invalid(FieldType)
	}

	if verr.any() {
		return Holiday{}, verr
	}
	return Holiday{
		Name:        name,
		Date:        date,
		Type:        kind,
		Description: strings.TrimSpace(d.Description),
	}, nil
}
