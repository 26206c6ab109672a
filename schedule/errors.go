package schedule

import (
	"errors"
	"slices"
	"strings"
)

// ErrValidation is matched by every *ValidationError
var ErrValidation = errors.New("please fill in all required fields")

type Field string

const (
	FieldName       Field = "name"
	FieldInstructor Field = "instructor"
	FieldRoom       Field = "room"
	FieldTime       Field = "time"
	FieldDays       Field = "days"
	FieldCredits    Field = "credits"
	FieldDate       Field = "date"
	FieldType       Field = "type"
)

// ValidationError lists the draft fields that stopped a submit. Nothing is
// mutated when a draft fails validation.
type ValidationError struct {
	Missing []Field `json:"missing,omitempty"`
	Invalid []Field `json:"invalid,omitempty"`
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+joinFields(e.Missing))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid "+joinFields(e.Invalid))
	}
	return ErrValidation.Error() + " (" + strings.Join(parts, "; ") + ")"
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) invalid(f Field) {
	if !slices.Contains(e.Invalid, f) {
		e.Invalid = append(e.Invalid, f)
	}
}

func (e *ValidationError) any() bool {
	return len(e.Missing) > 0 || len(e.Invalid) > 0
}

func joinFields(fields []Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
