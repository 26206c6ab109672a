package schedule

import (
	"slices"

	"github.com/google/uuid"
)

// Record is anything kept in a persisted collection and addressed by id
type Record interface {
	Course | Holiday
	RecordID() string
}

// NewID returns a uuid not already used by any record in records
func NewID[T Record](records []T) string {
	for {
		id := uuid.NewString()
		if !slices.ContainsFunc(records, func(r T) bool { return r.RecordID() == id }) {
			return id
		}
	}
}

// Create returns a copy of records with rec appended. The caller has already
// given rec a fresh id.
func Create[T Record](records []T, rec T) []T {
	out := make([]T, 0, len(records)+1)
	out = append(out, records...)
	return append(out, rec)
}

// Replace swaps the record sharing rec's id, keeping its position. An
// unknown id leaves the collection unchanged and reports false.
func Replace[T Record](records []T, rec T) ([]T, bool) {
	i := slices.IndexFunc(records, func(r T) bool { return r.RecordID() == rec.RecordID() })
	if i < 0 {
		return records, false
	}
	out := slices.Clone(records)
	out[i] = rec
	return out, true
}

// Remove drops every record with id and reports whether one existed
func Remove[T Record](records []T, id string) ([]T, bool) {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if r.RecordID() != id {
			out = append(out, r)
		}
	}
	return out, len(out) != len(records)
}

// Find returns the record with id
func Find[T Record](records []T, id string) (T, bool) {
	i := slices.IndexFunc(records, func(r T) bool { return r.RecordID() == id })
	if i < 0 {
		var zero T
		return zero, false
	}
	return records[i], true
}
