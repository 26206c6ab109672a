// Package persist keeps a typed value in memory while mirroring every write
// to one key of a kv.Store, so the value survives restarts.
//
// A Slice serializes writers inside this process only. Two processes writing
// the same key are not coordinated and the last write to land wins.
package persist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Pjt727/classboard/data/kv"
	log "github.com/sirupsen/logrus"
)

// ErrNotPersisted wraps any failure to write the in-memory value to the
// store. The in-memory value has already changed when it is returned.
var ErrNotPersisted = errors.New("value not persisted")

type Slice[T any] struct {
	key    string
	store  kv.Store
	logger *log.Entry

	mu    sync.RWMutex
	value T
}

// Open loads key from store. Anything other than a decodable value (missing
// key, unreadable store, corrupted or differently shaped payload) falls back
// to def, which is then written back on a best-effort basis. Open never fails.
func Open[T any](ctx context.Context, store kv.Store, key string, def T, logger *log.Entry) *Slice[T] {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	s := &Slice[T]{
		key:    key,
		store:  store,
		logger: logger.WithField("key", key),
	}

	value, ok := s.load(ctx)
	if ok {
		s.value = value
		return s
	}

	s.value = def
	if err := s.persist(ctx, def); err != nil {
		s.logger.Warn("Could not seed default value: ", err)
	}
	return s
}

func (s *Slice[T]) load(ctx context.Context) (T, bool) {
	var value T
	raw, err := s.store.Get(ctx, s.key)
	if errors.Is(err, kv.ErrNotFound) {
		s.logger.Debug("Nothing stored yet, using default")
		return value, false
	}
	if err != nil {
		s.logger.Warn("Could not read stored value, using default: ", err)
		return value, false
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		s.logger.Debug("Stored value is empty, using default")
		return value, false
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		s.logger.Warn("Stored value is unreadable, using default: ", err)
		var zero T
		return zero, false
	}
	return value, true
}

func (s *Slice[T]) Key() string {
	return s.key
}

// Get returns the latest value written through Set or Update
func (s *Slice[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the in-memory value and then persists it. A returned error
// wraps ErrNotPersisted; the new value is kept regardless.
func (s *Slice[T]) Set(ctx context.Context, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	return s.persist(ctx, value)
}

// Update applies fn to the current value and stores the result as one atomic
// step with respect to other callers of this Slice.
func (s *Slice[T]) Update(ctx context.Context, fn func(T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = fn(s.value)
	return s.value, s.persist(ctx, s.value)
}

func (s *Slice[T]) persist(ctx context.Context, value T) error {
	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("Could not encode value: ", err)
		return fmt.Errorf("%w: encode %s: %v", ErrNotPersisted, s.key, err)
	}
	if err := s.store.Set(ctx, s.key, payload); err != nil {
		s.logger.Error("Could not write value: ", err)
		return fmt.Errorf("%w: write %s: %v", ErrNotPersisted, s.key, err)
	}
	return nil
}
