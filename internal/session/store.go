package session

import (
	"context"
	"errors"
	"sync"
)

// Hook is notified with the new record after every Store mutation.
// A nil record means the session became absent.
type Hook func(ctx context.Context, rec *Record) error

// Store holds the current record and fans mutations out to hooks
// synchronously, in subscription order.
type Store struct {
	mu      sync.Mutex
	current *Record
	hooks   []Hook
}

func NewStore(initial *Record) *Store {
	return &Store{current: initial.Clone()}
}

func (s *Store) Subscribe(h Hook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, h)
}

// Current returns a copy of the record, nil when logged out.
func (s *Store) Current() *Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Set replaces the record. Passing nil is the same as Clear.
// Every hook runs even if an earlier one fails; the errors are joined.
func (s *Store) Set(ctx context.Context, rec *Record) error {
	s.mu.Lock()
	s.current = rec.Clone()
	hooks := append([]Hook(nil), s.hooks...)
	snapshot := s.current.Clone()
	s.mu.Unlock()

	var errs []error
	for _, h := range hooks {
		if err := h(ctx, snapshot.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Store) Clear(ctx context.Context) error {
	return s.Set(ctx, nil)
}
