package store

import (
	"context"
	"fmt"
	"slices"
)

// MaxCallHistory is the number of call records kept per user.
const MaxCallHistory = 100

// RecordCall prepends rec to userID's history, evicting the oldest entries
// beyond MaxCallHistory. A missing ID or timestamp is filled in.
func (s *Store) RecordCall(ctx context.Context, userID string, rec CallRecord) (*CallRecord, error) {
	if err := validateCall(rec); err != nil {
		return nil, err
	}
	if rec.ID == "" {
		rec.ID = s.newID()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = s.now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := callHistoryKey(userID)
	history, err := load[[]CallRecord](ctx, s, key)
	if err != nil {
		return nil, err
	}
	history = append([]CallRecord{rec}, history...)
	if len(history) > MaxCallHistory {
		history = history[:MaxCallHistory]
	}
	if err := save(ctx, s, key, history); err != nil {
		return nil, err
	}
	return &rec, nil
}

// CallHistory returns userID's calls, newest first.
func (s *Store) CallHistory(ctx context.Context, userID string) ([]CallRecord, error) {
	history, err := load[[]CallRecord](ctx, s, callHistoryKey(userID))
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(history, func(a, b CallRecord) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return history, nil
}

// ClearCallHistory drops every call record of userID.
func (s *Store) ClearCallHistory(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Remove(ctx, callHistoryKey(userID))
}

func validateCall(r CallRecord) error {
	switch r.Type {
	case CallIncoming, CallOutgoing:
	default:
		return fmt.Errorf("%w: call type %q", ErrInvalidInput, r.Type)
	}
	switch r.Status {
	case CallCompleted, CallMissed, CallDeclined, CallInitiated:
	default:
		return fmt.Errorf("%w: call status %q", ErrInvalidInput, r.Status)
	}
	if r.ContactID == "" {
		return fmt.Errorf("%w: call without contact", ErrInvalidInput)
	}
	if r.Duration < 0 {
		return fmt.Errorf("%w: negative call duration", ErrInvalidInput)
	}
	return nil
}
