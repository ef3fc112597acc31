// Package store gives typed, JSON-encoded access to the keys of a chatzy
// profile: the identity registry, conversation logs, call history, groups,
// read-sets, the saved session and recent emojis.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/matheus3301/chatzy/internal/kv"
	"go.uber.org/zap"
)

const (
	usersKey        = "users"
	currentUserKey  = "current-user"
	recentEmojisKey = "recent-emojis"
)

// Store is the typed layer over a kv.Store. Every read-modify-write runs under
// one mutex so concurrent API calls and sync ticks cannot interleave on a key.
type Store struct {
	kv     kv.Store
	logger *zap.Logger
	now    func() time.Time
	newID  func() string

	mu sync.Mutex
}

// Option customizes a Store.
type Option func(*Store)

// WithClock overrides the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDs overrides the identifier generator.
func WithIDs(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New creates a Store over backend.
func New(backend kv.Store, logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		kv:     backend,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the store's notion of the current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// ConversationKey returns the canonical key for the unordered pair {a, b}.
func ConversationKey(a, b string) string {
	pair := []string{a, b}
	slices.Sort(pair)
	return pair[0] + "-" + pair[1]
}

func conversationStorageKey(key string) string { return "conversation-" + key }
func callHistoryKey(userID string) string      { return "call-history-" + userID }
func groupsKey(userID string) string           { return "groups-" + userID }
func readKey(userID string) string             { return "read-" + userID }

// decode reads key into a fresh T. A missing key yields the zero value; bytes
// that fail to decode yield ErrMalformed.
func decode[T any](ctx context.Context, s *Store, key string) (T, bool, error) {
	var v T
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil || !found {
		return v, false, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, true, fmt.Errorf("%w: key %q: %v", ErrMalformed, key, err)
	}
	return v, true, nil
}

// load is decode with malformed data recovered as the zero value. Corrupt
// local state must never make the application unusable.
func load[T any](ctx context.Context, s *Store, key string) (T, error) {
	v, _, err := decode[T](ctx, s, key)
	if err != nil {
		if isMalformed(err) {
			s.logger.Warn("malformed persisted data, using default", zap.String("key", key), zap.Error(err))
			var zero T
			return zero, nil
		}
		return v, err
	}
	return v, nil
}

func save(ctx context.Context, s *Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.kv.Set(ctx, key, raw)
}
