package store

import (
	"context"
	"fmt"
	"slices"
)

// MaxRecentEmojis bounds the recent-emoji list.
const MaxRecentEmojis = 20

// RecentEmojis returns recently used emojis, most recent first.
func (s *Store) RecentEmojis(ctx context.Context) ([]string, error) {
	return load[[]string](ctx, s, recentEmojisKey)
}

// AddRecentEmoji moves glyph to the front of the recent list.
func (s *Store) AddRecentEmoji(ctx context.Context, glyph string) ([]string, error) {
	if glyph == "" {
		return nil, fmt.Errorf("%w: empty emoji", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recent, err := load[[]string](ctx, s, recentEmojisKey)
	if err != nil {
		return nil, err
	}
	recent = slices.DeleteFunc(recent, func(e string) bool { return e == glyph })
	recent = append([]string{glyph}, recent...)
	if len(recent) > MaxRecentEmojis {
		recent = recent[:MaxRecentEmojis]
	}
	if err := save(ctx, s, recentEmojisKey, recent); err != nil {
		return nil, err
	}
	return recent, nil
}
