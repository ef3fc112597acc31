package store

import (
	"context"

	"go.uber.org/zap"
)

// SaveCurrentUser records u as the signed-in user of this profile.
func (s *Store) SaveCurrentUser(ctx context.Context, u User) error {
	return save(ctx, s, currentUserKey, u)
}

// CurrentUser returns the saved session user, or nil when nobody is signed in.
// A corrupt entry is removed so the next start is clean.
func (s *Store) CurrentUser(ctx context.Context) (*User, error) {
	u, found, err := decode[User](ctx, s, currentUserKey)
	if err != nil {
		if !isMalformed(err) {
			return nil, err
		}
		s.logger.Warn("discarding malformed saved session", zap.Error(err))
		return nil, s.kv.Remove(ctx, currentUserKey)
	}
	if !found {
		return nil, nil
	}
	return &u, nil
}

// ClearCurrentUser forgets the saved session.
func (s *Store) ClearCurrentUser(ctx context.Context) error {
	return s.kv.Remove(ctx, currentUserKey)
}
