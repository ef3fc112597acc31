package chat

import (
	"context"

	"github.com/matheus3301/chatzy/internal/store"
	"go.uber.org/zap"
)

// CreateGroup creates a group owned by the viewer.
func (s *Service) CreateGroup(ctx context.Context, ng store.NewGroup) (*store.GroupChat, error) {
	u, e, err := s.session()
	if err != nil {
		return nil, err
	}
	g, err := s.store.CreateGroup(ctx, u.ID, ng)
	if err != nil {
		return nil, err
	}
	s.logger.Info("group created", zap.String("group_id", g.ID), zap.Int("members", len(g.Members)))
	s.refresh(ctx, e)
	return g, nil
}

// Groups lists the groups the viewer belongs to, in creation order.
func (s *Service) Groups(ctx context.Context) ([]store.GroupChat, error) {
	u, _, err := s.session()
	if err != nil {
		return nil, err
	}
	return s.store.Groups(ctx, u.ID)
}

// RecentEmojis returns the profile's recently used emojis, most recent first.
func (s *Service) RecentEmojis(ctx context.Context) ([]string, error) {
	return s.store.RecentEmojis(ctx)
}

// AddRecentEmoji moves glyph to the front of the recents.
func (s *Service) AddRecentEmoji(ctx context.Context, glyph string) ([]string, error) {
	return s.store.AddRecentEmoji(ctx, glyph)
}
