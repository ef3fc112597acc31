package chat

import (
	"context"

	"github.com/matheus3301/chatzy/internal/store"
	"go.uber.org/zap"
)

// RecordCall adds a finished call with contactID to the viewer's history.
// The contact's name and avatar are copied from the current contact list.
func (s *Service) RecordCall(ctx context.Context, contactID string, typ store.CallType, st store.CallStatus, seconds int) (*store.CallRecord, error) {
	u, e, err := s.session()
	if err != nil {
		return nil, err
	}
	c, err := findContact(e, contactID)
	if err != nil {
		return nil, err
	}
	rec, err := s.store.RecordCall(ctx, u.ID, store.CallRecord{
		ContactID:     c.ID,
		ContactName:   c.Name,
		ContactAvatar: c.Avatar,
		Type:          typ,
		Duration:      seconds,
		Status:        st,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("call recorded",
		zap.String("contact_id", c.ID),
		zap.String("type", string(typ)),
		zap.String("status", string(st)),
		zap.Int("duration", seconds),
	)
	return rec, nil
}

// CallHistory returns the viewer's calls, newest first.
func (s *Service) CallHistory(ctx context.Context) ([]store.CallRecord, error) {
	u, _, err := s.session()
	if err != nil {
		return nil, err
	}
	return s.store.CallHistory(ctx, u.ID)
}

// ClearCallHistory empties the viewer's call history.
func (s *Service) ClearCallHistory(ctx context.Context) error {
	u, _, err := s.session()
	if err != nil {
		return err
	}
	return s.store.ClearCallHistory(ctx, u.ID)
}
