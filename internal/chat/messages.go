package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/matheus3301/chatzy/internal/bus"
	"github.com/matheus3301/chatzy/internal/store"
	"go.uber.org/zap"
)

// ViewMessage is a message as seen by the viewer.
type ViewMessage struct {
	Message store.Message `json:"message"`
	IsOwn   bool          `json:"isOwn"`
}

// MessageAppended is the payload of a message.appended event.
type MessageAppended struct {
	ConversationID string        `json:"conversationId"`
	Message        store.Message `json:"message"`
}

// FormatFileSize renders a byte count the way attachments are labelled.
func FormatFileSize(n int64) string {
	return fmt.Sprintf("%.2f MB", float64(n)/1024/1024)
}

// conversation loads the log the viewer shares with id, which names either
// another user or a group the viewer belongs to.
func (s *Service) conversation(ctx context.Context, viewer store.User, id string) ([]store.Message, error) {
	if store.IsGroupID(id) {
		if _, err := s.store.FindGroup(ctx, viewer.ID, id); err != nil {
			return nil, err
		}
		return s.store.LoadGroup(ctx, id)
	}
	if _, err := s.store.FindUserByID(ctx, id); err != nil {
		return nil, err
	}
	return s.store.LoadAll(ctx, viewer.ID, id)
}

// Conversation returns the log shared with contactID, oldest first.
func (s *Service) Conversation(ctx context.Context, contactID string) ([]ViewMessage, error) {
	u, _, err := s.session()
	if err != nil {
		return nil, err
	}
	log, err := s.conversation(ctx, u, contactID)
	if err != nil {
		return nil, err
	}
	out := make([]ViewMessage, len(log))
	for i, m := range log {
		out[i] = ViewMessage{Message: m, IsOwn: m.SenderID == u.ID}
	}
	return out, nil
}

// MarkRead adds every message of the conversation with contactID not sent by
// the viewer to the viewer's read-set and rebuilds the contact list. It
// returns how many messages were newly marked.
func (s *Service) MarkRead(ctx context.Context, contactID string) (int, error) {
	u, e, err := s.session()
	if err != nil {
		return 0, err
	}
	log, err := s.conversation(ctx, u, contactID)
	if err != nil {
		return 0, err
	}
	var ids []string
	for _, m := range log {
		if m.SenderID != u.ID {
			ids = append(ids, m.ID)
		}
	}
	added, err := s.store.MarkRead(ctx, u.ID, ids)
	if err != nil {
		return 0, err
	}
	s.refresh(ctx, e)
	return added, nil
}

// SendMessage appends a message from the viewer to the conversation with a
// user or group.
func (s *Service) SendMessage(ctx context.Context, to string, c store.Content) (*store.Message, error) {
	u, e, err := s.session()
	if err != nil {
		return nil, err
	}
	if t, ok := c.(store.Text); ok && strings.TrimSpace(t.Body) == "" {
		return nil, fmt.Errorf("%w: message is empty", store.ErrInvalidInput)
	}

	m := s.store.NewMessage(u, c)
	if store.IsGroupID(to) {
		if _, err := s.store.FindGroup(ctx, u.ID, to); err != nil {
			return nil, err
		}
		err = s.store.AppendGroup(ctx, to, m)
	} else {
		if _, err := s.store.FindUserByID(ctx, to); err != nil {
			return nil, err
		}
		err = s.store.Append(ctx, u.ID, to, m)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug("message sent",
		zap.String("to", to),
		zap.String("msg_id", m.ID),
		zap.String("type", string(m.Kind())),
	)
	s.bus.Publish(bus.NewEvent(bus.KindMessageAppended, MessageAppended{ConversationID: to, Message: m}))
	s.refresh(ctx, e)
	return &m, nil
}
