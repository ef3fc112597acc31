package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Append adds m to the end of the log shared by a and b. There is no
// deduplication: appending the same message twice stores it twice.
func (s *Store) Append(ctx context.Context, a, b string, m Message) error {
	return s.appendLog(ctx, conversationStorageKey(ConversationKey(a, b)), m)
}

// LoadAll returns the full history between a and b, oldest first.
func (s *Store) LoadAll(ctx context.Context, a, b string) ([]Message, error) {
	log, _, err := s.loadLog(ctx, conversationStorageKey(ConversationKey(a, b)))
	return log, err
}

// AppendGroup adds m to a group's shared log.
func (s *Store) AppendGroup(ctx context.Context, groupID string, m Message) error {
	return s.appendLog(ctx, conversationStorageKey(groupID), m)
}

// LoadGroup returns a group's full history, oldest first.
func (s *Store) LoadGroup(ctx context.Context, groupID string) ([]Message, error) {
	log, _, err := s.loadLog(ctx, conversationStorageKey(groupID))
	return log, err
}

func (s *Store) appendLog(ctx context.Context, key string, m Message) error {
	if m.Content == nil {
		return fmt.Errorf("%w: message has no content", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log, raw, err := s.loadLog(ctx, key)
	if err != nil {
		return err
	}
	if raw != nil {
		// The stored bytes are not a list at all. Keep them aside before
		// the fresh log replaces them.
		backup := fmt.Sprintf("%s.corrupt-%d", key, s.now().UnixNano())
		if err := s.kv.Set(ctx, backup, raw); err != nil {
			return fmt.Errorf("back up malformed log %q: %w", key, err)
		}
		s.logger.Warn("malformed conversation log moved aside",
			zap.String("key", key), zap.String("backup", backup))
	}
	return save(ctx, s, key, append(log, m))
}

// loadLog decodes a conversation log entry by entry. Entries that fail to
// decode are skipped so one bad message cannot hide the rest. When the value
// is not a JSON array the raw bytes are returned with an empty log.
func (s *Store) loadLog(ctx context.Context, key string) ([]Message, []byte, error) {
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil || !found {
		return nil, nil, err
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.logger.Warn("malformed conversation log, using empty history",
			zap.String("key", key), zap.Error(err))
		return nil, raw, nil
	}
	log := make([]Message, 0, len(entries))
	for i, e := range entries {
		var m Message
		if err := json.Unmarshal(e, &m); err != nil {
			s.logger.Warn("skipping malformed message",
				zap.String("key", key), zap.Int("index", i), zap.Error(err))
			continue
		}
		log = append(log, m)
	}
	return log, nil, nil
}

// NewMessage stamps content with a fresh ID, the sender and the current time.
func (s *Store) NewMessage(sender User, c Content) Message {
	return Message{
		ID:         s.newID(),
		SenderID:   sender.ID,
		SenderName: sender.Name,
		Timestamp:  s.now(),
		Content:    c,
	}
}
