package api

import (
	"sync"

	chatzyv1 "github.com/matheus3301/chatzy/gen/chatzy/v1"
	"github.com/matheus3301/chatzy/internal/bus"
	"github.com/matheus3301/chatzy/internal/chat"
	"github.com/matheus3301/chatzy/internal/status"
	chatsync "github.com/matheus3301/chatzy/internal/sync"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
)

// EventService implements the EventService gRPC service.
type EventService struct {
	chatzyv1.UnimplementedEventServiceServer

	profile string
	bus     *bus.Bus
	logger  *zap.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// NewEventService creates a new event service.
func NewEventService(profile string, b *bus.Bus, logger *zap.Logger) *EventService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{profile: profile, bus: b, logger: logger, done: make(chan struct{})}
}

// Close ends every open WatchEvents stream so a graceful server stop does
// not wait on them.
func (s *EventService) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// WatchEvents forwards bus events whose kind starts with req.Prefix until
// the client goes away or the service is closed.
func (s *EventService) WatchEvents(req *chatzyv1.WatchEventsRequest, stream chatzyv1.EventService_WatchEventsServer) error {
	ch, unsub := s.bus.Subscribe(req.GetPrefix(), 256)
	defer unsub()

	for {
		select {
		case evt := <-ch:
			payload, err := marshalPayload(evt)
			if err != nil {
				s.logger.Warn("dropping unencodable event", zap.String("kind", evt.Kind), zap.Error(err))
				continue
			}
			if err := stream.Send(&chatzyv1.EventEnvelope{
				EventId:          evt.ID,
				Profile:          s.profile,
				Kind:             evt.Kind,
				OccurredAtUnixMs: evt.Timestamp.UnixMilli(),
				Payload:          payload,
			}); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return nil
		case <-s.done:
			return nil
		}
	}
}

// marshalPayload encodes the proto message matching the event's payload.
// Unknown payloads travel without one.
func marshalPayload(evt bus.Event) ([]byte, error) {
	var msg proto.Message
	switch p := evt.Payload.(type) {
	case chatsync.Refreshed:
		msg = &chatzyv1.ContactsRefreshed{UserId: p.UserID, Contacts: int32(p.Contacts), Unread: int32(p.Unread)}
	case chatsync.IncomingCall:
		msg = &chatzyv1.IncomingCall{
			ContactId:     p.ContactID,
			ContactName:   p.ContactName,
			ContactAvatar: p.ContactAvatar,
			AtUnixMs:      unixMs(p.At),
		}
	case chat.MessageAppended:
		msg = &chatzyv1.MessageAppended{
			ConversationId: p.ConversationID,
			Message:        messageToProto(p.Message, false),
		}
	case status.StatusChange:
		msg = &chatzyv1.StatusChanged{From: string(p.From), To: string(p.To)}
	default:
		return nil, nil
	}
	return proto.Marshal(msg)
}
