package api

import (
	"context"

	chatzyv1 "github.com/matheus3301/chatzy/gen/chatzy/v1"
	"github.com/matheus3301/chatzy/internal/chat"
)

// MessageService implements the MessageService gRPC service.
type MessageService struct {
	chatzyv1.UnimplementedMessageServiceServer

	chat *chat.Service
}

// NewMessageService creates a new message service.
func NewMessageService(c *chat.Service) *MessageService {
	return &MessageService{chat: c}
}

func (s *MessageService) GetConversation(ctx context.Context, req *chatzyv1.GetConversationRequest) (*chatzyv1.GetConversationResponse, error) {
	msgs, err := s.chat.Conversation(ctx, req.GetContactId())
	if err != nil {
		return nil, toStatus(err)
	}
	pb := make([]*chatzyv1.Message, 0, len(msgs))
	for _, m := range msgs {
		pb = append(pb, viewMessageToProto(m))
	}
	return &chatzyv1.GetConversationResponse{Messages: pb}, nil
}

func (s *MessageService) MarkRead(ctx context.Context, req *chatzyv1.MarkReadRequest) (*chatzyv1.MarkReadResponse, error) {
	n, err := s.chat.MarkRead(ctx, req.GetContactId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &chatzyv1.MarkReadResponse{Added: int32(n)}, nil
}

func (s *MessageService) SendMessage(ctx context.Context, req *chatzyv1.SendMessageRequest) (*chatzyv1.SendMessageResponse, error) {
	content, err := messageContent(req)
	if err != nil {
		return nil, toStatus(err)
	}
	m, err := s.chat.SendMessage(ctx, req.GetTo(), content)
	if err != nil {
		return nil, toStatus(err)
	}
	return &chatzyv1.SendMessageResponse{Message: messageToProto(*m, true)}, nil
}
