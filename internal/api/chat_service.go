package api

import (
	"context"

	chatzyv1 "github.com/matheus3301/chatzy/gen/chatzy/v1"
	"github.com/matheus3301/chatzy/internal/chat"
	"github.com/matheus3301/chatzy/internal/store"
)

// ChatService implements the ChatService gRPC service.
type ChatService struct {
	chatzyv1.UnimplementedChatServiceServer

	chat *chat.Service
}

// NewChatService creates a new chat service.
func NewChatService(c *chat.Service) *ChatService {
	return &ChatService{chat: c}
}

func (s *ChatService) ListContacts(ctx context.Context, _ *chatzyv1.ListContactsRequest) (*chatzyv1.ListContactsResponse, error) {
	cs, err := s.chat.Contacts(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	pb := make([]*chatzyv1.Contact, 0, len(cs))
	for _, c := range cs {
		pb = append(pb, contactToProto(c))
	}
	return &chatzyv1.ListContactsResponse{Contacts: pb}, nil
}

func (s *ChatService) CreateGroup(ctx context.Context, req *chatzyv1.CreateGroupRequest) (*chatzyv1.CreateGroupResponse, error) {
	g, err := s.chat.CreateGroup(ctx, store.NewGroup{
		Name:        req.GetName(),
		Description: req.GetDescription(),
		Avatar:      req.GetAvatar(),
		Members:     req.GetMembers(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &chatzyv1.CreateGroupResponse{Group: groupToProto(*g)}, nil
}

func (s *ChatService) ListGroups(ctx context.Context, _ *chatzyv1.ListGroupsRequest) (*chatzyv1.ListGroupsResponse, error) {
	gs, err := s.chat.Groups(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	pb := make([]*chatzyv1.Group, 0, len(gs))
	for _, g := range gs {
		pb = append(pb, groupToProto(g))
	}
	return &chatzyv1.ListGroupsResponse{Groups: pb}, nil
}

func (s *ChatService) AddRecentEmoji(ctx context.Context, req *chatzyv1.AddRecentEmojiRequest) (*chatzyv1.AddRecentEmojiResponse, error) {
	es, err := s.chat.AddRecentEmoji(ctx, req.GetEmoji())
	if err != nil {
		return nil, toStatus(err)
	}
	return &chatzyv1.AddRecentEmojiResponse{Emojis: es}, nil
}

func (s *ChatService) ListRecentEmojis(ctx context.Context, _ *chatzyv1.ListRecentEmojisRequest) (*chatzyv1.ListRecentEmojisResponse, error) {
	es, err := s.chat.RecentEmojis(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &chatzyv1.ListRecentEmojisResponse{Emojis: es}, nil
}
