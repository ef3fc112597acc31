package api

import (
	"context"
	"errors"
	"time"

	chatzyv1 "github.com/matheus3301/chatzy/gen/chatzy/v1"
	"github.com/matheus3301/chatzy/internal/chat"
	"github.com/matheus3301/chatzy/internal/store"
)

// SessionService implements the SessionService gRPC service.
type SessionService struct {
	chatzyv1.UnimplementedSessionServiceServer

	profile   string
	backend   string
	startedAt time.Time
	chat      *chat.Service
	store     *store.Store
}

// NewSessionService creates the session API for one profile. backend names
// the key-value backend in status replies.
func NewSessionService(profile, backend string, c *chat.Service, s *store.Store) *SessionService {
	return &SessionService{
		profile:   profile,
		backend:   backend,
		startedAt: time.Now(),
		chat:      c,
		store:     s,
	}
}

func (s *SessionService) GetStatus(ctx context.Context, _ *chatzyv1.GetStatusRequest) (*chatzyv1.GetStatusResponse, error) {
	resp := &chatzyv1.GetStatusResponse{
		Profile:  s.profile,
		State:    string(s.chat.Status()),
		Backend:  s.backend,
		UptimeMs: time.Since(s.startedAt).Milliseconds(),
	}
	if u, err := s.chat.CurrentUser(); err == nil {
		resp.User = userToProto(u)
	} else if !errors.Is(err, chat.ErrNoSession) {
		return nil, toStatus(err)
	}
	if users, err := s.store.ListUsers(ctx); err == nil {
		resp.UserCount = int32(len(users))
	}
	return resp, nil
}

func (s *SessionService) Register(ctx context.Context, req *chatzyv1.RegisterRequest) (*chatzyv1.RegisterResponse, error) {
	u, err := s.chat.Register(ctx, req.GetName(), req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, toStatus(err)
	}
	return &chatzyv1.RegisterResponse{User: userToProto(u)}, nil
}

func (s *SessionService) Login(ctx context.Context, req *chatzyv1.LoginRequest) (*chatzyv1.LoginResponse, error) {
	if req.GetEmail() == "" {
		return nil, toStatus(store.ErrInvalidInput)
	}
	u, err := s.chat.Login(ctx, req.GetEmail())
	if err != nil {
		return nil, toStatus(err)
	}
	return &chatzyv1.LoginResponse{User: userToProto(u)}, nil
}

func (s *SessionService) Logout(ctx context.Context, _ *chatzyv1.LogoutRequest) (*chatzyv1.LogoutResponse, error) {
	if err := s.chat.Logout(ctx); err != nil {
		return nil, toStatus(err)
	}
	return &chatzyv1.LogoutResponse{}, nil
}

func (s *SessionService) WhoAmI(_ context.Context, _ *chatzyv1.WhoAmIRequest) (*chatzyv1.WhoAmIResponse, error) {
	u, err := s.chat.CurrentUser()
	if err != nil {
		return nil, toStatus(err)
	}
	return &chatzyv1.WhoAmIResponse{User: userToProto(u)}, nil
}

func (s *SessionService) UpdateProfile(ctx context.Context, req *chatzyv1.UpdateProfileRequest) (*chatzyv1.UpdateProfileResponse, error) {
	upd, err := profileUpdate(req)
	if err != nil {
		return nil, toStatus(err)
	}
	u, err := s.chat.UpdateProfile(ctx, upd)
	if err != nil {
		return nil, toStatus(err)
	}
	return &chatzyv1.UpdateProfileResponse{User: userToProto(u)}, nil
}
