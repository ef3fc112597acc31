package api

import (
	"context"

	chatzyv1 "github.com/matheus3301/chatzy/gen/chatzy/v1"
	"github.com/matheus3301/chatzy/internal/chat"
	"github.com/matheus3301/chatzy/internal/store"
)

// CallService implements the CallService gRPC service.
type CallService struct {
	chatzyv1.UnimplementedCallServiceServer

	chat *chat.Service
}

// NewCallService creates a new call service.
func NewCallService(c *chat.Service) *CallService {
	return &CallService{chat: c}
}

func (s *CallService) RecordCall(ctx context.Context, req *chatzyv1.RecordCallRequest) (*chatzyv1.RecordCallResponse, error) {
	rec, err := s.chat.RecordCall(ctx, req.GetContactId(),
		store.CallType(req.GetType()), store.CallStatus(req.GetStatus()), int(req.GetDuration()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &chatzyv1.RecordCallResponse{Call: callToProto(*rec)}, nil
}

func (s *CallService) ListCalls(ctx context.Context, _ *chatzyv1.ListCallsRequest) (*chatzyv1.ListCallsResponse, error) {
	calls, err := s.chat.CallHistory(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	pb := make([]*chatzyv1.CallRecord, 0, len(calls))
	for _, r := range calls {
		pb = append(pb, callToProto(r))
	}
	return &chatzyv1.ListCallsResponse{Calls: pb}, nil
}

func (s *CallService) ClearCalls(ctx context.Context, _ *chatzyv1.ClearCallsRequest) (*chatzyv1.ClearCallsResponse, error) {
	if err := s.chat.ClearCallHistory(ctx); err != nil {
		return nil, toStatus(err)
	}
	return &chatzyv1.ClearCallsResponse{}, nil
}
