package api

import (
	"errors"

	"github.com/matheus3301/chatzy/internal/chat"
	"github.com/matheus3301/chatzy/internal/store"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// toStatus maps domain errors onto gRPC codes.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	var code codes.Code
	switch {
	case errors.Is(err, store.ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, store.ErrDuplicateEmail):
		code = codes.AlreadyExists
	case errors.Is(err, store.ErrInvalidInput):
		code = codes.InvalidArgument
	case errors.Is(err, chat.ErrNoSession), errors.Is(err, chat.ErrClosed):
		code = codes.FailedPrecondition
	case errors.Is(err, store.ErrMalformed):
		code = codes.DataLoss
	default:
		code = codes.Internal
	}
	return grpcstatus.Error(code, err.Error())
}
