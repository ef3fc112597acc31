// Package client dials a profile daemon.
package client

import (
	"fmt"

	chatzyv1 "github.com/matheus3301/chatzy/gen/chatzy/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client wraps gRPC connections to the daemon.
type Client struct {
	conn    *grpc.ClientConn
	Session chatzyv1.SessionServiceClient
	Chat    chatzyv1.ChatServiceClient
	Message chatzyv1.MessageServiceClient
	Call    chatzyv1.CallServiceClient
	Event   chatzyv1.EventServiceClient
}

// New dials the daemon's Unix domain socket and returns typed service clients.
// The connection is lazy: a missing daemon surfaces as Unavailable on the
// first call.
func New(socketPath string) (*Client, error) {
	conn, err := grpc.NewClient(
		"unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}

	return &Client{
		conn:    conn,
		Session: chatzyv1.NewSessionServiceClient(conn),
		Chat:    chatzyv1.NewChatServiceClient(conn),
		Message: chatzyv1.NewMessageServiceClient(conn),
		Call:    chatzyv1.NewCallServiceClient(conn),
		Event:   chatzyv1.NewEventServiceClient(conn),
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
