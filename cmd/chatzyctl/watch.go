package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	chatzyv1 "github.com/matheus3301/chatzy/gen/chatzy/v1"
	"github.com/matheus3301/chatzy/internal/bus"
	"github.com/matheus3301/chatzy/internal/client"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

func cmdWatch(ctx context.Context, c *client.Client, args []string, jsonOut bool) {
	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}
	stream, err := c.Event.WatchEvents(ctx, &chatzyv1.WatchEventsRequest{Prefix: prefix})
	if err != nil {
		fail(err)
	}
	for {
		evt, err := stream.Recv()
		if errors.Is(err, io.EOF) || status.Code(err) == codes.Canceled {
			return
		}
		if err != nil {
			fail(err)
		}
		if jsonOut {
			outputJSON(evt)
			continue
		}
		at := time.UnixMilli(evt.GetOccurredAtUnixMs())
		fmt.Printf("%s %-24s %s\n", at.Format("15:04:05"), evt.GetKind(), payloadText(evt))
	}
}

// payloadText decodes the envelope payload for display.
func payloadText(evt *chatzyv1.EventEnvelope) string {
	var msg proto.Message
	switch evt.GetKind() {
	case bus.KindContactsRefreshed:
		msg = &chatzyv1.ContactsRefreshed{}
	case bus.KindCallIncoming:
		msg = &chatzyv1.IncomingCall{}
	case bus.KindMessageAppended:
		msg = &chatzyv1.MessageAppended{}
	case bus.KindStatusChanged:
		msg = &chatzyv1.StatusChanged{}
	default:
		return ""
	}
	if err := proto.Unmarshal(evt.GetPayload(), msg); err != nil {
		return fmt.Sprintf("<undecodable payload: %v>", err)
	}
	return protojson.Format(msg)
}
