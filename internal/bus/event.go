package bus

import (
	"time"

	"github.com/google/uuid"
)

// Event kinds published by the daemon. Subscribers filter by prefix, so
// "contacts." matches KindContactsRefreshed.
const (
	KindContactsRefreshed = "contacts.refreshed"
	KindCallIncoming      = "call.incoming"
	KindMessageAppended   = "message.appended"
	KindStatusChanged     = "session.status_changed"
)

// Event is a change notification published on the bus.
type Event struct {
	ID        string
	Kind      string
	Timestamp time.Time
	Payload   any
}

// NewEvent stamps an event of kind with a fresh ID and the current time.
func NewEvent(kind string, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Kind:      kind,
		Timestamp: time.Now(),
		Payload:   payload,
	}
}
