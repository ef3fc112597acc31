package store

import "time"

// User is a registered identity. Users are never deleted.
type User struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Avatar   string    `json:"avatar"`
	IsOnline bool      `json:"isOnline"`
	LastSeen time.Time `json:"lastSeen"`
	Bio      string    `json:"bio,omitempty"`
}

// ProfileUpdate carries the fields to change; nil fields are left alone.
type ProfileUpdate struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
	Bio    *string `json:"bio,omitempty"`
}

// GroupChat is immutable after creation.
type GroupChat struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Avatar      string    `json:"avatar"`
	Members     []string  `json:"members"`
	Admins      []string  `json:"admins"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CallType is the direction of a call.
type CallType string

const (
	CallIncoming CallType = "incoming"
	CallOutgoing CallType = "outgoing"
)

// CallStatus is how a call ended.
type CallStatus string

const (
	CallCompleted CallStatus = "completed"
	CallMissed    CallStatus = "missed"
	CallDeclined  CallStatus = "declined"
	CallInitiated CallStatus = "initiated"
)

// CallRecord is one entry of a user's call history. Contact fields are
// denormalized at write time.
type CallRecord struct {
	ID            string     `json:"id"`
	ContactID     string     `json:"contactId"`
	ContactName   string     `json:"contactName"`
	ContactAvatar string     `json:"contactAvatar"`
	Type          CallType   `json:"type"`
	Duration      int        `json:"duration"` // seconds, 0 if never connected
	Timestamp     time.Time  `json:"timestamp"`
	Status        CallStatus `json:"status"`
}
