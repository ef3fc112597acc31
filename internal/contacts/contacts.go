// Package contacts derives a viewer's contact list from the identity
// registry, the conversation logs, the viewer's groups and read-set.
//
// Contacts are never stored. Every refresh recomputes them from the logs, so a
// crash between two writes heals itself on the next build.
package contacts

import (
	"fmt"
	"time"

	"github.com/matheus3301/chatzy/internal/store"
	"github.com/matheus3301/chatzy/internal/timefmt"
)

const (
	// NoConversation is the preview shown for a contact with an empty log.
	NoConversation = "Start a conversation"
	// GroupCreated is the preview shown for a group with an empty log.
	GroupCreated = "Group created"
)

// Contact is a viewer's projection of a user or group.
type Contact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Avatar      string    `json:"avatar"`
	LastMessage string    `json:"lastMessage"`
	Timestamp   string    `json:"timestamp"`
	UnreadCount int       `json:"unreadCount"`
	IsOnline    bool      `json:"isOnline"`
	Status      string    `json:"status"`
	LastSeen    time.Time `json:"lastSeen,omitzero"`
	IsGroup     bool      `json:"isGroup,omitempty"`
	Members     []string  `json:"members,omitempty"`
}

// Input is a consistent snapshot of everything Build reads.
type Input struct {
	Viewer store.User
	Users  []store.User
	// Conversations holds the log shared with each other user, by user ID.
	Conversations map[string][]store.Message
	Groups        []store.GroupChat
	// GroupConversations holds each group's log, by group ID.
	GroupConversations map[string][]store.Message
	Read               store.ReadSet
	Now                time.Time
	// PresenceTimeout hides an online flag whose heartbeat is older than this.
	// Zero keeps online users online forever.
	PresenceTimeout time.Duration
}

// Build projects in into contacts: the viewer's groups, newest first,
// followed by every other user in registry order.
func Build(in Input) []Contact {
	out := make([]Contact, 0, len(in.Groups)+len(in.Users))

	for i := len(in.Groups) - 1; i >= 0; i-- {
		out = append(out, groupContact(in.Groups[i], in.GroupConversations[in.Groups[i].ID], in.Now))
	}

	for _, u := range in.Users {
		if u.ID == in.Viewer.ID {
			continue
		}
		log := in.Conversations[u.ID]

		c := Contact{
			ID:          u.ID,
			Name:        u.Name,
			Avatar:      u.Avatar,
			LastMessage: NoConversation,
			UnreadCount: UnreadCount(log, u.ID, in.Read),
			IsOnline:    IsOnline(u, in.Now, in.PresenceTimeout),
			LastSeen:    u.LastSeen,
		}
		if n := len(log); n > 0 {
			last := log[n-1]
			c.LastMessage = Preview(last)
			c.Timestamp = timefmt.Message(last.Timestamp, in.Now)
		}
		if c.IsOnline {
			c.Status = "Online"
		} else {
			c.Status = "Last seen " + timefmt.LastSeen(u.LastSeen, in.Now)
		}
		out = append(out, c)
	}
	return out
}

func groupContact(g store.GroupChat, log []store.Message, now time.Time) Contact {
	c := Contact{
		ID:          g.ID,
		Name:        g.Name,
		Avatar:      g.Avatar,
		LastMessage: GroupCreated,
		Timestamp:   timefmt.Message(g.CreatedAt, now),
		IsOnline:    true,
		Status:      fmt.Sprintf("%d members", len(g.Members)),
		IsGroup:     true,
		Members:     g.Members,
	}
	if n := len(log); n > 0 {
		last := log[n-1]
		c.LastMessage = Preview(last)
		c.Timestamp = timefmt.Message(last.Timestamp, now)
	}
	return c
}

// Preview renders the one-line summary of m shown under a contact's name.
func Preview(m store.Message) string {
	switch c := m.Content.(type) {
	case store.Text:
		return c.Body
	case store.Voice:
		return "🎤 Voice message"
	case store.Document:
		if c.File.Name != "" {
			return "📎 " + c.File.Name
		}
		return "📎 Document"
	default:
		return "📎 " + string(m.Kind())
	}
}

// UnreadCount counts messages in log authored by from and absent from read.
// Messages sent by anyone else, the viewer included, never count.
func UnreadCount(log []store.Message, from string, read store.ReadSet) int {
	n := 0
	for _, m := range log {
		if m.SenderID == from && !read.Has(m.ID) {
			n++
		}
	}
	return n
}

// IsOnline reports whether u should be shown as online at now.
func IsOnline(u store.User, now time.Time, timeout time.Duration) bool {
	if !u.IsOnline {
		return false
	}
	if timeout <= 0 {
		return true
	}
	return now.Sub(u.LastSeen) <= timeout
}
