package contacts

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/matheus3301/chatzy/internal/kv"
	"github.com/matheus3301/chatzy/internal/store"
)

var now = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}
}

func newStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(kv.NewMemory(), nil, store.WithClock(func() time.Time { return now }), store.WithIDs(seqIDs()))
}

func register(t *testing.T, s *store.Store, name, email string) *store.User {
	t.Helper()
	u, err := s.Register(context.Background(), name, email, "pw")
	if err != nil {
		t.Fatalf("Register(%s): %v", email, err)
	}
	return u
}

func find(t *testing.T, cs []Contact, id string) Contact {
	t.Helper()
	for _, c := range cs {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("contact %q not in list", id)
	return Contact{}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name    string
		content store.Content
		want    string
	}{
		{"text", store.Text{Body: "hello there"}, "hello there"},
		{"voice", store.Voice{Seconds: 12}, "🎤 Voice message"},
		{"document named", store.Document{File: store.Attachment{Name: "report.pdf"}}, "📎 report.pdf"},
		{"document unnamed", store.Document{}, "📎 Document"},
		{"image", store.Media{Of: store.KindImage}, "📎 image"},
		{"video", store.Media{Of: store.KindVideo}, "📎 video"},
		{"audio", store.Media{Of: store.KindAudio}, "📎 audio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(store.Message{Content: tt.content}); got != tt.want {
				t.Errorf("Preview = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsOnline(t *testing.T) {
	fresh := store.User{IsOnline: true, LastSeen: now.Add(-time.Minute)}
	stale := store.User{IsOnline: true, LastSeen: now.Add(-10 * time.Minute)}
	offline := store.User{IsOnline: false, LastSeen: now}

	if !IsOnline(fresh, now, 2*time.Minute) {
		t.Error("fresh heartbeat should be online")
	}
	if IsOnline(stale, now, 2*time.Minute) {
		t.Error("stale heartbeat should be offline")
	}
	if !IsOnline(stale, now, 0) {
		t.Error("zero timeout should keep online flag")
	}
	if IsOnline(offline, now, 0) {
		t.Error("offline user reported online")
	}
}

func TestUnreadScenario(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	u1 := register(t, s, "Alice", "a@x.io")
	u2 := register(t, s, "Bob", "b@x.io")
	l := NewLoader(s, 0)

	if err := s.Append(ctx, u1.ID, u2.ID, s.NewMessage(*u1, store.Text{Body: "hi"})); err != nil {
		t.Fatal(err)
	}

	cs, err := l.Load(ctx, u2.ID)
	if err != nil {
		t.Fatal(err)
	}
	c := find(t, cs, u1.ID)
	if c.LastMessage != "hi" || c.UnreadCount != 1 {
		t.Fatalf("viewer u2 sees %q/%d, want hi/1", c.LastMessage, c.UnreadCount)
	}
	if c.Timestamp != "now" {
		t.Errorf("timestamp = %q, want now", c.Timestamp)
	}

	// The sender never counts own messages as unread.
	cs, err = l.Load(ctx, u1.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got := find(t, cs, u2.ID).UnreadCount; got != 0 {
		t.Errorf("sender unread = %d, want 0", got)
	}

	log, _ := s.LoadAll(ctx, u1.ID, u2.ID)
	if _, err := s.MarkRead(ctx, u2.ID, []string{log[0].ID}); err != nil {
		t.Fatal(err)
	}
	cs, err = l.Load(ctx, u2.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got := find(t, cs, u1.ID).UnreadCount; got != 0 {
		t.Errorf("unread after mark = %d, want 0", got)
	}
}

func TestUnreadMonotonic(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	a := register(t, s, "Alice", "a@x.io")
	b := register(t, s, "Bob", "b@x.io")
	l := NewLoader(s, 0)

	prev := 0
	for i := range 5 {
		if err := s.Append(ctx, a.ID, b.ID, s.NewMessage(*a, store.Text{Body: fmt.Sprint(i)})); err != nil {
			t.Fatal(err)
		}
		cs, err := l.Load(ctx, b.ID)
		if err != nil {
			t.Fatal(err)
		}
		got := find(t, cs, a.ID).UnreadCount
		if got < prev {
			t.Fatalf("unread decreased from %d to %d without mark-read", prev, got)
		}
		prev = got
	}
	if prev != 5 {
		t.Errorf("unread = %d, want 5", prev)
	}
}

func TestBuildEmptyAndStatus(t *testing.T) {
	viewer := store.User{ID: "v"}
	in := Input{
		Viewer: viewer,
		Users: []store.User{
			viewer,
			{ID: "on", Name: "On", IsOnline: true, LastSeen: now},
			{ID: "off", Name: "Off", LastSeen: now.Add(-3 * time.Hour)},
		},
		Now: now,
	}
	cs := Build(in)
	if len(cs) != 2 {
		t.Fatalf("len = %d, want 2 (viewer excluded)", len(cs))
	}
	if cs[0].ID != "on" || cs[1].ID != "off" {
		t.Errorf("order = %s,%s, want registry order", cs[0].ID, cs[1].ID)
	}
	for _, c := range cs {
		if c.LastMessage != NoConversation || c.Timestamp != "" || c.UnreadCount != 0 {
			t.Errorf("%s: empty conversation rendered as %q/%q/%d", c.ID, c.LastMessage, c.Timestamp, c.UnreadCount)
		}
	}
	if cs[0].Status != "Online" {
		t.Errorf("online status = %q", cs[0].Status)
	}
	if cs[1].Status != "Last seen 3h ago" {
		t.Errorf("offline status = %q", cs[1].Status)
	}
}

func TestGroupsListedFirst(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	a := register(t, s, "Alice", "a@x.io")
	b := register(t, s, "Bob", "b@x.io")
	c := register(t, s, "Carol", "c@x.io")

	first, err := s.CreateGroup(ctx, a.ID, store.NewGroup{Name: "First", Members: []string{b.ID}})
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.CreateGroup(ctx, a.ID, store.NewGroup{Name: "Second", Members: []string{b.ID, c.ID}})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AppendGroup(ctx, first.ID, s.NewMessage(*b, store.Voice{Seconds: 3})); err != nil {
		t.Fatal(err)
	}

	cs, err := NewLoader(s, 0).Load(ctx, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 4 {
		t.Fatalf("len = %d, want 4", len(cs))
	}
	if cs[0].ID != second.ID || cs[1].ID != first.ID {
		t.Fatalf("groups not newest first: %s, %s", cs[0].ID, cs[1].ID)
	}
	if !cs[0].IsGroup || !cs[0].IsOnline || cs[0].Status != "3 members" {
		t.Errorf("group contact = %+v", cs[0])
	}
	if cs[0].LastMessage != GroupCreated {
		t.Errorf("empty group preview = %q", cs[0].LastMessage)
	}
	if cs[1].LastMessage != "🎤 Voice message" || cs[1].UnreadCount != 0 {
		t.Errorf("group preview/unread = %q/%d", cs[1].LastMessage, cs[1].UnreadCount)
	}

	// Carol only belongs to the second group.
	cs, err = NewLoader(s, 0).Load(ctx, c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if cs[0].ID != second.ID || cs[1].IsGroup {
		t.Errorf("carol's list = %+v", cs[:2])
	}
}

func TestLoadUnknownViewer(t *testing.T) {
	s := newStore(t)
	register(t, s, "Alice", "a@x.io")
	if _, err := NewLoader(s, 0).Load(context.Background(), "ghost"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
