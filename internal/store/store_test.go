package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/matheus3301/chatzy/internal/kv"
)

var epoch = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}
}

func testStore(t *testing.T) (*Store, *kv.Memory, *fakeClock) {
	t.Helper()
	backend := kv.NewMemory()
	clock := &fakeClock{t: epoch}
	return New(backend, nil, WithClock(clock.Now), WithIDs(seqIDs())), backend, clock
}

func mustRegister(t *testing.T, s *Store, name, email string) *User {
	t.Helper()
	u, err := s.Register(context.Background(), name, email, "secret")
	if err != nil {
		t.Fatalf("Register(%s) error = %v", email, err)
	}
	return u
}

func TestConversationKeySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"u1", "u2"},
		{"b", "a"},
		{"same", "same"},
		{"3f1c0e1a-0000-4000-8000-000000000001", "0a9d7d2b-0000-4000-8000-000000000002"},
	}
	for _, p := range pairs {
		if ConversationKey(p[0], p[1]) != ConversationKey(p[1], p[0]) {
			t.Errorf("ConversationKey(%q, %q) is not symmetric", p[0], p[1])
		}
	}
	if got := ConversationKey("u2", "u1"); got != "u1-u2" {
		t.Errorf("ConversationKey(u2, u1) = %q, want u1-u2", got)
	}
}

func TestRegisterAndLookup(t *testing.T) {
	s, _, _ := testStore(t)
	ctx := context.Background()

	a := mustRegister(t, s, "Alice", "alice@example.com")
	b := mustRegister(t, s, "Bob", "bob@example.com")

	if !a.IsOnline || !a.LastSeen.Equal(epoch) {
		t.Errorf("new user presence = %v/%v, want online at %v", a.IsOnline, a.LastSeen, epoch)
	}
	if a.Avatar != DefaultAvatar {
		t.Errorf("avatar = %q, want default", a.Avatar)
	}

	users, err := s.ListUsers(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 2 || users[0].ID != a.ID || users[1].ID != b.ID {
		t.Fatalf("ListUsers = %+v, want [alice bob] in registration order", users)
	}

	got, err := s.FindUserByEmail(ctx, "bob@example.com")
	if err != nil || got.ID != b.ID {
		t.Errorf("FindUserByEmail = %v, %v", got, err)
	}
	got, err = s.FindUserByID(ctx, a.ID)
	if err != nil || got.Email != "alice@example.com" {
		t.Errorf("FindUserByID = %v, %v", got, err)
	}

	if _, err := s.FindUserByID(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindUserByID(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := s.FindUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindUserByEmail(missing) error = %v, want ErrNotFound", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s, _, _ := testStore(t)
	mustRegister(t, s, "Alice", "alice@example.com")

	_, err := s.Register(context.Background(), "Other Alice", "alice@example.com", "pw")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("error = %v, want ErrDuplicateEmail", err)
	}

	users, _ := s.ListUsers(context.Background())
	if len(users) != 1 {
		t.Errorf("got %d users after rejected signup, want 1", len(users))
	}
}

func TestRegisterRequiresFields(t *testing.T) {
	s, _, _ := testStore(t)
	tests := []struct{ name, email, password string }{
		{"", "a@x", "pw"},
		{"A", "  ", "pw"},
		{"A", "a@x", ""},
	}
	for _, tt := range tests {
		if _, err := s.Register(context.Background(), tt.name, tt.email, tt.password); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Register(%q, %q, %q) error = %v, want ErrInvalidInput", tt.name, tt.email, tt.password, err)
		}
	}
}

func TestSetPresence(t *testing.T) {
	s, _, clock := testStore(t)
	ctx := context.Background()
	a := mustRegister(t, s, "Alice", "alice@example.com")

	clock.Advance(time.Hour)
	if err := s.SetPresence(ctx, a.ID, false, clock.Now()); err != nil {
		t.Fatal(err)
	}
	got, _ := s.FindUserByID(ctx, a.ID)
	if got.IsOnline || !got.LastSeen.Equal(clock.Now()) {
		t.Errorf("presence = %v/%v, want offline at %v", got.IsOnline, got.LastSeen, clock.Now())
	}

	// Unknown IDs are ignored.
	if err := s.SetPresence(ctx, "ghost", true, clock.Now()); err != nil {
		t.Errorf("SetPresence(unknown) error = %v, want nil", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	s, _, _ := testStore(t)
	ctx := context.Background()
	a := mustRegister(t, s, "Alice", "alice@example.com")
	mustRegister(t, s, "Bob", "bob@example.com")

	bio := "hello there"
	name := "Alice L."
	got, err := s.UpdateProfile(ctx, a.ID, ProfileUpdate{Name: &name, Bio: &bio})
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != name || got.Bio != bio || got.Email != "alice@example.com" {
		t.Errorf("updated = %+v", got)
	}

	taken := "bob@example.com"
	if _, err := s.UpdateProfile(ctx, a.ID, ProfileUpdate{Email: &taken}); !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("email takeover error = %v, want ErrDuplicateEmail", err)
	}
	if _, err := s.UpdateProfile(ctx, "ghost", ProfileUpdate{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown user error = %v, want ErrNotFound", err)
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	s, _, clock := testStore(t)
	ctx := context.Background()
	a := mustRegister(t, s, "Alice", "alice@example.com")
	b := mustRegister(t, s, "Bob", "bob@example.com")

	var sent []Message
	for i := range 5 {
		clock.Advance(time.Second)
		m := s.NewMessage(*a, Text{Body: fmt.Sprintf("msg %d", i)})
		if i%2 == 1 {
			m = s.NewMessage(*b, Text{Body: fmt.Sprintf("reply %d", i)})
		}
		if err := s.Append(ctx, a.ID, b.ID, m); err != nil {
			t.Fatal(err)
		}
		sent = append(sent, m)
	}

	// Both participants resolve the same log.
	for _, order := range [][2]string{{a.ID, b.ID}, {b.ID, a.ID}} {
		got, err := s.LoadAll(ctx, order[0], order[1])
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != len(sent) {
			t.Fatalf("got %d messages, want %d", len(got), len(sent))
		}
		for i := range sent {
			if got[i].ID != sent[i].ID {
				t.Errorf("message %d = %s, want %s", i, got[i].ID, sent[i].ID)
			}
		}
	}
}

func TestAppendDoesNotDeduplicate(t *testing.T) {
	s, _, _ := testStore(t)
	ctx := context.Background()
	m := Message{ID: "m1", SenderID: "a", Content: Text{Body: "hi"}}

	_ = s.Append(ctx, "a", "b", m)
	_ = s.Append(ctx, "a", "b", m)

	got, _ := s.LoadAll(ctx, "a", "b")
	if len(got) != 2 {
		t.Errorf("got %d messages, want 2", len(got))
	}
}

func TestAppendRejectsEmptyContent(t *testing.T) {
	s, _, _ := testStore(t)
	err := s.Append(context.Background(), "a", "b", Message{ID: "m1"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestMessagePersistedLayout(t *testing.T) {
	m := Message{
		ID:        "m1",
		SenderID:  "u1",
		Timestamp: epoch,
		Content: Voice{
			Caption:  "Voice message",
			Seconds:  2.5,
			Waveform: []float64{10, 80, 40},
		},
	}
	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}

	var flat map[string]any
	if err := json.Unmarshal(raw, &flat); err != nil {
		t.Fatal(err)
	}
	if flat["type"] != "voice" || flat["voiceDuration"] != 2.5 || flat["content"] != "Voice message" {
		t.Errorf("persisted layout = %s", raw)
	}
	if _, ok := flat["isOwn"]; ok {
		t.Error("isOwn must never be persisted")
	}

	var back Message
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	v, ok := back.Content.(Voice)
	if !ok || len(v.Waveform) != 3 || v.Seconds != 2.5 {
		t.Errorf("decoded content = %#v", back.Content)
	}
}

func TestMessageUnknownTypeIsMalformed(t *testing.T) {
	s, backend, _ := testStore(t)
	ctx := context.Background()
	_ = backend.Set(ctx, "conversation-a-b", []byte(`[{"id":"m1","senderId":"a","type":"sticker","content":"x"}]`))

	got, err := s.LoadAll(ctx, "b", "a")
	if err != nil {
		t.Fatalf("LoadAll error = %v, want recovery", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d messages from malformed log, want 0", len(got))
	}
}

func TestAppendKeepsEntriesAroundUnknownType(t *testing.T) {
	s, backend, _ := testStore(t)
	ctx := context.Background()
	_ = backend.Set(ctx, "conversation-a-b", []byte(`[`+
		`{"id":"m1","senderId":"a","content":"keep me","timestamp":"2026-03-10T12:00:00Z","type":"text"},`+
		`{"id":"m2","senderId":"b","content":"x","timestamp":"2026-03-10T12:00:01Z","type":"sticker"}]`))

	got, err := s.LoadAll(ctx, "a", "b")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "m1" {
		t.Fatalf("LoadAll = %+v, want only m1", got)
	}

	if err := s.Append(ctx, "a", "b", Message{ID: "m3", SenderID: "a", Content: Text{Body: "new"}}); err != nil {
		t.Fatal(err)
	}
	got, _ = s.LoadAll(ctx, "a", "b")
	if len(got) != 2 {
		t.Fatalf("got %d messages after append, want 2", len(got))
	}
	if body := got[0].Content.(Text).Body; got[0].ID != "m1" || body != "keep me" {
		t.Errorf("first message = %s %q, want m1 %q", got[0].ID, body, "keep me")
	}
	if got[1].ID != "m3" {
		t.Errorf("second message = %s, want m3", got[1].ID)
	}
}

func TestAppendBacksUpUnreadableLog(t *testing.T) {
	s, backend, _ := testStore(t)
	ctx := context.Background()
	corrupt := []byte(`{"id":"m1"`)
	_ = backend.Set(ctx, "conversation-a-b", corrupt)

	if err := s.Append(ctx, "a", "b", Message{ID: "m2", SenderID: "a", Content: Text{Body: "new"}}); err != nil {
		t.Fatal(err)
	}

	backup := fmt.Sprintf("conversation-a-b.corrupt-%d", epoch.UnixNano())
	raw, found, err := backend.Get(ctx, backup)
	if err != nil || !found {
		t.Fatalf("backup %q missing: found=%v err=%v", backup, found, err)
	}
	if string(raw) != string(corrupt) {
		t.Errorf("backup = %s, want %s", raw, corrupt)
	}
	got, _ := s.LoadAll(ctx, "a", "b")
	if len(got) != 1 || got[0].ID != "m2" {
		t.Errorf("LoadAll = %+v, want only m2", got)
	}
}

func TestMalformedUsersRecoversEmpty(t *testing.T) {
	s, backend, _ := testStore(t)
	ctx := context.Background()
	_ = backend.Set(ctx, "users", []byte(`{not json`))

	users, err := s.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers error = %v, want nil", err)
	}
	if len(users) != 0 {
		t.Errorf("got %d users, want 0", len(users))
	}

	// The registry stays usable.
	mustRegister(t, s, "Alice", "alice@example.com")
	users, _ = s.ListUsers(ctx)
	if len(users) != 1 {
		t.Errorf("got %d users after signup, want 1", len(users))
	}
}

func TestCallHistoryCap(t *testing.T) {
	s, _, clock := testStore(t)
	ctx := context.Background()

	var recorded []*CallRecord
	for i := range 101 {
		clock.Advance(time.Minute)
		rec, err := s.RecordCall(ctx, "u1", CallRecord{
			ContactID:   "u2",
			ContactName: "Bob",
			Type:        CallOutgoing,
			Duration:    i,
			Status:      CallCompleted,
		})
		if err != nil {
			t.Fatal(err)
		}
		recorded = append(recorded, rec)
	}

	history, err := s.CallHistory(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != MaxCallHistory {
		t.Fatalf("got %d records, want %d", len(history), MaxCallHistory)
	}
	if history[0].ID != recorded[100].ID {
		t.Errorf("newest = %s, want the 101st call %s", history[0].ID, recorded[100].ID)
	}
	if history[99].ID != recorded[1].ID {
		t.Errorf("oldest = %s, want the 2nd call %s", history[99].ID, recorded[1].ID)
	}
	for _, r := range history {
		if r.ID == recorded[0].ID {
			t.Error("first call should have been evicted")
		}
	}
}

func TestRecordCallValidates(t *testing.T) {
	s, _, _ := testStore(t)
	bad := []CallRecord{
		{ContactID: "u2", Type: "sideways", Status: CallCompleted},
		{ContactID: "u2", Type: CallIncoming, Status: "lost"},
		{Type: CallIncoming, Status: CallMissed},
		{ContactID: "u2", Type: CallIncoming, Status: CallMissed, Duration: -1},
	}
	for _, rec := range bad {
		if _, err := s.RecordCall(context.Background(), "u1", rec); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("RecordCall(%+v) error = %v, want ErrInvalidInput", rec, err)
		}
	}
}

func TestClearCallHistory(t *testing.T) {
	s, _, _ := testStore(t)
	ctx := context.Background()
	_, _ = s.RecordCall(ctx, "u1", CallRecord{ContactID: "u2", Type: CallIncoming, Status: CallMissed})

	if err := s.ClearCallHistory(ctx, "u1"); err != nil {
		t.Fatal(err)
	}
	history, _ := s.CallHistory(ctx, "u1")
	if len(history) != 0 {
		t.Errorf("got %d records after clear, want 0", len(history))
	}
}

func TestMarkReadIdempotent(t *testing.T) {
	s, _, _ := testStore(t)
	ctx := context.Background()

	added, err := s.MarkRead(ctx, "u1", []string{"m1", "m2"})
	if err != nil || added != 2 {
		t.Fatalf("first MarkRead = %d, %v; want 2, nil", added, err)
	}
	added, err = s.MarkRead(ctx, "u1", []string{"m1", "m2"})
	if err != nil || added != 0 {
		t.Fatalf("second MarkRead = %d, %v; want 0, nil", added, err)
	}

	set, _ := s.ReadSet(ctx, "u1")
	if len(set) != 2 || !set.Has("m1") || !set.Has("m2") {
		t.Errorf("read-set = %v", set)
	}
	other, _ := s.ReadSet(ctx, "u2")
	if len(other) != 0 {
		t.Errorf("read-sets leaked across users: %v", other)
	}
}

func TestCreateGroup(t *testing.T) {
	s, _, _ := testStore(t)
	ctx := context.Background()
	a := mustRegister(t, s, "Alice", "alice@example.com")
	b := mustRegister(t, s, "Bob", "bob@example.com")
	c := mustRegister(t, s, "Carol", "carol@example.com")

	g, err := s.CreateGroup(ctx, a.ID, NewGroup{Name: "Trip", Members: []string{b.ID, a.ID, b.ID}})
	if err != nil {
		t.Fatal(err)
	}
	if !IsGroupID(g.ID) {
		t.Errorf("group id %q lacks prefix", g.ID)
	}
	if len(g.Members) != 2 || g.Members[0] != a.ID || g.Members[1] != b.ID {
		t.Errorf("members = %v, want [creator bob]", g.Members)
	}
	if len(g.Admins) != 1 || g.Admins[0] != a.ID || g.CreatedBy != a.ID {
		t.Errorf("admins = %v createdBy = %s", g.Admins, g.CreatedBy)
	}

	if _, err := s.FindGroup(ctx, b.ID, g.ID); err != nil {
		t.Errorf("member cannot see group: %v", err)
	}
	if _, err := s.FindGroup(ctx, c.ID, g.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("non-member FindGroup error = %v, want ErrNotFound", err)
	}

	if _, err := s.CreateGroup(ctx, a.ID, NewGroup{Name: "Solo"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("group without members error = %v, want ErrInvalidInput", err)
	}
	if _, err := s.CreateGroup(ctx, a.ID, NewGroup{Name: "Ghosts", Members: []string{"ghost"}}); !errors.Is(err, ErrNotFound) {
		t.Errorf("group with unknown member error = %v, want ErrNotFound", err)
	}
}

func TestCurrentUser(t *testing.T) {
	s, backend, _ := testStore(t)
	ctx := context.Background()

	u, err := s.CurrentUser(ctx)
	if err != nil || u != nil {
		t.Fatalf("CurrentUser on empty store = %v, %v", u, err)
	}

	a := mustRegister(t, s, "Alice", "alice@example.com")
	if err := s.SaveCurrentUser(ctx, *a); err != nil {
		t.Fatal(err)
	}
	u, err = s.CurrentUser(ctx)
	if err != nil || u == nil || u.ID != a.ID {
		t.Fatalf("CurrentUser = %v, %v", u, err)
	}

	_ = backend.Set(ctx, "current-user", []byte(`"broken`))
	u, err = s.CurrentUser(ctx)
	if err != nil || u != nil {
		t.Fatalf("CurrentUser(malformed) = %v, %v; want nil, nil", u, err)
	}
	if _, found, _ := backend.Get(ctx, "current-user"); found {
		t.Error("malformed session should be removed")
	}
}

func TestRecentEmojis(t *testing.T) {
	s, _, _ := testStore(t)
	ctx := context.Background()

	for i := range 25 {
		if _, err := s.AddRecentEmoji(ctx, fmt.Sprintf("e%d", i)); err != nil {
			t.Fatal(err)
		}
	}
	recent, err := s.AddRecentEmoji(ctx, "e10")
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != MaxRecentEmojis {
		t.Fatalf("got %d emojis, want %d", len(recent), MaxRecentEmojis)
	}
	if recent[0] != "e10" || recent[1] != "e24" {
		t.Errorf("recent head = %v, want [e10 e24 ...]", recent[:2])
	}
	count := 0
	for _, e := range recent {
		if e == "e10" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("e10 appears %d times, want 1", count)
	}
}

// TestSQLiteBackend runs the typed store over a real migrated database.
func TestSQLiteBackend(t *testing.T) {
	db, _, err := kv.Open(filepath.Join(t.TempDir(), "chatzy.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	s := New(db, nil)
	ctx := context.Background()
	a := mustRegister(t, s, "Alice", "alice@example.com")
	b := mustRegister(t, s, "Bob", "bob@example.com")

	m := s.NewMessage(*a, Document{Caption: "notes", File: Attachment{Name: "notes.pdf", Size: "0.10 MB"}})
	if err := s.Append(ctx, a.ID, b.ID, m); err != nil {
		t.Fatal(err)
	}
	got, err := s.LoadAll(ctx, b.ID, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Kind() != KindDocument {
		t.Fatalf("got %+v", got)
	}
	if doc := got[0].Content.(Document); doc.File.Name != "notes.pdf" {
		t.Errorf("file name = %q", doc.File.Name)
	}
}
