package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/matheus3301/chatzy/internal/bus"
	"github.com/matheus3301/chatzy/internal/kv"
	"github.com/matheus3301/chatzy/internal/status"
	"github.com/matheus3301/chatzy/internal/store"
	chatsync "github.com/matheus3301/chatzy/internal/sync"
)

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func newService(t *testing.T) (*Service, *store.Store, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	n := 0
	st := store.New(kv.NewMemory(), nil, store.WithClock(c.Now), store.WithIDs(func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}))
	// Zero periods: no background ticks, every refresh is explicit.
	svc := NewService(st, bus.New(), nil, nil, chatsync.Config{})
	t.Cleanup(svc.Shutdown)
	return svc, st, c
}

func mustRegister(t *testing.T, svc *Service, name, email string) *store.User {
	t.Helper()
	u, err := svc.Register(context.Background(), name, email, "pw")
	if err != nil {
		t.Fatalf("Register(%s): %v", email, err)
	}
	return u
}

func TestNoSession(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	if _, err := svc.Contacts(ctx); !errors.Is(err, ErrNoSession) {
		t.Errorf("Contacts err = %v, want ErrNoSession", err)
	}
	if _, err := svc.SendMessage(ctx, "x", store.Text{Body: "hi"}); !errors.Is(err, ErrNoSession) {
		t.Errorf("SendMessage err = %v, want ErrNoSession", err)
	}
	if err := svc.Logout(ctx); !errors.Is(err, ErrNoSession) {
		t.Errorf("Logout err = %v, want ErrNoSession", err)
	}
	if _, err := svc.CurrentUser(); !errors.Is(err, ErrNoSession) {
		t.Errorf("CurrentUser err = %v, want ErrNoSession", err)
	}
}

func TestRegisterSendMarkRead(t *testing.T) {
	svc, st, _ := newService(t)
	ctx := context.Background()

	u1 := mustRegister(t, svc, "Alice", "a@x.io")
	u2 := mustRegister(t, svc, "Bob", "b@x.io")

	// Registering Bob switched the session; log back in as Alice.
	if _, err := svc.Login(ctx, "a@x.io"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SendMessage(ctx, u2.ID, store.Text{Body: "hi"}); err != nil {
		t.Fatal(err)
	}

	view, err := svc.Conversation(ctx, u2.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(view) != 1 || !view[0].IsOwn {
		t.Fatalf("sender view = %+v, want one own message", view)
	}

	if _, err := svc.Login(ctx, "b@x.io"); err != nil {
		t.Fatal(err)
	}
	cs, err := svc.Contacts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 1 || cs[0].ID != u1.ID || cs[0].LastMessage != "hi" || cs[0].UnreadCount != 1 {
		t.Fatalf("contacts = %+v, want Alice with hi/1", cs)
	}

	view, err = svc.Conversation(ctx, u1.ID)
	if err != nil {
		t.Fatal(err)
	}
	if view[0].IsOwn {
		t.Error("receiver sees message as own")
	}

	added, err := svc.MarkRead(ctx, u1.ID)
	if err != nil {
		t.Fatal(err)
	}
	if added != 1 {
		t.Errorf("added = %d, want 1", added)
	}
	cs, _ = svc.Contacts(ctx)
	if cs[0].UnreadCount != 0 {
		t.Errorf("unread after MarkRead = %d, want 0", cs[0].UnreadCount)
	}

	if added, _ := svc.MarkRead(ctx, u1.ID); added != 0 {
		t.Errorf("second MarkRead added %d, want 0", added)
	}

	rs, err := st.ReadSet(ctx, u2.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !rs.Has(view[0].Message.ID) {
		t.Error("read-set not persisted")
	}
}

func TestLogoutMarksOffline(t *testing.T) {
	svc, st, c := newService(t)
	ctx := context.Background()
	u := mustRegister(t, svc, "Alice", "a@x.io")

	c.t = c.t.Add(time.Hour)
	if err := svc.Logout(ctx); err != nil {
		t.Fatal(err)
	}
	if svc.Status() != status.SignedOut {
		t.Errorf("status = %s, want SIGNED_OUT", svc.Status())
	}

	got, err := st.FindUserByID(ctx, u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.IsOnline || !got.LastSeen.Equal(c.t) {
		t.Errorf("presence = %v/%v, want offline at %v", got.IsOnline, got.LastSeen, c.t)
	}
	saved, err := st.CurrentUser(ctx)
	if err != nil || saved != nil {
		t.Errorf("saved session = %v, %v; want none", saved, err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newService(t)
	if _, err := svc.Login(context.Background(), "nobody@x.io"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRestore(t *testing.T) {
	svc, st, _ := newService(t)
	ctx := context.Background()
	u := mustRegister(t, svc, "Alice", "a@x.io")
	svc.Shutdown()

	// A fresh daemon over the same store resumes the session.
	next := NewService(st, bus.New(), nil, nil, chatsync.Config{})
	defer next.Shutdown()
	got, err := next.Restore(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.ID != u.ID {
		t.Fatalf("restored %v, want %s", got, u.ID)
	}
	if next.Status() != status.Active {
		t.Errorf("status = %s, want ACTIVE", next.Status())
	}
}

func TestRestoreUnregisteredUser(t *testing.T) {
	svc, st, _ := newService(t)
	ctx := context.Background()
	if err := st.SaveCurrentUser(ctx, store.User{ID: "ghost"}); err != nil {
		t.Fatal(err)
	}
	got, err := svc.Restore(ctx)
	if err != nil || got != nil {
		t.Fatalf("Restore = %v, %v; want nil, nil", got, err)
	}
	if saved, _ := st.CurrentUser(ctx); saved != nil {
		t.Error("stale session not cleared")
	}
	if svc.Status() != status.SignedOut {
		t.Errorf("status = %s, want SIGNED_OUT", svc.Status())
	}
}

func TestUpdateProfileRefreshesSession(t *testing.T) {
	svc, st, _ := newService(t)
	ctx := context.Background()
	mustRegister(t, svc, "Alice", "a@x.io")

	name, bio := "Alicia", "hello"
	if _, err := svc.UpdateProfile(ctx, store.ProfileUpdate{Name: &name, Bio: &bio}); err != nil {
		t.Fatal(err)
	}
	cur, _ := svc.CurrentUser()
	if cur.Name != "Alicia" || cur.Bio != "hello" {
		t.Errorf("current user = %+v", cur)
	}
	saved, _ := st.CurrentUser(ctx)
	if saved.Name != "Alicia" {
		t.Errorf("saved session name = %q", saved.Name)
	}
}

func TestGroupMessaging(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()
	a := mustRegister(t, svc, "Alice", "a@x.io")
	mustRegister(t, svc, "Bob", "b@x.io")
	c := mustRegister(t, svc, "Carol", "c@x.io")

	g, err := svc.CreateGroup(ctx, store.NewGroup{Name: "Team", Members: []string{a.ID}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SendMessage(ctx, g.ID, store.Document{File: store.Attachment{Name: "plan.pdf"}}); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Login(ctx, "a@x.io"); err != nil {
		t.Fatal(err)
	}
	cs, err := svc.Contacts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !cs[0].IsGroup || cs[0].Status != "2 members" || cs[0].LastMessage != "📎 plan.pdf" || cs[0].UnreadCount != 0 {
		t.Errorf("group contact = %+v", cs[0])
	}
	view, err := svc.Conversation(ctx, g.ID)
	if err != nil || len(view) != 1 || view[0].Message.SenderID != c.ID {
		t.Errorf("group log = %+v, %v", view, err)
	}

	// Bob never joined.
	if _, err := svc.Login(ctx, "b@x.io"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SendMessage(ctx, g.ID, store.Text{Body: "let me in"}); err == nil {
		t.Error("non-member sent to group")
	}
}

func TestSendValidation(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()
	mustRegister(t, svc, "Alice", "a@x.io")

	if _, err := svc.SendMessage(ctx, "missing", store.Text{Body: "hi"}); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown recipient err = %v, want ErrNotFound", err)
	}
	if _, err := svc.SendMessage(ctx, "missing", store.Text{Body: "  "}); !errors.Is(err, store.ErrInvalidInput) {
		t.Errorf("blank text err = %v, want ErrInvalidInput", err)
	}
}

func TestRecordCallDenormalizesContact(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()
	b := mustRegister(t, svc, "Bob", "b@x.io")
	mustRegister(t, svc, "Alice", "a@x.io")

	rec, err := svc.RecordCall(ctx, b.ID, store.CallIncoming, store.CallDeclined, 0)
	if err != nil {
		t.Fatal(err)
	}
	if rec.ContactName != "Bob" || rec.ContactAvatar != store.DefaultAvatar {
		t.Errorf("record = %+v", rec)
	}
	if _, err := svc.RecordCall(ctx, "ghost", store.CallOutgoing, store.CallMissed, 0); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown contact err = %v, want ErrNotFound", err)
	}

	hist, err := svc.CallHistory(ctx)
	if err != nil || len(hist) != 1 {
		t.Fatalf("history = %+v, %v", hist, err)
	}
	if err := svc.ClearCallHistory(ctx); err != nil {
		t.Fatal(err)
	}
	if hist, _ := svc.CallHistory(ctx); len(hist) != 0 {
		t.Errorf("history after clear = %d entries", len(hist))
	}
}

func TestMessageAppendedEvent(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()
	b := mustRegister(t, svc, "Bob", "b@x.io")
	mustRegister(t, svc, "Alice", "a@x.io")

	ch, unsub := svc.bus.Subscribe("message.", 4)
	defer unsub()
	m, err := svc.SendMessage(ctx, b.ID, store.Voice{Seconds: 7, Waveform: []float64{0.2, 0.9}})
	if err != nil {
		t.Fatal(err)
	}
	evt := <-ch
	got := evt.Payload.(MessageAppended)
	if got.ConversationID != b.ID || got.Message.ID != m.ID {
		t.Errorf("event payload = %+v", got)
	}
}

func TestFormatFileSize(t *testing.T) {
	if got := FormatFileSize(1258291); got != "1.20 MB" {
		t.Errorf("FormatFileSize = %q, want 1.20 MB", got)
	}
}

func TestLoginAfterShutdownStartsNothing(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	mustRegister(t, svc, "Alice", "a@x.io")
	svc.Shutdown()

	if _, err := svc.Login(ctx, "a@x.io"); !errors.Is(err, ErrClosed) {
		t.Fatalf("Login after Shutdown err = %v, want ErrClosed", err)
	}
	if _, err := svc.Register(ctx, "Bob", "b@x.io", "pw"); !errors.Is(err, ErrClosed) {
		t.Fatalf("Register after Shutdown err = %v, want ErrClosed", err)
	}
	if _, err := svc.Restore(ctx); !errors.Is(err, ErrClosed) {
		t.Fatalf("Restore after Shutdown err = %v, want ErrClosed", err)
	}

	svc.mu.Lock()
	engine := svc.engine
	svc.mu.Unlock()
	if engine != nil {
		t.Error("a sync loop was started after Shutdown")
	}
	if got := svc.Status(); got != status.Stopping {
		t.Errorf("status = %s, want %s", got, status.Stopping)
	}
}

// failingKV fails every Set of one key.
type failingKV struct {
	kv.Store
	key string
}

func (f *failingKV) Set(ctx context.Context, key string, value []byte) error {
	if key == f.key {
		return errors.New("disk full")
	}
	return f.Store.Set(ctx, key, value)
}

func TestLogoutClearsSessionWhenStoreFails(t *testing.T) {
	backend := &failingKV{Store: kv.NewMemory()}
	st := store.New(backend, nil)
	svc := NewService(st, bus.New(), nil, nil, chatsync.Config{})
	t.Cleanup(svc.Shutdown)
	ctx := context.Background()

	mustRegister(t, svc, "Alice", "a@x.io")

	backend.key = "users"
	if err := svc.Logout(ctx); err == nil {
		t.Fatal("Logout succeeded although marking offline failed")
	}

	if _, err := svc.CurrentUser(); !errors.Is(err, ErrNoSession) {
		t.Errorf("CurrentUser err = %v, want ErrNoSession", err)
	}
	svc.mu.Lock()
	engine := svc.engine
	svc.mu.Unlock()
	if engine != nil {
		t.Error("engine still set after Logout")
	}
	if got := svc.Status(); got != status.SignedOut {
		t.Errorf("status = %s, want %s", got, status.SignedOut)
	}
}
