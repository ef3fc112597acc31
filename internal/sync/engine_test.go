package sync

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matheus3301/chatzy/internal/bus"
	"github.com/matheus3301/chatzy/internal/kv"
	"github.com/matheus3301/chatzy/internal/store"
	"go.uber.org/zap"
)

type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(int) int     { return r.n }

func testStore(t *testing.T) *store.Store {
	t.Helper()
	n := 0
	return store.New(kv.NewMemory(), nil, store.WithIDs(func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}))
}

func register(t *testing.T, s *store.Store, name, email string) *store.User {
	t.Helper()
	u, err := s.Register(context.Background(), name, email, "pw")
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func quiet() Config {
	return Config{}
}

func waitFor(t *testing.T, ch <-chan bus.Event, kind string) bus.Event {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Kind == kind {
				return evt
			}
		case <-timeout:
			t.Fatalf("timeout waiting for %s", kind)
		}
	}
}

func TestStartBuildsSnapshotAndHeartbeats(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	a := register(t, s, "Alice", "a@x.io")
	b := register(t, s, "Bob", "b@x.io")
	if err := s.SetPresence(ctx, a.ID, false, time.Time{}); err != nil {
		t.Fatal(err)
	}

	e := NewEngine(s, bus.New(), zap.NewNop(), a.ID, quiet())
	e.Start(ctx)
	defer e.Stop()

	me, err := s.FindUserByID(ctx, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !me.IsOnline || me.LastSeen.IsZero() {
		t.Errorf("presence after start = %v/%v, want online with lastSeen", me.IsOnline, me.LastSeen)
	}

	cs := e.Contacts()
	if len(cs) != 1 || cs[0].ID != b.ID {
		t.Fatalf("contacts = %+v, want just Bob", cs)
	}
}

func TestPollPicksUpNewMessages(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	a := register(t, s, "Alice", "a@x.io")
	b := register(t, s, "Bob", "b@x.io")

	events := bus.New()
	ch, unsub := events.Subscribe("contacts.", 64)
	defer unsub()

	e := NewEngine(s, events, nil, b.ID, Config{MessagePoll: 10 * time.Millisecond})
	e.Start(ctx)
	defer e.Stop()
	waitFor(t, ch, bus.KindContactsRefreshed)

	// Another session writes straight to the store.
	if err := s.Append(ctx, a.ID, b.ID, s.NewMessage(*a, store.Text{Body: "ping"})); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		evt := waitFor(t, ch, bus.KindContactsRefreshed)
		if evt.Payload.(Refreshed).Unread == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("poll never surfaced the new message")
		}
	}

	if got := e.Conversation(a.ID); len(got) != 1 || got[0].Content != (store.Text{Body: "ping"}) {
		t.Errorf("cached conversation = %+v", got)
	}
	if c := e.Contacts()[0]; c.LastMessage != "ping" || c.UnreadCount != 1 {
		t.Errorf("contact = %q/%d, want ping/1", c.LastMessage, c.UnreadCount)
	}
}

func TestSimulatedCall(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	a := register(t, s, "Alice", "a@x.io")
	b := register(t, s, "Bob", "b@x.io")
	c := register(t, s, "Carol", "c@x.io")
	if _, err := s.CreateGroup(ctx, a.ID, store.NewGroup{Name: "Team", Members: []string{b.ID, c.ID}}); err != nil {
		t.Fatal(err)
	}

	events := bus.New()
	ch, unsub := events.Subscribe("call.", 8)
	defer unsub()

	cfg := Config{CallSimulation: 10 * time.Millisecond, CallProbability: 0.05}
	// Index 1 among non-group contacts is Carol; the group must be skipped.
	e := NewEngine(s, events, nil, a.ID, cfg, WithRand(fixedRand{f: 0.01, n: 1}))
	e.Start(ctx)
	defer e.Stop()

	call := waitFor(t, ch, bus.KindCallIncoming).Payload.(IncomingCall)
	if call.ContactID != c.ID || call.ContactName != "Carol" {
		t.Errorf("call from %s (%s), want Carol", call.ContactID, call.ContactName)
	}
}

func TestSimulatedCallProbability(t *testing.T) {
	s := testStore(t)
	a := register(t, s, "Alice", "a@x.io")
	register(t, s, "Bob", "b@x.io")

	events := bus.New()
	ch, unsub := events.Subscribe("call.", 8)
	defer unsub()

	e := NewEngine(s, events, nil, a.ID, Config{CallProbability: 0.05}, WithRand(fixedRand{f: 0.05}))
	e.Start(context.Background())
	defer e.Stop()

	for range 10 {
		e.simulateCall()
	}
	select {
	case evt := <-ch:
		t.Errorf("unexpected call at threshold: %+v", evt)
	default:
	}
}

func TestStopHaltsTicks(t *testing.T) {
	s := testStore(t)
	a := register(t, s, "Alice", "a@x.io")

	events := bus.New()
	e := NewEngine(s, events, nil, a.ID, Config{MessagePoll: 5 * time.Millisecond})
	e.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	e.Stop()

	ch, unsub := events.Subscribe("contacts.", 8)
	defer unsub()
	select {
	case evt := <-ch:
		t.Errorf("tick after Stop: %+v", evt)
	case <-time.After(50 * time.Millisecond):
	}

	// A second Stop is harmless.
	e.Stop()
}

func TestHeartbeatAdvancesLastSeen(t *testing.T) {
	// Every read of the clock moves it forward a second.
	var ticks atomic.Int64
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s := store.New(kv.NewMemory(), nil, store.WithClock(func() time.Time {
		return base.Add(time.Duration(ticks.Add(1)) * time.Second)
	}))
	ctx := context.Background()
	a := register(t, s, "Alice", "a@x.io")

	lastSeen := func() time.Time {
		t.Helper()
		u, err := s.FindUserByID(ctx, a.ID)
		if err != nil {
			t.Fatal(err)
		}
		return u.LastSeen
	}

	e := NewEngine(s, bus.New(), nil, a.ID, Config{Heartbeat: 10 * time.Millisecond})
	e.Start(ctx)
	atStart := lastSeen()
	if atStart.IsZero() {
		t.Fatal("no lastSeen after Start")
	}

	deadline := time.After(2 * time.Second)
	for !lastSeen().After(atStart) {
		select {
		case <-deadline:
			e.Stop()
			t.Fatalf("lastSeen stuck at %v", atStart)
		case <-time.After(5 * time.Millisecond):
		}
	}

	e.Stop()
	stopped := lastSeen()
	time.Sleep(50 * time.Millisecond)
	if got := lastSeen(); !got.Equal(stopped) {
		t.Errorf("lastSeen moved after Stop: %v -> %v", stopped, got)
	}
}

func TestStopWithoutStart(t *testing.T) {
	e := NewEngine(testStore(t), nil, nil, "nobody", DefaultConfig())
	e.Stop()
}

func TestRefreshUnknownViewer(t *testing.T) {
	e := NewEngine(testStore(t), nil, nil, "ghost", quiet())
	if err := e.Refresh(context.Background()); err == nil {
		t.Error("Refresh for an unregistered viewer should fail")
	}
}
