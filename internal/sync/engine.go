package sync

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/matheus3301/chatzy/internal/bus"
	"github.com/matheus3301/chatzy/internal/contacts"
	"github.com/matheus3301/chatzy/internal/store"
	"go.uber.org/zap"
)

// Config holds the loop periods. A non-positive period disables its ticker.
type Config struct {
	MessagePoll     time.Duration
	Heartbeat       time.Duration
	CallSimulation  time.Duration
	CallProbability float64
	PresenceTimeout time.Duration
}

// DefaultConfig returns the production periods.
func DefaultConfig() Config {
	return Config{
		MessagePoll:     5 * time.Second,
		Heartbeat:       30 * time.Second,
		CallSimulation:  30 * time.Second,
		CallProbability: 0.05,
		PresenceTimeout: 2 * time.Minute,
	}
}

// Rand is the randomness the call simulation draws from.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand replaces the random source used by the call simulation.
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rand = r }
}

// IncomingCall is the payload of a call.incoming event.
type IncomingCall struct {
	ContactID     string    `json:"contactId"`
	ContactName   string    `json:"contactName"`
	ContactAvatar string    `json:"contactAvatar"`
	At            time.Time `json:"at"`
}

// Refreshed is the payload of a contacts.refreshed event.
type Refreshed struct {
	UserID   string `json:"userId"`
	Contacts int    `json:"contacts"`
	Unread   int    `json:"unread"`
}

// Engine is the per-session synchronization loop. It keeps an in-memory
// copy of the viewer's conversations and contact list, reloading both from
// the store on every poll, and keeps the viewer's presence fresh.
type Engine struct {
	store  *store.Store
	loader *contacts.Loader
	bus    *bus.Bus
	logger *zap.Logger
	cfg    Config
	rand   Rand
	userID string

	refreshMu     sync.Mutex
	mu            sync.RWMutex
	contacts      []contacts.Contact
	conversations map[string][]store.Message

	cancel context.CancelFunc
	done   chan struct{}
}

// NewEngine creates a loop for the session of userID.
func NewEngine(s *store.Store, b *bus.Bus, logger *zap.Logger, userID string, cfg Config, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		store:         s,
		loader:        contacts.NewLoader(s, cfg.PresenceTimeout),
		bus:           b,
		logger:        logger.With(zap.String("user_id", userID)),
		cfg:           cfg,
		rand:          rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
		userID:        userID,
		conversations: make(map[string][]store.Message),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// UserID returns the viewer this loop serves.
func (e *Engine) UserID() string { return e.userID }

// Start sends the first heartbeat, builds the first snapshot and launches
// the loop. Ticks never overlap: one goroutine serves every timer.
func (e *Engine) Start(ctx context.Context) {
	ctx, e.cancel = context.WithCancel(ctx)
	e.done = make(chan struct{})

	e.heartbeat(ctx)
	if err := e.Refresh(ctx); err != nil {
		e.logger.Error("initial refresh failed", zap.Error(err))
	}

	go e.run(ctx)
	e.logger.Info("sync loop started",
		zap.Duration("message_poll", e.cfg.MessagePoll),
		zap.Duration("heartbeat", e.cfg.Heartbeat),
		zap.Duration("call_simulation", e.cfg.CallSimulation),
	)
}

// Stop cancels the loop and waits for it to exit. No tick fires after Stop
// returns. Stop is a no-op on an engine that was never started.
func (e *Engine) Stop() {
	if e.cancel == nil {
		return
	}
	e.cancel()
	<-e.done
}

func ticker(d time.Duration) (<-chan time.Time, func()) {
	if d <= 0 {
		return nil, func() {}
	}
	t := time.NewTicker(d)
	return t.C, t.Stop
}

func (e *Engine) run(ctx context.Context) {
	defer close(e.done)

	poll, stopPoll := ticker(e.cfg.MessagePoll)
	defer stopPoll()
	beat, stopBeat := ticker(e.cfg.Heartbeat)
	defer stopBeat()
	calls, stopCalls := ticker(e.cfg.CallSimulation)
	defer stopCalls()

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("sync loop stopped")
			return
		case <-poll:
			if err := e.Refresh(ctx); err != nil {
				e.logger.Warn("refresh failed", zap.Error(err))
			}
		case <-beat:
			e.heartbeat(ctx)
		case <-calls:
			e.simulateCall()
		}
	}
}

// Refresh reloads every conversation of the viewer, rebuilds the contact
// list and publishes contacts.refreshed.
func (e *Engine) Refresh(ctx context.Context) error {
	e.refreshMu.Lock()
	defer e.refreshMu.Unlock()

	in, err := e.loader.Gather(ctx, e.userID)
	if err != nil {
		return fmt.Errorf("gather contacts: %w", err)
	}
	list := contacts.Build(in)

	convs := make(map[string][]store.Message, len(in.Conversations)+len(in.GroupConversations))
	for id, log := range in.Conversations {
		convs[id] = log
	}
	for id, log := range in.GroupConversations {
		convs[id] = log
	}

	e.mu.Lock()
	e.contacts = list
	e.conversations = convs
	e.mu.Unlock()

	unread := 0
	for _, c := range list {
		unread += c.UnreadCount
	}
	e.bus.Publish(bus.NewEvent(bus.KindContactsRefreshed, Refreshed{
		UserID:   e.userID,
		Contacts: len(list),
		Unread:   unread,
	}))
	return nil
}

// Contacts returns the contact list built by the last refresh.
func (e *Engine) Contacts() []contacts.Contact {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.contacts)
}

// Conversation returns the cached log shared with a user or group, as of
// the last refresh.
func (e *Engine) Conversation(id string) []store.Message {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.conversations[id])
}

func (e *Engine) heartbeat(ctx context.Context) {
	if err := e.store.SetPresence(ctx, e.userID, true, e.store.Now()); err != nil {
		e.logger.Warn("heartbeat failed", zap.Error(err))
	}
}

// simulateCall rings the viewer from a random non-group contact with
// probability CallProbability.
func (e *Engine) simulateCall() {
	if e.rand.Float64() >= e.cfg.CallProbability {
		return
	}

	e.mu.RLock()
	var pool []contacts.Contact
	for _, c := range e.contacts {
		if !c.IsGroup {
			pool = append(pool, c)
		}
	}
	e.mu.RUnlock()
	if len(pool) == 0 {
		return
	}

	c := pool[e.rand.IntN(len(pool))]
	e.logger.Info("simulated incoming call", zap.String("contact_id", c.ID))
	e.bus.Publish(bus.NewEvent(bus.KindCallIncoming, IncomingCall{
		ContactID:     c.ID,
		ContactName:   c.Name,
		ContactAvatar: c.Avatar,
		At:            e.store.Now(),
	}))
}
