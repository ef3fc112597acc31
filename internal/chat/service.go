// Package chat is the operation surface of the chat core: sessions,
// contacts, conversations, calls, groups and emoji recents for the
// signed-in viewer of one profile.
package chat

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/matheus3301/chatzy/internal/bus"
	"github.com/matheus3301/chatzy/internal/contacts"
	"github.com/matheus3301/chatzy/internal/status"
	"github.com/matheus3301/chatzy/internal/store"
	chatsync "github.com/matheus3301/chatzy/internal/sync"
	"go.uber.org/zap"
)

var (
	// ErrNoSession is returned by operations that need a signed-in user.
	ErrNoSession = errors.New("no active session")
	// ErrClosed is returned when a session is started after Shutdown.
	ErrClosed = errors.New("chat service is shut down")
)

// Service owns the current session and its sync loop.
type Service struct {
	store    *store.Store
	bus      *bus.Bus
	status   *status.Machine
	logger   *zap.Logger
	syncCfg  chatsync.Config
	syncOpts []chatsync.Option

	mu     sync.Mutex
	user   *store.User
	engine *chatsync.Engine
	closed bool
}

// NewService creates a service with no active session.
func NewService(s *store.Store, b *bus.Bus, m *status.Machine, logger *zap.Logger, cfg chatsync.Config, opts ...chatsync.Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = status.NewMachine(b)
	}
	return &Service{
		store:    s,
		bus:      b,
		status:   m,
		logger:   logger,
		syncCfg:  cfg,
		syncOpts: opts,
	}
}

// Status returns the session state.
func (s *Service) Status() status.State {
	return s.status.Current()
}

// Restore resumes the session saved by a previous run, if any. A saved user
// that is no longer registered is forgotten.
func (s *Service) Restore(ctx context.Context) (*store.User, error) {
	if s.isClosed() {
		return nil, ErrClosed
	}
	saved, err := s.store.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("load saved session: %w", err)
	}
	if saved == nil {
		s.transition(status.SignedOut)
		return nil, nil
	}

	u, err := s.store.FindUserByID(ctx, saved.ID)
	if errors.Is(err, store.ErrNotFound) {
		s.logger.Warn("saved session user is not registered", zap.String("user_id", saved.ID))
		if err := s.store.ClearCurrentUser(ctx); err != nil {
			return nil, err
		}
		s.transition(status.SignedOut)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(ctx, *u); err != nil {
		return nil, err
	}
	s.logger.Info("session restored", zap.String("user_id", u.ID))
	return u, nil
}

// Register signs up a new user and signs them in.
func (s *Service) Register(ctx context.Context, name, email, password string) (*store.User, error) {
	if s.isClosed() {
		return nil, ErrClosed
	}
	u, err := s.store.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.end(ctx); err != nil {
		return nil, err
	}
	if err := s.begin(ctx, *u); err != nil {
		return nil, err
	}
	s.logger.Info("user registered", zap.String("user_id", u.ID))
	return u, nil
}

// Login signs in the user registered with email. Passwords are not checked.
// Any other active session is logged out first.
func (s *Service) Login(ctx context.Context, email string) (*store.User, error) {
	u, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	if err := s.end(ctx); err != nil {
		return nil, err
	}

	u.IsOnline = true
	u.LastSeen = s.store.Now()
	if err := s.store.SetPresence(ctx, u.ID, true, u.LastSeen); err != nil {
		return nil, err
	}
	if err := s.begin(ctx, *u); err != nil {
		return nil, err
	}
	s.logger.Info("user logged in", zap.String("user_id", u.ID))
	return u, nil
}

// Logout marks the user offline, stops the sync loop and forgets the saved
// session.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ErrNoSession
	}
	id := s.user.ID
	if err := s.end(ctx); err != nil {
		return err
	}
	s.logger.Info("user logged out", zap.String("user_id", id))
	return nil
}

// Shutdown stops the sync loop but keeps the saved session so the next
// daemon start resumes it. No session can begin afterwards.
func (s *Service) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.engine != nil {
		s.engine.Stop()
		s.engine = nil
	}
	s.user = nil
	s.transition(status.Stopping)
}

func (s *Service) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// begin starts a session for u. Callers hold s.mu.
func (s *Service) begin(ctx context.Context, u store.User) error {
	if s.closed {
		return ErrClosed
	}
	if err := s.store.SaveCurrentUser(ctx, u); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	e := chatsync.NewEngine(s.store, s.bus, s.logger, u.ID, s.syncCfg, s.syncOpts...)
	// The loop outlives the request that started it.
	e.Start(context.WithoutCancel(ctx))

	s.user = &u
	s.engine = e
	s.transition(status.Active)
	return nil
}

// end tears down the active session, if any. The in-memory session is gone
// even when the store writes that follow fail. Callers hold s.mu.
func (s *Service) end(ctx context.Context) error {
	if s.user == nil {
		return nil
	}
	id := s.user.ID
	s.engine.Stop()
	s.user = nil
	s.engine = nil
	s.transition(status.SignedOut)

	if err := s.store.SetPresence(ctx, id, false, s.store.Now()); err != nil {
		return fmt.Errorf("mark offline: %w", err)
	}
	if err := s.store.ClearCurrentUser(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *Service) transition(to status.State) {
	if s.status.Current() == to {
		return
	}
	if err := s.status.Transition(to); err != nil {
		s.logger.Warn("status transition rejected", zap.Error(err))
	}
}

// session returns a copy of the signed-in user and its loop.
func (s *Service) session() (store.User, *chatsync.Engine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return store.User{}, nil, ErrNoSession
	}
	return *s.user, s.engine, nil
}

// CurrentUser returns the signed-in user.
func (s *Service) CurrentUser() (*store.User, error) {
	u, _, err := s.session()
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile edits the signed-in user's profile.
func (s *Service) UpdateProfile(ctx context.Context, upd store.ProfileUpdate) (*store.User, error) {
	u, e, err := s.session()
	if err != nil {
		return nil, err
	}
	updated, err := s.store.UpdateProfile(ctx, u.ID, upd)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveCurrentUser(ctx, *updated); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.user != nil && s.user.ID == updated.ID {
		s.user = updated
	}
	s.mu.Unlock()

	s.refresh(ctx, e)
	return updated, nil
}

// Contacts rebuilds and returns the viewer's contact list.
func (s *Service) Contacts(ctx context.Context) ([]contacts.Contact, error) {
	_, e, err := s.session()
	if err != nil {
		return nil, err
	}
	if err := e.Refresh(ctx); err != nil {
		return nil, err
	}
	return e.Contacts(), nil
}

func (s *Service) refresh(ctx context.Context, e *chatsync.Engine) {
	if err := e.Refresh(ctx); err != nil {
		s.logger.Warn("refresh after write failed", zap.Error(err))
	}
}

// findContact looks id up in the viewer's current contact list.
func findContact(e *chatsync.Engine, id string) (contacts.Contact, error) {
	list := e.Contacts()
	i := slices.IndexFunc(list, func(c contacts.Contact) bool { return c.ID == id })
	if i < 0 {
		return contacts.Contact{}, fmt.Errorf("contact %q: %w", id, store.ErrNotFound)
	}
	return list[i], nil
}
