package contacts

import (
	"context"
	"fmt"
	"time"

	"github.com/matheus3301/chatzy/internal/store"
)

// Loader gathers a contact-list snapshot from the store.
type Loader struct {
	store           *store.Store
	presenceTimeout time.Duration
}

// NewLoader creates a loader. presenceTimeout is passed through to Input.
func NewLoader(s *store.Store, presenceTimeout time.Duration) *Loader {
	return &Loader{store: s, presenceTimeout: presenceTimeout}
}

// Gather reads every key the contact list of viewerID depends on, reloading
// each conversation log in full.
func (l *Loader) Gather(ctx context.Context, viewerID string) (Input, error) {
	users, err := l.store.ListUsers(ctx)
	if err != nil {
		return Input{}, fmt.Errorf("list users: %w", err)
	}

	in := Input{
		Users:              users,
		Conversations:      make(map[string][]store.Message, len(users)),
		GroupConversations: make(map[string][]store.Message),
		Now:                l.store.Now(),
		PresenceTimeout:    l.presenceTimeout,
	}

	found := false
	for _, u := range users {
		if u.ID == viewerID {
			in.Viewer = u
			found = true
			continue
		}
		log, err := l.store.LoadAll(ctx, viewerID, u.ID)
		if err != nil {
			return Input{}, fmt.Errorf("load conversation with %q: %w", u.ID, err)
		}
		in.Conversations[u.ID] = log
	}
	if !found {
		return Input{}, fmt.Errorf("viewer %q: %w", viewerID, store.ErrNotFound)
	}

	if in.Groups, err = l.store.Groups(ctx, viewerID); err != nil {
		return Input{}, fmt.Errorf("list groups: %w", err)
	}
	for _, g := range in.Groups {
		log, err := l.store.LoadGroup(ctx, g.ID)
		if err != nil {
			return Input{}, fmt.Errorf("load group %q: %w", g.ID, err)
		}
		in.GroupConversations[g.ID] = log
	}

	if in.Read, err = l.store.ReadSet(ctx, viewerID); err != nil {
		return Input{}, fmt.Errorf("load read-set: %w", err)
	}
	return in, nil
}

// Load gathers and builds viewerID's contact list.
func (l *Loader) Load(ctx context.Context, viewerID string) ([]Contact, error) {
	in, err := l.Gather(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return Build(in), nil
}
