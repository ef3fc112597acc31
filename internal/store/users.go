package store

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// DefaultAvatar is assigned to users who sign up without one.
const DefaultAvatar = "/placeholder.svg?height=40&width=40"

// ListUsers returns every registered user in registration order.
func (s *Store) ListUsers(ctx context.Context) ([]User, error) {
	return load[[]User](ctx, s, usersKey)
}

// FindUserByEmail returns the user registered with email.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("user with email %q: %w", email, ErrNotFound)
}

// FindUserByID returns the user with the given ID.
func (s *Store) FindUserByID(ctx context.Context, id string) (*User, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", id, ErrNotFound)
}

// Register creates a user who starts out online. The password is required, as
// on the signup form, but it is never stored or checked.
func (s *Store) Register(ctx context.Context, name, email, password string) (*User, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return nil, fmt.Errorf("register %q: %w", email, ErrDuplicateEmail)
		}
	}

	u := User{
		ID:       s.newID(),
		Name:     name,
		Email:    email,
		Avatar:   DefaultAvatar,
		IsOnline: true,
		LastSeen: s.now(),
	}
	if err := save(ctx, s, usersKey, append(users, u)); err != nil {
		return nil, err
	}
	return &u, nil
}

// SetPresence updates a user's presence. An unknown ID is a benign race and
// is ignored.
func (s *Store) SetPresence(ctx context.Context, id string, online bool, lastSeen time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.ListUsers(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users[i].IsOnline = online
			users[i].LastSeen = lastSeen
			return save(ctx, s, usersKey, users)
		}
	}
	return nil
}

// UpdateProfile applies a partial profile update and returns the result.
func (s *Store) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range users {
		if users[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("update profile %q: %w", id, ErrNotFound)
	}

	u := users[idx]
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		u.Name = name
	}
	if upd.Email != nil {
		email := strings.TrimSpace(*upd.Email)
		if email == "" {
			return nil, fmt.Errorf("%w: email cannot be empty", ErrInvalidInput)
		}
		for i, other := range users {
			if i != idx && other.Email == email {
				return nil, fmt.Errorf("update profile %q: %w", id, ErrDuplicateEmail)
			}
		}
		u.Email = email
	}
	if upd.Avatar != nil {
		u.Avatar = *upd.Avatar
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}

	users[idx] = u
	if err := save(ctx, s, usersKey, users); err != nil {
		return nil, err
	}
	return &u, nil
}
