package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// GroupIDPrefix marks group identifiers so they never collide with user IDs.
const GroupIDPrefix = "group_"

// IsGroupID reports whether id names a group.
func IsGroupID(id string) bool {
	return strings.HasPrefix(id, GroupIDPrefix)
}

// NewGroup describes a group to create.
type NewGroup struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Avatar      string   `json:"avatar"`
	Members     []string `json:"members"` // excluding the creator
}

// CreateGroup creates a group owned by creatorID and records it in the group
// list of every member. The creator is the first member and the only admin.
func (s *Store) CreateGroup(ctx context.Context, creatorID string, ng NewGroup) (*GroupChat, error) {
	name := strings.TrimSpace(ng.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: group name is required", ErrInvalidInput)
	}

	members := []string{creatorID}
	for _, id := range ng.Members {
		if id != creatorID && !slices.Contains(members, id) {
			members = append(members, id)
		}
	}
	if len(members) < 2 {
		return nil, fmt.Errorf("%w: a group needs at least one other member", ErrInvalidInput)
	}
	for _, id := range members {
		if _, err := s.FindUserByID(ctx, id); err != nil {
			return nil, err
		}
	}

	g := GroupChat{
		ID:          GroupIDPrefix + s.newID(),
		Name:        name,
		Description: ng.Description,
		Avatar:      ng.Avatar,
		Members:     members,
		Admins:      []string{creatorID},
		CreatedBy:   creatorID,
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range members {
		key := groupsKey(id)
		groups, err := load[[]GroupChat](ctx, s, key)
		if err != nil {
			return nil, err
		}
		if err := save(ctx, s, key, append(groups, g)); err != nil {
			return nil, fmt.Errorf("add group to %q: %w", id, err)
		}
	}
	return &g, nil
}

// Groups returns the groups userID created or joined, in creation order.
func (s *Store) Groups(ctx context.Context, userID string) ([]GroupChat, error) {
	return load[[]GroupChat](ctx, s, groupsKey(userID))
}

// FindGroup returns groupID if userID is a member of it.
func (s *Store) FindGroup(ctx context.Context, userID, groupID string) (*GroupChat, error) {
	groups, err := s.Groups(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].ID == groupID {
			return &groups[i], nil
		}
	}
	return nil, fmt.Errorf("group %q for user %q: %w", groupID, userID, ErrNotFound)
}
