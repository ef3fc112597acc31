package store

import "context"

// ReadSet is the set of message IDs a viewer has read.
type ReadSet map[string]struct{}

// Has reports whether id was read.
func (r ReadSet) Has(id string) bool {
	_, ok := r[id]
	return ok
}

// ReadSet loads userID's read-set.
func (s *Store) ReadSet(ctx context.Context, userID string) (ReadSet, error) {
	ids, err := load[[]string](ctx, s, readKey(userID))
	if err != nil {
		return nil, err
	}
	set := make(ReadSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// MarkRead adds ids to userID's read-set and returns how many were new. The
// set only grows; nothing is written when every id was already present.
func (s *Store) MarkRead(ctx context.Context, userID string, ids []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := readKey(userID)
	stored, err := load[[]string](ctx, s, key)
	if err != nil {
		return 0, err
	}
	seen := make(ReadSet, len(stored))
	for _, id := range stored {
		seen[id] = struct{}{}
	}

	added := 0
	for _, id := range ids {
		if seen.Has(id) {
			continue
		}
		seen[id] = struct{}{}
		stored = append(stored, id)
		added++
	}
	if added == 0 {
		return 0, nil
	}
	return added, save(ctx, s, key, stored)
}
