// Package kv provides the string-keyed byte stores that persist a chatzy profile.
//
// A Store is deliberately dumb: it knows nothing about JSON or the shapes kept
// under each key. Typed access lives in package store.
package kv

import "context"

// Store is a persistent string-keyed store with get/set/remove semantics.
// Get reports found=false for an absent key; Remove of an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}
