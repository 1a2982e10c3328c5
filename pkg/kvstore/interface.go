// Package kvstore provides string slot storage backed by Redis, PostgreSQL or memory.
package kvstore

import "context"

// Store reads and overwrites whole string values by key.
type Store interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}
