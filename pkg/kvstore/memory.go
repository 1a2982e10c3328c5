package kvstore

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemory returns a process-local Store. Values are lost on exit.
func NewMemory() Store {
	return &memoryStore{slots: make(map[string]string)}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.slots[key]
	return v, ok, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = value
	return nil
}

func (s *memoryStore) Ping(context.Context) error { return nil }

func (s *memoryStore) Close() error { return nil }
