package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemStore is an in-memory Store, used in tests and as a null backend.
type MemStore struct {
	mu     sync.Mutex
	values map[string]json.RawMessage

	// FailSet, when set, is returned from every Set call. Lets tests
	// exercise persistence-failure paths.
	FailSet error
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]json.RawMessage)}
}

func (s *MemStore) Get(ctx context.Context, keys ...string) (map[string]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]json.RawMessage, len(keys))
	for _, k := range keys {
		if v, ok := s.values[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (s *MemStore) Set(ctx context.Context, values map[string]json.RawMessage) error {
	if s.FailSet != nil {
		return s.FailSet
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range values {
		s.values[k] = v
	}
	return nil
}
