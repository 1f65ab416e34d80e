package store

import (
	"context"
	"sync"

	"github.com/echotab/echotab/pkg/dashboard"
	"github.com/echotab/echotab/pkg/errors"
)

// MemoryStore keeps encoded profiles in a map. Loads return fresh copies.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string][]byte)}
}

func (s *MemoryStore) Load(ctx context.Context, profile string) (*dashboard.State, error) {
	if err := errors.ValidateProfileName(profile); err != nil {
		return nil, err
	}
	s.mu.RLock()
	data, ok := s.profiles[profile]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return decode(data)
}

func (s *MemoryStore) Save(ctx context.Context, profile string, st *dashboard.State) error {
	if err := errors.ValidateProfileName(profile); err != nil {
		return err
	}
	data, err := encode(st)
	if err != nil {
		return storageError(err, "profile %s", profile)
	}
	s.mu.Lock()
	s.profiles[profile] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, profile string) error {
	s.mu.Lock()
	delete(s.profiles, profile)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
