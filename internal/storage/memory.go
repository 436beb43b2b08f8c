package storage

import (
	"context"
	"sync"

	"github.com/hammamikhairi/culinarycompanion/internal/domain"
)

// Compile-time interface check.
var _ domain.StateStore = (*MemoryStore)(nil)

// MemoryStore holds the aggregate in memory. Used by tests.
type MemoryStore struct {
	mu    sync.Mutex
	state *domain.AppState
	saves int
}

// NewMemoryStore creates a store with no persisted state.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the last saved aggregate, or the defaults when nothing was
// saved yet.
func (s *MemoryStore) Load(ctx context.Context) (*domain.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return domain.NewDefaultState(), nil
	}
	return s.state, nil
}

// Save keeps the aggregate in memory.
func (s *MemoryStore) Save(ctx context.Context, state *domain.AppState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.saves++
	return nil
}

// Saves returns how many times Save was called. Test hook.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
