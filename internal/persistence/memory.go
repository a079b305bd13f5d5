// Package persistence provides Store implementations for the activity
// ledger. The in-memory store backs unit tests and throwaway sessions; the
// sqlite subpackage is the durable backend.
package persistence

import (
	"context"
	"sync"

	"github.com/hurstk8/ProductivityCompetition/internal/domain"
)

// MemoryStore keeps both collections in memory. It satisfies the same
// full-rewrite contract as the durable store: loads return copies, saves
// replace the whole collection.
type MemoryStore struct {
	mu         sync.RWMutex
	users      []domain.User
	activities []domain.Activity
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// LoadUsers implements domain.Store.
func (m *MemoryStore) LoadUsers(ctx context.Context) ([]domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

// SaveUsers implements domain.Store.
func (m *MemoryStore) SaveUsers(ctx context.Context, users []domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = make([]domain.User, len(users))
	copy(m.users, users)
	return nil
}

// LoadActivities implements domain.Store.
func (m *MemoryStore) LoadActivities(ctx context.Context) ([]domain.Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Activity, len(m.activities))
	copy(out, m.activities)
	return out, nil
}

// SaveActivities implements domain.Store.
func (m *MemoryStore) SaveActivities(ctx context.Context, activities []domain.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activities = make([]domain.Activity, len(activities))
	copy(m.activities, activities)
	return nil
}

var _ domain.Store = (*MemoryStore)(nil)
