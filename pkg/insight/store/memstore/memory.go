// Package memstore is the in-memory Store used by tests and one-shot CLI
// runs that do not pass a database path.
package memstore

import (
	"context"
	"sync"

	"github.com/mirrorwell/insight/pkg/insight/store"
)

type memStore struct {
	mu            sync.RWMutex
	distributions map[distKey]store.DistributionSnapshot
	bridgeSets    map[string]store.BridgeSet
}

type distKey struct {
	userID     string
	windowDays int
}

// New creates an empty in-memory store.
func New() store.Store {
	return &memStore{
		distributions: make(map[distKey]store.DistributionSnapshot),
		bridgeSets:    make(map[string]store.BridgeSet),
	}
}

func (m *memStore) Close() error { return nil }

func (m *memStore) SaveDistribution(_ context.Context, snap store.DistributionSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.distributions[distKey{snap.UserID, snap.Result.WindowDays}] = snap
	return nil
}

func (m *memStore) GetDistribution(_ context.Context, userID string, windowDays int) (store.DistributionSnapshot, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap, ok := m.distributions[distKey{userID, windowDays}]
	return snap, ok, nil
}

func (m *memStore) SaveBridgeSet(_ context.Context, set store.BridgeSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bridgeSets[set.UserID] = set
	return nil
}

func (m *memStore) GetBridgeSet(_ context.Context, userID string) (store.BridgeSet, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	set, ok := m.bridgeSets[userID]
	return set, ok, nil
}
