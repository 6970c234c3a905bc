package cache

import (
	"sync"

	"github.com/alexdonduk/SwiftLint/pkg/types"
)

// MemoryCache implements Cache with an in-process map. Entries do not
// survive the process; it exists for tests and for runs where the
// on-disk cache is disabled but the engine still wants the interface.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[memoryKey][]types.Violation
}

type memoryKey struct {
	blob        string
	fingerprint string
}

// NewMemory creates a new in-memory cache.
func NewMemory() *MemoryCache {
	return &MemoryCache{
		entries: make(map[memoryKey][]types.Violation),
	}
}

// Get retrieves cached violations.
func (m *MemoryCache) Get(id types.BlobID, fingerprint string) ([]types.Violation, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, ok := m.entries[memoryKey{id.Hex(), fingerprint}]
	if !ok {
		return nil, false, nil
	}

	// Return a copy so callers cannot mutate the cached slice.
	result := make([]types.Violation, len(stored))
	copy(result, stored)
	return result, true, nil
}

// Put stores violations, replacing any previous entry for the key.
func (m *MemoryCache) Put(id types.BlobID, fingerprint string, violations []types.Violation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]types.Violation, len(violations))
	copy(stored, violations)
	m.entries[memoryKey{id.Hex(), fingerprint}] = stored
	return nil
}

// Close is a no-op for the in-memory cache.
func (m *MemoryCache) Close() error {
	return nil
}
