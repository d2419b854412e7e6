package lock

import (
	"context"
	"sync"
)

// MemoryLocker serve para uma única instância da API
type MemoryLocker struct {
	mu     sync.Mutex
	locked map[string]struct{}
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locked: make(map[string]struct{})}
}

func (m *MemoryLocker) TryLock(_ context.Context, accountID string) (func(), bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.locked[accountID]; ok {
		return nil, false, nil
	}
	m.locked[accountID] = struct{}{}

	var once sync.Once
	release := func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.locked, accountID)
			m.mu.Unlock()
		})
	}

	return release, true, nil
}
