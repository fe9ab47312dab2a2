package cart

import (
	"context"
	"log"
	"sync"
)

// Manager hands out one Store per guest, constructing each over a per-guest
// Storage from the injected factory. Stores are cached for the lifetime of
// the process; two processes sharing one storage backend are last-writer-wins.
type Manager struct {
	mu      sync.Mutex
	stores  map[string]*Store
	factory func(guestID string) Storage
	logger  *log.Logger
}

func NewManager(factory func(guestID string) Storage, logger *log.Logger) *Manager {
	return &Manager{
		stores:  make(map[string]*Store),
		factory: factory,
		logger:  logger,
	}
}

// For returns the guest's Store, loading it from storage on first use.
func (m *Manager) For(ctx context.Context, guestID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[guestID]; ok {
		return s
	}
	s := New(ctx, m.factory(guestID), m.logger)
	m.stores[guestID] = s
	return s
}
