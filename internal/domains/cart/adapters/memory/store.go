package memory

import (
	"context"
	"sync"
	"time"

	"github.com/slicelab/pizza-store-api/internal/domains/cart/domain"
	"github.com/slicelab/pizza-store-api/internal/domains/cart/ports"
)

var _ ports.Store = (*Store)(nil)

// Store is an in-memory session cart store. Each entry tracks the last
// activity time so idle sessions can be purged.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	now     func() time.Time
}

type entry struct {
	cart    *domain.Cart
	touched time.Time
}

func NewStore() *Store {
	return &Store{entries: map[string]*entry{}, now: time.Now}
}

// Get returns a copy of the session's cart, or an empty cart when the
// session has none yet.
func (s *Store) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[sessionID]; ok {
		return e.cart.Clone(), nil
	}
	return domain.NewCart(), nil
}

// Save stores a copy of the cart and refreshes the session's activity time.
func (s *Store) Save(_ context.Context, sessionID string, cart *domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = &entry{cart: cart.Clone(), touched: s.now()}
	return nil
}

// Delete drops the session's cart; unknown sessions are a no-op.
func (s *Store) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}

// PurgeIdle removes carts with no activity for at least maxIdle and returns
// how many sessions were dropped.
func (s *Store) PurgeIdle(_ context.Context, maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)
	s.mu.Lock()
	defer s.mu.Unlock()
	purged := 0
	for sessionID, e := range s.entries {
		if e.touched.Before(cutoff) {
			delete(s.entries, sessionID)
			purged++
		}
	}
	return purged
}
