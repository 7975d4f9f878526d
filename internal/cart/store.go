package cart

import (
	"context"
	"sync"

	"carameche/internal/domain"
)

// Store is the durable per-session cart slot: read on first access, written
// on every mutation. Implementations must treat corrupt stored state as an
// empty cart rather than an error.
type Store interface {
	Get(ctx context.Context, session string) (domain.Cart, error)
	Put(ctx context.Context, session string, cart domain.Cart) error
	Delete(ctx context.Context, session string) error
}

// MemoryStore is an in-process Store used in tests and as a fallback when no
// Redis is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]domain.Cart)}
}

func (s *MemoryStore) Get(_ context.Context, session string) (domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.carts[session], nil
}

func (s *MemoryStore) Put(_ context.Context, session string, cart domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[session] = cart
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, session string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, session)
	return nil
}
