package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Store owns all live session carts, keyed by a server-issued id. It replaces
// the ambient shared cart of the original storefront with an explicitly owned
// object injected into its consumers.
type Store struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*Cart
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{
		carts: make(map[uuid.UUID]*Cart),
	}
}

// Create registers a new empty cart and returns its session id.
func (s *Store) Create() (uuid.UUID, *Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	c := newCart()
	s.carts[id] = c
	return id, c
}

// Get returns the cart for the session id, if one exists.
func (s *Store) Get(id uuid.UUID) (*Cart, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[id]
	return c, ok
}

// Delete drops the cart for the session id. Unknown ids are ignored.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, id)
}

// Len returns the number of live carts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}
