package receipt

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// InMemoryStore holds receipts in a map guarded by a readers-writer lock.
// Loads run concurrently; saves serialize against each other and against
// loads, so a reader never observes a partially inserted record.
type InMemoryStore struct {
	mu       sync.RWMutex
	receipts map[uuid.UUID]Receipt
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{receipts: make(map[uuid.UUID]Receipt)}
}

// Save assigns a fresh random identifier and inserts the receipt under it.
// Identifiers are 128-bit random UUIDs, so collisions are not a practical
// concern and no retry logic exists.
func (s *InMemoryStore) Save(_ context.Context, rec Receipt) (uuid.UUID, error) {
	// Detach from the caller's backing array so later caller mutations cannot
	// reach stored state.
	rec.Items = append([]Item{}, rec.Items...)

	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.receipts[id] = rec
	return id, nil
}

// FindByID returns a copy of the stored receipt, or ErrNotFound if the
// identifier was never assigned. Stored state is never handed out by
// reference.
func (s *InMemoryStore) FindByID(_ context.Context, id uuid.UUID) (Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.receipts[id]
	if !ok {
		return Receipt{}, ErrNotFound
	}
	rec.Items = append([]Item{}, rec.Items...)
	return rec, nil
}
