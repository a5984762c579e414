package session

import (
	"context"
	"encoding/json"
	"sync"

	"shalean-booking-api/internal/domain/booking"
	"shalean-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store for tests. It round-trips through JSON
// so it catches the same serialization mistakes the Redis store would.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[uuid.UUID][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[uuid.UUID][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, customerID uuid.UUID) (*booking.Selection, error) {
	s.mu.RLock()
	raw, ok := s.data[customerID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	var sel booking.Selection
	if err := json.Unmarshal(raw, &sel); err != nil {
		return nil, errs.Wrap(err, "failed to decode wizard session")
	}
	return &sel, nil
}

func (s *MemoryStore) Save(_ context.Context, customerID uuid.UUID, sel *booking.Selection) error {
	raw, err := json.Marshal(sel)
	if err != nil {
		return errs.Wrap(err, "failed to encode wizard session")
	}

	s.mu.Lock()
	s.data[customerID] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, customerID uuid.UUID) error {
	s.mu.Lock()
	delete(s.data, customerID)
	s.mu.Unlock()
	return nil
}
