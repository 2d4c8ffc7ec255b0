package session

import (
	"context"
	"sync"
	"time"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
)

type memoryEntry struct {
	designs   []models.Pizza
	expiresAt time.Time
}

// MemoryStore keeps session orders in process memory. Entries expire ttl after
// their last write; a zero ttl keeps them forever. Writes sweep expired entries
// at most once per ttl, so abandoned sessions do not accumulate.
type MemoryStore struct {
	mu        sync.Mutex
	entries   map[string]*memoryEntry
	ttl       time.Duration
	now       func() time.Time
	nextSweep time.Time
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// live returns the entry for sessionID, dropping it when expired. Callers hold mu.
func (s *MemoryStore) live(sessionID string) *memoryEntry {
	entry, ok := s.entries[sessionID]
	if !ok {
		return nil
	}
	if s.ttl > 0 && !s.now().Before(entry.expiresAt) {
		delete(s.entries, sessionID)
		return nil
	}
	return entry
}

// sweep drops every expired entry once the sweep interval has passed. Callers hold mu.
func (s *MemoryStore) sweep() {
	if s.ttl <= 0 {
		return
	}
	now := s.now()
	if now.Before(s.nextSweep) {
		return
	}
	for id, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
	s.nextSweep = now.Add(s.ttl)
}

func (s *MemoryStore) Order(ctx context.Context, sessionID string) (*models.Order, error) {
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order := models.NewOrder()
	if entry := s.live(sessionID); entry != nil {
		order.Designs = append(order.Designs, entry.designs...)
	}
	return order, nil
}

func (s *MemoryStore) AddDesign(ctx context.Context, sessionID string, design models.Pizza) error {
	if sessionID == "" {
		return ErrInvalidSessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	entry := s.live(sessionID)
	if entry == nil {
		entry = &memoryEntry{}
		s.entries[sessionID] = entry
	}
	entry.designs = append(entry.designs, design)
	entry.expiresAt = s.now().Add(s.ttl)
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrInvalidSessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}

// Len returns the number of live sessions
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id := range s.entries {
		if s.live(id) != nil {
			n++
		}
	}
	return n
}

// Close releases nothing; it lets MemoryStore satisfy Store
func (s *MemoryStore) Close() error {
	return nil
}
