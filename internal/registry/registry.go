package registry

import (
	"sync"

	"scenegrip/internal/domain"
)

// Store maps stable entity ids to entity records. Ids are allocated here and
// never reused within a session, so a stale id can never alias a new entity.
type Store interface {
	Register(name string, kind domain.EntityKind) domain.Entity
	Entity(id domain.EntityID) (domain.Entity, bool)
	Entities() []domain.Entity
	Reset()
}

// MemoryStore is an in-memory implementation of Store
type MemoryStore struct {
	mu       sync.RWMutex
	nextID   domain.EntityID
	entities map[domain.EntityID]domain.Entity
	order    []domain.EntityID
}

// NewMemoryStore creates a new memory-based entity store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entities: make(map[domain.EntityID]domain.Entity),
	}
}

// Register allocates the next id and records the entity under it
func (s *MemoryStore) Register(name string, kind domain.EntityKind) domain.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	entity := domain.Entity{ID: s.nextID, Name: name, Kind: kind}
	s.entities[entity.ID] = entity
	s.order = append(s.order, entity.ID)
	return entity
}

// Entity looks up a registered entity by id
func (s *MemoryStore) Entity(id domain.EntityID) (domain.Entity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.entities[id]
	return entity, ok
}

// Entities returns all registered entities in registration order
func (s *MemoryStore) Entities() []domain.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make([]domain.Entity, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.entities[id])
	}
	return result
}

// Reset drops all entities but keeps the id counter running, so ids from a
// previous scene stay invalid instead of pointing at new entities
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entities = make(map[domain.EntityID]domain.Entity)
	s.order = nil
}
