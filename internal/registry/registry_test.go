package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"scenegrip/internal/domain"
)

func TestRegisterAllocatesSequentialIds(t *testing.T) {
	s := NewMemoryStore()

	box := s.Register("box", domain.KindModel)
	lamp := s.Register("lamp", domain.KindLight)

	require.Equal(t, domain.EntityID(1), box.ID)
	require.Equal(t, domain.EntityID(2), lamp.ID)

	got, ok := s.Entity(box.ID)
	require.True(t, ok)
	require.Equal(t, "box", got.Name)
	require.Equal(t, domain.KindModel, got.Kind)
}

func TestNullEntityIsNeverAllocated(t *testing.T) {
	s := NewMemoryStore()

	first := s.Register("first", domain.KindModel)
	require.NotEqual(t, domain.NullEntity, first.ID)

	_, ok := s.Entity(domain.NullEntity)
	require.False(t, ok)
}

func TestEntitiesReturnsRegistrationOrder(t *testing.T) {
	s := NewMemoryStore()
	names := []string{"crate", "lamp", "drone", "beacon"}
	for _, name := range names {
		s.Register(name, domain.KindModel)
	}

	entities := s.Entities()
	require.Len(t, entities, len(names))
	for i, e := range entities {
		require.Equal(t, names[i], e.Name)
	}
}

func TestResetKeepsIdCounterMonotonic(t *testing.T) {
	s := NewMemoryStore()
	old := s.Register("old", domain.KindModel)

	s.Reset()
	require.Empty(t, s.Entities())

	// Stale ids must not resolve to entities of the next scene.
	fresh := s.Register("fresh", domain.KindModel)
	require.Greater(t, fresh.ID, old.ID)
	_, ok := s.Entity(old.ID)
	require.False(t, ok)
}
