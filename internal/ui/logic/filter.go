package logic

import (
	"fmt"
	"strings"

	"scenegrip/internal/domain"
)

// EntityFilter narrows the entity panel by a text query
type EntityFilter struct{}

// NewEntityFilter creates a new entity filter
func NewEntityFilter() *EntityFilter {
	return &EntityFilter{}
}

// Matches checks if an entity matches the given filter query
func (f *EntityFilter) Matches(entity domain.Entity, filterQuery string) bool {
	if filterQuery == "" {
		return true
	}

	query := strings.ToLower(strings.TrimSpace(filterQuery))

	// Check if it's a kind filter
	if strings.HasPrefix(query, "kind:") {
		kindFilter := strings.TrimPrefix(query, "kind:")
		return strings.Contains(strings.ToLower(string(entity.Kind)), kindFilter)
	}

	// "#3" matches the entity id exactly
	if strings.HasPrefix(query, "#") {
		return fmt.Sprintf("#%d", entity.ID) == query
	}

	return strings.Contains(strings.ToLower(entity.Name), query) ||
		strings.Contains(strings.ToLower(string(entity.Kind)), query)
}

// Apply returns the entities matching the query, preserving order
func (f *EntityFilter) Apply(entities []domain.Entity, filterQuery string) []domain.Entity {
	if filterQuery == "" {
		return entities
	}
	matched := make([]domain.Entity, 0, len(entities))
	for _, e := range entities {
		if f.Matches(e, filterQuery) {
			matched = append(matched, e)
		}
	}
	return matched
}
