package selection

import (
	"scenegrip/internal/domain"
	"scenegrip/internal/scene"
)

// List is the ordered set of currently selected entities, insertion order
// preserved. It appends whatever it is given; keeping the set free of
// duplicates is the Manager's job, since that depends on modifier semantics.
// Owned by the render tick, so no locking.
type List struct {
	graph    *scene.Graph
	overlays *OverlayStore
	entities []domain.EntityID
}

// NewList creates an empty selection backed by the graph and overlay store
func NewList(graph *scene.Graph, overlays *OverlayStore) *List {
	return &List{graph: graph, overlays: overlays}
}

// Add appends the entity and highlights its node
func (l *List) Add(id domain.EntityID) {
	l.entities = append(l.entities, id)
	l.overlays.Highlight(l.graph.NodeByEntity(id))
}

// ClearAll lowlights every selected entity's node and empties the set
func (l *List) ClearAll() {
	for _, id := range l.entities {
		l.overlays.Lowlight(l.graph.NodeByEntity(id))
	}
	l.entities = nil
}

// Entities returns the ordered selection as a copy for event payloads
func (l *List) Entities() []domain.EntityID {
	out := make([]domain.EntityID, len(l.entities))
	copy(out, l.entities)
	return out
}

// Len returns the number of selected entities
func (l *List) Len() int {
	return len(l.entities)
}

// Contains reports whether the entity is currently selected
func (l *List) Contains(id domain.EntityID) bool {
	for _, e := range l.entities {
		if e == id {
			return true
		}
	}
	return false
}
