package selection

import (
	"scenegrip/internal/domain"
	"scenegrip/internal/scene"
)

// highlightMaterial is the shared material name for every outline
const highlightMaterial = "highlight"

// OverlayStore owns one outline overlay per highlighted entity. Overlays are
// created lazily on first highlight and reused for the rest of the session;
// after creation only their visibility toggles. Owned by the render tick.
type OverlayStore struct {
	graph    *scene.Graph
	overlays map[domain.EntityID]*scene.Node
}

// NewOverlayStore creates an empty overlay store for the graph
func NewOverlayStore(graph *scene.Graph) *OverlayStore {
	return &OverlayStore{
		graph:    graph,
		overlays: make(map[domain.EntityID]*scene.Node),
	}
}

// Highlight outlines the node. The first highlight of an entity builds its
// overlay: a wire box sized to the node's local bounds on a child visual
// that does not inherit scale, using the shared full-white material. Later
// highlights refresh the box to the node's current bounds and show the
// overlay again. Nil and untagged nodes are no-ops.
func (s *OverlayStore) Highlight(node *scene.Node) {
	if node == nil {
		return
	}
	entityID := node.Entity()
	if entityID == domain.NullEntity {
		return
	}

	overlay, ok := s.overlays[entityID]
	if !ok {
		white := s.graph.Material(highlightMaterial)
		if white == nil {
			white = s.graph.CreateMaterial(highlightMaterial)
			white.SetAmbient(1.0, 1.0, 1.0)
			white.SetDiffuse(1.0, 1.0, 1.0)
			white.SetSpecular(1.0, 1.0, 1.0)
			white.SetEmissive(1.0, 1.0, 1.0)
		}

		wireBox := s.graph.CreateWireBox()
		wireBox.SetBox(node.LocalBounds())

		overlay = s.graph.CreateNode(node.Name() + "/outline")
		overlay.SetInheritScale(false)
		overlay.SetGeometry(wireBox)
		overlay.SetMaterial(white)
		node.AddChild(overlay)

		s.overlays[entityID] = overlay
		return
	}

	// Nodes may have resized since the overlay was built
	if wireBox, ok := overlay.Geometry().(*scene.WireBox); ok {
		wireBox.SetBox(node.LocalBounds())
	}
	overlay.SetVisible(true)
}

// Lowlight hides the entity's overlay if one is registered. The overlay is
// kept for the next highlight, never destroyed.
func (s *OverlayStore) Lowlight(node *scene.Node) {
	if node == nil {
		return
	}
	entityID := node.Entity()
	if entityID == domain.NullEntity {
		return
	}
	if overlay, ok := s.overlays[entityID]; ok {
		overlay.SetVisible(false)
	}
}

// Overlay returns the registered overlay node for an entity, nil if none
func (s *OverlayStore) Overlay(id domain.EntityID) *scene.Node {
	return s.overlays[id]
}
