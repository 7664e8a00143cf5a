package selection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"scenegrip/internal/domain"
	"scenegrip/internal/scene"
)

func newTaggedNode(g *scene.Graph, name string, id domain.EntityID, pos domain.Vec2) *scene.Node {
	n := g.CreateNode(name)
	n.SetGeometry(scene.NewBoxGeometry(4, 4))
	n.SetLocalPosition(pos)
	n.SetEntity(id)
	g.AddRoot(n)
	return n
}

func TestHighlightBuildsOverlayOnFirstUse(t *testing.T) {
	g := scene.NewGraph()
	crate := newTaggedNode(g, "crate", 1, domain.Vec2{X: 5, Y: 5})
	s := NewOverlayStore(g)

	s.Highlight(crate)

	overlay := s.Overlay(1)
	require.NotNil(t, overlay)
	require.Same(t, crate, overlay.Parent())
	require.False(t, overlay.InheritsScale())
	require.True(t, overlay.Visible())

	wireBox, ok := overlay.Geometry().(*scene.WireBox)
	require.True(t, ok)
	require.Equal(t, crate.LocalBounds(), wireBox.Box())

	white := overlay.Material()
	require.NotNil(t, white)
	require.Equal(t, domain.White, white.Ambient())
	require.Equal(t, domain.White, white.Diffuse())
	require.Equal(t, domain.White, white.Specular())
	require.Equal(t, domain.White, white.Emissive())
}

func TestHighlightIsIdempotent(t *testing.T) {
	g := scene.NewGraph()
	crate := newTaggedNode(g, "crate", 1, domain.Vec2{X: 5, Y: 5})
	s := NewOverlayStore(g)

	s.Highlight(crate)
	first := s.Overlay(1)
	s.Highlight(crate)

	require.Same(t, first, s.Overlay(1))
	require.Len(t, crate.Children(), 1)
}

func TestLowlightHidesOverlayAndHighlightReusesIt(t *testing.T) {
	g := scene.NewGraph()
	crate := newTaggedNode(g, "crate", 1, domain.Vec2{X: 5, Y: 5})
	s := NewOverlayStore(g)

	s.Highlight(crate)
	created := s.Overlay(1)

	s.Lowlight(crate)
	require.Same(t, created, s.Overlay(1))
	require.False(t, created.Visible())

	s.Highlight(crate)
	require.Same(t, created, s.Overlay(1))
	require.True(t, created.Visible())
}

func TestHighlightRefreshesBoundsAfterResize(t *testing.T) {
	g := scene.NewGraph()
	crate := newTaggedNode(g, "crate", 1, domain.Vec2{X: 5, Y: 5})
	s := NewOverlayStore(g)

	s.Highlight(crate)
	s.Lowlight(crate)

	crate.SetLocalScale(domain.Vec2{X: 2, Y: 2})
	s.Highlight(crate)

	wireBox := s.Overlay(1).Geometry().(*scene.WireBox)
	require.Equal(t, crate.LocalBounds(), wireBox.Box())
}

func TestNullAndUnregisteredAreNoOps(t *testing.T) {
	g := scene.NewGraph()
	s := NewOverlayStore(g)

	require.NotPanics(t, func() {
		s.Highlight(nil)
		s.Lowlight(nil)
	})

	untagged := g.CreateNode("grid")
	untagged.SetGeometry(scene.NewBoxGeometry(10, 10))
	g.AddRoot(untagged)
	s.Highlight(untagged)
	require.Empty(t, untagged.Children())
	require.Nil(t, s.Overlay(domain.NullEntity))

	// Lowlight for an entity that was never highlighted
	other := newTaggedNode(g, "other", 9, domain.Vec2{X: 20, Y: 5})
	require.NotPanics(t, func() { s.Lowlight(other) })
	require.Nil(t, s.Overlay(9))
}

func TestOverlaysShareTheHighlightMaterial(t *testing.T) {
	g := scene.NewGraph()
	crate := newTaggedNode(g, "crate", 1, domain.Vec2{X: 5, Y: 5})
	lamp := newTaggedNode(g, "lamp", 2, domain.Vec2{X: 15, Y: 5})
	s := NewOverlayStore(g)

	s.Highlight(crate)
	s.Highlight(lamp)

	require.Same(t, s.Overlay(1).Material(), s.Overlay(2).Material())
}
