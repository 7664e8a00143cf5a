package scene

import (
	"scenegrip/internal/domain"
)

// wireEdgeTolerance is how far from a wire box edge, in local units, a point
// still counts as being on the outline. Half a world unit matches one-cell
// click resolution at the default zoom.
const wireEdgeTolerance = 0.5

// Geometry is a pickable shape attached to a node, expressed in the node's
// local coordinates.
type Geometry interface {
	LocalBounds() domain.Box
	ContainsLocal(p domain.Vec2) bool
}

// BoxGeometry is a solid axis-aligned box centered on the node origin
type BoxGeometry struct {
	size domain.Vec2
}

// NewBoxGeometry creates a solid box with the given full extents
func NewBoxGeometry(width, height float64) *BoxGeometry {
	return &BoxGeometry{size: domain.Vec2{X: width, Y: height}}
}

// LocalBounds returns the box centered on the origin
func (b *BoxGeometry) LocalBounds() domain.Box {
	half := domain.Vec2{X: b.size.X / 2, Y: b.size.Y / 2}
	return domain.Box{Min: domain.Vec2{X: -half.X, Y: -half.Y}, Max: half}
}

// ContainsLocal reports whether the point lies inside the box
func (b *BoxGeometry) ContainsLocal(p domain.Vec2) bool {
	return b.LocalBounds().Contains(p)
}

// WireBox is a wireframe outline. Only its edges are pickable, so clicks
// inside the outline fall through to the node it frames.
type WireBox struct {
	box domain.Box
}

// SetBox sets the outlined box
func (w *WireBox) SetBox(b domain.Box) {
	w.box = b
}

// Box returns the outlined box
func (w *WireBox) Box() domain.Box {
	return w.box
}

// LocalBounds returns the outlined box
func (w *WireBox) LocalBounds() domain.Box {
	return w.box
}

// ContainsLocal reports whether the point lies on the outline edge ring
func (w *WireBox) ContainsLocal(p domain.Vec2) bool {
	outer := domain.Box{
		Min: domain.Vec2{X: w.box.Min.X - wireEdgeTolerance, Y: w.box.Min.Y - wireEdgeTolerance},
		Max: domain.Vec2{X: w.box.Max.X + wireEdgeTolerance, Y: w.box.Max.Y + wireEdgeTolerance},
	}
	if !outer.Contains(p) {
		return false
	}
	inner := domain.Box{
		Min: domain.Vec2{X: w.box.Min.X + wireEdgeTolerance, Y: w.box.Min.Y + wireEdgeTolerance},
		Max: domain.Vec2{X: w.box.Max.X - wireEdgeTolerance, Y: w.box.Max.Y - wireEdgeTolerance},
	}
	if inner.Min.X > inner.Max.X || inner.Min.Y > inner.Max.Y {
		// Box too thin to have an interior, the whole area is edge
		return true
	}
	return !inner.Contains(p)
}
