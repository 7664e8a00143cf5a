package scene

import (
	"scenegrip/internal/domain"
)

// Node is a renderable handle in the scene graph. It carries a geometry and
// material plus an optional entity tag linking it back to the registry.
type Node struct {
	graph        *Graph
	name         string
	entity       domain.EntityID
	localPos     domain.Vec2
	localScale   domain.Vec2
	inheritScale bool
	visible      bool
	glyph        rune
	geometry     Geometry
	material     *Material
	parent       *Node
	children     []*Node
}

// Name returns the node's display name
func (n *Node) Name() string {
	return n.name
}

// Entity returns the entity tag, NullEntity for untagged nodes
func (n *Node) Entity() domain.EntityID {
	return n.entity
}

// SetEntity tags the node with an entity id and indexes it in the graph
func (n *Node) SetEntity(id domain.EntityID) {
	n.entity = id
	if id != domain.NullEntity && n.graph != nil {
		n.graph.byEntity[id] = n
	}
}

// LocalPosition returns the position relative to the parent
func (n *Node) LocalPosition() domain.Vec2 {
	return n.localPos
}

// SetLocalPosition sets the position relative to the parent
func (n *Node) SetLocalPosition(p domain.Vec2) {
	n.localPos = p
}

// LocalScale returns the node's own scale
func (n *Node) LocalScale() domain.Vec2 {
	return n.localScale
}

// SetLocalScale sets the node's own scale
func (n *Node) SetLocalScale(s domain.Vec2) {
	n.localScale = s
}

// SetInheritScale controls whether ancestor scale applies to this node.
// Overlay visuals disable it so outlines keep their size.
func (n *Node) SetInheritScale(inherit bool) {
	n.inheritScale = inherit
}

// InheritsScale reports whether ancestor scale applies to this node
func (n *Node) InheritsScale() bool {
	return n.inheritScale
}

// Visible returns the node-local visibility flag
func (n *Node) Visible() bool {
	return n.visible
}

// SetVisible shows or hides the node and, transitively, its children
func (n *Node) SetVisible(visible bool) {
	n.visible = visible
}

// Glyph returns the fill rune used when the node is rendered, 0 if unset
func (n *Node) Glyph() rune {
	return n.glyph
}

// SetGlyph sets the fill rune used when the node is rendered
func (n *Node) SetGlyph(r rune) {
	n.glyph = r
}

// Geometry returns the attached geometry, nil if none
func (n *Node) Geometry() Geometry {
	return n.geometry
}

// SetGeometry attaches a geometry to the node
func (n *Node) SetGeometry(g Geometry) {
	n.geometry = g
}

// Material returns the assigned material, nil if none
func (n *Node) Material() *Material {
	return n.material
}

// SetMaterial assigns a shared material
func (n *Node) SetMaterial(m *Material) {
	n.material = m
}

// Parent returns the parent node, nil for roots
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the child list in attach order
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// AddChild attaches a child node, detaching it from any previous parent.
// Children draw and pick on top of their parent.
func (n *Node) AddChild(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// WorldPosition returns the node's position in world coordinates
func (n *Node) WorldPosition() domain.Vec2 {
	if n.parent == nil {
		return n.localPos
	}
	return n.parent.WorldPosition().Add(n.localPos)
}

// WorldScale returns the effective scale, honoring SetInheritScale
func (n *Node) WorldScale() domain.Vec2 {
	if n.parent == nil || !n.inheritScale {
		return n.localScale
	}
	ps := n.parent.WorldScale()
	return domain.Vec2{X: ps.X * n.localScale.X, Y: ps.Y * n.localScale.Y}
}

// LocalBounds returns the geometry bounds scaled by the node's own scale.
// Child bounds are not included; an outline sized to these bounds hugs the
// node itself, not its attachments.
func (n *Node) LocalBounds() domain.Box {
	if n.geometry == nil {
		return domain.Box{}
	}
	return n.geometry.LocalBounds().Scale(n.localScale.X, n.localScale.Y)
}

// WorldBounds returns the geometry bounds in world coordinates
func (n *Node) WorldBounds() domain.Box {
	if n.geometry == nil {
		return domain.Box{}.Translate(n.WorldPosition())
	}
	ws := n.WorldScale()
	return n.geometry.LocalBounds().Scale(ws.X, ws.Y).Translate(n.WorldPosition())
}
