package scene

import (
	"scenegrip/internal/domain"
)

// Graph owns the nodes, materials and cameras of one loaded scene. The
// loader builds it on its own goroutine; once published it is read and
// mutated only from the render tick.
type Graph struct {
	roots     []*Node
	byEntity  map[domain.EntityID]*Node
	materials map[string]*Material
	cameras   map[string]*Camera
}

// NewGraph creates an empty scene graph
func NewGraph() *Graph {
	return &Graph{
		byEntity:  make(map[domain.EntityID]*Node),
		materials: make(map[string]*Material),
		cameras:   make(map[string]*Camera),
	}
}

// CreateNode creates a detached node. Attach it with AddRoot or AddChild.
func (g *Graph) CreateNode(name string) *Node {
	return &Node{
		graph:        g,
		name:         name,
		localScale:   domain.Vec2{X: 1, Y: 1},
		inheritScale: true,
		visible:      true,
	}
}

// CreateWireBox creates an empty wireframe outline geometry
func (g *Graph) CreateWireBox() *WireBox {
	return &WireBox{}
}

// AddRoot attaches a node at the top level. Later roots draw and pick on
// top of earlier ones.
func (g *Graph) AddRoot(n *Node) {
	if n == nil {
		return
	}
	if n.parent != nil {
		n.parent.removeChild(n)
	}
	g.roots = append(g.roots, n)
}

// Roots returns a copy of the top-level nodes in draw order
func (g *Graph) Roots() []*Node {
	out := make([]*Node, len(g.roots))
	copy(out, g.roots)
	return out
}

// Material returns the registered material with the name, nil if absent
func (g *Graph) Material(name string) *Material {
	return g.materials[name]
}

// CreateMaterial registers a material under a name. An existing material
// with the same name is returned instead of being replaced.
func (g *Graph) CreateMaterial(name string) *Material {
	if m, ok := g.materials[name]; ok {
		return m
	}
	m := &Material{name: name}
	g.materials[name] = m
	return m
}

// CreateCamera registers a named camera. A zero or negative zoom falls back
// to one cell per world unit.
func (g *Graph) CreateCamera(name string, origin domain.Vec2, cellsPerUnit float64) *Camera {
	if cellsPerUnit <= 0 {
		cellsPerUnit = 1
	}
	c := &Camera{name: name, origin: origin, cellsPerUnit: cellsPerUnit}
	g.cameras[name] = c
	return c
}

// CameraByName returns the registered camera, nil if absent
func (g *Graph) CameraByName(name string) *Camera {
	return g.cameras[name]
}

// NodeByEntity resolves an entity id to its tagged node. NullEntity and
// unknown ids resolve to nil.
func (g *Graph) NodeByEntity(id domain.EntityID) *Node {
	if id == domain.NullEntity {
		return nil
	}
	return g.byEntity[id]
}

// NodeAt returns the topmost visible node whose geometry contains the
// screen position, nil when the click lands on empty space
func (g *Graph) NodeAt(camera *Camera, pos domain.ScreenPoint) *Node {
	if camera == nil {
		return nil
	}
	w := camera.ScreenToWorld(pos)
	for i := len(g.roots) - 1; i >= 0; i-- {
		if hit := nodeHit(g.roots[i], w); hit != nil {
			return hit
		}
	}
	return nil
}

// nodeHit tests a subtree topmost-first, skipping invisible subtrees
func nodeHit(n *Node, w domain.Vec2) *Node {
	if !n.visible {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := nodeHit(n.children[i], w); hit != nil {
			return hit
		}
	}
	if n.geometry == nil {
		return nil
	}
	ws := n.WorldScale()
	if ws.X == 0 || ws.Y == 0 {
		return nil
	}
	wp := n.WorldPosition()
	local := domain.Vec2{X: (w.X - wp.X) / ws.X, Y: (w.Y - wp.Y) / ws.Y}
	if n.geometry.ContainsLocal(local) {
		return n
	}
	return nil
}
