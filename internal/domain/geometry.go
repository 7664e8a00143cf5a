package domain

// Vec2 is a 2D point or offset in world coordinates
type Vec2 struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two vectors
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Mul returns the vector scaled component-wise
func (v Vec2) Mul(sx, sy float64) Vec2 {
	return Vec2{X: v.X * sx, Y: v.Y * sy}
}

// Box is an axis-aligned bounding box. Min and Max are inclusive corners;
// a zero Box is an empty box at the origin.
type Box struct {
	Min Vec2
	Max Vec2
}

// NewBox returns a box spanning the two corners regardless of their order
func NewBox(a, b Vec2) Box {
	box := Box{Min: a, Max: b}
	if box.Min.X > box.Max.X {
		box.Min.X, box.Max.X = box.Max.X, box.Min.X
	}
	if box.Min.Y > box.Max.Y {
		box.Min.Y, box.Max.Y = box.Max.Y, box.Min.Y
	}
	return box
}

// Width returns the horizontal extent of the box
func (b Box) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the box
func (b Box) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Contains reports whether the point lies inside the box, borders included
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Translate returns the box shifted by the offset
func (b Box) Translate(o Vec2) Box {
	return Box{Min: b.Min.Add(o), Max: b.Max.Add(o)}
}

// Scale returns the box scaled about the origin
func (b Box) Scale(sx, sy float64) Box {
	return NewBox(b.Min.Mul(sx, sy), b.Max.Mul(sx, sy))
}

// ScreenPoint is an integer cell position in the terminal viewport
type ScreenPoint struct {
	X int
	Y int
}

// Color is an RGB color with components in the range [0, 1]
type Color struct {
	R float64
	G float64
	B float64
}

// White is the full-intensity neutral color used by the highlight material
var White = Color{R: 1, G: 1, B: 1}
