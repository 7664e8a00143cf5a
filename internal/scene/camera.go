package scene

import (
	"math"

	"scenegrip/internal/domain"
)

// Camera projects between world coordinates and terminal cells. The origin
// is the world coordinate rendered at screen cell (0, 0).
type Camera struct {
	name         string
	origin       domain.Vec2
	cellsPerUnit float64
}

// Name returns the camera name used for lookup
func (c *Camera) Name() string {
	return c.name
}

// Origin returns the world coordinate at screen cell (0, 0)
func (c *Camera) Origin() domain.Vec2 {
	return c.origin
}

// CellsPerUnit returns the zoom factor
func (c *Camera) CellsPerUnit() float64 {
	return c.cellsPerUnit
}

// WorldToScreen projects a world coordinate to the nearest screen cell
func (c *Camera) WorldToScreen(w domain.Vec2) domain.ScreenPoint {
	return domain.ScreenPoint{
		X: int(math.Round((w.X - c.origin.X) * c.cellsPerUnit)),
		Y: int(math.Round((w.Y - c.origin.Y) * c.cellsPerUnit)),
	}
}

// ScreenToWorld maps a screen cell back to a world coordinate
func (c *Camera) ScreenToWorld(p domain.ScreenPoint) domain.Vec2 {
	return domain.Vec2{
		X: c.origin.X + float64(p.X)/c.cellsPerUnit,
		Y: c.origin.Y + float64(p.Y)/c.cellsPerUnit,
	}
}
