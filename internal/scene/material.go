package scene

import (
	"scenegrip/internal/domain"
)

// Material is a named appearance shared between nodes. The highlight overlay
// uses a single material instance for every outline.
type Material struct {
	name     string
	ambient  domain.Color
	diffuse  domain.Color
	specular domain.Color
	emissive domain.Color
}

// Name returns the registered material name
func (m *Material) Name() string {
	return m.name
}

// SetAmbient sets the ambient color components
func (m *Material) SetAmbient(r, g, b float64) {
	m.ambient = domain.Color{R: r, G: g, B: b}
}

// Ambient returns the ambient color
func (m *Material) Ambient() domain.Color {
	return m.ambient
}

// SetDiffuse sets the diffuse color components
func (m *Material) SetDiffuse(r, g, b float64) {
	m.diffuse = domain.Color{R: r, G: g, B: b}
}

// Diffuse returns the diffuse color
func (m *Material) Diffuse() domain.Color {
	return m.diffuse
}

// SetSpecular sets the specular color components
func (m *Material) SetSpecular(r, g, b float64) {
	m.specular = domain.Color{R: r, G: g, B: b}
}

// Specular returns the specular color
func (m *Material) Specular() domain.Color {
	return m.specular
}

// SetEmissive sets the emissive color components
func (m *Material) SetEmissive(r, g, b float64) {
	m.emissive = domain.Color{R: r, G: g, B: b}
}

// Emissive returns the emissive color
func (m *Material) Emissive() domain.Color {
	return m.emissive
}
