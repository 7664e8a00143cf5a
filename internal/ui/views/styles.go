package views

import (
	"github.com/charmbracelet/lipgloss"

	"scenegrip/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	Filter        lipgloss.Style
	Help          lipgloss.Style
	Highlight     lipgloss.Style
	Transform     lipgloss.Style
	Loading       lipgloss.Style
	PanelTitle    lipgloss.Style
	PanelBorder   lipgloss.Style
	PanelCursor   lipgloss.Style
	PanelSelected lipgloss.Style
}

// NewStyles creates a new Styles instance. The highlight color paints
// selection outlines in the viewport and selected rows in the panel.
func NewStyles(highlight string) *Styles {
	if highlight == "" {
		highlight = "#ffffff"
	}
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Filter:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:          lipgloss.NewStyle().Faint(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color(highlight)).Bold(true),
		Transform:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Loading:       lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		PanelTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		PanelBorder:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		PanelCursor:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		PanelSelected: lipgloss.NewStyle().Foreground(lipgloss.Color(highlight)).Bold(true),
	}
}

// KindColor returns the panel label color for an entity kind
func KindColor(kind domain.EntityKind) string {
	switch kind {
	case domain.KindLight:
		return "220" // yellow
	case domain.KindSensor:
		return "135" // purple
	case domain.KindMarker:
		return "78" // green
	default:
		return "110" // blue for models
	}
}
