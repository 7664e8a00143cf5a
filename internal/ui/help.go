package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContentPlain generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContentPlain(modifier string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	// Title
	help.WriteString(titleStyle.Render("Scenegrip Help"))
	help.WriteString("\n")

	// Scene interaction section
	help.WriteString(sectionStyle.Render("Scene Interaction"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Click"), descStyle.Render("Select the entity under the cursor")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(modifier+"+Click"), descStyle.Render("Add or keep entities in the selection")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Wheel"), descStyle.Render("Move the panel cursor")))
	help.WriteString("\n")

	// Entity panel section
	help.WriteString(sectionStyle.Render("Entity Panel"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Navigate up/down")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("PgUp/PgDn"), descStyle.Render("Page up/down")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("gg/G"), descStyle.Render("Go to top/bottom")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Enter"), descStyle.Render("Select the entity at the cursor")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Space"), descStyle.Render("Add the entity at the cursor to the selection")))
	help.WriteString("\n")

	// Selection section
	help.WriteString(sectionStyle.Render("Selection"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("d"), descStyle.Render("Deselect everything")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("Esc"), descStyle.Render("Clear selection (or leave the filter)")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("t"), descStyle.Render("Toggle transform mode (selection always replaces)")))
	help.WriteString("\n")

	// Search & filter section
	help.WriteString(sectionStyle.Render("Filter"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("/"), descStyle.Render("Filter entities by name or kind")))
	help.WriteString("\n")

	// Filter examples (using italic style)
	filterStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	help.WriteString(filterStyle.Render("  Filter examples: crate, kind:light, #3"))
	help.WriteString("\n")

	// Other section
	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("r"), descStyle.Render("Reload the scene")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("L"), descStyle.Render("View the event log")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("?"), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s          %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}
