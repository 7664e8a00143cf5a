package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"scenegrip/internal/domain"
	"scenegrip/internal/scene"
)

// PanelWidth is the total width of the entity panel including its border
const PanelWidth = 30

// panelContentWidth is the row width inside the panel border
const panelContentWidth = PanelWidth - 2

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width        int
	Height       int
	CanvasWidth  int
	CanvasHeight int

	// Scene access is read-only here; the graph is only mutated on the
	// same goroutine that renders
	Graph  *scene.Graph
	Camera *scene.Camera

	Entities      []domain.Entity // filtered, in display order
	TotalEntities int
	PanelIndex    int
	PanelOffset   int
	PanelHeight   int
	Selected      map[domain.EntityID]bool
	SelectedCount int

	TransformActive bool
	SceneLoading    bool
	ScenePath       string
	StatusMessage   string

	FilterQuery  string
	FilterTyping bool
	TextInput    string

	ShowHelpBar bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer. The highlight color comes from config.
func NewRenderer(highlight string) *Renderer {
	return &Renderer{styles: NewStyles(highlight)}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	canvas := r.renderCanvas(state)
	if state.CanvasWidth >= state.Width {
		// Terminal too narrow for the panel
		content.WriteString(canvas)
	} else {
		content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, canvas, r.renderPanel(state)))
	}
	content.WriteString("\n")

	content.WriteString(r.renderStatus(state))

	if state.ShowHelpBar {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(
			"enter select · space add · d deselect · t transform · r reload · / filter · L log · ? help · q quit"))
	}

	return content.String()
}

// renderTitle builds the top line with the right-aligned scene indicator
func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("scenegrip")

	rightContent := ""
	if state.SceneLoading {
		rightContent = r.styles.Loading.Render(spinnerFrame() + " loading")
	} else if state.ScenePath != "" {
		rightContent = r.styles.Dim.Render(state.ScenePath)
	}
	if state.FilterQuery != "" {
		filterText := r.styles.Filter.Render(fmt.Sprintf("[filter: %s]", state.FilterQuery))
		if rightContent != "" {
			rightContent = fmt.Sprintf("%s  %s", rightContent, filterText)
		} else {
			rightContent = filterText
		}
	}

	if rightContent == "" {
		return logo
	}

	paddingWidth := state.Width - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return fmt.Sprintf("%s  %s", logo, rightContent)
}

// canvasCell is one painted viewport cell
type canvasCell struct {
	r       rune
	color   string // glyph foreground as #rrggbb, empty for plain
	outline bool   // painted by a selection outline
	dim     bool   // visual without a material
}

// paintFrame rasterizes the scene into a cell grid. Every cell is resolved
// through the same hit test that resolves clicks, so the picture and the
// pick map cannot drift apart.
func (r *Renderer) paintFrame(state ViewState) [][]canvasCell {
	cells := make([][]canvasCell, state.CanvasHeight)
	for y := range cells {
		row := make([]canvasCell, state.CanvasWidth)
		for x := range row {
			row[x] = canvasCell{r: ' '}
		}
		cells[y] = row
	}

	if state.Graph == nil || state.Camera == nil {
		return cells
	}

	for y := range cells {
		for x := range cells[y] {
			node := state.Graph.NodeAt(state.Camera, domain.ScreenPoint{X: x, Y: y})
			if node == nil {
				continue
			}
			cells[y][x] = paintCell(node, state.Camera, x, y)
		}
	}
	return cells
}

// paintCell renders the topmost node at one cell
func paintCell(node *scene.Node, cam *scene.Camera, x, y int) canvasCell {
	if _, ok := node.Geometry().(*scene.WireBox); ok {
		return canvasCell{r: borderRune(node, cam, x, y), outline: true}
	}

	glyph := node.Glyph()
	if glyph == 0 {
		glyph = '·'
	}
	cell := canvasCell{r: glyph}
	if mat := node.Material(); mat != nil {
		cell.color = hexColor(mat.Diffuse())
	} else {
		cell.dim = true
	}
	return cell
}

// borderRune picks a box-drawing rune for an outline cell based on which
// edge of the wire box the cell sits on
func borderRune(node *scene.Node, cam *scene.Camera, x, y int) rune {
	bounds := node.WorldBounds()
	min := cam.WorldToScreen(bounds.Min)
	max := cam.WorldToScreen(bounds.Max)

	onLeft := x == min.X
	onRight := x == max.X
	onTop := y == min.Y
	onBottom := y == max.Y

	switch {
	case onLeft && onTop:
		return '┌'
	case onRight && onTop:
		return '┐'
	case onLeft && onBottom:
		return '└'
	case onRight && onBottom:
		return '┘'
	case onTop || onBottom:
		return '─'
	default:
		return '│'
	}
}

// renderCanvas styles the painted frame, batching runs of identical style
func (r *Renderer) renderCanvas(state ViewState) string {
	frame := r.paintFrame(state)
	lines := make([]string, len(frame))

	for y, row := range frame {
		var line strings.Builder
		for start := 0; start < len(row); {
			end := start
			for end < len(row) && sameStyle(row[end], row[start]) {
				end++
			}
			var run strings.Builder
			for i := start; i < end; i++ {
				run.WriteRune(row[i].r)
			}
			line.WriteString(r.styleCell(row[start], run.String()))
			start = end
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

func sameStyle(a, b canvasCell) bool {
	return a.color == b.color && a.outline == b.outline && a.dim == b.dim
}

func (r *Renderer) styleCell(cell canvasCell, run string) string {
	switch {
	case cell.outline:
		return r.styles.Highlight.Render(run)
	case cell.color != "":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(cell.color)).Render(run)
	case cell.dim:
		return r.styles.Dim.Render(run)
	default:
		return run
	}
}

// renderPanel builds the entity list beside the canvas
func (r *Renderer) renderPanel(state ViewState) string {
	border := r.styles.PanelBorder.Render("│ ")
	lines := make([]string, 0, state.CanvasHeight)

	title := fmt.Sprintf("Entities %d/%d", len(state.Entities), state.TotalEntities)
	if state.PanelOffset > 0 {
		title += " ↑"
	}
	if state.PanelOffset+state.PanelHeight < len(state.Entities) {
		title += " ↓"
	}
	lines = append(lines, border+r.styles.PanelTitle.Render(title))

	switch {
	case state.FilterTyping:
		lines = append(lines, border+r.styles.Filter.Render("/"+state.TextInput))
	case state.FilterQuery != "":
		lines = append(lines, border+r.styles.Filter.Render("filter: "+state.FilterQuery))
	default:
		lines = append(lines, border+r.styles.Dim.Render(strings.Repeat("─", panelContentWidth)))
	}

	for i := state.PanelOffset; i < len(state.Entities) && i < state.PanelOffset+state.PanelHeight; i++ {
		entity := state.Entities[i]
		lines = append(lines, border+r.renderEntityRow(entity, i == state.PanelIndex, state.Selected[entity.ID]))
	}

	for len(lines) < state.CanvasHeight {
		lines = append(lines, border)
	}
	return strings.Join(lines[:state.CanvasHeight], "\n")
}

// renderEntityRow renders one panel row: cursor, selection marker, name and
// a right-aligned kind label
func (r *Renderer) renderEntityRow(entity domain.Entity, isCursor, isSelected bool) string {
	cursor := "  "
	if isCursor {
		cursor = "> "
	}
	marker := "[ ]"
	if isSelected {
		marker = "[x]"
	}

	kind := string(entity.Kind)
	name := entity.Name
	maxName := panelContentWidth - len(cursor) - len(marker) - 1 - len(kind) - 1
	if runes := []rune(name); len(runes) > maxName && maxName > 1 {
		name = string(runes[:maxName-1]) + "…"
	}

	left := cursor + marker + " " + name
	if isSelected {
		left = r.styles.PanelSelected.Render(left)
	} else if isCursor {
		left = r.styles.PanelCursor.Render(left)
	}

	kindLabel := lipgloss.NewStyle().Foreground(lipgloss.Color(KindColor(entity.Kind))).Render(kind)
	padding := panelContentWidth - lipgloss.Width(left) - lipgloss.Width(kindLabel)
	if padding < 1 {
		padding = 1
	}
	return left + strings.Repeat(" ", padding) + kindLabel
}

// renderStatus builds the bottom status line
func (r *Renderer) renderStatus(state ViewState) string {
	left := state.StatusMessage
	if left == "" && state.ScenePath != "" {
		left = fmt.Sprintf("scene: %s", state.ScenePath)
	}

	leftStyle := r.styles.Status
	if strings.HasPrefix(left, "Error") {
		leftStyle = r.styles.StatusError
	}
	leftText := leftStyle.Render(left)

	rightParts := []string{fmt.Sprintf("%d selected", state.SelectedCount)}
	if state.TransformActive {
		rightParts = append(rightParts, r.styles.Transform.Render("TRANSFORM"))
	}
	if state.SceneLoading {
		rightParts = append(rightParts, r.styles.Loading.Render(spinnerFrame()))
	}
	rightText := r.styles.Status.Render(strings.Join(rightParts, " · "))

	paddingWidth := state.Width - lipgloss.Width(leftText) - lipgloss.Width(rightText)
	if paddingWidth > 0 {
		return leftText + strings.Repeat(" ", paddingWidth) + rightText
	}
	return fmt.Sprintf("%s  %s", leftText, rightText)
}

func spinnerFrame() string {
	spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	frame := int(time.Now().UnixMilli()/80) % len(spinner)
	return spinner[frame]
}

// hexColor formats a unit-range color as #rrggbb
func hexColor(c domain.Color) string {
	return fmt.Sprintf("#%02x%02x%02x",
		int(c.R*255+0.5), int(c.G*255+0.5), int(c.B*255+0.5))
}
