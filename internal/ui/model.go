package ui

import (
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"scenegrip/internal/config"
	"scenegrip/internal/domain"
	"scenegrip/internal/eventbus"
	"scenegrip/internal/scene"
	"scenegrip/internal/sceneload"
	"scenegrip/internal/selection"
	"scenegrip/internal/ui/handlers"
	"scenegrip/internal/ui/input"
	inputtypes "scenegrip/internal/ui/input/types"
	"scenegrip/internal/ui/logic"
	"scenegrip/internal/ui/state"
	"scenegrip/internal/ui/views"
)

// canvasTop is the first canvas row; row 0 is the title line
const canvasTop = 1

// panelHeaderRows is the panel title line plus the filter line
const panelHeaderRows = 2

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	state   *state.AppState // centralized state
	manager *selection.Manager
	loader  sceneload.Service

	// UI-specific state not in AppState
	width       int
	height      int
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	filter       *logic.EntityFilter    // panel filtering
	navigator    *logic.Navigator       // navigation and viewport handler
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	inputHandler *input.Handler         // input handling
	helpRenderer *HelpRenderer          // help content
	pager        *PagerOps              // ov pager operations

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, manager *selection.Manager, loader sceneload.Service) *Model {
	appState := state.NewAppState()
	appState.ShowHelpBar = cfg.UISettings.ShowHelpBar

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		manager:      manager,
		loader:       loader,
		filter:       logic.NewEntityFilter(),
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(cfg.UISettings.Highlight),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
		pager:        NewPagerOps(nil),
	}

	m.eventHandler = handlers.NewEventHandler(appState)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.pager != nil {
		m.pager.SetProgram(p)
	}
}

// State exposes the UI state mirror
func (m *Model) State() *state.AppState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()

	case tea.KeyMsg:
		// Handle input through the mode handler
		actions, cmd := m.inputHandler.HandleKey(msg, &modelContext{m: m})

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		// Handle non-keyboard messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	graph := m.loader.ActiveScene()
	var camera *scene.Camera
	if graph != nil {
		camera = graph.CameraByName(m.config.Scene.Camera)
	}

	all := m.state.EntityList()
	entities := all
	if m.state.FilterQuery != "" {
		entities = m.filter.Apply(all, m.state.FilterQuery)
	}

	textInput := ""
	if ti := m.inputHandler.TextInput(); ti != nil {
		textInput = ti.Value()
	}

	vs := views.ViewState{
		Width:        m.width,
		Height:       m.height,
		CanvasWidth:  m.canvasWidth(),
		CanvasHeight: m.canvasHeight(),

		Graph:  graph,
		Camera: camera,

		Entities:      entities,
		TotalEntities: len(all),
		PanelIndex:    m.state.PanelIndex,
		PanelOffset:   m.state.ViewportOffset,
		PanelHeight:   m.state.ViewportHeight,
		Selected:      m.state.Selected,
		SelectedCount: m.state.SelectedCount(),

		TransformActive: m.state.TransformActive,
		SceneLoading:    m.state.SceneLoading,
		ScenePath:       m.state.ScenePath,
		StatusMessage:   m.state.StatusMessage,

		FilterQuery:  m.state.FilterQuery,
		FilterTyping: m.inputHandler.CurrentMode() == inputtypes.ModeFilter,
		TextInput:    textInput,

		ShowHelpBar: m.state.ShowHelpBar,
	}

	return m.renderer.Render(vs)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T", action)
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.syncNavigatorState()
		var index, offset int
		switch a.Direction {
		case "up":
			index, offset = m.navigator.Up()
		case "down":
			index, offset = m.navigator.Down()
		case "pageup":
			index, offset = m.navigator.PageUp()
		case "pagedown":
			index, offset = m.navigator.PageDown()
		case "home":
			index, offset = m.navigator.Home()
		case "end":
			index, offset = m.navigator.End()
		default:
			return nil
		}
		m.state.PanelIndex = index
		m.state.ViewportOffset = offset

	case inputtypes.PanelSelectAction:
		entities := m.visibleEntities()
		index := m.navigator.SelectedIndex()
		if index < 0 || index >= len(entities) {
			return nil
		}
		m.bus.Publish(eventbus.SelectionRequestedEvent{
			Entity:        entities[index].ID,
			DeselectFirst: !a.Accumulate,
			Notify:        true,
		})

	case inputtypes.DeselectAllAction:
		m.bus.Publish(eventbus.DeselectRequestedEvent{FromUser: true})

	case inputtypes.ToggleTransformAction:
		// The mirror updates when the event comes back around the bus
		m.bus.Publish(eventbus.TransformModeChangedEvent{Active: !m.state.TransformActive})

	case inputtypes.ReloadSceneAction:
		m.bus.Publish(eventbus.SceneLoadRequestedEvent{})

	case inputtypes.UpdateTextAction:
		// Filter as the user types
		m.state.FilterQuery = a.Text
		m.syncNavigatorState()
		m.state.PanelIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.navigator.SelectedIndex())

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeFilter {
			m.state.FilterQuery = strings.TrimSpace(a.Text)
			m.state.IsFiltered = m.state.FilterQuery != ""
			m.syncNavigatorState()
		}

	case inputtypes.CancelTextAction:
		m.state.FilterQuery = ""
		m.state.IsFiltered = false
		m.syncNavigatorState()

	case inputtypes.OpenLogAction:
		return m.showLogPager()

	case inputtypes.OpenHelpAction:
		return m.showHelpPager()

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// handleMouse routes mouse events. Canvas clicks go to the selection manager
// for resolution against the scene on the next render tick; panel clicks
// request the clicked row directly. The wheel moves the panel cursor.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	canvasW := m.canvasWidth()
	canvasH := m.canvasHeight()

	inCanvas := msg.X >= 0 && msg.X < canvasW &&
		msg.Y >= canvasTop && msg.Y < canvasTop+canvasH
	inPanel := canvasW < m.width && msg.X >= canvasW &&
		msg.Y >= canvasTop && msg.Y < canvasTop+canvasH

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.syncNavigatorState()
		m.state.PanelIndex, m.state.ViewportOffset = m.navigator.Up()

	case tea.MouseButtonWheelDown:
		m.syncNavigatorState()
		m.state.PanelIndex, m.state.ViewportOffset = m.navigator.Down()

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		if inCanvas {
			// Modifier state is captured here, at click time
			m.manager.OnClick(
				domain.ScreenPoint{X: msg.X, Y: msg.Y - canvasTop},
				m.modifierHeld(msg),
			)
			return nil
		}
		if inPanel {
			row := msg.Y - canvasTop - panelHeaderRows
			if row < 0 {
				return nil
			}
			entities := m.visibleEntities()
			index := m.state.ViewportOffset + row
			if index >= len(entities) {
				return nil
			}
			m.syncNavigatorState()
			m.state.PanelIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(index)
			m.bus.Publish(eventbus.SelectionRequestedEvent{
				Entity:        entities[index].ID,
				DeselectFirst: !m.modifierHeld(msg),
				Notify:        true,
			})
		}
	}

	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		cmd := m.eventHandler.HandleEvent(msg.Event)
		m.syncNavigatorState()
		m.state.PanelIndex = m.navigator.SelectedIndex()
		m.state.ViewportOffset = m.navigator.ViewportOffset()
		return m, cmd

	case tickMsg:
		// The render tick drives selection resolution and scene acquisition
		m.manager.RenderTick()
		// Don't continue the tick loop while the pager owns the terminal
		if m.inPagerMode {
			return m, nil
		}
		return m, tick()

	case logPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Event log pager failed: %v", msg.err)
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		// Signal that rendering should be paused for external pager
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		// The tick loop stopped while the pager was up, so restart it
		m.inPagerMode = false
		return m, tick()

	default:
		// Other messages are handled elsewhere
		return m, nil
	}
}

// showLogPager returns a command that shows the event log using ov
func (m *Model) showLogPager() tea.Cmd {
	if m.program == nil {
		return nil
	}
	content := m.buildLogContent()
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.ShowText(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return logPagerMsg{err: err}
	}
}

// showHelpPager returns a command that shows help using ov
func (m *Model) showHelpPager() tea.Cmd {
	if m.program == nil {
		return nil
	}
	content := m.helpRenderer.RenderHelpContentPlain(m.config.Selection.Modifier)
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.ShowText(content)

		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// buildLogContent formats the event log for the pager, newest first
func (m *Model) buildLogContent() string {
	var b strings.Builder
	b.WriteString("Event log (newest first)\n\n")
	for i := len(m.state.EventLog) - 1; i >= 0; i-- {
		b.WriteString(m.state.EventLog[i])
		b.WriteString("\n")
	}
	return b.String()
}

// visibleEntities returns the entity list with the active filter applied
func (m *Model) visibleEntities() []domain.Entity {
	entities := m.state.EntityList()
	if m.state.FilterQuery == "" {
		return entities
	}
	return m.filter.Apply(entities, m.state.FilterQuery)
}

// modifierHeld reports whether the configured multi-select modifier was held
func (m *Model) modifierHeld(msg tea.MouseMsg) bool {
	switch m.config.Selection.Modifier {
	case "alt":
		return msg.Alt
	case "shift":
		return msg.Shift
	default:
		return msg.Ctrl
	}
}

// syncNavigatorState updates the navigator with current panel totals
func (m *Model) syncNavigatorState() {
	m.navigator.SetTotalItems(len(m.visibleEntities()))
}

// canvasHeight returns the scene viewport height for the current terminal
func (m *Model) canvasHeight() int {
	h := m.height - 2 // title and status lines
	if m.state.ShowHelpBar {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

// canvasWidth returns the scene viewport width. Narrow terminals give the
// whole width to the canvas and drop the panel.
func (m *Model) canvasWidth() int {
	if m.width < 60 {
		return m.width
	}
	w := m.width - views.PanelWidth
	if w < 1 {
		w = 1
	}
	return w
}

// updateViewportHeight recalculates the panel viewport from the window size
func (m *Model) updateViewportHeight() {
	panelRows := m.canvasHeight() - panelHeaderRows
	if panelRows < 1 {
		panelRows = 1
	}
	m.state.ViewportHeight = panelRows
	m.navigator.SetViewportHeight(panelRows)
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// modelContext adapts the model for the input handler
type modelContext struct {
	m *Model
}

func (c *modelContext) PanelIndex() int {
	return c.m.navigator.SelectedIndex()
}

func (c *modelContext) PanelCount() int {
	return len(c.m.visibleEntities())
}

func (c *modelContext) EntityAt(index int) (domain.EntityID, bool) {
	entities := c.m.visibleEntities()
	if index < 0 || index >= len(entities) {
		return domain.NullEntity, false
	}
	return entities[index].ID, true
}

func (c *modelContext) HasSelection() bool {
	return c.m.state.SelectedCount() > 0
}

func (c *modelContext) FilterQuery() string {
	return c.m.state.FilterQuery
}
