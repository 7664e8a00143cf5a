package state

import (
	"time"

	"scenegrip/internal/domain"
)

// eventLogCap bounds the in-memory event log
const eventLogCap = 500

// AppState is the UI's mirror of the world, rebuilt from bus events. It is
// only ever touched from the TUI goroutine, so it carries no locks. The
// selection manager owns the authoritative selection; this mirror exists so
// the panel and status bar can render without reaching into the scene.
type AppState struct {
	// Entity data
	Entities   map[domain.EntityID]domain.Entity
	OrderedIDs []domain.EntityID // registration order for display

	// Selection mirror
	Selected       map[domain.EntityID]bool
	SelectionOrder []domain.EntityID
	LastAppended   bool

	// Scene state
	ScenePath    string
	EntityCount  int
	SceneLoading bool

	// UI state
	TransformActive bool
	StatusMessage   string
	PanelIndex      int
	ViewportOffset  int
	ViewportHeight  int
	ShowHelpBar     bool

	// Filter state
	FilterQuery string
	IsFiltered  bool

	// Event log shown in the pager
	EventLog []string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Entities:       make(map[domain.EntityID]domain.Entity),
		OrderedIDs:     make([]domain.EntityID, 0),
		Selected:       make(map[domain.EntityID]bool),
		SelectionOrder: make([]domain.EntityID, 0),
		EventLog:       make([]string, 0),
		ViewportHeight: 20, // Default
	}
}

// SetEntities replaces the entity mirror. Entities only change when a scene
// is (re)loaded, which also invalidates any previous selection.
func (s *AppState) SetEntities(entities []domain.Entity) {
	s.Entities = make(map[domain.EntityID]domain.Entity, len(entities))
	s.OrderedIDs = make([]domain.EntityID, 0, len(entities))
	for _, e := range entities {
		s.Entities[e.ID] = e
		s.OrderedIDs = append(s.OrderedIDs, e.ID)
	}
	s.ClearSelection()
	if s.PanelIndex >= len(s.OrderedIDs) {
		s.PanelIndex = 0
		s.ViewportOffset = 0
	}
}

// EntityList returns the entities in registration order
func (s *AppState) EntityList() []domain.Entity {
	list := make([]domain.Entity, 0, len(s.OrderedIDs))
	for _, id := range s.OrderedIDs {
		if e, ok := s.Entities[id]; ok {
			list = append(list, e)
		}
	}
	return list
}

// EntityName returns the display name for an entity id
func (s *AppState) EntityName(id domain.EntityID) string {
	if e, ok := s.Entities[id]; ok {
		return e.Name
	}
	return "?"
}

// ApplySelection replaces the selection mirror with a broadcast snapshot
func (s *AppState) ApplySelection(entities []domain.EntityID, appended bool) {
	s.SelectionOrder = append([]domain.EntityID(nil), entities...)
	s.Selected = make(map[domain.EntityID]bool, len(entities))
	for _, id := range entities {
		s.Selected[id] = true
	}
	s.LastAppended = appended
}

// ClearSelection empties the selection mirror
func (s *AppState) ClearSelection() {
	s.Selected = make(map[domain.EntityID]bool)
	s.SelectionOrder = s.SelectionOrder[:0]
	s.LastAppended = false
}

// SelectedCount returns the number of selected entities
func (s *AppState) SelectedCount() int {
	return len(s.SelectionOrder)
}

// AppendLog adds a timestamped line to the event log, dropping the oldest
// lines beyond the cap
func (s *AppState) AppendLog(line string) {
	entry := time.Now().Format("15:04:05") + "  " + line
	s.EventLog = append(s.EventLog, entry)
	if len(s.EventLog) > eventLogCap {
		s.EventLog = s.EventLog[len(s.EventLog)-eventLogCap:]
	}
}
