package handlers

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"scenegrip/internal/domain"
	"scenegrip/internal/eventbus"
	"scenegrip/internal/ui/state"
)

// EventHandler applies domain events to the UI state mirror
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SceneLoadStartedEvent:
		h.state.SceneLoading = true
		h.state.StatusMessage = fmt.Sprintf("Loading scene %s...", e.Path)
		h.state.AppendLog(fmt.Sprintf("scene load started: %s", e.Path))

	case eventbus.SceneLoadedEvent:
		h.state.SceneLoading = false
		h.state.ScenePath = e.Path
		h.state.EntityCount = e.EntityCount
		h.state.StatusMessage = fmt.Sprintf("Scene %s loaded, %d entities", e.Path, e.EntityCount)
		h.state.AppendLog(fmt.Sprintf("scene loaded: %s (%d entities)", e.Path, e.EntityCount))

	case eventbus.EntitiesRegisteredEvent:
		// A fresh entity set means a fresh scene; the selection mirror
		// restarts empty with it
		h.state.SetEntities(e.Entities)
		h.state.AppendLog(fmt.Sprintf("registered %d entities", len(e.Entities)))

	case eventbus.SelectionChangedEvent:
		h.state.ApplySelection(e.Entities, e.Appended)
		verb := "replaced"
		if e.Appended {
			verb = "appended"
		}
		h.state.StatusMessage = fmt.Sprintf("%d selected", len(e.Entities))
		h.state.AppendLog(fmt.Sprintf("selection %s: [%s]", verb, h.entityNames(e.Entities)))

	case eventbus.DeselectAllEvent:
		h.state.ClearSelection()
		h.state.StatusMessage = "Selection cleared"
		origin := "auto"
		if e.FromUser {
			origin = "user"
		}
		h.state.AppendLog(fmt.Sprintf("selection cleared (%s)", origin))

	case eventbus.TransformModeChangedEvent:
		h.state.TransformActive = e.Active
		if e.Active {
			h.state.AppendLog("transform mode engaged")
		} else {
			h.state.AppendLog("transform mode released")
		}

	case eventbus.ErrorEvent:
		h.state.SceneLoading = false
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
		h.state.AppendLog(fmt.Sprintf("error: %s: %v", e.Message, e.Err))

	case eventbus.ConfigLoadedEvent:
		h.state.AppendLog(fmt.Sprintf("config loaded from %s", e.Path))

	case eventbus.ConfigSavedEvent:
		h.state.AppendLog("config saved")

	case eventbus.AppReadyEvent:
		h.state.AppendLog("ready")
	}

	return nil
}

func (h *EventHandler) entityNames(ids []domain.EntityID) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, h.state.EntityName(id))
	}
	return strings.Join(names, ", ")
}
