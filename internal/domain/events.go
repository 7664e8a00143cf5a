package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventEntitiesRegistered   EventType = "EntitiesRegistered"
	EventSceneLoadRequested   EventType = "SceneLoadRequested"
	EventSceneLoadStarted     EventType = "SceneLoadStarted"
	EventSceneLoaded          EventType = "SceneLoaded"
	EventSelectionChanged     EventType = "SelectionChanged"
	EventDeselectAll          EventType = "DeselectAll"
	EventSelectionRequested   EventType = "SelectionRequested"
	EventDeselectRequested    EventType = "DeselectRequested"
	EventTransformModeChanged EventType = "TransformModeChanged"
	EventError                EventType = "Error"
	EventConfigLoaded         EventType = "ConfigLoaded"
	EventConfigSaved          EventType = "ConfigSaved"
	EventAppReady             EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// EntitiesRegisteredEvent is emitted when the registry takes on new entities
type EntitiesRegisteredEvent struct {
	Entities []Entity
}

func (e EntitiesRegisteredEvent) Type() EventType { return EventEntitiesRegistered }

// SceneLoadRequestedEvent is emitted to request a scene (re)load.
// An empty Path reloads the currently active scene file.
type SceneLoadRequestedEvent struct {
	Path string
}

func (e SceneLoadRequestedEvent) Type() EventType { return EventSceneLoadRequested }

// SceneLoadStartedEvent is emitted when scene loading begins
type SceneLoadStartedEvent struct {
	Path string
}

func (e SceneLoadStartedEvent) Type() EventType { return EventSceneLoadStarted }

// SceneLoadedEvent is emitted when a scene has been parsed and registered
type SceneLoadedEvent struct {
	Path        string
	EntityCount int
}

func (e SceneLoadedEvent) Type() EventType { return EventSceneLoaded }

// SelectionChangedEvent is emitted after the selection gained an entity.
// Entities is the full ordered selection snapshot. Appended is true when the
// entity accumulated onto an existing selection, false when the selection was
// replaced or started from empty via a clearing click.
type SelectionChangedEvent struct {
	Entities []EntityID
	Appended bool
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// DeselectAllEvent is emitted whenever the selection is cleared. FromUser is
// true when the clear originated from direct user interaction with the scene.
type DeselectAllEvent struct {
	FromUser bool
}

func (e DeselectAllEvent) Type() EventType { return EventDeselectAll }

// SelectionRequestedEvent asks the selection manager to select an entity on
// the next render tick, as if it had been clicked. DeselectFirst forces
// single-selection semantics; Notify requests a SelectionChanged broadcast.
type SelectionRequestedEvent struct {
	Entity        EntityID
	DeselectFirst bool
	Notify        bool
}

func (e SelectionRequestedEvent) Type() EventType { return EventSelectionRequested }

// DeselectRequestedEvent asks the selection manager to clear the selection on
// the next render tick.
type DeselectRequestedEvent struct {
	FromUser bool
}

func (e DeselectRequestedEvent) Type() EventType { return EventDeselectRequested }

// TransformModeChangedEvent signals that a transform tool was engaged or
// released; while active, selection accumulation is suppressed.
type TransformModeChangedEvent struct {
	Active bool
}

func (e TransformModeChangedEvent) Type() EventType { return EventTransformModeChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	HasExistingConfig bool
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
