package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions

// PanelSelectAction requests selection of the entity under the panel cursor.
// Accumulate keeps the existing selection, mirroring a modifier-click.
type PanelSelectAction struct {
	Accumulate bool
}

func (a PanelSelectAction) Type() string { return "panel_select" }

type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

// Scene actions
type ToggleTransformAction struct{}

func (a ToggleTransformAction) Type() string { return "toggle_transform" }

type ReloadSceneAction struct{}

func (a ReloadSceneAction) Type() string { return "reload_scene" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type OpenLogAction struct{}

func (a OpenLogAction) Type() string { return "open_log" }

type OpenHelpAction struct{}

func (a OpenHelpAction) Type() string { return "open_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
