package input

// Action is what a key press asks the model to do
type Action interface {
	Type() string
}

// NavigateAction scrolls the visible surface
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// SwitchSourceAction moves tracking to the next surface (window, element, none)
type SwitchSourceAction struct{}

func (a SwitchSourceAction) Type() string { return "switch_source" }

// ShowHistoryAction opens the published snapshots in the pager
type ShowHistoryAction struct{}

func (a ShowHistoryAction) Type() string { return "show_history" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
