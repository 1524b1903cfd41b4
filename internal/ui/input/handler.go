package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler turns key presses into actions
type Handler struct {
	keys KeyMap
}

func New() *Handler {
	return &Handler{keys: DefaultKeyMap()}
}

// Keys returns the active bindings
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// HandleKey maps a key press to actions. Unbound keys yield nil.
func (h *Handler) HandleKey(msg tea.KeyMsg) []Action {
	k := h.keys
	switch {
	case key.Matches(msg, k.Quit):
		return []Action{QuitAction{}}
	case key.Matches(msg, k.Up):
		return []Action{NavigateAction{Direction: "up"}}
	case key.Matches(msg, k.Down):
		return []Action{NavigateAction{Direction: "down"}}
	case key.Matches(msg, k.Left):
		return []Action{NavigateAction{Direction: "left"}}
	case key.Matches(msg, k.Right):
		return []Action{NavigateAction{Direction: "right"}}
	case key.Matches(msg, k.PageUp):
		return []Action{NavigateAction{Direction: "pageup"}}
	case key.Matches(msg, k.PageDown):
		return []Action{NavigateAction{Direction: "pagedown"}}
	case key.Matches(msg, k.Home):
		return []Action{NavigateAction{Direction: "home"}}
	case key.Matches(msg, k.End):
		return []Action{NavigateAction{Direction: "end"}}
	case key.Matches(msg, k.Switch):
		return []Action{SwitchSourceAction{}}
	case key.Matches(msg, k.History):
		return []Action{ShowHistoryAction{}}
	case key.Matches(msg, k.Help):
		return []Action{ToggleHelpAction{}}
	}
	return nil
}
