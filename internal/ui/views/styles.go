package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Position    lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Pane        lipgloss.Style
	StatusError lipgloss.Style
	Down        lipgloss.Style
	Up          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Position: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:     lipgloss.NewStyle().Faint(true),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Down:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Up:          lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
	}
}

// PaneFrame returns the columns and rows the pane border and padding take
func (s *Styles) PaneFrame() (int, int) {
	return s.Pane.GetHorizontalFrameSize(), s.Pane.GetVerticalFrameSize()
}
