package views

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ReadyMarker is printed in the status bar for the end-to-end driver
const ReadyMarker = "__READY__"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Title      string
	ShowHeader bool
	// Position is the plain text of the second header row; empty hides it
	Position string
	// Direction is the glyph of the last published snapshot, empty before
	// the first one
	Direction     string
	ScrollingDown bool

	Body  string
	Above int
	Below int

	Tracking      string // source name, empty when tracking is off
	StatusMessage string
	StatusIsError bool
	Help          string
	Ready         bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the styles so the model can size framed surfaces
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// HeaderRows returns how many rows the header takes when visible
func HeaderRows(showPosition bool) int {
	if showPosition {
		return 2
	}
	return 1
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Width == 0 {
		return "Loading..."
	}

	var rows []string
	if state.ShowHeader {
		rows = append(rows, r.styles.Title.Render(Fit("scrollwatch · "+state.Title, state.Width)))
		if state.Position != "" {
			rows = append(rows, r.renderPosition(state))
		}
	}
	rows = append(rows, state.Body)
	rows = append(rows, r.renderStatus(state))
	if state.Help != "" {
		rows = append(rows, r.styles.Help.Render(state.Help))
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) renderPosition(state ViewState) string {
	if state.Direction == "" {
		return r.styles.Position.Render(Fit(state.Position, state.Width))
	}
	dir := r.styles.Up
	if state.ScrollingDown {
		dir = r.styles.Down
	}
	return r.styles.Position.Render(Fit(state.Position, state.Width-2)) + " " + dir.Render(state.Direction)
}

func (r *Renderer) renderStatus(state ViewState) string {
	parts := []string{}
	if state.Tracking == "" {
		parts = append(parts, "tracking off")
	} else {
		parts = append(parts, "tracking "+state.Tracking)
	}
	if state.Above > 0 {
		parts = append(parts, fmt.Sprintf("↑ %d more above", state.Above))
	}
	if state.Below > 0 {
		parts = append(parts, fmt.Sprintf("↓ %d more below", state.Below))
	}
	if state.StatusMessage != "" {
		parts = append(parts, state.StatusMessage)
	}

	joined := strings.Join(parts, " · ")
	line := Fit(joined, state.Width)
	if state.Ready {
		// The marker stays whole however narrow the terminal is
		suffix := " · " + ReadyMarker
		if room := state.Width - runewidth.StringWidth(suffix); room > 0 {
			line = Fit(joined, room) + suffix
		} else {
			line = ReadyMarker
		}
	}
	if state.StatusIsError {
		return r.styles.StatusError.Render(line)
	}
	return r.styles.Status.Render(line)
}
