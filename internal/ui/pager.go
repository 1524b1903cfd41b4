package ui

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

var errProgramNotSet = errors.New("program not set")

// restoreDelay gives ov time to let go of the terminal before the TUI takes it back
const restoreDelay = 100 * time.Millisecond

// terminal is the part of *tea.Program the pager needs
type terminal interface {
	ReleaseTerminal() error
	RestoreTerminal() error
}

// HistoryPager shows text in ov while the TUI hands over the terminal
type HistoryPager struct {
	term  terminal
	view  func(content string) error
	delay time.Duration
}

// NewHistoryPager creates a pager bound to program
func NewHistoryPager(program *tea.Program) *HistoryPager {
	h := &HistoryPager{view: runOviewer, delay: restoreDelay}
	if program != nil {
		h.term = program
	}
	return h
}

// Show blocks until the user leaves the pager
func (h *HistoryPager) Show(content string) error {
	if h.term == nil {
		return errProgramNotSet
	}

	// Release terminal control to run ov
	if err := h.term.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		time.Sleep(h.delay)
		_ = h.term.RestoreTerminal() // Ignore error as we're in defer context
	}()

	return h.view(content)
}

func runOviewer(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write the document back to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
