package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestClip(t *testing.T) {
	assert.Equal(t, "cde", Clip("abcdefg", 2, 3))
	assert.Equal(t, "", Clip("abc", 5, 3))
	assert.Equal(t, "", Clip("abc", 0, 0))
	// 世 and 界 are two cells wide
	assert.Equal(t, "界", Clip("世界x", 2, 2))
	assert.Equal(t, "", Clip("世界", 1, 1))
}

func TestWidestAndExpandTabs(t *testing.T) {
	assert.Equal(t, 4, Widest([]string{"ab", "世界", ""}))
	assert.Equal(t, 0, Widest(nil))
	assert.Equal(t, "a   b", ExpandTabs("a\tb"))
	assert.Equal(t, "        x", ExpandTabs("\t\tx"))
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab  ", Fit("ab", 4))
	assert.Equal(t, "abc…", Fit("abcdefgh", 4))
	assert.Equal(t, "", Fit("abc", 0))
}

func TestRenderLoadingBeforeFirstResize(t *testing.T) {
	assert.Equal(t, "Loading...", NewRenderer().Render(ViewState{}))
}

func TestRenderHeaderAndStatus(t *testing.T) {
	r := NewRenderer()
	state := ViewState{
		Width:      80,
		Height:     10,
		Title:      "notes.txt",
		ShowHeader: true,
		Position:   "window x=0 y=3",
		Direction:  "↓",
		Body:       "line one",
		Above:      3,
		Below:      12,
		Tracking:   "window",
		Ready:      true,
	}

	out := r.Render(state)
	assert.Contains(t, out, "notes.txt")
	assert.Contains(t, out, "y=3")
	assert.Contains(t, out, "↑ 3 more above")
	assert.Contains(t, out, "↓ 12 more below")
	assert.Contains(t, out, "tracking window")
	assert.Contains(t, out, ReadyMarker)

	state.ShowHeader = false
	state.Tracking = ""
	state.Ready = false
	out = r.Render(state)
	assert.NotContains(t, out, "notes.txt")
	assert.Contains(t, out, "tracking off")
	assert.False(t, strings.Contains(out, ReadyMarker))
}

func TestReadyMarkerSurvivesNarrowTerminals(t *testing.T) {
	r := NewRenderer()
	state := ViewState{
		Height:   10,
		Title:    "notes.txt",
		Above:    3,
		Below:    12,
		Tracking: "window",
		Ready:    true,
	}

	status := func() string {
		lines := strings.Split(r.Render(state), "\n")
		return lines[len(lines)-1]
	}

	for _, width := range []int{60, 30, 12, 5} {
		state.Width = width
		assert.Contains(t, status(), ReadyMarker, "width %d", width)
	}

	state.Width = 40
	line := status()
	assert.Equal(t, 40, lipgloss.Width(line))
	assert.Contains(t, line, "tracking window")
	assert.Contains(t, line, "· "+ReadyMarker)
}

func TestHeaderRows(t *testing.T) {
	assert.Equal(t, 2, HeaderRows(true))
	assert.Equal(t, 1, HeaderRows(false))
}
