package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrollwatch/internal/scroll"
)

func countScrolls(src scroll.Source) *int {
	n := 0
	src.Listen(scroll.EventScroll, func() { n++ })
	return &n
}

func TestScreenScrollClampsAndEmitsOnChange(t *testing.T) {
	s := NewScreen([]string{"0123456789", "a", "b", "c", "d"})
	s.SetSize(4, 2)
	scrolls := countScrolls(s)

	assert.True(t, s.ScrollBy(0, 1))
	assert.False(t, s.ScrollBy(0, 0))
	assert.True(t, s.ScrollTo(100, 100))
	assert.Equal(t, 6, s.ScrollX())
	assert.Equal(t, 3, s.ScrollY())
	assert.False(t, s.ScrollBy(1, 1))
	assert.Equal(t, 2, *scrolls)

	x, y, ok := scroll.ReadOffsets(s)
	require.True(t, ok)
	assert.Equal(t, 6, x)
	assert.Equal(t, 3, y)

	// Growing the viewport pulls the offsets back
	s.SetSize(10, 5)
	assert.Equal(t, 0, s.ScrollX())
	assert.Equal(t, 0, s.ScrollY())
	assert.Equal(t, 3, *scrolls)
}

func TestScreenViewClipsAndPads(t *testing.T) {
	s := NewScreen([]string{"0123456789", "abcdefghij"})
	s.SetSize(3, 1)
	s.ScrollTo(2, 0)

	assert.Equal(t, "234", s.View(1))
	assert.Equal(t, []string{"234", "cde", ""}, strings.Split(s.View(3), "\n"))
	assert.Equal(t, 1, s.Below())
	assert.Equal(t, 0, s.Above())
}

func TestPaneIsAnElementSource(t *testing.T) {
	p := NewPane(SampleDocument(50))
	p.SetSize(20, 10)
	scrolls := countScrolls(p)

	assert.True(t, p.ScrollBy(4, 5))
	assert.Equal(t, 4, p.ScrollLeft())
	assert.Equal(t, 5, p.ScrollTop())

	x, y, ok := scroll.ReadOffsets(p)
	require.True(t, ok)
	assert.Equal(t, 4, x)
	assert.Equal(t, 5, y)

	assert.True(t, p.ScrollTo(0, 1000))
	assert.Equal(t, 40, p.ScrollTop())
	assert.Equal(t, p.MaxY(), p.ScrollTop())
	assert.False(t, p.ScrollBy(0, 1))
	assert.Equal(t, 2, *scrolls)

	assert.Equal(t, 40, p.Above())
	assert.Equal(t, 0, p.Below())
	assert.Contains(t, p.View(), "41 │")
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"a", "b   c"}, SplitLines("a\r\nb\tc\n"))
	assert.Len(t, SampleDocument(7), 7)
}
