package ui

import (
	"strings"
	"sync/atomic"

	"scrollwatch/internal/scroll"
	"scrollwatch/internal/ui/views"
)

// Screen scrolls the whole document the way a browser window does. It
// reports its offsets through ScrollX and ScrollY and emits a scroll
// event whenever either one changes.
type Screen struct {
	scroll.Listeners

	lines  []string
	widest int
	width  int
	height int

	// read by the tracker from timer goroutines
	x atomic.Int64
	y atomic.Int64
}

// NewScreen creates a screen over the given lines
func NewScreen(lines []string) *Screen {
	return &Screen{lines: lines, widest: views.Widest(lines)}
}

func (s *Screen) ScrollX() int { return int(s.x.Load()) }
func (s *Screen) ScrollY() int { return int(s.y.Load()) }

// Offset returns the horizontal and vertical offset
func (s *Screen) Offset() (int, int) {
	return s.ScrollX(), s.ScrollY()
}

// SetSize resizes the viewport. Offsets past the new bounds are pulled
// back, which counts as a scroll.
func (s *Screen) SetSize(width, height int) {
	s.width, s.height = max(width, 0), max(height, 0)
	s.ScrollTo(s.ScrollX(), s.ScrollY())
}

// ScrollBy moves the offsets by a delta and reports whether they changed
func (s *Screen) ScrollBy(dx, dy int) bool {
	return s.ScrollTo(s.ScrollX()+dx, s.ScrollY()+dy)
}

// ScrollTo moves to an absolute position, clamped to the document
func (s *Screen) ScrollTo(x, y int) bool {
	x = clamp(x, 0, max(s.widest-s.width, 0))
	y = clamp(y, 0, s.MaxY())
	if x == s.ScrollX() && y == s.ScrollY() {
		return false
	}
	s.x.Store(int64(x))
	s.y.Store(int64(y))
	s.Emit(scroll.EventScroll)
	return true
}

// MaxY is the largest vertical offset
func (s *Screen) MaxY() int {
	return max(len(s.lines)-s.height, 0)
}

// PageSize is how far a page key scrolls
func (s *Screen) PageSize() int {
	return max(s.height-1, 1)
}

// Above and Below count the lines outside the viewport
func (s *Screen) Above() int { return s.ScrollY() }
func (s *Screen) Below() int { return max(len(s.lines)-s.ScrollY()-s.height, 0) }

// View renders rows lines from the current offset. rows may exceed the
// viewport height when the header is hidden; the offsets do not change.
func (s *Screen) View(rows int) string {
	x, y := s.Offset()
	out := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		line := ""
		if y+i < len(s.lines) {
			line = views.Clip(s.lines[y+i], x, s.width)
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
