package ui

import (
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/viewport"

	"scrollwatch/internal/scroll"
	"scrollwatch/internal/ui/views"
)

// Pane is a scrollable element inside the page. It exposes its offsets as
// ScrollLeft and ScrollTop, and emits a scroll event when they change.
// Vertical scrolling is delegated to a bubbles viewport; horizontal
// scrolling clips the content before it is handed to the viewport.
type Pane struct {
	scroll.Listeners

	vp     viewport.Model
	lines  []string
	widest int
	left   int

	// read by the tracker from timer goroutines
	scrollLeft atomic.Int64
	scrollTop  atomic.Int64
}

// NewPane creates a pane over the given lines
func NewPane(lines []string) *Pane {
	p := &Pane{
		vp:     viewport.New(0, 0),
		lines:  lines,
		widest: views.Widest(lines),
	}
	p.render()
	return p
}

func (p *Pane) ScrollLeft() int { return int(p.scrollLeft.Load()) }
func (p *Pane) ScrollTop() int  { return int(p.scrollTop.Load()) }

// Offset returns the horizontal and vertical offset
func (p *Pane) Offset() (int, int) {
	return p.ScrollLeft(), p.ScrollTop()
}

// SetSize sets the inner size of the pane
func (p *Pane) SetSize(width, height int) {
	p.vp.Width, p.vp.Height = max(width, 0), max(height, 0)
	p.left = clamp(p.left, 0, p.maxLeft())
	p.render()
	p.vp.SetYOffset(p.vp.YOffset)
	p.sync()
}

// ScrollBy moves the offsets by a delta and reports whether they changed
func (p *Pane) ScrollBy(dx, dy int) bool {
	return p.ScrollTo(p.left+dx, p.vp.YOffset+dy)
}

// ScrollTo moves to an absolute position, clamped to the content
func (p *Pane) ScrollTo(x, y int) bool {
	if left := clamp(x, 0, p.maxLeft()); left != p.left {
		p.left = left
		p.render()
	}
	p.vp.SetYOffset(y)
	return p.sync()
}

// MaxY is the largest vertical offset
func (p *Pane) MaxY() int {
	return max(len(p.lines)-p.vp.Height, 0)
}

// PageSize is how far a page key scrolls
func (p *Pane) PageSize() int {
	return max(p.vp.Height-1, 1)
}

func (p *Pane) Above() int { return p.vp.YOffset }
func (p *Pane) Below() int { return max(len(p.lines)-p.vp.YOffset-p.vp.Height, 0) }

// View renders the visible part of the content
func (p *Pane) View() string {
	return p.vp.View()
}

func (p *Pane) maxLeft() int {
	return max(p.widest-p.vp.Width, 0)
}

func (p *Pane) render() {
	clipped := make([]string, len(p.lines))
	for i, l := range p.lines {
		clipped[i] = views.Clip(l, p.left, p.vp.Width)
	}
	p.vp.SetContent(strings.Join(clipped, "\n"))
}

// sync publishes the viewport position and emits a scroll event if it moved
func (p *Pane) sync() bool {
	left, top := int64(p.left), int64(p.vp.YOffset)
	if left == p.scrollLeft.Load() && top == p.scrollTop.Load() {
		return false
	}
	p.scrollLeft.Store(left)
	p.scrollTop.Store(top)
	p.Emit(scroll.EventScroll)
	return true
}
