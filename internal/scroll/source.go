package scroll

// Event names a notification a Source can emit
type Event string

// EventScroll fires whenever a source's offsets may have changed
const EventScroll Event = "scroll"

// Source is anything that scrolls and can tell listeners about it. Offsets
// are read through the optional accessor interfaces below: a viewport-wide
// surface implements ScrollX/ScrollY, a single scrollable element implements
// ScrollLeft/ScrollTop.
type Source interface {
	// Listen registers handler for event and returns a func that removes it
	Listen(event Event, handler func()) (remove func())
}

// WindowX is the horizontal offset of a viewport-wide surface
type WindowX interface {
	ScrollX() int
}

// WindowY is the vertical offset of a viewport-wide surface
type WindowY interface {
	ScrollY() int
}

// ElementX is the horizontal offset of a scrollable element
type ElementX interface {
	ScrollLeft() int
}

// ElementY is the vertical offset of a scrollable element
type ElementY interface {
	ScrollTop() int
}

// ReadOffsets reads both offsets from src, preferring the window-style
// accessor on each axis. ok is false when an axis has no accessor at all.
func ReadOffsets(src Source) (x, y int, ok bool) {
	x, okX := readX(src)
	y, okY := readY(src)
	return x, y, okX && okY
}

func readX(src Source) (int, bool) {
	if w, ok := src.(WindowX); ok {
		return w.ScrollX(), true
	}
	if e, ok := src.(ElementX); ok {
		return e.ScrollLeft(), true
	}
	return 0, false
}

func readY(src Source) (int, bool) {
	if w, ok := src.(WindowY); ok {
		return w.ScrollY(), true
	}
	if e, ok := src.(ElementY); ok {
		return e.ScrollTop(), true
	}
	return 0, false
}
