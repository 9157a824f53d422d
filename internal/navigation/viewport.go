package navigation

// DefaultBreakpointPx is the width, in logical pixels, at and above which
// the tab bar scrolls horizontally instead of paging.
const DefaultBreakpointPx = 768

// DefaultCellWidthPx converts terminal columns to logical pixels.
const DefaultCellWidthPx = 8

// Mode is how the tab bar is presented.
type Mode int

const (
	// ModeWindowed shows every tab in a horizontally scrollable strip.
	ModeWindowed Mode = iota
	// ModePager shows one panel at a time with prev/next/jump controls.
	ModePager
)

func (m Mode) String() string {
	if m == ModePager {
		return "pager"
	}
	return "windowed"
}

// ModeFor picks the presentation for a viewport width.
func ModeFor(widthPx, breakpointPx int) Mode {
	if breakpointPx <= 0 {
		breakpointPx = DefaultBreakpointPx
	}
	if widthPx >= breakpointPx {
		return ModeWindowed
	}
	return ModePager
}

// Strip is the scroll state of the windowed tab strip. Widths are in
// terminal cells.
type Strip struct {
	offset   int
	content  int
	viewport int
}

// Resize records new content and viewport widths and clamps the offset.
func (s *Strip) Resize(content, viewport int) {
	if content < 0 {
		content = 0
	}
	if viewport < 0 {
		viewport = 0
	}
	s.content = content
	s.viewport = viewport
	s.clamp()
}

// Scroll moves the window by delta cells.
func (s *Strip) Scroll(delta int) {
	s.offset += delta
	s.clamp()
}

// EnsureVisible scrolls the minimum needed to show [start, end).
func (s *Strip) EnsureVisible(start, end int) {
	if start < s.offset {
		s.offset = start
	} else if end > s.offset+s.viewport {
		s.offset = end - s.viewport
	}
	s.clamp()
}

func (s *Strip) clamp() {
	maxOffset := s.content - s.viewport
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	if s.offset < 0 {
		s.offset = 0
	}
}

func (s Strip) Offset() int { return s.offset }

func (s Strip) CanScrollLeft() bool { return s.offset > 0 }

func (s Strip) CanScrollRight() bool { return s.offset+s.viewport < s.content }

// Viewport derives the presentation mode from the terminal width.
type Viewport struct {
	BreakpointPx int
	CellWidthPx  int

	cols int
	mode Mode
}

// NewViewport uses the defaults for zero values.
func NewViewport(breakpointPx, cellWidthPx int) *Viewport {
	if breakpointPx <= 0 {
		breakpointPx = DefaultBreakpointPx
	}
	if cellWidthPx <= 0 {
		cellWidthPx = DefaultCellWidthPx
	}
	return &Viewport{BreakpointPx: breakpointPx, CellWidthPx: cellWidthPx, mode: ModePager}
}

// Resize re-evaluates the mode and reports whether it changed.
func (v *Viewport) Resize(cols int) bool {
	v.cols = cols
	next := ModeFor(cols*v.CellWidthPx, v.BreakpointPx)
	changed := next != v.mode
	v.mode = next
	return changed
}

func (v *Viewport) Mode() Mode { return v.mode }

func (v *Viewport) Cols() int { return v.cols }
