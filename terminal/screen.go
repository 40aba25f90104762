package terminal

import "io"

// Attr is a bitmask of text attributes
type Attr uint8

const (
	AttrBold      Attr = 1 << 0
	AttrUnderline Attr = 1 << 1
)

// Style describes cell appearance
type Style struct {
	Fg   RGB
	Bg   RGB
	Attr Attr
}

// DefaultStyle is white on black with no attributes
var DefaultStyle = Style{Fg: RGB{192, 192, 192}, Bg: RGBBlack}

// Cell is one character cell in the grid
type Cell struct {
	Rune  rune
	Style Style
}

// Screen is a double-buffered cell grid. Draw calls mutate the desired
// grid; Refresh diffs it against what is already painted and emits only
// the changed cells.
type Screen struct {
	width  int
	height int
	cells  []Cell // Desired state, row-major

	out *outputBuffer

	cursorX       int
	cursorY       int
	cursorVisible bool
}

// NewScreen creates a screen of the given size writing ANSI output to
// w. Non-positive dimensions yield a zero-size grid: every write
// no-ops and Refresh emits nothing.
func NewScreen(w io.Writer, width, height int, mode ColorMode) *Screen {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s := &Screen{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		out:    newOutputBuffer(w, width, height, mode),
	}
	s.fill(Cell{Rune: ' ', Style: DefaultStyle})
	return s
}

// Width returns the grid width in cells
func (s *Screen) Width() int { return s.width }

// Height returns the grid height in cells
func (s *Screen) Height() int { return s.height }

// Cells exposes the desired grid for direct region drawing
func (s *Screen) Cells() []Cell { return s.cells }

// PutChar sets a single cell. Out-of-bounds coordinates are ignored.
func (s *Screen) PutChar(x, y int, r rune, style Style) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = Cell{Rune: r, Style: style}
}

// PutString writes a string starting at (x, y), clipping at the right
// edge. Returns the number of cells written.
func (s *Screen) PutString(x, y int, text string, style Style) int {
	if y < 0 || y >= s.height {
		return 0
	}
	n := 0
	for _, r := range text {
		cx := x + n
		if cx >= s.width {
			break
		}
		if cx >= 0 {
			s.cells[y*s.width+cx] = Cell{Rune: r, Style: style}
		}
		n++
	}
	return n
}

// Clear fills the grid with spaces in the given style
func (s *Screen) Clear(style Style) {
	s.fill(Cell{Rune: ' ', Style: style})
}

func (s *Screen) fill(c Cell) {
	for i := range s.cells {
		s.cells[i] = c
	}
}

// SetCursor positions the hardware cursor (shown after next Refresh)
func (s *Screen) SetCursor(x, y int) {
	s.cursorX = clampCell(x, s.width)
	s.cursorY = clampCell(y, s.height)
	s.cursorVisible = true
}

// HideCursor hides the hardware cursor after next Refresh
func (s *Screen) HideCursor() {
	s.cursorVisible = false
}

// Refresh flushes changed cells to the terminal. A refresh with no
// pending changes and an unchanged cursor emits no bytes.
func (s *Screen) Refresh() error {
	return s.out.flush(s.cells, s.width, s.height, s.cursorX, s.cursorY, s.cursorVisible)
}

// Invalidate forces the next Refresh to repaint every cell
func (s *Screen) Invalidate() {
	s.out.invalidate()
}

// Resize changes grid dimensions, preserving overlapping content. The
// next Refresh repaints everything.
func (s *Screen) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == s.width && height == s.height {
		return
	}

	next := make([]Cell, width*height)
	blank := Cell{Rune: ' ', Style: DefaultStyle}
	for i := range next {
		next[i] = blank
	}
	copyW := minInt(width, s.width)
	copyH := minInt(height, s.height)
	for y := 0; y < copyH; y++ {
		copy(next[y*width:y*width+copyW], s.cells[y*s.width:y*s.width+copyW])
	}

	s.cells = next
	s.width = width
	s.height = height
	s.cursorX = clampCell(s.cursorX, width)
	s.cursorY = clampCell(s.cursorY, height)
	s.out.resize(width, height)
}

func clampCell(v, max int) int {
	if v <= 0 || max <= 0 {
		return 0
	}
	if v >= max {
		return max - 1
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
