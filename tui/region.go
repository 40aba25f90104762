package tui

import "github.com/lixenwraith/scribe/terminal"

// Region is a clipped rectangular view onto a screen. All coordinates
// passed to its methods are region-local; drawing outside the region
// is silently discarded.
type Region struct {
	screen *terminal.Screen
	x, y   int
	w, h   int
}

// NewRegion creates a region covering the given screen rectangle,
// clipped to the screen bounds
func NewRegion(s *terminal.Screen, x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > s.Width() {
		w = s.Width() - x
	}
	if y+h > s.Height() {
		h = s.Height() - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{screen: s, x: x, y: y, w: w, h: h}
}

// Sub returns a region within this one, clipped to it
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.w {
		w = r.w - x
	}
	if y+h > r.h {
		h = r.h - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{screen: r.screen, x: r.x + x, y: r.y + y, w: w, h: h}
}

// Width returns the region width in cells
func (r Region) Width() int { return r.w }

// Height returns the region height in cells
func (r Region) Height() int { return r.h }

// PutChar sets one cell at region-local coordinates
func (r Region) PutChar(x, y int, ch rune, style terminal.Style) {
	if x < 0 || x >= r.w || y < 0 || y >= r.h {
		return
	}
	r.screen.PutChar(r.x+x, r.y+y, ch, style)
}

// PutString writes text at region-local coordinates, clipped to the
// region's right edge. Returns cells written.
func (r Region) PutString(x, y int, text string, style terminal.Style) int {
	if y < 0 || y >= r.h {
		return 0
	}
	n := 0
	for _, ch := range text {
		cx := x + n
		if cx >= r.w {
			break
		}
		if cx >= 0 {
			r.screen.PutChar(r.x+cx, r.y+y, ch, style)
		}
		n++
	}
	return n
}

// Fill paints the whole region with a character and style
func (r Region) Fill(ch rune, style terminal.Style) {
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			r.screen.PutChar(r.x+x, r.y+y, ch, style)
		}
	}
}

// Clear fills the region with spaces
func (r Region) Clear(style terminal.Style) {
	r.Fill(' ', style)
}

// CursorTo positions the hardware cursor at region-local coordinates
// when they fall inside the region, hiding it otherwise
func (r Region) CursorTo(x, y int) {
	if x < 0 || x >= r.w || y < 0 || y >= r.h {
		r.screen.HideCursor()
		return
	}
	r.screen.SetCursor(r.x+x, r.y+y)
}

// Contains reports whether screen-absolute coordinates fall inside
// the region
func (r Region) Contains(absX, absY int) bool {
	return absX >= r.x && absX < r.x+r.w && absY >= r.y && absY < r.y+r.h
}

// ToLocal converts screen-absolute coordinates to region-local
func (r Region) ToLocal(absX, absY int) (int, int) {
	return absX - r.x, absY - r.y
}
