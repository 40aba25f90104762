package tui

import "github.com/lixenwraith/scribe/terminal"

// Eighth-block runes for sub-cell thumb edges, lightest to full
var thumbBlocks = [...]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// ScrollBar draws a vertical scroll indicator with fractional
// eighth-block thumb edges, so small documents still show smooth
// thumb movement.
type ScrollBar struct {
	Total   int // Total content lines
	Visible int // Lines shown at once
	Offset  int // First visible line
}

// Draw renders the scroll bar into a one-column region
func (sb ScrollBar) Draw(r Region, style terminal.Style) {
	h := r.Height()
	if h <= 0 {
		return
	}

	if sb.Total <= sb.Visible || sb.Total <= 0 {
		for y := 0; y < h; y++ {
			r.PutChar(0, y, '│', style)
		}
		return
	}

	// Thumb size and position in eighths of a cell
	eighths := h * 8
	thumbLen := sb.Visible * eighths / sb.Total
	if thumbLen < 8 {
		thumbLen = 8 // Never smaller than one cell
	}
	maxOffset := sb.Total - sb.Visible
	offset := sb.Offset
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	thumbTop := 0
	if maxOffset > 0 {
		thumbTop = offset * (eighths - thumbLen) / maxOffset
	}
	thumbBot := thumbTop + thumbLen

	for y := 0; y < h; y++ {
		cellTop := y * 8
		cellBot := cellTop + 8

		switch {
		case cellBot <= thumbTop || cellTop >= thumbBot:
			r.PutChar(0, y, '│', style)
		case cellTop >= thumbTop && cellBot <= thumbBot:
			r.PutChar(0, y, '█', style)
		case cellTop < thumbTop:
			// Thumb starts inside this cell; lower partial block.
			// Block runes fill from the bottom, which matches a thumb
			// entering from below the cell top.
			filled := cellBot - thumbTop
			r.PutChar(0, y, thumbBlocks[filled-1], style)
		default:
			// Thumb ends inside this cell; draw the filled portion
			// inverted so it hangs from the cell top
			filled := thumbBot - cellTop
			inv := terminal.Style{Fg: style.Bg, Bg: style.Fg, Attr: style.Attr}
			r.PutChar(0, y, thumbBlocks[8-filled], inv)
		}
	}
}
