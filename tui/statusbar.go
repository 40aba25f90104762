package tui

import "github.com/lixenwraith/scribe/terminal"

// StatusBar is a single-row bar with left, center, and right labels
type StatusBar struct {
	Left   string
	Center string
	Right  string
}

// Draw renders the bar into a one-row region. The center label is
// centered in the full width; left and right labels stay flush with
// their edges and win on overlap.
func (sb StatusBar) Draw(r Region, style terminal.Style) {
	if r.Height() < 1 {
		return
	}
	w := r.Width()
	r.Sub(0, 0, w, 1).Clear(style)

	centerX := (w - runeCount(sb.Center)) / 2
	if centerX < 0 {
		centerX = 0
	}
	r.PutString(centerX, 0, sb.Center, style)

	r.PutString(0, 0, sb.Left, style)

	rightX := w - runeCount(sb.Right)
	if rightX < 0 {
		rightX = 0
	}
	r.PutString(rightX, 0, sb.Right, style)
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
