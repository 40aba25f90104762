package tui

import (
	"strings"
	"testing"

	"github.com/lixenwraith/scribe/terminal"
)

func testScreen(w, h int) *terminal.Screen {
	var sink strings.Builder
	return terminal.NewScreen(&sink, w, h, terminal.ColorMode256)
}

func rowString(s *terminal.Screen, y, w int) string {
	cells := s.Cells()
	runes := make([]rune, w)
	for x := 0; x < w; x++ {
		runes[x] = cells[y*s.Width()+x].Rune
	}
	return string(runes)
}

func TestRegionClipping(t *testing.T) {
	s := testScreen(10, 5)
	r := NewRegion(s, 2, 1, 5, 3)

	r.PutString(0, 0, "abcdefgh", terminal.DefaultStyle)
	if got := rowString(s, 1, 10); got != "  abcde   " {
		t.Errorf("row = %q", got)
	}

	// Out-of-region writes are dropped
	r.PutChar(-1, 0, 'X', terminal.DefaultStyle)
	r.PutChar(5, 0, 'X', terminal.DefaultStyle)
	r.PutChar(0, 3, 'X', terminal.DefaultStyle)
	for _, c := range s.Cells() {
		if c.Rune == 'X' {
			t.Fatal("write escaped the region")
		}
	}
}

func TestRegionSub(t *testing.T) {
	s := testScreen(10, 5)
	r := NewRegion(s, 2, 1, 6, 3)
	sub := r.Sub(1, 1, 10, 10) // Oversized, must clip to parent
	if sub.Width() != 5 || sub.Height() != 2 {
		t.Errorf("sub = %dx%d, want 5x2", sub.Width(), sub.Height())
	}
	sub.PutChar(0, 0, 'Z', terminal.DefaultStyle)
	if s.Cells()[2*10+3].Rune != 'Z' {
		t.Error("sub-region origin misplaced")
	}
}

func TestRegionHitTesting(t *testing.T) {
	s := testScreen(10, 5)
	r := NewRegion(s, 2, 1, 5, 3)
	if !r.Contains(2, 1) || !r.Contains(6, 3) {
		t.Error("corners must be inside")
	}
	if r.Contains(7, 1) || r.Contains(2, 4) || r.Contains(1, 1) {
		t.Error("outside points reported inside")
	}
	if x, y := r.ToLocal(4, 2); x != 2 || y != 1 {
		t.Errorf("ToLocal = %d,%d", x, y)
	}
}

func TestScrollBarFullWhenContentFits(t *testing.T) {
	s := testScreen(1, 4)
	r := NewRegion(s, 0, 0, 1, 4)
	ScrollBar{Total: 3, Visible: 10, Offset: 0}.Draw(r, terminal.DefaultStyle)
	for y := 0; y < 4; y++ {
		if s.Cells()[y].Rune != '│' {
			t.Errorf("row %d = %q, want track", y, s.Cells()[y].Rune)
		}
	}
}

func TestScrollBarThumbPosition(t *testing.T) {
	s := testScreen(1, 10)
	r := NewRegion(s, 0, 0, 1, 10)

	// At the top, the thumb starts in row 0
	ScrollBar{Total: 100, Visible: 10, Offset: 0}.Draw(r, terminal.DefaultStyle)
	if s.Cells()[0].Rune == '│' {
		t.Error("thumb missing from top row at offset 0")
	}
	if s.Cells()[9].Rune != '│' {
		t.Error("thumb should not reach the bottom at offset 0")
	}

	// At the bottom, the thumb ends in the last row
	ScrollBar{Total: 100, Visible: 10, Offset: 90}.Draw(r, terminal.DefaultStyle)
	if s.Cells()[9].Rune == '│' {
		t.Error("thumb missing from bottom row at max offset")
	}
	if s.Cells()[0].Rune != '│' {
		t.Error("thumb should not reach the top at max offset")
	}
}

func TestScrollBarOffsetClamped(t *testing.T) {
	s := testScreen(1, 10)
	r := NewRegion(s, 0, 0, 1, 10)
	// Draws with nonsense offsets must not panic
	ScrollBar{Total: 100, Visible: 10, Offset: -5}.Draw(r, terminal.DefaultStyle)
	ScrollBar{Total: 100, Visible: 10, Offset: 1000}.Draw(r, terminal.DefaultStyle)
}

func TestStatusBarLayout(t *testing.T) {
	s := testScreen(20, 1)
	r := NewRegion(s, 0, 0, 20, 1)
	StatusBar{Left: "file", Center: "mid", Right: "9:9"}.Draw(r, terminal.DefaultStyle)

	row := rowString(s, 0, 20)
	if !strings.HasPrefix(row, "file") {
		t.Errorf("left label: %q", row)
	}
	if !strings.HasSuffix(row, "9:9") {
		t.Errorf("right label: %q", row)
	}
	if !strings.Contains(row[5:15], "mid") {
		t.Errorf("center label not centered: %q", row)
	}
}
