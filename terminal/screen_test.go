package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func newTestScreen(w, h int) (*Screen, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewScreen(&buf, w, h, ColorMode256), &buf
}

func TestRefreshEmitsOnlyOnChange(t *testing.T) {
	s, buf := newTestScreen(10, 4)

	if err := s.Refresh(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("first refresh painted nothing")
	}

	buf.Reset()
	if err := s.Refresh(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("refresh with no changes wrote %d bytes: %q", buf.Len(), buf.String())
	}
}

func TestRefreshSingleCell(t *testing.T) {
	s, buf := newTestScreen(10, 4)
	s.Refresh()
	buf.Reset()

	s.PutChar(3, 2, 'X', DefaultStyle)
	s.Refresh()

	out := buf.String()
	if !strings.Contains(out, "X") {
		t.Errorf("output missing cell content: %q", out)
	}
	if !strings.Contains(out, "\x1b[3;4H") {
		t.Errorf("output missing cursor positioning for (3,2): %q", out)
	}
	// A single dirty cell should cost far less than a full repaint
	if len(out) > 40 {
		t.Errorf("single-cell update wrote %d bytes: %q", len(out), out)
	}
}

func TestRefreshAdjacentCellsSkipPositioning(t *testing.T) {
	s, buf := newTestScreen(20, 4)
	s.Refresh()
	buf.Reset()

	s.PutString(5, 1, "abc", DefaultStyle)
	s.Refresh()

	out := buf.String()
	if strings.Count(out, "H") != 1 {
		t.Errorf("adjacent cells repositioned more than once: %q", out)
	}
	if !strings.Contains(out, "abc") {
		t.Errorf("run not written contiguously: %q", out)
	}
}

func TestRefreshCoalescesStyle(t *testing.T) {
	s, buf := newTestScreen(20, 2)
	s.Refresh()
	buf.Reset()

	style := Style{Fg: RGB{R: 255}, Bg: RGBBlack}
	s.PutString(0, 0, "aaaa", style)
	s.Refresh()

	// One foreground change for the run, not one per cell
	out := buf.String()
	if n := strings.Count(out, "\x1b[38;5;"); n != 1 {
		t.Errorf("expected 1 fg escape for same-style run, got %d: %q", n, out)
	}
}

func TestPutStringClipsAtEdge(t *testing.T) {
	s, _ := newTestScreen(5, 2)
	n := s.PutString(3, 0, "hello", DefaultStyle)
	if n != 2 {
		t.Errorf("PutString wrote %d cells, want 2", n)
	}
	cells := s.Cells()
	if cells[3].Rune != 'h' || cells[4].Rune != 'e' {
		t.Errorf("clipped write wrong: %c %c", cells[3].Rune, cells[4].Rune)
	}
}

func TestPutCharOutOfBounds(t *testing.T) {
	s, _ := newTestScreen(5, 2)
	// Must not panic or corrupt the grid
	s.PutChar(-1, 0, 'x', DefaultStyle)
	s.PutChar(5, 0, 'x', DefaultStyle)
	s.PutChar(0, 2, 'x', DefaultStyle)
	for i, c := range s.Cells() {
		if c.Rune == 'x' {
			t.Fatalf("out-of-bounds write landed at cell %d", i)
		}
	}
}

func TestResizePreservesContent(t *testing.T) {
	s, buf := newTestScreen(10, 4)
	s.PutString(0, 0, "keep", DefaultStyle)
	s.Refresh()

	s.Resize(20, 6)
	if s.Width() != 20 || s.Height() != 6 {
		t.Fatalf("size = %dx%d, want 20x6", s.Width(), s.Height())
	}
	cells := s.Cells()
	if string([]rune{cells[0].Rune, cells[1].Rune, cells[2].Rune, cells[3].Rune}) != "keep" {
		t.Error("content lost across resize")
	}

	buf.Reset()
	s.Refresh()
	if buf.Len() == 0 {
		t.Error("resize must force a repaint")
	}
}

func TestCursorMoveAloneEmits(t *testing.T) {
	s, buf := newTestScreen(10, 4)
	s.Refresh()
	buf.Reset()

	s.SetCursor(5, 2)
	s.Refresh()
	if !strings.Contains(buf.String(), "\x1b[3;6H") {
		t.Errorf("cursor move not emitted: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "\x1b[?25h") {
		t.Errorf("cursor not shown: %q", buf.String())
	}

	buf.Reset()
	s.Refresh()
	if buf.Len() != 0 {
		t.Errorf("unchanged cursor re-emitted: %q", buf.String())
	}
}

func TestZeroSizeScreen(t *testing.T) {
	s, buf := newTestScreen(0, 0)
	if s.Width() != 0 || s.Height() != 0 {
		t.Fatalf("size = %dx%d, want 0x0", s.Width(), s.Height())
	}

	// Writes no-op, refresh emits nothing
	s.PutChar(0, 0, 'x', DefaultStyle)
	if n := s.PutString(0, 0, "hello", DefaultStyle); n != 0 {
		t.Errorf("PutString wrote %d cells on a zero grid", n)
	}
	s.SetCursor(3, 3)
	if err := s.Refresh(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("zero-size refresh wrote %d bytes: %q", buf.Len(), buf.String())
	}

	// Growing out of the degenerate state starts painting
	s.Resize(4, 2)
	s.PutChar(0, 0, 'x', DefaultStyle)
	s.Refresh()
	if buf.Len() == 0 {
		t.Error("refresh after growing emitted nothing")
	}

	// Negative dimensions clamp to the degenerate grid
	s.Resize(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative resize = %dx%d, want 0x0", s.Width(), s.Height())
	}
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want uint8
	}{
		{"black", RGB{0, 0, 0}, 16},
		{"white", RGB{255, 255, 255}, 231},
		{"pure red", RGB{255, 0, 0}, 196},
		{"pure green", RGB{0, 255, 0}, 46},
		{"pure blue", RGB{0, 0, 255}, 21},
		{"mid gray", RGB{128, 128, 128}, 244},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.c); got != tt.want {
				t.Errorf("RGBTo256(%+v) = %d, want %d", tt.c, got, tt.want)
			}
		})
	}
}
