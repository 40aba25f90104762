package terminal

import (
	"bufio"
	"io"
)

// outputBuffer owns the painted grid and translates desired-vs-painted
// diffs into a minimal ANSI byte stream. One running style is kept
// across a whole flush pass so consecutive same-style cells cost no
// extra escape bytes.
type outputBuffer struct {
	w    *bufio.Writer
	mode ColorMode

	back   []Cell // What the terminal currently shows
	backW  int
	backH  int
	valid  bool // False forces full repaint
	encBuf []byte

	style      Style
	styleValid bool

	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorValid   bool
}

func newOutputBuffer(w io.Writer, width, height int, mode ColorMode) *outputBuffer {
	return &outputBuffer{
		w:      bufio.NewWriterSize(w, 32*1024),
		mode:   mode,
		back:   make([]Cell, width*height),
		backW:  width,
		backH:  height,
		encBuf: make([]byte, 0, 4),
	}
}

func (o *outputBuffer) invalidate() {
	o.valid = false
	o.styleValid = false
	o.cursorValid = false
}

func (o *outputBuffer) resize(width, height int) {
	o.back = make([]Cell, width*height)
	o.backW = width
	o.backH = height
	o.invalidate()
}

// flush writes every cell of front that differs from the painted grid,
// then settles the hardware cursor. Emits nothing when nothing changed.
func (o *outputBuffer) flush(front []Cell, width, height, cursorX, cursorY int, cursorVisible bool) error {
	if width == 0 || height == 0 {
		return nil
	}
	if width != o.backW || height != o.backH {
		o.resize(width, height)
	}

	emitted := false
	// Position of the cell the terminal cursor sits after, so a run of
	// adjacent dirty cells needs no repositioning between them
	penX, penY := -2, -2

	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			i := row + x
			if o.valid && front[i] == o.back[i] {
				continue
			}

			if !emitted {
				// First dirty cell this pass: drop the cursor out of
				// sight so partial paints never flicker it
				o.w.Write(csiCursorHide)
			}

			if y == penY && x > penX+1 && x-penX-1 <= 8 {
				// Short same-row gap: forward jump is fewer bytes
				// than absolute positioning
				writeCursorForward(o.w, x-penX-1)
			} else if y != penY || x != penX+1 {
				writeCursorPos(o.w, x, y)
			}
			o.writeStyle(front[i].Style)
			o.writeRune(front[i].Rune)

			o.back[i] = front[i]
			penX, penY = x, y
			emitted = true
		}
	}
	o.valid = true

	cursorMoved := !o.cursorValid || cursorX != o.cursorX || cursorY != o.cursorY ||
		cursorVisible != o.cursorVisible

	if !emitted && !cursorMoved {
		return nil
	}

	if cursorVisible {
		writeCursorPos(o.w, cursorX, cursorY)
		o.w.Write(csiCursorShow)
	} else if emitted || o.cursorVisible || !o.cursorValid {
		o.w.Write(csiCursorHide)
	}
	o.cursorX = cursorX
	o.cursorY = cursorY
	o.cursorVisible = cursorVisible
	o.cursorValid = true

	return o.w.Flush()
}

// writeStyle emits only the SGR fragments that differ from the running
// style. Attribute removal uses the targeted resets (22 bold-off,
// 24 underline-off) rather than SGR0, which would clobber colors.
func (o *outputBuffer) writeStyle(s Style) {
	if o.styleValid && s == o.style {
		return
	}

	if !o.styleValid {
		// Unknown terminal state: reset then emit the full style
		o.w.Write(csiSGR0)
		if s.Attr&AttrBold != 0 {
			o.w.Write(sgrBoldOn)
		}
		if s.Attr&AttrUnderline != 0 {
			o.w.Write(sgrUnderlineOn)
		}
		o.writeFg(s.Fg)
		o.writeBg(s.Bg)
		o.style = s
		o.styleValid = true
		return
	}

	if s.Attr&AttrBold != o.style.Attr&AttrBold {
		if s.Attr&AttrBold != 0 {
			o.w.Write(sgrBoldOn)
		} else {
			o.w.Write(sgrBoldOff)
		}
	}
	if s.Attr&AttrUnderline != o.style.Attr&AttrUnderline {
		if s.Attr&AttrUnderline != 0 {
			o.w.Write(sgrUnderlineOn)
		} else {
			o.w.Write(sgrUnderlineOff)
		}
	}
	if !s.Fg.Equal(o.style.Fg) {
		o.writeFg(s.Fg)
	}
	if !s.Bg.Equal(o.style.Bg) {
		o.writeBg(s.Bg)
	}

	o.style = s
}

func (o *outputBuffer) writeFg(c RGB) {
	if o.mode == ColorModeTrueColor {
		o.w.Write(csiFgRGB)
		writeInt(o.w, int(c.R))
		o.w.WriteByte(';')
		writeInt(o.w, int(c.G))
		o.w.WriteByte(';')
		writeInt(o.w, int(c.B))
		o.w.WriteByte('m')
		return
	}
	o.w.Write(csiFg256)
	writeInt(o.w, int(RGBTo256(c)))
	o.w.WriteByte('m')
}

func (o *outputBuffer) writeBg(c RGB) {
	if o.mode == ColorModeTrueColor {
		o.w.Write(csiBgRGB)
		writeInt(o.w, int(c.R))
		o.w.WriteByte(';')
		writeInt(o.w, int(c.G))
		o.w.WriteByte(';')
		writeInt(o.w, int(c.B))
		o.w.WriteByte('m')
		return
	}
	o.w.Write(csiBg256)
	writeInt(o.w, int(RGBTo256(c)))
	o.w.WriteByte('m')
}

func (o *outputBuffer) writeRune(r rune) {
	if r == 0 {
		r = ' '
	}
	if r < 0x80 && r >= 0x20 {
		o.w.WriteByte(byte(r))
		return
	}
	if r < 0x20 {
		o.w.WriteByte(' ')
		return
	}
	o.encBuf = appendRune(o.encBuf[:0], r)
	o.w.Write(o.encBuf)
}

var (
	sgrBoldOn       = []byte("\x1b[1m")
	sgrBoldOff      = []byte("\x1b[22m")
	sgrUnderlineOn  = []byte("\x1b[4m")
	sgrUnderlineOff = []byte("\x1b[24m")
)
