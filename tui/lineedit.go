package tui

import (
	"unicode"

	"github.com/lixenwraith/scribe/terminal"
)

// LineEditResult tells the host what a key did to the line. Boundary
// conditions (cursor leaving the line, joins, splits) are reported
// back rather than handled internally, so the line edit never needs a
// reference to its container.
type LineEditResult uint8

const (
	LineEditIgnored LineEditResult = iota // Not consumed; host should handle
	LineEditHandled                       // Consumed; text or cursor changed

	LineEditMoveUp   // Cursor should move to the previous line
	LineEditMoveDown // Cursor should move to the next line

	LineEditExitLeft  // Left pressed at column 0
	LineEditExitRight // Right pressed at end of line

	LineEditJoinPrev // Backspace at column 0
	LineEditJoinNext // Delete at end of line
	LineEditSplit    // Enter pressed; line splits at the cursor
)

// LineEdit is a single-line text editing surface with insert and
// overwrite modes, word navigation, and horizontal scrolling
type LineEdit struct {
	text      []rune
	cursor    int
	scroll    int
	tabSize   int
	overwrite bool
}

// NewLineEdit creates an empty line edit with the given tab width
func NewLineEdit(tabSize int) *LineEdit {
	if tabSize < 1 {
		tabSize = 4
	}
	return &LineEdit{tabSize: tabSize}
}

// SetText replaces the content and clamps the cursor
func (le *LineEdit) SetText(text string) {
	le.text = []rune(text)
	if le.cursor > len(le.text) {
		le.cursor = len(le.text)
	}
}

// Text returns the current content
func (le *LineEdit) Text() string {
	return string(le.text)
}

// Len returns the content length in runes
func (le *LineEdit) Len() int {
	return len(le.text)
}

// Cursor returns the cursor column in runes
func (le *LineEdit) Cursor() int {
	return le.cursor
}

// SetCursor moves the cursor, clamping into the content
func (le *LineEdit) SetCursor(col int) {
	if col < 0 {
		col = 0
	}
	if col > len(le.text) {
		col = len(le.text)
	}
	le.cursor = col
}

// ScrollOffset returns the first visible column
func (le *LineEdit) ScrollOffset() int {
	return le.scroll
}

func (le *LineEdit) setScroll(col int) {
	if col < 0 {
		col = 0
	}
	le.scroll = col
}

// Overwrite reports whether overwrite mode is on
func (le *LineEdit) Overwrite() bool {
	return le.overwrite
}

// HandleKey processes one key event. Events it cannot apply locally
// produce a boundary result or LineEditIgnored.
func (le *LineEdit) HandleKey(ev terminal.Event) LineEditResult {
	if ev.Type != terminal.EventKey {
		return LineEditIgnored
	}

	switch ev.Key {
	case terminal.KeyRune:
		if ev.Modifiers&(terminal.ModCtrl|terminal.ModAlt) != 0 {
			return LineEditIgnored
		}
		le.insertRune(ev.Rune)
		return LineEditHandled

	case terminal.KeyTab:
		// Spaces to the next tab stop
		n := le.tabSize - le.cursor%le.tabSize
		for i := 0; i < n; i++ {
			le.insertRune(' ')
		}
		return LineEditHandled

	case terminal.KeyBackspace:
		if le.cursor == 0 {
			return LineEditJoinPrev
		}
		le.text = append(le.text[:le.cursor-1], le.text[le.cursor:]...)
		le.cursor--
		return LineEditHandled

	case terminal.KeyDelete:
		if le.cursor >= len(le.text) {
			return LineEditJoinNext
		}
		le.text = append(le.text[:le.cursor], le.text[le.cursor+1:]...)
		return LineEditHandled

	case terminal.KeyLeft:
		if ev.Modifiers&terminal.ModCtrl != 0 {
			if le.cursor == 0 {
				return LineEditExitLeft
			}
			le.cursor = prevWordStart(le.text, le.cursor)
			return LineEditHandled
		}
		if le.cursor == 0 {
			return LineEditExitLeft
		}
		le.cursor--
		return LineEditHandled

	case terminal.KeyRight:
		if ev.Modifiers&terminal.ModCtrl != 0 {
			if le.cursor >= len(le.text) {
				return LineEditExitRight
			}
			le.cursor = nextWordEnd(le.text, le.cursor)
			return LineEditHandled
		}
		if le.cursor >= len(le.text) {
			return LineEditExitRight
		}
		le.cursor++
		return LineEditHandled

	case terminal.KeyHome:
		le.cursor = 0
		return LineEditHandled

	case terminal.KeyEnd:
		le.cursor = len(le.text)
		return LineEditHandled

	case terminal.KeyUp:
		return LineEditMoveUp

	case terminal.KeyDown:
		return LineEditMoveDown

	case terminal.KeyEnter:
		return LineEditSplit

	case terminal.KeyInsert:
		le.overwrite = !le.overwrite
		return LineEditHandled
	}

	return LineEditIgnored
}

func (le *LineEdit) insertRune(r rune) {
	if le.overwrite && le.cursor < len(le.text) {
		le.text[le.cursor] = r
		le.cursor++
		return
	}
	le.text = append(le.text, 0)
	copy(le.text[le.cursor+1:], le.text[le.cursor:])
	le.text[le.cursor] = r
	le.cursor++
}

// SplitAtCursor removes and returns the text after the cursor,
// truncating the line there. Used by hosts handling LineEditSplit.
func (le *LineEdit) SplitAtCursor() string {
	tail := string(le.text[le.cursor:])
	le.text = le.text[:le.cursor]
	return tail
}

// Draw renders the line into a one-row region, scrolling horizontally
// to keep the cursor visible. With focus the hardware cursor is placed
// at the edit position.
func (le *LineEdit) Draw(r Region, focused bool, style terminal.Style) {
	if r.Height() < 1 || r.Width() < 1 {
		return
	}
	w := r.Width()

	if le.cursor < le.scroll {
		le.scroll = le.cursor
	}
	if le.cursor >= le.scroll+w {
		le.scroll = le.cursor - w + 1
	}

	r.Sub(0, 0, w, 1).Clear(style)
	visible := le.text[minIntTui(le.scroll, len(le.text)):]
	for i, ch := range visible {
		if i >= w {
			break
		}
		r.PutChar(i, 0, ch, style)
	}

	if focused {
		r.CursorTo(le.cursor-le.scroll, 0)
	}
}

// prevWordStart finds the start of the word before col: skip
// whitespace leftward, then skip word runes. Punctuation moves a
// single rune so the cursor never sticks.
func prevWordStart(text []rune, col int) int {
	start := col
	for col > 0 && unicode.IsSpace(text[col-1]) {
		col--
	}
	for col > 0 && isWordRune(text[col-1]) {
		col--
	}
	if col == start && col > 0 {
		col--
	}
	return col
}

// nextWordEnd finds the end of the word after col: skip whitespace
// rightward, then skip word runes
func nextWordEnd(text []rune, col int) int {
	start := col
	for col < len(text) && unicode.IsSpace(text[col]) {
		col++
	}
	for col < len(text) && isWordRune(text[col]) {
		col++
	}
	if col == start && col < len(text) {
		col++
	}
	return col
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func minIntTui(a, b int) int {
	if a < b {
		return a
	}
	return b
}
