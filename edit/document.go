package edit

import "strings"

// Position addresses a point in the document by line and rune column
type Position struct {
	Line int
	Col  int
}

// Document is a line-buffer text store. Lines never contain newline
// characters; the document always holds at least one line, so an empty
// document is one empty line.
//
// Flat offsets address the document as a single rune sequence where
// each line break counts as one rune.
type Document struct {
	lines [][]rune
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{lines: [][]rune{{}}}
}

// FromString creates a document from text, splitting on newlines
func FromString(text string) *Document {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(strings.TrimSuffix(p, "\r"))
	}
	return &Document{lines: lines}
}

// LineCount returns the number of lines, always at least 1
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns line i as a string, or "" when out of range
func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return string(d.lines[i])
}

// LineLen returns the rune length of line i, or 0 when out of range
func (d *Document) LineLen(i int) int {
	if i < 0 || i >= len(d.lines) {
		return 0
	}
	return len(d.lines[i])
}

// Len returns total flat length: all line runes plus one per line break
func (d *Document) Len() int {
	n := 0
	for _, l := range d.lines {
		n += len(l)
	}
	return n + len(d.lines) - 1
}

// String joins all lines with newlines
func (d *Document) String() string {
	var b strings.Builder
	for i, l := range d.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(l))
	}
	return b.String()
}

// PosToOffset converts a line/column position to a flat offset.
// Positions are clamped into the document.
func (d *Document) PosToOffset(p Position) int {
	if p.Line < 0 {
		return 0
	}
	if p.Line >= len(d.lines) {
		return d.Len()
	}
	off := 0
	for i := 0; i < p.Line; i++ {
		off += len(d.lines[i]) + 1
	}
	col := p.Col
	if col < 0 {
		col = 0
	}
	if col > len(d.lines[p.Line]) {
		col = len(d.lines[p.Line])
	}
	return off + col
}

// OffsetToPos converts a flat offset to a line/column position.
// Offsets are clamped into the document; an offset landing on a line
// break resolves to the end of that line.
func (d *Document) OffsetToPos(off int) Position {
	if off < 0 {
		return Position{}
	}
	for i, l := range d.lines {
		if off <= len(l) {
			return Position{Line: i, Col: off}
		}
		off -= len(l) + 1
	}
	last := len(d.lines) - 1
	return Position{Line: last, Col: len(d.lines[last])}
}

// Insert places text at the flat offset. Newlines in text split lines.
func (d *Document) Insert(off int, text string) {
	if text == "" {
		return
	}
	p := d.OffsetToPos(clampOffset(off, d.Len()))
	line := d.lines[p.Line]
	head := line[:p.Col]
	tail := append([]rune(nil), line[p.Col:]...)

	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		merged := make([]rune, 0, len(line)+len(parts[0]))
		merged = append(merged, head...)
		merged = append(merged, []rune(parts[0])...)
		merged = append(merged, tail...)
		d.lines[p.Line] = merged
		return
	}

	first := append(append([]rune(nil), head...), []rune(parts[0])...)
	last := append([]rune(parts[len(parts)-1]), tail...)

	newLines := make([][]rune, 0, len(d.lines)+len(parts)-1)
	newLines = append(newLines, d.lines[:p.Line]...)
	newLines = append(newLines, first)
	for _, mid := range parts[1 : len(parts)-1] {
		newLines = append(newLines, []rune(mid))
	}
	newLines = append(newLines, last)
	newLines = append(newLines, d.lines[p.Line+1:]...)
	d.lines = newLines
}

// TextAt returns n runes starting at the flat offset, with line breaks
// rendered as newlines. The range is clamped to the document.
func (d *Document) TextAt(off, n int) string {
	total := d.Len()
	off = clampOffset(off, total)
	if n > total-off {
		n = total - off
	}
	if n <= 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(n)
	p := d.OffsetToPos(off)
	line, col := p.Line, p.Col
	for n > 0 {
		l := d.lines[line]
		avail := len(l) - col
		if avail > n {
			avail = n
		}
		b.WriteString(string(l[col : col+avail]))
		n -= avail
		col += avail
		if n > 0 {
			b.WriteByte('\n')
			n--
			line++
			col = 0
		}
	}
	return b.String()
}

// Delete removes n runes starting at the flat offset and returns the
// removed text. The range is clamped to the document.
func (d *Document) Delete(off, n int) string {
	total := d.Len()
	off = clampOffset(off, total)
	if n > total-off {
		n = total - off
	}
	if n <= 0 {
		return ""
	}

	removed := d.TextAt(off, n)

	start := d.OffsetToPos(off)
	end := d.OffsetToPos(off + n)

	if start.Line == end.Line {
		l := d.lines[start.Line]
		d.lines[start.Line] = append(l[:start.Col:start.Col], l[end.Col:]...)
		return removed
	}

	// Join the surviving head of the first line with the surviving
	// tail of the last line, dropping everything between
	head := d.lines[start.Line][:start.Col]
	tail := d.lines[end.Line][end.Col:]
	joined := make([]rune, 0, len(head)+len(tail))
	joined = append(joined, head...)
	joined = append(joined, tail...)

	newLines := make([][]rune, 0, len(d.lines)-(end.Line-start.Line))
	newLines = append(newLines, d.lines[:start.Line]...)
	newLines = append(newLines, joined)
	newLines = append(newLines, d.lines[end.Line+1:]...)
	d.lines = newLines
	return removed
}

// Replace removes n runes at the flat offset and inserts text in their
// place, returning the removed text
func (d *Document) Replace(off, n int, text string) string {
	removed := d.Delete(off, n)
	d.Insert(off, text)
	return removed
}

func clampOffset(off, total int) int {
	if off < 0 {
		return 0
	}
	if off > total {
		return total
	}
	return off
}
