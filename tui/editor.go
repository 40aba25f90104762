package tui

import (
	"unicode/utf8"

	"github.com/lixenwraith/scribe/edit"
	"github.com/lixenwraith/scribe/terminal"
)

// EditorOptions configures a new editor
type EditorOptions struct {
	TabSize    int
	WheelLines int
	UndoLevels int
	UndoBytes  int
	Theme      Theme
}

// Editor is a multi-line text editor over an edit.Document. The active
// line is edited through a LineEdit surface; its pending changes are
// reconciled into the document as a single undoable command whenever
// the cursor leaves the line or a document-level operation runs.
type Editor struct {
	doc     *edit.Document
	history *edit.History
	sel     edit.Selection

	line    *LineEdit
	curLine int

	preferredX int
	scrollTop  int

	tabSize    int
	wheelLines int
	clipboard  string
	dirty      bool

	theme Theme

	// View geometry from the last Draw, for paging and mouse hits
	view      Region
	viewValid bool
	follow    bool // Next Draw scrolls the cursor into view
}

// NewEditor creates an editor over the given document
func NewEditor(doc *edit.Document, opts EditorOptions) *Editor {
	if opts.TabSize < 1 {
		opts.TabSize = 4
	}
	if opts.WheelLines < 1 {
		opts.WheelLines = 3
	}
	if opts.UndoLevels == 0 {
		opts.UndoLevels = 1000
	}
	if opts.UndoBytes == 0 {
		opts.UndoBytes = 1 << 20
	}
	e := &Editor{
		doc:        doc,
		history:    edit.NewHistory(opts.UndoLevels, opts.UndoBytes),
		line:       NewLineEdit(opts.TabSize),
		tabSize:    opts.TabSize,
		wheelLines: opts.WheelLines,
		theme:      opts.Theme,
		follow:     true,
	}
	e.line.SetText(doc.Line(0))
	return e
}

// Document returns the underlying document. Callers must Sync first if
// they need the active line's pending edits included.
func (e *Editor) Document() *edit.Document { return e.doc }

// Dirty reports whether the buffer has unsaved changes
func (e *Editor) Dirty() bool {
	if e.dirty {
		return true
	}
	return e.doc.Line(e.curLine) != e.line.Text()
}

// MarkClean clears the dirty flag, typically after a save
func (e *Editor) MarkClean() { e.dirty = false }

// CursorPos returns the cursor position as 0-indexed line and column
func (e *Editor) CursorPos() (line, col int) {
	return e.curLine, e.line.Cursor()
}

// ScrollTop returns the first visible document line
func (e *Editor) ScrollTop() int { return e.scrollTop }

// Overwrite reports whether overwrite mode is active
func (e *Editor) Overwrite() bool { return e.line.Overwrite() }

// lineStart returns the flat offset of the start of a document line
func (e *Editor) lineStart(line int) int {
	return e.doc.PosToOffset(edit.Position{Line: line, Col: 0})
}

// cursorOffset returns the cursor's flat offset. Only valid against
// the document after Sync.
func (e *Editor) cursorOffset() int {
	return e.lineStart(e.curLine) + e.line.Cursor()
}

// Sync reconciles the active line surface into the document. The whole
// run of keystrokes since the last sync collapses into one undoable
// command.
func (e *Editor) Sync() {
	cmd, ok := edit.Reconcile(e.doc.Line(e.curLine), e.line.Text())
	if !ok {
		return
	}
	cmd.Pos += e.lineStart(e.curLine)
	cmd.Apply(e.doc)
	e.history.Push(cmd)
	e.dirty = true
}

// loadLine points the active surface at a document line
func (e *Editor) loadLine(line, col int) {
	if line < 0 {
		line = 0
	}
	if line >= e.doc.LineCount() {
		line = e.doc.LineCount() - 1
	}
	e.curLine = line
	e.line.SetText(e.doc.Line(line))
	e.line.SetCursor(col)
	e.follow = true
}

// applyCommand applies a document-level command and records it
func (e *Editor) applyCommand(cmd edit.Command) {
	cmd.Apply(e.doc)
	e.history.Push(cmd)
	e.dirty = true
}

// moveCursorTo syncs and repositions the cursor by flat offset
func (e *Editor) moveCursorTo(off int) {
	e.Sync()
	p := e.doc.OffsetToPos(off)
	e.loadLine(p.Line, p.Col)
	e.preferredX = p.Col
}

// HandleEvent processes a terminal event, returning true if consumed
func (e *Editor) HandleEvent(ev terminal.Event) bool {
	switch ev.Type {
	case terminal.EventKey:
		return e.handleKey(ev)
	case terminal.EventMouse:
		return e.handleMouse(ev)
	}
	return false
}

func (e *Editor) handleKey(ev terminal.Event) bool {
	// Editor-level shortcuts
	if ev.Key == terminal.KeyRune && ev.Modifiers&terminal.ModCtrl != 0 {
		switch ev.Rune {
		case 'z':
			e.undo()
			return true
		case 'y':
			e.redo()
			return true
		case 'a':
			e.selectAll()
			return true
		case 'c':
			e.copySelection()
			return true
		case 'x':
			e.cutSelection()
			return true
		case 'v':
			e.paste()
			return true
		}
		return false
	}

	shift := ev.Modifiers&terminal.ModShift != 0
	movement := isMovementKey(ev.Key)

	if movement {
		if shift {
			e.Sync()
			if !e.sel.Active() {
				e.sel.Begin(e.cursorOffset())
			}
		} else {
			e.sel.Clear()
		}
	}

	// A destructive key with a selection acts on the selection
	if !e.sel.IsEmpty() && isEditKey(ev) {
		e.deleteSelection()
		if ev.Key == terminal.KeyBackspace || ev.Key == terminal.KeyDelete {
			return true
		}
	}

	stripped := ev
	stripped.Modifiers &^= terminal.ModShift
	result := e.line.HandleKey(stripped)

	consumed := true
	switch result {
	case LineEditHandled:
		e.preferredX = e.line.Cursor()
		e.follow = true

	case LineEditMoveUp:
		e.moveLine(e.curLine - 1)
	case LineEditMoveDown:
		e.moveLine(e.curLine + 1)

	case LineEditExitLeft:
		if e.curLine > 0 {
			e.Sync()
			e.loadLine(e.curLine-1, e.doc.LineLen(e.curLine-1))
			e.preferredX = e.line.Cursor()
		}
	case LineEditExitRight:
		if e.curLine < e.doc.LineCount()-1 {
			e.Sync()
			e.loadLine(e.curLine+1, 0)
			e.preferredX = 0
		}

	case LineEditJoinPrev:
		e.joinWithPrev()
	case LineEditJoinNext:
		e.joinWithNext()
	case LineEditSplit:
		e.splitLine()

	case LineEditIgnored:
		consumed = e.handlePaging(ev)
	}

	if movement && shift && consumed {
		e.sel.Extend(e.cursorOffset())
	}
	return consumed
}

func (e *Editor) handlePaging(ev terminal.Event) bool {
	page := e.pageSize()
	switch ev.Key {
	case terminal.KeyPageUp:
		e.moveLine(e.curLine - page)
		return true
	case terminal.KeyPageDown:
		e.moveLine(e.curLine + page)
		return true
	}
	return false
}

func (e *Editor) pageSize() int {
	if e.viewValid && e.view.Height() > 1 {
		return e.view.Height() - 1
	}
	return 23
}

// moveLine moves the cursor vertically, honoring the preferred column
func (e *Editor) moveLine(target int) {
	e.Sync()
	e.loadLine(target, e.preferredX)
}

func (e *Editor) joinWithPrev() {
	if e.curLine == 0 {
		return
	}
	e.Sync()
	prevLen := e.doc.LineLen(e.curLine - 1)
	e.applyCommand(edit.Command{
		Type:    edit.CmdDelete,
		Pos:     e.lineStart(e.curLine) - 1,
		Removed: "\n",
	})
	e.loadLine(e.curLine-1, prevLen)
	e.preferredX = prevLen
}

func (e *Editor) joinWithNext() {
	if e.curLine >= e.doc.LineCount()-1 {
		return
	}
	e.Sync()
	col := e.line.Cursor()
	e.applyCommand(edit.Command{
		Type:    edit.CmdDelete,
		Pos:     e.lineStart(e.curLine+1) - 1,
		Removed: "\n",
	})
	e.loadLine(e.curLine, col)
}

func (e *Editor) splitLine() {
	e.Sync()
	e.applyCommand(edit.Command{
		Type:     edit.CmdInsert,
		Pos:      e.cursorOffset(),
		Inserted: "\n",
	})
	e.loadLine(e.curLine+1, 0)
	e.preferredX = 0
}

func (e *Editor) undo() {
	e.Sync()
	cmd, ok := e.history.Undo()
	if !ok {
		return
	}
	cmd.Revert(e.doc)
	e.sel.Clear()
	p := e.doc.OffsetToPos(cmd.Pos)
	e.loadLine(p.Line, p.Col)
	e.preferredX = p.Col
	e.dirty = true
}

func (e *Editor) redo() {
	e.Sync()
	cmd, ok := e.history.Redo()
	if !ok {
		return
	}
	cmd.Apply(e.doc)
	e.sel.Clear()
	end := cmd.Pos + utf8.RuneCountInString(cmd.Inserted)
	p := e.doc.OffsetToPos(end)
	e.loadLine(p.Line, p.Col)
	e.preferredX = p.Col
	e.dirty = true
}

func (e *Editor) selectAll() {
	e.Sync()
	e.sel.Begin(0)
	e.sel.Extend(e.doc.Len())
	p := e.doc.OffsetToPos(e.doc.Len())
	e.loadLine(p.Line, p.Col)
}

func (e *Editor) copySelection() {
	if e.sel.IsEmpty() {
		return
	}
	e.Sync()
	lo, hi := e.sel.Normalized()
	e.clipboard = e.doc.TextAt(lo, hi-lo)
}

func (e *Editor) cutSelection() {
	if e.sel.IsEmpty() {
		return
	}
	e.copySelection()
	e.deleteSelection()
}

func (e *Editor) paste() {
	if e.clipboard == "" {
		return
	}
	if !e.sel.IsEmpty() {
		e.deleteSelection()
	}
	e.Sync()
	off := e.cursorOffset()
	e.applyCommand(edit.Command{
		Type:     edit.CmdInsert,
		Pos:      off,
		Inserted: e.clipboard,
	})
	e.moveCursorTo(off + utf8.RuneCountInString(e.clipboard))
}

func (e *Editor) deleteSelection() {
	if e.sel.IsEmpty() {
		return
	}
	e.Sync()
	lo, hi := e.sel.Normalized()
	e.applyCommand(edit.Command{
		Type:    edit.CmdDelete,
		Pos:     lo,
		Removed: e.doc.TextAt(lo, hi-lo),
	})
	e.sel.Clear()
	p := e.doc.OffsetToPos(lo)
	e.loadLine(p.Line, p.Col)
	e.preferredX = p.Col
}

func (e *Editor) handleMouse(ev terminal.Event) bool {
	if !e.viewValid {
		return false
	}

	switch ev.MouseBtn {
	case terminal.MouseBtnWheelUp:
		e.scrollBy(-e.wheelLines)
		return true
	case terminal.MouseBtnWheelDown:
		e.scrollBy(e.wheelLines)
		return true
	}

	if ev.MouseBtn != terminal.MouseBtnLeft {
		return false
	}
	if !e.view.Contains(ev.MouseX, ev.MouseY) {
		return false
	}

	lx, ly := e.view.ToLocal(ev.MouseX, ev.MouseY)
	line := e.scrollTop + ly
	if line >= e.doc.LineCount() {
		line = e.doc.LineCount() - 1
	}
	col := e.line.ScrollOffset() + lx
	if col > e.doc.LineLen(line) {
		col = e.doc.LineLen(line)
	}

	switch ev.MouseAction {
	case terminal.MouseActionPress:
		e.Sync()
		e.loadLine(line, col)
		e.preferredX = col
		e.sel.Begin(e.cursorOffset())
		return true
	case terminal.MouseActionDrag:
		e.Sync()
		e.loadLine(line, col)
		e.preferredX = col
		e.sel.Extend(e.cursorOffset())
		return true
	case terminal.MouseActionRelease:
		if e.sel.IsEmpty() {
			e.sel.Clear()
		}
		return true
	}
	return false
}

// scrollBy scrolls the view without moving the cursor
func (e *Editor) scrollBy(lines int) {
	e.scrollTop += lines
	maxTop := e.doc.LineCount() - 1
	if e.scrollTop > maxTop {
		e.scrollTop = maxTop
	}
	if e.scrollTop < 0 {
		e.scrollTop = 0
	}
}

// Draw renders the visible document slice with selection highlighting
// and positions the cursor
func (e *Editor) Draw(r Region) {
	e.view = r
	e.viewValid = true
	h := r.Height()
	w := r.Width()
	if h <= 0 || w <= 0 {
		return
	}

	if e.follow {
		if e.curLine < e.scrollTop {
			e.scrollTop = e.curLine
		}
		if e.curLine >= e.scrollTop+h {
			e.scrollTop = e.curLine - h + 1
		}
		e.follow = false
	}

	hscroll := e.activeHScroll(w)
	selActive := !e.sel.IsEmpty()

	for y := 0; y < h; y++ {
		lineIdx := e.scrollTop + y
		if lineIdx >= e.doc.LineCount() {
			r.Sub(0, y, w, 1).Clear(e.theme.Text)
			continue
		}

		var text []rune
		if lineIdx == e.curLine {
			text = []rune(e.line.Text())
		} else {
			text = []rune(e.doc.Line(lineIdx))
		}

		start := e.lineStart(lineIdx)
		for x := 0; x < w; x++ {
			col := hscroll + x
			ch := ' '
			if col < len(text) {
				ch = text[col]
			}
			style := e.theme.Text
			// Line breaks count one offset past the line end, so the
			// first trailing cell highlights on a selected newline
			if selActive && col <= len(text) && e.sel.Contains(start+col) {
				style = e.theme.Selection
			}
			r.PutChar(x, y, ch, style)
		}
	}

	cursorY := e.curLine - e.scrollTop
	cursorX := e.line.Cursor() - hscroll
	r.CursorTo(cursorX, cursorY)
}

// activeHScroll keeps the cursor horizontally visible and returns the
// column every visible row starts at
func (e *Editor) activeHScroll(w int) int {
	cur := e.line.Cursor()
	scroll := e.line.ScrollOffset()
	if cur < scroll {
		scroll = cur
	}
	if cur >= scroll+w {
		scroll = cur - w + 1
	}
	e.line.setScroll(scroll)
	return scroll
}

func isMovementKey(k terminal.Key) bool {
	switch k {
	case terminal.KeyUp, terminal.KeyDown, terminal.KeyLeft, terminal.KeyRight,
		terminal.KeyHome, terminal.KeyEnd, terminal.KeyPageUp, terminal.KeyPageDown:
		return true
	}
	return false
}

// isEditKey reports keys that replace an active selection
func isEditKey(ev terminal.Event) bool {
	if ev.Modifiers&(terminal.ModCtrl|terminal.ModAlt) != 0 {
		return false
	}
	switch ev.Key {
	case terminal.KeyBackspace, terminal.KeyDelete, terminal.KeyEnter, terminal.KeyTab:
		return true
	case terminal.KeyRune:
		return true
	}
	return false
}
