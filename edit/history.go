package edit

import "unicode/utf8"

// CommandType identifies the kind of edit a Command records
type CommandType uint8

const (
	CmdInsert CommandType = iota
	CmdDelete
	CmdReplace
)

// Command is one reversible edit. Pos is a flat rune offset; Removed
// holds the text the edit took out, Inserted the text it put in.
//
//	CmdInsert:  Removed == "", Inserted != ""
//	CmdDelete:  Removed != "", Inserted == ""
//	CmdReplace: both set, applied atomically
type Command struct {
	Type     CommandType
	Pos      int
	Removed  string
	Inserted string
}

// cmdOverhead approximates the fixed per-command bookkeeping cost for
// the byte budget
const cmdOverhead = 64

func (c Command) size() int {
	return cmdOverhead + len(c.Removed) + len(c.Inserted)
}

// Apply performs the command against the document
func (c Command) Apply(d *Document) {
	switch c.Type {
	case CmdInsert:
		d.Insert(c.Pos, c.Inserted)
	case CmdDelete:
		d.Delete(c.Pos, utf8.RuneCountInString(c.Removed))
	case CmdReplace:
		d.Replace(c.Pos, utf8.RuneCountInString(c.Removed), c.Inserted)
	}
}

// Revert undoes the command against the document
func (c Command) Revert(d *Document) {
	switch c.Type {
	case CmdInsert:
		d.Delete(c.Pos, utf8.RuneCountInString(c.Inserted))
	case CmdDelete:
		d.Insert(c.Pos, c.Removed)
	case CmdReplace:
		d.Replace(c.Pos, utf8.RuneCountInString(c.Inserted), c.Removed)
	}
}

// History holds bounded undo and redo stacks. Both a command count cap
// and a byte budget apply; when either is exceeded the oldest undo
// entries are evicted. Pushing a new command clears the redo stack.
// Recording can be switched off entirely, turning Push into a no-op.
type History struct {
	undo []Command
	redo []Command

	maxLevels int
	maxBytes  int
	undoBytes int
	enabled   bool
}

// NewHistory creates a history bounded by maxLevels commands and
// maxBytes of recorded text. Non-positive caps disable that bound.
// Recording starts enabled.
func NewHistory(maxLevels, maxBytes int) *History {
	return &History{maxLevels: maxLevels, maxBytes: maxBytes, enabled: true}
}

// SetEnabled toggles recording. Disabling clears both stacks
// immediately; commands executed while disabled apply to the document
// as usual but leave no trace here.
func (h *History) SetEnabled(on bool) {
	if h.enabled == on {
		return
	}
	h.enabled = on
	if !on {
		h.Clear()
	}
}

// Enabled reports whether commands are being recorded
func (h *History) Enabled() bool { return h.enabled }

// Push records a completed command and clears the redo stack.
// No-op while recording is disabled.
func (h *History) Push(cmd Command) {
	if !h.enabled {
		return
	}
	h.redo = h.redo[:0]
	h.undo = append(h.undo, cmd)
	h.undoBytes += cmd.size()
	h.evict()
}

// evict drops the oldest undo entries until both caps are satisfied,
// always keeping at least the newest entry
func (h *History) evict() {
	drop := 0
	for len(h.undo)-drop > 1 {
		overLevels := h.maxLevels > 0 && len(h.undo)-drop > h.maxLevels
		overBytes := h.maxBytes > 0 && h.undoBytes > h.maxBytes
		if !overLevels && !overBytes {
			break
		}
		h.undoBytes -= h.undo[drop].size()
		drop++
	}
	if drop > 0 {
		h.undo = append(h.undo[:0], h.undo[drop:]...)
	}
}

// Undo pops the most recent command, moving it to the redo stack.
// The caller is responsible for calling Revert on the document.
func (h *History) Undo() (Command, bool) {
	if len(h.undo) == 0 {
		return Command{}, false
	}
	cmd := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.undoBytes -= cmd.size()
	h.redo = append(h.redo, cmd)
	return cmd, true
}

// Redo pops the most recently undone command back onto the undo stack.
// The caller is responsible for calling Apply on the document.
func (h *History) Redo() (Command, bool) {
	if len(h.redo) == 0 {
		return Command{}, false
	}
	cmd := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, cmd)
	h.undoBytes += cmd.size()
	return cmd, true
}

// CanUndo reports whether an undo is available
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo is available
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Clear discards both stacks
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
	h.undoBytes = 0
}
