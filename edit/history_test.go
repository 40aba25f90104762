package edit

import "testing"

func TestCommandApplyRevert(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		cmd  Command
		want string
	}{
		{"insert", "hello", Command{Type: CmdInsert, Pos: 2, Inserted: "XX"}, "heXXllo"},
		{"delete", "hello", Command{Type: CmdDelete, Pos: 1, Removed: "ell"}, "ho"},
		{"replace", "hello", Command{Type: CmdReplace, Pos: 0, Removed: "hell", Inserted: "J"}, "Jo"},
		{"insert newline", "ab", Command{Type: CmdInsert, Pos: 1, Inserted: "\n"}, "a\nb"},
		{"delete newline", "a\nb", Command{Type: CmdDelete, Pos: 1, Removed: "\n"}, "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := FromString(tt.doc)
			tt.cmd.Apply(d)
			if got := d.String(); got != tt.want {
				t.Fatalf("after Apply: %q, want %q", got, tt.want)
			}
			tt.cmd.Revert(d)
			if got := d.String(); got != tt.doc {
				t.Errorf("after Revert: %q, want %q", got, tt.doc)
			}
		})
	}
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory(10, 1<<20)
	d := FromString("")

	cmds := []Command{
		{Type: CmdInsert, Pos: 0, Inserted: "hello"},
		{Type: CmdInsert, Pos: 5, Inserted: " world"},
		{Type: CmdDelete, Pos: 0, Removed: "hello "},
	}
	for _, cmd := range cmds {
		cmd.Apply(d)
		h.Push(cmd)
	}
	if got := d.String(); got != "world" {
		t.Fatalf("setup: %q", got)
	}

	// Unwind everything
	for h.CanUndo() {
		cmd, _ := h.Undo()
		cmd.Revert(d)
	}
	if got := d.String(); got != "" {
		t.Errorf("after full undo: %q, want empty", got)
	}

	// Replay everything
	for h.CanRedo() {
		cmd, _ := h.Redo()
		cmd.Apply(d)
	}
	if got := d.String(); got != "world" {
		t.Errorf("after full redo: %q, want %q", got, "world")
	}
}

func TestHistoryPushClearsRedo(t *testing.T) {
	h := NewHistory(10, 1<<20)
	h.Push(Command{Type: CmdInsert, Inserted: "a"})
	h.Push(Command{Type: CmdInsert, Inserted: "b"})
	h.Undo()
	if !h.CanRedo() {
		t.Fatal("expected redo available after undo")
	}
	h.Push(Command{Type: CmdInsert, Inserted: "c"})
	if h.CanRedo() {
		t.Error("push must clear the redo stack")
	}
}

func TestHistoryLevelCap(t *testing.T) {
	h := NewHistory(2, 1<<20)
	for i := 0; i < 5; i++ {
		h.Push(Command{Type: CmdInsert, Inserted: "x"})
	}
	count := 0
	for h.CanUndo() {
		h.Undo()
		count++
	}
	if count != 2 {
		t.Errorf("undo depth = %d, want 2", count)
	}
}

func TestHistoryByteCap(t *testing.T) {
	// Each command costs cmdOverhead + 100 bytes; a 300-byte budget
	// keeps barely one
	h := NewHistory(0, 300)
	big := string(make([]byte, 100))
	h.Push(Command{Type: CmdInsert, Inserted: big})
	h.Push(Command{Type: CmdInsert, Inserted: big})
	h.Push(Command{Type: CmdInsert, Pos: 42, Inserted: big})

	cmd, ok := h.Undo()
	if !ok {
		t.Fatal("newest command must survive eviction")
	}
	if cmd.Pos != 42 {
		t.Errorf("wrong command survived: %+v", cmd)
	}
	if h.CanUndo() {
		t.Error("older commands should have been evicted")
	}
}

func TestHistoryOversizedCommandKept(t *testing.T) {
	// A single command over the budget is still recorded
	h := NewHistory(0, 10)
	h.Push(Command{Type: CmdInsert, Inserted: "this text is larger than the budget"})
	if !h.CanUndo() {
		t.Error("oversized command must still be undoable")
	}
}

func TestHistoryDisable(t *testing.T) {
	h := NewHistory(10, 1<<20)
	if !h.Enabled() {
		t.Fatal("recording must start enabled")
	}
	h.Push(Command{Type: CmdInsert, Inserted: "a"})
	h.Push(Command{Type: CmdInsert, Inserted: "b"})
	h.Undo()

	// Disabling wipes both stacks immediately
	h.SetEnabled(false)
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("disable must clear both stacks")
	}

	// Commands executed while disabled leave no trace
	d := FromString("")
	cmd := Command{Type: CmdInsert, Pos: 0, Inserted: "silent"}
	cmd.Apply(d)
	h.Push(cmd)
	if h.CanUndo() {
		t.Fatal("push while disabled must not record")
	}
	if got := d.String(); got != "silent" {
		t.Fatalf("command must still apply to the document, got %q", got)
	}

	// Re-enabling resumes recording from empty
	h.SetEnabled(true)
	h.Push(Command{Type: CmdInsert, Inserted: "c"})
	if !h.CanUndo() {
		t.Error("push after re-enable must record")
	}
}

func TestHistoryEvictionLeavesRedoIntact(t *testing.T) {
	h := NewHistory(2, 1<<20)
	for i := 1; i <= 4; i++ {
		h.Push(Command{Type: CmdInsert, Pos: i, Inserted: "x"})
	}
	// Level cap 2 keeps only the two newest
	h.Undo()
	h.Undo()
	if h.CanUndo() {
		t.Fatal("undo stack should be exhausted after two undos")
	}

	// Both undone commands must be replayable in order
	cmd, ok := h.Redo()
	if !ok || cmd.Pos != 3 {
		t.Fatalf("first redo = %+v, %v; want Pos 3", cmd, ok)
	}
	cmd, ok = h.Redo()
	if !ok || cmd.Pos != 4 {
		t.Fatalf("second redo = %+v, %v; want Pos 4", cmd, ok)
	}
	if h.CanRedo() {
		t.Error("redo stack should now be empty")
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(10, 1<<20)
	h.Push(Command{Type: CmdInsert, Inserted: "a"})
	h.Undo()
	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("Clear left stack entries behind")
	}
}
