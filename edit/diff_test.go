package edit

import "testing"

func TestReconcile(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
		want     Command
	}{
		{
			"insert middle",
			"hello", "heXllo",
			Command{Type: CmdInsert, Pos: 2, Inserted: "X"},
		},
		{
			"insert at start",
			"bc", "abc",
			Command{Type: CmdInsert, Pos: 0, Inserted: "a"},
		},
		{
			"insert at end",
			"ab", "abc",
			Command{Type: CmdInsert, Pos: 2, Inserted: "c"},
		},
		{
			"delete middle",
			"heXllo", "hello",
			Command{Type: CmdDelete, Pos: 2, Removed: "X"},
		},
		{
			"delete all",
			"abc", "",
			Command{Type: CmdDelete, Pos: 0, Removed: "abc"},
		},
		{
			"replace",
			"hello world", "hello there",
			Command{Type: CmdReplace, Pos: 6, Removed: "world", Inserted: "there"},
		},
		{
			"repeated runes do not overlap",
			"aaa", "aaaa",
			Command{Type: CmdInsert, Pos: 3, Inserted: "a"},
		},
		{
			"shrinking repeats",
			"aaaa", "aa",
			Command{Type: CmdDelete, Pos: 2, Removed: "aa"},
		},
		{
			"multibyte runes",
			"héllo", "hèllo",
			Command{Type: CmdReplace, Pos: 1, Removed: "é", Inserted: "è"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Reconcile(tt.old, tt.new)
			if !ok {
				t.Fatal("Reconcile reported no change")
			}
			if got != tt.want {
				t.Errorf("Reconcile(%q, %q) = %+v, want %+v", tt.old, tt.new, got, tt.want)
			}
		})
	}
}

func TestReconcileIdentical(t *testing.T) {
	if _, ok := Reconcile("same", "same"); ok {
		t.Error("identical texts must report no change")
	}
	if _, ok := Reconcile("", ""); ok {
		t.Error("empty texts must report no change")
	}
}

func TestReconcileRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"hello", "heXllo"},
		{"abc\ndef", "abc\nxyz"},
		{"", "new content"},
		{"old content", ""},
		{"aaaa", "aabaa"},
	}
	for _, p := range pairs {
		cmd, ok := Reconcile(p[0], p[1])
		if !ok {
			t.Errorf("Reconcile(%q, %q): no change reported", p[0], p[1])
			continue
		}
		d := FromString(p[0])
		cmd.Apply(d)
		if got := d.String(); got != p[1] {
			t.Errorf("applying Reconcile(%q, %q) gave %q", p[0], p[1], got)
		}
		cmd.Revert(d)
		if got := d.String(); got != p[0] {
			t.Errorf("reverting Reconcile(%q, %q) gave %q", p[0], p[1], got)
		}
	}
}
