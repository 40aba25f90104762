package edit

// Reconcile computes the single command that transforms old into new,
// using common prefix/suffix trimming. The suffix scan stops at the
// prefix boundary so overlapping regions are never double-counted.
// Returns false when the texts are identical.
func Reconcile(oldText, newText string) (Command, bool) {
	if oldText == newText {
		return Command{}, false
	}

	oldRunes := []rune(oldText)
	newRunes := []rune(newText)

	prefix := 0
	maxPrefix := len(oldRunes)
	if len(newRunes) < maxPrefix {
		maxPrefix = len(newRunes)
	}
	for prefix < maxPrefix && oldRunes[prefix] == newRunes[prefix] {
		prefix++
	}

	suffix := 0
	maxSuffix := len(oldRunes) - prefix
	if n := len(newRunes) - prefix; n < maxSuffix {
		maxSuffix = n
	}
	for suffix < maxSuffix &&
		oldRunes[len(oldRunes)-1-suffix] == newRunes[len(newRunes)-1-suffix] {
		suffix++
	}

	removed := string(oldRunes[prefix : len(oldRunes)-suffix])
	inserted := string(newRunes[prefix : len(newRunes)-suffix])

	cmd := Command{Pos: prefix, Removed: removed, Inserted: inserted}
	switch {
	case removed == "":
		cmd.Type = CmdInsert
	case inserted == "":
		cmd.Type = CmdDelete
	default:
		cmd.Type = CmdReplace
	}
	return cmd, true
}
