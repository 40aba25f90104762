package terminal

// Key identifies a decoded special key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// escapeSequence maps the body of a CSI sequence (after ESC [) to a key
type escapeSequence struct {
	seq string
	key Key
	mod Modifier
}

// Fixed-form CSI sequences recognized literally
var csiSequences = []escapeSequence{
	// Arrow keys
	{"A", KeyUp, ModNone},
	{"B", KeyDown, ModNone},
	{"C", KeyRight, ModNone},
	{"D", KeyLeft, ModNone},
	{"Z", KeyBacktab, ModShift}, // Shift+Tab

	// Navigation
	{"H", KeyHome, ModNone},
	{"F", KeyEnd, ModNone},
	{"1~", KeyHome, ModNone},
	{"4~", KeyEnd, ModNone},
	{"2~", KeyInsert, ModNone},
	{"3~", KeyDelete, ModNone},
	{"5~", KeyPageUp, ModNone},
	{"6~", KeyPageDown, ModNone},
}

// SS3 sequences (ESC O ...), emitted by some terminals in application mode
var ss3Sequences = []escapeSequence{
	{"A", KeyUp, ModNone},
	{"B", KeyDown, ModNone},
	{"C", KeyRight, ModNone},
	{"D", KeyLeft, ModNone},
	{"H", KeyHome, ModNone},
	{"F", KeyEnd, ModNone},
}

var csiMap = buildSequenceMap(csiSequences)
var ss3Map = buildSequenceMap(ss3Sequences)

func buildSequenceMap(seqs []escapeSequence) map[string]escapeSequence {
	m := make(map[string]escapeSequence, len(seqs))
	for _, s := range seqs {
		m[s.seq] = s
	}
	return m
}

// lookupCSI performs zero-alloc map lookup
// The string([]byte) conversion inline in map access does not allocate
func lookupCSI(seq []byte) (Key, Modifier, bool) {
	if s, ok := csiMap[string(seq)]; ok {
		return s.key, s.mod, true
	}
	return KeyNone, ModNone, false
}

// lookupSS3 performs zero-alloc map lookup
func lookupSS3(seq []byte) (Key, Modifier, bool) {
	if s, ok := ss3Map[string(seq)]; ok {
		return s.key, s.mod, true
	}
	return KeyNone, ModNone, false
}

// modifierBits maps the xterm modifier parameter (the digit after ';')
// to modifier flags: 2=shift 3=alt 4=shift+alt 5=ctrl 6=shift+ctrl
// 7=alt+ctrl 8=shift+alt+ctrl
func modifierBits(param int) Modifier {
	var mod Modifier
	switch param {
	case 2:
		mod = ModShift
	case 3:
		mod = ModAlt
	case 4:
		mod = ModShift | ModAlt
	case 5:
		mod = ModCtrl
	case 6:
		mod = ModShift | ModCtrl
	case 7:
		mod = ModAlt | ModCtrl
	case 8:
		mod = ModShift | ModAlt | ModCtrl
	}
	return mod
}

// keyFromFinal resolves a modified CSI key from its final letter
func keyFromFinal(b byte) Key {
	switch b {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	}
	return KeyNone
}

// keyFromTildeCode resolves a ~-terminated CSI key from its leading number
func keyFromTildeCode(code int) Key {
	switch code {
	case 1:
		return KeyHome
	case 2:
		return KeyInsert
	case 3:
		return KeyDelete
	case 4:
		return KeyEnd
	case 5:
		return KeyPageUp
	case 6:
		return KeyPageDown
	}
	return KeyNone
}
