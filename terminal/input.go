package terminal

// EventType discriminates decoded terminal events
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
)

// Event is a single decoded terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier

	// Mouse fields (Type == EventMouse); X/Y are 0-indexed cells
	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction

	// Resize fields (Type == EventResize)
	Width  int
	Height int
}

// Decode parses the first complete event from raw terminal bytes and
// returns it with the number of bytes consumed. It is a pure function:
// same bytes, same result. A zero consumed count means data holds an
// incomplete escape sequence and more bytes are needed.
//
// Recognition order: SGR mouse reports, fixed CSI forms, modified CSI
// forms, SS3 sequences, Alt-prefixed bytes, lone Escape, control bytes,
// then UTF-8 runes.
func Decode(data []byte) (Event, int) {
	if len(data) == 0 {
		return Event{}, 0
	}

	if data[0] == 0x1b {
		return decodeEscape(data)
	}

	return decodeByte(data)
}

// decodeEscape handles all ESC-prefixed input
func decodeEscape(data []byte) (Event, int) {
	if len(data) == 1 {
		// Could be a lone Escape or the start of a sequence; the
		// reader only calls with a settled buffer, so treat as Escape
		return Event{Type: EventKey, Key: KeyEscape}, 1
	}

	switch data[1] {
	case '[':
		return decodeCSI(data)
	case 'O':
		if len(data) < 3 {
			return Event{}, 0
		}
		if key, mod, ok := lookupSS3(data[2:3]); ok {
			return Event{Type: EventKey, Key: key, Modifiers: mod}, 3
		}
		// Unknown SS3; swallow it
		return Event{}, 3
	}

	// Alt+key: ESC followed by a printable byte or control byte
	ev, n := decodeByte(data[1:])
	if n > 0 {
		ev.Modifiers |= ModAlt
		return ev, n + 1
	}
	return Event{Type: EventKey, Key: KeyEscape}, 1
}

// decodeCSI handles ESC [ ... sequences: mouse reports, fixed key
// forms, and modifier-parameterized forms
func decodeCSI(data []byte) (Event, int) {
	// Find the final byte (0x40-0x7E terminates a CSI sequence)
	end := -1
	for i := 2; i < len(data); i++ {
		if data[i] >= 0x40 && data[i] <= 0x7e {
			end = i
			break
		}
	}
	if end == -1 {
		return Event{}, 0 // Incomplete
	}

	body := data[2 : end+1]
	consumed := end + 1

	// SGR mouse: ESC [ < code ; x ; y M|m
	if len(body) > 1 && body[0] == '<' {
		final := body[len(body)-1]
		if final == 'M' || final == 'm' {
			if ev, ok := decodeSGRMouse(body[1:len(body)-1], final == 'M'); ok {
				return ev, consumed
			}
		}
		return Event{}, consumed
	}

	// Fixed forms
	if key, mod, ok := lookupCSI(body); ok {
		return Event{Type: EventKey, Key: key, Modifiers: mod}, consumed
	}

	// Modified forms: ESC [ 1 ; mod FINAL  or  ESC [ num ; mod ~
	if ev, ok := decodeModifiedCSI(body); ok {
		return ev, consumed
	}

	// Unknown CSI; swallow the whole sequence
	return Event{}, consumed
}

// decodeModifiedCSI parses "1;5C" style and "3;2~" style bodies
func decodeModifiedCSI(body []byte) (Event, bool) {
	final := body[len(body)-1]
	params := body[:len(body)-1]

	code, rest, ok := parseNum(params)
	if !ok || len(rest) == 0 || rest[0] != ';' {
		return Event{}, false
	}
	modParam, rest, ok := parseNum(rest[1:])
	if !ok || len(rest) != 0 {
		return Event{}, false
	}

	mod := modifierBits(modParam)
	if mod == ModNone {
		return Event{}, false
	}

	var key Key
	if final == '~' {
		key = keyFromTildeCode(code)
	} else if code == 1 {
		key = keyFromFinal(final)
	}
	if key == KeyNone {
		return Event{}, false
	}
	return Event{Type: EventKey, Key: key, Modifiers: mod}, true
}

// decodeSGRMouse parses the "code;x;y" body of an SGR mouse report.
// press is true for a final 'M', false for 'm'.
func decodeSGRMouse(params []byte, press bool) (Event, bool) {
	code, rest, ok := parseNum(params)
	if !ok || len(rest) == 0 || rest[0] != ';' {
		return Event{}, false
	}
	x, rest, ok := parseNum(rest[1:])
	if !ok || len(rest) == 0 || rest[0] != ';' {
		return Event{}, false
	}
	y, rest, ok := parseNum(rest[1:])
	if !ok || len(rest) != 0 {
		return Event{}, false
	}

	ev := Event{
		Type:   EventMouse,
		MouseX: x - 1, // Reports are 1-indexed
		MouseY: y - 1,
	}
	if code&4 != 0 {
		ev.Modifiers |= ModShift
	}
	if code&8 != 0 {
		ev.Modifiers |= ModAlt
	}
	if code&16 != 0 {
		ev.Modifiers |= ModCtrl
	}

	switch {
	case code&64 != 0:
		// Wheel: 64 up, 65 down
		if code&1 == 0 {
			ev.MouseBtn = MouseBtnWheelUp
		} else {
			ev.MouseBtn = MouseBtnWheelDown
		}
		ev.MouseAction = MouseActionPress
	case code&32 != 0:
		// Motion flag: drag if a button is held, plain move otherwise
		ev.MouseBtn = buttonFromCode(code)
		if ev.MouseBtn == MouseBtnNone {
			ev.MouseAction = MouseActionMove
		} else {
			ev.MouseAction = MouseActionDrag
		}
	default:
		ev.MouseBtn = buttonFromCode(code)
		if press {
			ev.MouseAction = MouseActionPress
		} else {
			ev.MouseAction = MouseActionRelease
		}
	}
	return ev, true
}

func buttonFromCode(code int) MouseButton {
	switch code & 3 {
	case 0:
		return MouseBtnLeft
	case 1:
		return MouseBtnMiddle
	case 2:
		return MouseBtnRight
	}
	return MouseBtnNone
}

// parseNum reads a decimal prefix, returning the value and the unparsed
// remainder
func parseNum(data []byte) (int, []byte, bool) {
	n := 0
	i := 0
	for i < len(data) && data[i] >= '0' && data[i] <= '9' {
		n = n*10 + int(data[i]-'0')
		i++
		if n > 1<<20 {
			return 0, nil, false
		}
	}
	if i == 0 {
		return 0, nil, false
	}
	return n, data[i:], true
}

// decodeByte handles non-escape single bytes and UTF-8 sequences
func decodeByte(data []byte) (Event, int) {
	b := data[0]
	switch b {
	case 0x0d, 0x0a:
		return Event{Type: EventKey, Key: KeyEnter}, 1
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}, 1
	case 0x7f, 0x08:
		return Event{Type: EventKey, Key: KeyBackspace}, 1
	}

	if b < 0x20 {
		// Ctrl+letter: 0x01-0x1A map back to 'a'-'z'
		if b >= 0x01 && b <= 0x1a {
			return Event{
				Type:      EventKey,
				Key:       KeyRune,
				Rune:      rune('a' + b - 1),
				Modifiers: ModCtrl,
			}, 1
		}
		// Other control bytes are dropped
		return Event{}, 1
	}

	// Incomplete trailing multibyte sequence: wait for more data
	if n := utf8SeqLen(b); n > len(data) {
		return Event{}, 0
	}

	r, n := decodeRune(data)
	return Event{Type: EventKey, Key: KeyRune, Rune: r}, n
}
