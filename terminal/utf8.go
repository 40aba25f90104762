package terminal

// Hand-rolled UTF-8 handling for the input and output paths.
// Invalid sequences decode to U+FFFD and consume a single byte, so a
// corrupt stream cannot stall the reader.

const runeError = '�'

// utf8SeqLen returns the expected byte length of a UTF-8 sequence from
// its leading byte, or 1 for invalid leads (continuation or 0xF8+)
func utf8SeqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// decodeRune decodes the first rune in data, returning the rune and the
// number of bytes consumed. Truncated or malformed sequences yield
// (U+FFFD, 1).
func decodeRune(data []byte) (rune, int) {
	if len(data) == 0 {
		return runeError, 0
	}
	b0 := data[0]
	if b0 < 0x80 {
		return rune(b0), 1
	}

	n := utf8SeqLen(b0)
	if n == 1 || len(data) < n {
		return runeError, 1
	}

	var r rune
	switch n {
	case 2:
		r = rune(b0 & 0x1F)
	case 3:
		r = rune(b0 & 0x0F)
	case 4:
		r = rune(b0 & 0x07)
	}
	for i := 1; i < n; i++ {
		b := data[i]
		if b&0xC0 != 0x80 {
			return runeError, 1
		}
		r = r<<6 | rune(b&0x3F)
	}

	// Reject overlong encodings and surrogate range
	switch n {
	case 2:
		if r < 0x80 {
			return runeError, 1
		}
	case 3:
		if r < 0x800 || (r >= 0xD800 && r <= 0xDFFF) {
			return runeError, 1
		}
	case 4:
		if r < 0x10000 || r > 0x10FFFF {
			return runeError, 1
		}
	}
	return r, n
}

// appendRune appends the UTF-8 encoding of r to dst. Invalid runes
// (surrogates, out of range) encode as U+FFFD.
func appendRune(dst []byte, r rune) []byte {
	switch {
	case r < 0:
		r = runeError
	case r >= 0xD800 && r <= 0xDFFF:
		r = runeError
	case r > 0x10FFFF:
		r = runeError
	}

	switch {
	case r < 0x80:
		return append(dst, byte(r))
	case r < 0x800:
		return append(dst, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
	case r < 0x10000:
		return append(dst, 0xE0|byte(r>>12), 0x80|byte(r>>6&0x3F), 0x80|byte(r&0x3F))
	default:
		return append(dst, 0xF0|byte(r>>18), 0x80|byte(r>>12&0x3F), 0x80|byte(r>>6&0x3F), 0x80|byte(r&0x3F))
	}
}

// runeLen returns the encoded byte length of r
func runeLen(r rune) int {
	switch {
	case r < 0:
		return 3 // U+FFFD
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r >= 0xD800 && r <= 0xDFFF:
		return 3 // U+FFFD
	case r < 0x10000:
		return 3
	case r <= 0x10FFFF:
		return 4
	default:
		return 3 // U+FFFD
	}
}
