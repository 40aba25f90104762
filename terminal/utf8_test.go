package terminal

import "testing"

func TestDecodeRune(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  rune
		wantN int
	}{
		{"ascii", []byte("a"), 'a', 1},
		{"two byte", []byte("é"), 'é', 2},
		{"three byte", []byte("€"), '€', 3},
		{"four byte", []byte("𝄞"), '𝄞', 4},
		{"invalid lead", []byte{0xFF}, runeError, 1},
		{"stray continuation", []byte{0x80}, runeError, 1},
		{"truncated two byte", []byte{0xC3}, runeError, 1},
		{"bad continuation", []byte{0xC3, 0x41}, runeError, 1},
		{"overlong two byte", []byte{0xC0, 0xAF}, runeError, 1},
		{"surrogate", []byte{0xED, 0xA0, 0x80}, runeError, 1},
		{"above max", []byte{0xF4, 0x90, 0x80, 0x80}, runeError, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, n := decodeRune(tt.input)
			if r != tt.want || n != tt.wantN {
				t.Errorf("decodeRune(%v) = %q, %d; want %q, %d", tt.input, r, n, tt.want, tt.wantN)
			}
		})
	}
}

func TestAppendRuneRoundTrip(t *testing.T) {
	runes := []rune{'a', 'é', '€', '𝄞', 0x7F, 0x80, 0x7FF, 0x800, 0xFFFF, 0x10000, 0x10FFFF}
	for _, r := range runes {
		buf := appendRune(nil, r)
		if len(buf) != runeLen(r) {
			t.Errorf("appendRune(%U) wrote %d bytes, runeLen says %d", r, len(buf), runeLen(r))
		}
		got, n := decodeRune(buf)
		if got != r || n != len(buf) {
			t.Errorf("round trip %U: got %U consuming %d of %d", r, got, n, len(buf))
		}
	}
}

func TestAppendRuneInvalid(t *testing.T) {
	for _, r := range []rune{-1, 0xD800, 0xDFFF, 0x110000} {
		buf := appendRune(nil, r)
		got, _ := decodeRune(buf)
		if got != runeError {
			t.Errorf("appendRune(%#x) should encode U+FFFD, decoded %U", r, got)
		}
	}
}

func TestUTF8SeqLen(t *testing.T) {
	tests := []struct {
		b    byte
		want int
	}{
		{0x41, 1}, {0x7F, 1},
		{0xC2, 2}, {0xDF, 2},
		{0xE0, 3}, {0xEF, 3},
		{0xF0, 4}, {0xF4, 4},
		{0x80, 1}, {0xF8, 1}, {0xFF, 1},
	}
	for _, tt := range tests {
		if got := utf8SeqLen(tt.b); got != tt.want {
			t.Errorf("utf8SeqLen(%#x) = %d, want %d", tt.b, got, tt.want)
		}
	}
}
