// Package terminal provides direct ANSI terminal control with zero-alloc rendering.
//
// Features:
//   - Double-buffered cell screen with minimal-diff refresh
//   - Raw stdin parsing: keys, CSI sequences, SGR mouse reports
//   - True color (24-bit) and 256-color palette support
//   - SIGWINCH resize detection
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
