// Package edit implements the text buffer behind the editor widgets:
// a line-based document addressed by flat rune offsets, command-based
// undo/redo with bounded memory, and text reconciliation for turning
// whole-buffer rewrites into minimal commands.
package edit
