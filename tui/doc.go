// Package tui provides immediate-mode widgets drawn onto a terminal
// screen: clipped regions, a multi-line text editor, a single-line
// edit field, scroll bars, and a status bar.
package tui
