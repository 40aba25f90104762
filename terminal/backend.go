package terminal

// Backend abstracts the platform terminal: raw mode lifecycle, size
// queries, byte I/O, and resize notification
type Backend interface {
	// Init puts the terminal into raw mode
	Init() error
	// Fini restores the original terminal state
	Fini()
	// Size returns current terminal dimensions in cells
	Size() (width, height int, err error)
	// Write sends bytes to the terminal
	Write(p []byte) (int, error)
	// Read blocks until input bytes arrive or stopCh closes.
	// Returns a nil slice with nil error on stop.
	Read(stopCh <-chan struct{}) ([]byte, error)
	// SetResizeHandler registers a callback fired on terminal resize.
	// The callback runs on an internal goroutine.
	SetResizeHandler(handler func(width, height int))
}
