package terminal

import (
	"fmt"
	"os"
	"sync"
)

// Terminal is the top-level runtime: it owns the raw-mode lifecycle,
// the screen, and the decoded event stream
type Terminal interface {
	// Start enters raw mode, switches to the alternate screen, and
	// begins delivering events
	Start() error
	// Stop restores the terminal and drains internal goroutines.
	// Safe to call more than once.
	Stop()
	// Screen returns the drawing surface
	Screen() *Screen
	// Events returns the decoded input stream. Closed after Stop.
	Events() <-chan Event
	// SetMouseMode enables or disables mouse reporting levels
	SetMouseMode(mode MouseMode) error
	// Size returns the current screen dimensions in cells
	Size() (width, height int)
}

type termImpl struct {
	backend Backend
	screen  *Screen
	mode    ColorMode

	events chan Event
	stopCh chan struct{}
	wg     sync.WaitGroup

	mouseMode MouseMode

	mu      sync.Mutex
	started bool
	stopped bool

	// Guards events against sends after close: the backend's resize
	// goroutine outlives the stop channel handshake
	eventsMu     sync.Mutex
	eventsClosed bool
}

// New creates a Terminal over the process's controlling terminal
func New() (Terminal, error) {
	return newTerminal(newBackend(), DetectColorMode())
}

// NewWithColorMode creates a Terminal with an explicit color mode,
// bypassing environment detection
func NewWithColorMode(mode ColorMode) (Terminal, error) {
	return newTerminal(newBackend(), mode)
}

func newTerminal(backend Backend, mode ColorMode) (Terminal, error) {
	return &termImpl{
		backend: backend,
		mode:    mode,
		events:  make(chan Event, 64),
		stopCh:  make(chan struct{}),
	}, nil
}

func (t *termImpl) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return fmt.Errorf("terminal already started")
	}

	if err := t.backend.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}

	w, h, err := t.backend.Size()
	if err != nil {
		t.backend.Fini()
		return err
	}

	t.screen = NewScreen(writerFunc(t.backend.Write), w, h, t.mode)

	t.backend.Write(csiAltScreenEnter)
	t.backend.Write(csiCursorHide)
	t.backend.Write(csiAutoWrapOff)
	t.backend.Write(csiClear)

	t.backend.SetResizeHandler(func(w, h int) {
		t.eventsMu.Lock()
		defer t.eventsMu.Unlock()
		if t.eventsClosed {
			return
		}
		select {
		case t.events <- Event{Type: EventResize, Width: w, Height: h}:
		case <-t.stopCh:
		}
	})

	t.wg.Add(1)
	go t.inputReader()

	t.started = true
	return nil
}

func (t *termImpl) Stop() {
	t.mu.Lock()
	if !t.started || t.stopped {
		t.mu.Unlock()
		return
	}
	t.stopped = true
	t.mu.Unlock()

	close(t.stopCh)
	t.wg.Wait()

	// A resize handler blocked in its send exits through the closed
	// stop channel; taking the mutex here means no handler can still
	// be between its closed-check and the send when events closes
	t.eventsMu.Lock()
	t.eventsClosed = true
	t.eventsMu.Unlock()
	close(t.events)

	t.setMouseSequences(MouseModeNone)
	t.backend.Write(csiSGR0)
	t.backend.Write(csiAutoWrapOn)
	t.backend.Write(csiCursorShow)
	t.backend.Write(csiAltScreenExit)
	t.backend.Fini()
}

func (t *termImpl) Screen() *Screen {
	return t.screen
}

func (t *termImpl) Events() <-chan Event {
	return t.events
}

func (t *termImpl) Size() (int, int) {
	if t.screen == nil {
		return 0, 0
	}
	return t.screen.Width(), t.screen.Height()
}

func (t *termImpl) SetMouseMode(mode MouseMode) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.started || t.stopped {
		return fmt.Errorf("terminal not running")
	}
	t.mouseMode = mode
	t.setMouseSequences(mode)
	return nil
}

// setMouseSequences emits the xterm mode toggles for the requested
// reporting level. SGR encoding (1006) rides along whenever any level
// is on, so coordinates are never limited to 223 columns.
func (t *termImpl) setMouseSequences(mode MouseMode) {
	if mode&MouseModeMotion != 0 {
		t.backend.Write(csiMouseMotionOn)
	} else if mode&MouseModeDrag != 0 {
		t.backend.Write(csiMouseDragOn)
	} else if mode&MouseModeClick != 0 {
		t.backend.Write(csiMouseClickOn)
	} else {
		t.backend.Write(csiMouseMotionOff)
		t.backend.Write(csiMouseDragOff)
		t.backend.Write(csiMouseClickOff)
		t.backend.Write(csiMouseSGROff)
		return
	}
	t.backend.Write(csiMouseSGROn)
}

// inputReader pulls raw bytes from the backend and decodes them into
// events. Partial escape sequences are carried across reads.
func (t *termImpl) inputReader() {
	defer t.wg.Done()

	var pending []byte
	for {
		data, err := t.backend.Read(t.stopCh)
		if err != nil || data == nil {
			return
		}

		pending = append(pending, data...)
		for len(pending) > 0 {
			ev, n := Decode(pending)
			if n == 0 {
				// Incomplete sequence: wait for the next chunk
				break
			}
			pending = pending[n:]
			if ev.Type == EventNone {
				continue
			}
			select {
			case t.events <- ev:
			case <-t.stopCh:
				return
			}
		}
		if len(pending) == 0 {
			pending = nil
		}
	}
}

// writerFunc adapts the backend write method to io.Writer
type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

// EmergencyReset forces the terminal back to a usable state without a
// Terminal instance. Intended for panic handlers, where the normal
// Stop path may be unreachable.
func EmergencyReset() {
	os.Stdout.Write(csiMouseMotionOff)
	os.Stdout.Write(csiMouseDragOff)
	os.Stdout.Write(csiMouseClickOff)
	os.Stdout.Write(csiMouseSGROff)
	os.Stdout.Write(csiSGR0)
	os.Stdout.Write(csiAutoWrapOn)
	os.Stdout.Write(csiCursorShow)
	os.Stdout.Write(csiAltScreenExit)
	os.Stdout.Write(csiRIS)
}
