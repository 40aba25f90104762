//go:build linux || darwin || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// unixBackend drives /dev/tty-style terminals through termios raw mode
// and poll(2)-based reads
type unixBackend struct {
	inFd  int
	outFd int

	saved *term.State

	readBuf []byte

	resizeMu      sync.Mutex
	resizeHandler func(width, height int)
	sigCh         chan os.Signal
	sigDone       chan struct{}
}

func newBackend() Backend {
	return &unixBackend{
		inFd:    int(os.Stdin.Fd()),
		outFd:   int(os.Stdout.Fd()),
		readBuf: make([]byte, 4096),
	}
}

func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return fmt.Errorf("stdin is not a terminal")
	}
	saved, err := term.MakeRaw(b.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	b.saved = saved

	b.sigCh = make(chan os.Signal, 1)
	b.sigDone = make(chan struct{})
	signal.Notify(b.sigCh, syscall.SIGWINCH)
	go b.watchResize()

	return nil
}

func (b *unixBackend) Fini() {
	if b.sigCh != nil {
		signal.Stop(b.sigCh)
		close(b.sigDone)
		b.sigCh = nil
	}
	if b.saved != nil {
		term.Restore(b.inFd, b.saved)
		b.saved = nil
	}
}

func (b *unixBackend) Size() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("query window size: %w", err)
	}
	w, h := int(ws.Col), int(ws.Row)
	if w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("degenerate window size %dx%d", w, h)
	}
	return w, h, nil
}

func (b *unixBackend) Write(p []byte) (int, error) {
	return unix.Write(b.outFd, p)
}

// Read polls stdin with a short timeout so a close of stopCh is
// noticed promptly without a self-pipe
func (b *unixBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	fds := []unix.PollFd{{Fd: int32(b.inFd), Events: unix.POLLIN}}
	for {
		select {
		case <-stopCh:
			return nil, nil
		default:
		}

		n, err := unix.Poll(fds, 50)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil, fmt.Errorf("poll stdin: %w", err)
		}
		if n == 0 {
			continue
		}

		nr, err := unix.Read(b.inFd, b.readBuf)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		if nr == 0 {
			continue
		}
		return b.readBuf[:nr], nil
	}
}

func (b *unixBackend) SetResizeHandler(handler func(width, height int)) {
	b.resizeMu.Lock()
	b.resizeHandler = handler
	b.resizeMu.Unlock()
}

func (b *unixBackend) watchResize() {
	for {
		select {
		case <-b.sigDone:
			return
		case <-b.sigCh:
			w, h, err := b.Size()
			if err != nil {
				continue
			}
			b.resizeMu.Lock()
			handler := b.resizeHandler
			b.resizeMu.Unlock()
			if handler != nil {
				handler(w, h)
			}
		}
	}
}
