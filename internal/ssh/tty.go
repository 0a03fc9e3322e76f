// Package ssh adapts SSH sessions to terminal screens.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty presents one SSH session as a tcell.Tty so a screen can draw over it.
type Tty struct {
	gossh.Session

	mu      sync.Mutex
	size    tcell.WindowSize
	resize  func()
	windows <-chan gossh.Window
	watch   sync.Once
}

// NewTty wraps s using the window size from its pty request. Later window
// changes arrive on windows.
func NewTty(s gossh.Session, pty gossh.Pty, windows <-chan gossh.Window) *Tty {
	return &Tty{
		Session: s,
		size:    windowSize(pty.Window),
		windows: windows,
	}
}

func windowSize(w gossh.Window) tcell.WindowSize {
	return tcell.WindowSize{Width: w.Width, Height: w.Height}
}

// Start does nothing; the channel is open for the life of the handler.
func (t *Tty) Start() error { return nil }

// Stop does nothing.
func (t *Tty) Stop() error { return nil }

// Drain does nothing; session writes are not buffered.
func (t *Tty) Drain() error { return nil }

// WindowSize returns the most recent client window size.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size, nil
}

// NotifyResize sets cb as the resize callback and starts following window
// changes. The watcher exits when the session closes its window channel.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.resize = cb
	t.mu.Unlock()

	t.watch.Do(func() {
		go t.follow()
	})
}

func (t *Tty) follow() {
	for w := range t.windows {
		t.setSize(windowSize(w))
	}
}

func (t *Tty) setSize(size tcell.WindowSize) {
	t.mu.Lock()
	t.size = size
	cb := t.resize
	t.mu.Unlock()
	if cb != nil {
		cb()
	}
}
