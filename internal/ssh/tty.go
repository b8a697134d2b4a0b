// Package ssh adapts a gliderlabs SSH session into a tcell terminal, so
// each connected player gets an arena screen of their own.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTTY implements tcell.Tty over one SSH session channel.
type SessionTTY struct {
	session gossh.Session

	mu       sync.Mutex
	window   gossh.Window
	onResize func()

	watch sync.Once
	winCh <-chan gossh.Window
}

// NewSessionTTY wraps s. pty carries the window size agreed at connect
// time; winCh delivers later window-change requests.
func NewSessionTTY(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTTY {
	return &SessionTTY{session: s, window: pty.Window, winCh: winCh}
}

func (t *SessionTTY) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTTY) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *SessionTTY) Close() error                { return t.session.Close() }

// Start, Stop and Drain have nothing to do: the channel is already open
// and the handler goroutine owns its lifetime.
func (t *SessionTTY) Start() error { return nil }
func (t *SessionTTY) Stop() error  { return nil }
func (t *SessionTTY) Drain() error { return nil }

// WindowSize reports the client's terminal size in cells.
func (t *SessionTTY) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize sets the callback tcell uses to learn about a resize.
// tcell may call it more than once; window changes are watched by a single
// goroutine that ends when the session closes winCh.
func (t *SessionTTY) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()
	t.watch.Do(func() { go t.watchWindow() })
}

func (t *SessionTTY) watchWindow() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
