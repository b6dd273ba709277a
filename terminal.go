package lineedit

import (
	"os"

	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// terminalInterface abstracts terminal operations so the prompt front end
// can run against a real terminal in production and a scripted one in
// tests. It covers raw mode switching, size detection with safe fallbacks,
// rune input, and resource cleanup.
type terminalInterface interface {
	SetRaw() error                        // enter raw mode for immediate key processing
	Restore() error                       // restore the original terminal settings
	Size() (width, height int, err error) // terminal dimensions with a safe fallback
	ReadRune() (rune, int, error)         // read a single Unicode character
	Close() error                         // release the tty to prevent fd leaks
}

// realTerminal implements terminalInterface with go-tty for cross-platform
// rune input and golang.org/x/term for raw mode state management. The
// original state is captured on every SetRaw so repeated enter/exit cycles
// always restore a fresh baseline, and the closed flag prevents the
// double-close panic go-tty exhibits on Windows.
type realTerminal struct {
	tty           *tty.TTY
	closed        bool
	stdinFd       int
	originalState *term.State
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &realTerminal{
		tty:     t,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

func (t *realTerminal) SetRaw() error {
	if term.IsTerminal(t.stdinFd) {
		state, err := term.GetState(t.stdinFd)
		if err != nil {
			return err
		}
		t.originalState = state
		if _, err := term.MakeRaw(t.stdinFd); err != nil {
			return err
		}
	}
	return nil
}

func (t *realTerminal) Restore() error {
	if t.originalState != nil && term.IsTerminal(t.stdinFd) {
		err := term.Restore(t.stdinFd, t.originalState)
		t.originalState = nil
		return err
	}
	return nil
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		// Safe fallback so callers never divide by a zero width.
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (t *realTerminal) Close() error {
	if t.closed {
		return nil
	}
	if t.tty != nil {
		err := t.tty.Close()
		t.closed = true
		return err
	}
	return nil
}
