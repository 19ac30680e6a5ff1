package event

import (
	"context"
	"fmt"
	"io"
	"os"

	uv "github.com/charmbracelet/ultraviolet"
	"golang.org/x/term"

	"github.com/abhisek/lsftui/internal/logging"
)

// KeyDecoder reads keypresses from a terminal input stream. Escape
// sequences, including the terminal's replies to queries (mode reports,
// keyboard protocol flags), are decoded whole; only key presses become keys.
type KeyDecoder struct {
	events chan uv.Event
	cancel context.CancelFunc
	err    error
}

// NewKeyDecoder starts decoding r. termType is the $TERM value used to look
// up terminal-specific key sequences.
func NewKeyDecoder(r io.Reader, termType string) *KeyDecoder {
	ctx, cancel := context.WithCancel(context.Background())
	d := &KeyDecoder{
		events: make(chan uv.Event),
		cancel: cancel,
	}

	reader := uv.NewTerminalReader(r, termType)
	go func() {
		err := reader.StreamEvents(ctx, d.events)
		if err == nil {
			err = io.EOF
		}
		d.err = err
		close(d.events)
	}()
	return d
}

// ReadKey returns the next key press, in keystroke form ("q", "ctrl+c",
// "enter"). Other terminal events are skipped. Once the input ends it
// returns io.EOF or the read error.
func (d *KeyDecoder) ReadKey() (Key, error) {
	for ev := range d.events {
		if k, ok := ev.(uv.KeyPressEvent); ok {
			return Key(k.String()), nil
		}
		logging.Logger().Debug("terminal event ignored", "event", fmt.Sprintf("%T", ev))
	}
	return "", d.err
}

// Close stops decoding.
func (d *KeyDecoder) Close() {
	d.cancel()
}

type cancelReader interface {
	io.ReadCloser
	Cancel() bool
}

// Terminal reads keys from a terminal switched to raw mode, so keys arrive
// unbuffered and without echo. Close unblocks a pending ReadKey and restores
// the previous mode.
type Terminal struct {
	*KeyDecoder
	in    cancelReader
	fd    int
	state *term.State
}

// OpenTerminal puts f into raw mode when it is a terminal. Non-terminal
// inputs (pipes, files) are read as-is.
func OpenTerminal(f *os.File) (*Terminal, error) {
	t := &Terminal{fd: int(f.Fd())}
	if term.IsTerminal(t.fd) {
		state, err := term.MakeRaw(t.fd)
		if err != nil {
			return nil, err
		}
		t.state = state
	}

	in, err := uv.NewCancelReader(f)
	if err != nil {
		_ = t.restore()
		return nil, fmt.Errorf("open input: %w", err)
	}
	t.in = in
	t.KeyDecoder = NewKeyDecoder(in, os.Getenv("TERM"))
	return t, nil
}

// Close releases the input and restores the terminal mode captured by
// OpenTerminal.
func (t *Terminal) Close() error {
	t.in.Cancel()
	t.KeyDecoder.Close()
	_ = t.in.Close()
	return t.restore()
}

func (t *Terminal) restore() error {
	if t.state == nil {
		return nil
	}
	state := t.state
	t.state = nil
	return term.Restore(t.fd, state)
}
