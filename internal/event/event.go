// Package event merges a periodic ticker and a keyboard reader into a single
// ordered stream consumed by one goroutine.
package event

import "time"

// Kind identifies the producer of an event.
type Kind int

const (
	KindTick Kind = iota
	KindInput
)

func (k Kind) String() string {
	if k == KindTick {
		return "tick"
	}
	return "input"
}

// Key is a single decoded keypress, rendered the way key bindings name it
// ("q", "j", "ctrl+c", "enter").
type Key string

func (k Key) String() string { return string(k) }

// Keys that end the keyboard producer's loop once delivered. The consumer
// makes the authoritative quit decision.
const (
	QuitKey Key = "q"
	CtrlC   Key = "ctrl+c"
)

// Event is one item of the merged stream. Key is set for KindInput only.
type Event struct {
	Kind Kind
	Key  Key
	Time time.Time
}

// Tick returns a tick event stamped at t.
func Tick(t time.Time) Event {
	return Event{Kind: KindTick, Time: t}
}

// Input returns an input event for k stamped at t.
func Input(k Key, t time.Time) Event {
	return Event{Kind: KindInput, Key: k, Time: t}
}
