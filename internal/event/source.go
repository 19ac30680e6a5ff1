package event

import (
	"context"
	"sync"
	"time"

	"github.com/abhisek/lsftui/internal/logging"
)

// DefaultTickInterval is the refresh period used when none is configured.
const DefaultTickInterval = 200 * time.Millisecond

const queueSize = 64

// KeyReader blocks until the next keypress is available.
type KeyReader interface {
	ReadKey() (Key, error)
}

// Source runs the ticker and keyboard producers and merges their events
// into one channel. Events from one producer arrive in emission order;
// events from different producers interleave in arrival order.
type Source struct {
	interval time.Duration
	keys     KeyReader

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewSource starts both producers. A non-positive interval falls back to
// DefaultTickInterval.
func NewSource(interval time.Duration, keys KeyReader) *Source {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Source{
		interval: interval,
		keys:     keys,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, queueSize),
	}

	s.wg.Add(2)
	go s.tick()
	go s.read()

	go func() {
		s.wg.Wait()
		close(s.events)
	}()

	return s
}

// Events returns the merged channel. It is closed once both producers exit.
func (s *Source) Events() <-chan Event {
	return s.events
}

// Recv blocks until an event is available. ok is false once the stream is
// closed.
func (s *Source) Recv() (evt Event, ok bool) {
	evt, ok = <-s.events
	return evt, ok
}

// Poll returns the next event if one is queued, without blocking.
func (s *Source) Poll() (evt Event, ok bool) {
	select {
	case evt, ok = <-s.events:
		return evt, ok
	default:
		return Event{}, false
	}
}

// Stop cancels both producers. A keyboard producer blocked in ReadKey exits
// once its reader is closed (Terminal.Close) or its next key arrives.
func (s *Source) Stop() {
	s.cancel()
}

func (s *Source) tick() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case t := <-ticker.C:
			// A full queue means the consumer is behind; the next tick
			// carries the same information.
			select {
			case s.events <- Tick(t):
			default:
			}
		}
	}
}

func (s *Source) read() {
	defer s.wg.Done()
	if s.keys == nil {
		return
	}

	for {
		k, err := s.keys.ReadKey()
		if err != nil {
			logging.Logger().Debug("key reader stopped", "err", err)
			return
		}
		select {
		case <-s.ctx.Done():
			return
		case s.events <- Input(k, time.Now()):
		}
		if k == QuitKey || k == CtrlC {
			return
		}
	}
}
