// Package remind periodically surfaces a random dictionary word on stdout
// and as a desktop notification.
package remind

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/abhisek/lsftui/internal/dictionary"
	"github.com/abhisek/lsftui/internal/logging"
)

// AppName is shown by notification daemons as the sender.
const AppName = "lsftui"

// ErrNoWords is returned when there is nothing to remind about.
var ErrNoWords = errors.New("remind: dictionary has no words")

// Notifier delivers one desktop notification.
type Notifier interface {
	Notify(title, body string) error
}

// DesktopNotifier sends notifications through the platform's notification
// service.
type DesktopNotifier struct{}

func (DesktopNotifier) Notify(title, body string) error {
	beeep.AppName = AppName
	return beeep.Notify(title, body, "")
}

// Options configures a Reminder.
type Options struct {
	Every       time.Duration
	Description bool
	Out         io.Writer
	Notifier    Notifier
	Rand        *rand.Rand
	Logger      *slog.Logger
}

// Reminder picks words uniformly at random on a fixed interval.
type Reminder struct {
	words []dictionary.Word
	opts  Options
	log   *slog.Logger
}

// New creates a Reminder over words.
func New(words []dictionary.Word, opts Options) (*Reminder, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	if opts.Every <= 0 {
		return nil, fmt.Errorf("remind: interval must be positive, got %s", opts.Every)
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Notifier == nil {
		opts.Notifier = DesktopNotifier{}
	}
	log := opts.Logger
	if log == nil {
		log = logging.Logger()
	}
	return &Reminder{words: words, opts: opts, log: log}, nil
}

// Run reminds immediately, then once per interval, until ctx is done.
// Cancellation is not an error.
func (r *Reminder) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.opts.Every)
	defer ticker.Stop()

	for count := 0; ; count++ {
		if err := r.remind(count); err != nil {
			return err
		}
		if ctx.Err() != nil {
			r.log.Info("remind stopped", "count", count+1)
			return nil
		}
		select {
		case <-ctx.Done():
			r.log.Info("remind stopped", "count", count+1)
			return nil
		case <-ticker.C:
		}
	}
}

func (r *Reminder) remind(count int) error {
	w := r.pick()

	_, err := fmt.Fprintf(r.opts.Out, "%d :\n   Word        : %s\n   Description : %s\n   Link        : %s\n",
		count, w.Name, w.Description, w.Link)
	if err != nil {
		return fmt.Errorf("write reminder: %w", err)
	}

	body := ""
	if r.opts.Description {
		body = w.Description
	}
	if err := r.opts.Notifier.Notify(w.Name, body); err != nil {
		r.log.Warn("notification failed", "word", w.Name, "error", err)
		return nil
	}
	r.log.Info("reminded", "count", count, "word", w.Name)
	return nil
}

func (r *Reminder) pick() dictionary.Word {
	if r.opts.Rand != nil {
		return r.words[r.opts.Rand.IntN(len(r.words))]
	}
	return r.words[rand.IntN(len(r.words))]
}
