// Package controller applies keyboard and tick events to the navigation and
// learn-session state. It never renders; renderers read its accessors.
package controller

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"charm.land/bubbles/v2/key"

	"github.com/abhisek/lsftui/internal/dictionary"
	"github.com/abhisek/lsftui/internal/event"
	"github.com/abhisek/lsftui/internal/logging"
	"github.com/abhisek/lsftui/internal/selection"
	"github.com/abhisek/lsftui/internal/session"
)

// Result tells the main loop whether to keep consuming events.
type Result int

const (
	Continue Result = iota
	Stop
)

// Options configures a Controller. Zero values select the defaults.
type Options struct {
	// Now is the clock used for the learn session anchor and elapsed time.
	Now func() time.Time

	// Rand shuffles learn sets. Nil uses the global source.
	Rand *rand.Rand

	// Keys overrides DefaultKeyMap.
	Keys *KeyMap

	// Logger overrides logging.Logger.
	Logger *slog.Logger
}

// Controller owns the Selection and the learn session. It must only be used
// from the goroutine consuming events.
type Controller struct {
	categories []dictionary.Category
	sel        *selection.Selection
	tab        session.Tab
	learn      *session.Learn
	summary    *session.Summary

	keys KeyMap
	now  func() time.Time
	rng  *rand.Rand
	log  *slog.Logger
}

// New creates a Controller over categories, which are borrowed for the
// controller's lifetime and never modified.
func New(categories []dictionary.Category, opts Options) (*Controller, error) {
	if len(categories) == 0 {
		return nil, dictionary.ErrNoCategories
	}
	c := &Controller{
		categories: categories,
		sel:        selection.New(len(categories)),
		tab:        session.TabDictionary,
		keys:       DefaultKeyMap(),
		now:        time.Now,
		rng:        opts.Rand,
		log:        logging.Logger(),
	}
	if opts.Now != nil {
		c.now = opts.Now
	}
	if opts.Keys != nil {
		c.keys = *opts.Keys
	}
	if opts.Logger != nil {
		c.log = opts.Logger
	}
	return c, nil
}

// Handle applies one event. Ticks carry no state change; they exist so the
// renderer repaints the elapsed time.
func (c *Controller) Handle(evt event.Event) Result {
	if evt.Kind != event.KindInput {
		return Continue
	}
	return c.HandleKey(evt.Key)
}

// HandleKey applies one keypress. Keys without a binding in the active tab
// are ignored.
func (c *Controller) HandleKey(k event.Key) Result {
	if key.Matches(k, c.keys.Quit) {
		c.log.Info("quit requested", "tab", c.tab.String())
		return Stop
	}

	var handled bool
	switch c.tab.MustValid() {
	case session.TabDictionary:
		handled = c.handleDictionaryKey(k)
	case session.TabLearn:
		handled = c.handleLearnKey(k)
	}
	if !handled {
		c.log.Debug("unmapped key", "key", k.String(), "tab", c.tab.String())
	}
	return Continue
}

func (c *Controller) handleDictionaryKey(k event.Key) bool {
	switch {
	case key.Matches(k, c.keys.Down):
		c.sel.Down()
	case key.Matches(k, c.keys.Up):
		c.sel.Up()
	case key.Matches(k, c.keys.FocusLeft):
		c.sel.FocusLeft()
	case key.Matches(k, c.keys.FocusRight):
		n := c.categories[c.sel.CategoryIndex()].Len()
		if n == 0 {
			return true
		}
		c.sel.FocusRight(n)
	case key.Matches(k, c.keys.LearnTab):
		c.enterLearn()
	default:
		return false
	}
	return true
}

func (c *Controller) handleLearnKey(k event.Key) bool {
	switch {
	case key.Matches(k, c.keys.Next):
		c.next()
	case key.Matches(k, c.keys.Help):
		c.learn.ToggleHelp()
	case key.Matches(k, c.keys.DictionaryTab):
		c.leaveLearn()
	default:
		return false
	}
	return true
}

// enterLearn is the only transition that focuses the right panel on the
// learn set, so the learn tab is never shown with the category list focused.
func (c *Controller) enterLearn() {
	idx := c.sel.CategoryIndex()
	cat := &c.categories[idx]
	if cat.Len() == 0 {
		c.log.Info("learn skipped: category has no words", "category", cat.Name)
		return
	}

	c.learn = session.NewLearn(idx, cat.Len(), c.rng, c.now())
	c.summary = nil
	c.sel.ResetWordIndex()
	c.sel.FocusRight(c.learn.Len())
	c.tab = session.TabLearn

	c.log.Info("learn session started",
		"session", c.learn.ID,
		"category", cat.Name,
		"size", c.learn.Len(),
	)
}

func (c *Controller) leaveLearn() {
	if c.learn != nil {
		c.log.Info("learn session left",
			"session", c.learn.ID,
			"position", c.sel.WordIndex()+1,
			"done", c.sel.IsDone(),
		)
	}
	c.learn = nil
	c.summary = nil
	c.sel.FocusLeft()
	c.sel.ClearDone()
	c.tab = session.TabDictionary
}

// next advances through the learn set. The session completes only from its
// last word; it never wraps back to the first.
func (c *Controller) next() {
	if c.sel.WordIndex() < c.learn.Len()-1 {
		c.sel.Down()
		c.learn.HelpVisible = false
		return
	}
	if c.sel.IsDone() {
		return
	}
	c.sel.SetDone()

	s := session.BuildSummary(c.learn, c.categories[c.learn.Category].Name, c.now())
	c.summary = &s
	c.log.Info("learn session completed",
		"session", s.ID,
		"category", s.Category,
		"words", s.Words,
		"elapsed", s.Duration.String(),
	)
}
