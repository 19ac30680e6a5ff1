package controller

import (
	"time"

	"github.com/abhisek/lsftui/internal/dictionary"
	"github.com/abhisek/lsftui/internal/selection"
	"github.com/abhisek/lsftui/internal/session"
)

func (c *Controller) Tab() session.Tab {
	return c.tab.MustValid()
}

func (c *Controller) Categories() []dictionary.Category { return c.categories }
func (c *Controller) CategoryIndex() int                 { return c.sel.CategoryIndex() }
func (c *Controller) WordIndex() int                     { return c.sel.WordIndex() }
func (c *Controller) Focus() selection.Focus             { return c.sel.Focus() }
func (c *Controller) Done() bool                         { return c.sel.IsDone() }
func (c *Controller) KeyMap() KeyMap                     { return c.keys }

// SelectedCategory returns the category under the category cursor.
func (c *Controller) SelectedCategory() *dictionary.Category {
	return &c.categories[c.sel.CategoryIndex()]
}

// SelectedWord returns the word under the word cursor in the dictionary
// tab, or nil when the category has no words.
func (c *Controller) SelectedWord() *dictionary.Word {
	cat := c.SelectedCategory()
	i := c.sel.WordIndex()
	if i < 0 || i >= cat.Len() {
		return nil
	}
	return &cat.Words[i]
}

// LearnWords returns the shuffled learn set, or nil outside the learn tab.
func (c *Controller) LearnWords() []*dictionary.Word {
	if c.learn == nil {
		return nil
	}
	return c.learn.Words(c.categories)
}

// CurrentLearnWord returns the word being quizzed, or nil outside the learn tab.
func (c *Controller) CurrentLearnWord() *dictionary.Word {
	if c.learn == nil {
		return nil
	}
	return c.learn.Word(c.categories, c.sel.WordIndex())
}

// LearnCategory returns the category the learn set was drawn from.
func (c *Controller) LearnCategory() *dictionary.Category {
	if c.learn == nil {
		return nil
	}
	return &c.categories[c.learn.Category]
}

// HelpVisible reports whether the learn tab reveals description and link.
func (c *Controller) HelpVisible() bool {
	return c.learn != nil && c.learn.HelpVisible
}

// Elapsed returns the time since the learn session started, recomputed from
// the clock on every call.
func (c *Controller) Elapsed() time.Duration {
	if c.learn == nil {
		return 0
	}
	return c.learn.Elapsed(c.now())
}

// Progress returns the learn-set position.
func (c *Controller) Progress() session.Progress {
	if c.learn == nil {
		return session.Progress{}
	}
	return session.NewProgress(c.sel.WordIndex(), c.learn.Len())
}

// Summary returns the completed session's summary, or nil while the session
// is still in progress.
func (c *Controller) Summary() *session.Summary {
	return c.summary
}
