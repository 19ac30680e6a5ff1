package controller

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lsftui/internal/dictionary"
	"github.com/abhisek/lsftui/internal/event"
	"github.com/abhisek/lsftui/internal/selection"
	"github.com/abhisek/lsftui/internal/session"
)

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

var (
	w1 = dictionary.Word{Name: "hello", Description: "wave", Link: "https://example.com/hello"}
	w2 = dictionary.Word{Name: "goodbye", Description: "wave twice", Link: "https://example.com/goodbye"}
	w3 = dictionary.Word{Name: "thanks", Description: "chin forward", Link: "https://example.com/thanks"}
	w4 = dictionary.Word{Name: "one", Description: "index up", Link: "https://example.com/one"}
	w5 = dictionary.Word{Name: "two", Description: "two fingers", Link: "https://example.com/two"}
)

func testCategories() []dictionary.Category {
	return []dictionary.Category{
		{Name: "Greetings", Words: []dictionary.Word{w1, w2, w3}},
		{Name: "Numbers", Words: []dictionary.Word{w4, w5}},
		{Name: "Empty"},
	}
}

func newTestController(t *testing.T) (*Controller, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	c, err := New(testCategories(), Options{
		Now:    clock.Now,
		Rand:   rand.New(rand.NewPCG(7, 11)),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return c, clock
}

func press(t *testing.T, c *Controller, keys ...event.Key) {
	t.Helper()
	for _, k := range keys {
		require.Equal(t, Continue, c.HandleKey(k), "key %q", k)
	}
}

func wordNames(words []*dictionary.Word) []string {
	names := make([]string, len(words))
	for i, w := range words {
		names[i] = w.Name
	}
	return names
}

func TestNew_RequiresCategories(t *testing.T) {
	_, err := New(nil, Options{})
	assert.ErrorIs(t, err, dictionary.ErrNoCategories)
}

func TestInitialState(t *testing.T) {
	c, _ := newTestController(t)
	assert.Equal(t, session.TabDictionary, c.Tab())
	assert.Equal(t, 0, c.CategoryIndex())
	assert.Equal(t, 0, c.WordIndex())
	assert.Equal(t, selection.FocusLeft, c.Focus())
	assert.False(t, c.Done())
	assert.Nil(t, c.LearnWords())
	assert.Zero(t, c.Elapsed())
}

func TestEndToEndScenario(t *testing.T) {
	c, _ := newTestController(t)

	press(t, c, "l")
	assert.Equal(t, selection.FocusRight, c.Focus())
	assert.Equal(t, 3, c.sel.WordListLength())
	assert.Equal(t, 0, c.WordIndex())

	press(t, c, "j")
	assert.Equal(t, 1, c.WordIndex())
	assert.Equal(t, "goodbye", c.SelectedWord().Name)

	press(t, c, "2")
	assert.Equal(t, session.TabLearn, c.Tab())
	assert.Equal(t, 0, c.WordIndex())
	assert.ElementsMatch(t, []string{"hello", "goodbye", "thanks"}, wordNames(c.LearnWords()))

	press(t, c, "n", "n")
	assert.Equal(t, 2, c.WordIndex())
	assert.False(t, c.Done())

	press(t, c, "n")
	assert.Equal(t, 2, c.WordIndex())
	assert.True(t, c.Done())
}

func TestDictionaryNavigation(t *testing.T) {
	c, _ := newTestController(t)

	press(t, c, "k")
	assert.Equal(t, 2, c.CategoryIndex(), "up wraps to the last category")
	press(t, c, "j")
	assert.Equal(t, 0, c.CategoryIndex())
	press(t, c, "j")
	assert.Equal(t, "Numbers", c.SelectedCategory().Name)

	press(t, c, "l", "k")
	assert.Equal(t, 1, c.WordIndex(), "up wraps within the word list")
	assert.Equal(t, "two", c.SelectedWord().Name)

	press(t, c, "h")
	assert.Equal(t, selection.FocusLeft, c.Focus())
	assert.Equal(t, 0, c.WordIndex())
}

func TestFocusRightOnEmptyCategoryIsIgnored(t *testing.T) {
	c, _ := newTestController(t)
	press(t, c, "k") // Empty
	require.Equal(t, "Empty", c.SelectedCategory().Name)

	press(t, c, "l")
	assert.Equal(t, selection.FocusLeft, c.Focus())
	assert.Nil(t, c.SelectedWord())

	press(t, c, "2")
	assert.Equal(t, session.TabDictionary, c.Tab(), "an empty category cannot start a learn session")
}

func TestEnterLearnResetsState(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		clock := &fakeClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
		c, err := New(testCategories(), Options{Now: clock.Now, Rand: rand.New(rand.NewPCG(seed, 1))})
		require.NoError(t, err)

		press(t, c, "l", "j", "j", "2", "h")
		require.True(t, c.HelpVisible())
		press(t, c, "1", "2")

		assert.False(t, c.HelpVisible())
		assert.Equal(t, 0, c.WordIndex())
		assert.Equal(t, selection.FocusRight, c.Focus())
		assert.ElementsMatch(t, []string{"hello", "goodbye", "thanks"}, wordNames(c.LearnWords()))
	}
}

func TestLearnSetReferencesDictionaryWords(t *testing.T) {
	c, _ := newTestController(t)
	press(t, c, "2")

	words := c.LearnWords()
	cat := c.LearnCategory()
	for _, w := range words {
		found := false
		for i := range cat.Words {
			if w == &cat.Words[i] {
				found = true
			}
		}
		assert.True(t, found, "learn word %q must point into the category", w.Name)
	}
	assert.Same(t, words[0], c.CurrentLearnWord())
}

func TestCompletionEdge(t *testing.T) {
	c, _ := newTestController(t)
	press(t, c, "j", "2") // Numbers, 2 words

	n := len(c.LearnWords())
	for i := 0; i < n-1; i++ {
		press(t, c, "n")
	}
	assert.Equal(t, n-1, c.WordIndex())
	assert.False(t, c.Done())
	assert.Nil(t, c.Summary())

	press(t, c, "n")
	assert.Equal(t, n-1, c.WordIndex(), "next on the last word never wraps")
	assert.True(t, c.Done())
	require.NotNil(t, c.Summary())
	assert.Equal(t, "Numbers", c.Summary().Category)
	assert.Equal(t, n, c.Summary().Words)

	press(t, c, "n")
	assert.Equal(t, n-1, c.WordIndex())
	assert.True(t, c.Done())
}

func TestSingleWordSessionCompletesOnFirstNext(t *testing.T) {
	cats := []dictionary.Category{{Name: "Solo", Words: []dictionary.Word{w1}}}
	c, err := New(cats, Options{})
	require.NoError(t, err)

	press(t, c, "2", "n")
	assert.Equal(t, 0, c.WordIndex())
	assert.True(t, c.Done())
}

func TestNextClearsHelp(t *testing.T) {
	c, _ := newTestController(t)
	press(t, c, "2", "h")
	require.True(t, c.HelpVisible())

	press(t, c, "n")
	assert.False(t, c.HelpVisible())
}

func TestHelpToggleIsIdempotentInPairs(t *testing.T) {
	c, _ := newTestController(t)
	press(t, c, "2")
	before := c.HelpVisible()
	press(t, c, "h", "h")
	assert.Equal(t, before, c.HelpVisible())

	press(t, c, "h")
	before = c.HelpVisible()
	press(t, c, "h", "h")
	assert.Equal(t, before, c.HelpVisible())
}

func TestElapsedIsMonotonic(t *testing.T) {
	c, clock := newTestController(t)
	press(t, c, "2")
	assert.Zero(t, c.Elapsed())

	clock.Advance(1200 * time.Millisecond)
	e1 := c.Elapsed()
	c.Handle(event.Tick(clock.Now()))
	clock.Advance(300 * time.Millisecond)
	e2 := c.Elapsed()

	assert.Equal(t, 1200*time.Millisecond, e1)
	assert.LessOrEqual(t, e1, e2)
	assert.Equal(t, 1500*time.Millisecond, e2)
}

func TestLeaveLearnResetsNavigation(t *testing.T) {
	c, _ := newTestController(t)
	press(t, c, "j", "2", "n", "n")
	require.True(t, c.Done())

	press(t, c, "1")
	assert.Equal(t, session.TabDictionary, c.Tab())
	assert.Equal(t, selection.FocusLeft, c.Focus())
	assert.Equal(t, 0, c.WordIndex())
	assert.False(t, c.Done())
	assert.Equal(t, 1, c.CategoryIndex(), "category selection survives the round trip")
	assert.Nil(t, c.LearnWords())
	assert.Nil(t, c.Summary())
	assert.False(t, c.HelpVisible())
}

func TestUnmappedKeysAreIgnored(t *testing.T) {
	c, _ := newTestController(t)
	press(t, c, "x", "n", "1", "enter")
	assert.Equal(t, session.TabDictionary, c.Tab())
	assert.Equal(t, 0, c.CategoryIndex())
	assert.Equal(t, selection.FocusLeft, c.Focus())

	press(t, c, "2")
	press(t, c, "j", "k", "l", "2", "x")
	assert.Equal(t, session.TabLearn, c.Tab())
	assert.Equal(t, 0, c.WordIndex(), "dictionary navigation keys do nothing in learn")
}

func TestTicksDoNotChangeState(t *testing.T) {
	c, clock := newTestController(t)
	press(t, c, "l", "j")
	for i := 0; i < 5; i++ {
		assert.Equal(t, Continue, c.Handle(event.Tick(clock.Now())))
	}
	assert.Equal(t, 1, c.WordIndex())
	assert.Equal(t, selection.FocusRight, c.Focus())
}

func TestQuit(t *testing.T) {
	c, clock := newTestController(t)
	assert.Equal(t, Stop, c.Handle(event.Input("q", clock.Now())))

	press(t, c, "2")
	assert.Equal(t, Stop, c.HandleKey("q"))
	assert.Equal(t, Stop, c.HandleKey("ctrl+c"))
}

func TestInvalidTabPanics(t *testing.T) {
	c, _ := newTestController(t)
	c.tab = session.Tab(9)
	assert.Panics(t, func() { c.HandleKey("j") })
	assert.Panics(t, func() { c.Tab() })
}

func TestWordIndexStaysInRange(t *testing.T) {
	c, _ := newTestController(t)
	rng := rand.New(rand.NewPCG(3, 5))
	keys := []event.Key{"j", "k", "h", "l", "1", "2", "n", "h", "x"}

	for i := 0; i < 2000; i++ {
		press(t, c, keys[rng.IntN(len(keys))])
		switch {
		case c.Tab() == session.TabLearn:
			require.Less(t, c.WordIndex(), len(c.LearnWords()))
			require.Equal(t, selection.FocusRight, c.Focus())
		case c.Focus() == selection.FocusRight:
			require.Less(t, c.WordIndex(), c.SelectedCategory().Len())
		}
	}
}
