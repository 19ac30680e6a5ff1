// Package session holds the transient state of a learn (self-quiz) session.
package session

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lsftui/internal/dictionary"
)

// Learn is one pass over a shuffled snapshot of a category. It is created
// each time the learn tab is entered and discarded when it is left.
type Learn struct {
	// ID correlates log entries for this session.
	ID string

	// Category is the index of the category the set was drawn from.
	Category int

	// Order holds indices into the category's word list, in quiz order.
	// Words are never copied.
	Order []int

	// StartTime anchors elapsed-time computation.
	StartTime time.Time

	// HelpVisible is true while the description and link are revealed.
	HelpVisible bool
}

// NewLearn snapshots a category of size words as a uniformly random
// permutation. A nil rng uses the global source.
func NewLearn(category, size int, rng *rand.Rand, now time.Time) *Learn {
	order := make([]int, size)
	for i := range order {
		order[i] = i
	}
	swap := func(i, j int) { order[i], order[j] = order[j], order[i] }
	if rng != nil {
		rng.Shuffle(size, swap)
	} else {
		rand.Shuffle(size, swap)
	}

	return &Learn{
		ID:        uuid.NewString(),
		Category:  category,
		Order:     order,
		StartTime: now,
	}
}

// Len returns the number of words in the set.
func (l *Learn) Len() int {
	return len(l.Order)
}

// Elapsed is always derived from the start anchor, so repeated reads never
// accumulate drift. A clock reading before the anchor yields zero.
func (l *Learn) Elapsed(now time.Time) time.Duration {
	d := now.Sub(l.StartTime)
	if d < 0 {
		return 0
	}
	return d
}

// ToggleHelp flips help visibility.
func (l *Learn) ToggleHelp() {
	l.HelpVisible = !l.HelpVisible
}

// Word returns the i-th word of the set, pointing into categories.
func (l *Learn) Word(categories []dictionary.Category, i int) *dictionary.Word {
	return &categories[l.Category].Words[l.Order[i]]
}

// Words resolves the whole set against categories.
func (l *Learn) Words(categories []dictionary.Category) []*dictionary.Word {
	words := make([]*dictionary.Word, len(l.Order))
	for i := range l.Order {
		words[i] = l.Word(categories, i)
	}
	return words
}
