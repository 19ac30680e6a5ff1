// Package selection implements the two-panel navigation state: which
// category is selected, which word is selected, and which panel has focus.
package selection

import "fmt"

// Focus identifies the panel receiving up/down navigation.
type Focus int

const (
	FocusLeft  Focus = iota // category list
	FocusRight              // word list (or learn set)
)

func (f Focus) String() string {
	switch f {
	case FocusLeft:
		return "left"
	case FocusRight:
		return "right"
	}
	return fmt.Sprintf("Focus(%d)", int(f))
}

// Selection tracks navigation state. It performs no I/O and is owned by a
// single goroutine.
type Selection struct {
	categoryCount  int
	categoryIndex  int
	wordIndex      int
	wordListLength int
	focus          Focus
	done           bool
}

// New returns a Selection over categoryCount categories with the category
// list focused. categoryCount must be positive.
func New(categoryCount int) *Selection {
	if categoryCount <= 0 {
		panic(fmt.Sprintf("selection: category count must be positive, got %d", categoryCount))
	}
	return &Selection{categoryCount: categoryCount}
}

// FocusLeft focuses the category list and resets the word index.
func (s *Selection) FocusLeft() {
	s.focus = FocusLeft
	s.wordIndex = 0
}

// FocusRight focuses the word list of the given length. The current word
// index is clamped into range; callers wanting a fresh index reset it first.
func (s *Selection) FocusRight(listLength int) {
	if listLength <= 0 {
		panic(fmt.Sprintf("selection: focused list length must be positive, got %d", listLength))
	}
	s.focus = FocusRight
	s.wordListLength = listLength
	if s.wordIndex >= listLength {
		s.wordIndex = listLength - 1
	}
	if s.wordIndex < 0 {
		s.wordIndex = 0
	}
}

// Up moves to the previous entry of the focused list, wrapping from the
// first entry to the last.
func (s *Selection) Up() {
	if s.focus == FocusLeft {
		s.categoryIndex = wrap(s.categoryIndex-1, s.categoryCount)
		return
	}
	s.wordIndex = wrap(s.wordIndex-1, s.wordListLength)
}

// Down moves to the next entry of the focused list, wrapping from the last
// entry to the first.
func (s *Selection) Down() {
	if s.focus == FocusLeft {
		s.categoryIndex = wrap(s.categoryIndex+1, s.categoryCount)
		return
	}
	s.wordIndex = wrap(s.wordIndex+1, s.wordListLength)
}

// ResetWordIndex sets the word index to zero without touching focus or length.
func (s *Selection) ResetWordIndex() {
	s.wordIndex = 0
}

// SetDone marks the learn session as complete.
func (s *Selection) SetDone() {
	s.done = true
}

// ClearDone clears the completion flag when leaving learn mode.
func (s *Selection) ClearDone() {
	s.done = false
}

// IsDone reports whether the learn session was advanced past its last word.
func (s *Selection) IsDone() bool {
	return s.done
}

func (s *Selection) CategoryIndex() int  { return s.categoryIndex }
func (s *Selection) WordIndex() int      { return s.wordIndex }
func (s *Selection) WordListLength() int { return s.wordListLength }
func (s *Selection) Focus() Focus        { return s.focus }

// wrap maps i into [0, n). A zero-length list is unreachable through
// FocusRight, so cycling one is a programming error.
func wrap(i, n int) int {
	if n <= 0 {
		panic("selection: cannot cycle an empty list")
	}
	return ((i % n) + n) % n
}
