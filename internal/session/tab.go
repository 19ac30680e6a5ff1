package session

import "fmt"

// Tab is the active mode of the interface.
type Tab int

const (
	TabDictionary Tab = iota
	TabLearn
)

func (t Tab) String() string {
	switch t {
	case TabDictionary:
		return "Dictionary"
	case TabLearn:
		return "Learn"
	}
	return fmt.Sprintf("Tab(%d)", int(t))
}

// Valid reports whether t is one of the defined tabs.
func (t Tab) Valid() bool {
	return t == TabDictionary || t == TabLearn
}

// MustValid panics when t is not a defined tab. A tab outside the defined
// set can only come from a programming error.
func (t Tab) MustValid() Tab {
	if !t.Valid() {
		panic(fmt.Sprintf("session: invalid tab %d", int(t)))
	}
	return t
}

// Tabs lists the tabs in display order.
func Tabs() []Tab {
	return []Tab{TabDictionary, TabLearn}
}
