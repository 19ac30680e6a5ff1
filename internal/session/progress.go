package session

// WordState classifies a learn-set entry relative to the current position.
type WordState int

const (
	WordNext WordState = iota
	WordCurrent
	WordPassed
)

// StateOf returns the state of entry i when the current index is current.
// Once the session is done, every entry counts as passed.
func StateOf(i, current int, done bool) WordState {
	switch {
	case i < current, done:
		return WordPassed
	case i == current:
		return WordCurrent
	default:
		return WordNext
	}
}

// Progress is the position within a learn set.
type Progress struct {
	Position int // 1-based
	Total    int
}

// NewProgress builds the progress for a zero-based index into a set of total words.
func NewProgress(index, total int) Progress {
	return Progress{Position: index + 1, Total: total}
}

// Fraction returns the completed share in [0, 1].
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Position) / float64(p.Total)
	if f > 1 {
		return 1
	}
	return f
}
