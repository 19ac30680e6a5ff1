package session

import "time"

// Summary describes a completed learn session.
type Summary struct {
	ID       string
	Category string
	Words    int
	Duration time.Duration
}

// BuildSummary creates a Summary for l as of now.
func BuildSummary(l *Learn, categoryName string, now time.Time) Summary {
	return Summary{
		ID:       l.ID,
		Category: categoryName,
		Words:    l.Len(),
		Duration: l.Elapsed(now),
	}
}
