package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lsftui/internal/ui/theme"
)

// Gauge is a one-line progress bar followed by its percentage.
type Gauge struct {
	// Fraction is clamped to [0, 1].
	Fraction float64
	Width    int
}

// NewGauge creates a gauge of the given total width.
func NewGauge(fraction float64, width int) Gauge {
	return Gauge{Fraction: fraction, Width: width}
}

// Percent returns the rounded-down percentage shown after the bar.
func (g Gauge) Percent() int {
	return int(clamp01(g.Fraction) * 100)
}

// View renders the gauge in at most Width cells; the bar keeps a minimum of
// four cells on very narrow widths.
func (g Gauge) View() string {
	label := fmt.Sprintf(" %3d%%", g.Percent())
	bar := g.Width - lipgloss.Width(label)
	if bar < 4 {
		bar = 4
	}

	filled := int(float64(bar) * clamp01(g.Fraction))

	var b strings.Builder
	b.WriteString(theme.ProgressFilled.Render(strings.Repeat(" ", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", bar-filled)))
	b.WriteString(theme.Hint.Render(label))
	return b.String()
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
