package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestListScrollsToSelection(t *testing.T) {
	items := make([]string, 30)
	for i := range items {
		items[i] = string(rune('a' + i%26))
	}
	l := List{Title: "Words", Items: items, Selected: 25}
	out := l.View(20, 10)

	assert.Contains(t, out, "> z")
	assert.NotContains(t, out, "> a")
}

func TestListTruncatesLongItems(t *testing.T) {
	l := List{Title: "Words", Items: []string{strings.Repeat("x", 50)}, Selected: -1}
	out := l.View(12, 5)
	assert.Contains(t, out, "…")
}

func TestListItemTruncationKeepsWidth(t *testing.T) {
	l := List{Items: []string{
		"\x1b[1m" + strings.Repeat("é", 20) + "\x1b[0m",
		"漢字漢字漢字漢字",
		"short",
	}, Selected: -1}

	for i := range l.Items {
		got := l.renderItem(i, 9)
		assert.LessOrEqual(t, lipgloss.Width(got), 9, "item %d", i)
	}
	assert.Contains(t, l.renderItem(0, 9), "…")
	assert.Contains(t, l.renderItem(1, 9), "…")
	assert.Contains(t, l.renderItem(2, 9), "short")
}

func TestTabsView(t *testing.T) {
	out := Tabs{Labels: []string{"Dictionary", "Learn"}, Active: 1}.View()
	assert.Contains(t, out, "Dictionary")
	assert.Contains(t, out, "Learn")
}

func TestGauge(t *testing.T) {
	bar := NewGauge(0.5, 30).View()
	assert.LessOrEqual(t, lipgloss.Width(bar), 30)
	assert.Contains(t, bar, "50%")

	assert.Equal(t, 0, NewGauge(-1, 30).Percent())
	assert.Equal(t, 100, NewGauge(2, 30).Percent())
	assert.Equal(t, 33, NewGauge(1.0/3, 30).Percent())
}
