package components

import (
	"strings"

	"github.com/abhisek/lsftui/internal/ui/theme"
)

// Tabs renders a row of tab labels with the active one highlighted.
type Tabs struct {
	Labels []string
	Active int
}

// View renders the tab row.
func (t Tabs) View() string {
	parts := make([]string, len(t.Labels))
	for i, label := range t.Labels {
		if i == t.Active {
			parts[i] = theme.TabActive.Render(label)
		} else {
			parts[i] = theme.TabInactive.Render(label)
		}
	}
	return strings.Join(parts, theme.Hint.Render(" · "))
}
