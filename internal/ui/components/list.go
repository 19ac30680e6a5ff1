package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/lsftui/internal/ui/theme"
)

// List is a bordered, titled vertical list. Items render with their own
// styles; the list only scrolls and frames them.
type List struct {
	Title    string
	Items    []string
	Styles   []lipgloss.Style // per item; nil uses Selected/Unselected
	Selected int              // -1 for no highlighted item
	Focused  bool
}

// View renders the list into a box of the given outer size.
func (l List) View(width, height int) string {
	panel := theme.Panel
	if l.Focused {
		panel = theme.PanelFocused
	}

	innerWidth := width - panel.GetHorizontalFrameSize()
	innerHeight := height - panel.GetVerticalFrameSize() - 1 // title row
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	offset := 0
	if l.Selected >= innerHeight {
		offset = l.Selected - innerHeight + 1
	}

	var b strings.Builder
	b.WriteString(theme.PanelTitle.Render(l.Title))
	for i := offset; i < len(l.Items) && i < offset+innerHeight; i++ {
		b.WriteString("\n")
		b.WriteString(l.renderItem(i, innerWidth))
	}

	return panel.
		Width(width).
		Height(height).
		Render(b.String())
}

func (l List) renderItem(i, width int) string {
	prefix := "  "
	if i == l.Selected {
		prefix = "> "
	}
	label := ansi.Truncate(prefix+l.Items[i], width, "…")

	if l.Styles != nil && i < len(l.Styles) {
		return l.Styles[i].Render(label)
	}
	if i == l.Selected {
		return theme.Selected.Render(label)
	}
	return theme.Unselected.Render(label)
}
