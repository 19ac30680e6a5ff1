// Package dictionary renders the dictionary tab: category list, word list and
// the selected word's card.
package dictionary

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lsftui/internal/controller"
	"github.com/abhisek/lsftui/internal/screen"
	"github.com/abhisek/lsftui/internal/selection"
	"github.com/abhisek/lsftui/internal/session"
	"github.com/abhisek/lsftui/internal/ui/components"
	"github.com/abhisek/lsftui/internal/ui/layout"
	"github.com/abhisek/lsftui/internal/ui/theme"
)

// Screen implements screen.Screen for the dictionary tab.
type Screen struct {
	ctrl *controller.Controller
}

var _ screen.Screen = (*Screen)(nil)

// New creates a dictionary Screen reading from ctrl.
func New(ctrl *controller.Controller) *Screen {
	return &Screen{ctrl: ctrl}
}

func (s *Screen) Title() string {
	return session.TabDictionary.String()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return layout.HintsFor(s.ctrl.KeyMap().DictionaryBindings())
}

func (s *Screen) View(width, height int) string {
	catWidth := width / 5
	wordWidth := width / 5
	if layout.IsCompactWidth(width) {
		catWidth = width / 4
		wordWidth = width / 4
	}
	cardWidth := width - catWidth - wordWidth

	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.categoryList().View(catWidth, height),
		s.wordList().View(wordWidth, height),
		s.card(cardWidth, height),
	)
}

func (s *Screen) categoryList() components.List {
	cats := s.ctrl.Categories()
	items := make([]string, len(cats))
	for i := range cats {
		items[i] = cats[i].Name
	}
	return components.List{
		Title:    "Categories",
		Items:    items,
		Selected: s.ctrl.CategoryIndex(),
		Focused:  s.ctrl.Focus() == selection.FocusLeft,
	}
}

func (s *Screen) wordList() components.List {
	cat := s.ctrl.SelectedCategory()
	items := make([]string, len(cat.Words))
	for i := range cat.Words {
		items[i] = cat.Words[i].Name
	}
	selected := -1
	focused := s.ctrl.Focus() == selection.FocusRight
	if focused {
		selected = s.ctrl.WordIndex()
	}
	return components.List{
		Title:    "Words",
		Items:    items,
		Selected: selected,
		Focused:  focused,
	}
}

func (s *Screen) card(width, height int) string {
	var content string
	if w := s.ctrl.SelectedWord(); w != nil {
		content = lipgloss.JoinVertical(lipgloss.Center,
			theme.WordName.Render(w.Name),
			"",
			theme.WordDescription.Render(w.Description),
			"",
			theme.WordLink.Render(w.Link),
		)
	} else {
		content = theme.Hint.Render("No words in this category")
	}

	inner := width - theme.Panel.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	body := lipgloss.NewStyle().
		Width(inner).
		Align(lipgloss.Center).
		Render(content)

	return theme.Panel.
		Width(width).
		Height(height).
		Render(theme.PanelTitle.Render("Information") + "\n\n" + body)
}
