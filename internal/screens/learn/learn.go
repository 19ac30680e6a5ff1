// Package learn renders the learn tab: progress, the shuffled word list and
// the word being quizzed.
package learn

import (
	"fmt"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lsftui/internal/controller"
	"github.com/abhisek/lsftui/internal/screen"
	"github.com/abhisek/lsftui/internal/session"
	"github.com/abhisek/lsftui/internal/ui/components"
	"github.com/abhisek/lsftui/internal/ui/layout"
	"github.com/abhisek/lsftui/internal/ui/theme"
)

// gaugeHeight is the height of the bottom progress panel.
const gaugeHeight = 3

// Screen implements screen.Screen for the learn tab.
type Screen struct {
	ctrl *controller.Controller
}

var _ screen.Screen = (*Screen)(nil)

// New creates a learn Screen reading from ctrl.
func New(ctrl *controller.Controller) *Screen {
	return &Screen{ctrl: ctrl}
}

func (s *Screen) Title() string {
	return session.TabLearn.String()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return layout.HintsFor(s.ctrl.KeyMap().LearnBindings())
}

func (s *Screen) View(width, height int) string {
	if s.ctrl.CurrentLearnWord() == nil {
		return theme.Hint.Render("No learn session")
	}

	if s.ctrl.Done() {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.doneOverlay())
	}

	bodyHeight := height - gaugeHeight
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	sideWidth := width / 5
	listWidth := width / 5
	cardWidth := width - sideWidth - listWidth

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		s.progressPanel(sideWidth, bodyHeight),
		s.wordList().View(listWidth, bodyHeight),
		s.card(cardWidth, bodyHeight),
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, s.gauge(width))
}

func (s *Screen) progressPanel(width, height int) string {
	p := s.ctrl.Progress()
	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.WordName.Render(fmt.Sprintf("%d/%d", p.Position, p.Total)),
		"",
		theme.Hint.Foreground(theme.Primary).Render(FormatElapsed(s.ctrl.Elapsed())),
	)
	return theme.Panel.
		Width(width).
		Height(height).
		Render(theme.PanelTitle.Render("Progression") + "\n\n" + content)
}

func (s *Screen) wordList() components.List {
	words := s.ctrl.LearnWords()
	current := s.ctrl.WordIndex()
	done := s.ctrl.Done()

	items := make([]string, len(words))
	styles := make([]lipgloss.Style, len(words))
	for i, w := range words {
		items[i] = w.Name
		switch session.StateOf(i, current, done) {
		case session.WordPassed:
			styles[i] = theme.Passed
		case session.WordCurrent:
			styles[i] = theme.Current
		default:
			styles[i] = theme.Next
		}
	}
	title := "Words"
	if cat := s.ctrl.LearnCategory(); cat != nil {
		title = cat.Name
	}
	return components.List{
		Title:    title,
		Items:    items,
		Styles:   styles,
		Selected: current,
		Focused:  true,
	}
}

func (s *Screen) card(width, height int) string {
	w := s.ctrl.CurrentLearnWord()
	lines := []string{theme.WordName.Render(w.Name)}
	if s.ctrl.HelpVisible() {
		lines = append(lines,
			"",
			theme.WordDescription.Render(w.Description),
			"",
			theme.WordLink.Render(w.Link),
		)
	}

	inner := width - theme.Panel.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	body := lipgloss.NewStyle().
		Width(inner).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))

	return theme.Panel.
		Width(width).
		Height(height).
		Render(theme.PanelTitle.Render("Word") + "\n\n" + body)
}

func (s *Screen) gauge(width int) string {
	inner := width - theme.Panel.GetHorizontalFrameSize()
	return theme.Panel.Width(width).Render(components.NewGauge(s.ctrl.Progress().Fraction(), inner).View())
}

func (s *Screen) doneOverlay() string {
	msg := "Done"
	if sum := s.ctrl.Summary(); sum != nil {
		msg = fmt.Sprintf("Done\n\n%s: %d words in %s", sum.Category, sum.Words, FormatElapsed(sum.Duration))
	}
	return theme.Overlay.Render(msg + "\n\n" + theme.Hint.Render("press 1 to go back"))
}

// FormatElapsed renders d as whole seconds and tenths, e.g. "12.3 seconds".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%d.%d seconds", int64(d/time.Second), d.Milliseconds()/100%10)
}
