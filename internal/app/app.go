package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/abhisek/lsftui/internal/controller"
	"github.com/abhisek/lsftui/internal/dictionary"
	"github.com/abhisek/lsftui/internal/event"
	"github.com/abhisek/lsftui/internal/logging"
	"github.com/abhisek/lsftui/internal/router"
	dictscreen "github.com/abhisek/lsftui/internal/screens/dictionary"
	"github.com/abhisek/lsftui/internal/screens/learn"
	"github.com/abhisek/lsftui/internal/session"
	"github.com/abhisek/lsftui/internal/ui/components"
	"github.com/abhisek/lsftui/internal/ui/layout"
)

// Options configures Run.
type Options struct {
	Categories   []dictionary.Category
	TickInterval time.Duration
}

// eventMsg carries one event from the source into the update loop.
type eventMsg event.Event

// eventsClosedMsg is sent once the event source has shut down.
type eventsClosedMsg struct{}

// Receiver is the blocking side of an event source.
type Receiver interface {
	Recv() (event.Event, bool)
}

// AppModel is the root Bubble Tea model. It renders the controller's state
// and feeds it events one at a time, so every transition completes before
// the next frame is drawn.
type AppModel struct {
	ctrl   *controller.Controller
	events Receiver
	router *router.Router
	width  int
	height int
}

// NewAppModel creates an AppModel reading events from events.
func NewAppModel(ctrl *controller.Controller, events Receiver) AppModel {
	r := router.New(ctrl)
	r.Register(session.TabDictionary, dictscreen.New(ctrl))
	r.Register(session.TabLearn, learn.New(ctrl))

	return AppModel{
		ctrl:   ctrl,
		events: events,
		router: r,
	}
}

func (m AppModel) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(events Receiver) tea.Cmd {
	return func() tea.Msg {
		evt, ok := events.Recv()
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(evt)
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case eventMsg:
		if m.ctrl.Handle(event.Event(msg)) == controller.Stop {
			return m, tea.Quit
		}
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		logging.Logger().Info("event source closed")
		return m, tea.Quit
	}

	return m, nil
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	tabs := components.Tabs{Labels: m.router.Labels(), Active: int(m.ctrl.Tab())}
	header := layout.RenderHeader(tabs.View(), m.width)
	footer := layout.RenderFooter(m.router.Active().KeyHints(), m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run puts the terminal in raw mode, starts the event producers and runs
// the renderer until the controller asks to stop.
func Run(opts Options) error {
	ctrl, err := controller.New(opts.Categories, controller.Options{})
	if err != nil {
		return err
	}

	keys, err := event.OpenTerminal(os.Stdin)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer keys.Close()

	src := event.NewSource(opts.TickInterval, keys)
	defer src.Stop()

	model := NewAppModel(ctrl, src)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		model.width, model.height = w, h
	}

	// Keyboard input belongs to the event source, not to Bubble Tea.
	p := tea.NewProgram(model, tea.WithInput(nil))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
