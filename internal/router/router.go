package router

import (
	"fmt"

	"github.com/abhisek/lsftui/internal/screen"
	"github.com/abhisek/lsftui/internal/session"
)

// TabSource reports the active tab. The controller is the only production
// implementation.
type TabSource interface {
	Tab() session.Tab
}

// Router maps tabs to the screens that render them.
type Router struct {
	tabs    TabSource
	screens map[session.Tab]screen.Screen
}

// New creates a Router following tabs.
func New(tabs TabSource) *Router {
	return &Router{
		tabs:    tabs,
		screens: make(map[session.Tab]screen.Screen),
	}
}

// Register sets the screen for t, replacing any previous one.
func (r *Router) Register(t session.Tab, s screen.Screen) {
	r.screens[t.MustValid()] = s
}

// Active returns the screen for the active tab. A tab without a screen is a
// wiring bug and panics.
func (r *Router) Active() screen.Screen {
	t := r.tabs.Tab()
	s, ok := r.screens[t]
	if !ok {
		panic(fmt.Sprintf("router: no screen registered for tab %s", t))
	}
	return s
}

// Labels returns the numbered tab labels in tab order, e.g. "1 Dictionary".
func (r *Router) Labels() []string {
	tabs := session.Tabs()
	labels := make([]string, 0, len(tabs))
	for i, t := range tabs {
		title := t.String()
		if s, ok := r.screens[t]; ok {
			title = s.Title()
		}
		labels = append(labels, fmt.Sprintf("%d %s", i+1, title))
	}
	return labels
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
