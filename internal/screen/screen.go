package screen

import (
	"github.com/abhisek/lsftui/internal/ui/layout"
)

// Screen renders one tab. Screens only read controller state; every
// mutation goes through the controller.
type Screen interface {
	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the tab label.
	Title() string

	// KeyHints returns the footer hints for the tab.
	KeyHints() []layout.KeyHint
}
