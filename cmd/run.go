package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/lsftui/internal/app"
	"github.com/abhisek/lsftui/internal/dictionary"
)

// runApp loads the dictionary and launches the TUI.
func runApp(cmd *cobra.Command) error {
	categories, err := dictionary.Load(cfg.Dictionary)
	if err != nil {
		return err
	}
	return app.Run(app.Options{
		Categories:   categories,
		TickInterval: cfg.Tick,
	})
}
