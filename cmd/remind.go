package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/lsftui/internal/dictionary"
	"github.com/abhisek/lsftui/internal/remind"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Show a random word at a fixed interval",
	Long:  "Prints a random dictionary word and sends a desktop notification every interval until interrupted.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := dictionary.Load(cfg.Dictionary)
		if err != nil {
			return err
		}

		r, err := remind.New(dictionary.AllWords(categories), remind.Options{
			Every:       cfg.Remind.Every,
			Description: cfg.Remind.Description,
			Out:         cmd.OutOrStdout(),
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return r.Run(ctx)
	},
}

func init() {
	remindCmd.Flags().Duration("every", 0, "Interval between reminders (default 30s)")
	remindCmd.Flags().Bool("description", false, "Include the description in notifications")
	bind(remindCmd.Flags(), "remind.every", "every")
	bind(remindCmd.Flags(), "remind.description", "description")
}
