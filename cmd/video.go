package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/abhisek/lsftui/internal/video"
)

var videoCmd = &cobra.Command{
	Use:   "video <word>",
	Short: "Find and play the sign videos for a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		client := video.NewClient(
			video.WithBaseURL(cfg.Video.BaseURL),
			video.WithTimeout(cfg.Video.Timeout),
		)

		urls, err := client.Lookup(ctx, args[0])
		if err != nil {
			return err
		}

		player := video.ExecPlayer{
			Command: cfg.Video.Player,
			Stdout:  cmd.OutOrStdout(),
			Stderr:  cmd.ErrOrStderr(),
		}
		return video.Select(ctx, urls, cmd.InOrStdin(), cmd.OutOrStdout(), player)
	},
}

func init() {
	videoCmd.Flags().String("player", "", "Command used to play the video (default mpv)")
	bind(videoCmd.Flags(), "video.player", "player")
}
