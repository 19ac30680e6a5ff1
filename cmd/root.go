package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abhisek/lsftui/internal/config"
	"github.com/abhisek/lsftui/internal/event"
	"github.com/abhisek/lsftui/internal/logging"
)

var (
	settings  = config.New()
	cfg       config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:               "lsftui",
	Short:             "Learn French Sign Language words in the terminal",
	Long:              "lsftui browses an LSF dictionary by category and runs shuffled learn sessions over it.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringP("dictionary", "d", "LSF.yaml", "Path to the YAML dictionary")
	pf.String("config", "", "Path to a TOML config file (overrides LSFTUI_CONFIG)")
	pf.String("log-file", "", "Log file path (default $XDG_STATE_HOME/lsftui/lsftui.log)")
	pf.Bool("debug", false, "Enable debug logging")
	rootCmd.Flags().Duration("tick", event.DefaultTickInterval, "Interval between tick events")

	bind(pf, "dictionary", "dictionary")
	bind(pf, "log.file", "log-file")
	bind(pf, "log.debug", "debug")
	bind(rootCmd.Flags(), "tick", "tick")

	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(videoCmd)
	rootCmd.AddCommand(versionCmd)
}

// bind makes flag the highest-priority source for key.
func bind(flags *pflag.FlagSet, key, flag string) {
	if err := settings.BindPFlag(key, flags.Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %q: %v", flag, err))
	}
}

// setup resolves the configuration and opens the log file.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if err := config.ReadFile(settings, path); err != nil {
		return err
	}
	c, err := config.Load(settings)
	if err != nil {
		return err
	}
	cfg = c

	closer, err := logging.Configure(cfg.Log.File, cfg.Log.Debug)
	if err != nil {
		return err
	}
	logCloser = closer

	logging.Logger().Info("starting",
		"command", cmd.Name(),
		"version", version,
		"dictionary", cfg.Dictionary,
		"config", settings.ConfigFileUsed(),
	)
	return nil
}
