package main

import (
	"github.com/spf13/cobra"

	"github.com/reignorshine/plansmith/internal/config"
	"github.com/reignorshine/plansmith/internal/logger"
)

type rootFlags struct {
	verbose      bool
	settingsPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "plansmith",
		Short:         "Plansmith generates, renders, and delivers marathon training plans",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.settingsPath, "settings", "", "Path to plansmith.yaml")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newNotifyCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the command logger, honoring --verbose.
func newLogger(flags *rootFlags) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, Pretty: true})
}

// loadSettings reads plansmith.yaml, honoring --settings.
func loadSettings(flags *rootFlags) (*config.Settings, error) {
	return config.Load(flags.settingsPath)
}
