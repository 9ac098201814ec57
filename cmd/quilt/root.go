package main

import (
	"github.com/spf13/cobra"

	"github.com/quiltui/quilt/internal/config"
	"github.com/quiltui/quilt/internal/logger"
)

type rootFlags struct {
	verbose    bool
	themeMode  string
	configPath string
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "quilt",
		Short:         "Quilt is a themed terminal component kit with a pagination demo",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.themeMode, "theme", "", "Theme mode: light, dark or system")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a quilt config file")

	cmd.AddCommand(newBrowseCmd(flags, log))
	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig resolves the effective configuration: the config file when one
// is supplied, defaults otherwise, with command-line flags layered on top.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg := config.Default()

	if flags.configPath != "" {
		parsed, err := config.ParseConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = parsed
	}

	if flags.themeMode != "" {
		cfg.Theme.Mode = flags.themeMode
		if err := config.ValidateConfig(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
