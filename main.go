package main

// Entry point for the demo application. The application logic is split
// across:
// - app_core.go: application structure and initialization
// - app_handlers.go: handlers that replay logical-list mutations
// - app_menus.go: menu bar definitions

import (
	"os"

	"github.com/spf13/cobra"

	"flyoutkit/internal/config"
	"flyoutkit/internal/logger"
)

func main() {
	var (
		configPath string
		logLevel   string
	)

	root := &cobra.Command{
		Use:   "flyoutkit",
		Short: "Menu flyout subsystem demo: mirrored popup entries, screen-aware placement and caption mnemonics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}

			log := logger.NewConsoleLogger(logger.ParseLevel(cfg.Log.Level))
			NewFlyoutApp(cfg, log).Run()
			return nil
		},
	}

	root.Flags().StringVar(&configPath, "config", "flyoutkit.toml", "path to the configuration file")
	root.Flags().StringVar(&logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
