package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vinoteka/vinoteka/internal/config"
	"github.com/vinoteka/vinoteka/internal/daemon"
	"github.com/vinoteka/vinoteka/internal/logger"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	startCmd.Flags().BoolVar(
		&browseStatic,
		"browse",
		false,
		"Enable static file browsing (for development purposes only)",
	)

	rootCmd.AddCommand(startCmd)
}

// envFiles are loaded before the config is read; missing files are skipped.
var envFiles = []string{".env", ".env.local"} //nolint:gochecknoglobals

var (
	configPath string // Path to the configuration folder

	cfg          config.Config
	devMode      bool
	browseStatic bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the Vinoteka web service",
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return loadConfig()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if devMode {
				cfg.DevMode = true
			}

			if browseStatic {
				cfg.Webserver.BrowseStatic = true
			}

			if err := logger.Init(cfg.Log); err != nil {
				return err
			}

			log.Info().
				Int("port", cfg.Webserver.Port).
				Bool("dev", cfg.DevMode).
				Msg("starting vinoteka")

			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			return d.Start()
		},
	}
)

// loadConfig reads the env files and main.toml into cfg.
func loadConfig() error {
	if err := config.LoadEnvFiles(envFiles...); err != nil {
		return err
	}

	c, err := config.ReadConfig(configPath)
	if err != nil {
		return err
	}

	cfg = c

	return nil
}
