package main

import (
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/authkit/internal/auth/app"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  `Apply pending migrations and serve the auth API until SIGINT or SIGTERM.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}

			logger := app.NewLogger(cfg)
			application, err := app.New(cfg, logger)
			if err != nil {
				logger.Error("failed to initialize application", "error", err)
				return err
			}

			return application.Run()
		},
	}
}
