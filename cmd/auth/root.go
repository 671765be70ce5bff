package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the authkit CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "authkit - email and password authentication service",
		Long: `authkit registers accounts, issues HS256 bearer tokens on login and
guards routes that require them. Configuration is read from the environment
and an optional .env file.`,
		SilenceUsage: true,
	}

	// Running without a subcommand serves.
	serve := NewServeCmd()
	cmd.RunE = serve.RunE

	cmd.AddCommand(serve)
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewGenSecretCmd())

	return cmd
}
