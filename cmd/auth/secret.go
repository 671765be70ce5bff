package main

import (
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/authkit/pkg/cryptox"
)

// NewGenSecretCmd creates the gen-secret subcommand.
func NewGenSecretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen-secret",
		Short: "Print a random value suitable for JWT_SECRET",
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
			if err != nil {
				return err
			}
			cmd.Println(secret)
			return nil
		},
	}
}
