package auth

import (
	"github.com/spf13/cobra"

	"linkedink/cmd/client/cmd/types"
	"linkedink/cmd/client/cmd/ui"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the local session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.Logout(cmd.Context()); err != nil {
			return err
		}

		ui.Success("Logged out")
		return nil
	},
}
