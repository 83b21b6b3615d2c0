package auth

import (
	"github.com/spf13/cobra"

	"linkedink/cmd/client/cmd/types"
	"linkedink/cmd/client/cmd/ui"
)

var (
	loginEmail    string
	loginPassword string
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the local profile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		email, password := loginEmail, loginPassword
		if err := PromptCredentials(&email, &password); err != nil {
			return err
		}

		user, err := app.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		ui.Success("Logged in as %s", user.Name)
		ui.Hint("Run `linkedink dashboard` to see what to do next.")
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVar(&loginEmail, "email", "", "email address")
	LoginCmd.Flags().StringVar(&loginPassword, "password", "", "password (prompted when empty)")
}
