package auth

import (
	"github.com/spf13/cobra"

	"linkedink/cmd/client/cmd/types"
	"linkedink/cmd/client/cmd/ui"
	"linkedink/internal/domain/account"
)

var registerInput account.RegisterInput

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a local account",
	Long: `Creates an account in the local profile. Missing fields are asked for
interactively; passwords are read without echo.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		in := registerInput
		if err := PromptRegistration(&in); err != nil {
			return err
		}

		if _, err := app.Register(cmd.Context(), in); err != nil {
			return err
		}

		ui.Success("Account created successfully. Please log in.")
		return nil
	},
}

func init() {
	RegisterCmd.Flags().StringVar(&registerInput.Name, "name", "", "full name")
	RegisterCmd.Flags().StringVar(&registerInput.Email, "email", "", "email address")
	RegisterCmd.Flags().StringVar(&registerInput.Password, "password", "", "password (prompted when empty)")
	RegisterCmd.Flags().StringVar(&registerInput.ConfirmPassword, "confirm-password", "", "password again (prompted when empty)")
}
