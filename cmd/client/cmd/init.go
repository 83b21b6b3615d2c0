package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"linkedink/cmd/client/cmd/auth"
	"linkedink/cmd/client/cmd/post"
	"linkedink/cmd/client/cmd/remote"
	"linkedink/cmd/client/cmd/types"
	"linkedink/cmd/client/cmd/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Prepare the local profile and check the server",
	Long: `init creates the local profile database and reports whether the
configured LinkedInk server answers. The local commands work without it.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		ui.Success("Profile ready at %s", cfg.DataPath)

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		if err := app.Remote().Health(ctx); err != nil {
			ui.Warn("Server %s is not reachable: %v", cfg.BaseURL(), err)
			ui.Hint("Local commands still work; remote ones need the server.")
		} else {
			ui.Success("Server %s is up", cfg.BaseURL())
		}

		ui.Println()
		ui.Title("Next steps:")
		ui.Println("1. linkedink register")
		ui.Println("2. linkedink login")
		ui.Println("3. linkedink upload --file posts.txt")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	rootCmd.AddCommand(auth.RegisterCmd)
	rootCmd.AddCommand(auth.LoginCmd)
	rootCmd.AddCommand(auth.LogoutCmd)

	rootCmd.AddCommand(post.DashboardCmd)
	rootCmd.AddCommand(post.UploadCmd)
	rootCmd.AddCommand(post.AnalyzeCmd)
	rootCmd.AddCommand(post.GenerateCmd)
	rootCmd.AddCommand(post.ShowCmd)
	rootCmd.AddCommand(post.ComposeCmd)
	rootCmd.AddCommand(post.TemplatesCmd)

	rootCmd.AddCommand(remote.RemoteCmd)
	remote.RemoteCmd.AddCommand(
		remote.RegisterCmd,
		remote.LoginCmd,
		remote.LogoutCmd,
		remote.MeCmd,
		remote.UploadCmd,
		remote.AnalyzeCmd,
		remote.GenerateCmd,
		remote.PostsCmd,
	)
}
