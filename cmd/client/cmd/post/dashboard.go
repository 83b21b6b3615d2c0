package post

import (
	"github.com/spf13/cobra"

	"linkedink/cmd/client/cmd/types"
	"linkedink/cmd/client/cmd/ui"
	"linkedink/internal/app/client"
)

var DashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your progress and the next step",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		d, err := app.Dashboard(cmd.Context())
		if err != nil {
			return err
		}

		ui.Title("Welcome, " + d.FirstName + " 👋")
		ui.Printf("Posts uploaded: %d\n", d.User.PostsCount)
		if d.User.HasProfile {
			ui.Println("Style profile:  ready")
		} else {
			ui.Println("Style profile:  not analyzed")
		}
		ui.Println()

		switch d.Stage {
		case client.StageUpload:
			ui.Println("Step 1: upload at least 3 of your LinkedIn posts")
			ui.Hint("linkedink upload --file posts.txt")
		case client.StageAnalyze:
			ui.Println("Step 2: analyze your writing style")
			ui.Hint("linkedink analyze")
		default:
			ui.Println("Ready: generate a post on any topic")
			ui.Hint(`linkedink generate --topic "What I learned this year"`)
		}
		return nil
	},
}
