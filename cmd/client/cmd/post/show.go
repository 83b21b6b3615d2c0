package post

import (
	"time"

	"github.com/spf13/cobra"

	"linkedink/cmd/client/cmd/types"
	"linkedink/cmd/client/cmd/ui"
)

var showCopy bool

var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the last generated post",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		v, err := app.LastGenerated(cmd.Context())
		if err != nil {
			return err
		}

		at := time.UnixMilli(v.Request.Timestamp).Format(time.DateTime)
		ui.Title("Topic: " + v.Request.Topic)
		ui.Hint("Language: %s · generated %s", v.Request.Language, at)
		PrintPost(v.Text)

		if showCopy {
			if err := app.Copy(v.Text); err != nil {
				return err
			}
			ui.Success("Copied to clipboard!")
		}
		return nil
	},
}

func init() {
	ShowCmd.Flags().BoolVarP(&showCopy, "copy", "c", false, "copy the post to the clipboard")
}
