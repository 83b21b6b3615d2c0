package post

import (
	"fmt"

	"github.com/spf13/cobra"

	"linkedink/cmd/client/cmd/types"
	"linkedink/cmd/client/cmd/ui"
	"linkedink/internal/domain/apperr"
	"linkedink/internal/domain/generator"
)

var templateID int

var TemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List post templates, or print one with --id",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		if templateID == 0 {
			for _, t := range app.Templates() {
				ui.Printf("%2d  %-28s %s\n", t.ID, t.Title, t.Category)
			}
			ui.Hint("Use --id N to print a template.")
			return nil
		}

		t, ok := generator.TemplateByID(templateID)
		if !ok {
			return apperr.NotFound("no_template", fmt.Sprintf("No template with id %d", templateID))
		}

		ui.Title(t.Title)
		ui.Println()
		ui.Println(t.Content)
		return nil
	},
}

func init() {
	TemplatesCmd.Flags().IntVar(&templateID, "id", 0, "template to print")
}
