package post

import (
	"strings"

	"github.com/spf13/cobra"

	"linkedink/cmd/client/cmd/types"
	"linkedink/cmd/client/cmd/ui"
	"linkedink/internal/domain/style"
)

var AnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the style of your uploaded posts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		ui.Hint("Analyzing your writing style...")
		p, err := app.Analyze(cmd.Context())
		if err != nil {
			return err
		}

		ui.Success("Style analysis complete")
		PrintProfile(p)
		return nil
	},
}

func PrintProfile(p style.Profile) {
	ui.Printf("Tone:          %s\n", p.Tone)
	ui.Printf("Average words: %d\n", p.AvgLength)
	ui.Printf("Common words:  %s\n", strings.Join(p.CommonWords, ", "))
	ui.Printf("Structure:     %s\n", p.Structure)
}
