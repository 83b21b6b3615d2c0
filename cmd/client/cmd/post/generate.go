package post

import (
	"github.com/spf13/cobra"

	"linkedink/cmd/client/cmd/types"
	"linkedink/cmd/client/cmd/ui"
	"linkedink/internal/domain/generator"
)

var (
	generateTopic    string
	generateLanguage string
)

var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a post in your style",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		topic := generateTopic
		if topic == "" {
			if topic, err = ui.Prompt("Topic"); err != nil {
				return err
			}
		}

		ui.Hint("Generating your post...")
		p, err := app.Generate(cmd.Context(), topic, generateLanguage)
		if err != nil {
			return err
		}

		PrintPost(p.Content)
		ui.Hint("Run `linkedink show --copy` to copy it.")
		return nil
	},
}

func PrintPost(text string) {
	ui.Println()
	ui.Println(text)
	ui.Println()

	s := generator.Measure(text)
	ui.Hint("%d words · %d/%d characters", s.Words, s.Characters, generator.MaxCharacters)
	if !s.WithinLimit {
		ui.Warn("Longer than LinkedIn allows.")
	}
}

func init() {
	GenerateCmd.Flags().StringVarP(&generateTopic, "topic", "t", "", "what the post is about")
	GenerateCmd.Flags().StringVarP(&generateLanguage, "language", "l", generator.DefaultLanguage, "post language")
}
