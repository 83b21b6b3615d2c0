package post

import (
	"github.com/spf13/cobra"

	"linkedink/cmd/client/cmd/types"
	"linkedink/cmd/client/cmd/ui"
	"linkedink/internal/domain/generator"
)

var (
	composeTopic      string
	composeTone       string
	composeLength     string
	composeNoEmoji    bool
	composeNoHashtags bool
	composeCopy       bool
)

var ComposeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Draft a post with a chosen tone and length",
	Long: `compose drafts a post without a style profile. Tones: professional,
casual, inspirational, thought-leadership. Lengths: short, medium, long.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		tone, err := generator.ParseTone(composeTone)
		if err != nil {
			return err
		}
		length, err := generator.ParseLength(composeLength)
		if err != nil {
			return err
		}

		o := generator.DefaultOptions(composeTopic)
		o.Tone = tone
		o.Length = length
		o.Emojis = !composeNoEmoji
		o.Hashtags = !composeNoHashtags

		text, err := app.Compose(o)
		if err != nil {
			return err
		}

		PrintPost(text)
		if composeCopy {
			if err := app.Copy(text); err != nil {
				return err
			}
			ui.Success("Copied to clipboard!")
		}
		return nil
	},
}

func init() {
	ComposeCmd.Flags().StringVarP(&composeTopic, "topic", "t", "", "what the post is about")
	ComposeCmd.Flags().StringVar(&composeTone, "tone", string(generator.ToneProfessional), "writing tone")
	ComposeCmd.Flags().StringVar(&composeLength, "length", string(generator.LengthMedium), "post length")
	ComposeCmd.Flags().BoolVar(&composeNoEmoji, "no-emoji", false, "leave emojis out")
	ComposeCmd.Flags().BoolVar(&composeNoHashtags, "no-hashtags", false, "leave hashtags out")
	ComposeCmd.Flags().BoolVarP(&composeCopy, "copy", "c", false, "copy the draft to the clipboard")
}
