package post

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"linkedink/cmd/client/cmd/types"
	"linkedink/cmd/client/cmd/ui"
)

var uploadFile string

var UploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload posts you have written",
	Long: `Reads your posts from --file, or from stdin when no file is given.
Separate posts with a line containing only ---. At least 3 posts are needed.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		raw, err := ReadPosts(uploadFile)
		if err != nil {
			return err
		}

		ui.Hint("Uploading posts...")
		n, err := app.Upload(cmd.Context(), raw)
		if err != nil {
			return err
		}

		ui.Success("Uploaded %d posts successfully!", n)
		return nil
	},
}

// ReadPosts returns the contents of path, or all of stdin for an empty path.
func ReadPosts(path string) (string, error) {
	if path == "" {
		ui.Hint("Paste your posts separated by ---, then press Ctrl-D.")
		return ui.ReadAll()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read posts: %w", err)
	}
	return string(b), nil
}

func init() {
	UploadCmd.Flags().StringVarP(&uploadFile, "file", "f", "", "text file with posts separated by ---")
}
