package remote

import (
	"github.com/spf13/cobra"

	"linkedink/cmd/client/cmd/auth"
	"linkedink/cmd/client/cmd/post"
	"linkedink/cmd/client/cmd/types"
	"linkedink/cmd/client/cmd/ui"
	"linkedink/internal/app/client"
	"linkedink/internal/domain/account"
	"linkedink/internal/domain/generator"
)

// RemoteCmd - родительская команда для работы с сервером LinkedInk
var RemoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Work with a LinkedInk server",
	Long: `Same flow as the local commands, executed by the server configured with
--server or SERVER_ADDRESS. The access token is kept in the local profile.`,
}

func remoteFrom(cmd *cobra.Command) (*client.Remote, error) {
	app, err := types.App(cmd.Context())
	if err != nil {
		return nil, err
	}
	return app.Remote(), nil
}

var registerInput account.RegisterInput

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account on the server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		r, err := remoteFrom(cmd)
		if err != nil {
			return err
		}

		in := registerInput
		if err := auth.PromptRegistration(&in); err != nil {
			return err
		}

		view, err := r.Register(cmd.Context(), in)
		if err != nil {
			return err
		}

		ui.Success("Account %s created on the server. Please log in.", view.Email)
		return nil
	},
}

var (
	loginEmail    string
	loginPassword string
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Get an access token from the server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		r, err := remoteFrom(cmd)
		if err != nil {
			return err
		}

		email, password := loginEmail, loginPassword
		if err := auth.PromptCredentials(&email, &password); err != nil {
			return err
		}

		token, err := r.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		ui.Success("Logged in to the server")
		ui.Hint("Token valid until %s", token.ExpiresAt.Local().Format("2006-01-02 15:04"))
		return nil
	},
}

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke the server token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		r, err := remoteFrom(cmd)
		if err != nil {
			return err
		}

		if err := r.Logout(cmd.Context()); err != nil {
			ui.Warn("Server did not confirm the logout: %v", err)
		}
		ui.Success("Logged out from the server")
		return nil
	},
}

var MeCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the server account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		r, err := remoteFrom(cmd)
		if err != nil {
			return err
		}

		v, err := r.Me(cmd.Context())
		if err != nil {
			return err
		}

		ui.Title(v.Name)
		ui.Printf("Email:          %s\n", v.Email)
		ui.Printf("Posts uploaded: %d\n", v.PostsCount)
		ui.Printf("Style profile:  %t\n", v.HasProfile)
		return nil
	},
}

var uploadFile string

var UploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload posts to the server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		r, err := remoteFrom(cmd)
		if err != nil {
			return err
		}

		raw, err := post.ReadPosts(uploadFile)
		if err != nil {
			return err
		}

		n, err := r.Upload(cmd.Context(), raw)
		if err != nil {
			return err
		}

		ui.Success("Uploaded %d posts successfully!", n)
		return nil
	},
}

var AnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the uploaded posts on the server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		r, err := remoteFrom(cmd)
		if err != nil {
			return err
		}

		ui.Hint("Analyzing your writing style...")
		p, err := r.Analyze(cmd.Context())
		if err != nil {
			return err
		}

		ui.Success("Style analysis complete")
		post.PrintProfile(p)
		return nil
	},
}

var (
	generateTopic    string
	generateLanguage string
)

var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a post on the server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		r, err := remoteFrom(cmd)
		if err != nil {
			return err
		}

		ui.Hint("Generating your post...")
		p, err := r.Generate(cmd.Context(), generateTopic, generateLanguage)
		if err != nil {
			return err
		}

		post.PrintPost(p.Content)
		return nil
	},
}

var PostsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List posts generated on the server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		r, err := remoteFrom(cmd)
		if err != nil {
			return err
		}

		posts, err := r.Posts(cmd.Context())
		if err != nil {
			return err
		}
		if len(posts) == 0 {
			ui.Hint("Nothing generated yet.")
			return nil
		}

		for _, p := range posts {
			ui.Title(p.GeneratedAt.Local().Format("2006-01-02 15:04") + "  " + p.Topic)
			ui.Println(p.Content)
			ui.Println()
		}
		return nil
	},
}

func init() {
	RegisterCmd.Flags().StringVar(&registerInput.Name, "name", "", "full name")
	RegisterCmd.Flags().StringVar(&registerInput.Email, "email", "", "email address")
	RegisterCmd.Flags().StringVar(&registerInput.Password, "password", "", "password (prompted when empty)")
	RegisterCmd.Flags().StringVar(&registerInput.ConfirmPassword, "confirm-password", "", "password again (prompted when empty)")

	LoginCmd.Flags().StringVar(&loginEmail, "email", "", "email address")
	LoginCmd.Flags().StringVar(&loginPassword, "password", "", "password (prompted when empty)")

	UploadCmd.Flags().StringVarP(&uploadFile, "file", "f", "", "text file with posts separated by ---")

	GenerateCmd.Flags().StringVarP(&generateTopic, "topic", "t", "", "what the post is about")
	GenerateCmd.Flags().StringVarP(&generateLanguage, "language", "l", generator.DefaultLanguage, "post language")
}
