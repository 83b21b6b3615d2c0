package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"linkedink/cmd/client/cmd/types"
	"linkedink/cmd/client/cmd/ui"
	"linkedink/internal/app/client"
	"linkedink/internal/app/client/config"
	"linkedink/internal/task"
	"linkedink/internal/utils/logger"
)

var (
	cfgFile   string
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	debug     bool
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "linkedink",
	Short: "LinkedInk - LinkedIn posts in your own voice",
	Long: `LinkedInk learns the style of posts you have already written and drafts
new LinkedIn posts that sound like you.

Typical flow: register, login, upload your posts, analyze, generate.
Everything is kept in a local profile; the "remote" commands talk to a
LinkedInk server instead.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}

	if errors.Is(err, task.ErrCancelled) {
		ui.Warn("Cancelled, nothing was saved.")
	} else {
		ui.Fail(err)
	}
	stop()
	os.Exit(1)
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log = logger.NewCLI(debug, cfg.LogLevel)

	if err := cfg.EnsureDirs(); err != nil {
		return fmt.Errorf("create profile directory: %w", err)
	}

	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("open profile: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func closeApp() {
	if app == nil {
		return
	}
	if err := app.Close(); err != nil {
		log.Warn("close profile", slog.String("error", err.Error()))
	}
	app = nil
}

func init() {
	cobra.OnFinalize(closeApp)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a .env file with settings")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "LinkedInk server address (host:port)")
}
