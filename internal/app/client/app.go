package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/exp/slog"

	"linkedink/internal/app/client/config"
	"linkedink/internal/app/client/profile"
	"linkedink/internal/domain/account"
	"linkedink/internal/domain/apperr"
	"linkedink/internal/domain/corpus"
	"linkedink/internal/domain/generator"
	"linkedink/internal/domain/style"
	"linkedink/internal/storage/kv"
	"linkedink/internal/storage/kv/sqlite"
)

const (
	CodeNotLoggedIn = "not_logged_in"
	MsgNotLoggedIn  = "Please log in first"

	CodeNothingGenerated = "nothing_generated"
	MsgNothingGenerated  = "No generated post yet. Run generate first"
)

var clipboardWriteAll = clipboard.WriteAll

// App is the CLI's view of the product: every screen of the web front-end is
// a method here, backed by the local profile.
type App struct {
	config      *config.Config
	log         *slog.Logger
	kv          kv.Store
	profile     *profile.Store
	uploads     *corpus.Service
	analysis    *style.Service
	generation  *generator.Service
	generations *profile.GenerationRepository
	httpClient  *httpClient
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	if err := cfg.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("create profile directory: %w", err)
	}

	store, err := sqlite.New(cfg.DataPath)
	if err != nil {
		return nil, err
	}

	app, err := NewWithStore(cfg, log, store)
	if err != nil {
		store.Close()
		return nil, err
	}
	return app, nil
}

// NewWithStore wires the app over an already open profile store.
func NewWithStore(cfg *config.Config, log *slog.Logger, store kv.Store) (*App, error) {
	prof := profile.NewStore(store, log.With(slog.String("component", "profile")))
	posts := profile.NewPostRepository(store)
	styles := profile.NewStyleRepository(store)
	generations := profile.NewGenerationRepository(store)

	app := &App{
		config:  cfg,
		log:     log,
		kv:      store,
		profile: prof,
		uploads: corpus.NewService(posts, prof.Patcher(), log.With(slog.String("component", "upload")),
			corpus.WithDelay(cfg.UploadDelay)),
		analysis: style.NewService(posts, styles, prof.Patcher(), log.With(slog.String("component", "analysis")),
			style.WithDelay(cfg.AnalysisDelay)),
		generation: generator.NewService(generations, styles, log.With(slog.String("component", "generator")),
			generator.WithDelay(cfg.GenerationDelay)),
		generations: generations,
		httpClient:  NewHTTPClient(cfg, log.With(slog.String("component", "http"))),
	}

	token, err := app.loadToken(context.Background())
	if err != nil {
		return nil, err
	}
	if token != "" {
		app.httpClient.SetToken(token)
		log.Debug("backend token loaded from profile")
	}

	return app, nil
}

func (a *App) Close() error {
	return a.kv.Close()
}

func (a *App) Register(ctx context.Context, in account.RegisterInput) (account.View, error) {
	return a.profile.Register(ctx, in)
}

func (a *App) Login(ctx context.Context, email, password string) (account.View, error) {
	return a.profile.Login(ctx, email, password)
}

func (a *App) Logout(ctx context.Context) error {
	return a.profile.Logout(ctx)
}

func (a *App) CurrentUser(ctx context.Context) (*account.View, error) {
	return a.profile.CurrentUser(ctx)
}

func (a *App) requireUser(ctx context.Context) (account.View, error) {
	user, err := a.profile.CurrentUser(ctx)
	if err != nil {
		return account.View{}, err
	}
	if user == nil {
		return account.View{}, apperr.Auth(CodeNotLoggedIn, MsgNotLoggedIn)
	}
	return *user, nil
}

type Stage string

const (
	StageUpload   Stage = "upload"
	StageAnalyze  Stage = "analyze"
	StageGenerate Stage = "generate"
)

type Dashboard struct {
	User      account.View
	FirstName string
	Stage     Stage
}

func (a *App) Dashboard(ctx context.Context) (Dashboard, error) {
	user, err := a.requireUser(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	d := Dashboard{User: user, FirstName: firstName(user.Name)}
	switch {
	case user.PostsCount == 0:
		d.Stage = StageUpload
	case !user.HasProfile:
		d.Stage = StageAnalyze
	default:
		d.Stage = StageGenerate
	}
	return d, nil
}

func firstName(name string) string {
	first, _, _ := strings.Cut(name, " ")
	return first
}

// Upload stores the posts in raw as the style samples. Ctrl-C during the
// simulated processing leaves the profile untouched.
func (a *App) Upload(ctx context.Context, raw string) (int, error) {
	user, err := a.requireUser(ctx)
	if err != nil {
		return 0, err
	}
	return a.uploads.Upload(ctx, user.ID, raw)
}

func (a *App) Analyze(ctx context.Context) (style.Profile, error) {
	user, err := a.requireUser(ctx)
	if err != nil {
		return style.Profile{}, err
	}
	return a.analysis.Analyze(ctx, user.ID)
}

func (a *App) Generate(ctx context.Context, topic, language string) (generator.Post, error) {
	user, err := a.requireUser(ctx)
	if err != nil {
		return generator.Post{}, err
	}
	return a.generation.Generate(ctx, user.ID, topic, language)
}

type GeneratedView struct {
	Request generator.Request
	Text    string
	Stats   generator.Stats
}

// LastGenerated renders the last generation again from its stored request.
func (a *App) LastGenerated(ctx context.Context) (GeneratedView, error) {
	if _, err := a.requireUser(ctx); err != nil {
		return GeneratedView{}, err
	}

	req, err := a.generations.Last(ctx)
	if errors.Is(err, kv.ErrNotFound) {
		return GeneratedView{}, apperr.NotFound(CodeNothingGenerated, MsgNothingGenerated)
	}
	if err != nil {
		return GeneratedView{}, err
	}

	text := req.Render()
	return GeneratedView{Request: req, Text: text, Stats: generator.Measure(text)}, nil
}

// Copy puts text on the system clipboard.
func (a *App) Copy(text string) error {
	if err := clipboardWriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

func (a *App) Compose(o generator.Options) (string, error) {
	return generator.Compose(o)
}

func (a *App) Templates() []generator.Template {
	return generator.Templates()
}

func (a *App) loadToken(ctx context.Context) (string, error) {
	e, err := a.kv.Get(ctx, profile.KeyAccessToken)
	if errors.Is(err, kv.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load backend token: %w", err)
	}
	return string(e.Value), nil
}
