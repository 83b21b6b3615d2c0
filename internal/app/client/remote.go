package client

import (
	"context"
	"fmt"

	"linkedink/internal/app/client/profile"
	"linkedink/internal/domain/account"
	"linkedink/internal/domain/apperr"
	"linkedink/internal/domain/generator"
	"linkedink/internal/domain/style"
)

// Remote exposes the backend API. The bearer token lives in the local
// profile under the "access" key.
type Remote struct {
	app *App
}

func (a *App) Remote() *Remote {
	return &Remote{app: a}
}

func (r *Remote) Health(ctx context.Context) error {
	return r.app.httpClient.HealthCheck(ctx)
}

func (r *Remote) Register(ctx context.Context, in account.RegisterInput) (account.View, error) {
	return r.app.httpClient.Register(ctx, in)
}

func (r *Remote) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	token, err := r.app.httpClient.Login(ctx, email, password)
	if err != nil {
		return TokenResponse{}, err
	}

	if err := r.app.kv.Put(ctx, profile.KeyAccessToken, []byte(token.Access)); err != nil {
		return TokenResponse{}, fmt.Errorf("save backend token: %w", err)
	}

	r.app.log.Info("logged in to backend", "expires_at", token.ExpiresAt)
	return token, nil
}

// Logout revokes the token on the backend and forgets it locally. The local
// copy is dropped even when the backend call fails.
func (r *Remote) Logout(ctx context.Context) error {
	if !r.LoggedIn() {
		return nil
	}

	remoteErr := r.app.httpClient.Logout(ctx)

	r.app.httpClient.SetToken("")
	if err := r.app.kv.Delete(ctx, profile.KeyAccessToken); err != nil {
		return fmt.Errorf("forget backend token: %w", err)
	}

	return remoteErr
}

func (r *Remote) LoggedIn() bool {
	return r.app.httpClient.token != ""
}

func (r *Remote) requireToken() error {
	if !r.LoggedIn() {
		return apperr.Auth(CodeNotLoggedIn, "Please run remote login first")
	}
	return nil
}

func (r *Remote) Me(ctx context.Context) (account.View, error) {
	if err := r.requireToken(); err != nil {
		return account.View{}, err
	}
	return r.app.httpClient.Me(ctx)
}

func (r *Remote) Upload(ctx context.Context, raw string) (int, error) {
	if err := r.requireToken(); err != nil {
		return 0, err
	}
	return r.app.httpClient.Upload(ctx, raw)
}

func (r *Remote) Analyze(ctx context.Context) (style.Profile, error) {
	if err := r.requireToken(); err != nil {
		return style.Profile{}, err
	}
	return r.app.httpClient.Analyze(ctx)
}

func (r *Remote) Style(ctx context.Context) (style.Profile, error) {
	if err := r.requireToken(); err != nil {
		return style.Profile{}, err
	}
	return r.app.httpClient.Style(ctx)
}

func (r *Remote) Generate(ctx context.Context, topic, language string) (generator.Post, error) {
	if err := r.requireToken(); err != nil {
		return generator.Post{}, err
	}
	return r.app.httpClient.Generate(ctx, topic, language)
}

func (r *Remote) Posts(ctx context.Context) ([]generator.Post, error) {
	if err := r.requireToken(); err != nil {
		return nil, err
	}
	return r.app.httpClient.Posts(ctx)
}

func (r *Remote) Templates(ctx context.Context) ([]generator.Template, error) {
	return r.app.httpClient.Templates(ctx)
}
