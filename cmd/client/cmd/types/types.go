package types

import (
	"context"
	"errors"

	"linkedink/internal/app/client"
)

type contextKey string

const ClientAppKey contextKey = "clientApp"

var ErrNoApp = errors.New("application is not initialized")

// App returns the client application stored in ctx by the root command.
func App(ctx context.Context) (*client.App, error) {
	app, ok := ctx.Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, ErrNoApp
	}
	return app, nil
}
