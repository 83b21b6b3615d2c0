// Routes:
//
//	GET  /api/v1/health     # liveness and database reachability
//	POST /register/         # create an account (public)
//	POST /token/            # email + password -> bearer token (public, rate limited)
//	POST /logout/           # revoke the bearer token (auth)
//	GET  /me/               # current account (auth)
//	POST /posts/upload/     # replace sample posts (auth)
//	GET  /posts/            # generated posts, newest first (auth)
//	POST /posts/generate/   # generate a post (auth)
//	POST /style/analyze/    # build the style profile (auth)
//	GET  /style/            # current style profile (auth)
//	GET  /templates/        # template gallery (public)
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	"linkedink/internal/app/server/api/http/health"
	"linkedink/internal/app/server/api/http/middleware"
	"linkedink/internal/app/server/api/http/middleware/auth"
	"linkedink/internal/app/server/api/http/middleware/logger"
	"linkedink/internal/app/server/api/http/middleware/ratelimit"
	postsAPI "linkedink/internal/app/server/api/http/posts"
	styleAPI "linkedink/internal/app/server/api/http/style"
	templatesAPI "linkedink/internal/app/server/api/http/templates"
	userAPI "linkedink/internal/app/server/api/http/user"
	"linkedink/internal/domain/account"
	"linkedink/internal/domain/corpus"
	"linkedink/internal/domain/generator"
	"linkedink/internal/domain/session"
	"linkedink/internal/domain/style"
)

const (
	title   = "LinkedInk API"
	version = "1.0.0"
)

// Services are the domain services the routes delegate to.
type Services struct {
	Accounts  account.Servicer
	Sessions  session.Servicer
	Corpus    corpus.Servicer
	Style     style.Servicer
	Generator generator.Servicer
	// DB is pinged by the health check when set.
	DB health.Pinger
}

// Limits configures login throttling.
type Limits struct {
	LoginPerMinute int
	LoginBurst     int
}

type Handlers struct {
	Health    *health.Handler
	User      *userAPI.Handler
	Posts     *postsAPI.Handler
	Style     *styleAPI.Handler
	Templates *templatesAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(services Services, limits Limits, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	// Forwarding headers are not trusted: the login limiter keys on the
	// peer address.
	mux.Use(chimw.Recoverer)

	config := huma.DefaultConfig(title, version)
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}

	API := humachi.New(mux, config)

	h := handlers(services, limits, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Posts.SetupRoutes(API)
	h.Style.SetupRoutes(API)
	h.Templates.SetupRoutes(API)

	return mux
}

func handlers(s Services, limits Limits, log *slog.Logger) *Handlers {
	authMW := auth.New(s.Sessions, log)
	loggerMW := logger.New(log)
	limiter := ratelimit.New(limits.LoginPerMinute, limits.LoginBurst, log)
	middlewares := middleware.NewContainer()

	healthHandler := health.NewHandler(s.DB, log, middlewares.Add(loggerMW.Middleware()).GetAllAndClear())

	userHandler := userAPI.NewHandler(s.Accounts, s.Sessions, log,
		middlewares.Add(loggerMW.Middleware()).GetAllAndClear(),
		middlewares.Add(loggerMW.Middleware(), limiter.Middleware()).GetAllAndClear(),
		middlewares.Add(loggerMW.Middleware(), authMW.Middleware()).GetAllAndClear(),
	)

	postsHandler := postsAPI.NewHandler(s.Corpus, s.Generator, log,
		middlewares.Add(loggerMW.Middleware(), authMW.Middleware()).GetAllAndClear())

	styleHandler := styleAPI.NewHandler(s.Style, log,
		middlewares.Add(loggerMW.Middleware(), authMW.Middleware()).GetAllAndClear())

	templatesHandler := templatesAPI.NewHandler(log, middlewares.Add(loggerMW.Middleware()).GetAllAndClear())

	return &Handlers{
		Health:    healthHandler,
		User:      userHandler,
		Posts:     postsHandler,
		Style:     styleHandler,
		Templates: templatesHandler,
	}
}
