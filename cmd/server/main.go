package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"linkedink/internal/app/server/api"
	"linkedink/internal/app/server/config"
	"linkedink/internal/domain/account"
	"linkedink/internal/domain/corpus"
	"linkedink/internal/domain/generator"
	"linkedink/internal/domain/session"
	"linkedink/internal/domain/style"
	"linkedink/internal/infrastructure/storage/postgres"
	"linkedink/internal/utils/logger"
)

const (
	// analysisLimit caps how many uploaded posts feed the analyzer.
	analysisLimit = 10
	purgeInterval = time.Hour
)

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env, conf.Logger.LogLevel)

	if err := run(conf, log); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(conf *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := postgres.New(ctx, conf)
	if err != nil {
		return err
	}
	defer storage.Close()

	accountRepo := postgres.NewAccountRepository(storage, log)
	sessionRepo := postgres.NewSessionRepository(storage, log)
	corpusRepo := postgres.NewCorpusRepository(storage, log)
	styleRepo := postgres.NewStyleRepository(storage, log)
	generatedRepo := postgres.NewGeneratedRepository(storage, log)

	accounts := account.NewService(accountRepo, account.NewRegisterValidator(), account.NewBcryptHasher(), log)

	services := api.Services{
		Accounts: accounts,
		Sessions: session.NewService(sessionRepo, conf.Auth.Secret, log, session.WithTTL(conf.Auth.TokenTTL)),
		Corpus:   corpus.NewService(corpusRepo, accounts, log, corpus.WithLimit(corpus.MaxPosts)),
		Style: style.NewService(corpusRepo, styleRepo, accounts, log,
			style.WithDelay(conf.Simulation.AnalysisDelay),
			style.WithLimit(analysisLimit),
		),
		Generator: generator.NewService(generatedRepo, styleRepo, log,
			generator.WithDelay(conf.Simulation.GenerationDelay),
		),
		DB: storage,
	}

	limits := api.Limits{
		LoginPerMinute: conf.Auth.LoginRatePerMinute,
		LoginBurst:     conf.Auth.LoginBurst,
	}

	srv := &http.Server{
		Addr:              conf.Server.RunAddress,
		Handler:           api.New(services, limits, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server started", slog.String("address", srv.Addr), slog.String("env", conf.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if _, err := sessionRepo.PurgeExpired(gctx); err != nil {
					log.Warn("session purge failed", slog.String("error", err.Error()))
				}
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
