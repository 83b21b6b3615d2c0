package logger

import (
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"linkedink/internal/app/server/config"
	"linkedink/internal/utils/logger/slogpretty"
)

// New returns the logger for env: coloured text for local runs, JSON
// otherwise. Only prod drops debug records unless level says otherwise.
func New(env, level string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog(levelOr(level, slog.LevelDebug))
	case config.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: levelOr(level, slog.LevelDebug)}),
		)
	case config.EnvProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: levelOr(level, slog.LevelInfo)}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: levelOr(level, slog.LevelInfo)}),
		)
	}

	return log
}

// NewCLI logs to stderr so command output on stdout stays clean. debug wins
// over level; with neither only warnings and errors are shown.
func NewCLI(debug bool, level string) *slog.Logger {
	lvl := levelOr(level, slog.LevelWarn)
	if debug {
		lvl = slog.LevelDebug
	}

	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: lvl},
	}
	return slog.New(opts.NewPrettyHandler(os.Stderr))
}

// ParseLevel accepts slog level names such as "debug" or "WARN".
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.TrimSpace(s)))
	return l, err
}

// levelOr парсит уровень из конфига, пустой или битый - значение по умолчанию
func levelOr(s string, def slog.Level) slog.Level {
	if strings.TrimSpace(s) == "" {
		return def
	}
	l, err := ParseLevel(s)
	if err != nil {
		return def
	}
	return l
}

func setupPrettySlog(level slog.Level) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: level},
	}
	return slog.New(opts.NewPrettyHandler(os.Stdout))
}
