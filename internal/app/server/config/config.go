package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"
)

const (
	envPath = ".env"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress      = ":8080"
	defaultMigrations      = "migrations"
	defaultShutdownTimeout = 10 * time.Second
	defaultTokenTTL        = 24 * time.Hour
	defaultLoginRate       = 10
	defaultLoginBurst      = 5
	defaultAnalysisDelay   = 3 * time.Second
	defaultGenerationDelay = 2 * time.Second
)

var ErrNoSecret = errors.New("SECRET must be set outside the local environment")

type Config struct {
	Env        string
	DB         db
	Server     server
	Logger     logger
	Auth       auth
	Simulation simulation
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

type logger struct {
	// LogLevel overrides the level implied by Env when set.
	LogLevel string `env:"LOG_LEVEL"`
}

type auth struct {
	Secret   string        `env:"SECRET"`
	TokenTTL time.Duration `env:"TOKEN_TTL"`
	// LoginRatePerMinute bounds /token/ attempts per client address.
	LoginRatePerMinute int `env:"LOGIN_RATE_PER_MINUTE"`
	LoginBurst         int `env:"LOGIN_RATE_BURST"`
}

type simulation struct {
	AnalysisDelay   time.Duration `env:"ANALYSIS_DELAY"`
	GenerationDelay time.Duration `env:"GENERATION_DELAY"`
}

// localSecret signs tokens for local runs only.
const localSecret = "linkedink-local-secret"

func MustLoad() *Config {
	cfg, err := Load(envPath)
	if err != nil {
		panic(fmt.Sprintf("server config: %v", err))
	}
	return cfg
}

// Load reads envPath when present and then the environment. Missing
// values fall back to defaults suitable for a local run.
func Load(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", EnvLocal)
	v.SetDefault("RUN_ADDRESS", defaultRunAddress)
	v.SetDefault("MIGRATIONS_PATH", defaultMigrations)
	v.SetDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	v.SetDefault("TOKEN_TTL", defaultTokenTTL)
	v.SetDefault("LOGIN_RATE_PER_MINUTE", defaultLoginRate)
	v.SetDefault("LOGIN_RATE_BURST", defaultLoginBurst)
	v.SetDefault("ANALYSIS_DELAY", defaultAnalysisDelay)
	v.SetDefault("GENERATION_DELAY", defaultGenerationDelay)

	cfg := &Config{
		Env: v.GetString("APP_ENV"),
		DB: db{
			DatabaseURI: v.GetString("DATABASE_URI"),
			Migrations:  v.GetString("MIGRATIONS_PATH"),
		},
		Server: server{
			RunAddress:      v.GetString("RUN_ADDRESS"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Logger: logger{LogLevel: v.GetString("LOG_LEVEL")},
		Auth: auth{
			Secret:             v.GetString("SECRET"),
			TokenTTL:           v.GetDuration("TOKEN_TTL"),
			LoginRatePerMinute: v.GetInt("LOGIN_RATE_PER_MINUTE"),
			LoginBurst:         v.GetInt("LOGIN_RATE_BURST"),
		},
		Simulation: simulation{
			AnalysisDelay:   v.GetDuration("ANALYSIS_DELAY"),
			GenerationDelay: v.GetDuration("GENERATION_DELAY"),
		},
	}

	if cfg.Auth.Secret == "" {
		if cfg.Env != EnvLocal {
			return nil, ErrNoSecret
		}
		cfg.Auth.Secret = localSecret
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown APP_ENV %q", c.Env)
	}
	if c.DB.DatabaseURI == "" {
		return errors.New("DATABASE_URI must not be empty")
	}
	if c.Server.RunAddress == "" {
		return errors.New("RUN_ADDRESS must not be empty")
	}
	if c.Logger.LogLevel != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(c.Logger.LogLevel)); err != nil {
			return fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.Auth.LoginRatePerMinute <= 0 || c.Auth.LoginBurst <= 0 {
		return errors.New("login rate limit must be positive")
	}
	if c.Simulation.AnalysisDelay < 0 || c.Simulation.GenerationDelay < 0 {
		return errors.New("simulation delays must not be negative")
	}
	return nil
}
