package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"
)

const (
	defaultServerAddress   = "localhost:8080"
	defaultEnv             = "local"
	defaultConfigDir       = ".linkedink"
	defaultDataFile        = "profile.db"
	defaultUploadDelay     = 1500 * time.Millisecond
	defaultAnalysisDelay   = 3 * time.Second
	defaultGenerationDelay = 2 * time.Second
	defaultRequestTimeout  = 30 * time.Second
)

type Config struct {
	Env             string
	ServerAddress   string
	LogLevel        string
	ConfigDir       string
	DataPath        string
	EnableTLS       bool
	RequestTimeout  time.Duration
	UploadDelay     time.Duration
	AnalysisDelay   time.Duration
	GenerationDelay time.Duration
}

// MustLoad загружает конфигурацию клиента
func MustLoad() *Config {
	cfg, err := Load(findEnvFile())
	if err != nil {
		panic(fmt.Sprintf("client config: %v", err))
	}
	return cfg
}

// LoadDefault loads the .env found near the working directory, if any.
func LoadDefault() (*Config, error) {
	return Load(findEnvFile())
}

// Load reads envPath when it exists, then the process environment.
func Load(envPath string) (*Config, error) {
	if envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return nil, fmt.Errorf("load %s: %w", envPath, err)
			}
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	v.SetDefault("CONFIG_DIR", defaultConfigDir)
	v.SetDefault("ENABLE_TLS", false)
	v.SetDefault("REQUEST_TIMEOUT", defaultRequestTimeout)
	v.SetDefault("UPLOAD_DELAY", defaultUploadDelay)
	v.SetDefault("ANALYSIS_DELAY", defaultAnalysisDelay)
	v.SetDefault("GENERATION_DELAY", defaultGenerationDelay)

	configDir := v.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, configDir)
	}

	dataPath := v.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, defaultDataFile)
	}

	cfg := &Config{
		Env:             v.GetString("APP_ENV"),
		ServerAddress:   v.GetString("SERVER_ADDRESS"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		ConfigDir:       configDir,
		DataPath:        dataPath,
		EnableTLS:       v.GetBool("ENABLE_TLS"),
		RequestTimeout:  v.GetDuration("REQUEST_TIMEOUT"),
		UploadDelay:     v.GetDuration("UPLOAD_DELAY"),
		AnalysisDelay:   v.GetDuration("ANALYSIS_DELAY"),
		GenerationDelay: v.GetDuration("GENERATION_DELAY"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findEnvFile ищет .env рядом с местом запуска или уровнем выше
func findEnvFile() string {
	for _, p := range []string{".env", "../.env"} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("SERVER_ADDRESS must not be empty")
	}
	if c.DataPath == "" {
		return fmt.Errorf("DATA_PATH must not be empty")
	}
	if c.LogLevel != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}
	for name, d := range map[string]time.Duration{
		"UPLOAD_DELAY":     c.UploadDelay,
		"ANALYSIS_DELAY":   c.AnalysisDelay,
		"GENERATION_DELAY": c.GenerationDelay,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	return nil
}

// EnsureDirs creates the directory that holds the profile database.
func (c *Config) EnsureDirs() error {
	return os.MkdirAll(filepath.Dir(c.DataPath), 0o700)
}

// BaseURL is the backend root the remote commands talk to.
func (c *Config) BaseURL() string {
	scheme := "http://"
	if c.EnableTLS {
		scheme = "https://"
	}
	return scheme + c.ServerAddress
}

func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

func (c *Config) IsDev() bool {
	return c.Env == "dev"
}

func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
