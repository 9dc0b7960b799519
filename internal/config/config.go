package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	AppName    = "Lingua"
	AppVersion = "1.0.0"
)

// DefaultEnvFile is read before the process environment when present.
const DefaultEnvFile = ".env"

type Config struct {
	Addr            string        `env:"LINGUA_ADDR"             env-default:":5000"`
	DataDir         string        `env:"LINGUA_DATA_DIR"         env-default:"./data"`
	DBPath          string        `env:"LINGUA_DB_PATH"`
	StaticDir       string        `env:"LINGUA_STATIC_DIR"`
	LogLevel        string        `env:"LINGUA_LOG_LEVEL"        env-default:"info"`
	LogFormat       string        `env:"LINGUA_LOG_FORMAT"       env-default:"text"`
	CORSOrigins     []string      `env:"LINGUA_CORS_ORIGINS"     env-default:"*" env-separator:","`
	ShutdownTimeout time.Duration `env:"LINGUA_SHUTDOWN_TIMEOUT" env-default:"10s"`
	AI              AIConfig
}

// AIConfig describes the upstream model endpoint. The defaults target
// GitHub Models, which speaks the OpenAI chat completions protocol.
type AIConfig struct {
	Provider  string        `env:"LINGUA_AI_PROVIDER"   env-default:"compatible"`
	APIKey    string        `env:"LINGUA_AI_API_KEY"`
	BaseURL   string        `env:"LINGUA_AI_BASE_URL"   env-default:"https://models.github.ai/inference"`
	Model     string        `env:"LINGUA_AI_MODEL"      env-default:"openai/gpt-4o"`
	Timeout   time.Duration `env:"LINGUA_AI_TIMEOUT"    env-default:"60s"`
	RateLimit int           `env:"LINGUA_AI_RATE_LIMIT" env-default:"10"`
	ProxyURL  string        `env:"LINGUA_PROXY_URL"`

	// StartupCheck sends one test message to the provider at startup.
	StartupCheck bool `env:"LINGUA_AI_STARTUP_CHECK" env-default:"false"`
}

// Load reads DefaultEnvFile (if it exists) and the environment.
func Load() (Config, error) {
	return LoadFile(DefaultEnvFile)
}

// LoadFile reads configuration from a dotenv file and the environment.
// A missing file is not an error; configuration then comes from the
// environment and env-default tags only.
func LoadFile(envFile string) (Config, error) {
	var cfg Config

	if _, err := os.Stat(envFile); err == nil {
		if err := cleanenv.ReadConfig(envFile, &cfg); err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", envFile, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("config: read env: %w", err)
	}

	if cfg.AI.APIKey == "" {
		cfg.AI.APIKey = os.Getenv("GITHUB_TOKEN")
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "translations.db")
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = detectStaticDir()
	}
	cfg.DBPath = filepath.Clean(cfg.DBPath)
	cfg.DataDir = filepath.Clean(cfg.DataDir)
	cfg.StaticDir = filepath.Clean(cfg.StaticDir)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// Validate checks values that env-default tags cannot express.
func (c Config) Validate() error {
	switch c.AI.Provider {
	case "openai", "anthropic", "compatible":
	default:
		return fmt.Errorf("unknown ai provider %q", c.AI.Provider)
	}
	if c.AI.Model == "" {
		return errors.New("ai model is required")
	}
	if c.AI.Provider == "compatible" && c.AI.BaseURL == "" {
		return errors.New("ai base url is required for compatible provider")
	}
	if c.AI.RateLimit < 0 {
		return fmt.Errorf("ai rate limit must be >= 0 (got %d)", c.AI.RateLimit)
	}
	if c.AI.Timeout <= 0 {
		return fmt.Errorf("ai timeout must be > 0 (got %s)", c.AI.Timeout)
	}
	return nil
}

func detectStaticDir() string {
	candidates := []string{
		"./build",
		"../build",
		"./frontend/build",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./build"
}
