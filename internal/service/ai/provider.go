package ai

//go:generate mockgen -source=provider.go -destination=mock/provider_mock.go -package=mock

import (
	"context"
	"errors"
	"net/http"
	"time"

	"lingua/backend/internal/logger"
)

// Role tags a chat message for the model.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged entry of a prompt.
type Message struct {
	Role    Role
	Content string
}

// Options tunes a single completion. Zero values leave the provider default.
type Options struct {
	Task             string // translate, cultural_notes, chat, grammar; used for metrics and logs
	Temperature      float64
	MaxTokens        int64
	PresencePenalty  float64
	FrequencyPenalty float64
}

// Provider defines the interface for AI providers.
type Provider interface {
	// Test sends a test message and returns the response.
	Test(ctx context.Context) (string, error)
	// Name returns the provider name.
	Name() string
	// Complete sends messages and returns the reply text without streaming.
	Complete(ctx context.Context, messages []Message, opts Options) (string, error)
}

// Config holds the configuration for an AI provider.
type Config struct {
	Provider   string // openai, anthropic, compatible
	APIKey     string
	BaseURL    string // optional for openai/anthropic, required for compatible
	Model      string
	HTTPClient *http.Client // optional; carries timeout and proxy settings
}

// ProviderType constants
const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrMissingBaseURL  = errors.New("base URL is required for compatible provider")
	ErrMissingModel    = errors.New("model is required")
	ErrEmptyReply      = errors.New("model returned no choices")
)

// NewProvider creates a new AI provider based on the config.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.HTTPClient)
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.HTTPClient)
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return NewCompatibleProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.HTTPClient)
	default:
		return nil, ErrInvalidProvider
	}
}

// CheckConnection sends the provider's test message, bounded by timeout,
// and logs the outcome.
func CheckConnection(ctx context.Context, p Provider, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	reply, err := p.Test(ctx)
	elapsed := time.Since(start)
	if err != nil {
		logger.Warn("ai connection check failed", "module", "ai", "action", "test", "resource", "ai", "result", "failed", "provider", p.Name(), "duration_ms", elapsed.Milliseconds(), "error", err)
		return err
	}
	logger.Info("ai connection check passed", "module", "ai", "action", "test", "resource", "ai", "result", "ok", "provider", p.Name(), "duration_ms", elapsed.Milliseconds(), "reply_len", len(reply))
	return nil
}

// unavailableProvider fails every call with the error that prevented the
// real provider from being built, so the server can still start without
// credentials.
type unavailableProvider struct {
	name string
	err  error
}

// Unavailable returns a Provider whose calls all fail with err.
func Unavailable(name string, err error) Provider {
	return &unavailableProvider{name: name, err: err}
}

func (p *unavailableProvider) Test(ctx context.Context) (string, error) {
	return "", p.err
}

func (p *unavailableProvider) Name() string {
	return p.name
}

func (p *unavailableProvider) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	return "", p.err
}
