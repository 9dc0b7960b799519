package ai

import (
	"context"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// CompatibleProvider implements Provider for OpenAI-compatible APIs.
// This supports services like GitHub Models, OpenRouter, Azure OpenAI, Ollama, etc.
type CompatibleProvider struct {
	client openai.Client
	model  string
}

// NewCompatibleProvider creates a new OpenAI-compatible provider.
func NewCompatibleProvider(apiKey, baseURL, model string, httpClient *http.Client) (*CompatibleProvider, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &CompatibleProvider{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// Test sends a test message and returns the response.
func (p *CompatibleProvider) Test(ctx context.Context) (string, error) {
	return p.Complete(ctx, []Message{{Role: RoleUser, Content: "Hello world"}}, Options{Task: "test", MaxTokens: 50})
}

// Name returns the provider name.
func (p *CompatibleProvider) Name() string {
	return ProviderCompatible
}

// Complete generates a response without streaming. Compatible endpoints
// accept the classic sampling parameters for every model they route to.
func (p *CompatibleProvider) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	params := chatCompletionParams(p.model, messages, opts, false)
	return completeChat(ctx, p.client, params)
}
