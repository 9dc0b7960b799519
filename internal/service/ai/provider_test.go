package ai_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lingua/backend/internal/service/ai"
)

const chatCompletionReply = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"created": 1700000000,
	"model": "gpt-4o",
	"choices": [{
		"index": 0,
		"message": {"role": "assistant", "content": "Boa sorte!"},
		"finish_reason": "stop"
	}]
}`

type capturedRequest struct {
	path   string
	auth   string
	header http.Header
	body   map[string]any
}

func newCapturingServer(t *testing.T, status int, reply string) (*httptest.Server, *capturedRequest, *atomic.Int32) {
	t.Helper()
	captured := &capturedRequest{}
	calls := &atomic.Int32{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		captured.path = r.URL.Path
		captured.auth = r.Header.Get("Authorization")
		captured.header = r.Header.Clone()
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &captured.body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(server.Close)
	return server, captured, calls
}

func TestNewProvider_Validation(t *testing.T) {
	_, err := ai.NewProvider(ai.Config{Provider: ai.ProviderOpenAI, Model: "gpt-4o"})
	require.ErrorIs(t, err, ai.ErrMissingAPIKey)

	_, err = ai.NewProvider(ai.Config{Provider: ai.ProviderOpenAI, APIKey: "k"})
	require.ErrorIs(t, err, ai.ErrMissingModel)

	_, err = ai.NewProvider(ai.Config{Provider: ai.ProviderCompatible, APIKey: "k", Model: "m"})
	require.ErrorIs(t, err, ai.ErrMissingBaseURL)

	_, err = ai.NewProvider(ai.Config{Provider: "gemini", APIKey: "k", Model: "m"})
	require.ErrorIs(t, err, ai.ErrInvalidProvider)

	for _, name := range []string{ai.ProviderOpenAI, ai.ProviderAnthropic, ai.ProviderCompatible} {
		p, err := ai.NewProvider(ai.Config{Provider: name, APIKey: "k", Model: "m", BaseURL: "http://localhost/"})
		require.NoError(t, err)
		require.Equal(t, name, p.Name())
	}
}

func TestCompatibleProvider_Complete(t *testing.T) {
	server, captured, calls := newCapturingServer(t, http.StatusOK, chatCompletionReply)

	p, err := ai.NewCompatibleProvider("test-token", server.URL+"/inference/", "openai/gpt-4o", server.Client())
	require.NoError(t, err)

	messages, err := ai.BuildChatMessages("What does saudade mean?", "hello -> olá")
	require.NoError(t, err)

	reply, err := p.Complete(context.Background(), messages, ai.ChatOptions)
	require.NoError(t, err)
	require.Equal(t, "Boa sorte!", reply)
	require.Equal(t, int32(1), calls.Load())

	require.Equal(t, "/inference/chat/completions", captured.path)
	require.Equal(t, "Bearer test-token", captured.auth)
	require.Equal(t, "openai/gpt-4o", captured.body["model"])
	require.Equal(t, 0.8, captured.body["temperature"])
	require.Equal(t, float64(600), captured.body["max_tokens"])
	require.Equal(t, 0.3, captured.body["presence_penalty"])
	require.Equal(t, 0.3, captured.body["frequency_penalty"])

	sent, ok := captured.body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, sent, 3)
	require.Equal(t, "system", sent[0].(map[string]any)["role"])
	require.Equal(t, "system", sent[1].(map[string]any)["role"])
	require.Equal(t, "user", sent[2].(map[string]any)["role"])
}

func TestCompatibleProvider_UpstreamErrorIsNotRetried(t *testing.T) {
	server, _, calls := newCapturingServer(t, http.StatusInternalServerError, `{"error":{"message":"boom"}}`)

	p, err := ai.NewCompatibleProvider("k", server.URL+"/", "m", server.Client())
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), []ai.Message{{Role: ai.RoleUser, Content: "hi"}}, ai.TranslateOptions)
	require.Error(t, err)
	require.Equal(t, int32(1), calls.Load())
}

func TestCompatibleProvider_NoChoices(t *testing.T) {
	server, _, _ := newCapturingServer(t, http.StatusOK, `{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`)

	p, err := ai.NewCompatibleProvider("k", server.URL+"/", "m", server.Client())
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), []ai.Message{{Role: ai.RoleUser, Content: "hi"}}, ai.TranslateOptions)
	require.ErrorIs(t, err, ai.ErrEmptyReply)
}

func TestOpenAIProvider_ReasoningModelDropsSampling(t *testing.T) {
	server, captured, _ := newCapturingServer(t, http.StatusOK, chatCompletionReply)

	p, err := ai.NewOpenAIProvider("k", server.URL+"/v1/", "o3-mini", server.Client())
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), []ai.Message{{Role: ai.RoleUser, Content: "hi"}}, ai.GrammarOptions)
	require.NoError(t, err)

	require.Equal(t, "/v1/chat/completions", captured.path)
	require.Equal(t, float64(600), captured.body["max_completion_tokens"])
	require.NotContains(t, captured.body, "temperature")
	require.NotContains(t, captured.body, "max_tokens")
}

func TestOpenAIProvider_StandardModel(t *testing.T) {
	server, captured, _ := newCapturingServer(t, http.StatusOK, chatCompletionReply)

	p, err := ai.NewOpenAIProvider("k", server.URL+"/v1/", "gpt-4o", server.Client())
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), []ai.Message{{Role: ai.RoleUser, Content: "hi"}}, ai.TranslateOptions)
	require.NoError(t, err)
	require.Equal(t, 0.3, captured.body["temperature"])
	require.Equal(t, float64(500), captured.body["max_tokens"])
	require.NotContains(t, captured.body, "presence_penalty")
}

func TestAnthropicProvider_Complete(t *testing.T) {
	reply := `{
		"id": "msg_1",
		"type": "message",
		"role": "assistant",
		"model": "claude-sonnet-4-5",
		"content": [{"type": "text", "text": "[{\"title\":\"A\",\"body\":\"B\"}]"}],
		"stop_reason": "end_turn",
		"usage": {"input_tokens": 10, "output_tokens": 5}
	}`
	server, captured, calls := newCapturingServer(t, http.StatusOK, reply)

	p, err := ai.NewAnthropicProvider("k", server.URL, "claude-sonnet-4-5", server.Client())
	require.NoError(t, err)

	messages, err := ai.BuildCulturalNotesMessages("break a leg", "en", "pt", "boa sorte", "pt")
	require.NoError(t, err)

	out, err := p.Complete(context.Background(), messages, ai.CulturalNotesOptions)
	require.NoError(t, err)
	require.Equal(t, `[{"title":"A","body":"B"}]`, out)
	require.Equal(t, int32(1), calls.Load())

	require.Equal(t, "/v1/messages", captured.path)
	require.Equal(t, "k", captured.header.Get("X-Api-Key"))
	require.Equal(t, float64(300), captured.body["max_tokens"])
	require.Equal(t, 0.5, captured.body["temperature"])

	system, ok := captured.body["system"].([]any)
	require.True(t, ok)
	require.Len(t, system, 1)
	require.Contains(t, system[0].(map[string]any)["text"], "Always respond in Portuguese.")

	turns, ok := captured.body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, turns, 1)
	require.Equal(t, "user", turns[0].(map[string]any)["role"])
}

func TestUnavailableProvider(t *testing.T) {
	cause := errors.New("no key")
	p := ai.Unavailable(ai.ProviderCompatible, cause)

	require.Equal(t, ai.ProviderCompatible, p.Name())
	_, err := p.Complete(context.Background(), nil, ai.ChatOptions)
	require.ErrorIs(t, err, cause)
	_, err = p.Test(context.Background())
	require.ErrorIs(t, err, cause)
}

func TestCheckConnection(t *testing.T) {
	server, captured, calls := newCapturingServer(t, http.StatusOK, chatCompletionReply)

	p, err := ai.NewCompatibleProvider("k", server.URL+"/", "openai/gpt-4o", server.Client())
	require.NoError(t, err)

	require.NoError(t, ai.CheckConnection(context.Background(), p, time.Second))
	require.Equal(t, int32(1), calls.Load())
	require.Equal(t, float64(50), captured.body["max_tokens"])

	sent := captured.body["messages"].([]any)
	require.Len(t, sent, 1)
	require.Equal(t, "Hello world", sent[0].(map[string]any)["content"])
}

func TestCheckConnection_Failure(t *testing.T) {
	server, _, _ := newCapturingServer(t, http.StatusUnauthorized, `{"error":{"message":"bad credentials"}}`)

	p, err := ai.NewCompatibleProvider("k", server.URL+"/", "m", server.Client())
	require.NoError(t, err)
	require.Error(t, ai.CheckConnection(context.Background(), p, time.Second))

	cause := errors.New("API key is required")
	require.ErrorIs(t, ai.CheckConnection(context.Background(), ai.Unavailable(ai.ProviderOpenAI, cause), time.Second), cause)
}

func TestCheckConnection_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	p, err := ai.NewAnthropicProvider("k", server.URL, "claude-sonnet-4-5", server.Client())
	require.NoError(t, err)

	start := time.Now()
	require.Error(t, ai.CheckConnection(context.Background(), p, 50*time.Millisecond))
	require.Less(t, time.Since(start), 2*time.Second)
}
