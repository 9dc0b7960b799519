package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"lingua/backend/internal/handler"
	"lingua/backend/internal/repository"
	"lingua/backend/internal/repository/testutil"
	"lingua/backend/internal/service"
	"lingua/backend/internal/service/ai"
)

// stubProvider answers each task with a canned reply or error.
type stubProvider struct {
	replies map[string]string
	errs    map[string]error
}

func (p *stubProvider) Test(ctx context.Context) (string, error) { return "ok", nil }

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Complete(ctx context.Context, messages []ai.Message, opts ai.Options) (string, error) {
	if err := p.errs[opts.Task]; err != nil {
		return "", err
	}
	if opts.Task == ai.TranslateOptions.Task {
		// Echo the input so each translation is distinguishable.
		last := messages[len(messages)-1].Content
		start := strings.Index(last, "<input>\n") + len("<input>\n")
		end := strings.Index(last, "\n</input>")
		return "translated " + last[start:end], nil
	}
	return p.replies[opts.Task], nil
}

type testServer struct {
	echo     *echo.Echo
	provider *stubProvider
}

func newTestServer(t *testing.T) (*testServer, func(table string) int) {
	t.Helper()
	database := testutil.NewTestDB(t)

	provider := &stubProvider{
		replies: map[string]string{
			ai.CulturalNotesOptions.Task: `Here: [{"title":"Idiom","body":"Used to wish luck."}]`,
			ai.ChatOptions.Task:          "Sure, here is some help.",
			ai.GrammarOptions.Task:       `{"definition":"d","partOfSpeech":"noun","examples":["e"],"usage":"u","related":["r"]}`,
		},
		errs: map[string]error{},
	}

	translations := service.NewTranslationService(provider, repository.NewTranslationRepository(database))
	chats := service.NewChatService(provider, repository.NewChatRepository(database))
	grammar := service.NewGrammarService(provider)

	e := echo.New()
	e.Validator = handler.NewValidator()
	g := e.Group("")
	handler.NewTranslationHandler(translations).RegisterRoutes(g)
	handler.NewChatHandler(chats).RegisterRoutes(g)
	handler.NewGrammarHandler(grammar).RegisterRoutes(g)
	e.GET("/health", handler.Health)

	count := func(table string) int { return testutil.CountRows(t, database, table) }
	return &testServer{echo: e, provider: provider}, count
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestTranslate(t *testing.T) {
	srv, count := newTestServer(t)

	rec := srv.do(http.MethodPost, "/translate", `{"q":"break a leg","target":"pt"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"translatedText": "translated break a leg",
		"culturalNotes": [{"title":"Idiom","body":"Used to wish luck."}],
		"sourceLang": "auto",
		"targetLang": "pt"
	}`, rec.Body.String())
	require.Equal(t, 1, count("translations"))
}

func TestTranslate_CulturalNotesFallback(t *testing.T) {
	srv, count := newTestServer(t)
	srv.provider.errs[ai.CulturalNotesOptions.Task] = errors.New("upstream timeout")

	rec := srv.do(http.MethodPost, "/translate", `{"q":"hello","ui_lang":"pt"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	require.Equal(t, []any{map[string]any{
		"title": "Dica",
		"body":  "Considera o contexto e o tom ao usar esta tradução.",
	}}, body["culturalNotes"])
	require.Equal(t, 1, count("translations"))
}

func TestTranslate_UpstreamError(t *testing.T) {
	srv, count := newTestServer(t)
	srv.provider.errs[ai.TranslateOptions.Task] = errors.New("401 Unauthorized")

	rec := srv.do(http.MethodPost, "/translate", `{"q":"hello"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "translate: 401 Unauthorized", decode(t, rec)["error"])
	require.Equal(t, 0, count("translations"))
}

func TestBlankRequiredFields(t *testing.T) {
	srv, count := newTestServer(t)

	tests := []struct {
		path    string
		body    string
		message string
	}{
		{"/translate", `{"q":""}`, "Text is required"},
		{"/translate", `{"q":"   \t"}`, "Text is required"},
		{"/translate", `{"target":"pt"}`, "Text is required"},
		{"/chat", `{"message":" "}`, "Message is required"},
		{"/chat", `{"context":"hi -> olá"}`, "Message is required"},
		{"/grammar", `{"word":"\n"}`, "Word is required"},
		{"/grammar", `{}`, "Word is required"},
	}

	for _, tt := range tests {
		t.Run(tt.path+" "+tt.body, func(t *testing.T) {
			rec := srv.do(http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, tt.message, decode(t, rec)["error"])
		})
	}

	require.Equal(t, 0, count("translations"))
	require.Equal(t, 0, count("chat_messages"))
}

func TestMalformedBody(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/translate", "/chat", "/grammar"} {
		rec := srv.do(http.MethodPost, path, `{"q":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "invalid request", decode(t, rec)["error"])
	}
}

func TestHistory_NewestFirstCappedAt50(t *testing.T) {
	srv, count := newTestServer(t)

	for i := 0; i < 60; i++ {
		rec := srv.do(http.MethodPost, "/translate", fmt.Sprintf(`{"q":"phrase %d","source":"en","target":"fr"}`, i))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	require.Equal(t, 60, count("translations"))

	rec := srv.do(http.MethodGet, "/history", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		History []struct {
			ID             int64            `json:"id"`
			SourceLang     string           `json:"sourceLang"`
			TargetLang     string           `json:"targetLang"`
			SourceText     string           `json:"sourceText"`
			TranslatedText *string          `json:"translatedText"`
			CulturalNotes  []map[string]any `json:"culturalNotes"`
			Timestamp      string           `json:"timestamp"`
		} `json:"history"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.History, 50)

	require.Equal(t, "phrase 59", body.History[0].SourceText)
	require.Equal(t, "phrase 10", body.History[49].SourceText)
	for i := 1; i < len(body.History); i++ {
		require.Greater(t, body.History[i-1].ID, body.History[i].ID)
	}

	first := body.History[0]
	require.Equal(t, "en", first.SourceLang)
	require.Equal(t, "fr", first.TargetLang)
	require.NotNil(t, first.TranslatedText)
	require.Equal(t, "translated phrase 59", *first.TranslatedText)
	require.Len(t, first.CulturalNotes, 1)
	require.NotEmpty(t, first.Timestamp)
}

func TestChat(t *testing.T) {
	srv, count := newTestServer(t)

	rec := srv.do(http.MethodPost, "/chat", `{"message":"Is this slang?","context":"cool -> fixe"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	require.Equal(t, "Sure, here is some help.", body["response"])
	require.Equal(t, []any{
		"When should I use this?",
		"What's the origin of this expression?",
		"Are there similar expressions?",
	}, body["suggestions"])
	require.NotEmpty(t, body["timestamp"])
	require.Equal(t, 1, count("chat_messages"))
}

func TestGrammar_AlwaysReturnsGrammarKeys(t *testing.T) {
	srv, _ := newTestServer(t)
	wantKeys := []string{"definition", "partOfSpeech", "examples", "usage", "related"}

	replies := []string{
		`{"definition":"d","partOfSpeech":"noun","examples":["e"],"usage":"u","related":["r"]}`,
		"Just prose, no JSON at all.",
		`{"definition": broken}`,
		`{"definition":"only one key"}`,
		"",
	}
	for _, reply := range replies {
		srv.provider.replies[ai.GrammarOptions.Task] = reply

		rec := srv.do(http.MethodPost, "/grammar", `{"word":"serendipity"}`)
		require.Equal(t, http.StatusOK, rec.Code, reply)

		body := decode(t, rec)
		got := make([]string, 0, len(body))
		for k := range body {
			got = append(got, k)
		}
		require.ElementsMatch(t, wantKeys, got, reply)
	}
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := srv.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	require.Equal(t, "healthy", body["status"])
	require.NotEmpty(t, body["timestamp"])
}
