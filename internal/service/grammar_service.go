package service

//go:generate mockgen -source=grammar_service.go -destination=mock/grammar_service_mock.go -package=mock

import (
	"context"

	"lingua/backend/internal/logger"
	"lingua/backend/internal/service/ai"
)

// DefaultGrammarLanguage is used when a grammar request names no language.
const DefaultGrammarLanguage = "en"

// GrammarInput names the word or phrase to analyze.
type GrammarInput struct {
	Word     string
	Language string
}

// GrammarService explains words and phrases.
type GrammarService interface {
	// Analyze returns an object with exactly the keys definition,
	// partOfSpeech, examples, usage and related.
	Analyze(ctx context.Context, in GrammarInput) (map[string]any, error)
}

type grammarService struct {
	provider ai.Provider
}

// NewGrammarService creates a new grammar service.
func NewGrammarService(provider ai.Provider) GrammarService {
	return &grammarService{provider: provider}
}

func (s *grammarService) Analyze(ctx context.Context, in GrammarInput) (map[string]any, error) {
	if in.Language == "" {
		in.Language = DefaultGrammarLanguage
	}

	messages, err := ai.BuildGrammarMessages(in.Word, in.Language)
	if err != nil {
		return nil, err
	}

	reply, err := s.provider.Complete(ctx, messages, ai.GrammarOptions)
	if err != nil {
		return nil, &UpstreamError{Op: "grammar", Err: err}
	}

	logger.Debug("grammar analysis done", "module", "service", "action", "analyze", "resource", "grammar", "result", "ok", "language", in.Language)
	return ai.NormalizeGrammar(reply), nil
}
