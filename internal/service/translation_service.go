package service

//go:generate mockgen -source=translation_service.go -destination=mock/translation_service_mock.go -package=mock

import (
	"context"
	"fmt"

	"lingua/backend/internal/logger"
	"lingua/backend/internal/metrics"
	"lingua/backend/internal/model"
	"lingua/backend/internal/repository"
	"lingua/backend/internal/service/ai"
)

const (
	DefaultSourceLang = "auto"
	DefaultTargetLang = "en"
)

// TranslateInput is a translation request. Empty language fields take the
// defaults: source "auto", target "en", UI language "en".
type TranslateInput struct {
	Text   string
	Source string
	Target string
	UILang string
}

// TranslateResult is the translation returned to callers.
type TranslateResult struct {
	TranslatedText string               `json:"translatedText"`
	CulturalNotes  []model.CulturalNote `json:"culturalNotes"`
	SourceLang     string               `json:"sourceLang"`
	TargetLang     string               `json:"targetLang"`
}

// TranslationService translates text, annotates it with cultural notes and
// keeps the translation history.
type TranslationService interface {
	// Translate runs the translation and cultural notes model calls and
	// records the result in history. A failed history write does not fail
	// the call.
	Translate(ctx context.Context, in TranslateInput) (TranslateResult, error)
	// History returns the most recent translations, newest first.
	History(ctx context.Context, limit int) ([]model.Translation, error)
}

type translationService struct {
	provider ai.Provider
	repo     repository.TranslationRepository
}

// NewTranslationService creates a new translation service.
func NewTranslationService(provider ai.Provider, repo repository.TranslationRepository) TranslationService {
	return &translationService{provider: provider, repo: repo}
}

func (s *translationService) Translate(ctx context.Context, in TranslateInput) (TranslateResult, error) {
	in = withTranslateDefaults(in)

	messages, err := ai.BuildTranslateMessages(in.Text, in.Source, in.Target)
	if err != nil {
		return TranslateResult{}, err
	}

	reply, err := s.provider.Complete(ctx, messages, ai.TranslateOptions)
	if err != nil {
		return TranslateResult{}, &UpstreamError{Op: "translate", Err: err}
	}
	translated := ai.NormalizeText(reply)

	notes := s.culturalNotes(ctx, in, translated)

	if err := ctx.Err(); err != nil {
		return TranslateResult{}, fmt.Errorf("translate: %w", err)
	}

	record := model.Translation{
		SourceLang:     in.Source,
		TargetLang:     in.Target,
		SourceText:     in.Text,
		TranslatedText: &translated,
		CulturalNotes:  notes,
	}
	if _, err := s.repo.Create(ctx, record); err != nil {
		metrics.HistoryWriteFailures.WithLabelValues("translations").Inc()
		logger.Warn("save translation failed", "module", "service", "action", "create", "resource", "translation", "result", "failed", "error", err)
	}

	logger.Debug("translation done", "module", "service", "action", "translate", "resource", "translation", "result", "ok", "source_lang", in.Source, "target_lang", in.Target, "ui_lang", in.UILang, "notes", len(notes))

	return TranslateResult{
		TranslatedText: translated,
		CulturalNotes:  notes,
		SourceLang:     in.Source,
		TargetLang:     in.Target,
	}, nil
}

// culturalNotes never fails: a failed model call yields the localized tip.
func (s *translationService) culturalNotes(ctx context.Context, in TranslateInput, translated string) []model.CulturalNote {
	messages, err := ai.BuildCulturalNotesMessages(in.Text, in.Source, in.Target, translated, in.UILang)
	if err != nil {
		return ai.FallbackNotes(in.UILang)
	}

	reply, err := s.provider.Complete(ctx, messages, ai.CulturalNotesOptions)
	if err != nil {
		logger.Warn("cultural notes failed, using fallback", "module", "service", "action", "translate", "resource", "cultural_notes", "result", "fallback", "ui_lang", in.UILang, "error", err)
		return ai.FallbackNotes(in.UILang)
	}
	return ai.NormalizeNotes(reply)
}

func (s *translationService) History(ctx context.Context, limit int) ([]model.Translation, error) {
	translations, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	return translations, nil
}

func withTranslateDefaults(in TranslateInput) TranslateInput {
	if in.Source == "" {
		in.Source = DefaultSourceLang
	}
	if in.Target == "" {
		in.Target = DefaultTargetLang
	}
	if in.UILang == "" {
		in.UILang = ai.DefaultUILanguage
	}
	return in
}
