package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"lingua/backend/internal/metrics"
	"lingua/backend/internal/model"
)

// fallbackBodyLimit is the number of characters of the raw reply kept in a
// fallback structure.
const fallbackBodyLimit = 200

// FailureReason classifies why a reply could not be decoded.
type FailureReason string

const (
	ReasonMissingDelimiters FailureReason = "missing_delimiters"
	ReasonInvalidJSON       FailureReason = "invalid_json"
	ReasonMissingKeys       FailureReason = "missing_keys"
)

// DecodeFailure describes a model reply that did not contain the expected
// JSON structure.
type DecodeFailure struct {
	Reason FailureReason
	Err    error
}

func (f *DecodeFailure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("decode reply: %s: %v", f.Reason, f.Err)
	}
	return fmt.Sprintf("decode reply: %s", f.Reason)
}

func (f *DecodeFailure) Unwrap() error {
	return f.Err
}

// ExtractEnclosed returns the substring from the first open to the last
// close delimiter, inclusive.
func ExtractEnclosed(raw string, open, close byte) (string, *DecodeFailure) {
	start := strings.IndexByte(raw, open)
	end := strings.LastIndexByte(raw, close)
	if start == -1 || end == -1 || end < start {
		return "", &DecodeFailure{Reason: ReasonMissingDelimiters}
	}
	return raw[start : end+1], nil
}

// decodeEnclosed runs both stages: locate the outermost delimiters, then
// decode strictly into v.
func decodeEnclosed(raw string, open, close byte, v any) *DecodeFailure {
	fragment, failure := ExtractEnclosed(raw, open, close)
	if failure != nil {
		return failure
	}
	if err := json.Unmarshal([]byte(fragment), v); err != nil {
		return &DecodeFailure{Reason: ReasonInvalidJSON, Err: err}
	}
	return nil
}

// NormalizeText is the plain-text mode used for translations and chat.
func NormalizeText(raw string) string {
	return strings.TrimSpace(raw)
}

// NormalizeNotes decodes the first JSON array in raw into cultural notes.
// A reply without a decodable array becomes a single "Context" note holding
// the start of the reply.
func NormalizeNotes(raw string) []model.CulturalNote {
	raw = strings.TrimSpace(raw)

	var notes []model.CulturalNote
	if failure := decodeEnclosed(raw, '[', ']', &notes); failure != nil {
		metrics.NormalizeFallbacks.WithLabelValues("array", string(failure.Reason)).Inc()
		return notesFallback(raw)
	}
	if notes == nil {
		notes = []model.CulturalNote{}
	}
	return notes
}

// FallbackNotes is used when the cultural notes model call itself failed.
// Unknown interface languages get the English tip.
func FallbackNotes(uiLang string) []model.CulturalNote {
	metrics.NormalizeFallbacks.WithLabelValues("array", "upstream_error").Inc()
	tip, ok := fallbackTips[uiLang]
	if !ok {
		tip = fallbackTips[DefaultUILanguage]
	}
	return []model.CulturalNote{tip}
}

// NormalizeGrammar decodes the first JSON object in raw. The object is
// accepted whole only when it carries every grammar key, and only those keys
// are returned. Anything else becomes the generic grammar fallback; fields
// are never repaired one by one.
func NormalizeGrammar(raw string) map[string]any {
	raw = strings.TrimSpace(raw)

	var analysis map[string]any
	if failure := decodeEnclosed(raw, '{', '}', &analysis); failure != nil {
		metrics.NormalizeFallbacks.WithLabelValues("object", string(failure.Reason)).Inc()
		return grammarFallback(raw).Fields()
	}

	fields := make(map[string]any, len(model.GrammarKeys))
	for _, key := range model.GrammarKeys {
		value, ok := analysis[key]
		if !ok {
			metrics.NormalizeFallbacks.WithLabelValues("object", string(ReasonMissingKeys)).Inc()
			return grammarFallback(raw).Fields()
		}
		fields[key] = value
	}
	return fields
}

func notesFallback(raw string) []model.CulturalNote {
	return []model.CulturalNote{{Title: "Context", Body: truncate(raw, fallbackBodyLimit)}}
}

func grammarFallback(raw string) model.GrammarAnalysis {
	return model.GrammarAnalysis{
		Definition:   truncate(raw, fallbackBodyLimit),
		PartOfSpeech: "Unknown",
		Examples:     []string{},
		Usage:        "See definition above",
		Related:      []string{},
	}
}

// truncate keeps the first n characters (runes) of s.
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
