package repository

//go:generate mockgen -source=translation_repository.go -destination=mock/translation_repository_mock.go -package=mock

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"lingua/backend/internal/logger"
	"lingua/backend/internal/model"
)

type TranslationRepository interface {
	// Create appends a translation and returns the id assigned by the store.
	Create(ctx context.Context, t model.Translation) (int64, error)
	// ListRecent returns up to limit translations, newest first.
	ListRecent(ctx context.Context, limit int) ([]model.Translation, error)
}

type translationRepository struct {
	db dbtx
}

func NewTranslationRepository(db dbtx) TranslationRepository {
	return &translationRepository{db: db}
}

func (r *translationRepository) Create(ctx context.Context, t model.Translation) (int64, error) {
	notes, err := encodeNotes(t.CulturalNotes)
	if err != nil {
		return 0, fmt.Errorf("encode cultural notes: %w", err)
	}

	result, err := r.db.ExecContext(
		ctx,
		`INSERT INTO translations (source_lang, target_lang, source_text, translated_text, cultural_notes)
		 VALUES (?, ?, ?, ?, ?)`,
		t.SourceLang,
		t.TargetLang,
		t.SourceText,
		nullableString(t.TranslatedText),
		notes,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (r *translationRepository) ListRecent(ctx context.Context, limit int) ([]model.Translation, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, source_lang, target_lang, source_text, translated_text, cultural_notes, timestamp
		 FROM translations
		 ORDER BY timestamp DESC, id DESC
		 LIMIT ?`,
		normalizeLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	translations := make([]model.Translation, 0)
	for rows.Next() {
		var t model.Translation
		var translated, notes sql.NullString
		var timestamp string

		if err := rows.Scan(&t.ID, &t.SourceLang, &t.TargetLang, &t.SourceText, &translated, &notes, &timestamp); err != nil {
			return nil, err
		}

		t.TranslatedText = stringPtr(translated)
		t.CulturalNotes = decodeNotes(t.ID, notes)
		t.Timestamp = decodeTimestamp(t.ID, timestamp)
		translations = append(translations, t)
	}

	return translations, rows.Err()
}

func encodeNotes(notes []model.CulturalNote) (string, error) {
	if notes == nil {
		notes = []model.CulturalNote{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeNotes never fails: a blob that is missing or cannot be decoded
// yields an empty list so one bad row cannot break the history listing.
func decodeNotes(id int64, blob sql.NullString) []model.CulturalNote {
	notes := []model.CulturalNote{}
	if !blob.Valid || blob.String == "" {
		return notes
	}
	if err := json.Unmarshal([]byte(blob.String), &notes); err != nil {
		logger.Warn("cultural notes decode failed", "module", "repository", "action", "fetch", "resource", "translation", "result", "failed", "id", id, "error", err)
		return []model.CulturalNote{}
	}
	if notes == nil {
		notes = []model.CulturalNote{}
	}
	return notes
}

// decodeTimestamp never fails: an unparseable value yields the zero time and
// a warning so the row still shows up in history.
func decodeTimestamp(id int64, value string) time.Time {
	ts, err := parseTime(value)
	if err != nil {
		logger.Warn("timestamp parse failed", "module", "repository", "action", "fetch", "resource", "translation", "result", "failed", "id", id, "timestamp", value, "error", err)
		return time.Time{}
	}
	return ts
}
