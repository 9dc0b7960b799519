// Package testutil provides helpers for tests that need a real history database.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"lingua/backend/internal/db"
)

// NewTestDB opens a fresh SQLite database in a temp dir with the schema applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "translations.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// SeedRawTranslation inserts a translation row with a verbatim notes blob and
// timestamp, bypassing the repository encoder.
func SeedRawTranslation(t *testing.T, database *sql.DB, sourceText, notesBlob, timestamp string) int64 {
	t.Helper()

	result, err := database.Exec(
		`INSERT INTO translations (source_lang, target_lang, source_text, translated_text, cultural_notes, timestamp)
		 VALUES ('en', 'pt', ?, ?, ?, ?)`,
		sourceText, sourceText+" (pt)", notesBlob, timestamp,
	)
	require.NoError(t, err)
	id, err := result.LastInsertId()
	require.NoError(t, err)
	return id
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, database *sql.DB, table string) int {
	t.Helper()

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&count))
	return count
}
