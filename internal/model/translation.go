package model

import "time"

// CulturalNote is a short explanation attached to a translation.
type CulturalNote struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Translation is one row of translation history. TranslatedText is nil when
// the model call failed before a translation was produced.
type Translation struct {
	ID             int64
	SourceLang     string
	TargetLang     string
	SourceText     string
	TranslatedText *string
	CulturalNotes  []CulturalNote
	Timestamp      time.Time
}
