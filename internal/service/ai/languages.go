package ai

import "lingua/backend/internal/model"

// DefaultUILanguage is used for unknown interface language codes.
const DefaultUILanguage = "en"

// languageNames maps the supported interface languages to the name used
// inside prompts.
var languageNames = map[string]string{
	"en": "English",
	"pt": "Portuguese",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"ar": "Arabic",
}

// fallbackTips are shown instead of cultural notes when the model call fails.
var fallbackTips = map[string]model.CulturalNote{
	"en": {Title: "Tip", Body: "Consider the context and tone when using this translation."},
	"pt": {Title: "Dica", Body: "Considera o contexto e o tom ao usar esta tradução."},
	"es": {Title: "Consejo", Body: "Considera el contexto y el tono al usar esta traducción."},
	"fr": {Title: "Conseil", Body: "Considérez le contexte et le ton lors de l'utilisation de cette traduction."},
	"de": {Title: "Tipp", Body: "Berücksichtigen Sie den Kontext und Ton bei der Verwendung dieser Übersetzung."},
	"ar": {Title: "نصيحة", Body: "ضع في اعتبارك السياق والنبرة عند استخدام هذه الترجمة."},
}

// LanguageName returns the English display name of an interface language
// code. Unknown codes resolve to English.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return languageNames[DefaultUILanguage]
}
