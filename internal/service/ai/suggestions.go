package ai

import "strings"

// suggestionRule pairs trigger keywords with the follow-up prompts offered
// when any of them occurs in the user's message.
type suggestionRule struct {
	keywords    []string
	suggestions []string
}

// suggestionRules are evaluated in order; the first match wins.
var suggestionRules = []suggestionRule{
	{
		keywords: []string{"translate", "mean", "say"},
		suggestions: []string{
			"How do I pronounce this?",
			"Are there regional variations?",
			"What's the formal version?",
		},
	},
	{
		keywords: []string{"slang", "informal", "casual"},
		suggestions: []string{
			"When should I use this?",
			"What's the origin of this expression?",
			"Are there similar expressions?",
		},
	},
	{
		keywords: []string{"culture", "custom", "etiquette"},
		suggestions: []string{
			"What else should I know?",
			"Are there common mistakes to avoid?",
			"How do locals actually use this?",
		},
	},
	{
		keywords: []string{"pronounce", "pronunciation", "sound"},
		suggestions: []string{
			"Can you break it down syllable by syllable?",
			"Are there similar sounding words?",
			"What are common pronunciation mistakes?",
		},
	},
}

var genericSuggestions = []string{
	"Tell me more about this",
	"Give me an example sentence",
	"What's the cultural context?",
}

// Suggest returns exactly three follow-up prompts for a chat turn.
// botResponse is accepted for future heuristics and currently unused.
func Suggest(userMessage, botResponse string) []string {
	message := strings.ToLower(userMessage)
	for _, rule := range suggestionRules {
		if containsAny(message, rule.keywords) {
			return append([]string(nil), rule.suggestions...)
		}
	}
	return append([]string(nil), genericSuggestions...)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
