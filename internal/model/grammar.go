package model

// GrammarKeys are the wire names of every GrammarAnalysis field.
var GrammarKeys = []string{"definition", "partOfSpeech", "examples", "usage", "related"}

// GrammarAnalysis is the shape the grammar endpoint promises to callers.
// It is never persisted.
type GrammarAnalysis struct {
	Definition   string   `json:"definition"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Examples     []string `json:"examples"`
	Usage        string   `json:"usage"`
	Related      []string `json:"related"`
}

// Fields returns the analysis as a JSON object keyed by the wire field names.
func (g GrammarAnalysis) Fields() map[string]any {
	examples := g.Examples
	if examples == nil {
		examples = []string{}
	}
	related := g.Related
	if related == nil {
		related = []string{}
	}
	return map[string]any{
		"definition":   g.Definition,
		"partOfSpeech": g.PartOfSpeech,
		"examples":     examples,
		"usage":        g.Usage,
		"related":      related,
	}
}
