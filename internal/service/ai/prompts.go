package ai

import "fmt"

// Sampling settings per task.
var (
	TranslateOptions     = Options{Task: "translate", Temperature: 0.3, MaxTokens: 500}
	CulturalNotesOptions = Options{Task: "cultural_notes", Temperature: 0.5, MaxTokens: 300}
	ChatOptions          = Options{Task: "chat", Temperature: 0.8, MaxTokens: 600, PresencePenalty: 0.3, FrequencyPenalty: 0.3}
	GrammarOptions       = Options{Task: "grammar", Temperature: 0.3, MaxTokens: 600}
)

// WrapInputSimple wraps user content in <input> tags.
func WrapInputSimple(content string) string {
	return "<input>\n" + content + "\n</input>"
}

func describeSource(source string) string {
	if source == "" || source == "auto" {
		return "auto (detect the language of the input)"
	}
	return source
}

// BuildTranslateMessages returns the prompt for a plain translation.
func BuildTranslateMessages(text, source, target string) ([]Message, error) {
	if err := requireText("q", "Text is required", text); err != nil {
		return nil, err
	}

	user := fmt.Sprintf(`You are a professional translator with deep cultural knowledge. Translate the input from the source language to the target language.

<context>
<source_language>%s</source_language>
<target_language>%s</target_language>
</context>

<instructions>
1. Produce a natural, contextually appropriate translation, not a literal one
2. Handle slang and idioms with their closest natural equivalent
3. Keep cultural nuances intact
4. Match the register of the input: formal vs informal tone
5. Prefer wording that fits regional variations of the target language
6. Respond ONLY with the translated text, nothing else
</instructions>

%s`, describeSource(source), target, WrapInputSimple(text))

	return []Message{
		{Role: RoleSystem, Content: "You are an expert translator focused on cultural accuracy."},
		{Role: RoleUser, Content: user},
	}, nil
}

// BuildCulturalNotesMessages returns the prompt asking for 2-3 cultural notes
// about a translation, written in the interface language uiLang.
func BuildCulturalNotesMessages(sourceText, source, target, translated, uiLang string) ([]Message, error) {
	if err := requireText("q", "Text is required", sourceText); err != nil {
		return nil, err
	}

	language := LanguageName(uiLang)
	user := fmt.Sprintf(`Analyze this translation and provide cultural context IN %[1]s.

<original language="%[2]s">%[3]s</original>
<translation language="%[4]s">%[5]s</translation>

<instructions>
1. Write ALL notes in %[1]s. Notes in any other language are invalid
2. Provide 2-3 brief notes covering:
   - idioms, slang, or expressions that do not translate literally
   - cultural context that helps understanding
   - usage tips (formal/informal, regional differences)
3. Keep each note concise (max 2 sentences)
4. Format as a JSON array of objects with "title" and "body" fields
   Example: [{"title": "Cultural Note", "body": "Explanation here"}]
</instructions>`, language, describeSource(source), sourceText, target, translated)

	return []Message{
		{Role: RoleSystem, Content: fmt.Sprintf("You are a cultural linguistics expert. Always respond in %s.", language)},
		{Role: RoleUser, Content: user},
	}, nil
}

// chatPersona is the fixed system prompt of the conversational assistant.
const chatPersona = `You are Lingua, an expert multilingual assistant with a warm, encouraging personality.

<expertise>
- Translation help with cultural nuances
- Idioms, slang, and colloquial expressions
- Regional language variations and dialects
- Pronunciation tips (IPA and phonetic guidance)
- Cultural etiquette and customs
- Language learning strategies
- Grammar explanations with real-world examples
</expertise>

<style>
- Be friendly, patient, and encouraging
- Use emojis sparingly and only when they add clarity
- Give concrete examples from real conversations
- Offer practical tips the user can apply immediately
- Be sensitive and respectful when explaining cultural differences
- Keep answers concise but informative (2-4 paragraphs max)
</style>

<guidelines>
1. Answer the user's question directly first
2. Add cultural context or interesting facts when relevant
3. Suggest follow-up questions or related topics
4. Encourage users who appear to be learning
5. When discussing translations, explain WHY something works that way
</guidelines>

<format>
- Use bullet points for lists
- Use bold for key terms (**term**)
- Quote examples and give their translations
- End with a helpful tip or question when appropriate
</format>

You are not just translating words: you help people communicate authentically across cultures.`

// BuildChatMessages returns the assistant persona, the optional translation
// context and the user's message.
func BuildChatMessages(message, translationContext string) ([]Message, error) {
	if err := requireText("message", "Message is required", message); err != nil {
		return nil, err
	}

	messages := []Message{{Role: RoleSystem, Content: chatPersona}}
	if translationContext != "" {
		messages = append(messages, Message{
			Role:    RoleSystem,
			Content: "Recent translation context: " + translationContext,
		})
	}
	return append(messages, Message{Role: RoleUser, Content: message}), nil
}

// BuildGrammarMessages returns the prompt for a word or phrase analysis.
func BuildGrammarMessages(word, language string) ([]Message, error) {
	if err := requireText("word", "Word is required", word); err != nil {
		return nil, err
	}

	user := fmt.Sprintf(`Analyze the word/phrase "%s" in %s.

<instructions>
Provide:
1. Definition
2. Part of speech
3. 3 example sentences
4. Usage notes (formal/informal, common contexts)
5. Related words or phrases

Format as a JSON object with exactly these keys:
definition (string), partOfSpeech (string), examples (array of strings), usage (string), related (array of strings)
</instructions>`, word, language)

	return []Message{
		{Role: RoleSystem, Content: "You are a linguistics expert providing grammar analysis."},
		{Role: RoleUser, Content: user},
	}, nil
}
