package ai_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"lingua/backend/internal/service/ai"
)

func TestWrapInputSimple(t *testing.T) {
	wrapped := ai.WrapInputSimple("test content")
	require.Equal(t, "<input>\ntest content\n</input>", wrapped)
}

func TestBuildTranslateMessages(t *testing.T) {
	messages, err := ai.BuildTranslateMessages("break a leg", "en", "pt")
	require.NoError(t, err)
	require.Len(t, messages, 2)

	require.Equal(t, ai.RoleSystem, messages[0].Role)
	require.Contains(t, messages[0].Content, "cultural accuracy")

	require.Equal(t, ai.RoleUser, messages[1].Role)
	require.Contains(t, messages[1].Content, "<source_language>en</source_language>")
	require.Contains(t, messages[1].Content, "<target_language>pt</target_language>")
	require.Contains(t, messages[1].Content, "slang and idioms")
	require.Contains(t, messages[1].Content, "formal vs informal")
	require.Contains(t, messages[1].Content, "Respond ONLY with the translated text")
	require.Contains(t, messages[1].Content, "<input>\nbreak a leg\n</input>")
}

func TestBuildTranslateMessages_AutoSource(t *testing.T) {
	messages, err := ai.BuildTranslateMessages("hola", "auto", "en")
	require.NoError(t, err)
	require.Contains(t, messages[1].Content, "detect the language")
}

func TestBuildTranslateMessages_BlankText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := ai.BuildTranslateMessages(text, "en", "pt")
		require.Error(t, err)

		var ve *ai.ValidationError
		require.True(t, errors.As(err, &ve))
		require.Equal(t, "q", ve.Field)
		require.Equal(t, "Text is required", ve.Error())
		require.ErrorIs(t, err, ai.ErrInvalidInput)
	}
}

func TestBuildCulturalNotesMessages_UsesLanguageName(t *testing.T) {
	messages, err := ai.BuildCulturalNotesMessages("break a leg", "en", "pt", "boa sorte", "pt")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	require.Equal(t, "You are a cultural linguistics expert. Always respond in Portuguese.", messages[0].Content)
	require.Contains(t, messages[1].Content, "IN Portuguese")
	require.Contains(t, messages[1].Content, "boa sorte")
	require.Contains(t, messages[1].Content, `"title"`)
	require.Contains(t, messages[1].Content, `"body"`)
	require.Contains(t, messages[1].Content, "2-3")
}

func TestBuildCulturalNotesMessages_UnknownUILanguage(t *testing.T) {
	messages, err := ai.BuildCulturalNotesMessages("hello", "en", "ja", "こんにちは", "xx")
	require.NoError(t, err)
	require.Contains(t, messages[0].Content, "Always respond in English.")
}

func TestBuildCulturalNotesMessages_BlankSource(t *testing.T) {
	_, err := ai.BuildCulturalNotesMessages(" ", "en", "pt", "x", "en")
	require.ErrorIs(t, err, ai.ErrInvalidInput)
}

func TestBuildChatMessages_WithoutContext(t *testing.T) {
	messages, err := ai.BuildChatMessages("What does saudade mean?", "")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	require.Equal(t, ai.RoleSystem, messages[0].Role)
	require.Contains(t, messages[0].Content, "Lingua")
	require.Equal(t, ai.Message{Role: ai.RoleUser, Content: "What does saudade mean?"}, messages[1])
}

func TestBuildChatMessages_WithContext(t *testing.T) {
	messages, err := ai.BuildChatMessages("Is it formal?", "hello -> olá")
	require.NoError(t, err)
	require.Len(t, messages, 3)
	require.Equal(t, ai.Message{Role: ai.RoleSystem, Content: "Recent translation context: hello -> olá"}, messages[1])
	require.Equal(t, ai.RoleUser, messages[2].Role)
}

func TestBuildChatMessages_BlankMessage(t *testing.T) {
	_, err := ai.BuildChatMessages("  ", "context")
	var ve *ai.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "Message is required", ve.Error())
}

func TestBuildGrammarMessages(t *testing.T) {
	messages, err := ai.BuildGrammarMessages("serendipity", "en")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	require.Contains(t, messages[1].Content, `"serendipity" in en`)
	for _, key := range []string{"definition", "partOfSpeech", "examples", "usage", "related"} {
		require.Contains(t, messages[1].Content, key)
	}
}

func TestBuildGrammarMessages_BlankWord(t *testing.T) {
	_, err := ai.BuildGrammarMessages("\t", "en")
	var ve *ai.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "word", ve.Field)
	require.Equal(t, "Word is required", ve.Error())
}

func TestLanguageName(t *testing.T) {
	require.Equal(t, "English", ai.LanguageName("en"))
	require.Equal(t, "Portuguese", ai.LanguageName("pt"))
	require.Equal(t, "Spanish", ai.LanguageName("es"))
	require.Equal(t, "French", ai.LanguageName("fr"))
	require.Equal(t, "German", ai.LanguageName("de"))
	require.Equal(t, "Arabic", ai.LanguageName("ar"))
	require.Equal(t, "English", ai.LanguageName("zh"))
	require.Equal(t, "English", ai.LanguageName(""))
}

func TestTaskOptions(t *testing.T) {
	require.Equal(t, "translate", ai.TranslateOptions.Task)
	require.Equal(t, 0.3, ai.TranslateOptions.Temperature)
	require.Equal(t, int64(300), ai.CulturalNotesOptions.MaxTokens)
	require.Equal(t, 0.8, ai.ChatOptions.Temperature)
	require.Equal(t, 0.3, ai.ChatOptions.PresencePenalty)
	require.Equal(t, 0.3, ai.ChatOptions.FrequencyPenalty)
	require.Equal(t, int64(600), ai.GrammarOptions.MaxTokens)
}
