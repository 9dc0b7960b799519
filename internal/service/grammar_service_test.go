package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lingua/backend/internal/service"
	"lingua/backend/internal/service/ai"
	aimock "lingua/backend/internal/service/ai/mock"
)

func TestGrammarService_Analyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := aimock.NewMockProvider(ctrl)
	svc := service.NewGrammarService(provider)
	ctx := context.Background()

	provider.EXPECT().
		Complete(ctx, gomock.Any(), ai.GrammarOptions).
		DoAndReturn(func(_ context.Context, messages []ai.Message, _ ai.Options) (string, error) {
			require.Contains(t, messages[1].Content, `"saudade" in en`)
			return "```json\n" + `{"definition":"Longing","partOfSpeech":"noun","examples":["Tenho saudade"],"usage":"Emotional","related":["nostalgia"]}` + "\n```", nil
		})

	result, err := svc.Analyze(ctx, service.GrammarInput{Word: "saudade"})
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"definition":   "Longing",
		"partOfSpeech": "noun",
		"examples":     []any{"Tenho saudade"},
		"usage":        "Emotional",
		"related":      []any{"nostalgia"},
	}, result)
}

func TestGrammarService_Analyze_UnstructuredReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := aimock.NewMockProvider(ctrl)
	svc := service.NewGrammarService(provider)
	ctx := context.Background()

	provider.EXPECT().Complete(ctx, gomock.Any(), ai.GrammarOptions).Return("It means longing.", nil)

	result, err := svc.Analyze(ctx, service.GrammarInput{Word: "saudade", Language: "pt"})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"definition", "partOfSpeech", "examples", "usage", "related"}, keys(result))
	require.Equal(t, "It means longing.", result["definition"])
}

func TestGrammarService_Analyze_BlankWord(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewGrammarService(aimock.NewMockProvider(ctrl))

	_, err := svc.Analyze(context.Background(), service.GrammarInput{Word: " "})
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestGrammarService_Analyze_UpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := aimock.NewMockProvider(ctrl)
	svc := service.NewGrammarService(provider)
	ctx := context.Background()

	provider.EXPECT().Complete(ctx, gomock.Any(), ai.GrammarOptions).Return("", errors.New("connection refused"))

	_, err := svc.Analyze(ctx, service.GrammarInput{Word: "hello"})
	var upstream *service.UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.Equal(t, "grammar", upstream.Op)
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
