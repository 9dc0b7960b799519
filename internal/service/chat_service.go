package service

//go:generate mockgen -source=chat_service.go -destination=mock/chat_service_mock.go -package=mock

import (
	"context"
	"fmt"
	"time"

	"lingua/backend/internal/logger"
	"lingua/backend/internal/metrics"
	"lingua/backend/internal/repository"
	"lingua/backend/internal/service/ai"
)

// ChatInput is one user turn. Context optionally carries the most recent
// translation shown to the user.
type ChatInput struct {
	Message  string
	Context  string
	Language string
}

// ChatResult is the assistant's reply to one turn.
type ChatResult struct {
	Response    string    `json:"response"`
	Suggestions []string  `json:"suggestions"`
	Timestamp   time.Time `json:"timestamp"`
}

// ChatService answers questions through the Lingua assistant persona.
type ChatService interface {
	// Chat returns the reply with three follow-up suggestions and records
	// the turn. A failed history write does not fail the call.
	Chat(ctx context.Context, in ChatInput) (ChatResult, error)
}

type chatService struct {
	provider ai.Provider
	repo     repository.ChatRepository
}

// NewChatService creates a new chat service.
func NewChatService(provider ai.Provider, repo repository.ChatRepository) ChatService {
	return &chatService{provider: provider, repo: repo}
}

func (s *chatService) Chat(ctx context.Context, in ChatInput) (ChatResult, error) {
	messages, err := ai.BuildChatMessages(in.Message, in.Context)
	if err != nil {
		return ChatResult{}, err
	}

	reply, err := s.provider.Complete(ctx, messages, ai.ChatOptions)
	if err != nil {
		return ChatResult{}, &UpstreamError{Op: "chat", Err: err}
	}
	response := ai.NormalizeText(reply)

	if err := ctx.Err(); err != nil {
		return ChatResult{}, fmt.Errorf("chat: %w", err)
	}

	if _, err := s.repo.Create(ctx, in.Message, &response); err != nil {
		metrics.HistoryWriteFailures.WithLabelValues("chat_messages").Inc()
		logger.Warn("save chat message failed", "module", "service", "action", "create", "resource", "chat", "result", "failed", "error", err)
	}

	logger.Debug("chat done", "module", "service", "action", "chat", "resource", "chat", "result", "ok", "language", in.Language, "has_context", in.Context != "")

	return ChatResult{
		Response:    response,
		Suggestions: ai.Suggest(in.Message, response),
		Timestamp:   time.Now().UTC(),
	}, nil
}
