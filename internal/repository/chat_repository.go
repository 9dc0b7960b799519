package repository

//go:generate mockgen -source=chat_repository.go -destination=mock/chat_repository_mock.go -package=mock

import (
	"context"
)

type ChatRepository interface {
	// Create appends a chat turn and returns the id assigned by the store.
	Create(ctx context.Context, userMessage string, botResponse *string) (int64, error)
}

type chatRepository struct {
	db dbtx
}

func NewChatRepository(db dbtx) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Create(ctx context.Context, userMessage string, botResponse *string) (int64, error) {
	result, err := r.db.ExecContext(
		ctx,
		`INSERT INTO chat_messages (user_message, bot_response) VALUES (?, ?)`,
		userMessage,
		nullableString(botResponse),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}
