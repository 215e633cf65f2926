package repository

import (
	"context"

	"flatmatch/internal/domain/entity"
)

// Unsubscribe releases a live subscription. Every listener returned by the
// chat repository must be released when its consumer goes away; releasing
// twice is harmless.
type Unsubscribe func()

type ChatRepository interface {
	// GetOrCreateThread resolves the thread for the given pair key,
	// creating it atomically when absent. The returned bool reports
	// whether a new thread was created.
	GetOrCreateThread(ctx context.Context, thread *entity.ChatThread) (*entity.ChatThread, bool, error)
	GetThread(ctx context.Context, id string) (*entity.ChatThread, error)
	ListThreadsByUser(ctx context.Context, userID string) ([]*entity.ChatThread, error)

	CreateMessage(ctx context.Context, message *entity.ChatMessage) error
	ListMessages(ctx context.Context, threadID string, limit int) ([]*entity.ChatMessage, error)

	// UpdateLastMessage merges the projection onto the thread document
	// without touching its other fields.
	UpdateLastMessage(ctx context.Context, threadID string, last entity.LastMessage) error

	// Live views. Updates are pushed to the callbacks as the store
	// delivers them; no relative ordering holds across different
	// subscriptions of the same thread.
	ListenToThread(ctx context.Context, threadID string,
		onUpdate func(*entity.ChatThread), onError func(error)) Unsubscribe
	ListenToMessages(ctx context.Context, threadID string, limit int,
		onUpdate func([]*entity.ChatMessage), onError func(error)) Unsubscribe
	ListenToUserThreads(ctx context.Context, userID string,
		onUpdate func([]*entity.ChatThread), onError func(error)) Unsubscribe
}
