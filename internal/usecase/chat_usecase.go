package usecase

import (
	"context"
	"fmt"
	"strings"

	"flatmatch/internal/domain/entity"
	"flatmatch/internal/domain/repository"
	"flatmatch/internal/infrastructure/ratelimit"
	"flatmatch/pkg/errors"
	"flatmatch/pkg/logger"
)

type ChatUseCase struct {
	chatRepo    repository.ChatRepository
	userRepo    repository.UserRepository
	rateLimiter *ratelimit.RateLimiter
}

func NewChatUseCase(chatRepo repository.ChatRepository, userRepo repository.UserRepository) *ChatUseCase {
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &ChatUseCase{
		chatRepo:    chatRepo,
		userRepo:    userRepo,
		rateLimiter: rateLimiter,
	}
}

type StartChatInput struct {
	RecipientID string
	ProfileID   string
	ProfileName string
	ProfileType string // "seeker", "room"
}

type StartChatResult struct {
	Thread  *entity.ChatThread `json:"thread"`
	Created bool               `json:"created"`
}

// StartChat resolves the conversation identity for the caller and the
// recipient. The thread ID is derived from the unordered pair, so starting
// from either side, or twice, lands on the same thread.
func (uc *ChatUseCase) StartChat(ctx context.Context, userID string, input StartChatInput) (*StartChatResult, error) {
	if userID == input.RecipientID {
		return nil, errors.BadRequest("You cannot start a chat with yourself", nil)
	}

	allowed, waitTime := uc.rateLimiter.Allow(userID, "start_chat")
	if !allowed {
		logger.Warn("StartChat rate limited: user %s must wait %v", userID, waitTime)
		return nil, errors.TooManyRequests("Please wait before starting another chat", waitTime)
	}

	initiator, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.userRepo.GetByID(ctx, input.RecipientID); err != nil {
		return nil, errors.NotFound("Recipient", err)
	}

	thread := &entity.ChatThread{
		ID:           entity.PairKey(userID, input.RecipientID),
		Participants: entity.SortedPair(userID, input.RecipientID),
		LastMessage: &entity.LastMessage{
			SenderID: userID,
			Text:     interestMessage(initiator.DisplayName, input.ProfileName),
		},
	}
	if input.ProfileID != "" {
		thread.InitialContext = &entity.ChatContext{
			ProfileID:   input.ProfileID,
			ProfileName: input.ProfileName,
			ProfileType: input.ProfileType,
			InitiatorID: userID,
		}
	}

	resolved, created, err := uc.chatRepo.GetOrCreateThread(ctx, thread)
	if err != nil {
		return nil, err
	}

	return &StartChatResult{Thread: resolved, Created: created}, nil
}

// SendMessage appends a message and refreshes the thread's last-message
// projection. Blank input is a silent no-op.
func (uc *ChatUseCase) SendMessage(ctx context.Context, userID, threadID, text string) (*entity.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	allowed, waitTime := uc.rateLimiter.Allow(userID, "send_message")
	if !allowed {
		logger.Warn("SendMessage rate limited: user %s must wait %v", userID, waitTime)
		return nil, errors.TooManyRequests("Please wait before sending another message", waitTime)
	}

	if err := uc.AuthorizeThread(ctx, userID, threadID); err != nil {
		return nil, err
	}

	message := &entity.ChatMessage{
		ThreadID: threadID,
		SenderID: userID,
		Text:     text,
	}
	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	// Projection refresh is merge-only; a failure here leaves the message
	// itself intact, so log and report without undoing anything.
	if err := uc.chatRepo.UpdateLastMessage(ctx, threadID, entity.LastMessage{
		SenderID: userID,
		Text:     text,
	}); err != nil {
		logger.Error("Failed to update last message for thread %s: %v", threadID, err)
		return nil, err
	}

	return message, nil
}

// AuthorizeThread checks the user participates in the thread.
func (uc *ChatUseCase) AuthorizeThread(ctx context.Context, userID, threadID string) error {
	thread, err := uc.chatRepo.GetThread(ctx, threadID)
	if err != nil {
		return err
	}

	for _, participant := range thread.Participants {
		if participant == userID {
			return nil
		}
	}
	return errors.Forbidden("You are not a participant of this chat", nil)
}

func (uc *ChatUseCase) GetThread(ctx context.Context, userID, threadID string) (*entity.ChatThread, error) {
	thread, err := uc.chatRepo.GetThread(ctx, threadID)
	if err != nil {
		return nil, err
	}

	for _, participant := range thread.Participants {
		if participant == userID {
			return thread, nil
		}
	}
	return nil, errors.Forbidden("You are not a participant of this chat", nil)
}

func (uc *ChatUseCase) ListThreads(ctx context.Context, userID string) ([]*entity.ChatThread, error) {
	return uc.chatRepo.ListThreadsByUser(ctx, userID)
}

func (uc *ChatUseCase) ListMessages(ctx context.Context, userID, threadID string, limit int) ([]*entity.ChatMessage, error) {
	if err := uc.AuthorizeThread(ctx, userID, threadID); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > entity.MaxStreamedMessages {
		limit = entity.MaxStreamedMessages
	}
	return uc.chatRepo.ListMessages(ctx, threadID, limit)
}

func interestMessage(initiatorName, profileName string) string {
	if initiatorName == "" {
		initiatorName = "Someone"
	}
	if profileName == "" {
		return fmt.Sprintf("%s wants to get in touch", initiatorName)
	}
	return fmt.Sprintf("%s is interested in %q", initiatorName, profileName)
}
