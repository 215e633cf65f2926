package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatmatch/internal/domain/entity"
	"flatmatch/internal/domain/repository"
	"flatmatch/pkg/errors"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

type fakeChatRepo struct {
	threads  map[string]*entity.ChatThread
	messages map[string][]*entity.ChatMessage
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{
		threads:  make(map[string]*entity.ChatThread),
		messages: make(map[string][]*entity.ChatMessage),
	}
}

func (f *fakeChatRepo) GetOrCreateThread(ctx context.Context, thread *entity.ChatThread) (*entity.ChatThread, bool, error) {
	if existing, ok := f.threads[thread.ID]; ok {
		return existing, false, nil
	}
	f.threads[thread.ID] = thread
	return thread, true, nil
}

func (f *fakeChatRepo) GetThread(ctx context.Context, id string) (*entity.ChatThread, error) {
	thread, ok := f.threads[id]
	if !ok {
		return nil, errors.NotFound("Chat", nil)
	}
	return thread, nil
}

func (f *fakeChatRepo) ListThreadsByUser(ctx context.Context, userID string) ([]*entity.ChatThread, error) {
	var out []*entity.ChatThread
	for _, thread := range f.threads {
		for _, p := range thread.Participants {
			if p == userID {
				out = append(out, thread)
			}
		}
	}
	return out, nil
}

func (f *fakeChatRepo) CreateMessage(ctx context.Context, message *entity.ChatMessage) error {
	f.messages[message.ThreadID] = append(f.messages[message.ThreadID], message)
	return nil
}

func (f *fakeChatRepo) ListMessages(ctx context.Context, threadID string, limit int) ([]*entity.ChatMessage, error) {
	messages := f.messages[threadID]
	if len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	return messages, nil
}

func (f *fakeChatRepo) UpdateLastMessage(ctx context.Context, threadID string, last entity.LastMessage) error {
	thread, ok := f.threads[threadID]
	if !ok {
		return errors.NotFound("Chat", nil)
	}
	thread.LastMessage = &last
	return nil
}

func (f *fakeChatRepo) ListenToThread(ctx context.Context, threadID string,
	onUpdate func(*entity.ChatThread), onError func(error)) repository.Unsubscribe {
	return func() {}
}

func (f *fakeChatRepo) ListenToMessages(ctx context.Context, threadID string, limit int,
	onUpdate func([]*entity.ChatMessage), onError func(error)) repository.Unsubscribe {
	return func() {}
}

func (f *fakeChatRepo) ListenToUserThreads(ctx context.Context, userID string,
	onUpdate func([]*entity.ChatThread), onError func(error)) repository.Unsubscribe {
	return func() {}
}

func newChatFixture() (*ChatUseCase, *fakeChatRepo) {
	chatRepo := newFakeChatRepo()
	userRepo := &fakeUserRepo{users: map[string]*entity.User{
		"alice": {ID: "alice", DisplayName: "Alice"},
		"bob":   {ID: "bob", DisplayName: "Bob"},
	}}
	return NewChatUseCase(chatRepo, userRepo), chatRepo
}

func TestStartChatRejectsSelf(t *testing.T) {
	uc, _ := newChatFixture()

	_, err := uc.StartChat(context.Background(), "alice", StartChatInput{RecipientID: "alice"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestStartChatRejectsUnknownRecipient(t *testing.T) {
	uc, _ := newChatFixture()

	_, err := uc.StartChat(context.Background(), "alice", StartChatInput{RecipientID: "ghost"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestStartChatIsIdempotent(t *testing.T) {
	uc, _ := newChatFixture()

	first, err := uc.StartChat(context.Background(), "alice", StartChatInput{
		RecipientID: "bob",
		ProfileID:   "room-1",
		ProfileName: "Sunny WG",
		ProfileType: "room",
	})
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, "alice_bob", first.Thread.ID)
	assert.Equal(t, []string{"alice", "bob"}, first.Thread.Participants)
	require.NotNil(t, first.Thread.InitialContext)
	assert.Equal(t, "alice", first.Thread.InitialContext.InitiatorID)
	require.NotNil(t, first.Thread.LastMessage)
	assert.Contains(t, first.Thread.LastMessage.Text, "Alice")
	assert.Contains(t, first.Thread.LastMessage.Text, "Sunny WG")

	// Starting from the other side lands on the same thread.
	second, err := uc.StartChat(context.Background(), "bob", StartChatInput{RecipientID: "alice"})
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Thread.ID, second.Thread.ID)
	assert.Equal(t, "alice", second.Thread.InitialContext.InitiatorID)
}

func TestSendMessageBlankIsNoOp(t *testing.T) {
	uc, chatRepo := newChatFixture()

	_, err := uc.StartChat(context.Background(), "alice", StartChatInput{RecipientID: "bob"})
	require.NoError(t, err)

	message, err := uc.SendMessage(context.Background(), "alice", "alice_bob", "   ")

	require.NoError(t, err)
	assert.Nil(t, message)
	assert.Empty(t, chatRepo.messages["alice_bob"])
}

func TestSendMessageUpdatesLastMessage(t *testing.T) {
	uc, chatRepo := newChatFixture()

	_, err := uc.StartChat(context.Background(), "alice", StartChatInput{RecipientID: "bob"})
	require.NoError(t, err)

	message, err := uc.SendMessage(context.Background(), "bob", "alice_bob", "  hi there ")

	require.NoError(t, err)
	require.NotNil(t, message)
	assert.Equal(t, "hi there", message.Text)
	assert.Equal(t, "bob", message.SenderID)

	thread := chatRepo.threads["alice_bob"]
	require.NotNil(t, thread.LastMessage)
	assert.Equal(t, "hi there", thread.LastMessage.Text)
	assert.Equal(t, "bob", thread.LastMessage.SenderID)
}

func TestSendMessageRejectsOutsider(t *testing.T) {
	uc, _ := newChatFixture()

	_, err := uc.StartChat(context.Background(), "alice", StartChatInput{RecipientID: "bob"})
	require.NoError(t, err)

	_, err = uc.SendMessage(context.Background(), "mallory", "alice_bob", "let me in")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestListMessagesClampsLimit(t *testing.T) {
	uc, chatRepo := newChatFixture()

	_, err := uc.StartChat(context.Background(), "alice", StartChatInput{RecipientID: "bob"})
	require.NoError(t, err)

	for i := 0; i < entity.MaxStreamedMessages+10; i++ {
		chatRepo.messages["alice_bob"] = append(chatRepo.messages["alice_bob"],
			&entity.ChatMessage{ThreadID: "alice_bob", SenderID: "alice", Text: "m"})
	}

	messages, err := uc.ListMessages(context.Background(), "alice", "alice_bob", 0)

	require.NoError(t, err)
	assert.Len(t, messages, entity.MaxStreamedMessages)
}
