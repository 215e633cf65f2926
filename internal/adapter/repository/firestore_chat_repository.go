package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"flatmatch/internal/domain/entity"
	"flatmatch/internal/domain/repository"
	"flatmatch/pkg/errors"
	"flatmatch/pkg/logger"
)

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

// GetOrCreateThread runs find-or-create inside a transaction keyed on the
// thread document, whose ID is the canonical pair key. Two concurrent
// initiations of the same pair therefore resolve to the same document; the
// read-then-write race cannot produce a duplicate thread.
func (r *firestoreChatRepository) GetOrCreateThread(ctx context.Context, thread *entity.ChatThread) (*entity.ChatThread, bool, error) {
	docRef := r.client.Collection(chatsCollection).Doc(thread.ID)

	var existing *entity.ChatThread
	created := false

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		existing = nil
		created = false

		doc, err := tx.Get(docRef)
		if err == nil {
			var found entity.ChatThread
			if err := doc.DataTo(&found); err != nil {
				return err
			}
			found.ID = doc.Ref.ID
			existing = &found
			return nil
		}
		if !isNotFound(err) {
			return err
		}

		created = true
		return tx.Create(docRef, thread)
	})
	if err != nil {
		return nil, false, storeErr("Failed to resolve chat thread", err)
	}

	if created {
		return thread, true, nil
	}
	return existing, false, nil
}

func (r *firestoreChatRepository) GetThread(ctx context.Context, id string) (*entity.ChatThread, error) {
	doc, err := r.client.Collection(chatsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Chat thread", err)
		}
		return nil, storeErr("Failed to get chat thread", err)
	}

	var thread entity.ChatThread
	if err := doc.DataTo(&thread); err != nil {
		return nil, errors.Internal("Failed to parse chat thread data", err)
	}
	thread.ID = doc.Ref.ID

	return &thread, nil
}

func (r *firestoreChatRepository) ListThreadsByUser(ctx context.Context, userID string) ([]*entity.ChatThread, error) {
	docs, err := r.client.Collection(chatsCollection).
		Where("participants", "array-contains", userID).
		OrderBy("lastMessageAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, storeErr("Failed to fetch chat threads", err)
	}

	var threads []*entity.ChatThread
	for _, doc := range docs {
		var thread entity.ChatThread
		if err := doc.DataTo(&thread); err != nil {
			logger.Warn("Skipping malformed chat thread %s: %v", doc.Ref.ID, err)
			continue
		}
		thread.ID = doc.Ref.ID
		threads = append(threads, &thread)
	}

	return threads, nil
}

func (r *firestoreChatRepository) CreateMessage(ctx context.Context, message *entity.ChatMessage) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	// CreatedAt stays zero here; the serverTimestamp tag resolves it to the
	// store's clock at write time.
	_, err := r.client.Collection(chatsCollection).Doc(message.ThreadID).
		Collection(messagesCollection).Doc(message.ID).Set(ctx, message)
	if err != nil {
		return storeErr("Failed to create message", err)
	}

	return nil
}

func (r *firestoreChatRepository) ListMessages(ctx context.Context, threadID string, limit int) ([]*entity.ChatMessage, error) {
	query := r.client.Collection(chatsCollection).Doc(threadID).
		Collection(messagesCollection).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, storeErr("Failed to fetch messages", err)
	}

	return parseMessagesAscending(docs), nil
}

func (r *firestoreChatRepository) UpdateLastMessage(ctx context.Context, threadID string, last entity.LastMessage) error {
	// Merge write: only the projection fields change, initialContext and the
	// rest of the thread document stay untouched.
	_, err := r.client.Collection(chatsCollection).Doc(threadID).Set(ctx, map[string]interface{}{
		"lastMessage": map[string]interface{}{
			"senderId": last.SenderID,
			"text":     last.Text,
		},
		"lastMessageAt": firestore.ServerTimestamp,
	}, firestore.MergeAll)
	if err != nil {
		return storeErr("Failed to update last message", err)
	}

	return nil
}

func (r *firestoreChatRepository) ListenToThread(ctx context.Context, threadID string,
	onUpdate func(*entity.ChatThread), onError func(error)) repository.Unsubscribe {

	lctx, cancel := context.WithCancel(ctx)

	go func() {
		snaps := r.client.Collection(chatsCollection).Doc(threadID).Snapshots(lctx)
		defer snaps.Stop()

		for {
			snap, err := snaps.Next()
			if err != nil {
				if listenerClosed(lctx, err) {
					return
				}
				onError(storeErr("Chat thread subscription failed", err))
				return
			}

			if !snap.Exists() {
				// No metadata yet; consumers treat this as "no context".
				onUpdate(nil)
				continue
			}

			var thread entity.ChatThread
			if err := snap.DataTo(&thread); err != nil {
				logger.Warn("Skipping malformed chat thread snapshot %s: %v", threadID, err)
				continue
			}
			thread.ID = snap.Ref.ID
			onUpdate(&thread)
		}
	}()

	return func() { cancel() }
}

func (r *firestoreChatRepository) ListenToMessages(ctx context.Context, threadID string, limit int,
	onUpdate func([]*entity.ChatMessage), onError func(error)) repository.Unsubscribe {

	lctx, cancel := context.WithCancel(ctx)

	query := r.client.Collection(chatsCollection).Doc(threadID).
		Collection(messagesCollection).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	go func() {
		snaps := query.Snapshots(lctx)
		defer snaps.Stop()

		for {
			snap, err := snaps.Next()
			if err != nil {
				if listenerClosed(lctx, err) {
					return
				}
				onError(storeErr("Message subscription failed", err))
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				onError(storeErr("Failed to read message snapshot", err))
				return
			}
			onUpdate(parseMessagesAscending(docs))
		}
	}()

	return func() { cancel() }
}

func (r *firestoreChatRepository) ListenToUserThreads(ctx context.Context, userID string,
	onUpdate func([]*entity.ChatThread), onError func(error)) repository.Unsubscribe {

	lctx, cancel := context.WithCancel(ctx)

	query := r.client.Collection(chatsCollection).
		Where("participants", "array-contains", userID).
		OrderBy("lastMessageAt", firestore.Desc)

	go func() {
		snaps := query.Snapshots(lctx)
		defer snaps.Stop()

		for {
			snap, err := snaps.Next()
			if err != nil {
				if listenerClosed(lctx, err) {
					return
				}
				onError(storeErr("Thread list subscription failed", err))
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				onError(storeErr("Failed to read thread list snapshot", err))
				return
			}

			var threads []*entity.ChatThread
			for _, doc := range docs {
				var thread entity.ChatThread
				if err := doc.DataTo(&thread); err != nil {
					logger.Warn("Skipping malformed chat thread %s: %v", doc.Ref.ID, err)
					continue
				}
				thread.ID = doc.Ref.ID
				threads = append(threads, &thread)
			}
			onUpdate(threads)
		}
	}()

	return func() { cancel() }
}

// listenerClosed reports whether a snapshot iterator error is the normal
// result of releasing the subscription.
func listenerClosed(ctx context.Context, err error) bool {
	return ctx.Err() != nil || status.Code(err) == codes.Canceled
}

// parseMessagesAscending converts a newest-first document page into the
// ascending order consumers render. The query fetches descending so the
// cap keeps the most recent entries.
func parseMessagesAscending(docs []*firestore.DocumentSnapshot) []*entity.ChatMessage {
	messages := make([]*entity.ChatMessage, 0, len(docs))
	for i := len(docs) - 1; i >= 0; i-- {
		var message entity.ChatMessage
		if err := docs[i].DataTo(&message); err != nil {
			logger.Warn("Skipping malformed message %s: %v", docs[i].Ref.ID, err)
			continue
		}
		message.ID = docs[i].Ref.ID
		messages = append(messages, &message)
	}
	return messages
}
