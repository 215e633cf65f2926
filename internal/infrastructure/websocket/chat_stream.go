package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"flatmatch/internal/domain/entity"
	"flatmatch/internal/domain/repository"
	apperrors "flatmatch/pkg/errors"
	"flatmatch/pkg/logger"
)

// Stream event types
const (
	EventTypePing        = "ping"
	EventTypePong        = "pong"
	EventTypeJoinThread  = "join_thread"
	EventTypeLeaveThread = "leave_thread"
	EventTypeSendMessage = "send_message"
	EventTypeThreadMeta  = "thread_meta"
	EventTypeMessages    = "thread_messages"
	EventTypeThreadList  = "thread_list"
	EventTypeError       = "error"
)

// StreamEvent is the wire frame for both directions.
type StreamEvent struct {
	Type      string          `json:"type"`
	ThreadID  string          `json:"thread_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp string          `json:"timestamp"`
}

type joinThreadData struct {
	ThreadID string `json:"thread_id"`
}

type sendMessageData struct {
	ThreadID string `json:"thread_id"`
	Text     string `json:"text"`
}

// ChatService is the slice of the chat use case the stream needs. Defined
// here so the stream never depends on the use case package.
type ChatService interface {
	AuthorizeThread(ctx context.Context, userID, threadID string) error
	SendMessage(ctx context.Context, userID, threadID, text string) (*entity.ChatMessage, error)
}

// session holds one connected user's live subscriptions. threadRelease
// bundles the metadata and message listeners of the currently viewed
// thread; listRelease is the standing thread-list subscription.
type session struct {
	threadID      string
	threadRelease []repository.Unsubscribe
	listRelease   repository.Unsubscribe
}

// ChatStream bridges Firestore listeners to WebSocket clients. A client
// views at most one thread at a time; joining a new thread releases the
// previous thread's listeners before the new ones attach, so a stale view
// never receives updates.
type ChatStream struct {
	ctx     context.Context
	manager *Manager
	chats   repository.ChatRepository
	service ChatService

	mu       sync.Mutex
	sessions map[string]*session
}

func NewChatStream(ctx context.Context, manager *Manager, chats repository.ChatRepository, service ChatService) *ChatStream {
	s := &ChatStream{
		ctx:      ctx,
		manager:  manager,
		chats:    chats,
		service:  service,
		sessions: make(map[string]*session),
	}
	manager.SetHandlers(s.handleConnect, s.handleDisconnect, s.handleMessage)
	return s
}

func (s *ChatStream) handleConnect(client *Client) {
	userID := client.UserID

	release := s.chats.ListenToUserThreads(s.ctx, userID,
		func(threads []*entity.ChatThread) {
			s.push(userID, EventTypeThreadList, "", threads)
		},
		func(err error) {
			logger.Error("Thread list subscription for %s: %v", userID, err)
			s.pushError(userID, "Chat list temporarily unavailable")
		})

	s.mu.Lock()
	prev := s.sessions[userID]
	s.sessions[userID] = &session{listRelease: release}
	s.mu.Unlock()

	// A reconnect replaces the client without a disconnect event, so the
	// previous session's listeners are released here.
	if prev != nil {
		for _, release := range prev.threadRelease {
			release()
		}
		if prev.listRelease != nil {
			prev.listRelease()
		}
	}
}

func (s *ChatStream) handleDisconnect(client *Client) {
	s.mu.Lock()
	sess, ok := s.sessions[client.UserID]
	delete(s.sessions, client.UserID)
	s.mu.Unlock()

	if !ok {
		return
	}
	for _, release := range sess.threadRelease {
		release()
	}
	if sess.listRelease != nil {
		sess.listRelease()
	}
}

func (s *ChatStream) handleMessage(client *Client, raw []byte) {
	var event StreamEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		s.pushError(client.UserID, "Invalid message format")
		return
	}

	switch event.Type {
	case EventTypePing:
		s.push(client.UserID, EventTypePong, "", map[string]string{"status": "alive"})

	case EventTypeJoinThread:
		var data joinThreadData
		if err := json.Unmarshal(event.Data, &data); err != nil || data.ThreadID == "" {
			s.pushError(client.UserID, "Invalid join request")
			return
		}
		s.joinThread(client.UserID, data.ThreadID)

	case EventTypeLeaveThread:
		s.leaveThread(client.UserID)

	case EventTypeSendMessage:
		var data sendMessageData
		if err := json.Unmarshal(event.Data, &data); err != nil || data.ThreadID == "" {
			s.pushError(client.UserID, "Invalid send request")
			return
		}
		if _, err := s.service.SendMessage(s.ctx, client.UserID, data.ThreadID, data.Text); err != nil {
			s.pushAppError(client.UserID, err)
		}

	default:
		logger.Debug("Unknown stream event type %q from %s", event.Type, client.UserID)
		s.pushError(client.UserID, "Unknown message type")
	}
}

func (s *ChatStream) joinThread(userID, threadID string) {
	if err := s.service.AuthorizeThread(s.ctx, userID, threadID); err != nil {
		s.pushAppError(userID, err)
		return
	}

	// Release the previous thread's listeners before attaching new ones.
	s.leaveThread(userID)

	metaRelease := s.chats.ListenToThread(s.ctx, threadID,
		func(thread *entity.ChatThread) {
			// A nil thread means the metadata document has not arrived
			// yet; consumers render "no context" rather than an error.
			s.push(userID, EventTypeThreadMeta, threadID, thread)
		},
		func(err error) {
			logger.Error("Thread subscription %s for %s: %v", threadID, userID, err)
			s.pushError(userID, "Chat temporarily unavailable")
		})

	messagesRelease := s.chats.ListenToMessages(s.ctx, threadID, entity.MaxStreamedMessages,
		func(messages []*entity.ChatMessage) {
			s.push(userID, EventTypeMessages, threadID, messages)
		},
		func(err error) {
			logger.Error("Message subscription %s for %s: %v", threadID, userID, err)
			s.pushError(userID, "Messages temporarily unavailable")
		})

	s.mu.Lock()
	if sess, ok := s.sessions[userID]; ok {
		sess.threadID = threadID
		sess.threadRelease = []repository.Unsubscribe{metaRelease, messagesRelease}
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	// Client disconnected while we were attaching.
	metaRelease()
	messagesRelease()
}

func (s *ChatStream) leaveThread(userID string) {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	var releases []repository.Unsubscribe
	if ok {
		releases = sess.threadRelease
		sess.threadRelease = nil
		sess.threadID = ""
	}
	s.mu.Unlock()

	for _, release := range releases {
		release()
	}
}

func (s *ChatStream) push(userID, eventType, threadID string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to marshal %s event for %s: %v", eventType, userID, err)
		return
	}

	frame, err := json.Marshal(StreamEvent{
		Type:      eventType,
		ThreadID:  threadID,
		Data:      payload,
		Timestamp: time.Now().Format(time.RFC3339),
	})
	if err != nil {
		logger.Error("Failed to marshal stream frame for %s: %v", userID, err)
		return
	}

	s.manager.SendToUser(userID, frame)
}

func (s *ChatStream) pushError(userID, message string) {
	s.push(userID, EventTypeError, "", map[string]string{"message": message})
}

func (s *ChatStream) pushAppError(userID string, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		s.pushError(userID, appErr.Message)
		return
	}
	s.pushError(userID, "Operation failed")
}
