package entity

import (
	"sort"
	"strings"
	"time"
)

// MaxStreamedMessages caps a live message view to the most recent entries.
const MaxStreamedMessages = 50

// ChatContext records which profile a chat was started from.
type ChatContext struct {
	ProfileID   string `json:"profile_id" firestore:"profileId"`
	ProfileName string `json:"profile_name" firestore:"profileName"`
	ProfileType string `json:"profile_type" firestore:"profileType"` // "seeker", "room"
	InitiatorID string `json:"initiator_id" firestore:"initiatorId"`
}

// LastMessage is the denormalized projection kept on the thread document
// for list display.
type LastMessage struct {
	SenderID string `json:"sender_id" firestore:"senderId"`
	Text     string `json:"text" firestore:"text"`
}

// ChatThread is a two-party conversation. Its document ID is the canonical
// pair key, so at most one thread can exist per unordered user pair.
type ChatThread struct {
	ID             string       `json:"id" firestore:"id"`
	Participants   []string     `json:"participants" firestore:"participants"` // always sorted
	InitialContext *ChatContext `json:"initial_context,omitempty" firestore:"initialContext,omitempty"`
	LastMessage    *LastMessage `json:"last_message,omitempty" firestore:"lastMessage,omitempty"`
	LastMessageAt  time.Time    `json:"last_message_at" firestore:"lastMessageAt,serverTimestamp"`
	CreatedAt      time.Time    `json:"created_at" firestore:"createdAt,serverTimestamp"`
}

type ChatMessage struct {
	ID        string    `json:"id" firestore:"id"`
	ThreadID  string    `json:"thread_id" firestore:"threadId"`
	SenderID  string    `json:"sender_id" firestore:"senderId"`
	Text      string    `json:"text" firestore:"text"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
}

// PairKey derives the canonical thread identity for an unordered user pair:
// the two IDs sorted lexicographically and joined. PairKey(a,b) == PairKey(b,a).
func PairKey(userA, userB string) string {
	pair := SortedPair(userA, userB)
	return strings.Join(pair, "_")
}

// SortedPair returns the two user IDs as a sorted 2-element slice, the form
// stored on the thread document.
func SortedPair(userA, userB string) []string {
	pair := []string{userA, userB}
	sort.Strings(pair)
	return pair
}
