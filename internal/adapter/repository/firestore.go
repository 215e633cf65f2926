package repository

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apperrors "flatmatch/pkg/errors"
)

// Logical collection names.
const (
	usersCollection       = "users"
	seekersCollection     = "searcherProfiles"
	roomsCollection       = "roomProfiles"
	legacyRoomsCollection = "wgProfiles"
	chatsCollection       = "chats"
	messagesCollection    = "messages"
)

// storeErr maps a Firestore failure onto the app error taxonomy. Deadline
// and availability failures become STORE_UNAVAILABLE so callers can surface
// a retryable condition instead of a generic internal error.
func storeErr(message string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.StoreUnavailable(message, err)
	}
	switch status.Code(err) {
	case codes.DeadlineExceeded, codes.Unavailable:
		return apperrors.StoreUnavailable(message, err)
	default:
		return apperrors.Internal(message, err)
	}
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
