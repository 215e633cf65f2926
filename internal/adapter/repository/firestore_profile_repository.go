package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"flatmatch/internal/domain/entity"
	"flatmatch/internal/domain/repository"
	"flatmatch/pkg/errors"
	"flatmatch/pkg/logger"
)

type firestoreProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &firestoreProfileRepository{
		client: client,
	}
}

func (r *firestoreProfileRepository) CreateSeeker(ctx context.Context, profile *entity.SeekerProfile) error {
	if profile.ID == "" {
		profile.ID = r.client.Collection(seekersCollection).NewDoc().ID
	}

	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	_, err := r.client.Collection(seekersCollection).Doc(profile.ID).Set(ctx, profile)
	if err != nil {
		return storeErr("Failed to create seeker profile", err)
	}

	return nil
}

func (r *firestoreProfileRepository) GetSeeker(ctx context.Context, id string) (*entity.SeekerProfile, error) {
	doc, err := r.client.Collection(seekersCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Seeker profile", err)
		}
		return nil, storeErr("Failed to get seeker profile", err)
	}

	var profile entity.SeekerProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse seeker profile data", err)
	}
	profile.ID = doc.Ref.ID

	return &profile, nil
}

func (r *firestoreProfileRepository) ListSeekers(ctx context.Context) ([]*entity.SeekerProfile, error) {
	iter := r.client.Collection(seekersCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)

	var profiles []*entity.SeekerProfile
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, storeErr("Failed to iterate seeker profiles", err)
		}

		var profile entity.SeekerProfile
		if err := doc.DataTo(&profile); err != nil {
			logger.Warn("Skipping malformed seeker profile %s: %v", doc.Ref.ID, err)
			continue
		}
		profile.ID = doc.Ref.ID
		profiles = append(profiles, &profile)
	}

	return profiles, nil
}

func (r *firestoreProfileRepository) UpdateSeeker(ctx context.Context, profile *entity.SeekerProfile) error {
	profile.UpdatedAt = time.Now()

	_, err := r.client.Collection(seekersCollection).Doc(profile.ID).Set(ctx, profile)
	if err != nil {
		return storeErr("Failed to update seeker profile", err)
	}

	return nil
}

func (r *firestoreProfileRepository) DeleteSeeker(ctx context.Context, id string) error {
	_, err := r.client.Collection(seekersCollection).Doc(id).Delete(ctx)
	if err != nil {
		return storeErr("Failed to delete seeker profile", err)
	}

	return nil
}

func (r *firestoreProfileRepository) CreateRoom(ctx context.Context, profile *entity.RoomProfile) error {
	if profile.ID == "" {
		profile.ID = r.client.Collection(roomsCollection).NewDoc().ID
	}

	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	profile.Generation = entity.RoomGenerationCurrent

	// New rooms always land in the current collection.
	_, err := r.client.Collection(roomsCollection).Doc(profile.ID).Set(ctx, profile)
	if err != nil {
		return storeErr("Failed to create room profile", err)
	}

	return nil
}

func (r *firestoreProfileRepository) GetRoom(ctx context.Context, id string) (*entity.RoomProfile, error) {
	doc, err := r.client.Collection(roomsCollection).Doc(id).Get(ctx)
	if err == nil {
		return parseRoom(doc, entity.RoomGenerationCurrent)
	}
	if !isNotFound(err) {
		return nil, storeErr("Failed to get room profile", err)
	}

	doc, err = r.client.Collection(legacyRoomsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Room profile", err)
		}
		return nil, storeErr("Failed to get room profile", err)
	}

	return parseRoom(doc, entity.RoomGenerationLegacy)
}

// ListRooms unions the current and legacy collections into one logical set.
// The generation tag only routes deletes; ranking never sees it.
func (r *firestoreProfileRepository) ListRooms(ctx context.Context) ([]*entity.RoomProfile, error) {
	current, err := r.listRoomCollection(ctx, roomsCollection, entity.RoomGenerationCurrent)
	if err != nil {
		return nil, err
	}

	legacy, err := r.listRoomCollection(ctx, legacyRoomsCollection, entity.RoomGenerationLegacy)
	if err != nil {
		return nil, err
	}

	return append(current, legacy...), nil
}

func (r *firestoreProfileRepository) listRoomCollection(ctx context.Context, collection string, generation entity.RoomGeneration) ([]*entity.RoomProfile, error) {
	iter := r.client.Collection(collection).Documents(ctx)

	var profiles []*entity.RoomProfile
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, storeErr("Failed to iterate room profiles", err)
		}

		profile, err := parseRoom(doc, generation)
		if err != nil {
			logger.Warn("Skipping malformed room profile %s: %v", doc.Ref.ID, err)
			continue
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

func (r *firestoreProfileRepository) UpdateRoom(ctx context.Context, profile *entity.RoomProfile) error {
	profile.UpdatedAt = time.Now()

	collection := roomsCollection
	if profile.Generation == entity.RoomGenerationLegacy {
		collection = legacyRoomsCollection
	}

	_, err := r.client.Collection(collection).Doc(profile.ID).Set(ctx, profile)
	if err != nil {
		return storeErr("Failed to update room profile", err)
	}

	return nil
}

func (r *firestoreProfileRepository) DeleteRoom(ctx context.Context, id string, generation entity.RoomGeneration) error {
	collection := roomsCollection
	if generation == entity.RoomGenerationLegacy {
		collection = legacyRoomsCollection
	}

	_, err := r.client.Collection(collection).Doc(id).Delete(ctx)
	if err != nil {
		return storeErr("Failed to delete room profile", err)
	}

	return nil
}

func parseRoom(doc *firestore.DocumentSnapshot, generation entity.RoomGeneration) (*entity.RoomProfile, error) {
	var profile entity.RoomProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse room profile data", err)
	}
	profile.ID = doc.Ref.ID
	profile.Generation = generation
	return &profile, nil
}
