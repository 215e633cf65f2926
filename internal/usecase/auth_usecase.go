package usecase

import (
	"context"
	"time"

	"flatmatch/internal/domain/entity"
	"flatmatch/internal/domain/repository"
	"flatmatch/internal/infrastructure/firebase"
	"flatmatch/pkg/errors"
)

// AuthUseCase keeps the local user collection in sync with the identity
// provider. Sign-in itself happens client-side against Firebase; this layer
// only ever sees verified uids.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth *firebase.FirebaseAuthClient
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth *firebase.FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

type SyncUserInput struct {
	DisplayName string
}

// SyncUser creates the user document on first sign-in and refreshes the
// display name on later ones.
func (uc *AuthUseCase) SyncUser(ctx context.Context, uid string, input SyncUserInput) (*entity.User, error) {
	existing, err := uc.userRepo.GetByID(ctx, uid)
	if err == nil {
		if input.DisplayName != "" && input.DisplayName != existing.DisplayName {
			existing.DisplayName = input.DisplayName
			if err := uc.userRepo.Update(ctx, existing); err != nil {
				return nil, err
			}
		}
		return existing, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	record, err := uc.firebaseAuth.GetUser(ctx, uid)
	if err != nil {
		return nil, errors.Internal("Failed to load identity provider record", err)
	}

	displayName := input.DisplayName
	if displayName == "" {
		displayName = record.DisplayName
	}

	now := time.Now()
	user := &entity.User{
		ID:          uid,
		Email:       record.Email,
		DisplayName: displayName,
		Role:        "user",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}
