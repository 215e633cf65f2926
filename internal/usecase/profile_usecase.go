package usecase

import (
	"context"

	"flatmatch/internal/domain/entity"
	"flatmatch/internal/domain/repository"
	"flatmatch/pkg/errors"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewProfileUseCase(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// Flexible fields mirror the entity: multi-selects may arrive as arrays or
// comma-separated strings, numerics as numbers or numeric strings. The
// normalizer absorbs both shapes at scoring time.
type SeekerProfileInput struct {
	Name              string
	Age               interface{}
	Gender            string
	MaxRent           interface{}
	Pets              string
	PersonalityTraits interface{}
	Interests         interface{}
	CommunalLiving    interface{}
	Values            interface{}
	LookingFor        string
	PhotoURL          string
}

type RoomProfileInput struct {
	Name                 string
	MinAge               interface{}
	MaxAge               interface{}
	GenderPreference     string
	Rent                 interface{}
	PetsAllowed          string
	RoomType             string
	AvgAge               interface{}
	Description          string
	LookingForInFlatmate string
	PersonalityTraits    interface{}
	Interests            interface{}
	CommunalLiving       interface{}
	Values               interface{}
	PhotoURL             string
}

func (uc *ProfileUseCase) CreateSeeker(ctx context.Context, userID string, input SeekerProfileInput) (*entity.SeekerProfile, error) {
	profile := &entity.SeekerProfile{
		Name:              input.Name,
		Age:               input.Age,
		Gender:            input.Gender,
		MaxRent:           input.MaxRent,
		Pets:              input.Pets,
		PersonalityTraits: input.PersonalityTraits,
		Interests:         input.Interests,
		CommunalLiving:    input.CommunalLiving,
		Values:            input.Values,
		LookingFor:        input.LookingFor,
		PhotoURL:          input.PhotoURL,
		OwnerID:           userID,
	}

	if err := uc.profileRepo.CreateSeeker(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (uc *ProfileUseCase) GetSeeker(ctx context.Context, id string) (*entity.SeekerProfile, error) {
	return uc.profileRepo.GetSeeker(ctx, id)
}

func (uc *ProfileUseCase) ListSeekers(ctx context.Context) ([]*entity.SeekerProfile, error) {
	return uc.profileRepo.ListSeekers(ctx)
}

func (uc *ProfileUseCase) UpdateSeeker(ctx context.Context, userID, id string, input SeekerProfileInput) (*entity.SeekerProfile, error) {
	existing, err := uc.profileRepo.GetSeeker(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.OwnerID != userID {
		return nil, errors.Forbidden("You can only update your own profile", nil)
	}

	// Owner and creation time are immutable; everything else is
	// last-write-wins.
	existing.Name = input.Name
	existing.Age = input.Age
	existing.Gender = input.Gender
	existing.MaxRent = input.MaxRent
	existing.Pets = input.Pets
	existing.PersonalityTraits = input.PersonalityTraits
	existing.Interests = input.Interests
	existing.CommunalLiving = input.CommunalLiving
	existing.Values = input.Values
	existing.LookingFor = input.LookingFor
	existing.PhotoURL = input.PhotoURL

	if err := uc.profileRepo.UpdateSeeker(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (uc *ProfileUseCase) DeleteSeeker(ctx context.Context, userID, id string) error {
	existing, err := uc.profileRepo.GetSeeker(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.authorizeOwner(ctx, userID, existing.OwnerID); err != nil {
		return err
	}

	return uc.profileRepo.DeleteSeeker(ctx, id)
}

func (uc *ProfileUseCase) CreateRoom(ctx context.Context, userID string, input RoomProfileInput) (*entity.RoomProfile, error) {
	profile := &entity.RoomProfile{
		Name:                 input.Name,
		MinAge:               input.MinAge,
		MaxAge:               input.MaxAge,
		GenderPreference:     input.GenderPreference,
		Rent:                 input.Rent,
		PetsAllowed:          input.PetsAllowed,
		RoomType:             input.RoomType,
		AvgAge:               input.AvgAge,
		Description:          input.Description,
		LookingForInFlatmate: input.LookingForInFlatmate,
		PersonalityTraits:    input.PersonalityTraits,
		Interests:            input.Interests,
		CommunalLiving:       input.CommunalLiving,
		Values:               input.Values,
		PhotoURL:             input.PhotoURL,
		OwnerID:              userID,
	}

	if err := uc.profileRepo.CreateRoom(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (uc *ProfileUseCase) GetRoom(ctx context.Context, id string) (*entity.RoomProfile, error) {
	return uc.profileRepo.GetRoom(ctx, id)
}

func (uc *ProfileUseCase) ListRooms(ctx context.Context) ([]*entity.RoomProfile, error) {
	return uc.profileRepo.ListRooms(ctx)
}

func (uc *ProfileUseCase) UpdateRoom(ctx context.Context, userID, id string, input RoomProfileInput) (*entity.RoomProfile, error) {
	existing, err := uc.profileRepo.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.OwnerID != userID {
		return nil, errors.Forbidden("You can only update your own profile", nil)
	}

	existing.Name = input.Name
	existing.MinAge = input.MinAge
	existing.MaxAge = input.MaxAge
	existing.GenderPreference = input.GenderPreference
	existing.Rent = input.Rent
	existing.PetsAllowed = input.PetsAllowed
	existing.RoomType = input.RoomType
	existing.AvgAge = input.AvgAge
	existing.Description = input.Description
	existing.LookingForInFlatmate = input.LookingForInFlatmate
	existing.PersonalityTraits = input.PersonalityTraits
	existing.Interests = input.Interests
	existing.CommunalLiving = input.CommunalLiving
	existing.Values = input.Values
	existing.PhotoURL = input.PhotoURL

	if err := uc.profileRepo.UpdateRoom(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// DeleteRoom routes the delete to the physical collection the profile was
// read from, via its generation tag.
func (uc *ProfileUseCase) DeleteRoom(ctx context.Context, userID, id string) error {
	existing, err := uc.profileRepo.GetRoom(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.authorizeOwner(ctx, userID, existing.OwnerID); err != nil {
		return err
	}

	return uc.profileRepo.DeleteRoom(ctx, id, existing.Generation)
}

// authorizeOwner permits the owner, or anyone with the elevated admin role.
func (uc *ProfileUseCase) authorizeOwner(ctx context.Context, userID, ownerID string) error {
	if userID == ownerID {
		return nil
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return errors.Forbidden("You can only delete your own profile", err)
	}
	if user.Role != "admin" {
		return errors.Forbidden("You can only delete your own profile", nil)
	}
	return nil
}
