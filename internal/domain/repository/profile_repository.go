package repository

import (
	"context"

	"flatmatch/internal/domain/entity"
)

// ProfileRepository persists seeker and room profiles. Room reads union the
// current collection with the legacy one; the generation tag on each record
// exists only so deletes reach the right physical collection.
type ProfileRepository interface {
	CreateSeeker(ctx context.Context, profile *entity.SeekerProfile) error
	GetSeeker(ctx context.Context, id string) (*entity.SeekerProfile, error)
	ListSeekers(ctx context.Context) ([]*entity.SeekerProfile, error)
	UpdateSeeker(ctx context.Context, profile *entity.SeekerProfile) error
	DeleteSeeker(ctx context.Context, id string) error

	CreateRoom(ctx context.Context, profile *entity.RoomProfile) error
	GetRoom(ctx context.Context, id string) (*entity.RoomProfile, error)
	ListRooms(ctx context.Context) ([]*entity.RoomProfile, error)
	UpdateRoom(ctx context.Context, profile *entity.RoomProfile) error
	DeleteRoom(ctx context.Context, id string, generation entity.RoomGeneration) error
}
