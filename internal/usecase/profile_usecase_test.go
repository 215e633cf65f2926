package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatmatch/internal/domain/entity"
	"flatmatch/pkg/errors"
)

type fakeProfileRepo struct {
	seekers map[string]*entity.SeekerProfile
	rooms   map[string]*entity.RoomProfile
	nextID  int

	deletedRoomGeneration entity.RoomGeneration
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		seekers: make(map[string]*entity.SeekerProfile),
		rooms:   make(map[string]*entity.RoomProfile),
	}
}

func (f *fakeProfileRepo) CreateSeeker(ctx context.Context, profile *entity.SeekerProfile) error {
	f.nextID++
	profile.ID = fmt.Sprintf("seeker-%d", f.nextID)
	f.seekers[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepo) GetSeeker(ctx context.Context, id string) (*entity.SeekerProfile, error) {
	profile, ok := f.seekers[id]
	if !ok {
		return nil, errors.NotFound("Profile", nil)
	}
	return profile, nil
}

func (f *fakeProfileRepo) ListSeekers(ctx context.Context) ([]*entity.SeekerProfile, error) {
	var out []*entity.SeekerProfile
	for _, profile := range f.seekers {
		out = append(out, profile)
	}
	return out, nil
}

func (f *fakeProfileRepo) UpdateSeeker(ctx context.Context, profile *entity.SeekerProfile) error {
	f.seekers[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepo) DeleteSeeker(ctx context.Context, id string) error {
	delete(f.seekers, id)
	return nil
}

func (f *fakeProfileRepo) CreateRoom(ctx context.Context, profile *entity.RoomProfile) error {
	f.nextID++
	profile.ID = fmt.Sprintf("room-%d", f.nextID)
	profile.Generation = entity.RoomGenerationCurrent
	f.rooms[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepo) GetRoom(ctx context.Context, id string) (*entity.RoomProfile, error) {
	profile, ok := f.rooms[id]
	if !ok {
		return nil, errors.NotFound("Profile", nil)
	}
	return profile, nil
}

func (f *fakeProfileRepo) ListRooms(ctx context.Context) ([]*entity.RoomProfile, error) {
	var out []*entity.RoomProfile
	for _, profile := range f.rooms {
		out = append(out, profile)
	}
	return out, nil
}

func (f *fakeProfileRepo) UpdateRoom(ctx context.Context, profile *entity.RoomProfile) error {
	f.rooms[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepo) DeleteRoom(ctx context.Context, id string, generation entity.RoomGeneration) error {
	f.deletedRoomGeneration = generation
	delete(f.rooms, id)
	return nil
}

func newProfileFixture() (*ProfileUseCase, *fakeProfileRepo, *fakeUserRepo) {
	profileRepo := newFakeProfileRepo()
	userRepo := &fakeUserRepo{users: map[string]*entity.User{
		"alice": {ID: "alice", DisplayName: "Alice"},
		"bob":   {ID: "bob", DisplayName: "Bob"},
		"mod":   {ID: "mod", DisplayName: "Mod", Role: "admin"},
	}}
	return NewProfileUseCase(profileRepo, userRepo), profileRepo, userRepo
}

func TestCreateSeekerAssignsOwner(t *testing.T) {
	uc, _, _ := newProfileFixture()

	profile, err := uc.CreateSeeker(context.Background(), "alice", SeekerProfileInput{Name: "Anna"})

	require.NoError(t, err)
	assert.Equal(t, "alice", profile.OwnerID)
	assert.NotEmpty(t, profile.ID)
}

func TestUpdateSeekerKeepsOwnerImmutable(t *testing.T) {
	uc, repo, _ := newProfileFixture()

	created, err := uc.CreateSeeker(context.Background(), "alice", SeekerProfileInput{Name: "Anna", Age: 28})
	require.NoError(t, err)

	updated, err := uc.UpdateSeeker(context.Background(), "alice", created.ID, SeekerProfileInput{Name: "Anna B", Age: 29})
	require.NoError(t, err)
	assert.Equal(t, "Anna B", updated.Name)
	assert.Equal(t, "alice", updated.OwnerID)
	assert.Equal(t, 29, repo.seekers[created.ID].Age)
}

func TestCreateSeekerStoresAnyPetsPreference(t *testing.T) {
	uc, _, _ := newProfileFixture()

	created, err := uc.CreateSeeker(context.Background(), "alice", SeekerProfileInput{Name: "Anna", Pets: "any"})
	require.NoError(t, err)

	fetched, err := uc.GetSeeker(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "any", fetched.Pets)
}

func TestUpdateSeekerRejectsNonOwner(t *testing.T) {
	uc, _, _ := newProfileFixture()

	created, err := uc.CreateSeeker(context.Background(), "alice", SeekerProfileInput{Name: "Anna"})
	require.NoError(t, err)

	_, err = uc.UpdateSeeker(context.Background(), "bob", created.ID, SeekerProfileInput{Name: "Hijack"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestDeleteSeekerAllowsAdmin(t *testing.T) {
	uc, repo, _ := newProfileFixture()

	created, err := uc.CreateSeeker(context.Background(), "alice", SeekerProfileInput{Name: "Anna"})
	require.NoError(t, err)

	require.Error(t, uc.DeleteSeeker(context.Background(), "bob", created.ID))
	require.NoError(t, uc.DeleteSeeker(context.Background(), "mod", created.ID))
	assert.Empty(t, repo.seekers)
}

func TestDeleteRoomRoutesByGeneration(t *testing.T) {
	uc, repo, _ := newProfileFixture()

	created, err := uc.CreateRoom(context.Background(), "bob", RoomProfileInput{Name: "Sunny WG"})
	require.NoError(t, err)

	repo.rooms[created.ID].Generation = entity.RoomGenerationLegacy

	require.NoError(t, uc.DeleteRoom(context.Background(), "bob", created.ID))
	assert.Equal(t, entity.RoomGenerationLegacy, repo.deletedRoomGeneration)
}
