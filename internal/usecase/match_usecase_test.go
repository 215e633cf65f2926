package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatmatch/internal/domain/entity"
)

func seedMatchFixture(t *testing.T) (*MatchUseCase, string, string) {
	t.Helper()

	profiles, repo, _ := newProfileFixture()

	seeker, err := profiles.CreateSeeker(context.Background(), "alice", SeekerProfileInput{
		Name:      "Anna",
		Age:       28,
		Gender:    "female",
		MaxRent:   600,
		Pets:      "no",
		Interests: []string{"Music", "Travel"},
	})
	require.NoError(t, err)

	room, err := profiles.CreateRoom(context.Background(), "bob", RoomProfileInput{
		Name:             "Sunny WG",
		MinAge:           25,
		MaxAge:           35,
		GenderPreference: "any",
		Rent:             550,
		PetsAllowed:      "no",
		Interests:        []string{"Music", "Art"},
	})
	require.NoError(t, err)

	return NewMatchUseCase(repo), seeker.ID, room.ID
}

func TestGetRankingsRequiresIdentity(t *testing.T) {
	uc, _, _ := seedMatchFixture(t)

	rankings, err := uc.GetRankings(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, rankings.RoomsForSeeker)
	assert.Empty(t, rankings.SeekersForRoom)
}

func TestGetRankingsCoversBothDirections(t *testing.T) {
	uc, seekerID, roomID := seedMatchFixture(t)

	rankings, err := uc.GetRankings(context.Background(), "alice")

	require.NoError(t, err)
	require.Len(t, rankings.RoomsForSeeker[seekerID], 1)
	require.Len(t, rankings.SeekersForRoom[roomID], 1)
	assert.InDelta(t, 95.0, rankings.RoomsForSeeker[seekerID][0].Result.TotalScore, 0.0001)
}

func TestGetRankingsReflectsProfileEdits(t *testing.T) {
	profiles, repo, _ := newProfileFixture()

	seeker, err := profiles.CreateSeeker(context.Background(), "alice", SeekerProfileInput{
		Name: "Anna", Age: 28, Gender: "female", MaxRent: 600,
	})
	require.NoError(t, err)

	_, err = profiles.CreateRoom(context.Background(), "bob", RoomProfileInput{
		Name: "Sunny WG", MinAge: 25, MaxAge: 35, GenderPreference: "female", Rent: 550,
	})
	require.NoError(t, err)

	uc := NewMatchUseCase(repo)

	before, err := uc.GetRankings(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, before.RoomsForSeeker[seeker.ID], 1)

	// Flipping the seeker's gender triggers the hard veto on the next call.
	_, err = profiles.UpdateSeeker(context.Background(), "alice", seeker.ID, SeekerProfileInput{
		Name: "Anna", Age: 28, Gender: "male", MaxRent: 600,
	})
	require.NoError(t, err)

	after, err := uc.GetRankings(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, after.RoomsForSeeker[seeker.ID])
}

func TestScorePairBreakdown(t *testing.T) {
	uc, seekerID, roomID := seedMatchFixture(t)

	result, err := uc.ScorePair(context.Background(), seekerID, roomID)

	require.NoError(t, err)
	assert.Len(t, result.Details, len(entity.CriterionOrder))
	assert.InDelta(t, 95.0, result.TotalScore, 0.0001)
}

func TestScorePairUnknownProfile(t *testing.T) {
	uc, seekerID, _ := seedMatchFixture(t)

	_, err := uc.ScorePair(context.Background(), seekerID, "missing")
	assert.Error(t, err)
}
