package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatmatch/internal/domain/entity"
)

func TestRankMatchesCapsLists(t *testing.T) {
	scorer := NewMatchScorer()
	seeker := sampleSeeker()

	var rooms []*entity.RoomProfile
	for i := 0; i < 15; i++ {
		room := sampleRoom()
		room.ID = fmt.Sprintf("room-%02d", i)
		room.Rent = 500 + i*10
		rooms = append(rooms, room)
	}

	rankings := RankMatches(scorer, []*entity.SeekerProfile{seeker}, rooms)

	matches := rankings.RoomsForSeeker[seeker.ID]
	require.Len(t, matches, MaxMatchesPerProfile)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Result.TotalScore, matches[i].Result.TotalScore)
	}
}

func TestRankMatchesExcludesDisqualified(t *testing.T) {
	scorer := NewMatchScorer()

	seeker := sampleSeeker()
	femaleOnly := sampleRoom()
	femaleOnly.ID = "room-female"
	femaleOnly.GenderPreference = "female"
	maleOnly := sampleRoom()
	maleOnly.ID = "room-male"
	maleOnly.GenderPreference = "male"

	rankings := RankMatches(scorer,
		[]*entity.SeekerProfile{seeker},
		[]*entity.RoomProfile{femaleOnly, maleOnly})

	matches := rankings.RoomsForSeeker[seeker.ID]
	require.Len(t, matches, 1)
	assert.Equal(t, "room-female", matches[0].Room.ID)

	_, ok := rankings.SeekersForRoom["room-male"]
	assert.False(t, ok)
}

func TestRankMatchesTiebreakByID(t *testing.T) {
	scorer := NewMatchScorer()
	seeker := sampleSeeker()

	roomB := sampleRoom()
	roomB.ID = "room-b"
	roomA := sampleRoom()
	roomA.ID = "room-a"

	rankings := RankMatches(scorer, []*entity.SeekerProfile{seeker}, []*entity.RoomProfile{roomB, roomA})

	matches := rankings.RoomsForSeeker[seeker.ID]
	require.Len(t, matches, 2)
	assert.Equal(t, "room-a", matches[0].Room.ID)
	assert.Equal(t, "room-b", matches[1].Room.ID)
}

func TestRankMatchesBothDirectionsAgree(t *testing.T) {
	scorer := NewMatchScorer()

	seekers := []*entity.SeekerProfile{sampleSeeker()}
	rooms := []*entity.RoomProfile{sampleRoom()}

	rankings := RankMatches(scorer, seekers, rooms)

	seekerSide := rankings.RoomsForSeeker["seeker-1"]
	roomSide := rankings.SeekersForRoom["room-1"]
	require.Len(t, seekerSide, 1)
	require.Len(t, roomSide, 1)
	assert.Equal(t, seekerSide[0].Result.TotalScore, roomSide[0].Result.TotalScore)
}

func TestRankMatchesIsIdempotent(t *testing.T) {
	scorer := NewMatchScorer()
	seekers := []*entity.SeekerProfile{sampleSeeker()}
	rooms := []*entity.RoomProfile{sampleRoom()}

	first := RankMatches(scorer, seekers, rooms)
	second := RankMatches(scorer, seekers, rooms)

	assert.Equal(t, first, second)
}

func TestRankMatchesEmptyInput(t *testing.T) {
	scorer := NewMatchScorer()

	rankings := RankMatches(scorer, nil, nil)

	assert.Empty(t, rankings.RoomsForSeeker)
	assert.Empty(t, rankings.SeekersForRoom)
}
