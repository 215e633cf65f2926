package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatmatch/internal/domain/entity"
)

func sampleSeeker() *entity.SeekerProfile {
	return &entity.SeekerProfile{
		ID:        "seeker-1",
		Name:      "Anna",
		Age:       28,
		Gender:    "female",
		MaxRent:   600,
		Pets:      "no",
		Interests: []string{"Music", "Travel"},
	}
}

func sampleRoom() *entity.RoomProfile {
	return &entity.RoomProfile{
		ID:               "room-1",
		Name:             "Sunny WG",
		MinAge:           25,
		MaxAge:           35,
		GenderPreference: "any",
		Rent:             550,
		PetsAllowed:      "no",
		Interests:        []string{"Music", "Art"},
	}
}

func TestScoreBasicPair(t *testing.T) {
	scorer := NewMatchScorer()

	result := scorer.Score(sampleSeeker(), sampleRoom())

	// age 20*2.0, gender 10*1.0, rent 15*2.5, pets 5*1.2, one shared
	// interest 3*0.5
	assert.InDelta(t, 95.0, result.TotalScore, 0.0001)
	assert.False(t, result.Disqualified())

	assert.InDelta(t, 40.0, result.Details[entity.CriterionAge].Score, 0.0001)
	assert.InDelta(t, 10.0, result.Details[entity.CriterionGender].Score, 0.0001)
	assert.InDelta(t, 37.5, result.Details[entity.CriterionRent].Score, 0.0001)
	assert.InDelta(t, 6.0, result.Details[entity.CriterionPets].Score, 0.0001)
	assert.InDelta(t, 1.5, result.Details[entity.CriterionInterests].Score, 0.0001)
}

func TestScoreBreakdownAlwaysHasAllCriteria(t *testing.T) {
	scorer := NewMatchScorer()

	result := scorer.Score(&entity.SeekerProfile{ID: "s"}, &entity.RoomProfile{ID: "r"})

	require.Len(t, result.Details, len(entity.CriterionOrder))
	for _, key := range entity.CriterionOrder {
		assert.Contains(t, result.Details, key)
	}
	assert.InDelta(t, 0.0, result.TotalScore, 0.0001)
	assert.Contains(t, result.Details[entity.CriterionAge].Description, "N/A")
}

func TestScoreGenderDisqualification(t *testing.T) {
	scorer := NewMatchScorer()

	seeker := sampleSeeker()
	seeker.Gender = "male"
	room := sampleRoom()
	room.GenderPreference = "female"

	result := scorer.Score(seeker, room)

	assert.True(t, result.Disqualified())
	assert.Equal(t, entity.DisqualifiedScore, result.TotalScore)

	// The age criterion is evaluated before the veto, the rest are not.
	require.Len(t, result.Details, len(entity.CriterionOrder))
	assert.Contains(t, result.Details[entity.CriterionGender].Description, "disqualified")
	assert.Contains(t, result.Details[entity.CriterionAge].Description, "within range")
	assert.Equal(t, "not evaluated", result.Details[entity.CriterionRent].Description)
	assert.Equal(t, "not evaluated", result.Details[entity.CriterionValues].Description)
}

func TestScoreGenderMissingIsNeutral(t *testing.T) {
	scorer := NewMatchScorer()

	seeker := sampleSeeker()
	seeker.Gender = ""
	room := sampleRoom()
	room.GenderPreference = "female"

	result := scorer.Score(seeker, room)

	assert.False(t, result.Disqualified())
	assert.InDelta(t, 0.0, result.Details[entity.CriterionGender].Score, 0.0001)
}

func TestScoreAgeBoundariesInclusive(t *testing.T) {
	scorer := NewMatchScorer()
	room := sampleRoom()

	for _, age := range []int{25, 35} {
		seeker := sampleSeeker()
		seeker.Age = age
		result := scorer.Score(seeker, room)
		assert.InDelta(t, 40.0, result.Details[entity.CriterionAge].Score, 0.0001, "age %d", age)
	}

	seeker := sampleSeeker()
	seeker.Age = 38
	result := scorer.Score(seeker, room)
	// 3 years over, -3 * 2.0 * 0.5
	assert.InDelta(t, -3.0, result.Details[entity.CriterionAge].Score, 0.0001)
}

func TestScoreRentBoundaryInclusive(t *testing.T) {
	scorer := NewMatchScorer()

	seeker := sampleSeeker()
	seeker.MaxRent = 550
	result := scorer.Score(seeker, sampleRoom())
	assert.InDelta(t, 37.5, result.Details[entity.CriterionRent].Score, 0.0001)

	seeker.MaxRent = 500
	result = scorer.Score(seeker, sampleRoom())
	// 50 short, -50 * 2.5 * 0.2
	assert.InDelta(t, -25.0, result.Details[entity.CriterionRent].Score, 0.0001)
}

func TestScorePetsMatrix(t *testing.T) {
	scorer := NewMatchScorer()

	cases := []struct {
		seeker, room string
		want         float64
	}{
		{"yes", "yes", 9.6},
		{"yes", "no", -24.0},
		{"no", "no", 6.0},
		{"no", "yes", 0.0},
		{"", "no", 0.0},
		{"yes", "any", 0.0},
	}

	for _, tc := range cases {
		seeker := sampleSeeker()
		seeker.Pets = tc.seeker
		room := sampleRoom()
		room.PetsAllowed = tc.room
		result := scorer.Score(seeker, room)
		assert.InDelta(t, tc.want, result.Details[entity.CriterionPets].Score, 0.0001,
			"pets %q vs %q", tc.seeker, tc.room)
	}
}

func TestScoreKeywordsSubstringMatch(t *testing.T) {
	scorer := NewMatchScorer()

	seeker := sampleSeeker()
	seeker.LookingFor = "quiet garden art"
	room := sampleRoom()
	room.Description = "Big flat with a garden, we like to party"

	result := scorer.Score(seeker, room)

	// "garden" hits directly, "art" hits inside "party", "quiet" does not.
	assert.InDelta(t, 0.4, result.Details[entity.CriterionKeywords].Score, 0.0001)
	assert.Contains(t, result.Details[entity.CriterionKeywords].Description, "garden")
	assert.Contains(t, result.Details[entity.CriterionKeywords].Description, "art")
}

func TestScoreKeywordsShortTokensIgnored(t *testing.T) {
	scorer := NewMatchScorer()

	seeker := sampleSeeker()
	seeker.LookingFor = "a an to be"
	room := sampleRoom()
	room.Description = "a an to be"

	result := scorer.Score(seeker, room)
	assert.InDelta(t, 0.0, result.Details[entity.CriterionKeywords].Score, 0.0001)
}

func TestScoreAgeGapPenalty(t *testing.T) {
	scorer := NewMatchScorer()

	seeker := sampleSeeker()
	room := sampleRoom()
	room.AvgAge = 24

	result := scorer.Score(seeker, room)
	assert.InDelta(t, -4.0, result.Details[entity.CriterionAgeGap].Score, 0.0001)
}

func TestScoreSharedListCriteria(t *testing.T) {
	scorer := NewMatchScorer()

	seeker := sampleSeeker()
	seeker.PersonalityTraits = []string{"tidy", "social"}
	seeker.CommunalLiving = []string{"cooking together"}
	seeker.Values = []string{"sustainability", "honesty"}
	room := sampleRoom()
	room.PersonalityTraits = []string{"social"}
	room.CommunalLiving = []string{"cooking together"}
	room.Values = []string{"honesty"}

	result := scorer.Score(seeker, room)

	// 1 shared trait 5*1.5, 1 shared communal 7*1.8, 1 shared value 10*2.0
	assert.InDelta(t, 7.5, result.Details[entity.CriterionTraits].Score, 0.0001)
	assert.InDelta(t, 12.6, result.Details[entity.CriterionCommunal].Score, 0.0001)
	assert.InDelta(t, 20.0, result.Details[entity.CriterionValues].Score, 0.0001)
}

func TestScoreAcceptsFlexibleFieldForms(t *testing.T) {
	scorer := NewMatchScorer()

	seeker := sampleSeeker()
	seeker.Age = "28"
	seeker.MaxRent = float64(600)
	seeker.Interests = "Music, Travel"
	room := sampleRoom()
	room.Rent = "550"
	room.Interests = []interface{}{"Music", "Art"}

	result := scorer.Score(seeker, room)
	assert.InDelta(t, 95.0, result.TotalScore, 0.0001)
}

func TestScoreIsDeterministic(t *testing.T) {
	scorer := NewMatchScorer()
	seeker := sampleSeeker()
	room := sampleRoom()

	first := scorer.Score(seeker, room)
	second := scorer.Score(seeker, room)

	assert.Equal(t, first.TotalScore, second.TotalScore)
	assert.Equal(t, first.Details, second.Details)
}
