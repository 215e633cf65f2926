package entity

// DisqualifiedScore is the sentinel total for a hard veto (gender-preference
// mismatch). It sits far below any attainable score so disqualified pairs
// can never surface in a ranked list.
const DisqualifiedScore = -1000000.0

// Criterion keys, in display order. A MatchResult breakdown always carries
// all ten, even when the underlying data is missing.
const (
	CriterionAge       = "age"
	CriterionGender    = "gender"
	CriterionTraits    = "personality"
	CriterionInterests = "interests"
	CriterionRent      = "rent"
	CriterionPets      = "pets"
	CriterionKeywords  = "keywords"
	CriterionAgeGap    = "ageGap"
	CriterionCommunal  = "communalLiving"
	CriterionValues    = "values"
)

var CriterionOrder = []string{
	CriterionAge,
	CriterionGender,
	CriterionTraits,
	CriterionInterests,
	CriterionRent,
	CriterionPets,
	CriterionKeywords,
	CriterionAgeGap,
	CriterionCommunal,
	CriterionValues,
}

// CriterionScore is one line of the audit breakdown: the signed contribution
// a criterion added to the total, plus a description echoing the raw inputs
// it was computed from.
type CriterionScore struct {
	Score       float64 `json:"score"`
	Description string  `json:"description"`
}

// MatchResult is computed on demand, never persisted.
type MatchResult struct {
	TotalScore float64                   `json:"total_score"`
	Details    map[string]CriterionScore `json:"details"`
}

// Disqualified reports whether the pair was hard-vetoed.
func (m MatchResult) Disqualified() bool {
	return m.TotalScore <= DisqualifiedScore
}

type RoomMatch struct {
	Room   *RoomProfile `json:"room"`
	Result MatchResult  `json:"result"`
}

type SeekerMatch struct {
	Seeker *SeekerProfile `json:"seeker"`
	Result MatchResult    `json:"result"`
}

// Rankings holds both directions of a ranking pass, keyed by profile ID.
type Rankings struct {
	RoomsForSeeker map[string][]RoomMatch   `json:"rooms_for_seeker"`
	SeekersForRoom map[string][]SeekerMatch `json:"seekers_for_room"`
}
