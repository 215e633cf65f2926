package service

import (
	"fmt"
	"math"
	"strings"

	"flatmatch/internal/domain/entity"
)

// Weights is the fixed per-criterion weight table.
type Weights struct {
	Age            float64
	Gender         float64
	Personality    float64
	Interests      float64
	Rent           float64
	Pets           float64
	Keywords       float64
	AgeGap         float64
	CommunalLiving float64
	Values         float64
}

func DefaultWeights() Weights {
	return Weights{
		Age:            2.0,
		Gender:         1.0,
		Personality:    1.5,
		Interests:      0.5,
		Rent:           2.5,
		Pets:           1.2,
		Keywords:       0.2,
		AgeGap:         1.0,
		CommunalLiving: 1.8,
		Values:         2.0,
	}
}

// MatchScorer computes the compatibility of a seeker/room pair. Pure and
// deterministic: identical inputs always give identical output, including
// the breakdown descriptions. Missing inputs degrade to neutral
// contributions, never to an error.
type MatchScorer struct {
	weights Weights
}

func NewMatchScorer() *MatchScorer {
	return &MatchScorer{weights: DefaultWeights()}
}

func NewMatchScorerWithWeights(w Weights) *MatchScorer {
	return &MatchScorer{weights: w}
}

// Score evaluates the ten criteria in fixed order. A gender-preference
// mismatch is a hard veto: it short-circuits after the age criterion and
// pins the total to the disqualification sentinel. The breakdown always
// carries all ten keys.
func (s *MatchScorer) Score(seeker *entity.SeekerProfile, room *entity.RoomProfile) entity.MatchResult {
	details := make(map[string]entity.CriterionScore, len(entity.CriterionOrder))
	total := 0.0

	add := func(key string, score float64, description string) {
		details[key] = entity.CriterionScore{Score: score, Description: description}
		total += score
	}

	score, desc := s.scoreAge(seeker, room)
	add(entity.CriterionAge, score, desc)

	if disqualified, mismatch := s.genderMismatch(seeker, room); disqualified {
		details[entity.CriterionGender] = entity.CriterionScore{Score: 0, Description: mismatch}
		for _, key := range entity.CriterionOrder {
			if _, ok := details[key]; !ok {
				details[key] = entity.CriterionScore{Score: 0, Description: "not evaluated"}
			}
		}
		return entity.MatchResult{TotalScore: entity.DisqualifiedScore, Details: details}
	}

	score, desc = s.scoreGender(seeker, room)
	add(entity.CriterionGender, score, desc)

	score, desc = s.scoreOverlap(seeker.PersonalityTraits, room.PersonalityTraits, 5, s.weights.Personality, "shared traits")
	add(entity.CriterionTraits, score, desc)

	score, desc = s.scoreOverlap(seeker.Interests, room.Interests, 3, s.weights.Interests, "shared interests")
	add(entity.CriterionInterests, score, desc)

	score, desc = s.scoreRent(seeker, room)
	add(entity.CriterionRent, score, desc)

	score, desc = s.scorePets(seeker, room)
	add(entity.CriterionPets, score, desc)

	score, desc = s.scoreKeywords(seeker, room)
	add(entity.CriterionKeywords, score, desc)

	score, desc = s.scoreAgeGap(seeker, room)
	add(entity.CriterionAgeGap, score, desc)

	score, desc = s.scoreOverlap(seeker.CommunalLiving, room.CommunalLiving, 7, s.weights.CommunalLiving, "shared communal preferences")
	add(entity.CriterionCommunal, score, desc)

	score, desc = s.scoreOverlap(seeker.Values, room.Values, 10, s.weights.Values, "shared values")
	add(entity.CriterionValues, score, desc)

	return entity.MatchResult{TotalScore: total, Details: details}
}

func (s *MatchScorer) scoreAge(seeker *entity.SeekerProfile, room *entity.RoomProfile) (float64, string) {
	age := IntValue(seeker.Age)
	minAge := IntValue(room.MinAge)
	maxAge := IntValue(room.MaxAge)

	if age <= 0 || minAge <= 0 || maxAge <= 0 {
		return 0, fmt.Sprintf("age %s vs range %s-%s", naInt(age), naInt(minAge), naInt(maxAge))
	}

	// Band is inclusive on both ends.
	if age >= minAge && age <= maxAge {
		return 20 * s.weights.Age, fmt.Sprintf("age %d within range %d-%d", age, minAge, maxAge)
	}

	distance := 0
	if age < minAge {
		distance += minAge - age
	}
	if age > maxAge {
		distance += age - maxAge
	}
	return -float64(distance) * s.weights.Age * 0.5,
		fmt.Sprintf("age %d outside range %d-%d by %d", age, minAge, maxAge, distance)
}

func (s *MatchScorer) genderMismatch(seeker *entity.SeekerProfile, room *entity.RoomProfile) (bool, string) {
	if seeker.Gender == "" || room.GenderPreference == "" || room.GenderPreference == "any" {
		return false, ""
	}
	if seeker.Gender != room.GenderPreference {
		return true, fmt.Sprintf("disqualified: seeker %s vs preference %s", seeker.Gender, room.GenderPreference)
	}
	return false, ""
}

func (s *MatchScorer) scoreGender(seeker *entity.SeekerProfile, room *entity.RoomProfile) (float64, string) {
	if seeker.Gender == "" || room.GenderPreference == "" {
		return 0, fmt.Sprintf("seeker %s vs preference %s", naStr(seeker.Gender), naStr(room.GenderPreference))
	}
	// Exact match or "any": the mismatch case never reaches here.
	return 10 * s.weights.Gender,
		fmt.Sprintf("seeker %s vs preference %s", seeker.Gender, room.GenderPreference)
}

func (s *MatchScorer) scoreOverlap(seekerField, roomField interface{}, perItem, weight float64, label string) (float64, string) {
	shared := intersect(StringSet(seekerField), StringSet(roomField))
	if len(shared) == 0 {
		return 0, label + ": none"
	}
	return float64(len(shared)) * perItem * weight,
		fmt.Sprintf("%s: %s", label, strings.Join(shared, ", "))
}

func (s *MatchScorer) scoreRent(seeker *entity.SeekerProfile, room *entity.RoomProfile) (float64, string) {
	budget := IntValue(seeker.MaxRent)
	rent := IntValue(room.Rent)

	if budget <= 0 || rent <= 0 {
		return 0, fmt.Sprintf("budget %s vs rent %s", naInt(budget), naInt(rent))
	}
	// Affordability boundary is inclusive: budget == rent still fits.
	if budget >= rent {
		return 15 * s.weights.Rent, fmt.Sprintf("budget %d covers rent %d", budget, rent)
	}
	return -float64(rent-budget) * s.weights.Rent * 0.2,
		fmt.Sprintf("budget %d short of rent %d by %d", budget, rent, rent-budget)
}

func (s *MatchScorer) scorePets(seeker *entity.SeekerProfile, room *entity.RoomProfile) (float64, string) {
	desc := fmt.Sprintf("seeker pets %s vs room pets %s", naStr(seeker.Pets), naStr(room.PetsAllowed))
	switch {
	case seeker.Pets == "yes" && room.PetsAllowed == "yes":
		return 8 * s.weights.Pets, desc
	case seeker.Pets == "yes" && room.PetsAllowed == "no":
		return -20 * s.weights.Pets, desc
	case seeker.Pets == "no" && room.PetsAllowed == "no":
		return 5 * s.weights.Pets, desc
	default:
		// "no"/"yes", any "any" side, or a missing side are all neutral.
		return 0, desc
	}
}

// scoreKeywords does naive substring matching: the seeker's free text is
// tokenized on whitespace, tokens longer than 2 characters are searched
// case-insensitively in the room's description and flatmate text. Partial
// word hits ("art" inside "party") count; that matches the historical
// behavior and is kept deliberately.
func (s *MatchScorer) scoreKeywords(seeker *entity.SeekerProfile, room *entity.RoomProfile) (float64, string) {
	if strings.TrimSpace(seeker.LookingFor) == "" {
		return 0, "looking-for text: N/A"
	}

	haystack := strings.ToLower(room.Description + " " + room.LookingForInFlatmate)
	seen := make(map[string]struct{})
	var matched []string
	for _, token := range strings.Fields(strings.ToLower(seeker.LookingFor)) {
		if len(token) <= 2 {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		if strings.Contains(haystack, token) {
			matched = append(matched, token)
		}
	}

	if len(matched) == 0 {
		return 0, "matched keywords: none"
	}
	return float64(len(matched)) * s.weights.Keywords,
		fmt.Sprintf("matched keywords: %s", strings.Join(matched, ", "))
}

func (s *MatchScorer) scoreAgeGap(seeker *entity.SeekerProfile, room *entity.RoomProfile) (float64, string) {
	age := IntValue(seeker.Age)
	avgAge := IntValue(room.AvgAge)

	if age <= 0 || avgAge <= 0 {
		return 0, fmt.Sprintf("age %s vs resident average %s", naInt(age), naInt(avgAge))
	}
	gap := math.Abs(float64(age - avgAge))
	return -gap * s.weights.AgeGap,
		fmt.Sprintf("age %d vs resident average %d, gap %d", age, avgAge, int(gap))
}

func intersect(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, item := range b {
		inB[item] = struct{}{}
	}
	var shared []string
	for _, item := range a {
		if _, ok := inB[item]; ok {
			shared = append(shared, item)
		}
	}
	return shared
}

func naInt(v int) string {
	if v <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d", v)
}

func naStr(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
