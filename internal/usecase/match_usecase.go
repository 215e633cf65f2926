package usecase

import (
	"context"

	"flatmatch/internal/domain/entity"
	"flatmatch/internal/domain/repository"
	"flatmatch/internal/domain/service"
)

// MatchUseCase recomputes rankings from a fresh profile snapshot on every
// call. Scoring is cheap at this scale, so there is no cached ranking state
// to invalidate when profiles or visibility change.
type MatchUseCase struct {
	profileRepo repository.ProfileRepository
	scorer      *service.MatchScorer
}

func NewMatchUseCase(profileRepo repository.ProfileRepository) *MatchUseCase {
	return &MatchUseCase{
		profileRepo: profileRepo,
		scorer:      service.NewMatchScorer(),
	}
}

// GetRankings returns both ranked views for the calling user. A caller
// without identity sees nothing.
func (uc *MatchUseCase) GetRankings(ctx context.Context, userID string) (entity.Rankings, error) {
	if userID == "" {
		return entity.Rankings{
			RoomsForSeeker: map[string][]entity.RoomMatch{},
			SeekersForRoom: map[string][]entity.SeekerMatch{},
		}, nil
	}

	seekers, err := uc.profileRepo.ListSeekers(ctx)
	if err != nil {
		return entity.Rankings{}, err
	}

	rooms, err := uc.profileRepo.ListRooms(ctx)
	if err != nil {
		return entity.Rankings{}, err
	}

	return service.RankMatches(uc.scorer, seekers, rooms), nil
}

// GetMatchesForSeeker returns the seeker's ranked room list.
func (uc *MatchUseCase) GetMatchesForSeeker(ctx context.Context, userID, seekerID string) ([]entity.RoomMatch, error) {
	rankings, err := uc.GetRankings(ctx, userID)
	if err != nil {
		return nil, err
	}
	return rankings.RoomsForSeeker[seekerID], nil
}

// GetMatchesForRoom returns the room's ranked seeker list.
func (uc *MatchUseCase) GetMatchesForRoom(ctx context.Context, userID, roomID string) ([]entity.SeekerMatch, error) {
	rankings, err := uc.GetRankings(ctx, userID)
	if err != nil {
		return nil, err
	}
	return rankings.SeekersForRoom[roomID], nil
}

// ScorePair exposes the full breakdown of a single pair for detail display.
func (uc *MatchUseCase) ScorePair(ctx context.Context, seekerID, roomID string) (entity.MatchResult, error) {
	seeker, err := uc.profileRepo.GetSeeker(ctx, seekerID)
	if err != nil {
		return entity.MatchResult{}, err
	}

	room, err := uc.profileRepo.GetRoom(ctx, roomID)
	if err != nil {
		return entity.MatchResult{}, err
	}

	return uc.scorer.Score(seeker, room), nil
}
