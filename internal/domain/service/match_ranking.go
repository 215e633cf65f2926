package service

import (
	"sort"

	"flatmatch/internal/domain/entity"
)

// MaxMatchesPerProfile caps each side's ranked list.
const MaxMatchesPerProfile = 10

// RankMatches scores the full seeker/room cross-product and builds both
// ranked views: the top rooms for every seeker and the top seekers for every
// room. Disqualified pairs are dropped, lists are sorted by score descending
// with profile ID as a stable tiebreak, then capped. The pass is a pure
// computation over the given snapshot; callers re-run it whenever the
// visible profile sets change.
func RankMatches(scorer *MatchScorer, seekers []*entity.SeekerProfile, rooms []*entity.RoomProfile) entity.Rankings {
	rankings := entity.Rankings{
		RoomsForSeeker: make(map[string][]entity.RoomMatch, len(seekers)),
		SeekersForRoom: make(map[string][]entity.SeekerMatch, len(rooms)),
	}

	for _, seeker := range seekers {
		for _, room := range rooms {
			result := scorer.Score(seeker, room)
			if result.Disqualified() {
				continue
			}
			rankings.RoomsForSeeker[seeker.ID] = append(rankings.RoomsForSeeker[seeker.ID],
				entity.RoomMatch{Room: room, Result: result})
			rankings.SeekersForRoom[room.ID] = append(rankings.SeekersForRoom[room.ID],
				entity.SeekerMatch{Seeker: seeker, Result: result})
		}
	}

	for id, matches := range rankings.RoomsForSeeker {
		sort.Slice(matches, func(i, j int) bool {
			if matches[i].Result.TotalScore != matches[j].Result.TotalScore {
				return matches[i].Result.TotalScore > matches[j].Result.TotalScore
			}
			return matches[i].Room.ID < matches[j].Room.ID
		})
		if len(matches) > MaxMatchesPerProfile {
			matches = matches[:MaxMatchesPerProfile]
		}
		rankings.RoomsForSeeker[id] = matches
	}

	for id, matches := range rankings.SeekersForRoom {
		sort.Slice(matches, func(i, j int) bool {
			if matches[i].Result.TotalScore != matches[j].Result.TotalScore {
				return matches[i].Result.TotalScore > matches[j].Result.TotalScore
			}
			return matches[i].Seeker.ID < matches[j].Seeker.ID
		})
		if len(matches) > MaxMatchesPerProfile {
			matches = matches[:MaxMatchesPerProfile]
		}
		rankings.SeekersForRoom[id] = matches
	}

	return rankings
}
