package services

import (
	"sort"

	"poll_bot_system/internal/db/models"
	"poll_bot_system/internal/db/repositories"
)

type tallyService struct {
	voteRepository repositories.VoteRepository
}

// TallyService groups votes by (poll, answer) and counts them.
type TallyService interface {
	Tally(pollIDs []int) (map[int][]models.PollResult, error)
}

func NewTallyService(voteRepository repositories.VoteRepository) TallyService {
	return &tallyService{
		voteRepository: voteRepository,
	}
}

// Tally loads the votes for every poll in the set with a single store
// round trip and folds them into per-poll tallies, ordered by descending
// count. Equal counts keep first-seen vote order, which makes the ordering
// stable across calls. Polls without votes are absent from the result;
// an empty id set yields an empty map without touching the store.
func (s *tallyService) Tally(pollIDs []int) (map[int][]models.PollResult, error) {
	tallies := make(map[int][]models.PollResult)

	if len(pollIDs) == 0 {
		return tallies, nil
	}

	votes, err := s.voteRepository.GetManyByPolls(pollIDs)
	if err != nil {
		return nil, err
	}

	type group struct {
		pollID int
		answer string
	}

	counts := make(map[group]int64)
	seen := make([]group, 0)

	for _, vote := range votes {
		g := group{pollID: vote.PollID, answer: vote.Answer}
		if _, ok := counts[g]; !ok {
			seen = append(seen, g)
		}
		counts[g]++
	}

	for _, g := range seen {
		tallies[g.pollID] = append(tallies[g.pollID], models.PollResult{
			PollID: g.pollID,
			Answer: g.answer,
			Count:  counts[g],
		})
	}

	for pollID := range tallies {
		results := tallies[pollID]
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Count > results[j].Count
		})
	}

	return tallies, nil
}
