package services

import (
	"sort"
	"time"

	"poll_bot_system/internal/db/models"
	"poll_bot_system/internal/db/repositories"

	"go.uber.org/zap"
)

type dataService struct {
	pollRepository repositories.PollRepository
	voteRepository repositories.VoteRepository
	tallyService   TallyService
	logger         *zap.SugaredLogger
}

// DataService is the aggregation core: it owns poll/vote persistence calls
// and assembles the poll history view. It holds no state of its own; every
// derived value is computed fresh per call.
type DataService interface {
	HasActivePoll(creator int64) (bool, error)
	CreatePoll(poll *models.Poll) (*models.Poll, error)
	EndPoll(creator int64) error
	GetPoll(pollID int) (*models.Poll, error)
	GetActivePoll(creator int64) (*models.Poll, error)
	GetPollResults(pollID int) ([]models.PollResult, error)
	GetVotes(pollID int) ([]*models.Vote, error)
	GetPollHistory(creator int64, streamID, displayName string, count int, active bool) (*models.PollHistory, error)
	CreateVote(vote *models.Vote) (*models.Vote, error)
	CreateVotes(votes []*models.Vote) error
	HasVoted(userID int64, pollID int) (bool, error)
	ChangeVote(userID int64, pollID int, answer string) error
}

func NewDataService(
	pollRepository repositories.PollRepository,
	voteRepository repositories.VoteRepository,
	tallyService TallyService,
	logger *zap.SugaredLogger,
) DataService {
	return &dataService{
		pollRepository: pollRepository,
		voteRepository: voteRepository,
		tallyService:   tallyService,
		logger:         logger,
	}
}

func (s *dataService) HasActivePoll(creator int64) (bool, error) {
	count, err := s.pollRepository.CountActiveByCreator(creator)
	if err != nil {
		return false, err
	}

	return count == 1, nil
}

func (s *dataService) CreatePoll(poll *models.Poll) (*models.Poll, error) {
	poll, err := s.pollRepository.Create(poll)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("poll added to database", "poll", poll.ID)
	return poll, nil
}

func (s *dataService) EndPoll(creator int64) error {
	poll, err := s.pollRepository.GetActiveByCreator(creator)
	if err != nil {
		return err
	}
	if poll == nil {
		return ErrNoActivePoll
	}

	poll.EndedAt = time.Now()

	_, err = s.pollRepository.Update(poll)
	return err
}

func (s *dataService) GetPoll(pollID int) (*models.Poll, error) {
	return s.pollRepository.GetOne(pollID)
}

func (s *dataService) GetActivePoll(creator int64) (*models.Poll, error) {
	return s.pollRepository.GetActiveByCreator(creator)
}

// GetPollResults returns the poll's normalized results, zero-vote answers
// included. A nil slice means the poll does not exist.
func (s *dataService) GetPollResults(pollID int) ([]models.PollResult, error) {
	poll, err := s.pollRepository.GetOne(pollID)
	if err != nil {
		return nil, err
	}
	if poll == nil {
		return nil, nil
	}

	tallies, err := s.tallyService.Tally([]int{pollID})
	if err != nil {
		return nil, err
	}

	return NormalizeResults(tallies[pollID], poll.Answers), nil
}

// GetPollHistory assembles the creator's polls and their results into one
// view. With active set it covers at most the current active poll,
// otherwise up to count ended polls, oldest first. A nil history with a nil
// error means there are no matching polls at all; a poll nobody voted on
// still shows up, with zero-count results.
func (s *dataService) GetPollHistory(creator int64, streamID, displayName string, count int, active bool) (*models.PollHistory, error) {
	polls, err := s.getCandidatePolls(creator, streamID, count, active)
	if err != nil {
		return nil, err
	}
	if len(polls) == 0 {
		return nil, nil
	}

	pollIDs := make([]int, 0, len(polls))
	for _, poll := range polls {
		pollIDs = append(pollIDs, poll.ID)
	}

	// One batched tally for the whole candidate set, never per poll.
	tallies, err := s.tallyService.Tally(pollIDs)
	if err != nil {
		return nil, err
	}

	items := make([]models.PollHistoryItem, 0, len(polls))
	for _, poll := range polls {
		items = append(items, models.PollHistoryItem{
			QuestionText: poll.QuestionText,
			CreatedAt:    poll.CreatedAt,
			EndedAt:      poll.EndedAt,
			Results:      NormalizeResults(tallies[poll.ID], poll.Answers),
		})
	}

	return &models.PollHistory{
		Room:               streamID != "",
		CreatorDisplayName: displayName,
		Polls:              items,
	}, nil
}

func (s *dataService) getCandidatePolls(creator int64, streamID string, count int, active bool) ([]*models.Poll, error) {
	if active {
		var (
			poll *models.Poll
			err  error
		)

		if streamID != "" {
			poll, err = s.pollRepository.GetActiveByCreatorAndStream(creator, streamID)
		} else {
			poll, err = s.pollRepository.GetActiveByCreator(creator)
		}

		if err != nil || poll == nil {
			return nil, err
		}

		return []*models.Poll{poll}, nil
	}

	var (
		polls []*models.Poll
		err   error
	)

	if streamID != "" {
		polls, err = s.pollRepository.GetEndedByCreatorAndStream(creator, streamID, count)
	} else {
		polls, err = s.pollRepository.GetEndedByCreator(creator, count)
	}
	if err != nil {
		return nil, err
	}

	// The store hands these back newest first; history reads oldest first.
	sort.Slice(polls, func(i, j int) bool {
		return polls[i].CreatedAt.Before(polls[j].CreatedAt)
	})

	return polls, nil
}

func (s *dataService) GetVotes(pollID int) ([]*models.Vote, error) {
	return s.voteRepository.GetManyByPoll(pollID)
}

func (s *dataService) CreateVote(vote *models.Vote) (*models.Vote, error) {
	vote, err := s.voteRepository.Create(vote)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("vote added to database", "poll", vote.PollID, "user", vote.UserID)
	return vote, nil
}

func (s *dataService) CreateVotes(votes []*models.Vote) error {
	if err := s.voteRepository.CreateMany(votes); err != nil {
		return err
	}

	s.logger.Infow("votes added to database", "count", len(votes))
	return nil
}

func (s *dataService) HasVoted(userID int64, pollID int) (bool, error) {
	vote, err := s.voteRepository.GetOneByPollAndUser(pollID, userID)
	if err != nil {
		return false, err
	}

	return vote != nil, nil
}

func (s *dataService) ChangeVote(userID int64, pollID int, answer string) error {
	vote, err := s.voteRepository.GetOneByPollAndUser(pollID, userID)
	if err != nil {
		return err
	}
	if vote == nil {
		return ErrNotVoted
	}

	vote.Answer = answer

	_, err = s.voteRepository.Update(vote)
	return err
}
