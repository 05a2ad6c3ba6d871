package services

import (
	"errors"
	"testing"
	"time"

	"poll_bot_system/internal/db/models"
	mock_repositories "poll_bot_system/internal/db/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newDataServiceForTest(ctrl *gomock.Controller) (DataService, *mock_repositories.MockPollRepository, *mock_repositories.MockVoteRepository) {
	pollRepo := mock_repositories.NewMockPollRepository(ctrl)
	voteRepo := mock_repositories.NewMockVoteRepository(ctrl)
	service := NewDataService(pollRepo, voteRepo, NewTallyService(voteRepo), zap.NewNop().Sugar())
	return service, pollRepo, voteRepo
}

func TestGetPollHistory_NoPollsYieldsNilHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, pollRepo, _ := newDataServiceForTest(ctrl)
	pollRepo.EXPECT().GetEndedByCreator(int64(7), 10).Return([]*models.Poll{}, nil)

	history, err := service.GetPollHistory(7, "", "Alice", 10, false)

	assert.NoError(t, err)
	assert.Nil(t, history)
}

func TestGetPollHistory_ChronologicalOrderWithBatchedTally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, pollRepo, voteRepo := newDataServiceForTest(ctrl)

	t1 := time.Date(2023, 11, 1, 12, 0, 0, 0, time.UTC)
	t2 := time.Date(2023, 11, 2, 12, 0, 0, 0, time.UTC)

	// The store hands polls back newest first.
	pollRepo.EXPECT().GetEndedByCreator(int64(7), 10).Return([]*models.Poll{
		{ID: 2, CreatedAt: t2, EndedAt: t2.Add(time.Hour), Creator: 7, QuestionText: "Second?", Answers: []string{"A", "B"}},
		{ID: 1, CreatedAt: t1, EndedAt: t1.Add(time.Hour), Creator: 7, QuestionText: "First?", Answers: []string{"Yes", "No"}},
	}, nil)

	// A single round trip for the whole candidate set, in ascending order.
	voteRepo.EXPECT().GetManyByPolls([]int{1, 2}).Return([]*models.Vote{
		{PollID: 1, UserID: 10, Answer: "Yes"},
		{PollID: 1, UserID: 11, Answer: "Yes"},
		{PollID: 2, UserID: 10, Answer: "B"},
	}, nil).Times(1)

	history, err := service.GetPollHistory(7, "", "Alice", 10, false)

	assert.NoError(t, err)
	assert.Equal(t, 2, len(history.Polls))
	assert.Equal(t, "First?", history.Polls[0].QuestionText)
	assert.Equal(t, "Second?", history.Polls[1].QuestionText)
	assert.True(t, history.Polls[0].CreatedAt.Before(history.Polls[1].CreatedAt))

	assert.Equal(t, []models.PollResult{
		{PollID: 1, Answer: "Yes", Count: 2, Width: 200},
		{Answer: "No", Count: 0, Width: 1},
	}, history.Polls[0].Results)
	assert.Equal(t, []models.PollResult{
		{PollID: 2, Answer: "B", Count: 1, Width: 200},
		{Answer: "A", Count: 0, Width: 1},
	}, history.Polls[1].Results)
}

func TestGetPollHistory_ActiveOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, pollRepo, voteRepo := newDataServiceForTest(ctrl)

	pollRepo.EXPECT().GetActiveByCreator(int64(7)).Return(&models.Poll{
		ID: 3, Creator: 7, QuestionText: "Lunch?", Answers: []string{"Pizza", "Sushi"},
	}, nil)
	voteRepo.EXPECT().GetManyByPolls([]int{3}).Return([]*models.Vote{
		{PollID: 3, UserID: 10, Answer: "Pizza"},
	}, nil)

	history, err := service.GetPollHistory(7, "", "Alice", 10, true)

	assert.NoError(t, err)
	assert.False(t, history.Room)
	assert.Equal(t, "Alice", history.CreatorDisplayName)
	assert.Equal(t, 1, len(history.Polls))
	assert.True(t, history.Polls[0].EndedAt.IsZero())
}

func TestGetPollHistory_ActiveOnlyWithoutActivePoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, pollRepo, _ := newDataServiceForTest(ctrl)
	pollRepo.EXPECT().GetActiveByCreator(int64(7)).Return(nil, nil)

	history, err := service.GetPollHistory(7, "", "Alice", 10, true)

	assert.NoError(t, err)
	assert.Nil(t, history)
}

func TestGetPollHistory_StreamScopeSetsRoomFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, pollRepo, voteRepo := newDataServiceForTest(ctrl)

	pollRepo.EXPECT().GetEndedByCreatorAndStream(int64(7), "42", 5).Return([]*models.Poll{
		{ID: 1, Creator: 7, StreamID: "42", QuestionText: "Q?", Answers: []string{"A", "B"}, EndedAt: time.Now()},
	}, nil)
	voteRepo.EXPECT().GetManyByPolls([]int{1}).Return([]*models.Vote{}, nil)

	history, err := service.GetPollHistory(7, "42", "Alice", 5, false)

	assert.NoError(t, err)
	assert.True(t, history.Room)
}

func TestGetPollHistory_PollWithoutVotesGetsZeroResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, pollRepo, voteRepo := newDataServiceForTest(ctrl)

	pollRepo.EXPECT().GetEndedByCreator(int64(7), 10).Return([]*models.Poll{
		{ID: 1, Creator: 7, QuestionText: "Q?", Answers: []string{"A", "B"}, EndedAt: time.Now()},
	}, nil)
	voteRepo.EXPECT().GetManyByPolls([]int{1}).Return([]*models.Vote{}, nil)

	history, err := service.GetPollHistory(7, "", "Alice", 10, false)

	assert.NoError(t, err)
	assert.Equal(t, []models.PollResult{
		{Answer: "A", Count: 0, Width: 1},
		{Answer: "B", Count: 0, Width: 1},
	}, history.Polls[0].Results)
}

func TestHasActivePoll_TrueWhenOneActivePollExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, pollRepo, _ := newDataServiceForTest(ctrl)
	pollRepo.EXPECT().CountActiveByCreator(int64(7)).Return(1, nil)

	hasActivePoll, err := service.HasActivePoll(7)

	assert.NoError(t, err)
	assert.True(t, hasActivePoll)
}

func TestHasActivePoll_FalseWhenNoActivePoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, pollRepo, _ := newDataServiceForTest(ctrl)
	pollRepo.EXPECT().CountActiveByCreator(int64(7)).Return(0, nil)

	hasActivePoll, err := service.HasActivePoll(7)

	assert.NoError(t, err)
	assert.False(t, hasActivePoll)
}

func TestEndPoll_SetsEndedTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, pollRepo, _ := newDataServiceForTest(ctrl)

	poll := &models.Poll{ID: 1, Creator: 7, QuestionText: "Q?"}
	pollRepo.EXPECT().GetActiveByCreator(int64(7)).Return(poll, nil)
	pollRepo.EXPECT().Update(poll).DoAndReturn(func(p *models.Poll) (*models.Poll, error) {
		assert.False(t, p.EndedAt.IsZero())
		return p, nil
	})

	assert.NoError(t, service.EndPoll(7))
}

func TestEndPoll_FailsFastWithoutActivePoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, pollRepo, _ := newDataServiceForTest(ctrl)
	pollRepo.EXPECT().GetActiveByCreator(int64(7)).Return(nil, nil)

	assert.ErrorIs(t, service.EndPoll(7), ErrNoActivePoll)
}

func TestHasVoted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, voteRepo := newDataServiceForTest(ctrl)
	voteRepo.EXPECT().GetOneByPollAndUser(1, int64(10)).Return(&models.Vote{PollID: 1, UserID: 10}, nil)
	voteRepo.EXPECT().GetOneByPollAndUser(1, int64(11)).Return(nil, nil)

	hasVoted, err := service.HasVoted(10, 1)
	assert.NoError(t, err)
	assert.True(t, hasVoted)

	hasVoted, err = service.HasVoted(11, 1)
	assert.NoError(t, err)
	assert.False(t, hasVoted)
}

func TestChangeVote_OverwritesAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, voteRepo := newDataServiceForTest(ctrl)

	vote := &models.Vote{ID: 5, PollID: 1, UserID: 10, Answer: "Yes"}
	voteRepo.EXPECT().GetOneByPollAndUser(1, int64(10)).Return(vote, nil)
	voteRepo.EXPECT().Update(vote).DoAndReturn(func(v *models.Vote) (*models.Vote, error) {
		assert.Equal(t, "No", v.Answer)
		return v, nil
	})

	assert.NoError(t, service.ChangeVote(10, 1, "No"))
}

func TestChangeVote_FailsFastWithoutExistingVote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, voteRepo := newDataServiceForTest(ctrl)
	voteRepo.EXPECT().GetOneByPollAndUser(1, int64(10)).Return(nil, nil)

	assert.ErrorIs(t, service.ChangeVote(10, 1, "No"), ErrNotVoted)
}

func TestGetPollResults_IncludesZeroVoteAnswers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, pollRepo, voteRepo := newDataServiceForTest(ctrl)

	pollRepo.EXPECT().GetOne(1).Return(&models.Poll{
		ID: 1, QuestionText: "Q?", Answers: []string{"Yes", "No", "Maybe"},
	}, nil)
	voteRepo.EXPECT().GetManyByPolls([]int{1}).Return([]*models.Vote{
		{PollID: 1, UserID: 10, Answer: "Yes"},
		{PollID: 1, UserID: 11, Answer: "Yes"},
		{PollID: 1, UserID: 12, Answer: "No"},
	}, nil)

	results, err := service.GetPollResults(1)

	assert.NoError(t, err)
	assert.Equal(t, []models.PollResult{
		{PollID: 1, Answer: "Yes", Count: 2, Width: 200},
		{PollID: 1, Answer: "No", Count: 1, Width: 100},
		{Answer: "Maybe", Count: 0, Width: 1},
	}, results)
}

func TestCreateVotes_BulkInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, voteRepo := newDataServiceForTest(ctrl)

	votes := []*models.Vote{
		{PollID: 1, UserID: 10, Answer: "Yes"},
		{PollID: 1, UserID: 11, Answer: "No"},
	}
	voteRepo.EXPECT().CreateMany(votes).Return(nil)

	assert.NoError(t, service.CreateVotes(votes))
}

func TestGetVotes_ReturnsAllVotesForPoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, voteRepo := newDataServiceForTest(ctrl)

	voteRepo.EXPECT().GetManyByPoll(1).Return([]*models.Vote{
		{PollID: 1, UserID: 10, Answer: "Yes"},
	}, nil)

	votes, err := service.GetVotes(1)

	assert.NoError(t, err)
	assert.Equal(t, 1, len(votes))
}

func TestGetPollResults_PollNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, pollRepo, _ := newDataServiceForTest(ctrl)
	pollRepo.EXPECT().GetOne(1).Return(nil, nil)

	results, err := service.GetPollResults(1)

	assert.NoError(t, err)
	assert.Nil(t, results)
}

func TestGetPollHistory_StoreErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, pollRepo, _ := newDataServiceForTest(ctrl)
	pollRepo.EXPECT().GetEndedByCreator(int64(7), 10).Return(nil, errors.New("database error"))

	history, err := service.GetPollHistory(7, "", "Alice", 10, false)

	assert.Error(t, err)
	assert.Nil(t, history)
}
