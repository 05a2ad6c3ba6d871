package main

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

func TestExpirePolls_EndsStalePolls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pollRepo := mock_repositories.NewMockPollRepository(ctrl)
	logger := zap.NewNop().Sugar()

	cutoff := time.Now().AddDate(0, 0, -7)
	polls := []*models.Poll{
		{ID: 1, Creator: 7},
		{ID: 2, Creator: 8},
	}

	pollRepo.EXPECT().GetActiveCreatedBefore(cutoff).Return(polls, nil)
	pollRepo.EXPECT().Update(polls[0]).Return(polls[0], nil)
	pollRepo.EXPECT().Update(polls[1]).Return(polls[1], nil)

	expired := expirePolls(pollRepo, cutoff, logger)

	assert.Equal(t, 2, len(expired))
	for _, poll := range expired {
		assert.False(t, poll.EndedAt.IsZero())
	}
}

func TestExpirePolls_SkipsPollsThatFailToUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pollRepo := mock_repositories.NewMockPollRepository(ctrl)
	logger := zap.NewNop().Sugar()

	cutoff := time.Now().AddDate(0, 0, -7)
	polls := []*models.Poll{
		{ID: 1, Creator: 7},
		{ID: 2, Creator: 8},
	}

	pollRepo.EXPECT().GetActiveCreatedBefore(cutoff).Return(polls, nil)
	pollRepo.EXPECT().Update(polls[0]).Return(nil, errors.New("database error"))
	pollRepo.EXPECT().Update(polls[1]).Return(polls[1], nil)

	expired := expirePolls(pollRepo, cutoff, logger)

	assert.Equal(t, 1, len(expired))
	assert.Equal(t, 2, expired[0].ID)
}

func TestExpirePolls_StoreErrorYieldsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pollRepo := mock_repositories.NewMockPollRepository(ctrl)
	logger := zap.NewNop().Sugar()

	cutoff := time.Now().AddDate(0, 0, -7)
	pollRepo.EXPECT().GetActiveCreatedBefore(cutoff).Return(nil, errors.New("database error"))

	expired := expirePolls(pollRepo, cutoff, logger)

	assert.Empty(t, expired)
}
