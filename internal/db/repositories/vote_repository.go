package repositories

import (
	"errors"

	"poll_bot_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type voteRepository struct {
	repository
}

// VoteRepository is the store contract for votes. GetOneByPollAndUser
// returns a nil vote when the pair has not voted.
type VoteRepository interface {
	Create(request *models.Vote) (*models.Vote, error)
	CreateMany(requests []*models.Vote) error
	Update(request *models.Vote) (*models.Vote, error)
	GetOneByPollAndUser(pollID int, userID int64) (*models.Vote, error)
	GetManyByPoll(pollID int) ([]*models.Vote, error)
	GetManyByPolls(pollIDs []int) ([]*models.Vote, error)
}

func NewVoteRepository(db *pg.DB) VoteRepository {
	return &voteRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *voteRepository) Create(request *models.Vote) (*models.Vote, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	vote := &models.Vote{}

	err = r.db.Model(vote).
		Where("id = ?", request.ID).
		Select()

	return vote, err
}

func (r *voteRepository) CreateMany(requests []*models.Vote) error {
	if len(requests) == 0 {
		return nil
	}

	_, err := r.db.Model(&requests).Insert()
	return err
}

func (r *voteRepository) Update(request *models.Vote) (*models.Vote, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	vote := &models.Vote{}

	err = r.db.Model(vote).
		Where("id = ?", request.ID).
		Select()

	return vote, err
}

func (r *voteRepository) GetOneByPollAndUser(pollID int, userID int64) (*models.Vote, error) {
	vote := &models.Vote{}

	err := r.db.Model(vote).
		Where("poll_id = ?", pollID).
		Where("user_id = ?", userID).
		Limit(1).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}

	return vote, err
}

func (r *voteRepository) GetManyByPoll(pollID int) ([]*models.Vote, error) {
	votes := make([]*models.Vote, 0)

	err := r.db.Model(&votes).
		Where("poll_id = ?", pollID).
		OrderExpr("created_at ASC").
		Select()

	return votes, err
}

func (r *voteRepository) GetManyByPolls(pollIDs []int) ([]*models.Vote, error) {
	votes := make([]*models.Vote, 0)

	err := r.db.Model(&votes).
		Where("poll_id IN (?)", pg.In(pollIDs)).
		OrderExpr("created_at ASC").
		Select()

	return votes, err
}
