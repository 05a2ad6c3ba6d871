package repositories

import (
	"errors"
	"time"

	"poll_bot_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type pollRepository struct {
	repository
}

// PollRepository is the store contract for polls. Lookups return a nil
// poll (not an error) when nothing matches.
type PollRepository interface {
	Create(request *models.Poll) (*models.Poll, error)
	Update(request *models.Poll) (*models.Poll, error)
	GetOne(pollID int) (*models.Poll, error)
	GetActiveByCreator(creator int64) (*models.Poll, error)
	GetActiveByCreatorAndStream(creator int64, streamID string) (*models.Poll, error)
	GetEndedByCreator(creator int64, limit int) ([]*models.Poll, error)
	GetEndedByCreatorAndStream(creator int64, streamID string, limit int) ([]*models.Poll, error)
	GetActiveCreatedBefore(cutoff time.Time) ([]*models.Poll, error)
	CountActiveByCreator(creator int64) (int, error)
}

func NewPollRepository(db *pg.DB) PollRepository {
	return &pollRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *pollRepository) Create(request *models.Poll) (*models.Poll, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	poll := &models.Poll{}

	err = r.db.Model(poll).
		Where("id = ?", request.ID).
		Select()

	return poll, err
}

func (r *pollRepository) Update(request *models.Poll) (*models.Poll, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	poll := &models.Poll{}

	err = r.db.Model(poll).
		Where("id = ?", request.ID).
		Select()

	return poll, err
}

func (r *pollRepository) GetOne(pollID int) (*models.Poll, error) {
	poll := &models.Poll{}

	err := r.db.Model(poll).
		Where("id = ?", pollID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}

	return poll, err
}

func (r *pollRepository) GetActiveByCreator(creator int64) (*models.Poll, error) {
	poll := &models.Poll{}

	err := r.db.Model(poll).
		Where("creator = ?", creator).
		Where("ended_at IS NULL").
		OrderExpr("created_at DESC").
		Limit(1).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}

	return poll, err
}

func (r *pollRepository) GetActiveByCreatorAndStream(creator int64, streamID string) (*models.Poll, error) {
	poll := &models.Poll{}

	err := r.db.Model(poll).
		Where("creator = ?", creator).
		Where("stream_id = ?", streamID).
		Where("ended_at IS NULL").
		OrderExpr("created_at DESC").
		Limit(1).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}

	return poll, err
}

func (r *pollRepository) GetEndedByCreator(creator int64, limit int) ([]*models.Poll, error) {
	polls := make([]*models.Poll, 0)

	err := r.db.Model(&polls).
		Where("creator = ?", creator).
		Where("ended_at IS NOT NULL").
		OrderExpr("created_at DESC").
		Limit(limit).
		Select()

	return polls, err
}

func (r *pollRepository) GetEndedByCreatorAndStream(creator int64, streamID string, limit int) ([]*models.Poll, error) {
	polls := make([]*models.Poll, 0)

	err := r.db.Model(&polls).
		Where("creator = ?", creator).
		Where("stream_id = ?", streamID).
		Where("ended_at IS NOT NULL").
		OrderExpr("created_at DESC").
		Limit(limit).
		Select()

	return polls, err
}

func (r *pollRepository) GetActiveCreatedBefore(cutoff time.Time) ([]*models.Poll, error) {
	polls := make([]*models.Poll, 0)

	err := r.db.Model(&polls).
		Where("ended_at IS NULL").
		Where("created_at < ?", cutoff).
		OrderExpr("created_at ASC").
		Select()

	return polls, err
}

func (r *pollRepository) CountActiveByCreator(creator int64) (int, error) {
	return r.db.Model((*models.Poll)(nil)).
		Where("creator = ?", creator).
		Where("ended_at IS NULL").
		Count()
}
