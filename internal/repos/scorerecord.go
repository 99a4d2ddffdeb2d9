package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/summitlabs/ascent-backend/internal/logger"
	"github.com/summitlabs/ascent-backend/internal/types"
)

// ScoreRecordRepo is the score-history port: snapshots go in through Append
// and come back out per user in insertion order. Records are never updated
// or deleted, so that is the whole contract; any store that can satisfy it
// can back the history.
type ScoreRecordRepo interface {
	Append(ctx context.Context, tx *gorm.DB, records []*types.ScoreRecord) ([]*types.ScoreRecord, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ScoreRecord, error)
	GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ScoreRecord, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.ScoreRecord, error)
}

type scoreRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewScoreRecordRepo(db *gorm.DB, baseLog *logger.Logger) ScoreRecordRepo {
	return &scoreRecordRepo{db: db, log: baseLog.With("repo", "ScoreRecordRepo")}
}

func (sr *scoreRecordRepo) Append(ctx context.Context, tx *gorm.DB, records []*types.ScoreRecord) ([]*types.ScoreRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if len(records) == 0 {
		return []*types.ScoreRecord{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (sr *scoreRecordRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ScoreRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.ScoreRecord
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *scoreRecordRepo) GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ScoreRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var result types.ScoreRecord
	err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&result).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (sr *scoreRecordRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.ScoreRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.ScoreRecord
	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
