package repository

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultSubjectRepository keeps votable subjects and their cached counters.
type DefaultSubjectRepository struct {
	DB *gorm.DB
}

func NewDefaultSubjectRepository(db *gorm.DB) *DefaultSubjectRepository {
	return &DefaultSubjectRepository{DB: db}
}

func (r *DefaultSubjectRepository) SubjectExists(ctx context.Context, subjectID string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).
		Model(&models.SubjectScoreModel{}).
		Where("subject_id = ?", subjectID).
		Count(&count).Error; err != nil {
		return false, domain.NewStorageError(err, "check subject %s", subjectID)
	}
	return count > 0, nil
}

// RegisterSubject is idempotent; re-registering keeps the existing counters.
func (r *DefaultSubjectRepository) RegisterSubject(ctx context.Context, subject domain.Subject) error {
	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "subject_id"}}, DoNothing: true}).
		Create(mappers.ToGORMSubject(subject)).Error
	if err != nil {
		return domain.NewStorageError(err, "register subject %s", subject.ID)
	}
	return nil
}

func (r *DefaultSubjectRepository) ApplyScoreDelta(ctx context.Context, subjectID string, upDelta, downDelta int) error {
	res := r.DB.WithContext(ctx).
		Model(&models.SubjectScoreModel{}).
		Where("subject_id = ?", subjectID).
		Updates(map[string]any{
			"upvotes":    gorm.Expr("upvotes + ?", upDelta),
			"downvotes":  gorm.Expr("downvotes + ?", downDelta),
			"updated_at": time.Now().UTC(),
		})
	return scoreUpdateResult(res, subjectID)
}

func (r *DefaultSubjectRepository) StoreScore(ctx context.Context, score domain.Score) error {
	res := r.DB.WithContext(ctx).
		Model(&models.SubjectScoreModel{}).
		Where("subject_id = ?", score.SubjectID).
		Updates(map[string]any{
			"upvotes":    score.Upvotes,
			"downvotes":  score.Downvotes,
			"updated_at": time.Now().UTC(),
		})
	return scoreUpdateResult(res, score.SubjectID)
}

func scoreUpdateResult(res *gorm.DB, subjectID string) error {
	if res.Error != nil {
		return domain.NewStorageError(res.Error, "update score of %s", subjectID)
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("subject %s", subjectID)
	}
	return nil
}
