package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultVoteRepository struct {
	DB *gorm.DB
}

func NewDefaultVoteRepository(db *gorm.DB) *DefaultVoteRepository {
	return &DefaultVoteRepository{DB: db}
}

func (r *DefaultVoteRepository) GetVote(ctx context.Context, subjectID, userID string) (*domain.Vote, bool, error) {
	var row models.VoteModel
	err := r.DB.WithContext(ctx).
		Where("subject_id = ? AND user_id = ?", subjectID, userID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, domain.NewStorageError(err, "get vote %s/%s", subjectID, userID)
	}
	return mappers.ToDomainVote(&row), true, nil
}

// ApplyVote runs read-decide-write for one (subject, user) pair inside a
// transaction holding an advisory lock on that pair. The lock covers the
// first vote too, where there is no row yet to lock.
func (r *DefaultVoteRepository) ApplyVote(ctx context.Context, ballot domain.Ballot, policy domain.VotePolicy) (domain.VoteChange, error) {
	var change domain.VoteChange
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockVotePair(tx, ballot.SubjectID, ballot.UserID); err != nil {
			return err
		}

		var existing *domain.Vote
		var row models.VoteModel
		err := tx.Where("subject_id = ? AND user_id = ?", ballot.SubjectID, ballot.UserID).Take(&row).Error
		switch {
		case err == nil:
			existing = mappers.ToDomainVote(&row)
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return err
		}

		action := policy.Decide(existing, ballot.IsUpvote)
		change = domain.VoteChange{Action: action, Previous: existing}
		switch action {
		case domain.VoteCreated:
			vote := &domain.Vote{
				ID:        uuid.New().String(),
				SubjectID: ballot.SubjectID,
				UserID:    ballot.UserID,
				IsUpvote:  ballot.IsUpvote,
				CreatedAt: ballot.At,
				UpdatedAt: ballot.At,
			}
			if err := tx.Create(mappers.ToGORMVote(vote)).Error; err != nil {
				return err
			}
			change.Current = vote
		case domain.VoteFlipped:
			if err := tx.Model(&models.VoteModel{}).
				Where("id = ?", existing.ID).
				Updates(map[string]any{"is_upvote": ballot.IsUpvote, "updated_at": ballot.At}).Error; err != nil {
				return err
			}
			vote := *existing
			vote.IsUpvote = ballot.IsUpvote
			vote.UpdatedAt = ballot.At
			change.Current = &vote
		case domain.VoteRetracted:
			if err := tx.Delete(&models.VoteModel{}, "id = ?", existing.ID).Error; err != nil {
				return err
			}
		case domain.VoteKept:
			change.Current = existing
		default:
			return fmt.Errorf("unsupported vote action %q", action)
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.VoteChange{}, domain.NewStorageError(err, "concurrent first vote on %s/%s", ballot.SubjectID, ballot.UserID)
		}
		return domain.VoteChange{}, domain.NewStorageError(err, "apply vote %s/%s", ballot.SubjectID, ballot.UserID)
	}
	return change, nil
}

func (r *DefaultVoteRepository) DeleteVote(ctx context.Context, subjectID, userID string) (*domain.Vote, error) {
	var deleted []models.VoteModel
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockVotePair(tx, subjectID, userID); err != nil {
			return err
		}
		return tx.Clauses(clause.Returning{}).
			Where("subject_id = ? AND user_id = ?", subjectID, userID).
			Delete(&deleted).Error
	})
	if err != nil {
		return nil, domain.NewStorageError(err, "delete vote %s/%s", subjectID, userID)
	}
	if len(deleted) == 0 {
		return nil, nil
	}
	return mappers.ToDomainVote(&deleted[0]), nil
}

func (r *DefaultVoteRepository) ListVotesBySubject(ctx context.Context, subjectID string) ([]*domain.Vote, error) {
	var rows []models.VoteModel
	if err := r.DB.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, domain.NewStorageError(err, "list votes of %s", subjectID)
	}
	return mappers.ToDomainVotes(rows), nil
}

func lockVotePair(tx *gorm.DB, subjectID, userID string) error {
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", subjectID+"\x00"+userID).Error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
