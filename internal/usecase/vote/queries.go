package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
)

// GetUserVote reports the user's current vote. found is false when there is none.
func (uc *DefaultVoteUsecase) GetUserVote(ctx context.Context, subjectID, userID string) (*domain.Vote, bool, error) {
	if err := validatePair(subjectID, userID); err != nil {
		return nil, false, err
	}
	return uc.VoteRepo.GetVote(ctx, subjectID, userID)
}

// GetScore counts the current votes of the subject. Cached counters are not consulted.
func (uc *DefaultVoteUsecase) GetScore(ctx context.Context, subjectID string) (domain.Score, error) {
	if strings.TrimSpace(subjectID) == "" {
		return domain.Score{}, domain.NewValidationError("subject id is required")
	}

	started := time.Now()
	votes, err := uc.VoteRepo.ListVotesBySubject(ctx, subjectID)
	if err != nil {
		return domain.Score{}, err
	}
	score := domain.TallyVotes(subjectID, votes)
	if uc.Metrics != nil {
		uc.Metrics.RecordScoreRecompute(time.Since(started).Seconds())
	}
	return score, nil
}

// ReconcileScore overwrites the cached counters of the subject with a fresh count.
func (uc *DefaultVoteUsecase) ReconcileScore(ctx context.Context, subjectID string) (domain.Score, error) {
	score, err := uc.GetScore(ctx, subjectID)
	if err != nil {
		return domain.Score{}, err
	}
	if uc.ScoreSink == nil {
		return score, nil
	}
	if err := uc.ScoreSink.StoreScore(ctx, score); err != nil {
		return domain.Score{}, err
	}
	uc.logger().Info("score counters reconciled",
		"event", "vote_score_reconciled",
		"subject_id", subjectID,
		"upvotes", score.Upvotes,
		"downvotes", score.Downvotes,
	)
	return score, nil
}
