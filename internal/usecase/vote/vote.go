package usecase

import (
	"context"
	"strings"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
)

// Vote casts a ballot. What happens to an existing vote of the same user is up
// to the configured policy; the store applies the decision atomically per pair.
func (uc *DefaultVoteUsecase) Vote(ctx context.Context, subjectID, userID string, isUpvote bool) (domain.VoteChange, error) {
	if err := validatePair(subjectID, userID); err != nil {
		return domain.VoteChange{}, err
	}

	exists, err := uc.Subjects.SubjectExists(ctx, subjectID)
	if err != nil {
		return domain.VoteChange{}, err
	}
	if !exists {
		return domain.VoteChange{}, domain.NewNotFoundError("subject %s", subjectID)
	}

	change, err := uc.VoteRepo.ApplyVote(ctx, domain.Ballot{
		SubjectID: subjectID,
		UserID:    userID,
		IsUpvote:  isUpvote,
		At:        uc.now(),
	}, uc.policy())
	if err != nil {
		uc.logger().Error("vote apply failed",
			"event", "vote_apply_failed",
			"subject_id", subjectID,
			"user_id", userID,
			"error", err.Error(),
		)
		return domain.VoteChange{}, err
	}

	uc.afterVoteChange(ctx, subjectID, userID, change)
	return change, nil
}

// RemoveVote deletes the user's vote; removing a missing vote succeeds with VoteKept.
func (uc *DefaultVoteUsecase) RemoveVote(ctx context.Context, subjectID, userID string) (domain.VoteChange, error) {
	if err := validatePair(subjectID, userID); err != nil {
		return domain.VoteChange{}, err
	}

	removed, err := uc.VoteRepo.DeleteVote(ctx, subjectID, userID)
	if err != nil {
		uc.logger().Error("vote removal failed",
			"event", "vote_remove_failed",
			"subject_id", subjectID,
			"user_id", userID,
			"error", err.Error(),
		)
		return domain.VoteChange{}, err
	}
	if removed == nil {
		return domain.VoteChange{Action: domain.VoteKept}, nil
	}

	change := domain.VoteChange{Action: domain.VoteRemoved, Previous: removed}
	uc.afterVoteChange(ctx, subjectID, userID, change)
	return change, nil
}

func (uc *DefaultVoteUsecase) afterVoteChange(ctx context.Context, subjectID, userID string, change domain.VoteChange) {
	if uc.Metrics != nil {
		uc.Metrics.RecordVoteAction(string(change.Action))
	}
	uc.logger().Info("vote changed",
		"event", "vote_"+string(change.Action),
		"subject_id", subjectID,
		"user_id", userID,
	)
	if change.Action == domain.VoteKept {
		return
	}

	// Cached counters may drift on failure; GetScore and ReconcileScore read the
	// votes themselves.
	if up, down := change.CounterDelta(); uc.ScoreSink != nil && (up != 0 || down != 0) {
		if err := uc.ScoreSink.ApplyScoreDelta(ctx, subjectID, up, down); err != nil {
			uc.logger().Warn("score counters not updated",
				"event", "vote_score_sink_failed",
				"subject_id", subjectID,
				"up_delta", up,
				"down_delta", down,
				"error", err.Error(),
			)
			if uc.Metrics != nil {
				uc.Metrics.RecordScoreSinkError()
			}
		}
	}

	if uc.Publisher == nil {
		return
	}
	event := domain.VoteEvent{
		SubjectID:  subjectID,
		UserID:     userID,
		Action:     change.Action,
		OccurredAt: uc.now(),
	}
	if change.Current != nil {
		isUpvote := change.Current.IsUpvote
		event.IsUpvote = &isUpvote
	}
	if err := uc.Publisher.PublishVoteEvent(ctx, event); err != nil {
		uc.logger().Error("failed to publish vote event",
			"event", "vote_event_publish_failed",
			"subject_id", subjectID,
			"user_id", userID,
			"error", err.Error(),
		)
	}
}

func (uc *DefaultVoteUsecase) RegisterSubject(ctx context.Context, subject domain.Subject) error {
	if strings.TrimSpace(subject.ID) == "" {
		return domain.NewValidationError("subject id is required")
	}
	if !subject.Kind.Valid() {
		return domain.NewValidationError("unknown subject kind %q", subject.Kind)
	}
	if subject.RegisteredAt.IsZero() {
		subject.RegisteredAt = uc.now()
	}
	if err := uc.Subjects.RegisterSubject(ctx, subject); err != nil {
		return err
	}
	uc.logger().Info("subject registered",
		"event", "vote_subject_registered",
		"subject_id", subject.ID,
		"kind", string(subject.Kind),
	)
	return nil
}

func validatePair(subjectID, userID string) error {
	if strings.TrimSpace(subjectID) == "" || strings.TrimSpace(userID) == "" {
		return domain.NewValidationError("subject id and user id are required")
	}
	return nil
}
