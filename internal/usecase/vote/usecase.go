package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/metrics"
)

// VoteUsecase is the vote ledger shared by posts and services. Subjects are
// opaque ids; the ledger never looks at what kind of entity it scores.
type VoteUsecase interface {
	GetUserVote(ctx context.Context, subjectID, userID string) (*domain.Vote, bool, error)
	Vote(ctx context.Context, subjectID, userID string, isUpvote bool) (domain.VoteChange, error)
	RemoveVote(ctx context.Context, subjectID, userID string) (domain.VoteChange, error)
	GetScore(ctx context.Context, subjectID string) (domain.Score, error)
	ReconcileScore(ctx context.Context, subjectID string) (domain.Score, error)
	RegisterSubject(ctx context.Context, subject domain.Subject) error
}

type DefaultVoteUsecase struct {
	VoteRepo  domain.VoteRepository
	Subjects  domain.SubjectDirectory
	ScoreSink domain.ScoreSink
	Policy    domain.VotePolicy
	Publisher domain.EventPublisher
	Metrics   *metrics.VoteMetrics
	Logger    *slog.Logger
	Now       func() time.Time
}

func NewDefaultVoteUsecase(
	voteRepo domain.VoteRepository,
	subjects domain.SubjectDirectory,
	scoreSink domain.ScoreSink,
	policy domain.VotePolicy,
	publisher domain.EventPublisher,
	voteMetrics *metrics.VoteMetrics,
	logger *slog.Logger,
) *DefaultVoteUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultVoteUsecase{
		VoteRepo:  voteRepo,
		Subjects:  subjects,
		ScoreSink: scoreSink,
		Policy:    policy,
		Publisher: publisher,
		Metrics:   voteMetrics,
		Logger:    logger.With("module", "vote-ledger"),
		Now:       time.Now,
	}
}

func (uc *DefaultVoteUsecase) policy() domain.VotePolicy {
	if uc.Policy == nil {
		return TogglePolicy{}
	}
	return uc.Policy
}

func (uc *DefaultVoteUsecase) now() time.Time {
	if uc.Now == nil {
		return time.Now().UTC()
	}
	return uc.Now().UTC()
}

func (uc *DefaultVoteUsecase) logger() *slog.Logger {
	if uc.Logger == nil {
		return slog.Default()
	}
	return uc.Logger
}
