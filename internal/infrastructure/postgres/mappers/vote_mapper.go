package mappers

import (
	"github.com/LavaJover/shvark-deal-service/internal/domain"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/postgres/models"
)

func ToDomainVote(model *models.VoteModel) *domain.Vote {
	return &domain.Vote{
		ID:        model.ID,
		SubjectID: model.SubjectID,
		UserID:    model.UserID,
		IsUpvote:  model.IsUpvote,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMVote(vote *domain.Vote) *models.VoteModel {
	return &models.VoteModel{
		ID:        vote.ID,
		SubjectID: vote.SubjectID,
		UserID:    vote.UserID,
		IsUpvote:  vote.IsUpvote,
		CreatedAt: vote.CreatedAt,
		UpdatedAt: vote.UpdatedAt,
	}
}

func ToDomainVotes(rows []models.VoteModel) []*domain.Vote {
	votes := make([]*domain.Vote, len(rows))
	for i := range rows {
		votes[i] = ToDomainVote(&rows[i])
	}
	return votes
}

func ToGORMSubject(subject domain.Subject) *models.SubjectScoreModel {
	return &models.SubjectScoreModel{
		SubjectID: subject.ID,
		Kind:      string(subject.Kind),
		CreatedAt: subject.RegisteredAt,
		UpdatedAt: subject.RegisteredAt,
	}
}
