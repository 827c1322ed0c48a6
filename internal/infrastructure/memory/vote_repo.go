package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
	"github.com/google/uuid"
)

type voteKey struct {
	subjectID string
	userID    string
}

// VoteRepository stores at most one vote per (subject, user) key.
type VoteRepository struct {
	mu    sync.Mutex
	votes map[voteKey]domain.Vote
}

func NewVoteRepository() *VoteRepository {
	return &VoteRepository{votes: make(map[voteKey]domain.Vote)}
}

func (r *VoteRepository) GetVote(_ context.Context, subjectID, userID string) (*domain.Vote, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	vote, ok := r.votes[voteKey{subjectID, userID}]
	if !ok {
		return nil, false, nil
	}
	return &vote, true, nil
}

func (r *VoteRepository) ApplyVote(_ context.Context, ballot domain.Ballot, policy domain.VotePolicy) (domain.VoteChange, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := voteKey{ballot.SubjectID, ballot.UserID}
	var existing *domain.Vote
	if vote, ok := r.votes[key]; ok {
		existing = &vote
	}

	action := policy.Decide(existing, ballot.IsUpvote)
	change := domain.VoteChange{Action: action, Previous: existing}
	switch action {
	case domain.VoteCreated:
		vote := domain.Vote{
			ID:        uuid.New().String(),
			SubjectID: ballot.SubjectID,
			UserID:    ballot.UserID,
			IsUpvote:  ballot.IsUpvote,
			CreatedAt: ballot.At,
			UpdatedAt: ballot.At,
		}
		r.votes[key] = vote
		change.Current = &vote
	case domain.VoteFlipped:
		vote := *existing
		vote.IsUpvote = ballot.IsUpvote
		vote.UpdatedAt = ballot.At
		r.votes[key] = vote
		change.Current = &vote
	case domain.VoteRetracted:
		delete(r.votes, key)
	case domain.VoteKept:
		change.Current = existing
		change.Previous = existing
	default:
		return domain.VoteChange{}, fmt.Errorf("unsupported vote action %q", action)
	}
	return change, nil
}

func (r *VoteRepository) DeleteVote(_ context.Context, subjectID, userID string) (*domain.Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := voteKey{subjectID, userID}
	vote, ok := r.votes[key]
	if !ok {
		return nil, nil
	}
	delete(r.votes, key)
	return &vote, nil
}

func (r *VoteRepository) ListVotesBySubject(_ context.Context, subjectID string) ([]*domain.Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	votes := make([]*domain.Vote, 0)
	for key, vote := range r.votes {
		if key.subjectID != subjectID {
			continue
		}
		v := vote
		votes = append(votes, &v)
	}
	sort.Slice(votes, func(i, j int) bool {
		return votes[i].CreatedAt.Before(votes[j].CreatedAt)
	})
	return votes, nil
}

