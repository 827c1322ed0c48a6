package usecase

import (
	"fmt"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
)

const (
	PolicyToggle = "toggle"
	PolicyKeep   = "keep"
)

// TogglePolicy retracts a vote when the user repeats it, like clicking an
// active upvote arrow again.
type TogglePolicy struct{}

func (TogglePolicy) Decide(existing *domain.Vote, isUpvote bool) domain.VoteAction {
	switch {
	case existing == nil:
		return domain.VoteCreated
	case existing.IsUpvote == isUpvote:
		return domain.VoteRetracted
	default:
		return domain.VoteFlipped
	}
}

// KeepPolicy treats a repeated vote as a no-op.
type KeepPolicy struct{}

func (KeepPolicy) Decide(existing *domain.Vote, isUpvote bool) domain.VoteAction {
	switch {
	case existing == nil:
		return domain.VoteCreated
	case existing.IsUpvote == isUpvote:
		return domain.VoteKept
	default:
		return domain.VoteFlipped
	}
}

func PolicyByName(name string) (domain.VotePolicy, error) {
	switch name {
	case "", PolicyToggle:
		return TogglePolicy{}, nil
	case PolicyKeep:
		return KeepPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown vote policy %q", name)
	}
}
