package domain

import (
	"context"
	"time"
)

type Vote struct {
	ID        string
	SubjectID string
	UserID    string
	IsUpvote  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Ballot is one vote request from a user for a subject.
type Ballot struct {
	SubjectID string
	UserID    string
	IsUpvote  bool
	At        time.Time
}

type VoteAction string

const (
	VoteCreated   VoteAction = "created"
	VoteFlipped   VoteAction = "flipped"
	VoteRetracted VoteAction = "retracted"
	VoteKept      VoteAction = "kept"
	VoteRemoved   VoteAction = "removed"
)

// VotePolicy decides what a ballot does to the stored vote of the same pair.
// existing is nil when the user has not voted on the subject.
type VotePolicy interface {
	Decide(existing *Vote, isUpvote bool) VoteAction
}

// VoteChange describes one committed mutation of a (subject, user) pair.
type VoteChange struct {
	Action   VoteAction
	Previous *Vote
	Current  *Vote
}

// CounterDelta returns the net change the mutation makes to the upvote and
// downvote counters of the subject.
func (c VoteChange) CounterDelta() (up, down int) {
	if c.Previous != nil {
		if c.Previous.IsUpvote {
			up--
		} else {
			down--
		}
	}
	if c.Current != nil {
		if c.Current.IsUpvote {
			up++
		} else {
			down++
		}
	}
	return up, down
}

type Score struct {
	SubjectID string
	Upvotes   int64
	Downvotes int64
}

func (s Score) Value() int64 {
	return s.Upvotes - s.Downvotes
}

// TallyVotes counts the given votes of a subject.
func TallyVotes(subjectID string, votes []*Vote) Score {
	score := Score{SubjectID: subjectID}
	for _, v := range votes {
		if v.IsUpvote {
			score.Upvotes++
		} else {
			score.Downvotes++
		}
	}
	return score
}

// VoteRepository is the vote store keyed by (subjectID, userID).
// ApplyVote and DeleteVote must serialize mutations of the same pair.
type VoteRepository interface {
	GetVote(ctx context.Context, subjectID, userID string) (*Vote, bool, error)
	ApplyVote(ctx context.Context, ballot Ballot, policy VotePolicy) (VoteChange, error)
	DeleteVote(ctx context.Context, subjectID, userID string) (*Vote, error)
	ListVotesBySubject(ctx context.Context, subjectID string) ([]*Vote, error)
}
