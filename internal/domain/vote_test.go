package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterDelta(t *testing.T) {
	up := &Vote{IsUpvote: true}
	down := &Vote{IsUpvote: false}

	tests := []struct {
		name     string
		change   VoteChange
		wantUp   int
		wantDown int
	}{
		{name: "created up", change: VoteChange{Action: VoteCreated, Current: up}, wantUp: 1},
		{name: "created down", change: VoteChange{Action: VoteCreated, Current: down}, wantDown: 1},
		{name: "flipped to down", change: VoteChange{Action: VoteFlipped, Previous: up, Current: down}, wantUp: -1, wantDown: 1},
		{name: "retracted up", change: VoteChange{Action: VoteRetracted, Previous: up}, wantUp: -1},
		{name: "removed down", change: VoteChange{Action: VoteRemoved, Previous: down}, wantDown: -1},
		{name: "kept", change: VoteChange{Action: VoteKept, Previous: up, Current: up}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUp, gotDown := tt.change.CounterDelta()
			assert.Equal(t, tt.wantUp, gotUp)
			assert.Equal(t, tt.wantDown, gotDown)
		})
	}
}

func TestTallyVotes(t *testing.T) {
	score := TallyVotes("s", []*Vote{{IsUpvote: true}, {IsUpvote: true}, {IsUpvote: false}})
	assert.Equal(t, Score{SubjectID: "s", Upvotes: 2, Downvotes: 1}, score)
	assert.Equal(t, int64(1), score.Value())

	assert.Equal(t, int64(0), TallyVotes("s", nil).Value())
}

func TestStorageErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStorageError(cause, "get order %s", "o-1")
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "get order o-1")
}
