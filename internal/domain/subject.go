package domain

import (
	"context"
	"time"
)

type SubjectKind string

const (
	SubjectPost    SubjectKind = "post"
	SubjectService SubjectKind = "service"
)

func (k SubjectKind) Valid() bool {
	return k == SubjectPost || k == SubjectService
}

// Subject is anything users can vote on. The ledger only sees its id.
type Subject struct {
	ID           string
	Kind         SubjectKind
	RegisteredAt time.Time
}

type SubjectDirectory interface {
	SubjectExists(ctx context.Context, subjectID string) (bool, error)
	RegisterSubject(ctx context.Context, subject Subject) error
}

// ScoreSink holds the cached counters owned by the subject entity.
type ScoreSink interface {
	ApplyScoreDelta(ctx context.Context, subjectID string, upDelta, downDelta int) error
	StoreScore(ctx context.Context, score Score) error
}
