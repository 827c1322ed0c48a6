package memory

import (
	"context"
	"sync"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
)

type subjectRecord struct {
	subject   domain.Subject
	upvotes   int64
	downvotes int64
}

// SubjectRepository is both the subject directory and the cached score sink.
type SubjectRepository struct {
	mu       sync.RWMutex
	subjects map[string]*subjectRecord
}

func NewSubjectRepository(seed ...domain.Subject) *SubjectRepository {
	r := &SubjectRepository{subjects: make(map[string]*subjectRecord, len(seed))}
	for _, subject := range seed {
		r.subjects[subject.ID] = &subjectRecord{subject: subject}
	}
	return r
}

func (r *SubjectRepository) SubjectExists(_ context.Context, subjectID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.subjects[subjectID]
	return ok, nil
}

func (r *SubjectRepository) RegisterSubject(_ context.Context, subject domain.Subject) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subjects[subject.ID]; ok {
		return nil
	}
	r.subjects[subject.ID] = &subjectRecord{subject: subject}
	return nil
}

func (r *SubjectRepository) ApplyScoreDelta(_ context.Context, subjectID string, upDelta, downDelta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.subjects[subjectID]
	if !ok {
		return domain.NewNotFoundError("subject %s", subjectID)
	}
	record.upvotes += int64(upDelta)
	record.downvotes += int64(downDelta)
	return nil
}

func (r *SubjectRepository) StoreScore(_ context.Context, score domain.Score) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.subjects[score.SubjectID]
	if !ok {
		return domain.NewNotFoundError("subject %s", score.SubjectID)
	}
	record.upvotes = score.Upvotes
	record.downvotes = score.Downvotes
	return nil
}

// CachedScore returns the counters as last written through the sink.
func (r *SubjectRepository) CachedScore(subjectID string) (domain.Score, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.subjects[subjectID]
	if !ok {
		return domain.Score{}, false
	}
	return domain.Score{SubjectID: subjectID, Upvotes: record.upvotes, Downvotes: record.downvotes}, true
}
