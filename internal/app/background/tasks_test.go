package background

import (
	"context"
	"testing"
	"time"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/memory"
	voteusecase "github.com/LavaJover/shvark-deal-service/internal/usecase/vote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSubscriber struct {
	mock.Mock
}

func (m *mockSubscriber) Subscribe(ctx context.Context, topic, groupID string) (<-chan domain.Message, error) {
	args := m.Called(ctx, topic, groupID)
	ch, _ := args.Get(0).(chan domain.Message)
	return ch, args.Error(1)
}

func TestSubjectRegistrationConsumer(t *testing.T) {
	subjects := memory.NewSubjectRepository()
	voteUC := voteusecase.NewDefaultVoteUsecase(
		memory.NewVoteRepository(), subjects, subjects,
		voteusecase.TogglePolicy{}, nil, nil, nil,
	)

	msgs := make(chan domain.Message, 3)
	sub := &mockSubscriber{}
	sub.On("Subscribe", mock.Anything, "subject-events", "deal-service").Return(msgs, nil)

	bt := NewBackgroundTasks(voteUC, sub, "subject-events", "deal-service", nil)
	require.NoError(t, bt.StartAll(context.Background()))

	msgs <- domain.Message{Key: []byte("post-1"), Value: []byte(`{"subject_id":"post-1","kind":"post"}`)}
	msgs <- domain.Message{Key: []byte("bad"), Value: []byte(`{not json`)}
	msgs <- domain.Message{Key: []byte("x"), Value: []byte(`{"subject_id":"x","kind":"comment"}`)}
	close(msgs)

	assert.Eventually(t, func() bool {
		ok, _ := subjects.SubjectExists(context.Background(), "post-1")
		return ok
	}, time.Second, 10*time.Millisecond)

	exists, err := subjects.SubjectExists(context.Background(), "x")
	require.NoError(t, err)
	assert.False(t, exists)
	sub.AssertExpectations(t)
}

func TestStartAllWithoutSubscriber(t *testing.T) {
	bt := NewBackgroundTasks(nil, nil, "subject-events", "deal-service", nil)
	assert.NoError(t, bt.StartAll(context.Background()))
}
