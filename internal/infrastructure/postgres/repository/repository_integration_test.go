package repository

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/LavaJover/shvark-deal-service/internal/config"
	"github.com/LavaJover/shvark-deal-service/internal/domain"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/postgres"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Runs against a disposable database named by DEAL_TEST_DSN.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("DEAL_TEST_DSN")
	if dsn == "" {
		t.Skip("DEAL_TEST_DSN not set")
	}
	db, err := postgres.InitDB(config.DealDB{Dsn: dsn, MaxOpenConns: 10, MaxIdleConns: 2, ConnMaxLifetime: time.Minute})
	require.NoError(t, err)

	_, file, _, _ := runtime.Caller(0)
	migrations := filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "migrations")
	require.NoError(t, migrate.RunMigrations(db, migrations, nil))
	return db
}

type toggle struct{}

func (toggle) Decide(existing *domain.Vote, isUpvote bool) domain.VoteAction {
	switch {
	case existing == nil:
		return domain.VoteCreated
	case existing.IsUpvote == isUpvote:
		return domain.VoteRetracted
	default:
		return domain.VoteFlipped
	}
}

func TestOrderRepositoryPostgres(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewDefaultOrderRepository(db)

	now := time.Now().UTC().Truncate(time.Microsecond)
	order := &domain.Order{
		ServiceID:  "svc-" + uuid.NewString(),
		AuthorID:   "author-" + uuid.NewString(),
		CustomerID: "customer-" + uuid.NewString(),
		Status:     domain.StatusPending,
		CreatedAt:  now,
	}
	require.NoError(t, repo.CreateOrder(ctx, order))

	_, err := repo.GetOrderByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.GetOrderByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var wg sync.WaitGroup
	applied := make([]bool, 8)
	for i := range applied {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, ok, err := repo.UpdateOrderStatus(ctx, domain.OrderTransition{
				OrderID: order.ID, From: domain.StatusPending, To: domain.StatusAccepted, At: now,
			})
			assert.NoError(t, err)
			applied[i] = ok
		}(i)
	}
	wg.Wait()
	wins := 0
	for _, ok := range applied {
		if ok {
			wins++
		}
	}
	assert.Equal(t, 1, wins)

	wg.Add(2)
	for _, role := range []domain.PartyRole{domain.RoleAuthor, domain.RoleCustomer} {
		go func(role domain.PartyRole) {
			defer wg.Done()
			_, ok, err := repo.ConfirmOrderParty(ctx, order.ID, role, now)
			assert.NoError(t, err)
			assert.True(t, ok)
		}(role)
	}
	wg.Wait()

	stored, err := repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
	assert.True(t, stored.AuthorConfirmed)
	assert.True(t, stored.CustomerConfirmed)
	assert.NotNil(t, stored.CompletedAt)

	byAuthor, err := repo.GetOrdersByAuthorID(ctx, order.AuthorID)
	require.NoError(t, err)
	assert.Len(t, byAuthor, 1)
}

func TestVoteRepositoryPostgres(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	votes := NewDefaultVoteRepository(db)
	subjects := NewDefaultSubjectRepository(db)

	subjectID := "post-" + uuid.NewString()
	require.NoError(t, subjects.RegisterSubject(ctx, domain.Subject{ID: subjectID, Kind: domain.SubjectPost, RegisteredAt: time.Now()}))
	require.NoError(t, subjects.RegisterSubject(ctx, domain.Subject{ID: subjectID, Kind: domain.SubjectPost, RegisteredAt: time.Now()}))
	exists, err := subjects.SubjectExists(ctx, subjectID)
	require.NoError(t, err)
	assert.True(t, exists)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(up bool) {
			defer wg.Done()
			_, err := votes.ApplyVote(ctx, domain.Ballot{SubjectID: subjectID, UserID: "u-1", IsUpvote: up, At: time.Now()}, toggle{})
			assert.NoError(t, err)
		}(i%2 == 0)
	}
	wg.Wait()

	list, err := votes.ListVotesBySubject(ctx, subjectID)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(list), 1)

	change, err := votes.ApplyVote(ctx, domain.Ballot{SubjectID: subjectID, UserID: "u-2", IsUpvote: false, At: time.Now()}, toggle{})
	require.NoError(t, err)
	assert.Equal(t, domain.VoteCreated, change.Action)

	removed, err := votes.DeleteVote(ctx, subjectID, "u-2")
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.False(t, removed.IsUpvote)

	removed, err = votes.DeleteVote(ctx, subjectID, "u-2")
	require.NoError(t, err)
	assert.Nil(t, removed)

	require.NoError(t, subjects.ApplyScoreDelta(ctx, subjectID, 1, 0))
	require.NoError(t, subjects.StoreScore(ctx, domain.Score{SubjectID: subjectID, Upvotes: 3, Downvotes: 1}))
	assert.ErrorIs(t, subjects.ApplyScoreDelta(ctx, "missing-"+uuid.NewString(), 1, 0), domain.ErrNotFound)
}
