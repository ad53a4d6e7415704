package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/entity"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/jsonstore"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return log
}

func newCallRepo(t *testing.T) CoveredCallRepository {
	t.Helper()
	log := newTestLogger(t)
	return NewCoveredCallRepository(jsonstore.New(log), t.TempDir(), log)
}

func TestCoveredCallCreateAssignsIDs(t *testing.T) {
	repo := newCallRepo(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		created, err := repo.Create(ctx, entity.CoveredCallTrade{Ticker: "SPY"})
		require.NoError(t, err)
		assert.Equal(t, i, created.ID)
	}

	// ids are max+1, so removing a middle trade never re-assigns its id
	require.NoError(t, repo.Delete(ctx, 2))
	created, err := repo.Create(ctx, entity.CoveredCallTrade{Ticker: "SPY"})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
}

func TestCoveredCallUpdate(t *testing.T) {
	repo := newCallRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, entity.CoveredCallTrade{Ticker: "SPY", Status: entity.CallStatusOpen})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, func(tr *entity.CoveredCallTrade) {
		tr.Status = entity.CallStatusExpired
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CallStatusExpired, updated.Status)

	trades, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, entity.CallStatusExpired, trades[0].Status)
}

func TestCoveredCallUpdateMissing(t *testing.T) {
	repo := newCallRepo(t)
	_, err := repo.Update(context.Background(), 42, func(*entity.CoveredCallTrade) {})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCoveredCallDeleteMissing(t *testing.T) {
	repo := newCallRepo(t)
	assert.ErrorIs(t, repo.Delete(context.Background(), 42), ErrNotFound)
}

func TestCoveredCallFindAllEmpty(t *testing.T) {
	repo := newCallRepo(t)
	trades, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, trades)
	assert.Empty(t, trades)
}
