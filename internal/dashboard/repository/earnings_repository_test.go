package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/jsonstore"
)

func newEarningsRepo(t *testing.T) EarningsRepository {
	t.Helper()
	log := newTestLogger(t)
	return NewEarningsRepository(jsonstore.New(log), t.TempDir(), log)
}

func TestEarningsSetAndDelete(t *testing.T) {
	repo := newEarningsRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "NVDA", "2025-02-26"))
	require.NoError(t, repo.Set(ctx, "AAPL", "2025-01-30"))
	// last write wins
	require.NoError(t, repo.Set(ctx, "NVDA", "2025-02-27"))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"NVDA": "2025-02-27", "AAPL": "2025-01-30"}, all)

	require.NoError(t, repo.Delete(ctx, "AAPL"))
	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"NVDA": "2025-02-27"}, all)
}

func TestEarningsDeleteMissing(t *testing.T) {
	repo := newEarningsRepo(t)
	assert.ErrorIs(t, repo.Delete(context.Background(), "GHOST"), ErrNotFound)
}

func TestEarningsFindAllEmpty(t *testing.T) {
	repo := newEarningsRepo(t)
	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}
