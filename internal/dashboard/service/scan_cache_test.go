package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/entity"
)

type cacheHarness struct {
	cache    *SnapshotCache
	now      time.Time
	fetches  int
	archives []string
	fetchErr error
	scanTime string
}

func newCacheHarness(t *testing.T, ttl time.Duration) *cacheHarness {
	t.Helper()
	h := &cacheHarness{
		now:      time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC),
		scanTime: "2025-01-15 09:30",
	}
	fetch := func(ctx context.Context) (*entity.ScanSnapshot, error) {
		h.fetches++
		if h.fetchErr != nil {
			return nil, h.fetchErr
		}
		return &entity.ScanSnapshot{
			ScanTime: h.scanTime,
			Headers:  []string{"Ticker"},
			Stocks:   []entity.StockRow{{"Ticker": "NVDA"}},
		}, nil
	}
	archive := func(ctx context.Context, snap *entity.ScanSnapshot, at time.Time) error {
		h.archives = append(h.archives, snap.ScanTime)
		return nil
	}
	h.cache = NewSnapshotCache(ttl, fetch, archive, newTestLogger(t))
	h.cache.SetClock(func() time.Time { return h.now })
	return h
}

func TestSnapshotCacheServesWithinTTL(t *testing.T) {
	h := newCacheHarness(t, 5*time.Minute)
	ctx := context.Background()

	first, err := h.cache.Get(ctx, false)
	require.NoError(t, err)

	h.now = h.now.Add(4 * time.Minute)
	second, err := h.cache.Get(ctx, false)
	require.NoError(t, err)

	assert.Equal(t, 1, h.fetches)
	assert.Same(t, first, second)
}

func TestSnapshotCacheRefetchesAfterTTL(t *testing.T) {
	h := newCacheHarness(t, 5*time.Minute)
	ctx := context.Background()

	_, err := h.cache.Get(ctx, false)
	require.NoError(t, err)

	h.now = h.now.Add(6 * time.Minute)
	snap, err := h.cache.Get(ctx, false)
	require.NoError(t, err)

	assert.Equal(t, 2, h.fetches)
	assert.Equal(t, h.now.Unix(), snap.CacheTime)
}

func TestSnapshotCacheForceAlwaysFetches(t *testing.T) {
	h := newCacheHarness(t, 5*time.Minute)
	ctx := context.Background()

	_, err := h.cache.Get(ctx, false)
	require.NoError(t, err)
	_, err = h.cache.Get(ctx, true)
	require.NoError(t, err)

	assert.Equal(t, 2, h.fetches)
}

func TestSnapshotCacheServesStaleOnFetchFailure(t *testing.T) {
	h := newCacheHarness(t, 5*time.Minute)
	ctx := context.Background()

	first, err := h.cache.Get(ctx, false)
	require.NoError(t, err)

	h.fetchErr = errors.New("upstream down")
	h.now = h.now.Add(10 * time.Minute)
	second, err := h.cache.Get(ctx, false)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestSnapshotCacheErrorKinds(t *testing.T) {
	ctx := context.Background()

	h := newCacheHarness(t, time.Minute)
	h.fetchErr = errors.New("dial tcp: timeout")
	_, err := h.cache.Get(ctx, false)
	assert.ErrorIs(t, err, ErrSourceUnavailable)

	h = newCacheHarness(t, time.Minute)
	h.fetchErr = ErrNoSnapshot
	_, err = h.cache.Get(ctx, false)
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestSnapshotCacheArchivesOnlyNewScans(t *testing.T) {
	h := newCacheHarness(t, time.Minute)
	ctx := context.Background()

	_, err := h.cache.Get(ctx, true)
	require.NoError(t, err)
	_, err = h.cache.Get(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-15 09:30"}, h.archives)

	h.scanTime = "2025-01-15 10:00"
	_, err = h.cache.Get(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-15 09:30", "2025-01-15 10:00"}, h.archives)
}
