package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/entity"
)

type stubSettingsRepo struct {
	settings entity.Settings
}

func (r *stubSettingsRepo) Get(context.Context) (entity.Settings, error) { return r.settings, nil }
func (r *stubSettingsRepo) Save(context.Context, entity.Settings) error { return nil }

func annotatedFixture() *entity.ScanSnapshot {
	return &entity.ScanSnapshot{
		ScanTime: "2025-01-15 09:30",
		Headers:  []string{"Ticker", "Pivot", "Stop", "Shares"},
		Stocks: []entity.StockRow{
			{"Ticker": "NVDA", "Pivot": "140.00", "Stop": "130.00"},
			{"Ticker": "AAPL", "Pivot": "", "Stop": "224.50"},
			{"Ticker": "TSLA", "Pivot": "100.00", "Stop": "100.00"},
		},
	}
}

func TestAnnotateSizing(t *testing.T) {
	snap := annotatedFixture()
	Annotate(snap, 100000, 0.01)

	// risk 1000 / (140 - 130) = 100 shares, cost 100 * 140 = $14,000
	assert.Equal(t, "100", snap.Stocks[0]["Shares"])
	assert.Equal(t, "$14,000", snap.Stocks[0]["Cost"])

	// unparseable pivot and pivot <= stop both blank out the pair
	assert.Equal(t, "", snap.Stocks[1]["Shares"])
	assert.Equal(t, "", snap.Stocks[1]["Cost"])
	assert.Equal(t, "", snap.Stocks[2]["Shares"])
	assert.Equal(t, "", snap.Stocks[2]["Cost"])
}

func TestAnnotateFloorsShares(t *testing.T) {
	snap := &entity.ScanSnapshot{
		Headers: []string{"Ticker", "Pivot", "Stop", "Shares"},
		Stocks:  []entity.StockRow{{"Ticker": "AMD", "Pivot": "50.00", "Stop": "47.00"}},
	}
	Annotate(snap, 100000, 0.01)

	// 1000 / 3 = 333.33 -> 333 shares, cost 333 * 50 = $16,650
	assert.Equal(t, "333", snap.Stocks[0]["Shares"])
	assert.Equal(t, "$16,650", snap.Stocks[0]["Cost"])
}

func TestAnnotateHeaderPlacement(t *testing.T) {
	snap := annotatedFixture()
	Annotate(snap, 100000, 0.01)
	assert.Equal(t, []string{"Ticker", "Pivot", "Stop", "Shares", "Cost"}, snap.Headers)

	// running again must not duplicate the Cost header
	Annotate(snap, 100000, 0.01)
	assert.Equal(t, []string{"Ticker", "Pivot", "Stop", "Shares", "Cost"}, snap.Headers)
}

func TestAnnotateAppendsCostWithoutSharesHeader(t *testing.T) {
	snap := &entity.ScanSnapshot{
		Headers: []string{"Ticker", "Pivot", "Stop"},
		Stocks:  []entity.StockRow{{"Ticker": "NVDA", "Pivot": "140.00", "Stop": "130.00"}},
	}
	Annotate(snap, 100000, 0.01)
	assert.Equal(t, []string{"Ticker", "Pivot", "Stop", "Cost"}, snap.Headers)
}

func TestGetSnapshotDoesNotMutateCache(t *testing.T) {
	fixture := annotatedFixture()
	fetch := func(context.Context) (*entity.ScanSnapshot, error) { return fixture, nil }
	archive := func(context.Context, *entity.ScanSnapshot, time.Time) error { return nil }
	cache := NewSnapshotCache(time.Minute, fetch, archive, newTestLogger(t))

	svc := NewScanService(cache, &stubSettingsRepo{settings: entity.DefaultSettings()}, newTestLogger(t))

	snap, err := svc.GetSnapshot(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "100", snap.Stocks[0]["Shares"])

	cached, err := cache.Get(context.Background(), false)
	require.NoError(t, err)
	_, touched := cached.Stocks[0]["Shares"]
	assert.False(t, touched, "annotation leaked into the cache slot")
	assert.NotContains(t, cached.Headers, "Cost")
}

func TestExportCSV(t *testing.T) {
	fixture := annotatedFixture()
	fetch := func(context.Context) (*entity.ScanSnapshot, error) { return fixture, nil }
	archive := func(context.Context, *entity.ScanSnapshot, time.Time) error { return nil }
	cache := NewSnapshotCache(time.Minute, fetch, archive, newTestLogger(t))
	svc := NewScanService(cache, &stubSettingsRepo{settings: entity.DefaultSettings()}, newTestLogger(t))

	out, err := svc.ExportCSV(context.Background(), "")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Ticker,Pivot,Stop,Shares,Cost", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "NVDA,140.00,130.00,100,"))

	filtered, err := svc.ExportCSV(context.Background(), "aap")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(string(filtered)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "AAPL,"))
}

func TestExportFilename(t *testing.T) {
	at := time.Date(2025, 1, 15, 9, 30, 45, 0, time.UTC)
	assert.Equal(t, "canslim_export_20250115_093045.csv", ExportFilename(at))
}
