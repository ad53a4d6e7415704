package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sheetFixture() [][]string {
	return [][]string{
		{"Scan", "", "2025-01-15 09:30"},
		{"Uptrend", "", "3", "", "Yes"},
		{"$125,000", "", "1%", "", "Yes"},
		{},
		{"Ticker", "Price", "Pivot", "Stop", "Shares"},
		{"NVDA", "135.20", "140.00", "130.00", ""},
		{"AAPL", "228.10", "230.00", "224.50", ""},
	}
}

func TestParseSheet(t *testing.T) {
	snap, err := ParseSheet(sheetFixture())
	require.NoError(t, err)

	assert.Equal(t, "2025-01-15 09:30", snap.ScanTime)
	assert.Equal(t, "Uptrend", snap.Market.Regime)
	assert.Equal(t, "3", snap.Market.DistDays)
	assert.Equal(t, "Yes", snap.Market.BuyOK)
	assert.Equal(t, "$125,000", snap.Account.Balance)
	assert.Equal(t, "1%", snap.Account.RiskPerTrade)
	assert.Equal(t, []string{"Ticker", "Price", "Pivot", "Stop", "Shares"}, snap.Headers)
	require.Len(t, snap.Stocks, 2)
	assert.Equal(t, "NVDA", snap.Stocks[0]["Ticker"])
	assert.Equal(t, "140.00", snap.Stocks[0]["Pivot"])
}

func TestParseSheetTooFewRows(t *testing.T) {
	for rows := 0; rows < 5; rows++ {
		values := make([][]string, rows)
		for i := range values {
			values[i] = []string{"x"}
		}
		_, err := ParseSheet(values)
		assert.ErrorIs(t, err, ErrNoSnapshot, "rows=%d", rows)
	}
}

func TestParseSheetMissingScanTimeCell(t *testing.T) {
	values := sheetFixture()
	values[0] = []string{"Scan", "only-two-cells"}

	snap, err := ParseSheet(values)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", snap.ScanTime)
}

func TestParseSheetPadsShortRows(t *testing.T) {
	values := sheetFixture()
	values = append(values, []string{"TSLA", "412.00"})

	snap, err := ParseSheet(values)
	require.NoError(t, err)
	require.Len(t, snap.Stocks, 3)

	row := snap.Stocks[2]
	assert.Equal(t, "TSLA", row["Ticker"])
	assert.Equal(t, "", row["Pivot"])
	assert.Equal(t, "", row["Stop"])
}

func TestParseSheetSkipsJunkRows(t *testing.T) {
	values := sheetFixture()
	values = append(values, []string{}, []string{"---"})

	snap, err := ParseSheet(values)
	require.NoError(t, err)
	assert.Len(t, snap.Stocks, 2)
}

func TestParseSheetShortMetadataRows(t *testing.T) {
	values := [][]string{
		{},
		{"Uptrend"},
		{},
		{},
		{"Ticker", "Price"},
		{"NVDA", "135.20"},
	}

	snap, err := ParseSheet(values)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", snap.ScanTime)
	assert.Equal(t, "Uptrend", snap.Market.Regime)
	assert.Equal(t, "", snap.Market.DistDays)
	assert.Equal(t, "", snap.Account.Balance)
}
