package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/dto"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/repository"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/entity"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/jsonstore"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/utils"
)

func newCallService(t *testing.T) CoveredCallService {
	t.Helper()
	log := newTestLogger(t)
	repo := repository.NewCoveredCallRepository(jsonstore.New(log), t.TempDir(), log)
	return NewCoveredCallService(repo, 100000, log)
}

func TestAddTradeDefaults(t *testing.T) {
	svc := newCallService(t)

	trade, err := svc.AddTrade(context.Background(), &dto.CreateCallRequest{
		Strike:             600,
		PremiumPerContract: 2.5,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, trade.ID)
	assert.Equal(t, "SPY", trade.Ticker)
	assert.Equal(t, 1, trade.Contracts)
	assert.Equal(t, 0.10, trade.Delta)
	assert.Equal(t, 250.0, trade.PremiumTotal)
	assert.Equal(t, entity.CallStatusOpen, trade.Status)
	assert.NotEmpty(t, trade.SellDate)
}

func TestAddTradeValidation(t *testing.T) {
	svc := newCallService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.CreateCallRequest
	}{
		{"bad ticker", dto.CreateCallRequest{Ticker: "WAY_TOO_LONG_TICKER", Strike: 100}},
		{"negative contracts", dto.CreateCallRequest{Strike: 100, Contracts: -3}},
		{"premium out of range", dto.CreateCallRequest{Strike: 100, PremiumPerContract: 20000}},
		{"zero strike", dto.CreateCallRequest{Strike: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddTrade(ctx, &tc.req)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestCloseTradeExpired(t *testing.T) {
	svc := newCallService(t)
	ctx := context.Background()

	trade, err := svc.AddTrade(ctx, &dto.CreateCallRequest{
		Ticker: "SPY", Strike: 600, Contracts: 10, PremiumPerContract: 2.5,
	})
	require.NoError(t, err)
	assert.Equal(t, 2500.0, trade.PremiumTotal)

	closed, err := svc.CloseTrade(ctx, trade.ID, &dto.CloseCallRequest{Status: "expired"})
	require.NoError(t, err)
	assert.Equal(t, entity.CallStatusExpired, closed.Status)
	require.NotNil(t, closed.PnL)
	assert.Equal(t, 2500.0, *closed.PnL)
	require.NotNil(t, closed.CloseDate)
}

func TestCloseTradeCalledAway(t *testing.T) {
	svc := newCallService(t)
	ctx := context.Background()

	trade, err := svc.AddTrade(ctx, &dto.CreateCallRequest{
		Ticker: "NVDA", Strike: 105, StockPrice: 100, Contracts: 10, PremiumPerContract: 2.5,
	})
	require.NoError(t, err)

	closed, err := svc.CloseTrade(ctx, trade.ID, &dto.CloseCallRequest{Status: "called_away"})
	require.NoError(t, err)
	require.NotNil(t, closed.PnL)
	// premium 2500 + (105 - 100) * 10 * 100 appreciation
	assert.Equal(t, 7500.0, *closed.PnL)
}

func TestCloseTradeBuyback(t *testing.T) {
	svc := newCallService(t)
	ctx := context.Background()

	trade, err := svc.AddTrade(ctx, &dto.CreateCallRequest{
		Ticker: "SPY", Strike: 600, Contracts: 10, PremiumPerContract: 2.5,
	})
	require.NoError(t, err)

	closed, err := svc.CloseTrade(ctx, trade.ID, &dto.CloseCallRequest{
		Status: "closed_other", BuybackPrice: 1.0,
	})
	require.NoError(t, err)
	require.NotNil(t, closed.PnL)
	assert.Equal(t, 1500.0, *closed.PnL)
	require.NotNil(t, closed.ClosePrice)
	assert.Equal(t, 1.0, *closed.ClosePrice)
}

func TestCloseTradeRejectsUnknownStatus(t *testing.T) {
	svc := newCallService(t)
	ctx := context.Background()

	trade, err := svc.AddTrade(ctx, &dto.CreateCallRequest{Strike: 600})
	require.NoError(t, err)

	_, err = svc.CloseTrade(ctx, trade.ID, &dto.CloseCallRequest{Status: "vaporized"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCloseTradeMissingID(t *testing.T) {
	svc := newCallService(t)
	_, err := svc.CloseTrade(context.Background(), 999, &dto.CloseCallRequest{Status: "expired"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSummarizeCalls(t *testing.T) {
	trades := []entity.CoveredCallTrade{
		{ID: 1, Ticker: "SPY", SellDate: "2025-01-03", PremiumTotal: 250,
			Status: entity.CallStatusExpired, PnL: utils.ToPointer(250.0)},
		{ID: 2, Ticker: "SPY", SellDate: "2025-01-10", PremiumTotal: 300,
			Status: entity.CallStatusCalledAway, PnL: utils.ToPointer(800.0)},
		{ID: 3, Ticker: "NVDA", SellDate: "2025-02-07", PremiumTotal: 450,
			Status: entity.CallStatusOpen},
	}

	summary := SummarizeCalls(trades, 100000)

	assert.Equal(t, 3, summary.TotalTrades)
	assert.Equal(t, 1000.0, summary.TotalPremium)
	// open trades are excluded from realized P&L
	assert.Equal(t, 1050.0, summary.TotalPnL)
	assert.Equal(t, 1, summary.Expired)
	assert.Equal(t, 1, summary.CalledAway)
	assert.Equal(t, 1, summary.Open)
	// 1000 premium over 2 distinct months annualized against 100k capital
	assert.InDelta(t, 6.0, summary.AnnualizedYield, 1e-9)

	assert.Equal(t, []string{"NVDA", "SPY"}, summary.Tickers)
	spy := summary.ByTicker["SPY"]
	assert.Equal(t, 2, spy.TotalTrades)
	assert.Equal(t, 550.0, spy.TotalPremium)
}

func TestSummarizeCallsEmpty(t *testing.T) {
	summary := SummarizeCalls(nil, 100000)
	assert.Equal(t, 0, summary.TotalTrades)
	assert.Equal(t, 0.0, summary.AnnualizedYield)
	assert.Empty(t, summary.Tickers)
	assert.Empty(t, summary.ByTicker)
}
