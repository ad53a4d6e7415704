package dto

import (
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/entity"
)

// CreateCallRequest is the payload for recording a sold covered call.
type CreateCallRequest struct {
	Ticker             string  `json:"ticker"`
	SellDate           string  `json:"sell_date"`
	Expiry             string  `json:"expiry"`
	Strike             float64 `json:"strike"`
	Contracts          int     `json:"contracts"`
	PremiumPerContract float64 `json:"premium_per_contract"`
	Delta              float64 `json:"delta"`
	StockPrice         float64 `json:"stock_price"`
	Notes              string  `json:"notes"`
}

// CloseCallRequest is the payload for closing a covered call. Status defaults
// to "expired"; BuybackPrice applies only to closes that are neither
// expirations nor assignments.
type CloseCallRequest struct {
	Status       string  `json:"status"`
	CloseDate    string  `json:"close_date"`
	BuybackPrice float64 `json:"buyback_price"`
	Notes        *string `json:"notes"`
}

// CallsBucket is the summary rollup over one set of covered-call trades.
type CallsBucket struct {
	TotalPremium    float64 `json:"total_premium"`
	TotalPnL        float64 `json:"total_pnl"`
	TotalTrades     int     `json:"total_trades"`
	Expired         int     `json:"expired"`
	CalledAway      int     `json:"called_away"`
	Open            int     `json:"open"`
	WeeklyAvg       float64 `json:"weekly_avg"`
	AnnualizedYield float64 `json:"annualized_yield"`
}

// CallsSummary is the overall rollup plus the per-ticker partition.
type CallsSummary struct {
	CallsBucket
	Tickers  []string               `json:"tickers"`
	ByTicker map[string]CallsBucket `json:"by_ticker"`
}

// CallsResponse is the body of a covered-calls read.
type CallsResponse struct {
	Trades  []entity.CoveredCallTrade `json:"trades"`
	Summary *CallsSummary             `json:"summary"`
}

// CreateCallResponse wraps a newly recorded trade.
type CreateCallResponse struct {
	OK    bool                     `json:"ok"`
	Trade *entity.CoveredCallTrade `json:"trade"`
}
