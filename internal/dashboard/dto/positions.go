package dto

import (
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/entity"
)

// CreatePositionRequest is the payload for opening a stock position.
type CreatePositionRequest struct {
	Ticker      string  `json:"ticker"`
	Account     string  `json:"account"`
	TradeType   string  `json:"trade_type"`
	EntryDate   string  `json:"entry_date"`
	EntryPrice  float64 `json:"entry_price"`
	Shares      int     `json:"shares"`
	StopPrice   float64 `json:"stop_price"`
	TargetPrice float64 `json:"target_price"`
	SetupType   string  `json:"setup_type"`
	Notes       string  `json:"notes"`
}

// UpdatePositionRequest is the payload for a position update. A non-nil
// ClosePrice closes the position and computes its realized P&L.
type UpdatePositionRequest struct {
	StopPrice  *float64 `json:"stop_price"`
	ClosePrice *float64 `json:"close_price"`
	CloseDate  *string  `json:"close_date"`
	Notes      *string  `json:"notes"`
}

// PositionsBucket is the summary rollup over one set of positions.
type PositionsBucket struct {
	TotalCapital float64 `json:"total_capital"`
	TotalPnL     float64 `json:"total_pnl"`
	OpenCount    int     `json:"open_count"`
	ClosedCount  int     `json:"closed_count"`
	WinCount     int     `json:"win_count"`
	LossCount    int     `json:"loss_count"`
	WinRate      float64 `json:"win_rate"`
	AvgRMultiple float64 `json:"avg_r_multiple"`
}

// PositionsSummary is the overall rollup plus the per-account partition.
type PositionsSummary struct {
	PositionsBucket
	Accounts  []string                   `json:"accounts"`
	ByAccount map[string]PositionsBucket `json:"by_account"`
}

// PositionsResponse is the body of a positions read.
type PositionsResponse struct {
	Positions []entity.StockPosition `json:"positions"`
	Summary   *PositionsSummary      `json:"summary"`
}

// CreatePositionResponse wraps a newly opened position.
type CreatePositionResponse struct {
	OK       bool                  `json:"ok"`
	Position *entity.StockPosition `json:"position"`
}
