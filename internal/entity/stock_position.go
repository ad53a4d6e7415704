package entity

import "time"

// TradeType is the direction of a stock position.
type TradeType string

const (
	TradeTypeLong  TradeType = "long"
	TradeTypeShort TradeType = "short"
)

// PositionStatus is the lifecycle state of a stock position.
type PositionStatus string

const (
	PositionStatusOpen   PositionStatus = "open"
	PositionStatusClosed PositionStatus = "closed"
)

// StockPosition is one stock trade. IDs follow the same allocation rule as
// covered-call trades. A zero StopPrice or TargetPrice means "not set".
type StockPosition struct {
	ID          int            `json:"id"`
	Ticker      string         `json:"ticker"`
	Account     string         `json:"account"`
	TradeType   TradeType      `json:"trade_type"`
	EntryDate   string         `json:"entry_date"`
	EntryPrice  float64        `json:"entry_price"`
	Shares      int            `json:"shares"`
	CostBasis   float64        `json:"cost_basis"`
	StopPrice   float64        `json:"stop_price"`
	TargetPrice float64        `json:"target_price"`
	SetupType   string         `json:"setup_type"`
	Status      PositionStatus `json:"status"`
	CloseDate   *string        `json:"close_date"`
	ClosePrice  *float64       `json:"close_price"`
	PnL         *float64       `json:"pnl"`
	Notes       string         `json:"notes"`
	CreatedAt   time.Time      `json:"created_at"`
}
