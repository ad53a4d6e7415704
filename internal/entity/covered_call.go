package entity

import "time"

// CallStatus is the lifecycle state of a covered-call trade.
type CallStatus string

const (
	CallStatusOpen        CallStatus = "open"
	CallStatusExpired     CallStatus = "expired"
	CallStatusCalledAway  CallStatus = "called_away"
	CallStatusClosedOther CallStatus = "closed_other"
)

// CoveredCallTrade is one covered-call trade. IDs are allocated as
// max(existing)+1 within the document and are never reused after deletion.
type CoveredCallTrade struct {
	ID                 int        `json:"id"`
	Ticker             string     `json:"ticker"`
	SellDate           string     `json:"sell_date"`
	Expiry             string     `json:"expiry"`
	Strike             float64    `json:"strike"`
	Contracts          int        `json:"contracts"`
	PremiumPerContract float64    `json:"premium_per_contract"`
	PremiumTotal       float64    `json:"premium_total"`
	Delta              float64    `json:"delta"`
	StockPriceAtSell   float64    `json:"stock_price_at_sell"`
	Status             CallStatus `json:"status"`
	CloseDate          *string    `json:"close_date"`
	ClosePrice         *float64   `json:"close_price"`
	PnL                *float64   `json:"pnl"`
	Notes              string     `json:"notes"`
	CreatedAt          time.Time  `json:"created_at"`
}
