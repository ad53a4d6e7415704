package dto

// SetEarningsRequest is the payload for setting a ticker's earnings date.
type SetEarningsRequest struct {
	Ticker string `json:"ticker"`
	Date   string `json:"date"`
}

// EarningsResponse echoes the stored ticker/date pair.
type EarningsResponse struct {
	Ticker string `json:"ticker"`
	Date   string `json:"date"`
}
