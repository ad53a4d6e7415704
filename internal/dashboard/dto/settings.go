package dto

// UpdateSettingsRequest is the payload for a partial settings update. Nil
// fields are left unchanged.
type UpdateSettingsRequest struct {
	AccountEquity *float64 `json:"account_equity"`
	RiskPct       *float64 `json:"risk_pct"`
	MaxPositions  *int     `json:"max_positions"`
}
