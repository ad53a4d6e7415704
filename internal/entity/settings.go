package entity

// Settings holds the scanner position-sizing settings.
type Settings struct {
	AccountEquity float64 `json:"account_equity"`
	RiskPct       float64 `json:"risk_pct"`
	MaxPositions  int     `json:"max_positions"`
}

// DefaultSettings returns the settings used when no settings document exists.
// Missing keys are back-filled from these on every read and never persisted
// implicitly.
func DefaultSettings() Settings {
	return Settings{
		AccountEquity: 100000,
		RiskPct:       0.01,
		MaxPositions:  6,
	}
}
