package common

const (
	AlertsFile       = "alerts.json"
	EarningsFile     = "earnings.json"
	SettingsFile     = "settings.json"
	CoveredCallsFile = "covered_calls.json"
	PositionsFile    = "positions.json"

	HistoryDir  = "history"
	RoutinesDir = "routines"
)
