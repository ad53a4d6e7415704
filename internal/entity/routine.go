package entity

// RoutineEntry is one calendar day of the trading routine journal, persisted
// as its own document keyed by date. A nil phase map means that phase was
// never filled in.
type RoutineEntry struct {
	Date      string            `json:"date"`
	UpdatedAt string            `json:"updated_at,omitempty"`
	Premarket map[string]string `json:"premarket,omitempty"`
	Postclose map[string]string `json:"postclose,omitempty"`
}
