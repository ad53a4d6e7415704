package dto

// HistoryEntry is one archived scan in the history listing.
type HistoryEntry struct {
	Filename   string `json:"filename"`
	ScanTime   string `json:"scan_time"`
	StockCount int    `json:"stock_count"`
}
