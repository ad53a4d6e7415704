package entity

// StockRow is one candidate row of a scan, keyed by header name. Column order
// is carried by ScanSnapshot.Headers, not by the map.
type StockRow map[string]string

// MarketStatus holds the market regime fields of a scan.
type MarketStatus struct {
	Regime   string `json:"regime"`
	DistDays string `json:"dist_days"`
	BuyOK    string `json:"buy_ok"`
}

// AccountStatus holds the account fields of a scan.
type AccountStatus struct {
	Balance      string `json:"balance"`
	RiskPerTrade string `json:"risk_per_trade"`
	Actionable   string `json:"actionable"`
}

// ScanSnapshot is one capture of the upstream screening sheet.
type ScanSnapshot struct {
	ScanTime  string        `json:"scan_time"`
	Market    MarketStatus  `json:"market"`
	Account   AccountStatus `json:"account"`
	Headers   []string      `json:"headers"`
	Stocks    []StockRow    `json:"stocks"`
	CacheTime int64         `json:"cache_time"`
}

// Clone returns a deep copy of the snapshot, so per-request annotation never
// touches the shared cache slot.
func (s *ScanSnapshot) Clone() *ScanSnapshot {
	if s == nil {
		return nil
	}
	out := *s
	out.Headers = append([]string(nil), s.Headers...)
	out.Stocks = make([]StockRow, len(s.Stocks))
	for i, row := range s.Stocks {
		cp := make(StockRow, len(row))
		for k, v := range row {
			cp[k] = v
		}
		out.Stocks[i] = cp
	}
	return &out
}
