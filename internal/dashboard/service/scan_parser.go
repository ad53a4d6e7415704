package service

import (
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/entity"
)

// cell returns row[idx], or "" when the row is shorter than idx+1.
func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// ParseSheet turns the raw sheet values into a structured scan snapshot.
// The sheet has a fixed layout: row 0 carries the scan timestamp in column 2,
// row 1 the market regime fields, row 2 the account fields, row 3 is blank,
// row 4 holds the column headers and rows 5+ one candidate per row. Fewer
// than 5 rows yields ErrNoSnapshot, never a panic.
func ParseSheet(values [][]string) (*entity.ScanSnapshot, error) {
	if len(values) < 5 {
		return nil, ErrNoSnapshot
	}

	scanTime := "Unknown"
	if len(values[0]) > 2 {
		scanTime = values[0][2]
	}

	headers := append([]string(nil), values[4]...)

	var stocks []entity.StockRow
	for _, row := range values[5:] {
		// Rows with fewer than two cells are separators or junk.
		if len(row) < 2 {
			continue
		}
		stock := make(entity.StockRow, len(headers))
		for j, header := range headers {
			stock[header] = cell(row, j)
		}
		stocks = append(stocks, stock)
	}

	return &entity.ScanSnapshot{
		ScanTime: scanTime,
		Market: entity.MarketStatus{
			Regime:   cell(values[1], 0),
			DistDays: cell(values[1], 2),
			BuyOK:    cell(values[1], 4),
		},
		Account: entity.AccountStatus{
			Balance:      cell(values[2], 0),
			RiskPerTrade: cell(values[2], 2),
			Actionable:   cell(values[2], 4),
		},
		Headers: headers,
		Stocks:  stocks,
	}, nil
}
