package telegram

import (
	"fmt"
	"strings"
	"time"
)

// FormatPriceAlert formats a triggered price alert as a Markdown message.
func FormatPriceAlert(ticker, condition string, alertPrice, lastPrice float64, at time.Time) string {
	var icon, direction string
	switch strings.ToLower(condition) {
	case "above":
		icon = "🚀"
		direction = "rose above"
	case "below":
		icon = "📉"
		direction = "fell below"
	default:
		icon = "🔔"
		direction = "crossed"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s *Price Alert: %s*\n", icon, ticker))
	b.WriteString(fmt.Sprintf("Price %s *$%.2f* (last: $%.2f)\n", direction, alertPrice, lastPrice))
	b.WriteString(fmt.Sprintf("🕒 %s", at.Format("2006-01-02 15:04")))
	return b.String()
}
