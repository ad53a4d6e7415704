package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usdPrinter = message.NewPrinter(language.English)

// FormatUSD renders v as a whole-dollar amount with thousands separators,
// e.g. 12345.6 -> "$12,346".
func FormatUSD(v float64) string {
	return usdPrinter.Sprintf("$%.0f", v)
}

// ToPointer returns a pointer to v.
func ToPointer[T any](v T) *T {
	return &v
}
