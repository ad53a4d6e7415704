package service

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrSourceUnavailable means the upstream sheet fetch failed and no prior
	// snapshot is available to serve.
	ErrSourceUnavailable = errors.New("sheet source unavailable")

	// ErrNoSnapshot means the fetched sheet was too short to form a snapshot.
	ErrNoSnapshot = errors.New("no snapshot available")
)

// ValidationError rejects a write before any mutation, carrying the specific
// reason for the caller.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrorf(reason string) error {
	return &ValidationError{Reason: reason}
}

var tickerPattern = regexp.MustCompile(`^[A-Za-z0-9.-]{1,10}$`)

// normalizeTicker trims, upper-cases and validates a ticker symbol: at most
// 10 characters, alphanumeric plus "." and "-".
func normalizeTicker(raw string) (string, bool) {
	ticker := strings.ToUpper(strings.TrimSpace(raw))
	if !tickerPattern.MatchString(ticker) {
		return "", false
	}
	return ticker, true
}
