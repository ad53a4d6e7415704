package utils

import "time"

// DateOnly formats t as a calendar date string (YYYY-MM-DD).
func DateOnly(t time.Time) string {
	return t.Format(time.DateOnly)
}

// SnapshotStamp formats t as the timestamp component of a history snapshot
// filename.
func SnapshotStamp(t time.Time) string {
	return t.Format("2006-01-02_1504")
}
