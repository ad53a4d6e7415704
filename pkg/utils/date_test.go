package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly(t *testing.T) {
	at := time.Date(2025, 1, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-05", DateOnly(at))
}

func TestSnapshotStamp(t *testing.T) {
	at := time.Date(2025, 1, 15, 9, 30, 45, 0, time.UTC)
	assert.Equal(t, "2025-01-15_0930", SnapshotStamp(at))
}
