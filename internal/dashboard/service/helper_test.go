package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return log
}
