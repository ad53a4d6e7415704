package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/repository"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/entity"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/utils"
)

const (
	headerTicker = "Ticker"
	headerPivot  = "Pivot"
	headerStop   = "Stop"
	headerShares = "Shares"
	headerCost   = "Cost"
)

// ScanService serves the current scan snapshot, annotated with
// position-sizing math.
type ScanService interface {
	GetSnapshot(ctx context.Context, force bool) (*entity.ScanSnapshot, error)
	ExportCSV(ctx context.Context, filter string) ([]byte, error)
}

// NewScanService creates a new ScanService.
func NewScanService(cache *SnapshotCache, settingsRepo repository.SettingsRepository, log *logger.Logger) ScanService {
	return &scanService{
		cache:        cache,
		settingsRepo: settingsRepo,
		logger:       log,
	}
}

type scanService struct {
	cache        *SnapshotCache
	settingsRepo repository.SettingsRepository
	logger       *logger.Logger
}

// GetSnapshot returns a copy of the cached snapshot with Shares/Cost filled
// in from the current settings. The cache slot itself is never mutated.
func (s *scanService) GetSnapshot(ctx context.Context, force bool) (*entity.ScanSnapshot, error) {
	snap, err := s.cache.Get(ctx, force)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Failed to load settings for annotation", logger.ErrorField(err))
		settings = entity.DefaultSettings()
	}

	annotated := snap.Clone()
	Annotate(annotated, settings.AccountEquity, settings.RiskPct)
	return annotated, nil
}

// Annotate fills the Shares and Cost columns of every row. Given
// riskPerTrade = equity * riskPct, a row with parseable prices satisfying
// Pivot > Stop > 0 gets shares = floor(riskPerTrade / (Pivot - Stop)) and
// cost = shares * Pivot; every other row gets empty strings for both. The
// Cost header is inserted right after Shares (appended when Shares is
// absent), idempotently.
func Annotate(snap *entity.ScanSnapshot, equity, riskPct float64) {
	riskPerTrade := equity * riskPct

	for _, stock := range snap.Stocks {
		pivot, errPivot := strconv.ParseFloat(strings.TrimSpace(stock[headerPivot]), 64)
		stop, errStop := strconv.ParseFloat(strings.TrimSpace(stock[headerStop]), 64)
		if errPivot != nil || errStop != nil || pivot <= 0 || stop <= 0 || pivot <= stop {
			stock[headerShares] = ""
			stock[headerCost] = ""
			continue
		}
		shares := math.Floor(riskPerTrade / (pivot - stop))
		stock[headerShares] = strconv.Itoa(int(shares))
		stock[headerCost] = utils.FormatUSD(shares * pivot)
	}

	for _, h := range snap.Headers {
		if h == headerCost {
			return
		}
	}
	for i, h := range snap.Headers {
		if h == headerShares {
			snap.Headers = append(snap.Headers[:i+1], append([]string{headerCost}, snap.Headers[i+1:]...)...)
			return
		}
	}
	snap.Headers = append(snap.Headers, headerCost)
}

// ExportCSV renders the annotated snapshot as CSV, optionally keeping only
// rows whose ticker contains filter (case-insensitive).
func (s *scanService) ExportCSV(ctx context.Context, filter string) ([]byte, error) {
	snap, err := s.GetSnapshot(ctx, false)
	if err != nil {
		return nil, err
	}

	filter = strings.ToLower(filter)
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(snap.Headers); err != nil {
		return nil, err
	}
	for _, stock := range snap.Stocks {
		if filter != "" && !strings.Contains(strings.ToLower(stock[headerTicker]), filter) {
			continue
		}
		row := make([]string, len(snap.Headers))
		for i, h := range snap.Headers {
			row[i] = stock[h]
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFilename names a CSV export for the given capture time.
func ExportFilename(at time.Time) string {
	return "canslim_export_" + at.Format("20060102_150405") + ".csv"
}
