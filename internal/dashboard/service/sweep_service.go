package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/robfig/cron/v3"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/repository"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/entity"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/telegram"
)

// SweepService periodically refreshes the scan cache and evaluates price
// alerts against the snapshot, notifying on the ones that crossed.
type SweepService interface {
	Start(ctx context.Context)
	Sweep(ctx context.Context)
}

// NewSweepService creates a new SweepService. schedule is a standard 5-field
// cron expression; notifyTTL suppresses repeat notifications for the same
// alert. notifier may be nil, which disables notification but not evaluation.
func NewSweepService(
	scanCache *SnapshotCache,
	alertRepo repository.AlertRepository,
	notifier telegram.Notifier,
	schedule string,
	notifyTTL time.Duration,
	log *logger.Logger,
) (SweepService, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	sched, err := parser.Parse(schedule)
	if err != nil {
		return nil, fmt.Errorf("parse sweep schedule %q: %w", schedule, err)
	}
	return &sweepService{
		scanCache:   scanCache,
		alertRepo:   alertRepo,
		notifier:    notifier,
		schedule:    sched,
		notifyCache: cache.New(notifyTTL, 2*notifyTTL),
		logger:      log,
	}, nil
}

type sweepService struct {
	scanCache   *SnapshotCache
	alertRepo   repository.AlertRepository
	notifier    telegram.Notifier
	schedule    cron.Schedule
	notifyCache *cache.Cache
	logger      *logger.Logger
}

// Start runs sweeps on the configured schedule until the context is canceled.
func (s *sweepService) Start(ctx context.Context) {
	for {
		next := s.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("Alert sweep stopping")
			return
		case <-timer.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep refreshes the snapshot (respecting the cache TTL) and marks and
// notifies every untriggered alert whose condition the current price crossed.
func (s *sweepService) Sweep(ctx context.Context) {
	snap, err := s.scanCache.Get(ctx, false)
	if err != nil {
		s.logger.Warn("Sweep skipped, no snapshot", logger.ErrorField(err))
		return
	}

	alerts, err := s.alertRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to load alerts for sweep", logger.ErrorField(err))
		return
	}

	prices := snapshotPrices(snap)
	changed := false
	for i := range alerts {
		alert := &alerts[i]
		if alert.Triggered {
			continue
		}
		price, ok := prices[alert.Ticker]
		if !ok {
			continue
		}
		if !alertCrossed(alert, price) {
			continue
		}

		alert.Triggered = true
		changed = true
		s.logger.Info("Price alert triggered",
			logger.StringField("ticker", alert.Ticker),
			logger.StringField("condition", string(alert.Condition)),
			logger.Field("alert_price", alert.Price),
			logger.Field("last_price", price))
		s.notify(alert, price)
	}

	if changed {
		if err := s.alertRepo.ReplaceAll(ctx, alerts); err != nil {
			s.logger.Error("Failed to persist triggered alerts", logger.ErrorField(err))
		}
	}
}

func alertCrossed(alert *entity.Alert, price float64) bool {
	switch alert.Condition {
	case entity.AlertConditionAbove:
		return price >= alert.Price
	case entity.AlertConditionBelow:
		return price <= alert.Price
	default:
		return false
	}
}

func (s *sweepService) notify(alert *entity.Alert, price float64) {
	if s.notifier == nil {
		return
	}
	key := fmt.Sprintf("alert:%s:%s:%g", alert.Ticker, alert.Condition, alert.Price)
	if _, found := s.notifyCache.Get(key); found {
		return
	}
	msg := telegram.FormatPriceAlert(alert.Ticker, string(alert.Condition), alert.Price, price, time.Now())
	if err := s.notifier.SendMessage(msg); err != nil {
		s.logger.Error("Failed to send alert notification", logger.ErrorField(err), logger.StringField("ticker", alert.Ticker))
		return
	}
	s.notifyCache.Set(key, struct{}{}, cache.DefaultExpiration)
}

// snapshotPrices extracts a ticker-to-price map from the snapshot's Ticker
// and Price columns. Currency symbols and thousands separators are tolerated.
func snapshotPrices(snap *entity.ScanSnapshot) map[string]float64 {
	prices := make(map[string]float64, len(snap.Stocks))
	for _, stock := range snap.Stocks {
		ticker := strings.ToUpper(strings.TrimSpace(stock[headerTicker]))
		if ticker == "" {
			continue
		}
		raw := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(stock["Price"]))
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		prices[ticker] = price
	}
	return prices
}
