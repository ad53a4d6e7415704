package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/entity"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

// FetchFunc produces a fresh parsed snapshot from the upstream source.
type FetchFunc func(ctx context.Context) (*entity.ScanSnapshot, error)

// ArchiveFunc persists a snapshot to history.
type ArchiveFunc func(ctx context.Context, snapshot *entity.ScanSnapshot, at time.Time) error

// SnapshotCache is the single in-process cache slot for the latest scan.
// It decides when to refetch and whether a fresh snapshot constitutes a new
// historical entry. The clock and fetch function are injectable so the TTL
// and archive-dedup behavior are deterministic under test.
type SnapshotCache struct {
	mu               sync.Mutex
	snapshot         *entity.ScanSnapshot
	fetchedAt        time.Time
	lastArchivedScan string

	ttl     time.Duration
	now     func() time.Time
	fetch   FetchFunc
	archive ArchiveFunc
	log     *logger.Logger
}

// NewSnapshotCache creates a SnapshotCache with the given TTL.
func NewSnapshotCache(ttl time.Duration, fetch FetchFunc, archive ArchiveFunc, log *logger.Logger) *SnapshotCache {
	return &SnapshotCache{
		ttl:     ttl,
		now:     time.Now,
		fetch:   fetch,
		archive: archive,
		log:     log,
	}
}

// SetClock replaces the cache's clock. Intended for tests.
func (c *SnapshotCache) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Get returns the cached snapshot, refetching when forced, empty, or expired.
// A successful fetch replaces the slot unconditionally and is archived only
// when its scan_time differs from the most recently archived one. A failed
// fetch keeps the stale snapshot; with nothing cached it yields
// ErrSourceUnavailable.
func (c *SnapshotCache) Get(ctx context.Context, force bool) (*entity.ScanSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if !force && c.snapshot != nil && now.Sub(c.fetchedAt) <= c.ttl {
		return c.snapshot, nil
	}

	fresh, err := c.fetch(ctx)
	if err != nil {
		if c.snapshot != nil {
			c.log.Warn("Sheet fetch failed, serving stale snapshot", logger.ErrorField(err))
			return c.snapshot, nil
		}
		c.log.Error("Sheet fetch failed with no cached snapshot", logger.ErrorField(err))
		if errors.Is(err, ErrNoSnapshot) {
			return nil, ErrNoSnapshot
		}
		return nil, ErrSourceUnavailable
	}

	fresh.CacheTime = now.Unix()
	c.snapshot = fresh
	c.fetchedAt = now

	if fresh.ScanTime != c.lastArchivedScan {
		if err := c.archive(ctx, fresh, now); err != nil {
			c.log.Error("Failed to archive snapshot", logger.ErrorField(err))
		} else {
			c.lastArchivedScan = fresh.ScanTime
			c.log.Info("Archived new scan snapshot", logger.StringField("scan_time", fresh.ScanTime))
		}
	}

	return c.snapshot, nil
}
