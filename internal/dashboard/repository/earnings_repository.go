package repository

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/common"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/jsonstore"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

// EarningsRepository manages the ticker-to-earnings-date map. One entry per
// ticker, last write wins.
type EarningsRepository interface {
	FindAll(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, ticker, date string) error
	Delete(ctx context.Context, ticker string) error
}

type earningsRepository struct {
	store *jsonstore.Store
	path  string
	log   *logger.Logger
	mu    sync.Mutex
}

// NewEarningsRepository creates a new EarningsRepository over dataDir.
func NewEarningsRepository(store *jsonstore.Store, dataDir string, log *logger.Logger) EarningsRepository {
	return &earningsRepository{
		store: store,
		path:  filepath.Join(dataDir, common.EarningsFile),
		log:   log,
	}
}

func (r *earningsRepository) load() map[string]string {
	earnings := map[string]string{}
	if err := r.store.Load(r.path, &earnings); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.log.Error("Failed to load earnings dates", logger.ErrorField(err))
		}
		return map[string]string{}
	}
	return earnings
}

func (r *earningsRepository) FindAll(_ context.Context) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

func (r *earningsRepository) Set(_ context.Context, ticker, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	earnings := r.load()
	earnings[ticker] = date
	return r.store.Save(r.path, earnings)
}

func (r *earningsRepository) Delete(_ context.Context, ticker string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	earnings := r.load()
	if _, ok := earnings[ticker]; !ok {
		return ErrNotFound
	}
	delete(earnings, ticker)
	return r.store.Save(r.path, earnings)
}
