package repository

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/entity"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/common"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/jsonstore"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

// AlertRepository manages the price-alert list. Alerts are addressed by list
// index.
type AlertRepository interface {
	FindAll(ctx context.Context) ([]entity.Alert, error)
	Add(ctx context.Context, alert entity.Alert) error
	DeleteByIndex(ctx context.Context, index int) (entity.Alert, error)
	ReplaceAll(ctx context.Context, alerts []entity.Alert) error
}

type alertRepository struct {
	store *jsonstore.Store
	path  string
	log   *logger.Logger
	mu    sync.Mutex
}

// NewAlertRepository creates a new AlertRepository over dataDir.
func NewAlertRepository(store *jsonstore.Store, dataDir string, log *logger.Logger) AlertRepository {
	return &alertRepository{
		store: store,
		path:  filepath.Join(dataDir, common.AlertsFile),
		log:   log,
	}
}

// load returns the stored alert list, or an empty list when the document is
// absent or unreadable. Read failures are logged, never propagated.
func (r *alertRepository) load() []entity.Alert {
	var alerts []entity.Alert
	if err := r.store.Load(r.path, &alerts); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.log.Error("Failed to load alerts", logger.ErrorField(err))
		}
		return []entity.Alert{}
	}
	if alerts == nil {
		alerts = []entity.Alert{}
	}
	return alerts
}

func (r *alertRepository) FindAll(_ context.Context) ([]entity.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

func (r *alertRepository) Add(_ context.Context, alert entity.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	alerts := append(r.load(), alert)
	return r.store.Save(r.path, alerts)
}

func (r *alertRepository) DeleteByIndex(_ context.Context, index int) (entity.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	alerts := r.load()
	if index < 0 || index >= len(alerts) {
		return entity.Alert{}, ErrNotFound
	}
	deleted := alerts[index]
	alerts = append(alerts[:index], alerts[index+1:]...)
	if err := r.store.Save(r.path, alerts); err != nil {
		return entity.Alert{}, err
	}
	return deleted, nil
}

func (r *alertRepository) ReplaceAll(_ context.Context, alerts []entity.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if alerts == nil {
		alerts = []entity.Alert{}
	}
	return r.store.Save(r.path, alerts)
}
