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

// SettingsRepository manages the scanner settings document. Reads back-fill
// missing fields from the defaults without persisting them.
type SettingsRepository interface {
	Get(ctx context.Context) (entity.Settings, error)
	Save(ctx context.Context, settings entity.Settings) error
}

type settingsRepository struct {
	store *jsonstore.Store
	path  string
	log   *logger.Logger
	mu    sync.Mutex
}

// NewSettingsRepository creates a new SettingsRepository over dataDir.
func NewSettingsRepository(store *jsonstore.Store, dataDir string, log *logger.Logger) SettingsRepository {
	return &settingsRepository{
		store: store,
		path:  filepath.Join(dataDir, common.SettingsFile),
		log:   log,
	}
}

func (r *settingsRepository) Get(_ context.Context) (entity.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings := entity.Settings{}
	if err := r.store.Load(r.path, &settings); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.log.Error("Failed to load settings", logger.ErrorField(err))
		}
		return entity.DefaultSettings(), nil
	}

	defaults := entity.DefaultSettings()
	if settings.AccountEquity == 0 {
		settings.AccountEquity = defaults.AccountEquity
	}
	if settings.RiskPct == 0 {
		settings.RiskPct = defaults.RiskPct
	}
	if settings.MaxPositions == 0 {
		settings.MaxPositions = defaults.MaxPositions
	}
	return settings, nil
}

func (r *settingsRepository) Save(_ context.Context, settings entity.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Save(r.path, settings)
}
