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

// StockPositionRepository manages the stock-position list.
type StockPositionRepository interface {
	FindAll(ctx context.Context) ([]entity.StockPosition, error)
	Create(ctx context.Context, position entity.StockPosition) (entity.StockPosition, error)
	Update(ctx context.Context, id int, mutate func(*entity.StockPosition)) (entity.StockPosition, error)
	Delete(ctx context.Context, id int) error
}

type stockPositionRepository struct {
	store *jsonstore.Store
	path  string
	log   *logger.Logger
	mu    sync.Mutex
}

// NewStockPositionRepository creates a new StockPositionRepository over dataDir.
func NewStockPositionRepository(store *jsonstore.Store, dataDir string, log *logger.Logger) StockPositionRepository {
	return &stockPositionRepository{
		store: store,
		path:  filepath.Join(dataDir, common.PositionsFile),
		log:   log,
	}
}

func (r *stockPositionRepository) load() []entity.StockPosition {
	var positions []entity.StockPosition
	if err := r.store.Load(r.path, &positions); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.log.Error("Failed to load positions", logger.ErrorField(err))
		}
		return []entity.StockPosition{}
	}
	if positions == nil {
		positions = []entity.StockPosition{}
	}
	return positions
}

func (r *stockPositionRepository) FindAll(_ context.Context) ([]entity.StockPosition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

// Create assigns max(existing ids)+1 under the repository mutex, same rule as
// covered-call trades.
func (r *stockPositionRepository) Create(_ context.Context, position entity.StockPosition) (entity.StockPosition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	positions := r.load()
	maxID := 0
	for _, p := range positions {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	position.ID = maxID + 1
	positions = append(positions, position)
	if err := r.store.Save(r.path, positions); err != nil {
		return entity.StockPosition{}, err
	}
	return position, nil
}

func (r *stockPositionRepository) Update(_ context.Context, id int, mutate func(*entity.StockPosition)) (entity.StockPosition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	positions := r.load()
	for i := range positions {
		if positions[i].ID == id {
			mutate(&positions[i])
			if err := r.store.Save(r.path, positions); err != nil {
				return entity.StockPosition{}, err
			}
			return positions[i], nil
		}
	}
	return entity.StockPosition{}, ErrNotFound
}

func (r *stockPositionRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	positions := r.load()
	kept := positions[:0]
	found := false
	for _, p := range positions {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return ErrNotFound
	}
	return r.store.Save(r.path, kept)
}
