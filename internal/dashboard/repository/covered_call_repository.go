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

// CoveredCallRepository manages the covered-call trade list.
type CoveredCallRepository interface {
	FindAll(ctx context.Context) ([]entity.CoveredCallTrade, error)
	Create(ctx context.Context, trade entity.CoveredCallTrade) (entity.CoveredCallTrade, error)
	Update(ctx context.Context, id int, mutate func(*entity.CoveredCallTrade)) (entity.CoveredCallTrade, error)
	Delete(ctx context.Context, id int) error
}

type coveredCallRepository struct {
	store *jsonstore.Store
	path  string
	log   *logger.Logger
	mu    sync.Mutex
}

// NewCoveredCallRepository creates a new CoveredCallRepository over dataDir.
func NewCoveredCallRepository(store *jsonstore.Store, dataDir string, log *logger.Logger) CoveredCallRepository {
	return &coveredCallRepository{
		store: store,
		path:  filepath.Join(dataDir, common.CoveredCallsFile),
		log:   log,
	}
}

func (r *coveredCallRepository) load() []entity.CoveredCallTrade {
	var trades []entity.CoveredCallTrade
	if err := r.store.Load(r.path, &trades); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.log.Error("Failed to load covered calls", logger.ErrorField(err))
		}
		return []entity.CoveredCallTrade{}
	}
	if trades == nil {
		trades = []entity.CoveredCallTrade{}
	}
	return trades
}

func (r *coveredCallRepository) FindAll(_ context.Context) ([]entity.CoveredCallTrade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

// Create assigns max(existing ids)+1 and appends the trade. The read and the
// id computation happen under the repository mutex, so in-process callers
// cannot race; a second process writing the same document still can.
func (r *coveredCallRepository) Create(_ context.Context, trade entity.CoveredCallTrade) (entity.CoveredCallTrade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trades := r.load()
	maxID := 0
	for _, t := range trades {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	trade.ID = maxID + 1
	trades = append(trades, trade)
	if err := r.store.Save(r.path, trades); err != nil {
		return entity.CoveredCallTrade{}, err
	}
	return trade, nil
}

func (r *coveredCallRepository) Update(_ context.Context, id int, mutate func(*entity.CoveredCallTrade)) (entity.CoveredCallTrade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trades := r.load()
	for i := range trades {
		if trades[i].ID == id {
			mutate(&trades[i])
			if err := r.store.Save(r.path, trades); err != nil {
				return entity.CoveredCallTrade{}, err
			}
			return trades[i], nil
		}
	}
	return entity.CoveredCallTrade{}, ErrNotFound
}

func (r *coveredCallRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trades := r.load()
	kept := trades[:0]
	found := false
	for _, t := range trades {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return ErrNotFound
	}
	return r.store.Save(r.path, kept)
}
