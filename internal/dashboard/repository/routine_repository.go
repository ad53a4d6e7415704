package repository

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/entity"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/common"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/jsonstore"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

// RoutineRepository manages the daily routine journal, one document per
// calendar date.
type RoutineRepository interface {
	Find(ctx context.Context, date string) (entity.RoutineEntry, error)
	Save(ctx context.Context, entry entity.RoutineEntry) error
	FindAll(ctx context.Context) ([]entity.RoutineEntry, error)
}

type routineRepository struct {
	store *jsonstore.Store
	dir   string
	log   *logger.Logger
	mu    sync.Mutex
}

// NewRoutineRepository creates a new RoutineRepository over dataDir.
func NewRoutineRepository(store *jsonstore.Store, dataDir string, log *logger.Logger) RoutineRepository {
	return &routineRepository{
		store: store,
		dir:   filepath.Join(dataDir, common.RoutinesDir),
		log:   log,
	}
}

// Find returns the routine entry for date, or a fresh entry carrying only the
// date when none has been saved yet.
func (r *routineRepository) Find(_ context.Context, date string) (entity.RoutineEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := entity.RoutineEntry{Date: date}
	path := filepath.Join(r.dir, date+".json")
	if err := r.store.Load(path, &entry); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.log.Error("Failed to load routine entry", logger.ErrorField(err), logger.StringField("date", date))
		}
		return entity.RoutineEntry{Date: date}, nil
	}
	entry.Date = date
	return entry, nil
}

func (r *routineRepository) Save(_ context.Context, entry entity.RoutineEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	path := filepath.Join(r.dir, entry.Date+".json")
	return r.store.Save(path, entry)
}

// FindAll returns every saved routine entry. Unreadable files are skipped.
func (r *routineRepository) FindAll(_ context.Context) ([]entity.RoutineEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	files, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var entries []entity.RoutineEntry
	for _, f := range files {
		name := f.Name()
		if f.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		var entry entity.RoutineEntry
		if err := r.store.Load(filepath.Join(r.dir, name), &entry); err != nil {
			r.log.Error("Skipping unreadable routine file", logger.ErrorField(err), logger.StringField("file", name))
			continue
		}
		entry.Date = strings.TrimSuffix(name, ".json")
		entries = append(entries, entry)
	}
	return entries, nil
}
