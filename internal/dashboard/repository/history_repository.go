package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/entity"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/common"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/jsonstore"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/utils"
)

// HistoryFileInfo describes one archived snapshot file.
type HistoryFileInfo struct {
	Filename   string
	ScanTime   string
	StockCount int
}

// HistoryRepository archives scan snapshots, one immutable file per capture.
type HistoryRepository interface {
	Save(ctx context.Context, snapshot *entity.ScanSnapshot, at time.Time) (string, error)
	List(ctx context.Context) ([]HistoryFileInfo, error)
	Find(ctx context.Context, filename string) (*entity.ScanSnapshot, error)
}

type historyRepository struct {
	store *jsonstore.Store
	dir   string
	log   *logger.Logger
}

// NewHistoryRepository creates a new HistoryRepository over dataDir.
func NewHistoryRepository(store *jsonstore.Store, dataDir string, log *logger.Logger) HistoryRepository {
	return &historyRepository{
		store: store,
		dir:   filepath.Join(dataDir, common.HistoryDir),
		log:   log,
	}
}

func (r *historyRepository) Save(_ context.Context, snapshot *entity.ScanSnapshot, at time.Time) (string, error) {
	filename := fmt.Sprintf("scan_%s.json", utils.SnapshotStamp(at))
	if err := r.store.Save(filepath.Join(r.dir, filename), snapshot); err != nil {
		return "", err
	}
	return filename, nil
}

// List returns the archived snapshots, newest first. Unreadable files are
// skipped.
func (r *historyRepository) List(_ context.Context) ([]HistoryFileInfo, error) {
	files, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []HistoryFileInfo{}, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		if !f.IsDir() && strings.HasSuffix(f.Name(), ".json") {
			names = append(names, f.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	infos := make([]HistoryFileInfo, 0, len(names))
	for _, name := range names {
		var snap entity.ScanSnapshot
		if err := r.store.Load(filepath.Join(r.dir, name), &snap); err != nil {
			r.log.Error("Skipping unreadable snapshot file", logger.ErrorField(err), logger.StringField("file", name))
			continue
		}
		scanTime := snap.ScanTime
		if scanTime == "" {
			scanTime = "Unknown"
		}
		infos = append(infos, HistoryFileInfo{
			Filename:   name,
			ScanTime:   scanTime,
			StockCount: len(snap.Stocks),
		})
	}
	return infos, nil
}

// Find loads one archived snapshot by filename. Names that could escape the
// history directory are rejected as not found.
func (r *historyRepository) Find(_ context.Context, filename string) (*entity.ScanSnapshot, error) {
	if filename != filepath.Base(filename) || strings.Contains(filename, "..") || !strings.HasSuffix(filename, ".json") {
		return nil, ErrNotFound
	}
	var snap entity.ScanSnapshot
	if err := r.store.Load(filepath.Join(r.dir, filename), &snap); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &snap, nil
}
