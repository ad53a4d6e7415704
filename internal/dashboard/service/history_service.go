package service

import (
	"context"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/dto"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/repository"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/entity"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

// HistoryService serves the archived scan snapshots.
type HistoryService interface {
	ListSnapshots(ctx context.Context) ([]dto.HistoryEntry, error)
	GetSnapshot(ctx context.Context, filename string) (*entity.ScanSnapshot, error)
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(historyRepo repository.HistoryRepository, log *logger.Logger) HistoryService {
	return &historyService{
		historyRepo: historyRepo,
		logger:      log,
	}
}

type historyService struct {
	historyRepo repository.HistoryRepository
	logger      *logger.Logger
}

func (s *historyService) ListSnapshots(ctx context.Context) ([]dto.HistoryEntry, error) {
	infos, err := s.historyRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list snapshots", logger.ErrorField(err))
		return nil, err
	}
	entries := make([]dto.HistoryEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, dto.HistoryEntry{
			Filename:   info.Filename,
			ScanTime:   info.ScanTime,
			StockCount: info.StockCount,
		})
	}
	return entries, nil
}

func (s *historyService) GetSnapshot(ctx context.Context, filename string) (*entity.ScanSnapshot, error) {
	return s.historyRepo.Find(ctx, filename)
}
