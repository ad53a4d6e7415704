package service

import (
	"context"
	"strings"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/dto"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/repository"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

// EarningsService manages the ticker-to-earnings-date map.
type EarningsService interface {
	GetEarnings(ctx context.Context) (map[string]string, error)
	SetEarnings(ctx context.Context, req *dto.SetEarningsRequest) (*dto.EarningsResponse, error)
	DeleteEarnings(ctx context.Context, ticker string) error
}

// NewEarningsService creates a new EarningsService.
func NewEarningsService(earningsRepo repository.EarningsRepository, log *logger.Logger) EarningsService {
	return &earningsService{
		earningsRepo: earningsRepo,
		logger:       log,
	}
}

type earningsService struct {
	earningsRepo repository.EarningsRepository
	logger       *logger.Logger
}

func (s *earningsService) GetEarnings(ctx context.Context) (map[string]string, error) {
	return s.earningsRepo.FindAll(ctx)
}

func (s *earningsService) SetEarnings(ctx context.Context, req *dto.SetEarningsRequest) (*dto.EarningsResponse, error) {
	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))
	if ticker == "" || req.Date == "" {
		return nil, validationErrorf("Invalid ticker or date")
	}
	if err := s.earningsRepo.Set(ctx, ticker, req.Date); err != nil {
		s.logger.Error("Failed to save earnings date", logger.ErrorField(err), logger.StringField("ticker", ticker))
		return nil, err
	}
	return &dto.EarningsResponse{Ticker: ticker, Date: req.Date}, nil
}

func (s *earningsService) DeleteEarnings(ctx context.Context, ticker string) error {
	return s.earningsRepo.Delete(ctx, strings.ToUpper(strings.TrimSpace(ticker)))
}
