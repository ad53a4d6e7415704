package service

import (
	"context"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/dto"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/repository"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/entity"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

// SettingsService manages the scanner settings.
type SettingsService interface {
	GetSettings(ctx context.Context) (entity.Settings, error)
	UpdateSettings(ctx context.Context, req *dto.UpdateSettingsRequest) (entity.Settings, error)
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo repository.SettingsRepository, log *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		logger:       log,
	}
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
	logger       *logger.Logger
}

func (s *settingsService) GetSettings(ctx context.Context) (entity.Settings, error) {
	return s.settingsRepo.Get(ctx)
}

// UpdateSettings applies a partial update on top of the current settings.
func (s *settingsService) UpdateSettings(ctx context.Context, req *dto.UpdateSettingsRequest) (entity.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return entity.Settings{}, err
	}

	if req.AccountEquity != nil {
		if *req.AccountEquity <= 0 {
			return entity.Settings{}, validationErrorf("Invalid account equity (must be positive)")
		}
		settings.AccountEquity = *req.AccountEquity
	}
	if req.RiskPct != nil {
		if *req.RiskPct <= 0 || *req.RiskPct > 1 {
			return entity.Settings{}, validationErrorf("Invalid risk percentage (must be in (0, 1])")
		}
		settings.RiskPct = *req.RiskPct
	}
	if req.MaxPositions != nil {
		settings.MaxPositions = *req.MaxPositions
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		s.logger.Error("Failed to save settings", logger.ErrorField(err))
		return entity.Settings{}, err
	}
	return settings, nil
}
