package service

import (
	"context"
	"time"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/dto"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/repository"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/entity"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

// AlertService manages price alerts.
type AlertService interface {
	GetAlerts(ctx context.Context) ([]entity.Alert, error)
	AddAlert(ctx context.Context, req *dto.CreateAlertRequest) (*entity.Alert, error)
	DeleteAlert(ctx context.Context, index int) (*entity.Alert, error)
}

// NewAlertService creates a new AlertService.
func NewAlertService(alertRepo repository.AlertRepository, log *logger.Logger) AlertService {
	return &alertService{
		alertRepo: alertRepo,
		logger:    log,
	}
}

type alertService struct {
	alertRepo repository.AlertRepository
	logger    *logger.Logger
}

func (s *alertService) GetAlerts(ctx context.Context) ([]entity.Alert, error) {
	return s.alertRepo.FindAll(ctx)
}

func (s *alertService) AddAlert(ctx context.Context, req *dto.CreateAlertRequest) (*entity.Alert, error) {
	ticker, ok := normalizeTicker(req.Ticker)
	if !ok {
		return nil, validationErrorf("Invalid ticker (max 10 alphanumeric chars)")
	}

	condition := entity.AlertCondition(req.Condition)
	if condition == "" {
		condition = entity.AlertConditionAbove
	}
	if condition != entity.AlertConditionAbove && condition != entity.AlertConditionBelow {
		return nil, validationErrorf("Invalid condition (must be above or below)")
	}

	if req.Price <= 0 || req.Price > 1000000 {
		return nil, validationErrorf("Invalid price (must be positive, max $1M)")
	}

	alert := entity.Alert{
		Ticker:    ticker,
		Condition: condition,
		Price:     req.Price,
		Created:   time.Now().UTC(),
		Triggered: false,
	}
	if err := s.alertRepo.Add(ctx, alert); err != nil {
		s.logger.Error("Failed to save alert", logger.ErrorField(err), logger.StringField("ticker", ticker))
		return nil, err
	}
	s.logger.Info("Alert added", logger.StringField("ticker", ticker), logger.Field("price", alert.Price))
	return &alert, nil
}

func (s *alertService) DeleteAlert(ctx context.Context, index int) (*entity.Alert, error) {
	deleted, err := s.alertRepo.DeleteByIndex(ctx, index)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Alert deleted", logger.IntField("index", index), logger.StringField("ticker", deleted.Ticker))
	return &deleted, nil
}
