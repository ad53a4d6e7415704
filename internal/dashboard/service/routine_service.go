package service

import (
	"context"
	"time"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/dto"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/repository"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/entity"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

const (
	routinePhasePremarket = "premarket"
	routinePhasePostclose = "postclose"
)

// RoutineService manages the daily trading routine journal.
type RoutineService interface {
	GetRoutine(ctx context.Context, date string) (entity.RoutineEntry, error)
	SavePhase(ctx context.Context, date string, req *dto.SaveRoutineRequest) (entity.RoutineEntry, error)
	GetRoutineDates(ctx context.Context) (map[string]dto.RoutineDay, error)
}

// NewRoutineService creates a new RoutineService.
func NewRoutineService(routineRepo repository.RoutineRepository, log *logger.Logger) RoutineService {
	return &routineService{
		routineRepo: routineRepo,
		logger:      log,
	}
}

type routineService struct {
	routineRepo repository.RoutineRepository
	logger      *logger.Logger
}

func validRoutineDate(date string) bool {
	_, err := time.Parse(time.DateOnly, date)
	return err == nil
}

func (s *routineService) GetRoutine(ctx context.Context, date string) (entity.RoutineEntry, error) {
	if !validRoutineDate(date) {
		return entity.RoutineEntry{}, validationErrorf("Invalid date (must be YYYY-MM-DD)")
	}
	return s.routineRepo.Find(ctx, date)
}

// SavePhase stores one phase of a day's routine. The phase defaults to
// premarket; anything other than premarket/postclose is rejected without
// touching the document.
func (s *routineService) SavePhase(ctx context.Context, date string, req *dto.SaveRoutineRequest) (entity.RoutineEntry, error) {
	if !validRoutineDate(date) {
		return entity.RoutineEntry{}, validationErrorf("Invalid date (must be YYYY-MM-DD)")
	}

	phase := req.Type
	if phase == "" {
		phase = routinePhasePremarket
	}
	if phase != routinePhasePremarket && phase != routinePhasePostclose {
		return entity.RoutineEntry{}, validationErrorf("Invalid routine type (must be premarket or postclose)")
	}

	entry, err := s.routineRepo.Find(ctx, date)
	if err != nil {
		return entity.RoutineEntry{}, err
	}

	fields := req.Data
	if fields == nil {
		fields = map[string]string{}
	}
	switch phase {
	case routinePhasePremarket:
		entry.Premarket = fields
	case routinePhasePostclose:
		entry.Postclose = fields
	}
	entry.Date = date
	entry.UpdatedAt = time.Now().Format(time.RFC3339)

	if err := s.routineRepo.Save(ctx, entry); err != nil {
		s.logger.Error("Failed to save routine entry", logger.ErrorField(err), logger.StringField("date", date))
		return entity.RoutineEntry{}, err
	}
	return entry, nil
}

// GetRoutineDates returns, for every saved day, which phases are filled in.
// Backs the calendar view.
func (s *routineService) GetRoutineDates(ctx context.Context) (map[string]dto.RoutineDay, error) {
	entries, err := s.routineRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dates := make(map[string]dto.RoutineDay, len(entries))
	for _, entry := range entries {
		dates[entry.Date] = dto.RoutineDay{
			HasPremarket: len(entry.Premarket) > 0,
			HasPostclose: len(entry.Postclose) > 0,
		}
	}
	return dates, nil
}
