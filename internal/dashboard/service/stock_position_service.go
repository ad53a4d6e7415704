package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/dto"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/repository"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/entity"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/utils"
)

const defaultAccount = "default"

// StockPositionService manages stock positions and their summary rollup.
type StockPositionService interface {
	GetPositions(ctx context.Context) (*dto.PositionsResponse, error)
	AddPosition(ctx context.Context, req *dto.CreatePositionRequest) (*entity.StockPosition, error)
	UpdatePosition(ctx context.Context, id int, req *dto.UpdatePositionRequest) (*entity.StockPosition, error)
	DeletePosition(ctx context.Context, id int) error
}

// NewStockPositionService creates a new StockPositionService.
func NewStockPositionService(positionRepo repository.StockPositionRepository, log *logger.Logger) StockPositionService {
	return &stockPositionService{
		positionRepo: positionRepo,
		logger:       log,
	}
}

type stockPositionService struct {
	positionRepo repository.StockPositionRepository
	logger       *logger.Logger
}

func (s *stockPositionService) GetPositions(ctx context.Context) (*dto.PositionsResponse, error) {
	positions, err := s.positionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.PositionsResponse{
		Positions: positions,
		Summary:   SummarizePositions(positions),
	}, nil
}

func (s *stockPositionService) AddPosition(ctx context.Context, req *dto.CreatePositionRequest) (*entity.StockPosition, error) {
	ticker, ok := normalizeTicker(req.Ticker)
	if !ok {
		return nil, validationErrorf("Invalid ticker (max 10 alphanumeric chars)")
	}
	if req.Shares <= 0 || req.Shares > 1000000 {
		return nil, validationErrorf("Invalid shares (must be 1-1,000,000)")
	}
	if req.EntryPrice <= 0 || req.EntryPrice > 100000 {
		return nil, validationErrorf("Invalid entry price (must be positive, max $100k)")
	}

	tradeType := entity.TradeType(req.TradeType)
	if tradeType == "" {
		tradeType = entity.TradeTypeLong
	}
	if tradeType != entity.TradeTypeLong && tradeType != entity.TradeTypeShort {
		return nil, validationErrorf("Invalid trade_type (must be long or short)")
	}

	account := req.Account
	if account == "" {
		account = defaultAccount
	}
	entryDate := req.EntryDate
	if entryDate == "" {
		entryDate = utils.DateOnly(time.Now())
	}

	position := entity.StockPosition{
		Ticker:      ticker,
		Account:     account,
		TradeType:   tradeType,
		EntryDate:   entryDate,
		EntryPrice:  req.EntryPrice,
		Shares:      req.Shares,
		CostBasis:   round2(float64(req.Shares) * req.EntryPrice),
		StopPrice:   req.StopPrice,
		TargetPrice: req.TargetPrice,
		SetupType:   req.SetupType,
		Status:      entity.PositionStatusOpen,
		Notes:       req.Notes,
		CreatedAt:   time.Now(),
	}

	created, err := s.positionRepo.Create(ctx, position)
	if err != nil {
		s.logger.Error("Failed to save position", logger.ErrorField(err), logger.StringField("ticker", ticker))
		return nil, err
	}
	return &created, nil
}

// UpdatePosition applies stop/notes changes; a close price transitions the
// position to closed and fixes its realized P&L, direction-adjusted by trade
// type.
func (s *stockPositionService) UpdatePosition(ctx context.Context, id int, req *dto.UpdatePositionRequest) (*entity.StockPosition, error) {
	updated, err := s.positionRepo.Update(ctx, id, func(p *entity.StockPosition) {
		if req.StopPrice != nil {
			p.StopPrice = *req.StopPrice
		}
		if req.ClosePrice != nil {
			p.Status = entity.PositionStatusClosed
			p.ClosePrice = req.ClosePrice
			closeDate := utils.DateOnly(time.Now())
			if req.CloseDate != nil && *req.CloseDate != "" {
				closeDate = *req.CloseDate
			}
			p.CloseDate = &closeDate

			perShare := *req.ClosePrice - p.EntryPrice
			if p.TradeType == entity.TradeTypeShort {
				perShare = p.EntryPrice - *req.ClosePrice
			}
			p.PnL = utils.ToPointer(round2(perShare * float64(p.Shares)))
		}
		if req.Notes != nil {
			p.Notes = *req.Notes
		}
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *stockPositionService) DeletePosition(ctx context.Context, id int) error {
	return s.positionRepo.Delete(ctx, id)
}

// SummarizePositions computes the overall rollup plus the per-account
// partition. Zero positions yields an all-zero summary.
func SummarizePositions(positions []entity.StockPosition) *dto.PositionsSummary {
	summary := &dto.PositionsSummary{
		PositionsBucket: summarizePositionSubset(positions),
		Accounts:        []string{},
		ByAccount:       map[string]dto.PositionsBucket{},
	}

	if len(positions) == 0 {
		return summary
	}

	byAccount := map[string][]entity.StockPosition{}
	for _, p := range positions {
		account := p.Account
		if account == "" {
			account = defaultAccount
		}
		byAccount[account] = append(byAccount[account], p)
	}

	accounts := make([]string, 0, len(byAccount))
	for account := range byAccount {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	summary.Accounts = accounts
	for _, account := range accounts {
		summary.ByAccount[account] = summarizePositionSubset(byAccount[account])
	}
	return summary
}

func summarizePositionSubset(subset []entity.StockPosition) dto.PositionsBucket {
	if len(subset) == 0 {
		return dto.PositionsBucket{}
	}

	var bucket dto.PositionsBucket
	var rSum float64
	var rCount int

	for _, p := range subset {
		if p.Status == entity.PositionStatusOpen {
			bucket.OpenCount++
			bucket.TotalCapital += p.CostBasis
			continue
		}
		if p.Status != entity.PositionStatusClosed {
			continue
		}
		bucket.ClosedCount++

		pnl := 0.0
		if p.PnL != nil {
			pnl = *p.PnL
		}
		bucket.TotalPnL += pnl
		if pnl > 0 {
			bucket.WinCount++
		} else {
			bucket.LossCount++
		}

		if r, ok := rMultiple(p); ok {
			rSum += r
			rCount++
		}
	}

	if bucket.ClosedCount > 0 {
		bucket.WinRate = float64(bucket.WinCount) / float64(bucket.ClosedCount) * 100
	}
	if rCount > 0 {
		bucket.AvgRMultiple = rSum / float64(rCount)
	}
	return bucket
}

// rMultiple is the realized per-share P&L divided by the planned per-share
// risk. A position without a stop has zero planned risk and is excluded from
// the average.
func rMultiple(p entity.StockPosition) (float64, bool) {
	stop := p.StopPrice
	if stop == 0 {
		stop = p.EntryPrice
	}
	risk := math.Abs(p.EntryPrice - stop)
	if risk == 0 || p.ClosePrice == nil {
		return 0, false
	}
	perShare := *p.ClosePrice - p.EntryPrice
	if p.TradeType == entity.TradeTypeShort {
		perShare = p.EntryPrice - *p.ClosePrice
	}
	return perShare / risk, true
}
