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

const defaultCallTicker = "SPY"

// CoveredCallService manages covered-call trades and their summary rollup.
type CoveredCallService interface {
	GetTrades(ctx context.Context) (*dto.CallsResponse, error)
	AddTrade(ctx context.Context, req *dto.CreateCallRequest) (*entity.CoveredCallTrade, error)
	CloseTrade(ctx context.Context, id int, req *dto.CloseCallRequest) (*entity.CoveredCallTrade, error)
	DeleteTrade(ctx context.Context, id int) error
}

// NewCoveredCallService creates a new CoveredCallService. capitalBase is the
// denominator of the annualized-yield rollup.
func NewCoveredCallService(callRepo repository.CoveredCallRepository, capitalBase float64, log *logger.Logger) CoveredCallService {
	if capitalBase <= 0 {
		capitalBase = 100000
	}
	return &coveredCallService{
		callRepo:    callRepo,
		capitalBase: capitalBase,
		logger:      log,
	}
}

type coveredCallService struct {
	callRepo    repository.CoveredCallRepository
	capitalBase float64
	logger      *logger.Logger
}

func (s *coveredCallService) GetTrades(ctx context.Context) (*dto.CallsResponse, error) {
	trades, err := s.callRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CallsResponse{
		Trades:  trades,
		Summary: SummarizeCalls(trades, s.capitalBase),
	}, nil
}

func (s *coveredCallService) AddTrade(ctx context.Context, req *dto.CreateCallRequest) (*entity.CoveredCallTrade, error) {
	rawTicker := req.Ticker
	if rawTicker == "" {
		rawTicker = defaultCallTicker
	}
	ticker, ok := normalizeTicker(rawTicker)
	if !ok {
		return nil, validationErrorf("Invalid ticker (max 10 alphanumeric chars)")
	}

	contracts := req.Contracts
	if contracts == 0 {
		contracts = 1
	}
	if contracts <= 0 || contracts > 10000 {
		return nil, validationErrorf("Invalid contracts (must be 1-10,000)")
	}
	if req.PremiumPerContract < 0 || req.PremiumPerContract > 10000 {
		return nil, validationErrorf("Invalid premium (must be 0-$10,000)")
	}
	if req.Strike <= 0 || req.Strike > 100000 {
		return nil, validationErrorf("Invalid strike (must be positive, max $100k)")
	}

	sellDate := req.SellDate
	if sellDate == "" {
		sellDate = utils.DateOnly(time.Now())
	}
	delta := req.Delta
	if delta == 0 {
		delta = 0.10
	}

	trade := entity.CoveredCallTrade{
		Ticker:             ticker,
		SellDate:           sellDate,
		Expiry:             req.Expiry,
		Strike:             req.Strike,
		Contracts:          contracts,
		PremiumPerContract: req.PremiumPerContract,
		PremiumTotal:       round2(req.PremiumPerContract * float64(contracts) * 100),
		Delta:              delta,
		StockPriceAtSell:   req.StockPrice,
		Status:             entity.CallStatusOpen,
		Notes:              req.Notes,
		CreatedAt:          time.Now(),
	}

	created, err := s.callRepo.Create(ctx, trade)
	if err != nil {
		s.logger.Error("Failed to save covered call", logger.ErrorField(err), logger.StringField("ticker", ticker))
		return nil, err
	}
	return &created, nil
}

// CloseTrade marks a trade closed and computes its P&L by close reason:
// expiration keeps the whole premium, assignment adds the capped stock
// appreciation, and any other close subtracts the buyback cost.
func (s *coveredCallService) CloseTrade(ctx context.Context, id int, req *dto.CloseCallRequest) (*entity.CoveredCallTrade, error) {
	status := entity.CallStatus(req.Status)
	if status == "" {
		status = entity.CallStatusExpired
	}
	switch status {
	case entity.CallStatusExpired, entity.CallStatusCalledAway, entity.CallStatusClosedOther:
	default:
		return nil, validationErrorf("Invalid status (must be expired, called_away or closed_other)")
	}

	closeDate := req.CloseDate
	if closeDate == "" {
		closeDate = utils.DateOnly(time.Now())
	}

	closed, err := s.callRepo.Update(ctx, id, func(t *entity.CoveredCallTrade) {
		t.Status = status
		t.CloseDate = &closeDate
		switch status {
		case entity.CallStatusExpired:
			t.PnL = utils.ToPointer(t.PremiumTotal)
		case entity.CallStatusCalledAway:
			appreciation := (t.Strike - t.StockPriceAtSell) * float64(t.Contracts) * 100
			t.PnL = utils.ToPointer(round2(t.PremiumTotal + appreciation))
		default:
			buyback := req.BuybackPrice * float64(t.Contracts) * 100
			t.PnL = utils.ToPointer(round2(t.PremiumTotal - buyback))
			t.ClosePrice = utils.ToPointer(req.BuybackPrice)
		}
		if req.Notes != nil {
			t.Notes = *req.Notes
		}
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Covered call closed",
		logger.IntField("id", id), logger.StringField("status", string(status)))
	return &closed, nil
}

func (s *coveredCallService) DeleteTrade(ctx context.Context, id int) error {
	return s.callRepo.Delete(ctx, id)
}

// SummarizeCalls computes the overall rollup plus the per-ticker partition.
// Zero trades yields an all-zero summary, never a division error.
func SummarizeCalls(trades []entity.CoveredCallTrade, capitalBase float64) *dto.CallsSummary {
	summary := &dto.CallsSummary{
		CallsBucket: summarizeCallSubset(trades, capitalBase),
		Tickers:     []string{},
		ByTicker:    map[string]dto.CallsBucket{},
	}

	if len(trades) == 0 {
		return summary
	}

	byTicker := map[string][]entity.CoveredCallTrade{}
	for _, t := range trades {
		ticker := t.Ticker
		if ticker == "" {
			ticker = defaultCallTicker
		}
		byTicker[ticker] = append(byTicker[ticker], t)
	}

	tickers := make([]string, 0, len(byTicker))
	for ticker := range byTicker {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)

	summary.Tickers = tickers
	for _, ticker := range tickers {
		summary.ByTicker[ticker] = summarizeCallSubset(byTicker[ticker], capitalBase)
	}
	return summary
}

func summarizeCallSubset(subset []entity.CoveredCallTrade, capitalBase float64) dto.CallsBucket {
	if len(subset) == 0 {
		return dto.CallsBucket{}
	}

	var bucket dto.CallsBucket
	bucket.TotalTrades = len(subset)

	months := map[string]struct{}{}
	for _, t := range subset {
		bucket.TotalPremium += t.PremiumTotal
		switch t.Status {
		case entity.CallStatusOpen:
			bucket.Open++
		case entity.CallStatusExpired:
			bucket.Expired++
		case entity.CallStatusCalledAway:
			bucket.CalledAway++
		}
		if t.Status != entity.CallStatusOpen {
			if t.PnL != nil {
				bucket.TotalPnL += *t.PnL
			} else {
				bucket.TotalPnL += t.PremiumTotal
			}
		}
		if len(t.SellDate) >= 7 {
			months[t.SellDate[:7]] = struct{}{}
		}
	}

	monthCount := len(months)
	if monthCount == 0 {
		monthCount = 1
	}
	if capitalBase < 1 {
		capitalBase = 1
	}
	bucket.WeeklyAvg = bucket.TotalPremium / float64(len(subset))
	bucket.AnnualizedYield = bucket.TotalPremium / float64(monthCount) * 12 / capitalBase * 100
	return bucket
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
