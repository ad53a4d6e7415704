package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/config"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

// SheetsRepository fetches the raw screening sheet as a 2-D array of strings.
type SheetsRepository interface {
	Fetch(ctx context.Context) ([][]string, error)
}

type sheetsRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewSheetsRepository creates a new SheetsRepository backed by the sheet
// values API.
func NewSheetsRepository(cfg *config.Config, log *logger.Logger) SheetsRepository {
	perMinute := cfg.Sheets.MaxRequestPerMinute
	if perMinute <= 0 {
		perMinute = 12
	}
	secondsPerRequest := time.Minute / time.Duration(perMinute)
	return &sheetsRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

type sheetValuesResponse struct {
	Range          string     `json:"range"`
	MajorDimension string     `json:"majorDimension"`
	Values         [][]string `json:"values"`
}

// Fetch performs a single values-API request. It is never retried here; the
// caller treats any failure as "source unavailable" and keeps its prior data.
func (r *sheetsRepository) Fetch(ctx context.Context) ([][]string, error) {
	if r.cfg.Sheets.SheetID == "" {
		return nil, fmt.Errorf("sheet id is not configured")
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/%s/values/%s?key=%s",
		r.cfg.Sheets.BaseURL,
		url.PathEscape(r.cfg.Sheets.SheetID),
		url.PathEscape(r.cfg.Sheets.Range),
		url.QueryEscape(r.cfg.Sheets.APIKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read sheet response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet values API returned status %d", resp.StatusCode)
	}

	var values sheetValuesResponse
	if err := json.Unmarshal(body, &values); err != nil {
		return nil, fmt.Errorf("decode sheet response: %w", err)
	}
	return values.Values, nil
}
