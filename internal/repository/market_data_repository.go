package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"wsb-signal-tracker/internal/config"
	"wsb-signal-tracker/internal/dto"
	"wsb-signal-tracker/pkg/logger"

	"golang.org/x/time/rate"
)

// ErrNoMarketData signals that the provider has no earnings history for a
// ticker. Callers treat it the same as an empty result.
var ErrNoMarketData = errors.New("no market data available")

// MarketDataRepository is the earnings market-data collaborator: given a
// ticker it yields the ordered earnings history with prices around each
// announcement.
type MarketDataRepository interface {
	GetEarningsHistory(ctx context.Context, symbol string) ([]dto.EarningsSample, error)
}

type marketDataRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewMarketDataRepository creates a rate-limited HTTP market-data client.
func NewMarketDataRepository(cfg *config.Config, log *logger.Logger) MarketDataRepository {
	perMinute := cfg.MarketData.MaxRequestPerMinute
	if perMinute <= 0 {
		perMinute = 30
	}
	secondsPerRequest := time.Minute / time.Duration(perMinute)
	return &marketDataRepository{
		cfg:            cfg,
		log:            log,
		httpClient:     &http.Client{Timeout: 15 * time.Second},
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

// GetEarningsHistory fetches the earnings samples for a symbol. A 404 from
// the provider maps to ErrNoMarketData.
func (r *marketDataRepository) GetEarningsHistory(ctx context.Context, symbol string) ([]dto.EarningsSample, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1/earnings/%s", r.cfg.MarketData.BaseURL, symbol)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", r.cfg.MarketData.UserAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNoMarketData
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from market data provider", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Symbol  string               `json:"symbol"`
		Samples []dto.EarningsSample `json:"samples"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode earnings payload: %w", err)
	}

	return payload.Samples, nil
}
