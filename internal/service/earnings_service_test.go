package service

import (
	"context"
	"testing"

	"wsb-signal-tracker/internal/dto"
	"wsb-signal-tracker/internal/entity"
	"wsb-signal-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMarketDataRepo struct {
	samples map[string][]dto.EarningsSample
}

func (f *fakeMarketDataRepo) GetEarningsHistory(ctx context.Context, symbol string) ([]dto.EarningsSample, error) {
	samples, ok := f.samples[symbol]
	if !ok {
		return nil, repository.ErrNoMarketData
	}
	return samples, nil
}

type fakeEarningsCacheRepo struct {
	entries map[string]*entity.EarningsCacheEntry
}

func (f *fakeEarningsCacheRepo) Get(ctx context.Context, ticker string) (*entity.EarningsCacheEntry, error) {
	return f.entries[ticker], nil
}

func (f *fakeEarningsCacheRepo) Set(ctx context.Context, entry *entity.EarningsCacheEntry) error {
	if f.entries == nil {
		f.entries = make(map[string]*entity.EarningsCacheEntry)
	}
	f.entries[entry.Ticker] = entry
	return nil
}

func TestClassifyMove(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{6.0, ClassMoon},
		{5.01, ClassMoon},
		{5.0, ClassPump},
		{2.5, ClassPump},
		{2.0, ClassFlat},
		{0.0, ClassFlat},
		{-2.0, ClassFlat},
		{-2.01, ClassDip},
		{-5.0, ClassDip},
		{-5.01, ClassTank},
		{-12.0, ClassTank},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyMove(tc.pct), "pct=%v", tc.pct)
	}
}

func TestGuhScore(t *testing.T) {
	assert.Equal(t, 0.0, GuhScore(0, 0))
	assert.Equal(t, 4.0, GuhScore(2, 2))
	// Capped at 10 no matter how wild the stock is.
	assert.Equal(t, 10.0, GuhScore(20, 15))
	// Direction of the average move does not matter.
	assert.Equal(t, GuhScore(3, 4), GuhScore(3, -4))
}

func TestCalculateStreak(t *testing.T) {
	events := []dto.EarningsEvent{
		{MovePct: 6.0}, {MovePct: 3.0}, {MovePct: 8.0}, {MovePct: -4.0},
	}
	streak, direction := calculateStreak(events)
	assert.Equal(t, 3, streak)
	assert.Equal(t, "moon", direction)

	streak, direction = calculateStreak([]dto.EarningsEvent{{MovePct: -7.0}, {MovePct: 1.0}})
	assert.Equal(t, 1, streak)
	assert.Equal(t, "tank", direction)

	streak, direction = calculateStreak(nil)
	assert.Equal(t, 0, streak)
	assert.Equal(t, "flat", direction)
}

func TestStdev(t *testing.T) {
	assert.Equal(t, 0.0, stdev([]float64{4.2}))
	assert.InDelta(t, 2.138, stdev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 0.001)
}

func TestBuildAnalysis(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	samples := []dto.EarningsSample{
		{Date: "2025-01-15", PriceBefore: 100, PriceAfter: 110, EPSEstimate: f(1.0), EPSActual: f(1.2)},
		{Date: "2025-04-15", PriceBefore: 110, PriceAfter: 104.5},
		{Date: "2025-07-15", PriceBefore: 100, PriceAfter: 105},
	}

	analysis := buildAnalysis("NVDA", samples)

	require.Empty(t, analysis.Error)
	assert.Equal(t, "NVDA", analysis.Symbol)
	assert.Equal(t, 3, analysis.Events)

	// Sorted most recent first.
	assert.Equal(t, "2025-07-15", analysis.History[0].Date)
	assert.Equal(t, "2025-01-15", analysis.History[2].Date)

	// +10% MOON, -5% DIP, +5% PUMP.
	assert.Equal(t, ClassMoon, analysis.History[2].Classification)
	assert.Equal(t, ClassDip, analysis.History[1].Classification)
	assert.Equal(t, ClassPump, analysis.History[0].Classification)

	assert.InDelta(t, 66.7, analysis.MoonPct, 0.01)
	assert.InDelta(t, 33.3, analysis.TankPct, 0.01)
	assert.Equal(t, 0.0, analysis.FlatPct)
	assert.Equal(t, 10.0, analysis.MaxMoon)
	assert.Equal(t, -5.0, analysis.MaxTank)

	// EPS surprise: (1.2 - 1.0) / 1.0 * 100 = 20%.
	require.NotNil(t, analysis.History[2].SurprisePct)
	assert.Equal(t, 20.0, *analysis.History[2].SurprisePct)
	assert.Nil(t, analysis.History[0].SurprisePct)

	assert.NotEmpty(t, analysis.Commentary)
}

func TestBuildAnalysis_ClassificationBoundaries(t *testing.T) {
	// +5.0% is PUMP, not MOON; -2.0% is FLAT, not DIP.
	samples := []dto.EarningsSample{
		{Date: "2025-01-01", PriceBefore: 100, PriceAfter: 105},
		{Date: "2025-04-01", PriceBefore: 100, PriceAfter: 98},
	}

	analysis := buildAnalysis("TSLA", samples)

	require.Len(t, analysis.History, 2)
	assert.Equal(t, ClassFlat, analysis.History[0].Classification)
	assert.Equal(t, ClassPump, analysis.History[1].Classification)
}

func TestGetAnalysis_Roast(t *testing.T) {
	svc := NewEarningsService(testLogger(t), &fakeMarketDataRepo{}, nil)

	analysis, err := svc.GetAnalysis(context.Background(), "spy")
	require.NoError(t, err)

	assert.Equal(t, "SPY", analysis.Symbol)
	assert.NotEmpty(t, analysis.Error)
	assert.Zero(t, analysis.Events)
}

func TestGetAnalysis_NoData(t *testing.T) {
	svc := NewEarningsService(testLogger(t), &fakeMarketDataRepo{}, nil)

	analysis, err := svc.GetAnalysis(context.Background(), "GME")
	require.NoError(t, err)

	assert.Contains(t, analysis.Error, "No earnings data available")
}

func TestGetAnalysis_CacheRoundTrip(t *testing.T) {
	market := &fakeMarketDataRepo{samples: map[string][]dto.EarningsSample{
		"NVDA": {
			{Date: "2025-01-15", PriceBefore: 100, PriceAfter: 110},
			{Date: "2025-04-15", PriceBefore: 110, PriceAfter: 120},
		},
	}}
	cache := &fakeEarningsCacheRepo{}
	svc := NewEarningsService(testLogger(t), market, cache)

	first, err := svc.GetAnalysis(context.Background(), "NVDA")
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := svc.GetAnalysis(context.Background(), "NVDA")
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.MoonPct, second.MoonPct)
	assert.Equal(t, first.GuhScore, second.GuhScore)
}
