package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"wsb-signal-tracker/internal/dto"
	"wsb-signal-tracker/internal/entity"
	"wsb-signal-tracker/internal/repository"
	"wsb-signal-tracker/pkg/logger"
)

// Tickers that don't have earnings. Asking gets you roasted instead of data.
var earningsRoasts = map[string]string{
	// Index ETFs
	"SPY": "SPY doesn't have earnings you absolute walnut. It's 500 companies in a trenchcoat 🧥",
	"QQQ": "QQQ is an ETF, not a company. It doesn't report earnings. Sir this is a Wendy's 🍔",
	"IWM": "IWM is 2000 small caps duct-taped together. No earnings call, just vibes 🦧",
	"DIA": "DIA tracks the Dow. 30 boomers in a basket. No earnings to see here 👴",
	"VOO": "VOO is literally just SPY wearing a Vanguard sweater vest. No earnings 🧶",
	"VTI": "VTI is the entire US stock market. ALL of it. You want earnings for... everything? 🌎",
	// Leveraged / inverse
	"TQQQ": "TQQQ is a 3x leveraged ETF. It doesn't have earnings, it has a gambling addiction 🎰",
	"SQQQ": "SQQQ is a bear ETF. No earnings. It just sits there and decays like your portfolio 💀",
	"UVXY": "UVXY tracks fear itself. Fear doesn't file 10-Qs 👻",
	"SPXL": "SPXL is leveraged SPY. No earnings. Just amplified regret 📉📉📉",
	"SOXL": "SOXL is a leveraged semiconductor ETF. Semiconductors have earnings. SOXL does not. Stay in school 📚",
	"SOXS": "SOXS is an inverse semiconductor ETF. It exists purely to destroy wealth. No earnings 🔥",
	// Commodities
	"GLD": "GLD is literally gold bars in a vault. Gold doesn't do earnings calls 🥇",
	"SLV": "SLV is silver. A shiny rock. Rocks don't have quarterly reports 🪨",
	"USO": "USO tracks oil. Oil comes from the ground, not from a CEO on CNBC 🛢️",
	"AGQ": "AGQ is 2x leveraged silver. Double the rock, still no earnings 🪨🪨",
	// Crypto-adjacent
	"BTC":  "BTC is Bitcoin. Satoshi doesn't do earnings calls. Probably dead anyway 💀",
	"BITO": "BITO is a Bitcoin futures ETF. Crypto doesn't have earnings you degenerate 🤡",
	// VIX products
	"VIX": "VIX is a fear index. You can't even buy it directly. What are you doing here 🤦",
	"VXX": "VXX tracks VIX futures. No earnings. Just existential dread in ETN form 😰",
	// Bonds
	"TLT": "TLT is a bond ETF. Bonds don't have earnings. They barely have a pulse 💤",
	"HYG": "HYG is junk bonds in ETF form. No earnings. Just prayers 🙏",
}

// Move classifications.
const (
	ClassMoon = "MOON"
	ClassPump = "PUMP"
	ClassFlat = "FLAT"
	ClassDip  = "DIP"
	ClassTank = "TANK"
)

// EarningsService computes historical post-earnings analytics for a ticker.
type EarningsService interface {
	GetAnalysis(ctx context.Context, symbol string) (*dto.EarningsAnalysis, error)
}

type earningsService struct {
	log            *logger.Logger
	marketDataRepo repository.MarketDataRepository
	cacheRepo      repository.EarningsCacheRepository
}

// NewEarningsService creates a new EarningsService. The cache repository may
// be nil, which disables result caching.
func NewEarningsService(
	log *logger.Logger,
	marketDataRepo repository.MarketDataRepository,
	cacheRepo repository.EarningsCacheRepository,
) EarningsService {
	return &earningsService{
		log:            log,
		marketDataRepo: marketDataRepo,
		cacheRepo:      cacheRepo,
	}
}

// GetAnalysis returns the moon/tank analysis for a symbol, serving a cached
// result when one is still fresh. Unanalyzable tickers (ETFs, missing data)
// come back with the Error field set rather than a transport error.
func (s *earningsService) GetAnalysis(ctx context.Context, symbol string) (*dto.EarningsAnalysis, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	if roast, ok := earningsRoasts[symbol]; ok {
		return &dto.EarningsAnalysis{Symbol: symbol, Error: roast}, nil
	}

	if cached := s.fromCache(ctx, symbol); cached != nil {
		return cached, nil
	}

	samples, err := s.marketDataRepo.GetEarningsHistory(ctx, symbol)
	if err != nil {
		if errors.Is(err, repository.ErrNoMarketData) {
			return &dto.EarningsAnalysis{
				Symbol: symbol,
				Error:  fmt.Sprintf("No earnings data available for %s", symbol),
			}, nil
		}
		return nil, fmt.Errorf("failed to fetch earnings history for %s: %w", symbol, err)
	}

	analysis := buildAnalysis(symbol, samples)
	if analysis.Error == "" {
		s.toCache(ctx, symbol, analysis)
	}
	return analysis, nil
}

func (s *earningsService) fromCache(ctx context.Context, symbol string) *dto.EarningsAnalysis {
	if s.cacheRepo == nil {
		return nil
	}
	entry, err := s.cacheRepo.Get(ctx, symbol)
	if err != nil {
		s.log.Warn("Earnings cache lookup failed",
			logger.StringField("symbol", symbol), logger.ErrorField(err))
		return nil
	}
	if entry == nil {
		return nil
	}
	var analysis dto.EarningsAnalysis
	if err := json.Unmarshal(entry.Data, &analysis); err != nil {
		return nil
	}
	analysis.Cached = true
	return &analysis
}

func (s *earningsService) toCache(ctx context.Context, symbol string, analysis *dto.EarningsAnalysis) {
	if s.cacheRepo == nil {
		return
	}
	data, err := json.Marshal(analysis)
	if err != nil {
		return
	}
	entry := &entity.EarningsCacheEntry{
		Ticker:    symbol,
		Data:      data,
		FetchedAt: time.Now().UTC().Unix(),
	}
	if err := s.cacheRepo.Set(ctx, entry); err != nil {
		s.log.Warn("Earnings cache write failed",
			logger.StringField("symbol", symbol), logger.ErrorField(err))
	}
}

// buildAnalysis turns raw earnings samples into the full classified analysis.
func buildAnalysis(symbol string, samples []dto.EarningsSample) *dto.EarningsAnalysis {
	events := make([]dto.EarningsEvent, 0, len(samples))
	for _, sample := range samples {
		if sample.PriceBefore <= 0 {
			continue
		}
		movePct := round2((sample.PriceAfter - sample.PriceBefore) / sample.PriceBefore * 100)
		events = append(events, dto.EarningsEvent{
			Date:           sample.Date,
			EPSEstimate:    sample.EPSEstimate,
			EPSActual:      sample.EPSActual,
			SurprisePct:    surprisePct(sample.EPSEstimate, sample.EPSActual),
			PriceBefore:    round2(sample.PriceBefore),
			PriceAfter:     round2(sample.PriceAfter),
			MovePct:        movePct,
			Classification: ClassifyMove(movePct),
		})
	}

	if len(events) == 0 {
		return &dto.EarningsAnalysis{
			Symbol: symbol,
			Error:  fmt.Sprintf("Could not calculate earnings moves for %s — insufficient price data around earnings dates", symbol),
		}
	}

	// Most recent first. ISO dates compare correctly as strings.
	sort.Slice(events, func(i, j int) bool { return events[i].Date > events[j].Date })

	var moonCount, tankCount, flatCount int
	moves := make([]float64, len(events))
	for i, e := range events {
		moves[i] = e.MovePct
		switch e.Classification {
		case ClassMoon, ClassPump:
			moonCount++
		case ClassDip, ClassTank:
			tankCount++
		case ClassFlat:
			flatCount++
		}
	}

	total := float64(len(events))
	avgMove := round2(mean(moves))
	volatility := round2(stdev(moves))
	streak, streakDirection := calculateStreak(events)

	return &dto.EarningsAnalysis{
		Symbol:          symbol,
		Events:          len(events),
		YearsCovered:    yearsCovered(events),
		MoonPct:         round1(float64(moonCount) / total * 100),
		TankPct:         round1(float64(tankCount) / total * 100),
		FlatPct:         round1(float64(flatCount) / total * 100),
		AvgMove:         avgMove,
		MaxMoon:         round2(maxOf(moves)),
		MaxTank:         round2(minOf(moves)),
		Volatility:      volatility,
		Streak:          streak,
		StreakDirection: streakDirection,
		GuhScore:        GuhScore(volatility, avgMove),
		Commentary: generateCommentary(
			round1(float64(moonCount)/total*100),
			round1(float64(tankCount)/total*100),
			volatility, avgMove, streak, streakDirection),
		History: events,
	}
}

// ClassifyMove buckets a post-earnings percentage move.
func ClassifyMove(pct float64) string {
	switch {
	case pct > 5:
		return ClassMoon
	case pct > 2:
		return ClassPump
	case pct >= -2:
		return ClassFlat
	case pct >= -5:
		return ClassDip
	default:
		return ClassTank
	}
}

// GuhScore rates how much of a casino a stock is around earnings, 0 to 10.
func GuhScore(volatility, avgMove float64) float64 {
	return round1(math.Min(10, volatility*1.5+math.Abs(avgMove)*0.5))
}

// calculateStreak counts consecutive same-direction moves starting from the
// most recent event. Moves above +2% are moons, below -2% tanks, else flat.
func calculateStreak(events []dto.EarningsEvent) (int, string) {
	if len(events) == 0 {
		return 0, "flat"
	}
	streak := 0
	direction := ""
	for _, e := range events {
		var dir string
		switch {
		case e.MovePct > 2:
			dir = "moon"
		case e.MovePct < -2:
			dir = "tank"
		default:
			dir = "flat"
		}
		if direction == "" {
			direction = dir
			streak = 1
		} else if dir == direction {
			streak++
		} else {
			break
		}
	}
	return streak, direction
}

func generateCommentary(moonPct, tankPct, volatility, avgMove float64, streak int, streakDirection string) string {
	var lines []string

	switch {
	case moonPct >= 70:
		lines = append(lines, "This thing PRINTS after earnings 🚀🚀🚀")
	case tankPct >= 70:
		lines = append(lines, "GUH. This stock hates earnings season 💀")
	case volatility > 8 && math.Abs(avgMove) < 2:
		lines = append(lines, "Pure casino. Flip a coin 🎰")
	case math.Abs(moonPct-tankPct) < 15:
		lines = append(lines, "50/50 — your wife's boyfriend has better odds 🎲")
	case moonPct >= 55:
		lines = append(lines, "Leans bullish after earnings. Not a sure thing though 📈")
	case tankPct >= 55:
		lines = append(lines, "Tends to dump after earnings. Puts gang might eat 🐻")
	default:
		lines = append(lines, "Mixed bag — could go either way 🤷")
	}

	if streak >= 3 && streakDirection == "moon" {
		lines = append(lines, fmt.Sprintf("%d moons in a row — streak is HOT 🔥", streak))
	} else if streak >= 3 && streakDirection == "tank" {
		lines = append(lines, fmt.Sprintf("%d tanks in a row — when does it stop 📉", streak))
	}

	if volatility > 10 {
		lines = append(lines, "Absolute rollercoaster around earnings. Strap in 🎢")
	} else if volatility < 2 {
		lines = append(lines, "Barely moves on earnings. Theta gang wins again 🐌")
	}

	return strings.Join(lines, " ")
}

func surprisePct(estimate, actual *float64) *float64 {
	if estimate == nil || actual == nil || *estimate == 0 {
		return nil
	}
	v := round2((*actual - *estimate) / math.Abs(*estimate) * 100)
	return &v
}

func yearsCovered(events []dto.EarningsEvent) float64 {
	if len(events) < 2 {
		return 0.0
	}
	newest, errNew := time.Parse("2006-01-02", events[0].Date)
	oldest, errOld := time.Parse("2006-01-02", events[len(events)-1].Date)
	if errNew != nil || errOld != nil {
		return 0.0
	}
	return round1(newest.Sub(oldest).Hours() / 24 / 365.25)
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stdev is the sample standard deviation, 0 for fewer than two points.
func stdev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0.0
	}
	m := mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

func maxOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func minOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }
