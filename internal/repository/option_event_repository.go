package repository

import (
	"context"
	"math"
	"time"

	"wsb-signal-tracker/internal/dto"
	"wsb-signal-tracker/internal/entity"
	"wsb-signal-tracker/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OptionEventRepository defines the interface for interacting with option
// event data.
type OptionEventRepository interface {
	SaveAll(ctx context.Context, events []entity.OptionEvent) (int64, error)
	GetSummary(ctx context.Context, windowHours int) (*dto.OptionsSummary, error)
	GetFlow(ctx context.Context, windowHours, limit int) ([]dto.OptionsFlowRow, error)
}

type optionEventRepository struct {
	db     *gorm.DB
	logger *logger.Logger
}

// NewOptionEventRepository creates a new instance of OptionEventRepository.
func NewOptionEventRepository(db *gorm.DB, logger *logger.Logger) OptionEventRepository {
	return &optionEventRepository{db: db, logger: logger}
}

// SaveAll inserts option events, ignoring rows that collide with the
// uniqueness index. Strike-bearing rows dedup on (ticker, strike, type,
// source); keyword-only rows dedup on (ticker, category, source). Returns
// the number of rows actually inserted.
func (r *optionEventRepository) SaveAll(ctx context.Context, events []entity.OptionEvent) (int64, error) {
	if len(events) == 0 {
		return 0, nil
	}

	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&events)
	if tx.Error != nil {
		r.logger.Error("Failed to save option events", logger.ErrorField(tx.Error))
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// GetSummary returns high-level in-window options stats: totals, call/put
// ratio and the five most upvoted plays per side.
func (r *optionEventRepository) GetSummary(ctx context.Context, windowHours int) (*dto.OptionsSummary, error) {
	cutoff := time.Now().UTC().Add(-time.Duration(windowHours) * time.Hour).Unix()

	var counts struct {
		Total int64 `gorm:"column:total"`
		Calls int64 `gorm:"column:calls"`
		Puts  int64 `gorm:"column:puts"`
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE option_type = 'call') AS calls,
			COUNT(*) FILTER (WHERE option_type = 'put') AS puts
		FROM option_events
		WHERE timestamp >= ?
	`, cutoff).Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	topCalls, err := r.topPlays(ctx, cutoff, entity.OptionTypeCall)
	if err != nil {
		return nil, err
	}
	topPuts, err := r.topPlays(ctx, cutoff, entity.OptionTypePut)
	if err != nil {
		return nil, err
	}

	// Floor puts at 1 so the ratio never divides by zero.
	ratio := float64(counts.Calls) / math.Max(float64(counts.Puts), 1)

	return &dto.OptionsSummary{
		TotalOptions: counts.Total,
		Calls:        counts.Calls,
		Puts:         counts.Puts,
		CallPutRatio: math.Round(ratio*100) / 100,
		TopCalls:     topCalls,
		TopPuts:      topPuts,
	}, nil
}

func (r *optionEventRepository) topPlays(ctx context.Context, cutoff int64, optionType string) ([]dto.OptionPlay, error) {
	var plays []dto.OptionPlay
	err := r.db.WithContext(ctx).Raw(`
		SELECT ticker, strike, expiry_raw, expiry_category, raw_match, upvotes
		FROM option_events
		WHERE timestamp >= ? AND option_type = ?
		ORDER BY upvotes DESC
		LIMIT 5
	`, cutoff, optionType).Scan(&plays).Error
	if err != nil {
		return nil, err
	}
	return plays, nil
}

// GetFlow returns in-window option events grouped by (ticker, option type),
// ordered by event count descending.
func (r *optionEventRepository) GetFlow(ctx context.Context, windowHours, limit int) ([]dto.OptionsFlowRow, error) {
	cutoff := time.Now().UTC().Add(-time.Duration(windowHours) * time.Hour).Unix()

	var rows []dto.OptionsFlowRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			ticker,
			option_type,
			COUNT(*) AS count,
			ROUND(AVG(strike)::numeric, 2) AS avg_strike,
			MIN(strike) AS min_strike,
			MAX(strike) AS max_strike,
			ROUND(AVG(sentiment_score)::numeric, 4) AS avg_sentiment,
			COUNT(DISTINCT author) AS unique_authors,
			ARRAY_AGG(DISTINCT expiry_category) FILTER (WHERE expiry_category IS NOT NULL) AS expiry_categories
		FROM option_events
		WHERE timestamp >= ? AND option_type IS NOT NULL
		GROUP BY ticker, option_type
		ORDER BY count DESC
		LIMIT ?
	`, cutoff, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
