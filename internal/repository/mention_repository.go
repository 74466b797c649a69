package repository

import (
	"context"
	"time"

	"wsb-signal-tracker/internal/dto"
	"wsb-signal-tracker/internal/entity"
	"wsb-signal-tracker/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Mentions below this in-window count never make the leaderboard.
const topTickersMinMentions = 5

// MentionRepository defines the interface for interacting with mention data.
type MentionRepository interface {
	SaveAll(ctx context.Context, mentions []entity.Mention) (int64, error)
	GetTopTickers(ctx context.Context, windowHours, limit int) ([]dto.TickerStat, error)
	GetTickerDetail(ctx context.Context, symbol string, windowHours int) ([]entity.Mention, error)
	GetStats(ctx context.Context) (*dto.StatusResponse, error)
}

type mentionRepository struct {
	db     *gorm.DB
	logger *logger.Logger
}

// NewMentionRepository creates a new instance of MentionRepository.
func NewMentionRepository(db *gorm.DB, logger *logger.Logger) MentionRepository {
	return &mentionRepository{db: db, logger: logger}
}

// SaveAll inserts mention rows, silently ignoring rows that collide with the
// (ticker, source_id) uniqueness constraint. Returns the number of rows
// actually inserted, so re-running the pipeline over seen text is idempotent.
func (r *mentionRepository) SaveAll(ctx context.Context, mentions []entity.Mention) (int64, error) {
	if len(mentions) == 0 {
		return 0, nil
	}

	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&mentions)
	if tx.Error != nil {
		r.logger.Error("Failed to save mentions", logger.ErrorField(tx.Error))
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// GetTopTickers returns the ranked in-window leaderboard. Tickers need
// strictly more than topTickersMinMentions mentions to qualify.
func (r *mentionRepository) GetTopTickers(ctx context.Context, windowHours, limit int) ([]dto.TickerStat, error) {
	cutoff := time.Now().UTC().Add(-time.Duration(windowHours) * time.Hour).Unix()

	var stats []dto.TickerStat
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			ticker,
			COUNT(*) AS mention_count,
			ROUND(AVG(sentiment_score)::numeric, 4) AS avg_sentiment,
			COUNT(DISTINCT author) AS unique_authors,
			MAX(upvotes) AS top_upvotes,
			MAX(timestamp) AS latest_mention
		FROM mentions
		WHERE timestamp >= ?
		GROUP BY ticker
		HAVING COUNT(*) > ?
		ORDER BY mention_count DESC
		LIMIT ?
	`, cutoff, topTickersMinMentions, limit).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// GetTickerDetail returns up to 100 most recent in-window mentions for one
// ticker, newest first.
func (r *mentionRepository) GetTickerDetail(ctx context.Context, symbol string, windowHours int) ([]entity.Mention, error) {
	cutoff := time.Now().UTC().Add(-time.Duration(windowHours) * time.Hour).Unix()

	var mentions []entity.Mention
	err := r.db.WithContext(ctx).
		Where("ticker = ? AND timestamp >= ?", symbol, cutoff).
		Order("timestamp DESC").
		Limit(100).
		Find(&mentions).Error
	if err != nil {
		return nil, err
	}
	return mentions, nil
}

// GetStats returns whole-log counters for the status endpoint.
func (r *mentionRepository) GetStats(ctx context.Context) (*dto.StatusResponse, error) {
	var stats struct {
		TotalMentions   int64  `gorm:"column:total_mentions"`
		UniqueTickers   int64  `gorm:"column:unique_tickers"`
		LatestTimestamp *int64 `gorm:"column:latest_timestamp"`
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_mentions,
			COUNT(DISTINCT ticker) AS unique_tickers,
			MAX(timestamp) AS latest_timestamp
		FROM mentions
	`).Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	return &dto.StatusResponse{
		TotalMentions:   stats.TotalMentions,
		UniqueTickers:   stats.UniqueTickers,
		LatestTimestamp: stats.LatestTimestamp,
	}, nil
}
