package repository

import (
	"context"
	"time"

	"wsb-signal-tracker/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EarningsCacheRepository defines the interface for the 24h earnings
// analytics cache.
type EarningsCacheRepository interface {
	Get(ctx context.Context, ticker string) (*entity.EarningsCacheEntry, error)
	Set(ctx context.Context, entry *entity.EarningsCacheEntry) error
}

type earningsCacheRepository struct {
	db *gorm.DB
}

// NewEarningsCacheRepository creates a new instance of EarningsCacheRepository.
func NewEarningsCacheRepository(db *gorm.DB) EarningsCacheRepository {
	return &earningsCacheRepository{db: db}
}

// Get returns the cached entry for a ticker, or nil when none exists or the
// entry is older than the cache TTL. Stale entries are logically absent.
func (r *earningsCacheRepository) Get(ctx context.Context, ticker string) (*entity.EarningsCacheEntry, error) {
	var entry entity.EarningsCacheEntry
	result := r.db.WithContext(ctx).Where("ticker = ?", ticker).First(&entry)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}

	if !entry.Fresh(time.Now().UTC()) {
		return nil, nil
	}
	return &entry, nil
}

// Set upserts the cache entry, overwriting any previous analysis for the
// ticker.
func (r *earningsCacheRepository) Set(ctx context.Context, entry *entity.EarningsCacheEntry) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ticker"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "fetched_at"}),
	}).Create(entry).Error
}
