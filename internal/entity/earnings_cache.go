package entity

import (
	"time"

	"gorm.io/datatypes"
)

// EarningsCacheTTL is how long a cached earnings analysis stays valid.
const EarningsCacheTTL = 24 * time.Hour

// EarningsCacheEntry holds one ticker's computed earnings analytics. Entries
// older than EarningsCacheTTL are treated as absent and recomputed.
type EarningsCacheEntry struct {
	Ticker    string         `gorm:"primaryKey" json:"ticker"`
	Data      datatypes.JSON `gorm:"not null" json:"data"`
	FetchedAt int64          `gorm:"column:fetched_at;not null" json:"fetched_at"`
}

// TableName specifies the table name for the EarningsCacheEntry model.
func (EarningsCacheEntry) TableName() string {
	return "earnings_cache"
}

// Fresh reports whether the entry is still valid at the given instant.
func (e *EarningsCacheEntry) Fresh(now time.Time) bool {
	age := now.Unix() - e.FetchedAt
	return age < int64(EarningsCacheTTL/time.Second)
}
