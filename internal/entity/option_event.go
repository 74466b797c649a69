package entity

// Expiry categories produced by the options extractor.
const (
	ExpiryZeroDTE = "0DTE"
	ExpiryWeekly  = "weekly"
	ExpiryMonthly = "monthly"
	ExpiryLEAPS   = "LEAPS"
	ExpiryDated   = "dated"
)

// Option types produced by the options extractor.
const (
	OptionTypeCall = "call"
	OptionTypePut  = "put"
)

// OptionEvent is one extracted options-contract signal tied to a source text
// unit. Strike and OptionType are both nil for keyword-only signals, in which
// case ExpiryCategory participates in the uniqueness key instead (see the
// expression index in the migration).
type OptionEvent struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	Ticker         string   `gorm:"not null" json:"ticker"`
	Strike         *float64 `json:"strike"`
	OptionType     *string  `gorm:"column:option_type" json:"option_type"`
	ExpiryRaw      *string  `gorm:"column:expiry_raw" json:"expiry_raw"`
	ExpiryCategory *string  `gorm:"column:expiry_category" json:"expiry_category"`
	RawMatch       string   `gorm:"column:raw_match" json:"raw_match"`
	SourceID       string   `gorm:"column:source_id;not null" json:"source_id"`
	SentimentScore float64  `gorm:"not null" json:"sentiment_score"`
	Timestamp      int64    `gorm:"not null;index" json:"timestamp"`
	Author         string   `json:"author"`
	Upvotes        int      `gorm:"default:0" json:"upvotes"`
}

// TableName specifies the table name for the OptionEvent model.
func (OptionEvent) TableName() string {
	return "option_events"
}
