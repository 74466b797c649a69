package entity

// Mention is one (ticker, source text unit) extraction event. The table has a
// unique constraint on (ticker, source_id) so re-processing the same text unit
// can never inflate counts.
type Mention struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Ticker         string  `gorm:"not null;uniqueIndex:uniq_mentions_ticker_source" json:"ticker"`
	SourceID       string  `gorm:"column:source_id;not null;uniqueIndex:uniq_mentions_ticker_source" json:"source_id"`
	SentimentScore float64 `gorm:"not null" json:"sentiment_score"`
	Timestamp      int64   `gorm:"not null;index" json:"timestamp"`
	SourceType     string  `gorm:"not null" json:"source_type"`
	Title          string  `json:"title"`
	Author         string  `json:"author"`
	Upvotes        int     `gorm:"default:0" json:"upvotes"`
}

// TableName specifies the table name for the Mention model.
func (Mention) TableName() string {
	return "mentions"
}
