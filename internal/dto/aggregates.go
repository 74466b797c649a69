package dto

import "github.com/lib/pq"

// TickerStat is one row of the top-tickers leaderboard.
type TickerStat struct {
	Ticker        string  `json:"ticker"`
	MentionCount  int     `gorm:"column:mention_count" json:"mention_count"`
	AvgSentiment  float64 `gorm:"column:avg_sentiment" json:"avg_sentiment"`
	UniqueAuthors int     `gorm:"column:unique_authors" json:"unique_authors"`
	TopUpvotes    int     `gorm:"column:top_upvotes" json:"top_upvotes"`
	LatestMention int64   `gorm:"column:latest_mention" json:"latest_mention"`
}

// TopTickersResponse is served by GET /tickers.
type TopTickersResponse struct {
	Tickers []TickerStat `json:"tickers"`
	Hours   int          `json:"hours"`
	Count   int          `json:"count"`
}

// TickerDetailResponse is served by GET /tickers/:symbol.
type TickerDetailResponse struct {
	Symbol   string      `json:"symbol"`
	Mentions interface{} `json:"mentions"`
	Hours    int         `json:"hours"`
	Count    int         `json:"count"`
}

// OptionPlay is one notable contract in the options summary.
type OptionPlay struct {
	Ticker         string   `json:"ticker"`
	Strike         *float64 `json:"strike"`
	ExpiryRaw      *string  `gorm:"column:expiry_raw" json:"expiry_raw"`
	ExpiryCategory *string  `gorm:"column:expiry_category" json:"expiry_category"`
	RawMatch       string   `gorm:"column:raw_match" json:"raw_match"`
	Upvotes        int      `json:"upvotes"`
}

// OptionsSummary aggregates in-window option events.
type OptionsSummary struct {
	TotalOptions int64        `json:"total_options"`
	Calls        int64        `json:"calls"`
	Puts         int64        `json:"puts"`
	CallPutRatio float64      `json:"call_put_ratio"`
	TopCalls     []OptionPlay `json:"top_calls"`
	TopPuts      []OptionPlay `json:"top_puts"`
}

// OptionsFlowRow is one (ticker, option type) group of the options flow.
type OptionsFlowRow struct {
	Ticker           string         `json:"ticker"`
	OptionType       string         `gorm:"column:option_type" json:"option_type"`
	Count            int            `json:"count"`
	AvgStrike        float64        `gorm:"column:avg_strike" json:"avg_strike"`
	MinStrike        float64        `gorm:"column:min_strike" json:"min_strike"`
	MaxStrike        float64        `gorm:"column:max_strike" json:"max_strike"`
	AvgSentiment     float64        `gorm:"column:avg_sentiment" json:"avg_sentiment"`
	UniqueAuthors    int            `gorm:"column:unique_authors" json:"unique_authors"`
	ExpiryCategories pq.StringArray `gorm:"column:expiry_categories;type:text[]" json:"expiry_categories"`
}

// OptionsResponse is served by GET /options.
type OptionsResponse struct {
	Summary *OptionsSummary  `json:"summary"`
	Flow    []OptionsFlowRow `json:"flow"`
	Hours   int              `json:"hours"`
}
