package dto

// PipelineStats summarizes one scrape-extract-store run. Found counts are
// rows built from extraction; inserted counts exclude duplicates silently
// dropped by the insert-or-ignore writes.
type PipelineStats struct {
	PostsFetched     int     `json:"posts_fetched"`
	CommentsFetched  int     `json:"comments_fetched"`
	MentionsFound    int     `json:"mentions_found"`
	MentionsInserted int     `json:"mentions_inserted"`
	OptionsFound     int     `json:"options_found"`
	OptionsInserted  int     `json:"options_inserted"`
	ElapsedSeconds   float64 `json:"elapsed_seconds"`
}

// StatusResponse is served by GET /status.
type StatusResponse struct {
	TotalMentions   int64          `json:"total_mentions"`
	UniqueTickers   int64          `json:"unique_tickers"`
	LatestTimestamp *int64         `json:"latest_timestamp"`
	LastRun         *PipelineStats `json:"last_run,omitempty"`
}
