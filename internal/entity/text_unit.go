package entity

// SourceType identifies where a text unit came from.
type SourceType string

const (
	SourceTypePost    SourceType = "post"
	SourceTypeComment SourceType = "comment"
)

// TextUnit is one scraped post or comment. It is read-only input to the
// pipeline and never persisted directly; comment text is carried in Title
// the same way the scraper emits it.
type TextUnit struct {
	ID         string
	Title      string
	Body       string
	Author     string
	Upvotes    int
	CreatedAt  int64
	SourceType SourceType
}
