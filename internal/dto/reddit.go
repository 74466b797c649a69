package dto

import "encoding/json"

// RedditListing is the envelope of a Reddit listing endpoint.
type RedditListing struct {
	Data RedditListingData `json:"data"`
}

// RedditListingData holds the children and pagination cursor of a listing.
type RedditListingData struct {
	Children []RedditChild `json:"children"`
	After    string        `json:"after"`
}

// RedditChild wraps one post or comment; Kind is "t3" for posts, "t1" for
// comments.
type RedditChild struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// RedditPost is the subset of post fields the pipeline consumes.
type RedditPost struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	Author      string  `json:"author"`
	Score       int     `json:"score"`
	CreatedUTC  float64 `json:"created_utc"`
	NumComments int     `json:"num_comments"`
}

// RedditComment is the subset of comment fields the pipeline consumes.
// Replies is either a nested listing or an empty string, so it stays raw
// until inspected.
type RedditComment struct {
	ID         string          `json:"id"`
	Body       string          `json:"body"`
	Author     string          `json:"author"`
	Score      int             `json:"score"`
	CreatedUTC float64         `json:"created_utc"`
	Replies    json.RawMessage `json:"replies"`
}
