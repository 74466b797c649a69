package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"wsb-signal-tracker/internal/config"
	"wsb-signal-tracker/internal/dto"
	"wsb-signal-tracker/internal/entity"
	"wsb-signal-tracker/pkg/logger"
	"wsb-signal-tracker/pkg/utils"

	"golang.org/x/time/rate"
)

// Fetcher yields a finite batch of text units for one pipeline run.
type Fetcher interface {
	Fetch(ctx context.Context) (posts, comments []entity.TextUnit, err error)
}

// discussionKeywords mark daily/weekly discussion megathreads, which carry
// the bulk of ticker chatter and get a bigger comment budget.
var discussionKeywords = []string{
	"daily discussion", "weekend discussion", "what are your moves",
	"earnings thread", "daily thread", "weekly discussion",
	"megathread", "moves tomorrow",
}

// RedditClient scrapes a subreddit through Reddit's public JSON endpoints.
// No API key is required; requests are rate limited.
type RedditClient struct {
	cfg            config.Reddit
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewRedditClient creates a new subreddit scraper.
func NewRedditClient(cfg config.Reddit, log *logger.Logger) *RedditClient {
	perMinute := cfg.MaxRequestPerMinute
	if perMinute <= 0 {
		perMinute = 50
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	secondsPerRequest := time.Minute / time.Duration(perMinute)
	return &RedditClient{
		cfg:            cfg,
		log:            log,
		httpClient:     &http.Client{Timeout: timeout},
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

// Fetch scrapes hot, new and rising posts plus the comment trees of the most
// relevant posts. Individual listing failures degrade to partial results;
// only a completely failed run returns an error.
func (c *RedditClient) Fetch(ctx context.Context) ([]entity.TextUnit, []entity.TextUnit, error) {
	posts, err := c.fetchPosts(ctx)
	if err != nil {
		return nil, nil, err
	}
	comments := c.fetchComments(ctx, posts)
	return posts, comments, nil
}

func (c *RedditClient) fetchPosts(ctx context.Context) ([]entity.TextUnit, error) {
	listings := []struct {
		name  string
		limit int
	}{
		{"hot", c.cfg.LimitHot},
		{"new", c.cfg.LimitNew},
		{"rising", c.cfg.LimitRising},
	}

	seen := make(map[string]struct{})
	var posts []entity.TextUnit
	failures := 0

	for _, listing := range listings {
		batch, err := c.paginateListing(ctx, listing.name, listing.limit)
		if err != nil {
			c.log.Warn("Listing fetch failed, continuing with partial results",
				logger.StringField("listing", listing.name), logger.ErrorField(err))
			failures++
			continue
		}
		for _, p := range batch {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			posts = append(posts, p)
		}
		c.log.Info("Fetched listing",
			logger.StringField("listing", listing.name),
			logger.IntField("fetched", len(batch)),
			logger.IntField("total_unique", len(posts)))
	}

	if failures == len(listings) {
		return nil, fmt.Errorf("all post listings failed")
	}
	return posts, nil
}

func (c *RedditClient) paginateListing(ctx context.Context, listing string, limit int) ([]entity.TextUnit, error) {
	seen := make(map[string]struct{})
	var posts []entity.TextUnit
	after := ""

	for len(posts) < limit {
		batch := limit - len(posts)
		if batch > 100 {
			batch = 100
		}
		url := fmt.Sprintf("%s/%s.json?limit=%d&raw_json=1", c.cfg.BaseURL, listing, batch)
		if after != "" {
			url += "&after=" + after
		}

		var page dto.RedditListing
		if err := c.fetchJSON(ctx, url, &page); err != nil {
			if len(posts) > 0 {
				break
			}
			return nil, err
		}
		if len(page.Data.Children) == 0 {
			break
		}

		for _, child := range page.Data.Children {
			var post dto.RedditPost
			if err := json.Unmarshal(child.Data, &post); err != nil {
				continue
			}
			if _, ok := seen[post.ID]; ok {
				continue
			}
			seen[post.ID] = struct{}{}
			posts = append(posts, entity.TextUnit{
				ID:         post.ID,
				Title:      post.Title,
				Body:       post.Selftext,
				Author:     authorOrDeleted(post.Author),
				Upvotes:    post.Score,
				CreatedAt:  int64(post.CreatedUTC),
				SourceType: entity.SourceTypePost,
			})
		}

		after = page.Data.After
		if after == "" {
			break
		}
	}

	return posts, nil
}

func (c *RedditClient) fetchComments(ctx context.Context, posts []entity.TextUnit) []entity.TextUnit {
	// Discussion megathreads first, then the highest-upvoted regular posts.
	var discussion, other []entity.TextUnit
	for _, p := range posts {
		if isDiscussionThread(p.Title) {
			discussion = append(discussion, p)
		} else {
			other = append(other, p)
		}
	}
	sort.Slice(other, func(i, j int) bool { return other[i].Upvotes > other[j].Upvotes })

	budget := c.cfg.TopPostsForComments - len(discussion)
	if budget < 0 {
		budget = 0
	}
	if budget > len(other) {
		budget = len(other)
	}
	targets := append(discussion, other[:budget]...)

	var comments []entity.TextUnit
	for i, post := range targets {
		if !utils.ShouldContinue(ctx, c.log) {
			break
		}

		limit := c.cfg.CommentsPerPost
		if isDiscussionThread(post.Title) {
			// Discussion threads carry far more mentions per thread.
			limit = min(limit*3, 150)
		}

		url := fmt.Sprintf("%s/comments/%s.json?limit=%d&sort=new&raw_json=1", c.cfg.BaseURL, post.ID, limit)
		var pages []dto.RedditListing
		if err := c.fetchJSON(ctx, url, &pages); err != nil {
			c.log.Warn("Comment fetch failed", logger.StringField("post_id", post.ID), logger.ErrorField(err))
			continue
		}
		if len(pages) < 2 {
			continue
		}

		batch := c.collectComments(pages[1].Data.Children, post.ID, 0)
		comments = append(comments, batch...)

		if (i+1)%10 == 0 {
			c.log.Info("Fetching comments",
				logger.IntField("total", len(comments)),
				logger.IntField("posts_done", i+1),
				logger.IntField("posts_total", len(targets)))
		}
	}

	c.log.Info("Fetched comments",
		logger.IntField("comments", len(comments)),
		logger.IntField("posts", len(targets)))
	return comments
}

// collectComments walks a comment tree. Comment text rides in Title the same
// way the mention snippet expects it; deleted and removed bodies are skipped.
func (c *RedditClient) collectComments(children []dto.RedditChild, postID string, depth int) []entity.TextUnit {
	var comments []entity.TextUnit
	for _, child := range children {
		if child.Kind != "t1" {
			continue
		}
		var comment dto.RedditComment
		if err := json.Unmarshal(child.Data, &comment); err != nil {
			continue
		}

		if comment.Body != "" && comment.Body != "[deleted]" && comment.Body != "[removed]" {
			comments = append(comments, entity.TextUnit{
				ID:         fmt.Sprintf("%s_%s", postID, comment.ID),
				Title:      utils.Truncate(comment.Body, 500),
				Author:     authorOrDeleted(comment.Author),
				Upvotes:    comment.Score,
				CreatedAt:  int64(comment.CreatedUTC),
				SourceType: entity.SourceTypeComment,
			})
		}

		if depth < c.cfg.MaxCommentDepth {
			var replies dto.RedditListing
			if len(comment.Replies) > 0 && comment.Replies[0] == '{' {
				if err := json.Unmarshal(comment.Replies, &replies); err == nil {
					comments = append(comments, c.collectComments(replies.Data.Children, postID, depth+1)...)
				}
			}
		}
	}
	return comments
}

func (c *RedditClient) fetchJSON(ctx context.Context, url string, into interface{}) error {
	if err := c.requestLimiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, into)
}

func isDiscussionThread(title string) bool {
	t := strings.ToLower(title)
	for _, keyword := range discussionKeywords {
		if strings.Contains(t, keyword) {
			return true
		}
	}
	return false
}

func authorOrDeleted(author string) string {
	if author == "" {
		return "[deleted]"
	}
	return author
}
