package service

import (
	"context"
	"testing"

	"wsb-signal-tracker/internal/dto"
	"wsb-signal-tracker/internal/entity"
	"wsb-signal-tracker/internal/sentiment"
	"wsb-signal-tracker/internal/vocab"
	"wsb-signal-tracker/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	posts    []entity.TextUnit
	comments []entity.TextUnit
	err      error
}

func (f *fakeFetcher) Fetch(ctx context.Context) ([]entity.TextUnit, []entity.TextUnit, error) {
	return f.posts, f.comments, f.err
}

type fakeVocabProvider struct {
	vocabulary *vocab.Vocabulary
}

func (f *fakeVocabProvider) Load(ctx context.Context) *vocab.Vocabulary {
	return f.vocabulary
}

type fakeMentionRepo struct {
	saved    []entity.Mention
	inserted int64
	top      []dto.TickerStat
}

func (f *fakeMentionRepo) SaveAll(ctx context.Context, mentions []entity.Mention) (int64, error) {
	f.saved = append(f.saved, mentions...)
	if f.inserted > 0 {
		return f.inserted, nil
	}
	return int64(len(mentions)), nil
}

func (f *fakeMentionRepo) GetTopTickers(ctx context.Context, windowHours, limit int) ([]dto.TickerStat, error) {
	return f.top, nil
}

func (f *fakeMentionRepo) GetTickerDetail(ctx context.Context, symbol string, windowHours int) ([]entity.Mention, error) {
	return nil, nil
}

func (f *fakeMentionRepo) GetStats(ctx context.Context) (*dto.StatusResponse, error) {
	return &dto.StatusResponse{}, nil
}

type fakeOptionRepo struct {
	saved []entity.OptionEvent
}

func (f *fakeOptionRepo) SaveAll(ctx context.Context, events []entity.OptionEvent) (int64, error) {
	f.saved = append(f.saved, events...)
	return int64(len(events)), nil
}

func (f *fakeOptionRepo) GetSummary(ctx context.Context, windowHours int) (*dto.OptionsSummary, error) {
	return &dto.OptionsSummary{}, nil
}

func (f *fakeOptionRepo) GetFlow(ctx context.Context, windowHours, limit int) ([]dto.OptionsFlowRow, error) {
	return nil, nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return log
}

func newTestPipeline(t *testing.T, fetcher *fakeFetcher, mentions *fakeMentionRepo, options *fakeOptionRepo) PipelineService {
	t.Helper()
	provider := &fakeVocabProvider{vocabulary: vocab.New([]string{"GME", "NVDA", "SPY", "TSLA"})}
	return NewPipelineService(
		testLogger(t), nil, fetcher, provider, sentiment.NewScorer(),
		mentions, options, nil, 0)
}

func TestPipelineRun_ExtractsMentionsAndOptions(t *testing.T) {
	fetcher := &fakeFetcher{
		posts: []entity.TextUnit{
			{
				ID:         "abc123",
				Title:      "just bought $GME calls, NOT a drill",
				Body:       "NVDA 200c 3/27 also looking good 🚀",
				Author:     "degenerate1",
				Upvotes:    420,
				CreatedAt:  1700000000,
				SourceType: entity.SourceTypePost,
			},
		},
		comments: []entity.TextUnit{
			{
				ID:         "abc123_def456",
				Title:      "SPY 680p 0DTE lets ride",
				Author:     "thetagang",
				Upvotes:    69,
				CreatedAt:  1700000100,
				SourceType: entity.SourceTypeComment,
			},
		},
	}
	mentions := &fakeMentionRepo{}
	options := &fakeOptionRepo{}
	svc := newTestPipeline(t, fetcher, mentions, options)

	stats, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.PostsFetched)
	assert.Equal(t, 1, stats.CommentsFetched)

	var tickers []string
	for _, m := range mentions.saved {
		tickers = append(tickers, m.Ticker)
	}
	assert.Contains(t, tickers, "GME")
	assert.Contains(t, tickers, "NVDA")
	assert.Contains(t, tickers, "SPY")
	assert.NotContains(t, tickers, "NOT")

	require.Len(t, options.saved, 2)
	assert.Equal(t, "NVDA", options.saved[0].Ticker)
	assert.Equal(t, "abc123", options.saved[0].SourceID)
	assert.Equal(t, "SPY", options.saved[1].Ticker)
	assert.Equal(t, "abc123_def456", options.saved[1].SourceID)
}

func TestPipelineRun_SharesSentimentAcrossUnit(t *testing.T) {
	fetcher := &fakeFetcher{
		posts: []entity.TextUnit{{
			ID:         "p1",
			Title:      "GME mooning, tendies for everyone",
			Body:       "GME 100c weekly 🚀🚀",
			CreatedAt:  1700000000,
			SourceType: entity.SourceTypePost,
		}},
	}
	mentions := &fakeMentionRepo{}
	options := &fakeOptionRepo{}
	svc := newTestPipeline(t, fetcher, mentions, options)

	_, err := svc.Run(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, mentions.saved)
	require.NotEmpty(t, options.saved)
	// One score per text unit, shared by every row extracted from it.
	assert.Equal(t, mentions.saved[0].SentimentScore, options.saved[0].SentimentScore)
	assert.Greater(t, mentions.saved[0].SentimentScore, 0.0)
}

func TestPipelineRun_TruncatesLongTitles(t *testing.T) {
	long := make([]rune, 500)
	for i := range long {
		long[i] = 'x'
	}
	fetcher := &fakeFetcher{
		posts: []entity.TextUnit{{
			ID:         "p1",
			Title:      "$GME " + string(long),
			CreatedAt:  1700000000,
			SourceType: entity.SourceTypePost,
		}},
	}
	mentions := &fakeMentionRepo{}
	svc := newTestPipeline(t, fetcher, mentions, &fakeOptionRepo{})

	_, err := svc.Run(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, mentions.saved)
	assert.LessOrEqual(t, len(mentions.saved[0].Title), 200)
}

func TestPipelineRun_FetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: assert.AnError}
	svc := newTestPipeline(t, fetcher, &fakeMentionRepo{}, &fakeOptionRepo{})

	_, err := svc.Run(context.Background())
	assert.Error(t, err)
}

func TestPipelineRun_InsertedCountsFromRepository(t *testing.T) {
	fetcher := &fakeFetcher{
		posts: []entity.TextUnit{
			{ID: "p1", Title: "$GME to the moon", CreatedAt: 1, SourceType: entity.SourceTypePost},
			{ID: "p2", Title: "$GME again", CreatedAt: 2, SourceType: entity.SourceTypePost},
		},
	}
	// Repository reports one duplicate dropped.
	mentions := &fakeMentionRepo{inserted: 1}
	svc := newTestPipeline(t, fetcher, mentions, &fakeOptionRepo{})

	stats, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.MentionsFound)
	assert.Equal(t, 1, stats.MentionsInserted)
}
