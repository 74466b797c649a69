package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"wsb-signal-tracker/internal/dto"
	"wsb-signal-tracker/internal/entity"
	"wsb-signal-tracker/internal/extract"
	"wsb-signal-tracker/internal/repository"
	"wsb-signal-tracker/internal/scraper"
	"wsb-signal-tracker/internal/sentiment"
	"wsb-signal-tracker/internal/vocab"
	"wsb-signal-tracker/pkg/logger"
	"wsb-signal-tracker/pkg/telegram"
	"wsb-signal-tracker/pkg/utils"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyRunLock = "scraper.run.lock"
	redisKeyLastRun = "scraper.last_run"
)

// ErrRunInProgress is returned when a pipeline run is triggered while
// another one holds the run lock.
var ErrRunInProgress = errors.New("a pipeline run is already in progress")

// VocabularyProvider supplies the current ticker vocabulary to the pipeline.
type VocabularyProvider interface {
	Load(ctx context.Context) *vocab.Vocabulary
}

// PipelineService runs the scrape-extract-store batch pipeline.
type PipelineService interface {
	Run(ctx context.Context) (*dto.PipelineStats, error)
	LastRun(ctx context.Context) (*dto.PipelineStats, error)
}

type pipelineService struct {
	log         *logger.Logger
	redisClient *redis.Client
	fetcher     scraper.Fetcher
	vocabProvider   VocabularyProvider
	scorer      *sentiment.Scorer
	mentionRepo repository.MentionRepository
	optionRepo  repository.OptionEventRepository
	notifier    telegram.Notifier
	runLockTTL  time.Duration
}

// NewPipelineService creates a new PipelineService. The redis client may be
// nil, which disables the run lock and the last-run snapshot.
func NewPipelineService(
	log *logger.Logger,
	redisClient *redis.Client,
	fetcher scraper.Fetcher,
	vocabProvider VocabularyProvider,
	scorer *sentiment.Scorer,
	mentionRepo repository.MentionRepository,
	optionRepo repository.OptionEventRepository,
	notifier telegram.Notifier,
	runLockTTL time.Duration,
) PipelineService {
	if runLockTTL <= 0 {
		runLockTTL = 15 * time.Minute
	}
	return &pipelineService{
		log:         log,
		redisClient: redisClient,
		fetcher:     fetcher,
		vocabProvider:   vocabProvider,
		scorer:      scorer,
		mentionRepo: mentionRepo,
		optionRepo:  optionRepo,
		notifier:    notifier,
		runLockTTL:  runLockTTL,
	}
}

// Run executes one batch: fetch text units, extract tickers and options,
// score sentiment once per unit, then batch-insert both event streams with
// insert-or-ignore semantics. Safe to re-invoke over already-seen text.
func (s *pipelineService) Run(ctx context.Context) (*dto.PipelineStats, error) {
	start := time.Now()

	release, err := s.acquireRunLock(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	s.log.Info("Pipeline run starting")

	posts, comments, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}

	vocabulary := s.vocabProvider.Load(ctx)

	var mentionRows []entity.Mention
	var optionRows []entity.OptionEvent

	units := make([]entity.TextUnit, 0, len(posts)+len(comments))
	units = append(units, posts...)
	units = append(units, comments...)

	for _, unit := range units {
		text := strings.TrimSpace(unit.Title + " " + unit.Body)

		tickers := extract.ExtractTickers(text, vocabulary)
		score := s.scorer.Score(text)

		for _, ticker := range tickers {
			mentionRows = append(mentionRows, entity.Mention{
				Ticker:         ticker,
				SourceID:       unit.ID,
				SentimentScore: score,
				Timestamp:      unit.CreatedAt,
				SourceType:     string(unit.SourceType),
				Title:          utils.Truncate(unit.Title, 200),
				Author:         unit.Author,
				Upvotes:        unit.Upvotes,
			})
		}

		// Options extraction runs on every unit: the contract signal is
		// independent of whether any plain ticker mention was found.
		for _, candidate := range extract.ExtractOptions(text, vocabulary) {
			optionRows = append(optionRows, entity.OptionEvent{
				Ticker:         candidate.Ticker,
				Strike:         candidate.Strike,
				OptionType:     candidate.OptionType,
				ExpiryRaw:      candidate.ExpiryRaw,
				ExpiryCategory: candidate.ExpiryCategory,
				RawMatch:       candidate.RawMatch,
				SourceID:       unit.ID,
				SentimentScore: score,
				Timestamp:      unit.CreatedAt,
				Author:         unit.Author,
				Upvotes:        unit.Upvotes,
			})
		}
	}

	mentionsInserted, err := s.mentionRepo.SaveAll(ctx, mentionRows)
	if err != nil {
		return nil, fmt.Errorf("failed to save mentions: %w", err)
	}
	optionsInserted, err := s.optionRepo.SaveAll(ctx, optionRows)
	if err != nil {
		return nil, fmt.Errorf("failed to save option events: %w", err)
	}

	stats := &dto.PipelineStats{
		PostsFetched:     len(posts),
		CommentsFetched:  len(comments),
		MentionsFound:    len(mentionRows),
		MentionsInserted: int(mentionsInserted),
		OptionsFound:     len(optionRows),
		OptionsInserted:  int(optionsInserted),
		ElapsedSeconds:   math.Round(time.Since(start).Seconds()*10) / 10,
	}

	s.log.Info("Pipeline run finished",
		logger.IntField("posts", stats.PostsFetched),
		logger.IntField("comments", stats.CommentsFetched),
		logger.IntField("mentions_found", stats.MentionsFound),
		logger.IntField("mentions_inserted", stats.MentionsInserted),
		logger.IntField("options_found", stats.OptionsFound),
		logger.IntField("options_inserted", stats.OptionsInserted),
		logger.Float64Field("elapsed_seconds", stats.ElapsedSeconds))

	s.storeLastRun(ctx, stats)
	s.sendDigest(ctx)

	return stats, nil
}

// LastRun returns the stats snapshot of the most recent run, or nil when no
// run has completed yet.
func (s *pipelineService) LastRun(ctx context.Context) (*dto.PipelineStats, error) {
	if s.redisClient == nil {
		return nil, nil
	}
	data, err := s.redisClient.Get(ctx, redisKeyLastRun).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var stats dto.PipelineStats
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *pipelineService) acquireRunLock(ctx context.Context) (func(), error) {
	if s.redisClient == nil {
		return func() {}, nil
	}
	acquired, err := s.redisClient.SetNX(ctx, redisKeyRunLock, time.Now().Unix(), s.runLockTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire run lock: %w", err)
	}
	if !acquired {
		return nil, ErrRunInProgress
	}
	return func() {
		if err := s.redisClient.Del(context.WithoutCancel(ctx), redisKeyRunLock).Err(); err != nil {
			s.log.Warn("Failed to release run lock", logger.ErrorField(err))
		}
	}, nil
}

func (s *pipelineService) storeLastRun(ctx context.Context, stats *dto.PipelineStats) {
	if s.redisClient == nil {
		return
	}
	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.redisClient.Set(ctx, redisKeyLastRun, data, 0).Err(); err != nil {
		s.log.Warn("Failed to store last-run stats", logger.ErrorField(err))
	}
}

// sendDigest pushes a top-tickers summary to Telegram. Failures only log:
// the digest is a side channel, never part of the pipeline contract.
func (s *pipelineService) sendDigest(ctx context.Context) {
	if s.notifier == nil {
		return
	}
	top, err := s.mentionRepo.GetTopTickers(ctx, 24, 10)
	if err != nil || len(top) == 0 {
		return
	}

	var b strings.Builder
	b.WriteString("*WSB Top Tickers (24h)*\n")
	for i, t := range top {
		b.WriteString(fmt.Sprintf("%d. *%s* — %d mentions, sentiment %.2f\n",
			i+1, t.Ticker, t.MentionCount, t.AvgSentiment))
	}
	if err := s.notifier.SendMessage(b.String()); err != nil {
		s.log.Warn("Failed to send digest", logger.ErrorField(err))
	}
}
