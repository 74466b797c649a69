package config

import (
	"time"

	"wsb-signal-tracker/pkg/config"
)

// Reddit holds the settings for the subreddit scraper.
type Reddit struct {
	BaseURL             string        `mapstructure:"base_url"`
	UserAgent           string        `mapstructure:"user_agent"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	RequestTimeout      time.Duration `mapstructure:"request_timeout"`
	LimitHot            int           `mapstructure:"limit_hot"`
	LimitNew            int           `mapstructure:"limit_new"`
	LimitRising         int           `mapstructure:"limit_rising"`
	TopPostsForComments int           `mapstructure:"top_posts_for_comments"`
	CommentsPerPost     int           `mapstructure:"comments_per_post"`
	MaxCommentDepth     int           `mapstructure:"max_comment_depth"`
}

// Vocabulary holds the settings for the authoritative ticker list.
type Vocabulary struct {
	SECTickersURL string        `mapstructure:"sec_tickers_url"`
	UserAgent     string        `mapstructure:"user_agent"`
	CacheFilePath string        `mapstructure:"cache_file_path"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
}

// Scraper holds pipeline scheduling settings.
type Scraper struct {
	CronSchedule string        `mapstructure:"cron_schedule"`
	RunLockTTL   time.Duration `mapstructure:"run_lock_ttl"`
}

// Telegram holds configuration for the post-run digest notifier.
type Telegram struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// MarketData holds the configuration for the earnings market-data source.
type MarketData struct {
	BaseURL             string `mapstructure:"base_url"`
	UserAgent           string `mapstructure:"user_agent"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// Config holds the full configuration for the tracker.
type Config struct {
	App        config.App      `mapstructure:"app"`
	Logger     config.Logger   `mapstructure:"logger"`
	Database   config.Database `mapstructure:"database"`
	Redis      config.Redis    `mapstructure:"redis"`
	API        config.API      `mapstructure:"api"`
	Reddit     Reddit          `mapstructure:"reddit"`
	Vocabulary Vocabulary      `mapstructure:"vocabulary"`
	Scraper    Scraper         `mapstructure:"scraper"`
	Telegram   Telegram        `mapstructure:"telegram"`
	MarketData MarketData      `mapstructure:"market_data"`
}

// Load loads the tracker configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
