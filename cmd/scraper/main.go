package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"wsb-signal-tracker/internal/config"
	"wsb-signal-tracker/internal/repository"
	"wsb-signal-tracker/internal/scraper"
	"wsb-signal-tracker/internal/sentiment"
	"wsb-signal-tracker/internal/service"
	"wsb-signal-tracker/internal/vocab"
	"wsb-signal-tracker/pkg/logger"
	"wsb-signal-tracker/pkg/postgres"
	"wsb-signal-tracker/pkg/redis"
	"wsb-signal-tracker/pkg/telegram"

	"github.com/spf13/cobra"
)

var configPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs one scrape-extract-store pipeline pass and exits",
	Run:   runOnce,
}

func runOnce(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	db, err := postgres.NewDB(postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	redisClient, err := redis.NewClient(redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	notifier := telegram.NewNopNotifier()
	if cfg.Telegram.Enabled {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	mentionRepo := repository.NewMentionRepository(db.DB, appLogger)
	optionRepo := repository.NewOptionEventRepository(db.DB, appLogger)

	vocabLoader := vocab.NewLoader(vocab.LoaderConfig{
		URL:           cfg.Vocabulary.SECTickersURL,
		UserAgent:     cfg.Vocabulary.UserAgent,
		CacheFilePath: cfg.Vocabulary.CacheFilePath,
		CacheTTL:      cfg.Vocabulary.CacheTTL,
	}, appLogger)
	redditClient := scraper.NewRedditClient(cfg.Reddit, appLogger)

	pipelineSvc := service.NewPipelineService(
		appLogger, redisClient.Client, redditClient, vocabLoader, sentiment.NewScorer(),
		mentionRepo, optionRepo, notifier, cfg.Scraper.RunLockTTL)

	stats, err := pipelineSvc.Run(ctx)
	if err != nil {
		appLogger.Fatal("Pipeline run failed", logger.ErrorField(err))
	}

	appLogger.Info("Pipeline run complete",
		logger.IntField("mentions_inserted", stats.MentionsInserted),
		logger.IntField("options_inserted", stats.OptionsInserted))
}

func main() {
	rootCmd := &cobra.Command{Use: "scraper"}

	runCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "Path to the configuration file")

	rootCmd.AddCommand(runCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing scraper CLI: %s\n", err)
		os.Exit(1)
	}
}
