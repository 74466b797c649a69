package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wsb-signal-tracker/internal/config"
	delivery "wsb-signal-tracker/internal/delivery/http"
	"wsb-signal-tracker/internal/repository"
	"wsb-signal-tracker/internal/scraper"
	"wsb-signal-tracker/internal/sentiment"
	"wsb-signal-tracker/internal/service"
	"wsb-signal-tracker/internal/vocab"
	"wsb-signal-tracker/pkg/logger"
	"wsb-signal-tracker/pkg/postgres"
	"wsb-signal-tracker/pkg/redis"
	"wsb-signal-tracker/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the signal tracker API and the scheduled pipeline",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
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

	appLogger.Info("Starting WSB Signal Tracker", logger.Field("name", cfg.App.Name))

	// Initialize database
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

	// Initialize Redis
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

	// Initialize notifier
	notifier := telegram.NewNopNotifier()
	if cfg.Telegram.Enabled {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	// Initialize repositories
	mentionRepo := repository.NewMentionRepository(db.DB, appLogger)
	optionRepo := repository.NewOptionEventRepository(db.DB, appLogger)
	earningsCacheRepo := repository.NewEarningsCacheRepository(db.DB)
	marketDataRepo := repository.NewMarketDataRepository(cfg, appLogger)

	// Initialize services
	vocabLoader := vocab.NewLoader(vocab.LoaderConfig{
		URL:           cfg.Vocabulary.SECTickersURL,
		UserAgent:     cfg.Vocabulary.UserAgent,
		CacheFilePath: cfg.Vocabulary.CacheFilePath,
		CacheTTL:      cfg.Vocabulary.CacheTTL,
	}, appLogger)
	redditClient := scraper.NewRedditClient(cfg.Reddit, appLogger)
	scorer := sentiment.NewScorer()

	pipelineSvc := service.NewPipelineService(
		appLogger, redisClient.Client, redditClient, vocabLoader, scorer,
		mentionRepo, optionRepo, notifier, cfg.Scraper.RunLockTTL)
	earningsSvc := service.NewEarningsService(appLogger, marketDataRepo, earningsCacheRepo)

	// Schedule pipeline runs
	scheduler := cron.New()
	if cfg.Scraper.CronSchedule != "" {
		_, err := scheduler.AddFunc(cfg.Scraper.CronSchedule, func() {
			if _, err := pipelineSvc.Run(ctx); err != nil && !errors.Is(err, service.ErrRunInProgress) {
				appLogger.Error("Scheduled pipeline run failed", logger.ErrorField(err))
			}
		})
		if err != nil {
			appLogger.Fatal("Invalid cron schedule", logger.ErrorField(err))
		}
		scheduler.Start()
		defer scheduler.Stop()
		appLogger.Info("Pipeline scheduled", logger.StringField("cron", cfg.Scraper.CronSchedule))
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	apiV1 := e.Group("/api/v1")

	tickerHandler := delivery.NewTickerHandler(mentionRepo, appLogger)
	tickerHandler.RegisterRoutes(apiV1.Group("/tickers"))

	optionHandler := delivery.NewOptionHandler(optionRepo, appLogger)
	optionHandler.RegisterRoutes(apiV1.Group("/options"))

	earningsHandler := delivery.NewEarningsHandler(earningsSvc, appLogger)
	earningsHandler.RegisterRoutes(apiV1.Group("/earnings"))

	pipelineHandler := delivery.NewPipelineHandler(pipelineSvc, mentionRepo, appLogger)
	pipelineHandler.RegisterRoutes(apiV1)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title WSB Signal Tracker API
// @version 1.0
// @description Social-media financial signal extraction: ticker mentions, sentiment and options flow.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "api"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing api CLI: %s\n", err)
		os.Exit(1)
	}
}
