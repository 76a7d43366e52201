// Package main provides the entry point for the long-running odds poller.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/odds-iq/internal/config"
	"github.com/yourusername/odds-iq/internal/database"
	"github.com/yourusername/odds-iq/internal/datasource"
	"github.com/yourusername/odds-iq/internal/health"
	"github.com/yourusername/odds-iq/internal/logger"
	"github.com/yourusername/odds-iq/internal/metrics"
	"github.com/yourusername/odds-iq/internal/repository"
	"github.com/yourusername/odds-iq/internal/scheduler"
	"github.com/yourusername/odds-iq/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// predictionBatchLimit bounds how many upcoming matches each polling cycle
// scores per sport.
const predictionBatchLimit = 100

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	// Load configuration
	cfg, err := config.LoadWithDefaults(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load AWS secrets if enabled
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			log.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			log.Fatalf("Failed to load secrets: %v", err)
		}
	}

	// Validate configuration
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set up logging
	appLog := logger.NewLogger(cfg.App.LogLevel)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"log_level":   cfg.App.LogLevel,
		"version":     Version,
	}).Info("OddsIQ poller starting")

	opsLog := log.New(os.Stdout, "", log.LstdFlags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database connection and schema
	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()
	appLog.Info("Database connection established")

	repos, err := repository.NewRepositories(db)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to initialize repositories")
	}

	// Initialize the odds feed client
	factory := datasource.NewFactory(cfg, opsLog)
	source, httpClient, err := factory.NewOddsFeed()
	if err != nil {
		appLog.WithError(err).Fatal("Failed to create odds feed client")
	}
	defer httpClient.Close()

	// Wire services
	coreCfg := service.CoreConfigFrom(cfg)
	policies := service.PolicyTableFrom(cfg)
	audit := logger.NewPredictionLogger(appLog)

	ingestionSvc := service.NewIngestionService(source, repos.Match, repos.Odds, service.NewQuoteValidator(opsLog), opsLog)
	predictionSvc := service.NewPredictionService(
		repos.Match, repos.Odds, repos.Prediction, nil,
		policies, coreCfg, cfg.Scoring.CacheTTL(), cfg.Scoring.CacheMaxSize, audit, opsLog,
	)
	verificationSvc := service.NewVerificationService(repos.Match, repos.Prediction, audit, opsLog, cfg.Verification.BatchSize)

	// Schedule recurring jobs
	sched := scheduler.NewScheduler(ingestionSvc, predictionSvc, verificationSvc, opsLog)
	if err := sched.ScheduleOddsPolling(cfg.OddsFeed.PollIntervalSeconds, cfg.OddsFeed.SportKeys, predictionBatchLimit); err != nil {
		appLog.WithError(err).Fatal("Failed to schedule odds polling")
	}

	scoresSchedule := cfg.OddsFeed.HistoricalSyncSchedule
	if scoresSchedule == "" {
		scoresSchedule = "@every 10m"
	}
	if err := sched.ScheduleScoresSync(scoresSchedule, cfg.OddsFeed.SportKeys, cfg.OddsFeed.ScoresLookbackDays); err != nil {
		appLog.WithError(err).Fatal("Failed to schedule scores sync")
	}

	if err := sched.ScheduleVerificationSweep(cfg.Verification.SweepSchedule); err != nil {
		appLog.WithError(err).Fatal("Failed to schedule verification sweep")
	}

	// Health and metrics endpoints
	metrics.InitRegistry()
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		metricsHandler = metrics.Handler()
	}
	healthSrv := health.NewServer(health.Config{
		ServiceName: "odds-poller",
		Version:     Version,
		Commit:      GitCommit,
		Logger:      appLog,
		DB:          db,
		Metrics:     metricsHandler,
	})
	if err := healthSrv.Start(ctx); err != nil {
		appLog.WithError(err).Fatal("Failed to start health server")
	}

	if err := sched.Start(); err != nil {
		appLog.WithError(err).Fatal("Failed to start scheduler")
	}
	healthSrv.SetReady(true)
	appLog.Info("Odds poller running")

	<-ctx.Done()

	appLog.Info("Shutdown signal received")
	healthSrv.SetReady(false)
	if err := sched.Stop(); err != nil {
		appLog.WithError(err).Error("Failed to stop scheduler")
	}
	appLog.Info("Odds poller stopped")
}
