// Package main provides the verification CLI.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/odds-iq/internal/config"
	"github.com/yourusername/odds-iq/internal/database"
	"github.com/yourusername/odds-iq/internal/logger"
	"github.com/yourusername/odds-iq/internal/repository"
	"github.com/yourusername/odds-iq/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	sportKey   string
	windowDays int

	appLog *logrus.Logger
	cfg    *config.Config
	db     *database.DB
	repos  *repository.Repositories
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")

	statsCmd.Flags().StringVarP(&sportKey, "sport", "s", "", "Sport key to report on (empty for all)")
	statsCmd.Flags().IntVarP(&windowDays, "window", "w", 0, "Window in days (0 uses the configured accuracy window)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "verifier",
	Short: "Settle predictions against final results",
	Long:  `Verifies pending predictions once their matches finish and reports the resulting track record.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return setupDependencies(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			db.Close()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one verification sweep",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSweep(cmd.Context())
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the verified track record",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printStats(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("verifier %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	return config.Validate(cfg)
}

func setupDependencies(ctx context.Context) error {
	appLog = logger.NewLogger(cfg.App.LogLevel)

	var err error
	db, err = database.Initialize(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	repos, err = repository.NewRepositories(db)
	if err != nil {
		return fmt.Errorf("failed to initialize repositories: %w", err)
	}
	return nil
}

func newVerificationService() *service.VerificationService {
	opsLog := log.New(os.Stdout, "", log.LstdFlags)
	return service.NewVerificationService(
		repos.Match, repos.Prediction,
		logger.NewPredictionLogger(appLog), opsLog,
		cfg.Verification.BatchSize,
	)
}

func runSweep(ctx context.Context) error {
	result, err := newVerificationService().Sweep(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Checked:  %d\n", result.Checked)
	fmt.Printf("Verified: %d\n", result.Verified)
	fmt.Printf("Skipped:  %d\n", result.Skipped)
	fmt.Printf("Errors:   %d\n", result.Errors)
	return nil
}

func printStats(ctx context.Context) error {
	days := windowDays
	if days <= 0 {
		days = cfg.Verification.AccuracyWindowDays
	}

	stats, err := newVerificationService().Accuracy(ctx, sportKey, time.Duration(days)*24*time.Hour)
	if err != nil {
		return err
	}

	scope := sportKey
	if scope == "" {
		scope = "all sports"
	}

	fmt.Printf("Track record for %s over %d days\n\n", scope, days)
	fmt.Printf("Total:     %d\n", stats.Total)
	fmt.Printf("Correct:   %d\n", stats.Correct)
	fmt.Printf("Incorrect: %d\n", stats.Incorrect)
	fmt.Printf("Pending:   %d\n", stats.Pending)
	fmt.Printf("Accuracy:  %.1f%%\n", stats.AccuracyPercentage)
	return nil
}
