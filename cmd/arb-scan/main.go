// Package main provides a one-shot arbitrage scanner.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

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
	limit      int
	minProfit  float64

	appLog *logrus.Logger
	cfg    *config.Config
	db     *database.DB
	repos  *repository.Repositories
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.Flags().StringVarP(&sportKey, "sport", "s", "", "Restrict to one sport key (empty for all configured sports)")
	rootCmd.Flags().IntVarP(&limit, "limit", "l", 200, "Maximum upcoming matches per sport")
	rootCmd.Flags().Float64VarP(&minProfit, "min-profit", "p", 0.0, "Minimum profit margin percent to report")

	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "arb-scan",
	Short: "Scan stored odds for cross-bookmaker arbitrage",
	Long:  `Scans the latest odds snapshots of upcoming matches and reports combinations where backing every outcome at its best price locks in a profit.`,
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
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("arb-scan %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
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

func runScan(ctx context.Context) error {
	opsLog := log.New(os.Stdout, "", log.LstdFlags)
	svc := service.NewArbitrageService(
		repos.Match, repos.Odds,
		service.CoreConfigFrom(cfg),
		logger.NewPredictionLogger(appLog), opsLog,
	)

	sports := cfg.OddsFeed.SportKeys
	if sportKey != "" {
		sports = []string{sportKey}
	}

	total := 0
	for _, key := range sports {
		finds, err := svc.Scan(ctx, key, limit, minProfit)
		if err != nil {
			return fmt.Errorf("arbitrage scan failed for %s: %w", key, err)
		}

		for _, find := range finds {
			fmt.Printf("%s vs %s (%s)\n", find.Match.HomeTeam, find.Match.AwayTeam, find.Match.SportKey)
			fmt.Printf("  sum=%.4f margin=%.2f%% bookmakers=%d start=%s\n",
				find.Result.ArbSum, find.Result.ProfitMarginPercent,
				find.Result.BookmakerCount, find.Match.ScheduledStart.Format("2006-01-02 15:04"))
		}
		total += len(finds)
	}

	fmt.Printf("\nFound %d arbitrage opportunities\n", total)
	return nil
}
