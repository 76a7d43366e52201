// Package main provides the prediction CLI.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/odds-iq/internal/config"
	"github.com/yourusername/odds-iq/internal/database"
	"github.com/yourusername/odds-iq/internal/logger"
	"github.com/yourusername/odds-iq/internal/oddscore"
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
	configFile   string
	sportKey     string
	limit        int
	historyHours int

	appLog *logrus.Logger
	cfg    *config.Config
	db     *database.DB
	repos  *repository.Repositories
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.Flags().StringVarP(&sportKey, "sport", "s", "", "Restrict to one sport key (empty for all configured sports)")
	rootCmd.Flags().IntVarP(&limit, "limit", "l", 100, "Maximum upcoming matches per sport")
	historyCmd.Flags().IntVarP(&historyHours, "hours", "w", 24, "History window in hours")

	rootCmd.AddCommand(marketCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "predictor",
	Short: "Compute and store predictions for upcoming matches",
	Long:  `Assembles best prices from stored odds snapshots and computes one prediction per upcoming match.`,
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
		return runPredictions(cmd.Context())
	},
}

var marketCmd = &cobra.Command{
	Use:   "market <match-id>",
	Short: "Show the assembled market view for one match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matchID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid match ID: %w", err)
		}
		return showMarketView(cmd.Context(), matchID)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history <match-id>",
	Short: "Show how bookmaker prices moved for one match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matchID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid match ID: %w", err)
		}
		return showOddsHistory(cmd.Context(), matchID)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("predictor %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
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

func newPredictionService() *service.PredictionService {
	opsLog := log.New(os.Stdout, "", log.LstdFlags)
	return service.NewPredictionService(
		repos.Match, repos.Odds, repos.Prediction, nil,
		service.PolicyTableFrom(cfg), service.CoreConfigFrom(cfg),
		cfg.Scoring.CacheTTL(), cfg.Scoring.CacheMaxSize, logger.NewPredictionLogger(appLog), opsLog,
	)
}

func runPredictions(ctx context.Context) error {
	svc := newPredictionService()

	sports := cfg.OddsFeed.SportKeys
	if sportKey != "" {
		sports = []string{sportKey}
	}

	total := 0
	for _, key := range sports {
		predictions, err := svc.PredictUpcoming(ctx, key, limit)
		if err != nil {
			return fmt.Errorf("prediction run failed for %s: %w", key, err)
		}
		total += len(predictions)

		for _, p := range predictions {
			fmt.Printf("%s  %-8s %-24s win=%.1f%% confidence=%s\n",
				p.MatchID, p.PredictedOutcome, p.PredictedTeam, p.WinProbability, p.Confidence)
		}
	}

	fmt.Printf("\nStored %d predictions\n", total)
	return nil
}

func showMarketView(ctx context.Context, matchID uuid.UUID) error {
	svc := newPredictionService()

	view, err := svc.MarketView(ctx, matchID)
	if err != nil {
		return err
	}

	fmt.Printf("%s vs %s (%s)\n\n", view.Match.HomeTeam, view.Match.AwayTeam, view.Match.SportKey)
	printSlot("home", view.Best.Home, view.Boosted.Home)
	printSlot("draw", bestDraw(view), view.Boosted.Draw)
	printSlot("away", view.Best.Away, view.Boosted.Away)

	if view.Arbitrage != nil && view.Arbitrage.HasArbitrage {
		fmt.Printf("\nArbitrage: sum=%.4f margin=%.2f%% bookmakers=%d\n",
			view.Arbitrage.ArbSum, view.Arbitrage.ProfitMarginPercent, view.Arbitrage.BookmakerCount)
	}
	return nil
}

func showOddsHistory(ctx context.Context, matchID uuid.UUID) error {
	svc := newPredictionService()

	end := time.Now()
	start := end.Add(-time.Duration(historyHours) * time.Hour)

	movements, err := svc.OddsMovement(ctx, matchID, start, end)
	if err != nil {
		return err
	}

	fmt.Printf("Price movement over the last %dh:\n\n", historyHours)
	for _, m := range movements {
		fmt.Printf("%-14s %-24s open=%.2f latest=%.2f change=%+.2f\n",
			m.BookmakerKey, m.OutcomeName, m.OpeningPrice, m.LatestPrice, m.Change)
	}
	return nil
}

func bestDraw(view *service.MarketView) *oddscore.BestPrice {
	if view.Best.Draw != nil {
		return view.Best.Draw
	}
	return view.DrawPrice
}

func printSlot(name string, best, boosted *oddscore.BestPrice) {
	if best == nil {
		fmt.Printf("%-5s  no price\n", name)
		return
	}
	line := fmt.Sprintf("%-5s  %.2f (%s)", name, best.Price, best.Bookmaker)
	if boosted != nil {
		line += fmt.Sprintf("  boosted %.2f", boosted.Price)
	}
	fmt.Println(line)
}
