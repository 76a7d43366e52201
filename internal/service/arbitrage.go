package service

import (
	"context"
	"fmt"
	"log"

	"github.com/yourusername/odds-iq/internal/logger"
	"github.com/yourusername/odds-iq/internal/metrics"
	"github.com/yourusername/odds-iq/internal/models"
	"github.com/yourusername/odds-iq/internal/oddscore"
	"github.com/yourusername/odds-iq/internal/repository"
)

// ArbitrageFind pairs a match with its arbitrage result
type ArbitrageFind struct {
	Match  *models.Match             `json:"match"`
	Result *oddscore.ArbitrageResult `json:"result"`
}

// ArbitrageService scans tracked matches for cross-bookmaker arbitrage
type ArbitrageService struct {
	matchRepo repository.MatchRepository
	oddsRepo  repository.OddsRepository
	coreCfg   oddscore.Config
	audit     *logger.PredictionLogger
	logger    *log.Logger
}

// NewArbitrageService creates a new arbitrage scanner
func NewArbitrageService(
	matchRepo repository.MatchRepository,
	oddsRepo repository.OddsRepository,
	coreCfg oddscore.Config,
	audit *logger.PredictionLogger,
	log *log.Logger,
) *ArbitrageService {
	return &ArbitrageService{
		matchRepo: matchRepo,
		oddsRepo:  oddsRepo,
		coreCfg:   coreCfg,
		audit:     audit,
		logger:    log,
	}
}

// Scan checks upcoming matches of a sport for arbitrage opportunities.
// Only real quoted prices participate; imputed draw prices are not bookable
// and never enter the arbitrage sum.
func (s *ArbitrageService) Scan(ctx context.Context, sportKey string, limit int, minProfitPercent float64) ([]ArbitrageFind, error) {
	matches, err := s.matchRepo.GetUpcoming(ctx, sportKey, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming matches: %w", err)
	}

	var finds []ArbitrageFind
	for _, match := range matches {
		result, err := s.scanMatch(ctx, match)
		if err != nil {
			s.logger.Printf("Arbitrage scan failed for match %s: %v", match.ID, err)
			continue
		}
		if result == nil || !result.HasArbitrage {
			continue
		}
		if result.ProfitMarginPercent < minProfitPercent {
			continue
		}

		finds = append(finds, ArbitrageFind{Match: match, Result: result})
		metrics.RecordArbitrageOpportunity(match.SportKey)

		if s.audit != nil {
			s.audit.LogArbitrageFound(match.ID.String(), match.SportKey, result.ArbSum, result.ProfitMarginPercent, result.BookmakerCount)
		}
	}

	return finds, nil
}

// scanMatch computes the arbitrage result for one match's latest snapshots
func (s *ArbitrageService) scanMatch(ctx context.Context, match *models.Match) (*oddscore.ArbitrageResult, error) {
	snapshots, err := s.oddsRepo.GetLatestForMatch(ctx, match.ID)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, nil
	}
	match.Bookmakers = models.GroupSnapshots(snapshots)

	best := oddscore.AggregateBestPrices(match, s.coreCfg.HouseBookmakerKey)
	return oddscore.DetectArbitrage(best, s.coreCfg), nil
}
