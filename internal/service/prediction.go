package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/yourusername/odds-iq/internal/logger"
	"github.com/yourusername/odds-iq/internal/metrics"
	"github.com/yourusername/odds-iq/internal/models"
	"github.com/yourusername/odds-iq/internal/oddscore"
	"github.com/yourusername/odds-iq/internal/repository"
)

// ComponentSource supplies per-team IQ component scores for a match. When no
// source is configured, or a source cannot score a match, predictions fall
// back to market-implied probabilities.
type ComponentSource interface {
	ComponentsFor(ctx context.Context, match *models.Match) (home, away models.IQComponents, drawIQ *float64, err error)
}

// MarketView is the assembled market intelligence for a single match
type MarketView struct {
	Match     *models.Match             `json:"match"`
	Best      oddscore.BestPrices       `json:"best"`
	DrawPrice *oddscore.BestPrice       `json:"draw_price"`
	Boosted   oddscore.BestPrices       `json:"boosted"`
	Arbitrage *oddscore.ArbitrageResult `json:"arbitrage"`
}

// PredictionService computes and stores predictions for upcoming matches
type PredictionService struct {
	matchRepo      repository.MatchRepository
	oddsRepo       repository.OddsRepository
	predictionRepo repository.PredictionRepository
	components     ComponentSource
	policies       *oddscore.PolicyTable
	coreCfg        oddscore.Config
	cache          *gocache.Cache
	cacheMaxSize   int
	audit          *logger.PredictionLogger
	logger         *log.Logger
}

// NewPredictionService creates a new prediction service. The component
// source may be nil; a cacheMaxSize of zero leaves the cache unbounded.
func NewPredictionService(
	matchRepo repository.MatchRepository,
	oddsRepo repository.OddsRepository,
	predictionRepo repository.PredictionRepository,
	components ComponentSource,
	policies *oddscore.PolicyTable,
	coreCfg oddscore.Config,
	cacheTTL time.Duration,
	cacheMaxSize int,
	audit *logger.PredictionLogger,
	log *log.Logger,
) *PredictionService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}

	return &PredictionService{
		matchRepo:      matchRepo,
		oddsRepo:       oddsRepo,
		predictionRepo: predictionRepo,
		components:     components,
		policies:       policies,
		coreCfg:        coreCfg,
		cache:          gocache.New(cacheTTL, 2*cacheTTL),
		cacheMaxSize:   cacheMaxSize,
		audit:          audit,
		logger:         log,
	}
}

// MarketView assembles best prices, imputed draw, boosted prices and
// arbitrage status for a match from its latest snapshot set.
func (s *PredictionService) MarketView(ctx context.Context, matchID uuid.UUID) (*MarketView, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if err := s.attachLatestOdds(ctx, match); err != nil {
		return nil, err
	}

	policy := s.policies.Lookup(match.SportKey)
	best := oddscore.AggregateBestPrices(match, s.coreCfg.HouseBookmakerKey)
	draw := oddscore.ImputeDrawPrice(best, policy, s.coreCfg)

	display := best
	if draw != nil {
		display.Draw = draw
	}

	return &MarketView{
		Match:     match,
		Best:      best,
		DrawPrice: draw,
		Boosted:   oddscore.BoostPrices(display, s.coreCfg),
		Arbitrage: oddscore.DetectArbitrage(best, s.coreCfg),
	}, nil
}

// PredictUpcoming computes predictions for upcoming matches of a sport.
// Matches that already have a prediction are skipped.
func (s *PredictionService) PredictUpcoming(ctx context.Context, sportKey string, limit int) ([]*models.Prediction, error) {
	matches, err := s.matchRepo.GetUpcoming(ctx, sportKey, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming matches: %w", err)
	}
	metrics.UpdateTrackedMatches(float64(len(matches)))

	predictions := make([]*models.Prediction, 0, len(matches))
	for _, match := range matches {
		prediction, err := s.PredictMatch(ctx, match)
		if err != nil {
			if errors.Is(err, models.ErrNoOddsData) {
				continue
			}
			s.logger.Printf("Prediction failed for match %s: %v", match.ID, err)
			continue
		}
		predictions = append(predictions, prediction)
	}

	return predictions, nil
}

// PredictMatch computes and stores a prediction for one match. A match
// receives exactly one prediction; repeat calls return the stored one,
// served from the cache when possible to spare the database round trip.
func (s *PredictionService) PredictMatch(ctx context.Context, match *models.Match) (*models.Prediction, error) {
	startTime := time.Now()

	// A prediction is immutable once stored, so the match ID is a safe key.
	if cached, found := s.cache.Get(match.ID.String()); found {
		metrics.RecordCacheHit()
		return cached.(*models.Prediction), nil
	}
	metrics.RecordCacheMiss()

	if existing, err := s.predictionRepo.GetByMatchID(ctx, match.ID); err == nil {
		s.cachePrediction(existing)
		return existing, nil
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	snapshots, err := s.oddsRepo.GetLatestForMatch(ctx, match.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load odds for match %s: %w", match.ID, err)
	}
	if len(snapshots) == 0 {
		return nil, models.ErrNoOddsData
	}
	match.Bookmakers = models.GroupSnapshots(snapshots)

	result := s.score(ctx, match)
	if result == nil {
		return nil, models.ErrNoOddsData
	}

	prediction := &models.Prediction{
		ID:               uuid.New(),
		MatchID:          match.ID,
		SportKey:         match.SportKey,
		PredictedOutcome: result.Outcome,
		PredictedTeam:    predictedTeam(match, result.Outcome),
		WinProbability:   result.WinProbability,
		Confidence:       result.Confidence,
		CalculatedAt:     time.Now().UTC(),
	}

	if err := s.predictionRepo.Insert(ctx, prediction); err != nil {
		if errors.Is(err, models.ErrDuplicateKey) {
			// Lost the race to another worker; use the stored prediction
			stored, err := s.predictionRepo.GetByMatchID(ctx, match.ID)
			if err != nil {
				return nil, err
			}
			s.cachePrediction(stored)
			return stored, nil
		}
		return nil, fmt.Errorf("failed to store prediction: %w", err)
	}

	s.cachePrediction(prediction)

	metrics.RecordPredictionComputed(match.SportKey, string(prediction.PredictedOutcome), prediction.Confidence)
	metrics.RecordWinProbability(match.SportKey, prediction.WinProbability)
	metrics.RecordPredictionDuration(time.Since(startTime).Seconds())

	if s.audit != nil {
		s.audit.LogPredictionStored(
			match.ID.String(), match.SportKey,
			string(prediction.PredictedOutcome), prediction.PredictedTeam,
			prediction.Confidence, prediction.WinProbability, prediction.CalculatedAt,
		)
	}

	return prediction, nil
}

// score runs IQ fusion when component scores are available and pass the
// reconstruction self-check, and market-only scoring otherwise.
func (s *PredictionService) score(ctx context.Context, match *models.Match) *oddscore.PredictionResult {
	policy := s.policies.Lookup(match.SportKey)
	best := oddscore.AggregateBestPrices(match, s.coreCfg.HouseBookmakerKey)
	draw := oddscore.ImputeDrawPrice(best, policy, s.coreCfg)

	if s.components != nil {
		home, away, drawIQ, err := s.components.ComponentsFor(ctx, match)
		if err == nil && oddscore.CheckIQReconstruction(home) && oddscore.CheckIQReconstruction(away) {
			return oddscore.PredictFromIQ(oddscore.FuseIQ(home), oddscore.FuseIQ(away), drawIQ, policy, s.coreCfg)
		}
		if err != nil {
			s.logger.Printf("Component source failed for match %s, using market scoring: %v", match.ID, err)
		} else {
			s.logger.Printf("Component reconstruction check failed for match %s, using market scoring", match.ID)
		}
	}

	return oddscore.PredictFromMarket(best, draw, policy, s.coreCfg)
}

// attachLatestOdds loads the latest snapshot set onto the match
func (s *PredictionService) attachLatestOdds(ctx context.Context, match *models.Match) error {
	snapshots, err := s.oddsRepo.GetLatestForMatch(ctx, match.ID)
	if err != nil {
		return fmt.Errorf("failed to load odds for match %s: %w", match.ID, err)
	}
	if len(snapshots) == 0 {
		return models.ErrNoOddsData
	}
	match.Bookmakers = models.GroupSnapshots(snapshots)
	return nil
}

// cachePrediction stores a prediction for later lookups, honoring the
// configured size cap. New entries are dropped once the cap is reached;
// expiry frees the space again.
func (s *PredictionService) cachePrediction(prediction *models.Prediction) {
	key := prediction.MatchID.String()
	if s.cacheMaxSize > 0 && s.cache.ItemCount() >= s.cacheMaxSize {
		if _, found := s.cache.Get(key); !found {
			return
		}
	}
	s.cache.Set(key, prediction, gocache.DefaultExpiration)
}

// predictedTeam resolves the display name for a predicted outcome
func predictedTeam(match *models.Match, outcome models.Outcome) string {
	switch outcome {
	case models.OutcomeHome:
		return match.HomeTeam
	case models.OutcomeAway:
		return match.AwayTeam
	default:
		return ""
	}
}
