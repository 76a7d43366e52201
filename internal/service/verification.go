package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/odds-iq/internal/logger"
	"github.com/yourusername/odds-iq/internal/metrics"
	"github.com/yourusername/odds-iq/internal/models"
	"github.com/yourusername/odds-iq/internal/oddscore"
	"github.com/yourusername/odds-iq/internal/repository"
)

// VerificationService settles pending predictions against final results and
// maintains the public track record.
type VerificationService struct {
	matchRepo      repository.MatchRepository
	predictionRepo repository.PredictionRepository
	audit          *logger.PredictionLogger
	logger         *log.Logger
	batchSize      int
}

// NewVerificationService creates a new verification service
func NewVerificationService(
	matchRepo repository.MatchRepository,
	predictionRepo repository.PredictionRepository,
	audit *logger.PredictionLogger,
	log *log.Logger,
	batchSize int,
) *VerificationService {
	if batchSize <= 0 {
		batchSize = 200
	}

	return &VerificationService{
		matchRepo:      matchRepo,
		predictionRepo: predictionRepo,
		audit:          audit,
		logger:         log,
		batchSize:      batchSize,
	}
}

// SweepResult summarizes one verification sweep
type SweepResult struct {
	Checked  int
	Verified int
	Skipped  int
	Errors   int
}

// Sweep verifies pending predictions whose matches have finished. Matches
// not yet settled stay pending for the next sweep.
func (s *VerificationService) Sweep(ctx context.Context) (*SweepResult, error) {
	startTime := time.Now()
	result := &SweepResult{}

	pending, err := s.predictionRepo.GetPending(ctx, s.batchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending predictions: %w", err)
	}
	metrics.UpdatePendingPredictions(float64(len(pending)))

	if len(pending) == 0 {
		metrics.RecordVerificationSweepDuration(time.Since(startTime).Seconds())
		return result, nil
	}

	// A match settles only after its prediction was made, so one query for
	// matches completed since the oldest pending prediction covers the batch.
	earliest := pending[0].CalculatedAt
	for _, prediction := range pending[1:] {
		if prediction.CalculatedAt.Before(earliest) {
			earliest = prediction.CalculatedAt
		}
	}

	completed, err := s.matchRepo.GetCompletedSince(ctx, earliest)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed matches: %w", err)
	}
	matchesByID := make(map[uuid.UUID]*models.Match, len(completed))
	for _, match := range completed {
		matchesByID[match.ID] = match
	}

	for _, prediction := range pending {
		result.Checked++

		match, ok := matchesByID[prediction.MatchID]
		if !ok {
			result.Skipped++
			continue
		}

		if err := s.verifyOne(ctx, prediction, match); err != nil {
			if errors.Is(err, models.ErrMatchNotComplete) || errors.Is(err, models.ErrNoFinalScore) {
				result.Skipped++
				continue
			}
			result.Errors++
			s.logger.Printf("Failed to verify prediction %s: %v", prediction.ID, err)
			continue
		}
		result.Verified++
	}

	metrics.RecordVerificationSweepDuration(time.Since(startTime).Seconds())
	s.logger.Printf("Verification sweep: checked=%d verified=%d skipped=%d errors=%d", result.Checked, result.Verified, result.Skipped, result.Errors)
	return result, nil
}

// verifyOne settles a single prediction against its finished match
func (s *VerificationService) verifyOne(ctx context.Context, prediction *models.Prediction, match *models.Match) error {
	verification, err := oddscore.VerifyPrediction(prediction, match)
	if err != nil {
		return err
	}

	oddscore.ApplyVerification(prediction, verification, time.Now().UTC())

	if err := s.predictionRepo.ApplyVerification(ctx, prediction); err != nil {
		return fmt.Errorf("failed to store verification: %w", err)
	}
	metrics.RecordVerification()

	if s.audit != nil && match.HomeScore != nil && match.AwayScore != nil {
		s.audit.LogPredictionVerified(
			match.ID.String(),
			string(prediction.PredictedOutcome), string(verification.ActualWinner),
			verification.WasCorrect, *match.HomeScore, *match.AwayScore,
		)
	}
	return nil
}

// Accuracy computes the track record for a sport over a window. An empty
// sport key covers all sports; a zero window covers all time.
func (s *VerificationService) Accuracy(ctx context.Context, sportKey string, window time.Duration) (models.AccuracyStats, error) {
	since := time.Time{}
	if window > 0 {
		since = time.Now().Add(-window)
	}

	predictions, err := s.predictionRepo.GetBySportSince(ctx, sportKey, since)
	if err != nil {
		return models.AccuracyStats{}, fmt.Errorf("failed to load predictions: %w", err)
	}

	stats := oddscore.ComputeAccuracy(predictions)

	scope := sportKey
	if scope == "" {
		scope = "all"
	}
	metrics.UpdateAccuracy(scope, stats.AccuracyPercentage)

	if s.audit != nil {
		s.audit.LogAccuracySnapshot(scope, stats.Total, stats.Correct, stats.Incorrect, stats.Pending, stats.AccuracyPercentage)
	}
	return stats, nil
}
