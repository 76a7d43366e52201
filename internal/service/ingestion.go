package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/odds-iq/internal/datasource"
	"github.com/yourusername/odds-iq/internal/metrics"
	"github.com/yourusername/odds-iq/internal/models"
	"github.com/yourusername/odds-iq/internal/repository"
)

// IngestionService polls the odds feed and persists matches and snapshots
type IngestionService struct {
	source    datasource.DataSource
	matchRepo repository.MatchRepository
	oddsRepo  repository.OddsRepository
	validator *QuoteValidator
	metrics   *IngestionMetrics
	logger    *log.Logger
}

// NewIngestionService creates a new ingestion service
func NewIngestionService(
	source datasource.DataSource,
	matchRepo repository.MatchRepository,
	oddsRepo repository.OddsRepository,
	validator *QuoteValidator,
	logger *log.Logger,
) *IngestionService {
	return &IngestionService{
		source:    source,
		matchRepo: matchRepo,
		oddsRepo:  oddsRepo,
		validator: validator,
		metrics:   NewIngestionMetrics(),
		logger:    logger,
	}
}

// IngestOdds fetches current odds for one sport and persists them
func (s *IngestionService) IngestOdds(ctx context.Context, sportKey string) error {
	startTime := time.Now()

	events, err := s.source.FetchOdds(ctx, sportKey)
	if err != nil {
		s.metrics.RecordError()
		metrics.RecordFeedFetchError()
		return fmt.Errorf("failed to fetch odds for %s: %w", sportKey, err)
	}
	metrics.RecordFeedFetch(time.Since(startTime).Seconds())

	s.metrics.mu.Lock()
	s.metrics.TotalEvents += len(events)
	s.metrics.mu.Unlock()

	for i := range events {
		if err := s.processEvent(ctx, &events[i]); err != nil {
			s.metrics.RecordError()
			s.logger.Printf("Error processing event %s: %v", events[i].SourceID, err)
			continue
		}
	}

	s.metrics.mu.Lock()
	s.metrics.Duration = time.Since(startTime)
	s.metrics.mu.Unlock()

	s.logger.Printf("Ingested odds for %s: %s", sportKey, s.metrics.String())
	return nil
}

// IngestAllSports runs odds ingestion across the configured sport keys.
// A failing sport does not stop the remaining ones.
func (s *IngestionService) IngestAllSports(ctx context.Context, sportKeys []string) error {
	var firstErr error
	for _, key := range sportKeys {
		if err := s.IngestOdds(ctx, key); err != nil {
			s.logger.Printf("Ingestion failed for sport %s: %v", key, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// IngestScores fetches recent results and applies final scores to matches
func (s *IngestionService) IngestScores(ctx context.Context, sportKey string, daysBack int) error {
	scores, err := s.source.FetchScores(ctx, sportKey, daysBack)
	if err != nil {
		s.metrics.RecordError()
		metrics.RecordFeedFetchError()
		return fmt.Errorf("failed to fetch scores for %s: %w", sportKey, err)
	}

	for _, score := range scores {
		if !score.Completed || score.HomeScore == nil || score.AwayScore == nil {
			continue
		}

		match, err := s.matchRepo.GetBySourceID(ctx, score.SourceID)
		if err != nil {
			// Results can arrive for matches the poller never tracked
			continue
		}
		if match.HasFinalScore() {
			continue
		}

		if err := s.matchRepo.SetFinalScore(ctx, match.ID, *score.HomeScore, *score.AwayScore); err != nil {
			s.metrics.RecordError()
			s.logger.Printf("Failed to apply final score for match %s: %v", match.ID, err)
			continue
		}
		s.metrics.RecordScoreApplied()
	}

	return nil
}

// processEvent validates one feed event and persists its match and snapshots
func (s *IngestionService) processEvent(ctx context.Context, ev *datasource.EventData) error {
	if validationErrors := s.validator.ValidateEvent(ev); len(validationErrors) > 0 {
		s.metrics.RecordValidationError()
		return fmt.Errorf("event validation failed: %v", validationErrors)
	}

	// The feed can keep listing an event for a while after its result
	// settled; a settled match takes no further odds.
	existing, err := s.matchRepo.GetBySourceID(ctx, ev.SourceID)
	if err == nil && existing.Completed {
		return nil
	}
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("failed to look up match %s: %w", ev.SourceID, err)
	}

	match := &models.Match{
		ID:             uuid.New(),
		SourceID:       ev.SourceID,
		SportKey:       ev.SportKey,
		LeagueName:     ev.SportTitle,
		HomeTeam:       ev.HomeTeam,
		AwayTeam:       ev.AwayTeam,
		ScheduledStart: ev.CommenceTime,
	}

	if err := s.matchRepo.Upsert(ctx, match); err != nil {
		return fmt.Errorf("failed to upsert match: %w", err)
	}
	s.metrics.RecordMatch()
	metrics.RecordMatchesUpserted(1)

	snapshots := s.buildSnapshots(match.ID, ev)
	if len(snapshots) == 0 {
		return nil
	}

	if err := s.oddsRepo.InsertBatch(ctx, snapshots); err != nil {
		return fmt.Errorf("failed to insert odds snapshots: %w", err)
	}
	s.metrics.RecordSnapshots(len(snapshots))
	metrics.RecordOddsSnapshots(len(snapshots))

	return nil
}

// buildSnapshots flattens an event's bookmaker quotes into snapshot rows,
// keeping only outcomes that pass price validation.
func (s *IngestionService) buildSnapshots(matchID uuid.UUID, ev *datasource.EventData) []*models.OddsSnapshot {
	var rows []*models.OddsSnapshot
	for _, quote := range ev.Bookmakers {
		for _, oc := range s.validator.UsableOutcomes(ev.SourceID, quote) {
			rows = append(rows, &models.OddsSnapshot{
				Time:           ev.FetchedAt,
				MatchID:        matchID,
				BookmakerKey:   quote.Key,
				BookmakerTitle: quote.Title,
				OutcomeName:    oc.Name,
				Price:          oc.Price,
			})
		}
	}
	return rows
}

// GetMetrics returns current ingestion metrics
func (s *IngestionService) GetMetrics() *IngestionMetrics {
	return s.metrics
}

// ResetMetrics resets ingestion metrics
func (s *IngestionService) ResetMetrics() {
	s.metrics.Reset()
}
