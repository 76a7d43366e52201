package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/odds-iq/internal/models"
)

// PriceMovement summarizes how one bookmaker's quote for an outcome moved
// over the sampled window.
type PriceMovement struct {
	BookmakerKey   string  `json:"bookmaker_key"`
	BookmakerTitle string  `json:"bookmaker_title"`
	OutcomeName    string  `json:"outcome_name"`
	OpeningPrice   float64 `json:"opening_price"`
	LatestPrice    float64 `json:"latest_price"`
	Change         float64 `json:"change"`
}

// OddsMovement summarizes the stored snapshot history for a match between
// start and end, one entry per bookmaker/outcome pair in first-seen order.
func (s *PredictionService) OddsMovement(ctx context.Context, matchID uuid.UUID, start, end time.Time) ([]PriceMovement, error) {
	snapshots, err := s.oddsRepo.GetTimeSeriesForMatch(ctx, matchID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load odds history for match %s: %w", matchID, err)
	}
	if len(snapshots) == 0 {
		return nil, models.ErrNoOddsData
	}

	type slot struct {
		bookmaker string
		outcome   string
	}
	index := make(map[slot]int)
	var movements []PriceMovement

	// The series arrives in time order, so the first row per pair is the
	// opening price and the last one seen is the latest.
	for _, snap := range snapshots {
		key := slot{bookmaker: snap.BookmakerKey, outcome: snap.OutcomeName}
		if i, ok := index[key]; ok {
			movements[i].LatestPrice = snap.Price
			movements[i].Change = snap.Price - movements[i].OpeningPrice
			continue
		}
		index[key] = len(movements)
		movements = append(movements, PriceMovement{
			BookmakerKey:   snap.BookmakerKey,
			BookmakerTitle: snap.BookmakerTitle,
			OutcomeName:    snap.OutcomeName,
			OpeningPrice:   snap.Price,
			LatestPrice:    snap.Price,
		})
	}

	return movements, nil
}
