package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/yourusername/odds-iq/internal/models"
)

func TestOddsMovementSummarizesSeries(t *testing.T) {
	matchRepo := new(MockMatchRepository)
	oddsRepo := new(MockOddsRepository)
	predictionRepo := new(MockPredictionRepository)

	matchID := uuid.New()
	base := time.Now().Add(-6 * time.Hour)
	series := []*models.OddsSnapshot{
		{Time: base, MatchID: matchID, BookmakerKey: "bet365", BookmakerTitle: "Bet365", OutcomeName: "Arsenal", Price: 2.30},
		{Time: base, MatchID: matchID, BookmakerKey: "bet365", BookmakerTitle: "Bet365", OutcomeName: "Chelsea", Price: 3.20},
		{Time: base.Add(2 * time.Hour), MatchID: matchID, BookmakerKey: "bet365", BookmakerTitle: "Bet365", OutcomeName: "Arsenal", Price: 2.15},
		{Time: base.Add(4 * time.Hour), MatchID: matchID, BookmakerKey: "bet365", BookmakerTitle: "Bet365", OutcomeName: "Arsenal", Price: 2.10},
		{Time: base.Add(4 * time.Hour), MatchID: matchID, BookmakerKey: "bet365", BookmakerTitle: "Bet365", OutcomeName: "Chelsea", Price: 3.40},
	}
	oddsRepo.On("GetTimeSeriesForMatch", mock.Anything, matchID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(series, nil)

	svc := newPredictionService(matchRepo, oddsRepo, predictionRepo, nil)

	movements, err := svc.OddsMovement(context.Background(), matchID, base, base.Add(6*time.Hour))
	assert.NoError(t, err)
	assert.Len(t, movements, 2)

	assert.Equal(t, "Arsenal", movements[0].OutcomeName)
	assert.Equal(t, 2.30, movements[0].OpeningPrice)
	assert.Equal(t, 2.10, movements[0].LatestPrice)
	assert.InDelta(t, -0.20, movements[0].Change, 0.0001)

	assert.Equal(t, "Chelsea", movements[1].OutcomeName)
	assert.Equal(t, 3.20, movements[1].OpeningPrice)
	assert.Equal(t, 3.40, movements[1].LatestPrice)
	assert.InDelta(t, 0.20, movements[1].Change, 0.0001)
}

func TestOddsMovementWithoutHistory(t *testing.T) {
	matchRepo := new(MockMatchRepository)
	oddsRepo := new(MockOddsRepository)
	predictionRepo := new(MockPredictionRepository)

	matchID := uuid.New()
	oddsRepo.On("GetTimeSeriesForMatch", mock.Anything, matchID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return([]*models.OddsSnapshot{}, nil)

	svc := newPredictionService(matchRepo, oddsRepo, predictionRepo, nil)

	_, err := svc.OddsMovement(context.Background(), matchID, time.Now().Add(-time.Hour), time.Now())
	assert.ErrorIs(t, err, models.ErrNoOddsData)
}
