package service

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/yourusername/odds-iq/internal/datasource"
	"github.com/yourusername/odds-iq/internal/models"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func sampleEvent() datasource.EventData {
	return datasource.EventData{
		SourceID:     "evt-1",
		SportKey:     "soccer_epl",
		SportTitle:   "EPL",
		CommenceTime: time.Now().Add(24 * time.Hour),
		HomeTeam:     "Arsenal",
		AwayTeam:     "Chelsea",
		FetchedAt:    time.Now().UTC(),
		Bookmakers: []datasource.BookmakerQuote{
			{
				Key:   "bet365",
				Title: "Bet365",
				Outcomes: []datasource.OutcomeQuote{
					{Name: "Arsenal", Price: 2.10},
					{Name: "Draw", Price: 3.40},
					{Name: "Chelsea", Price: 3.60},
				},
			},
			{
				Key:   "bad_feed",
				Title: "Bad Feed",
				Outcomes: []datasource.OutcomeQuote{
					{Name: "Arsenal", Price: 0.0},
				},
			},
		},
	}
}

func TestIngestOddsPersistsMatchAndSnapshots(t *testing.T) {
	source := new(MockDataSource)
	matchRepo := new(MockMatchRepository)
	oddsRepo := new(MockOddsRepository)

	source.On("FetchOdds", mock.Anything, "soccer_epl").Return([]datasource.EventData{sampleEvent()}, nil)
	matchRepo.On("GetBySourceID", mock.Anything, "evt-1").Return(nil, models.ErrNotFound)
	matchRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*models.Match")).Return(nil)
	oddsRepo.On("InsertBatch", mock.Anything, mock.AnythingOfType("[]*models.OddsSnapshot")).Return(nil)

	svc := NewIngestionService(source, matchRepo, oddsRepo, NewQuoteValidator(nil), testLogger())

	err := svc.IngestOdds(context.Background(), "soccer_epl")
	assert.NoError(t, err)

	matchRepo.AssertCalled(t, "Upsert", mock.Anything, mock.MatchedBy(func(m *models.Match) bool {
		return m.SourceID == "evt-1" && m.HomeTeam == "Arsenal" && m.SportKey == "soccer_epl"
	}))

	// The zero-priced quote must be filtered out before persistence
	oddsRepo.AssertCalled(t, "InsertBatch", mock.Anything, mock.MatchedBy(func(rows []*models.OddsSnapshot) bool {
		if len(rows) != 3 {
			return false
		}
		for _, row := range rows {
			if row.BookmakerKey == "bad_feed" {
				return false
			}
		}
		return true
	}))

	stats := svc.GetMetrics().Snapshot()
	assert.Equal(t, 1, stats.TotalEvents)
	assert.Equal(t, 1, stats.MatchesUpserted)
	assert.Equal(t, 3, stats.SnapshotRows)
}

func TestIngestOddsSkipsInvalidEvents(t *testing.T) {
	source := new(MockDataSource)
	matchRepo := new(MockMatchRepository)
	oddsRepo := new(MockOddsRepository)

	event := sampleEvent()
	event.HomeTeam = ""
	source.On("FetchOdds", mock.Anything, "soccer_epl").Return([]datasource.EventData{event}, nil)

	svc := NewIngestionService(source, matchRepo, oddsRepo, NewQuoteValidator(nil), testLogger())

	err := svc.IngestOdds(context.Background(), "soccer_epl")
	assert.NoError(t, err)

	matchRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	assert.Equal(t, 1, svc.GetMetrics().Snapshot().ValidationErrors)
}

func TestIngestOddsLeavesSettledMatchesAlone(t *testing.T) {
	source := new(MockDataSource)
	matchRepo := new(MockMatchRepository)
	oddsRepo := new(MockOddsRepository)

	// The feed still lists the event after the scores sync settled it
	home, away := 2, 1
	settled := &models.Match{
		ID:        uuid.New(),
		SourceID:  "evt-1",
		Completed: true,
		HomeScore: &home,
		AwayScore: &away,
	}
	source.On("FetchOdds", mock.Anything, "soccer_epl").Return([]datasource.EventData{sampleEvent()}, nil)
	matchRepo.On("GetBySourceID", mock.Anything, "evt-1").Return(settled, nil)

	svc := NewIngestionService(source, matchRepo, oddsRepo, NewQuoteValidator(nil), testLogger())

	err := svc.IngestOdds(context.Background(), "soccer_epl")
	assert.NoError(t, err)

	matchRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	oddsRepo.AssertNotCalled(t, "InsertBatch", mock.Anything, mock.Anything)
	assert.Equal(t, 2, *settled.HomeScore)
	assert.True(t, settled.Completed)
}

func TestIngestAllSportsContinuesAfterFailure(t *testing.T) {
	source := new(MockDataSource)
	matchRepo := new(MockMatchRepository)
	oddsRepo := new(MockOddsRepository)

	source.On("FetchOdds", mock.Anything, "soccer_epl").Return(nil, assert.AnError)
	source.On("FetchOdds", mock.Anything, "basketball_nba").Return([]datasource.EventData{}, nil)

	svc := NewIngestionService(source, matchRepo, oddsRepo, NewQuoteValidator(nil), testLogger())

	err := svc.IngestAllSports(context.Background(), []string{"soccer_epl", "basketball_nba"})
	assert.Error(t, err)

	source.AssertCalled(t, "FetchOdds", mock.Anything, "basketball_nba")
}

func TestIngestScoresAppliesFinalScores(t *testing.T) {
	source := new(MockDataSource)
	matchRepo := new(MockMatchRepository)
	oddsRepo := new(MockOddsRepository)

	matchID := uuid.New()
	home, away := 2, 1
	source.On("FetchScores", mock.Anything, "soccer_epl", 3).Return([]datasource.ScoreData{
		{SourceID: "evt-1", Completed: true, HomeTeam: "Arsenal", AwayTeam: "Chelsea", HomeScore: &home, AwayScore: &away},
		{SourceID: "evt-2", Completed: false},
	}, nil)
	matchRepo.On("GetBySourceID", mock.Anything, "evt-1").Return(&models.Match{ID: matchID, SourceID: "evt-1"}, nil)
	matchRepo.On("SetFinalScore", mock.Anything, matchID, 2, 1).Return(nil)

	svc := NewIngestionService(source, matchRepo, oddsRepo, NewQuoteValidator(nil), testLogger())

	err := svc.IngestScores(context.Background(), "soccer_epl", 3)
	assert.NoError(t, err)

	matchRepo.AssertCalled(t, "SetFinalScore", mock.Anything, matchID, 2, 1)
	matchRepo.AssertNotCalled(t, "GetBySourceID", mock.Anything, "evt-2")
	assert.Equal(t, 1, svc.GetMetrics().Snapshot().ScoresApplied)
}

func TestIngestScoresSkipsAlreadySettledMatches(t *testing.T) {
	source := new(MockDataSource)
	matchRepo := new(MockMatchRepository)
	oddsRepo := new(MockOddsRepository)

	home, away := 2, 1
	source.On("FetchScores", mock.Anything, "soccer_epl", 1).Return([]datasource.ScoreData{
		{SourceID: "evt-1", Completed: true, HomeScore: &home, AwayScore: &away},
	}, nil)
	settled := &models.Match{ID: uuid.New(), SourceID: "evt-1", Completed: true, HomeScore: &home, AwayScore: &away}
	matchRepo.On("GetBySourceID", mock.Anything, "evt-1").Return(settled, nil)

	svc := NewIngestionService(source, matchRepo, oddsRepo, NewQuoteValidator(nil), testLogger())

	err := svc.IngestScores(context.Background(), "soccer_epl", 1)
	assert.NoError(t, err)

	matchRepo.AssertNotCalled(t, "SetFinalScore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
