package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/yourusername/odds-iq/internal/datasource"
	"github.com/yourusername/odds-iq/internal/models"
)

// MockMatchRepository mocks the match repository
type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) Upsert(ctx context.Context, match *models.Match) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

func (m *MockMatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchRepository) GetBySourceID(ctx context.Context, sourceID string) (*models.Match, error) {
	args := m.Called(ctx, sourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchRepository) GetUpcoming(ctx context.Context, sportKey string, limit int) ([]*models.Match, error) {
	args := m.Called(ctx, sportKey, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Match), args.Error(1)
}

func (m *MockMatchRepository) GetCompletedSince(ctx context.Context, since time.Time) ([]*models.Match, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Match), args.Error(1)
}

func (m *MockMatchRepository) SetFinalScore(ctx context.Context, id uuid.UUID, homeScore, awayScore int) error {
	args := m.Called(ctx, id, homeScore, awayScore)
	return args.Error(0)
}

// MockOddsRepository mocks the odds snapshot repository
type MockOddsRepository struct {
	mock.Mock
}

func (m *MockOddsRepository) InsertBatch(ctx context.Context, snapshots []*models.OddsSnapshot) error {
	args := m.Called(ctx, snapshots)
	return args.Error(0)
}

func (m *MockOddsRepository) GetLatestForMatch(ctx context.Context, matchID uuid.UUID) ([]*models.OddsSnapshot, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.OddsSnapshot), args.Error(1)
}

func (m *MockOddsRepository) GetTimeSeriesForMatch(ctx context.Context, matchID uuid.UUID, start, end time.Time) ([]*models.OddsSnapshot, error) {
	args := m.Called(ctx, matchID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.OddsSnapshot), args.Error(1)
}

// MockPredictionRepository mocks the prediction repository
type MockPredictionRepository struct {
	mock.Mock
}

func (m *MockPredictionRepository) Insert(ctx context.Context, prediction *models.Prediction) error {
	args := m.Called(ctx, prediction)
	return args.Error(0)
}

func (m *MockPredictionRepository) GetByMatchID(ctx context.Context, matchID uuid.UUID) (*models.Prediction, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Prediction), args.Error(1)
}

func (m *MockPredictionRepository) GetPending(ctx context.Context, limit int) ([]*models.Prediction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Prediction), args.Error(1)
}

func (m *MockPredictionRepository) GetBySportSince(ctx context.Context, sportKey string, since time.Time) ([]*models.Prediction, error) {
	args := m.Called(ctx, sportKey, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Prediction), args.Error(1)
}

func (m *MockPredictionRepository) ApplyVerification(ctx context.Context, prediction *models.Prediction) error {
	args := m.Called(ctx, prediction)
	return args.Error(0)
}

// MockDataSource mocks the odds feed
type MockDataSource struct {
	mock.Mock
}

func (m *MockDataSource) FetchOdds(ctx context.Context, sportKey string) ([]datasource.EventData, error) {
	args := m.Called(ctx, sportKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]datasource.EventData), args.Error(1)
}

func (m *MockDataSource) FetchScores(ctx context.Context, sportKey string, daysBack int) ([]datasource.ScoreData, error) {
	args := m.Called(ctx, sportKey, daysBack)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]datasource.ScoreData), args.Error(1)
}

func (m *MockDataSource) Name() string {
	return "mock_feed"
}

func (m *MockDataSource) IsEnabled() bool {
	return true
}
