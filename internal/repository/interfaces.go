package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/odds-iq/internal/models"
)

// MatchRepository defines the interface for match data access
type MatchRepository interface {
	Upsert(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error)
	GetBySourceID(ctx context.Context, sourceID string) (*models.Match, error)
	GetUpcoming(ctx context.Context, sportKey string, limit int) ([]*models.Match, error)
	GetCompletedSince(ctx context.Context, since time.Time) ([]*models.Match, error)
	SetFinalScore(ctx context.Context, id uuid.UUID, homeScore, awayScore int) error
}

// OddsRepository defines the interface for odds snapshot data access
type OddsRepository interface {
	InsertBatch(ctx context.Context, snapshots []*models.OddsSnapshot) error
	GetLatestForMatch(ctx context.Context, matchID uuid.UUID) ([]*models.OddsSnapshot, error)
	GetTimeSeriesForMatch(ctx context.Context, matchID uuid.UUID, start, end time.Time) ([]*models.OddsSnapshot, error)
}

// PredictionRepository defines the interface for prediction data access
type PredictionRepository interface {
	Insert(ctx context.Context, prediction *models.Prediction) error
	GetByMatchID(ctx context.Context, matchID uuid.UUID) (*models.Prediction, error)
	GetPending(ctx context.Context, limit int) ([]*models.Prediction, error)
	GetBySportSince(ctx context.Context, sportKey string, since time.Time) ([]*models.Prediction, error)
	ApplyVerification(ctx context.Context, prediction *models.Prediction) error
}
