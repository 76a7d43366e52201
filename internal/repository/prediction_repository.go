package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yourusername/odds-iq/internal/database"
	"github.com/yourusername/odds-iq/internal/models"
)

const predictionColumns = `id, match_id, sport_key, predicted_outcome, predicted_team,
	win_probability, confidence, calculated_at, result_verified, was_correct, actual_winner, verified_at`

// PostgresPredictionRepository implements PredictionRepository for PostgreSQL
type PostgresPredictionRepository struct {
	db *database.DB
}

// NewPostgresPredictionRepository creates a new prediction repository
func NewPostgresPredictionRepository(db *database.DB) PredictionRepository {
	return &PostgresPredictionRepository{db: db}
}

// Insert stores a new prediction. One prediction per match: a second insert
// for the same match is a conflict, surfaced as ErrDuplicateKey so callers
// can treat the original as authoritative.
func (r *PostgresPredictionRepository) Insert(ctx context.Context, prediction *models.Prediction) error {
	query := `
		INSERT INTO predictions (id, match_id, sport_key, predicted_outcome, predicted_team,
			win_probability, confidence, calculated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (match_id) DO NOTHING
	`

	tag, err := r.db.GetPool().Exec(ctx, query,
		prediction.ID, prediction.MatchID, prediction.SportKey, prediction.PredictedOutcome,
		prediction.PredictedTeam, prediction.WinProbability, prediction.Confidence, prediction.CalculatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert prediction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrDuplicateKey
	}

	return nil
}

// GetByMatchID retrieves the prediction for a match
func (r *PostgresPredictionRepository) GetByMatchID(ctx context.Context, matchID uuid.UUID) (*models.Prediction, error) {
	query := fmt.Sprintf(`SELECT %s FROM predictions WHERE match_id = $1`, predictionColumns)

	prediction := &models.Prediction{}
	err := r.db.GetPool().QueryRow(ctx, query, matchID).Scan(
		&prediction.ID, &prediction.MatchID, &prediction.SportKey, &prediction.PredictedOutcome,
		&prediction.PredictedTeam, &prediction.WinProbability, &prediction.Confidence,
		&prediction.CalculatedAt, &prediction.ResultVerified, &prediction.WasCorrect,
		&prediction.ActualWinner, &prediction.VerifiedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prediction: %w", err)
	}

	return prediction, nil
}

// GetPending retrieves unverified predictions, oldest first
func (r *PostgresPredictionRepository) GetPending(ctx context.Context, limit int) ([]*models.Prediction, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM predictions
		WHERE NOT result_verified
		ORDER BY calculated_at ASC
		LIMIT $1
	`, predictionColumns)

	rows, err := r.db.GetPool().Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending predictions: %w", err)
	}
	defer rows.Close()

	return scanPredictions(rows)
}

// GetBySportSince retrieves predictions for a sport in the accuracy window.
// An empty sportKey matches all sports.
func (r *PostgresPredictionRepository) GetBySportSince(ctx context.Context, sportKey string, since time.Time) ([]*models.Prediction, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM predictions
		WHERE ($1 = '' OR sport_key = $1) AND calculated_at >= $2
		ORDER BY calculated_at DESC
	`, predictionColumns)

	rows, err := r.db.GetPool().Query(ctx, query, sportKey, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions by sport: %w", err)
	}
	defer rows.Close()

	return scanPredictions(rows)
}

// ApplyVerification persists verification fields. The guard on
// result_verified makes the write idempotent: a record that is already
// verified is never rewritten, so repeated sweeps cannot flip an outcome.
func (r *PostgresPredictionRepository) ApplyVerification(ctx context.Context, prediction *models.Prediction) error {
	query := `
		UPDATE predictions
		SET result_verified = TRUE, was_correct = $2, actual_winner = $3, verified_at = $4
		WHERE id = $1 AND NOT result_verified
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		prediction.ID, prediction.WasCorrect, prediction.ActualWinner, prediction.VerifiedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to apply verification: %w", err)
	}

	return nil
}

func scanPredictions(rows pgx.Rows) ([]*models.Prediction, error) {
	var predictions []*models.Prediction
	for rows.Next() {
		prediction := &models.Prediction{}
		err := rows.Scan(
			&prediction.ID, &prediction.MatchID, &prediction.SportKey, &prediction.PredictedOutcome,
			&prediction.PredictedTeam, &prediction.WinProbability, &prediction.Confidence,
			&prediction.CalculatedAt, &prediction.ResultVerified, &prediction.WasCorrect,
			&prediction.ActualWinner, &prediction.VerifiedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		predictions = append(predictions, prediction)
	}
	return predictions, rows.Err()
}
