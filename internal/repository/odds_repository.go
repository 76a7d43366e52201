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

// PostgresOddsRepository implements OddsRepository for PostgreSQL
type PostgresOddsRepository struct {
	db *database.DB
}

// NewPostgresOddsRepository creates a new odds repository
func NewPostgresOddsRepository(db *database.DB) OddsRepository {
	return &PostgresOddsRepository{db: db}
}

// InsertBatch inserts multiple odds snapshots using high-performance batch insert
func (r *PostgresOddsRepository) InsertBatch(ctx context.Context, snapshots []*models.OddsSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	// Use COPY for high-performance bulk insert
	columns := []string{"time", "match_id", "bookmaker_key", "bookmaker_title", "outcome_name", "price"}

	copyFromSource := make([][]interface{}, len(snapshots))
	for i, s := range snapshots {
		copyFromSource[i] = []interface{}{
			s.Time, s.MatchID, s.BookmakerKey, s.BookmakerTitle, s.OutcomeName, s.Price,
		}
	}

	count, err := r.db.GetPool().CopyFrom(ctx, pgx.Identifier{"odds_snapshots"}, columns, pgx.CopyFromRows(copyFromSource))
	if err != nil {
		return fmt.Errorf("failed to batch insert odds snapshots: %w", err)
	}

	if count != int64(len(snapshots)) {
		return fmt.Errorf("inserted %d rows, expected %d", count, len(snapshots))
	}

	return nil
}

// GetLatestForMatch retrieves the most recent snapshot set for a match: all
// rows sharing the latest capture time, in insertion order so bookmaker
// tie-breaking stays stable.
func (r *PostgresOddsRepository) GetLatestForMatch(ctx context.Context, matchID uuid.UUID) ([]*models.OddsSnapshot, error) {
	query := `
		SELECT time, match_id, bookmaker_key, bookmaker_title, outcome_name, price
		FROM odds_snapshots
		WHERE match_id = $1
		  AND time = (SELECT MAX(time) FROM odds_snapshots WHERE match_id = $1)
		ORDER BY bookmaker_key, outcome_name
	`

	rows, err := r.db.GetPool().Query(ctx, query, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest odds: %w", err)
	}
	defer rows.Close()

	return scanSnapshots(rows)
}

// GetTimeSeriesForMatch retrieves time-series odds data for a match
func (r *PostgresOddsRepository) GetTimeSeriesForMatch(ctx context.Context, matchID uuid.UUID, start, end time.Time) ([]*models.OddsSnapshot, error) {
	query := `
		SELECT time, match_id, bookmaker_key, bookmaker_title, outcome_name, price
		FROM odds_snapshots
		WHERE match_id = $1 AND time >= $2 AND time <= $3
		ORDER BY time ASC
	`

	rows, err := r.db.GetPool().Query(ctx, query, matchID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query odds time series: %w", err)
	}
	defer rows.Close()

	return scanSnapshots(rows)
}

func scanSnapshots(rows pgx.Rows) ([]*models.OddsSnapshot, error) {
	var snapshots []*models.OddsSnapshot
	for rows.Next() {
		snapshot := &models.OddsSnapshot{}
		err := rows.Scan(
			&snapshot.Time, &snapshot.MatchID, &snapshot.BookmakerKey,
			&snapshot.BookmakerTitle, &snapshot.OutcomeName, &snapshot.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan odds snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, rows.Err()
}
