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

const matchColumns = `id, source_id, sport_key, league_name, home_team, away_team,
	scheduled_start, home_score, away_score, is_live, completed, created_at, updated_at`

// PostgresMatchRepository implements MatchRepository for PostgreSQL
type PostgresMatchRepository struct {
	db *database.DB
}

// NewPostgresMatchRepository creates a new match repository
func NewPostgresMatchRepository(db *database.DB) MatchRepository {
	return &PostgresMatchRepository{db: db}
}

// Upsert inserts a match or refreshes it in place, keyed by the feed source ID.
// Conflict updates touch only the descriptive columns; scores and status are
// applied exclusively through SetFinalScore so a later odds poll cannot
// unsettle a finished match.
func (r *PostgresMatchRepository) Upsert(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (id, source_id, sport_key, league_name, home_team, away_team,
			scheduled_start, home_score, away_score, is_live, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		ON CONFLICT (source_id) DO UPDATE SET
			sport_key = EXCLUDED.sport_key,
			league_name = EXCLUDED.league_name,
			home_team = EXCLUDED.home_team,
			away_team = EXCLUDED.away_team,
			scheduled_start = EXCLUDED.scheduled_start,
			updated_at = NOW()
		RETURNING id
	`

	// On conflict the row keeps its original ID; scan it back so callers
	// always hold the canonical one.
	err := r.db.GetPool().QueryRow(ctx, query,
		match.ID, match.SourceID, match.SportKey, match.LeagueName, match.HomeTeam, match.AwayTeam,
		match.ScheduledStart, match.HomeScore, match.AwayScore, match.IsLive, match.Completed,
	).Scan(&match.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert match: %w", err)
	}

	return nil
}

// GetByID retrieves a match by its internal ID
func (r *PostgresMatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	query := fmt.Sprintf(`SELECT %s FROM matches WHERE id = $1`, matchColumns)
	return r.scanOne(r.db.GetPool().QueryRow(ctx, query, id))
}

// GetBySourceID retrieves a match by the feed provider's ID
func (r *PostgresMatchRepository) GetBySourceID(ctx context.Context, sourceID string) (*models.Match, error) {
	query := fmt.Sprintf(`SELECT %s FROM matches WHERE source_id = $1`, matchColumns)
	return r.scanOne(r.db.GetPool().QueryRow(ctx, query, sourceID))
}

// GetUpcoming retrieves matches that have not started, soonest first.
// An empty sportKey matches all sports.
func (r *PostgresMatchRepository) GetUpcoming(ctx context.Context, sportKey string, limit int) ([]*models.Match, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM matches
		WHERE NOT completed AND NOT is_live AND ($1 = '' OR sport_key = $1)
		ORDER BY scheduled_start ASC
		LIMIT $2
	`, matchColumns)

	rows, err := r.db.GetPool().Query(ctx, query, sportKey, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming matches: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

// GetCompletedSince retrieves matches completed after the given time
func (r *PostgresMatchRepository) GetCompletedSince(ctx context.Context, since time.Time) ([]*models.Match, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM matches
		WHERE completed AND updated_at >= $1
		ORDER BY scheduled_start ASC
	`, matchColumns)

	rows, err := r.db.GetPool().Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed matches: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

// SetFinalScore marks a match completed with its final score
func (r *PostgresMatchRepository) SetFinalScore(ctx context.Context, id uuid.UUID, homeScore, awayScore int) error {
	query := `
		UPDATE matches
		SET home_score = $2, away_score = $3, completed = TRUE, is_live = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.GetPool().Exec(ctx, query, id, homeScore, awayScore)
	if err != nil {
		return fmt.Errorf("failed to set final score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *PostgresMatchRepository) scanOne(row pgx.Row) (*models.Match, error) {
	match := &models.Match{}
	err := row.Scan(
		&match.ID, &match.SourceID, &match.SportKey, &match.LeagueName, &match.HomeTeam,
		&match.AwayTeam, &match.ScheduledStart, &match.HomeScore, &match.AwayScore,
		&match.IsLive, &match.Completed, &match.CreatedAt, &match.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan match: %w", err)
	}
	return match, nil
}

func (r *PostgresMatchRepository) scanAll(rows pgx.Rows) ([]*models.Match, error) {
	var matches []*models.Match
	for rows.Next() {
		match := &models.Match{}
		err := rows.Scan(
			&match.ID, &match.SourceID, &match.SportKey, &match.LeagueName, &match.HomeTeam,
			&match.AwayTeam, &match.ScheduledStart, &match.HomeScore, &match.AwayScore,
			&match.IsLive, &match.Completed, &match.CreatedAt, &match.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, match)
	}
	return matches, rows.Err()
}
