package database

import (
	"context"
	"fmt"

	"github.com/yourusername/odds-iq/internal/config"
)

// schema holds the DDL applied on startup. Matches are keyed by the feed's
// source ID so repeated polls upsert instead of duplicating fixtures.
const schema = `
CREATE TABLE IF NOT EXISTS matches (
	id UUID PRIMARY KEY,
	source_id TEXT NOT NULL UNIQUE,
	sport_key TEXT NOT NULL,
	league_name TEXT NOT NULL DEFAULT '',
	home_team TEXT NOT NULL,
	away_team TEXT NOT NULL,
	scheduled_start TIMESTAMPTZ NOT NULL,
	home_score INT,
	away_score INT,
	is_live BOOLEAN NOT NULL DEFAULT FALSE,
	completed BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_matches_sport_start ON matches (sport_key, scheduled_start);
CREATE INDEX IF NOT EXISTS idx_matches_completed ON matches (completed) WHERE NOT completed;

CREATE TABLE IF NOT EXISTS odds_snapshots (
	time TIMESTAMPTZ NOT NULL,
	match_id UUID NOT NULL REFERENCES matches(id),
	bookmaker_key TEXT NOT NULL,
	bookmaker_title TEXT NOT NULL DEFAULT '',
	outcome_name TEXT NOT NULL,
	price DOUBLE PRECISION NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_odds_snapshots_match_time ON odds_snapshots (match_id, time DESC);

CREATE TABLE IF NOT EXISTS predictions (
	id UUID PRIMARY KEY,
	match_id UUID NOT NULL UNIQUE REFERENCES matches(id),
	sport_key TEXT NOT NULL,
	predicted_outcome TEXT NOT NULL,
	predicted_team TEXT NOT NULL DEFAULT '',
	win_probability DOUBLE PRECISION NOT NULL,
	confidence TEXT NOT NULL,
	calculated_at TIMESTAMPTZ NOT NULL,
	result_verified BOOLEAN NOT NULL DEFAULT FALSE,
	was_correct BOOLEAN NOT NULL DEFAULT FALSE,
	actual_winner TEXT,
	verified_at TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_predictions_sport_calculated ON predictions (sport_key, calculated_at DESC);
CREATE INDEX IF NOT EXISTS idx_predictions_pending ON predictions (result_verified) WHERE NOT result_verified;
`

// Initialize creates a database connection pool and ensures the schema exists
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := NewDB(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema applies the platform DDL. Every statement is idempotent, so
// running it on every startup is safe.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
