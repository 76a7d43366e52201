package models

import (
	"time"

	"github.com/google/uuid"
)

// Match represents a single fixture with its bookmaker quotes.
// The core treats a Match as an immutable snapshot: the feed layer
// replaces it wholesale on every poll.
type Match struct {
	ID             uuid.UUID       `db:"id" json:"id" validate:"required,uuid4"`
	SourceID       string          `db:"source_id" json:"source_id" validate:"required"`
	SportKey       string          `db:"sport_key" json:"sport_key" validate:"required"`
	LeagueName     string          `db:"league_name" json:"league_name"`
	HomeTeam       string          `db:"home_team" json:"home_team" validate:"required"`
	AwayTeam       string          `db:"away_team" json:"away_team" validate:"required"`
	ScheduledStart time.Time       `db:"scheduled_start" json:"scheduled_start" validate:"required"`
	HomeScore      *int            `db:"home_score" json:"home_score"`
	AwayScore      *int            `db:"away_score" json:"away_score"`
	IsLive         bool            `db:"is_live" json:"is_live"`
	Completed      bool            `db:"completed" json:"completed"`
	Bookmakers     []BookmakerOdds `db:"-" json:"bookmakers"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// IsUpcoming checks if the match has not started yet
func (m *Match) IsUpcoming() bool {
	return !m.IsLive && !m.Completed
}

// HasFinalScore checks if the match finished with both scores attached
func (m *Match) HasFinalScore() bool {
	return m.Completed && m.HomeScore != nil && m.AwayScore != nil
}

// TimeToStart returns the duration until the scheduled kickoff
func (m *Match) TimeToStart() time.Duration {
	return time.Until(m.ScheduledStart)
}

// BookmakerOdds represents one bookmaker's quoted market for a match
type BookmakerOdds struct {
	Key      string          `json:"key" validate:"required"`
	Title    string          `json:"title"`
	Outcomes []MarketOutcome `json:"outcomes"`
}

// HasUsableOutcomes checks that the quote carries at least one priced outcome
func (b *BookmakerOdds) HasUsableOutcomes() bool {
	for _, o := range b.Outcomes {
		if o.IsUsable() {
			return true
		}
	}
	return false
}

// MarketOutcome represents a single priced outcome inside a bookmaker market
type MarketOutcome struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gt=1"`
}

// IsUsable checks the price is a valid decimal-odds value.
// Decimal odds are strictly greater than 1.0; anything else is discarded
// during aggregation rather than treated as a crash condition.
func (o *MarketOutcome) IsUsable() bool {
	return o.Price > 1.0
}

// ImpliedProbability returns the market-implied probability 1/price
func (o *MarketOutcome) ImpliedProbability() float64 {
	if o.Price <= 1.0 {
		return 0
	}
	return 1.0 / o.Price
}
