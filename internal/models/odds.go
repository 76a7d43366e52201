package models

import (
	"time"

	"github.com/google/uuid"
)

// OddsSnapshot represents one priced outcome from one bookmaker at a point
// in time. The feed layer stores a row per outcome; GroupSnapshots folds a
// snapshot set back into per-bookmaker quotes for the scoring core.
type OddsSnapshot struct {
	Time           time.Time `db:"time" json:"time" validate:"required"`
	MatchID        uuid.UUID `db:"match_id" json:"match_id" validate:"required,uuid4"`
	BookmakerKey   string    `db:"bookmaker_key" json:"bookmaker_key" validate:"required"`
	BookmakerTitle string    `db:"bookmaker_title" json:"bookmaker_title"`
	OutcomeName    string    `db:"outcome_name" json:"outcome_name" validate:"required"`
	Price          float64   `db:"price" json:"price" validate:"gt=1"`
}

// GroupSnapshots folds snapshot rows into per-bookmaker quotes, preserving
// first-seen bookmaker order so tie-breaking stays deterministic across runs.
func GroupSnapshots(snapshots []*OddsSnapshot) []BookmakerOdds {
	var order []string
	byKey := make(map[string]*BookmakerOdds)

	for _, s := range snapshots {
		quote, ok := byKey[s.BookmakerKey]
		if !ok {
			order = append(order, s.BookmakerKey)
			quote = &BookmakerOdds{Key: s.BookmakerKey, Title: s.BookmakerTitle}
			byKey[s.BookmakerKey] = quote
		}
		quote.Outcomes = append(quote.Outcomes, MarketOutcome{Name: s.OutcomeName, Price: s.Price})
	}

	grouped := make([]BookmakerOdds, 0, len(order))
	for _, key := range order {
		grouped = append(grouped, *byKey[key])
	}
	return grouped
}
