package models

import (
	"time"

	"github.com/google/uuid"
)

// Outcome identifies a market slot by role rather than by team name.
// Comparing by role avoids home/away naming edge cases during verification.
type Outcome string

const (
	OutcomeHome Outcome = "home"
	OutcomeDraw Outcome = "draw"
	OutcomeAway Outcome = "away"
)

// Confidence bands for a stored prediction
const (
	ConfidenceLow    = "Low"
	ConfidenceMedium = "Medium"
	ConfidenceHigh   = "High"
)

// Prediction represents a stored prediction for a match. It is created once
// when sufficient odds data exists and is never mutated except to attach
// verification fields once a final result is known.
type Prediction struct {
	ID               uuid.UUID  `db:"id" json:"id" validate:"required,uuid4"`
	MatchID          uuid.UUID  `db:"match_id" json:"match_id" validate:"required,uuid4"`
	SportKey         string     `db:"sport_key" json:"sport_key" validate:"required"`
	PredictedOutcome Outcome    `db:"predicted_outcome" json:"predicted_outcome" validate:"required,oneof=home draw away"`
	PredictedTeam    string     `db:"predicted_team" json:"predicted_team"`
	WinProbability   float64    `db:"win_probability" json:"win_probability" validate:"gte=0,lte=100"`
	Confidence       string     `db:"confidence" json:"confidence" validate:"required,oneof=Low Medium High"`
	CalculatedAt     time.Time  `db:"calculated_at" json:"calculated_at" validate:"required"`
	ResultVerified   bool       `db:"result_verified" json:"result_verified"`
	WasCorrect       bool       `db:"was_correct" json:"was_correct"`
	ActualWinner     *Outcome   `db:"actual_winner" json:"actual_winner"`
	VerifiedAt       *time.Time `db:"verified_at" json:"verified_at"`
}

// IsPending checks whether the prediction still awaits a final result
func (p *Prediction) IsPending() bool {
	return !p.ResultVerified
}

// IQComponents holds the six weighted sub-scores behind a team's IQ score.
// The weighted sum must reconstruct Total to within a small tolerance; the
// scoring engine uses that as a self-check.
type IQComponents struct {
	OddsComponent     float64 `db:"odds_component" json:"odds_component" validate:"gte=0,lte=100"`
	VolumeComponent   float64 `db:"volume_component" json:"volume_component" validate:"gte=0,lte=100"`
	MovementComponent float64 `db:"movement_component" json:"movement_component" validate:"gte=0,lte=100"`
	StatsComponent    float64 `db:"stats_component" json:"stats_component" validate:"gte=0,lte=100"`
	MomentumComponent float64 `db:"momentum_component" json:"momentum_component" validate:"gte=0,lte=100"`
	H2HComponent      float64 `db:"h2h_component" json:"h2h_component" validate:"gte=0,lte=100"`
	Total             float64 `db:"total_iq" json:"total_iq" validate:"gte=0,lte=100"`
}
