package oddscore

import (
	"time"

	"github.com/yourusername/odds-iq/internal/models"
)

// VerificationResult is the outcome of reconciling a stored prediction
// against a completed match's final score.
type VerificationResult struct {
	ActualWinner models.Outcome `json:"actual_winner"`
	WasCorrect   bool           `json:"was_correct"`
}

// ActualWinner determines the final outcome from a completed match's score.
// An equal score means a draw, which is only meaningful when the sport's
// market has one; callers gate on the sport policy.
//
// Returns models.ErrMatchNotComplete or models.ErrNoFinalScore when the
// match cannot be settled yet.
func ActualWinner(match *models.Match) (models.Outcome, error) {
	if !match.Completed {
		return "", models.ErrMatchNotComplete
	}
	if match.HomeScore == nil || match.AwayScore == nil {
		return "", models.ErrNoFinalScore
	}

	switch {
	case *match.HomeScore > *match.AwayScore:
		return models.OutcomeHome, nil
	case *match.AwayScore > *match.HomeScore:
		return models.OutcomeAway, nil
	default:
		return models.OutcomeDraw, nil
	}
}

// VerifyPrediction compares a stored prediction to a completed match's final
// result. Correctness is judged by role (home/away/draw), not by raw team
// name, which sidesteps naming drift between the feed and the prediction.
//
// Verification is idempotent: an already-verified prediction is re-settled
// from the same inputs and yields the same result, so a repeated sweep can
// never flip a stored outcome or double-count it in aggregates.
func VerifyPrediction(prediction *models.Prediction, match *models.Match) (*VerificationResult, error) {
	winner, err := ActualWinner(match)
	if err != nil {
		return nil, err
	}

	return &VerificationResult{
		ActualWinner: winner,
		WasCorrect:   winner == prediction.PredictedOutcome,
	}, nil
}

// ApplyVerification attaches a verification result to a prediction record.
// A record that is already verified is left untouched.
func ApplyVerification(prediction *models.Prediction, result *VerificationResult, verifiedAt time.Time) {
	if prediction.ResultVerified {
		return
	}
	winner := result.ActualWinner
	prediction.ResultVerified = true
	prediction.WasCorrect = result.WasCorrect
	prediction.ActualWinner = &winner
	prediction.VerifiedAt = &verifiedAt
}

// ComputeAccuracy recomputes the track-record counters from a set of
// prediction records. The aggregate is always derived, never stored as its
// own source of truth. An empty verified sample reports 0 accuracy, not NaN.
func ComputeAccuracy(predictions []*models.Prediction) models.AccuracyStats {
	stats := models.AccuracyStats{Total: len(predictions)}

	for _, p := range predictions {
		if !p.ResultVerified {
			continue
		}
		if p.WasCorrect {
			stats.Correct++
		} else {
			stats.Incorrect++
		}
	}
	stats.Pending = stats.Total - stats.Correct - stats.Incorrect

	if verified := stats.Correct + stats.Incorrect; verified > 0 {
		stats.AccuracyPercentage = float64(stats.Correct) / float64(verified) * 100
	}

	return stats
}
