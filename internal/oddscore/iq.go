package oddscore

import (
	"math"

	"github.com/yourusername/odds-iq/internal/models"
)

// Sub-signal weights of the IQ fusion. They sum to 1.0 so the total stays on
// the same 0-100 scale as the components.
const (
	WeightOdds     = 0.20
	WeightVolume   = 0.20
	WeightMovement = 0.20
	WeightStats    = 0.20
	WeightMomentum = 0.10
	WeightH2H      = 0.10
)

// IQReconstructionTolerance bounds how far a stored total may drift from the
// weighted sum of its components before the record is considered corrupt.
const IQReconstructionTolerance = 0.5

// PredictionResult is the outcome of a scoring run for one match
type PredictionResult struct {
	Outcome        models.Outcome `json:"outcome"`
	WinProbability float64        `json:"win_probability"`
	Confidence     string         `json:"confidence"`

	// Normalized market percentages, only populated by the market-only
	// variant where they are derived from implied probabilities
	HomePercent float64 `json:"home_percent,omitempty"`
	DrawPercent float64 `json:"draw_percent,omitempty"`
	AwayPercent float64 `json:"away_percent,omitempty"`
}

// FuseIQ computes the composite IQ score from six weighted sub-signals,
// clamped to [0,100].
func FuseIQ(c models.IQComponents) float64 {
	total := WeightOdds*c.OddsComponent +
		WeightVolume*c.VolumeComponent +
		WeightMovement*c.MovementComponent +
		WeightStats*c.StatsComponent +
		WeightMomentum*c.MomentumComponent +
		WeightH2H*c.H2HComponent
	return clampScore(total)
}

// CheckIQReconstruction verifies that a stored total matches the weighted sum
// of its components to within IQReconstructionTolerance.
func CheckIQReconstruction(c models.IQComponents) bool {
	return math.Abs(FuseIQ(c)-c.Total) < IQReconstructionTolerance
}

// PredictFromIQ fuses per-team IQ scores into a predicted outcome. drawIQ is
// optional and only consulted when the sport's market has a draw. Ties break
// in home > draw > away order, first seen wins.
//
// The reported win probability is the winning side's IQ score, deliberately
// not renormalized against the draw score.
func PredictFromIQ(homeIQ, awayIQ float64, drawIQ *float64, policy SportPolicy, cfg Config) *PredictionResult {
	homeIQ = clampScore(homeIQ)
	awayIQ = clampScore(awayIQ)

	winner := models.OutcomeHome
	maxIQ := homeIQ
	if policy.AllowsDraw && drawIQ != nil {
		if d := clampScore(*drawIQ); d > maxIQ {
			winner = models.OutcomeDraw
			maxIQ = d
		}
	}
	if awayIQ > maxIQ {
		winner = models.OutcomeAway
		maxIQ = awayIQ
	}

	return &PredictionResult{
		Outcome:        winner,
		WinProbability: maxIQ,
		Confidence:     confidenceBand(maxIQ, cfg),
	}
}

// PredictFromMarket is the market-only fusion used when per-team sub-signals
// are unavailable. Probabilities come purely from the best prices: implied
// home/away/draw probabilities normalized by their sum, with the draw
// contributing zero when the sport disallows it. The predicted side is the
// larger of home and away; the market-only variant never predicts a draw.
//
// Returns nil when either the home or away best price is absent: no usable
// price data means no prediction, never a zero-confidence one.
func PredictFromMarket(best BestPrices, drawPrice *BestPrice, policy SportPolicy, cfg Config) *PredictionResult {
	if best.Home == nil || best.Away == nil {
		return nil
	}

	homeProb := 1.0 / best.Home.Price
	awayProb := 1.0 / best.Away.Price
	drawProb := 0.0
	if policy.AllowsDraw && drawPrice != nil && drawPrice.Price > 1.0 {
		drawProb = 1.0 / drawPrice.Price
	}

	sum := homeProb + awayProb + drawProb
	if sum <= 0 {
		return nil
	}

	result := &PredictionResult{
		HomePercent: homeProb / sum * 100,
		DrawPercent: drawProb / sum * 100,
		AwayPercent: awayProb / sum * 100,
	}

	if result.HomePercent >= result.AwayPercent {
		result.Outcome = models.OutcomeHome
		result.WinProbability = result.HomePercent
	} else {
		result.Outcome = models.OutcomeAway
		result.WinProbability = result.AwayPercent
	}
	result.Confidence = confidenceBand(result.WinProbability, cfg)

	return result
}

func confidenceBand(score float64, cfg Config) string {
	high := cfg.HighConfidenceThreshold
	medium := cfg.MediumConfidenceThreshold
	if high <= 0 {
		high = DefaultHighConfidenceThreshold
	}
	if medium <= 0 {
		medium = DefaultMediumConfidenceThreshold
	}

	switch {
	case score >= high:
		return models.ConfidenceHigh
	case score >= medium:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

func clampScore(score float64) float64 {
	return math.Min(100, math.Max(0, score))
}
