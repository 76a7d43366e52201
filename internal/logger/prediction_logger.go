// Package logger provides audit logging for the prediction pipeline.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// PredictionLogger provides a dedicated audit trail for stored predictions
// and their verification transitions.
type PredictionLogger struct {
	*logrus.Entry
}

// NewPredictionLogger creates a new prediction audit logger.
func NewPredictionLogger(baseLogger *logrus.Logger) *PredictionLogger {
	return &PredictionLogger{
		Entry: baseLogger.WithField("component", "prediction_audit"),
	}
}

// LogPredictionStored logs a newly stored prediction.
func (pl *PredictionLogger) LogPredictionStored(matchID, sportKey, outcome, team, confidence string, winProbability float64, calculatedAt time.Time) {
	pl.WithFields(logrus.Fields{
		"match_id":        matchID,
		"sport_key":       sportKey,
		"outcome":         outcome,
		"team":            team,
		"confidence":      confidence,
		"win_probability": winProbability,
		"calculated_at":   calculatedAt.Unix(),
	}).Info("Prediction stored")
}

// LogPredictionVerified logs the terminal verification transition of a prediction.
func (pl *PredictionLogger) LogPredictionVerified(matchID, predictedOutcome, actualWinner string, wasCorrect bool, homeScore, awayScore int) {
	pl.WithFields(logrus.Fields{
		"match_id":          matchID,
		"predicted_outcome": predictedOutcome,
		"actual_winner":     actualWinner,
		"was_correct":       wasCorrect,
		"home_score":        homeScore,
		"away_score":        awayScore,
	}).Info("Prediction verified")
}

// LogArbitrageFound logs a detected arbitrage combination.
func (pl *PredictionLogger) LogArbitrageFound(matchID, sportKey string, arbSum, profitMarginPercent float64, bookmakerCount int) {
	pl.WithFields(logrus.Fields{
		"match_id":              matchID,
		"sport_key":             sportKey,
		"arb_sum":               arbSum,
		"profit_margin_percent": profitMarginPercent,
		"bookmaker_count":       bookmakerCount,
	}).Warn("Arbitrage combination found")
}

// LogAccuracySnapshot logs a recomputed track-record aggregate.
func (pl *PredictionLogger) LogAccuracySnapshot(sportKey string, total, correct, incorrect, pending int, accuracyPercentage float64) {
	pl.WithFields(logrus.Fields{
		"sport_key":           sportKey,
		"total":               total,
		"correct":             correct,
		"incorrect":           incorrect,
		"pending":             pending,
		"accuracy_percentage": accuracyPercentage,
	}).Info("Accuracy snapshot")
}
