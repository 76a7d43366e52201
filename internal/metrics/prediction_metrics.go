// Package metrics defines prediction-specific metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prediction-specific counter vectors
var (
	PredictionsComputedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "odds_iq",
		Name:      "predictions_computed_total",
		Help:      "Total number of predictions computed by sport and confidence",
	}, []string{"sport_key", "outcome", "confidence"})

	ArbitrageOpportunitiesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "odds_iq",
		Name:      "arbitrage_opportunities_total",
		Help:      "Total number of arbitrage opportunities detected by sport",
	}, []string{"sport_key"})
)

// Prediction-specific histogram vectors
var (
	WinProbabilityScore = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "odds_iq",
		Name:      "win_probability_score",
		Help:      "Win probability scores for computed predictions",
		Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	}, []string{"sport_key"})
)

// RecordPredictionComputed records a computed prediction.
func RecordPredictionComputed(sportKey, outcome, confidence string) {
	PredictionsComputedTotal.WithLabelValues(sportKey, outcome, confidence).Inc()
}

// RecordArbitrageOpportunity records a detected arbitrage opportunity.
func RecordArbitrageOpportunity(sportKey string) {
	ArbitrageOpportunitiesTotal.WithLabelValues(sportKey).Inc()
}

// RecordWinProbability records a prediction's win probability.
func RecordWinProbability(sportKey string, probability float64) {
	WinProbabilityScore.WithLabelValues(sportKey).Observe(probability)
}
