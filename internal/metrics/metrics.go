// Package metrics provides the centralized Prometheus metrics registry for the odds pipeline.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	FeedFetchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "odds_iq",
		Name:      "feed_fetches_total",
		Help:      "Total number of odds feed fetch requests",
	})
	FeedFetchErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "odds_iq",
		Name:      "feed_fetch_errors_total",
		Help:      "Total number of failed odds feed fetches",
	})
	MatchesUpsertedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "odds_iq",
		Name:      "matches_upserted_total",
		Help:      "Total number of matches written to storage",
	})
	OddsSnapshotsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "odds_iq",
		Name:      "odds_snapshots_total",
		Help:      "Total number of odds snapshot rows ingested",
	})
	VerificationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "odds_iq",
		Name:      "verifications_total",
		Help:      "Total number of predictions verified against results",
	})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "odds_iq",
		Name:      "prediction_cache_hits_total",
		Help:      "Total number of prediction cache hits",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "odds_iq",
		Name:      "prediction_cache_misses_total",
		Help:      "Total number of prediction cache misses",
	})
)

// Gauge metrics
var (
	PendingPredictions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "odds_iq",
		Name:      "pending_predictions",
		Help:      "Number of predictions awaiting verification",
	})
	TrackedMatches = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "odds_iq",
		Name:      "tracked_matches",
		Help:      "Number of upcoming matches currently tracked",
	})
	AccuracyPercentage = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "odds_iq",
		Name:      "accuracy_percentage",
		Help:      "Verified prediction accuracy by sport",
	}, []string{"sport_key"})
)

// Histogram metrics
var (
	FeedFetchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "odds_iq",
		Name:      "feed_fetch_duration_seconds",
		Help:      "Duration of odds feed fetches in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	PredictionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "odds_iq",
		Name:      "prediction_duration_seconds",
		Help:      "Duration of prediction computation in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	VerificationSweepDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "odds_iq",
		Name:      "verification_sweep_duration_seconds",
		Help:      "Duration of verification sweeps in seconds",
		Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		// Register counter metrics
		registry.MustRegister(FeedFetchesTotal)
		registry.MustRegister(FeedFetchErrorsTotal)
		registry.MustRegister(MatchesUpsertedTotal)
		registry.MustRegister(OddsSnapshotsTotal)
		registry.MustRegister(VerificationsTotal)
		registry.MustRegister(CacheHitsTotal)
		registry.MustRegister(CacheMissesTotal)

		// Register gauge metrics
		registry.MustRegister(PendingPredictions)
		registry.MustRegister(TrackedMatches)
		registry.MustRegister(AccuracyPercentage)

		// Register histogram metrics
		registry.MustRegister(FeedFetchDuration)
		registry.MustRegister(PredictionDuration)
		registry.MustRegister(VerificationSweepDuration)

		// Register prediction metrics
		registry.MustRegister(PredictionsComputedTotal)
		registry.MustRegister(ArbitrageOpportunitiesTotal)
		registry.MustRegister(WinProbabilityScore)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordFeedFetch records an odds feed fetch and its duration.
func RecordFeedFetch(durationSeconds float64) {
	FeedFetchesTotal.Inc()
	FeedFetchDuration.Observe(durationSeconds)
}

// RecordFeedFetchError records a failed odds feed fetch.
func RecordFeedFetchError() {
	FeedFetchErrorsTotal.Inc()
}

// RecordMatchesUpserted records matches written to storage.
func RecordMatchesUpserted(count int) {
	MatchesUpsertedTotal.Add(float64(count))
}

// RecordOddsSnapshots records ingested odds snapshot rows.
func RecordOddsSnapshots(count int) {
	OddsSnapshotsTotal.Add(float64(count))
}

// RecordVerification records a prediction verification event.
func RecordVerification() {
	VerificationsTotal.Inc()
}

// RecordCacheHit records a prediction cache hit.
func RecordCacheHit() {
	CacheHitsTotal.Inc()
}

// RecordCacheMiss records a prediction cache miss.
func RecordCacheMiss() {
	CacheMissesTotal.Inc()
}

// UpdatePendingPredictions updates the pending predictions gauge.
func UpdatePendingPredictions(count float64) {
	PendingPredictions.Set(count)
}

// UpdateTrackedMatches updates the tracked matches gauge.
func UpdateTrackedMatches(count float64) {
	TrackedMatches.Set(count)
}

// UpdateAccuracy updates the verified accuracy gauge for a sport.
func UpdateAccuracy(sportKey string, percentage float64) {
	AccuracyPercentage.WithLabelValues(sportKey).Set(percentage)
}

// RecordPredictionDuration records prediction computation time.
func RecordPredictionDuration(durationSeconds float64) {
	PredictionDuration.Observe(durationSeconds)
}

// RecordVerificationSweepDuration records a verification sweep duration.
func RecordVerificationSweepDuration(durationSeconds float64) {
	VerificationSweepDuration.Observe(durationSeconds)
}
