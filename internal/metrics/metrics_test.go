package metrics

import (
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistry(t *testing.T) {
	InitRegistry()
	registry := GetRegistry()

	assert.NotNil(t, registry)
	assert.IsType(t, &prometheus.Registry{}, registry)
}

func TestRecordFeedFetch(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordFeedFetch(0.25)
		RecordFeedFetchError()
	})
}

func TestRecordIngestionCounters(t *testing.T) {
	InitRegistry()

	tests := []struct {
		name  string
		count int
	}{
		{"single row", 1},
		{"batch", 250},
		{"empty batch", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				RecordMatchesUpserted(tt.count)
				RecordOddsSnapshots(tt.count)
			})
		})
	}
}

func TestRecordPredictionComputed(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordPredictionComputed("soccer_epl", "home", "High")
		RecordWinProbability("soccer_epl", 72.5)
		RecordPredictionDuration(0.01)
	})
}

func TestRecordArbitrageOpportunity(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordArbitrageOpportunity("basketball_nba")
	})
}

func TestUpdateGauges(t *testing.T) {
	InitRegistry()

	tests := []struct {
		name  string
		value float64
	}{
		{"positive", 42},
		{"zero", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				UpdatePendingPredictions(tt.value)
				UpdateTrackedMatches(tt.value)
				UpdateAccuracy("soccer_epl", tt.value)
			})
		})
	}
}

func TestRecordVerification(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordVerification()
		RecordVerificationSweepDuration(1.5)
	})
}

func TestRecordCacheCounters(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordCacheHit()
		RecordCacheMiss()
	})
}

func TestHandler(t *testing.T) {
	InitRegistry()

	handler := Handler()
	assert.NotNil(t, handler)
	assert.Implements(t, (*http.Handler)(nil), handler)
}
