package service

import (
	"fmt"
	"sync"
	"time"
)

// IngestionMetrics tracks statistics about one ingestion run
type IngestionMetrics struct {
	mu               sync.RWMutex
	StartTime        time.Time
	Duration         time.Duration
	TotalEvents      int
	MatchesUpserted  int
	SnapshotRows     int
	ScoresApplied    int
	ValidationErrors int
	Errors           int
}

// NewIngestionMetrics creates a new metrics tracker
func NewIngestionMetrics() *IngestionMetrics {
	return &IngestionMetrics{
		StartTime: time.Now(),
	}
}

// Reset resets all metrics
func (m *IngestionMetrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.StartTime = time.Now()
	m.Duration = 0
	m.TotalEvents = 0
	m.MatchesUpserted = 0
	m.SnapshotRows = 0
	m.ScoresApplied = 0
	m.ValidationErrors = 0
	m.Errors = 0
}

// RecordMatch increments the upserted match count
func (m *IngestionMetrics) RecordMatch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchesUpserted++
}

// RecordSnapshots adds ingested snapshot rows
func (m *IngestionMetrics) RecordSnapshots(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SnapshotRows += count
}

// RecordScoreApplied increments the applied final score count
func (m *IngestionMetrics) RecordScoreApplied() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ScoresApplied++
}

// RecordValidationError increments the validation error count
func (m *IngestionMetrics) RecordValidationError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ValidationErrors++
}

// RecordError increments the error count
func (m *IngestionMetrics) RecordError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors++
}

// Snapshot returns a copy of the current counters
func (m *IngestionMetrics) Snapshot() IngestionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return IngestionMetrics{
		StartTime:        m.StartTime,
		Duration:         m.Duration,
		TotalEvents:      m.TotalEvents,
		MatchesUpserted:  m.MatchesUpserted,
		SnapshotRows:     m.SnapshotRows,
		ScoresApplied:    m.ScoresApplied,
		ValidationErrors: m.ValidationErrors,
		Errors:           m.Errors,
	}
}

// String returns a formatted string representation of metrics
func (m *IngestionMetrics) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return fmt.Sprintf(
		"IngestionMetrics{Events=%d, Matches=%d, SnapshotRows=%d, ScoresApplied=%d, ValidationErrors=%d, Errors=%d, Duration=%v}",
		m.TotalEvents,
		m.MatchesUpserted,
		m.SnapshotRows,
		m.ScoresApplied,
		m.ValidationErrors,
		m.Errors,
		m.Duration,
	)
}
