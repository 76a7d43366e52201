package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() (*logrus.Logger, *bytes.Buffer) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func parseLogOutput(buf *bytes.Buffer) map[string]interface{} {
	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		return nil
	}
	return logEntry
}

func TestNewLoggerInvalidLevelDefaultsToInfo(t *testing.T) {
	log := NewLogger("nonsense")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestPredictionLoggerStored(t *testing.T) {
	log, buf := setupTestLogger()
	predLogger := NewPredictionLogger(log)

	predLogger.LogPredictionStored(
		"match_123",
		"soccer_epl",
		"home",
		"Arsenal",
		"Medium",
		72.0,
		time.Date(2025, 11, 2, 15, 0, 0, 0, time.UTC),
	)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "match_123", logEntry["match_id"])
	assert.Equal(t, "prediction_audit", logEntry["component"])
	assert.Equal(t, "Medium", logEntry["confidence"])
}

func TestPredictionLoggerVerified(t *testing.T) {
	log, buf := setupTestLogger()
	predLogger := NewPredictionLogger(log)

	predLogger.LogPredictionVerified("match_123", "away", "away", true, 1, 3)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, true, logEntry["was_correct"])
	assert.Equal(t, "away", logEntry["actual_winner"])
}

func TestPredictionLoggerArbitrage(t *testing.T) {
	log, buf := setupTestLogger()
	predLogger := NewPredictionLogger(log)

	predLogger.LogArbitrageFound("match_456", "soccer_epl", 0.968, 3.31, 4)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "match_456", logEntry["match_id"])
	assert.Equal(t, "warning", logEntry["level"])
}

func TestPredictionLoggerAccuracySnapshot(t *testing.T) {
	log, buf := setupTestLogger()
	predLogger := NewPredictionLogger(log)

	predLogger.LogAccuracySnapshot("soccer_epl", 10, 6, 2, 2, 75.0)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, float64(75), logEntry["accuracy_percentage"])
}
