package models

// AccuracyStats holds running track-record counters for a set of predictions.
// It is recomputed on demand from the prediction records and never stored as
// an independent source of truth.
type AccuracyStats struct {
	Total              int     `json:"total"`
	Correct            int     `json:"correct"`
	Incorrect          int     `json:"incorrect"`
	Pending            int     `json:"pending"`
	AccuracyPercentage float64 `json:"accuracy_percentage"`
}

// Verified returns the number of predictions with a known result
func (a *AccuracyStats) Verified() int {
	return a.Correct + a.Incorrect
}
