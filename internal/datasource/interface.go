package datasource

import (
	"context"
	"errors"
	"time"
)

// DataSource defines the interface for fetching match and odds data from external providers
type DataSource interface {
	// FetchOdds retrieves upcoming events with bookmaker odds for a sport
	FetchOdds(ctx context.Context, sportKey string) ([]EventData, error)

	// FetchScores retrieves recent results for a sport, looking back the given number of days
	FetchScores(ctx context.Context, sportKey string, daysBack int) ([]ScoreData, error)

	// Name returns the name of the data source
	Name() string

	// IsEnabled returns whether this data source is currently enabled
	IsEnabled() bool
}

// EventData represents a normalized event from any odds provider
type EventData struct {
	SourceID     string           `json:"source_id"`     // Provider's unique event ID
	SportKey     string           `json:"sport_key"`     // Sport identifier (e.g., "soccer_epl")
	SportTitle   string           `json:"sport_title"`   // Human-readable league name
	CommenceTime time.Time        `json:"commence_time"` // Scheduled start time UTC
	HomeTeam     string           `json:"home_team"`
	AwayTeam     string           `json:"away_team"`
	Bookmakers   []BookmakerQuote `json:"bookmakers"`
	FetchedAt    time.Time        `json:"fetched_at"` // When data was fetched
}

// BookmakerQuote represents one bookmaker's h2h market for an event
type BookmakerQuote struct {
	Key        string         `json:"key"`   // Stable bookmaker identifier
	Title      string         `json:"title"` // Display name
	LastUpdate time.Time      `json:"last_update"`
	Outcomes   []OutcomeQuote `json:"outcomes"`
}

// OutcomeQuote is a single priced outcome within a bookmaker's market
type OutcomeQuote struct {
	Name  string  `json:"name"`  // Team name or "Draw"
	Price float64 `json:"price"` // Decimal odds
}

// ScoreData represents a normalized result from any odds provider
type ScoreData struct {
	SourceID  string    `json:"source_id"`
	SportKey  string    `json:"sport_key"`
	Completed bool      `json:"completed"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	HomeScore *int      `json:"home_score"` // nil until a score is reported
	AwayScore *int      `json:"away_score"`
	FetchedAt time.Time `json:"fetched_at"`
}

// DataSourceError represents errors from data source operations
type DataSourceError struct {
	Source  string // Data source name
	Code    string // Error code (e.g., "rate_limit_exceeded")
	Message string // Error message
	Err     error  // Underlying error
}

func (e DataSourceError) Error() string {
	if e.Err != nil {
		return e.Source + ": " + e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Source + ": " + e.Code + ": " + e.Message
}

func (e DataSourceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeRateLimitExceeded    = "rate_limit_exceeded"
	ErrCodeAuthenticationFailed = "authentication_failed"
	ErrCodeNotFound             = "not_found"
	ErrCodeInvalidData          = "invalid_data"
	ErrCodeNetworkError         = "network_error"
	ErrCodeServerError          = "server_error"
)

var (
	ErrRateLimitExceeded    = errors.New("rate limit exceeded")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInvalidData          = errors.New("invalid data format")
)

// NewDataSourceError creates a new data source error
func NewDataSourceError(source, code, message string, err error) DataSourceError {
	return DataSourceError{
		Source:  source,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
