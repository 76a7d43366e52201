package service

import (
	"fmt"
	"log"
	"time"

	"github.com/yourusername/odds-iq/internal/datasource"
)

// Price bounds for a usable decimal quote. Anything outside this range is
// treated as feed noise and dropped before it reaches storage.
const (
	MinQuotePrice = 1.01
	MaxQuotePrice = 1000.0
)

// maxEventAge bounds how stale an event's start time may be before the
// record is rejected as historical garbage.
const maxEventAge = 30 * 24 * time.Hour

// ValidationError describes a single failed validation check
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// QuoteValidator checks feed events and quotes before persistence
type QuoteValidator struct {
	logger *log.Logger
}

// NewQuoteValidator creates a new quote validator
func NewQuoteValidator(logger *log.Logger) *QuoteValidator {
	return &QuoteValidator{logger: logger}
}

// ValidateEvent checks the event-level fields of a feed record
func (v *QuoteValidator) ValidateEvent(ev *datasource.EventData) []ValidationError {
	var errs []ValidationError

	if ev.SourceID == "" {
		errs = append(errs, ValidationError{Field: "source_id", Message: "missing event ID"})
	}
	if ev.SportKey == "" {
		errs = append(errs, ValidationError{Field: "sport_key", Message: "missing sport key"})
	}
	if ev.HomeTeam == "" {
		errs = append(errs, ValidationError{Field: "home_team", Message: "missing home team"})
	}
	if ev.AwayTeam == "" {
		errs = append(errs, ValidationError{Field: "away_team", Message: "missing away team"})
	}
	if ev.HomeTeam != "" && ev.HomeTeam == ev.AwayTeam {
		errs = append(errs, ValidationError{Field: "away_team", Message: "home and away teams are identical"})
	}
	if ev.CommenceTime.IsZero() {
		errs = append(errs, ValidationError{Field: "commence_time", Message: "missing start time"})
	} else if time.Since(ev.CommenceTime) > maxEventAge {
		errs = append(errs, ValidationError{Field: "commence_time", Message: "event is too old"})
	}

	return errs
}

// UsableOutcomes filters a quote down to outcomes with prices inside the
// accepted range, logging what was dropped.
func (v *QuoteValidator) UsableOutcomes(eventID string, quote datasource.BookmakerQuote) []datasource.OutcomeQuote {
	usable := make([]datasource.OutcomeQuote, 0, len(quote.Outcomes))
	for _, oc := range quote.Outcomes {
		if oc.Name == "" {
			continue
		}
		if oc.Price < MinQuotePrice || oc.Price > MaxQuotePrice {
			if v.logger != nil {
				v.logger.Printf("Dropping outcome %q from %s for event %s: price %.2f out of range", oc.Name, quote.Key, eventID, oc.Price)
			}
			continue
		}
		usable = append(usable, oc)
	}
	return usable
}
