package oddscore

import (
	"github.com/yourusername/odds-iq/internal/models"
)

// BestPrice records the maximum price observed for one outcome slot and the
// bookmaker that quoted it.
type BestPrice struct {
	Price     float64 `json:"price"`
	Bookmaker string  `json:"bookmaker"`
}

// SourceCalculated tags a synthetic price that no bookmaker actually quoted,
// so callers can keep it visually and semantically distinct from real quotes.
const SourceCalculated = "calculated"

// BestPrices holds the best price per outcome slot for one match. A nil slot
// means no bookmaker quoted that outcome; it is never coerced to zero.
type BestPrices struct {
	Home *BestPrice `json:"home"`
	Away *BestPrice `json:"away"`
	Draw *BestPrice `json:"draw"`

	// BookmakerCount is the number of quotes that contributed at least one
	// candidate price. The arbitrage detector uses it as its sample floor.
	BookmakerCount int `json:"bookmaker_count"`
}

// Slot returns the best price for a role, or nil if absent
func (b BestPrices) Slot(role models.Outcome) *BestPrice {
	switch role {
	case models.OutcomeHome:
		return b.Home
	case models.OutcomeAway:
		return b.Away
	case models.OutcomeDraw:
		return b.Draw
	}
	return nil
}

// Empty checks whether no slot received any usable price
func (b BestPrices) Empty() bool {
	return b.Home == nil && b.Away == nil && b.Draw == nil
}

// AggregateBestPrices finds the maximum price per outcome slot across all
// bookmaker quotes for a match. The bookmaker identified by excludeKey (the
// house's own entry) is never considered: its displayed price is derived
// from the public best, and feeding it back would compound the boost.
//
// Ties keep the first quote encountered. Quotes with a fallback collision or
// with no usable outcomes are skipped entirely. With zero usable quotes every
// slot stays nil and callers must suppress any best-odds surface.
func AggregateBestPrices(match *models.Match, excludeKey string) BestPrices {
	var best BestPrices

	for i := range match.Bookmakers {
		quote := &match.Bookmakers[i]
		if excludeKey != "" && quote.Key == excludeKey {
			continue
		}
		if len(quote.Outcomes) == 0 {
			continue
		}

		matched := MatchOutcomes(quote.Outcomes, match.HomeTeam, match.AwayTeam)
		if matched.FallbackCollision {
			continue
		}

		contributed := false
		if considerCandidate(&best.Home, matched.Home, quote.Key) {
			contributed = true
		}
		if considerCandidate(&best.Away, matched.Away, quote.Key) {
			contributed = true
		}
		if considerCandidate(&best.Draw, matched.Draw, quote.Key) {
			contributed = true
		}
		if contributed {
			best.BookmakerCount++
		}
	}

	return best
}

// considerCandidate keeps the slot's maximum, skipping unusable prices.
// Returns true when the candidate was a valid decimal-odds price, whether or
// not it displaced the current best.
func considerCandidate(slot **BestPrice, candidate *models.MarketOutcome, bookmaker string) bool {
	if candidate == nil || !candidate.IsUsable() {
		return false
	}
	if *slot == nil || candidate.Price > (*slot).Price {
		*slot = &BestPrice{Price: candidate.Price, Bookmaker: bookmaker}
	}
	return true
}
