package oddscore

import (
	"strings"

	"github.com/yourusername/odds-iq/internal/models"
)

// MatchedOutcomes holds the resolved home/away/draw slots for one bookmaker
// quote. A nil slot means the bookmaker did not quote that outcome.
type MatchedOutcomes struct {
	Home *models.MarketOutcome
	Away *models.MarketOutcome
	Draw *models.MarketOutcome

	// FallbackCollision is set when the home and away positional fallbacks
	// resolved to the same list entry. The quote carries only one real
	// outcome and must not be used, otherwise a single price would be
	// counted for both sides.
	FallbackCollision bool
}

// MatchOutcomes resolves which outcome in a bookmaker's list is home, away
// and draw. Name matching under trim+case-fold is primary; feeds do not
// guarantee order or naming, so position is the best-effort fallback:
// first entry for home, last for away, middle for draw when the list has
// more than two entries.
func MatchOutcomes(outcomes []models.MarketOutcome, homeTeam, awayTeam string) MatchedOutcomes {
	var matched MatchedOutcomes
	if len(outcomes) == 0 {
		return matched
	}

	homeIdx, awayIdx := -1, -1
	for i := range outcomes {
		name := foldName(outcomes[i].Name)
		switch {
		case homeIdx < 0 && name == foldName(homeTeam):
			homeIdx = i
		case awayIdx < 0 && name == foldName(awayTeam):
			awayIdx = i
		case matched.Draw == nil && isDrawName(name):
			matched.Draw = &outcomes[i]
		}
	}

	if homeIdx < 0 {
		homeIdx = 0
	}
	if awayIdx < 0 {
		awayIdx = len(outcomes) - 1
	}
	matched.Home = &outcomes[homeIdx]
	matched.Away = &outcomes[awayIdx]
	matched.FallbackCollision = homeIdx == awayIdx

	if matched.Draw == nil && len(outcomes) > 2 {
		matched.Draw = &outcomes[len(outcomes)/2]
	}

	return matched
}

// Slot returns the resolved outcome for a role, or nil if absent
func (m MatchedOutcomes) Slot(role models.Outcome) *models.MarketOutcome {
	switch role {
	case models.OutcomeHome:
		return m.Home
	case models.OutcomeAway:
		return m.Away
	case models.OutcomeDraw:
		return m.Draw
	}
	return nil
}

func foldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func isDrawName(folded string) bool {
	return strings.Contains(folded, "draw") || strings.Contains(folded, "tie")
}
