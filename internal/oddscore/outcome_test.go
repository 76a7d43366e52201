package oddscore

import (
	"testing"

	"github.com/yourusername/odds-iq/internal/models"
)

func TestMatchOutcomesByName(t *testing.T) {
	outcomes := []models.MarketOutcome{
		{Name: "Draw", Price: 3.4},
		{Name: " arsenal ", Price: 2.1},
		{Name: "CHELSEA", Price: 3.0},
	}

	matched := MatchOutcomes(outcomes, "Arsenal", "Chelsea")
	if matched.Home == nil || matched.Home.Price != 2.1 {
		t.Fatalf("expected home matched by trimmed case-folded name, got %+v", matched.Home)
	}
	if matched.Away == nil || matched.Away.Price != 3.0 {
		t.Fatalf("expected away matched by name, got %+v", matched.Away)
	}
	if matched.Draw == nil || matched.Draw.Price != 3.4 {
		t.Fatalf("expected draw matched by substring, got %+v", matched.Draw)
	}
	if matched.FallbackCollision {
		t.Fatalf("unexpected fallback collision")
	}
}

func TestMatchOutcomesPositionalFallback(t *testing.T) {
	outcomes := []models.MarketOutcome{
		{Name: "1", Price: 2.5},
		{Name: "X", Price: 3.2},
		{Name: "2", Price: 2.8},
	}

	matched := MatchOutcomes(outcomes, "Lyon", "Marseille")
	if matched.Home == nil || matched.Home.Price != 2.5 {
		t.Fatalf("expected first entry as home fallback, got %+v", matched.Home)
	}
	if matched.Away == nil || matched.Away.Price != 2.8 {
		t.Fatalf("expected last entry as away fallback, got %+v", matched.Away)
	}
	if matched.Draw == nil || matched.Draw.Price != 3.2 {
		t.Fatalf("expected middle entry as draw fallback, got %+v", matched.Draw)
	}
}

func TestMatchOutcomesTwoWayMarketHasNoDraw(t *testing.T) {
	outcomes := []models.MarketOutcome{
		{Name: "Yankees", Price: 1.9},
		{Name: "Red Sox", Price: 2.0},
	}

	matched := MatchOutcomes(outcomes, "Yankees", "Red Sox")
	if matched.Draw != nil {
		t.Fatalf("two-entry list must not produce a draw slot, got %+v", matched.Draw)
	}
}

func TestMatchOutcomesCollision(t *testing.T) {
	outcomes := []models.MarketOutcome{{Name: "Winner", Price: 1.5}}

	matched := MatchOutcomes(outcomes, "Ajax", "PSV")
	if !matched.FallbackCollision {
		t.Fatalf("single-entry fallback must report a collision")
	}
}

func TestMatchOutcomesTieName(t *testing.T) {
	outcomes := []models.MarketOutcome{
		{Name: "England", Price: 2.2},
		{Name: "Tie", Price: 4.1},
		{Name: "Australia", Price: 2.6},
	}

	matched := MatchOutcomes(outcomes, "England", "Australia")
	if matched.Draw == nil || matched.Draw.Price != 4.1 {
		t.Fatalf("expected tie outcome resolved as draw, got %+v", matched.Draw)
	}
}

func TestMatchOutcomesEmptyList(t *testing.T) {
	matched := MatchOutcomes(nil, "A", "B")
	if matched.Home != nil || matched.Away != nil || matched.Draw != nil {
		t.Fatalf("empty list must resolve no slots")
	}
}
