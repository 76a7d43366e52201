package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGroupSnapshotsPreservesBookmakerOrder(t *testing.T) {
	matchID := uuid.New()
	now := time.Now()

	rows := []*OddsSnapshot{
		{Time: now, MatchID: matchID, BookmakerKey: "zeta", BookmakerTitle: "Zeta", OutcomeName: "Home FC", Price: 2.0},
		{Time: now, MatchID: matchID, BookmakerKey: "alpha", BookmakerTitle: "Alpha", OutcomeName: "Home FC", Price: 2.1},
		{Time: now, MatchID: matchID, BookmakerKey: "zeta", BookmakerTitle: "Zeta", OutcomeName: "Away FC", Price: 3.5},
	}

	grouped := GroupSnapshots(rows)
	if len(grouped) != 2 {
		t.Fatalf("expected 2 bookmakers, got %d", len(grouped))
	}
	if grouped[0].Key != "zeta" || grouped[1].Key != "alpha" {
		t.Errorf("first-seen order not preserved: %s, %s", grouped[0].Key, grouped[1].Key)
	}
	if len(grouped[0].Outcomes) != 2 {
		t.Errorf("expected 2 outcomes for zeta, got %d", len(grouped[0].Outcomes))
	}
	if grouped[1].Outcomes[0].Price != 2.1 {
		t.Errorf("expected alpha price 2.1, got %v", grouped[1].Outcomes[0].Price)
	}
}

func TestGroupSnapshotsEmpty(t *testing.T) {
	if got := GroupSnapshots(nil); len(got) != 0 {
		t.Errorf("expected no quotes, got %d", len(got))
	}
}

func TestMarketOutcomeUsability(t *testing.T) {
	tests := []struct {
		price  float64
		usable bool
	}{
		{2.5, true},
		{1.01, true},
		{1.0, false},
		{0, false},
		{-3, false},
	}

	for _, tt := range tests {
		o := MarketOutcome{Name: "x", Price: tt.price}
		if o.IsUsable() != tt.usable {
			t.Errorf("price %v: expected usable=%v", tt.price, tt.usable)
		}
	}
}

func TestImpliedProbability(t *testing.T) {
	o := MarketOutcome{Name: "x", Price: 4.0}
	if got := o.ImpliedProbability(); got != 0.25 {
		t.Errorf("expected 0.25, got %v", got)
	}
}

func TestMatchStateHelpers(t *testing.T) {
	m := &Match{ScheduledStart: time.Now().Add(2 * time.Hour)}
	if !m.IsUpcoming() {
		t.Errorf("expected upcoming match")
	}

	m.Completed = true
	if m.IsUpcoming() {
		t.Errorf("completed match reported as upcoming")
	}
	if m.HasFinalScore() {
		t.Errorf("match without scores reported as settled")
	}

	home, away := 2, 1
	m.HomeScore, m.AwayScore = &home, &away
	if !m.HasFinalScore() {
		t.Errorf("expected final score")
	}
}

func TestPredictionIsPending(t *testing.T) {
	p := &Prediction{}
	if !p.IsPending() {
		t.Errorf("unverified prediction should be pending")
	}
	p.ResultVerified = true
	if p.IsPending() {
		t.Errorf("verified prediction should not be pending")
	}
}
