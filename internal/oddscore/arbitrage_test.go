package oddscore

import (
	"math"
	"testing"
)

func TestDetectArbitrageNone(t *testing.T) {
	// home 2.10 from booka, away 1.80 from bookc: 1/2.10 + 1/1.80 = 1.0317
	best := BestPrices{
		Home:           &BestPrice{Price: 2.10, Bookmaker: "booka"},
		Away:           &BestPrice{Price: 1.80, Bookmaker: "bookc"},
		BookmakerCount: 3,
	}

	result := DetectArbitrage(best, DefaultConfig())
	if result == nil {
		t.Fatalf("expected an arbitrage result")
	}
	if result.HasArbitrage {
		t.Fatalf("sum %v >= 1 must not flag arbitrage", result.ArbSum)
	}
	if math.Abs(result.ArbSum-(1/2.10+1/1.80)) > 1e-12 {
		t.Fatalf("arb sum must keep full precision, got %v", result.ArbSum)
	}
}

func TestDetectArbitrageFound(t *testing.T) {
	best := BestPrices{
		Home:           &BestPrice{Price: 2.20, Bookmaker: "booka"},
		Away:           &BestPrice{Price: 2.10, Bookmaker: "bookb"},
		BookmakerCount: 3,
	}

	result := DetectArbitrage(best, DefaultConfig())
	if result == nil || !result.HasArbitrage {
		t.Fatalf("sum below 1 must flag arbitrage, got %+v", result)
	}
	wantMargin := (1.0/result.ArbSum - 1.0) * 100
	if result.ProfitMarginPercent != wantMargin {
		t.Fatalf("expected margin %v, got %v", wantMargin, result.ProfitMarginPercent)
	}
}

func TestDetectArbitrageSampleFloor(t *testing.T) {
	best := BestPrices{
		Home:           &BestPrice{Price: 3.00, Bookmaker: "booka"},
		Away:           &BestPrice{Price: 3.00, Bookmaker: "bookb"},
		BookmakerCount: 2,
	}

	if result := DetectArbitrage(best, DefaultConfig()); result != nil {
		t.Fatalf("fewer than the bookmaker floor must be excluded, got %+v", result)
	}
}

func TestDetectArbitrageNoSlots(t *testing.T) {
	best := BestPrices{BookmakerCount: 5}
	if result := DetectArbitrage(best, DefaultConfig()); result != nil {
		t.Fatalf("no priced slots must yield no result, got %+v", result)
	}
}

// Increasing any single best price never increases the arb sum, so it can
// only move HasArbitrage from false toward true.
func TestDetectArbitrageMonotonicity(t *testing.T) {
	base := BestPrices{
		Home:           &BestPrice{Price: 2.05, Bookmaker: "booka"},
		Draw:           &BestPrice{Price: 3.40, Bookmaker: "bookb"},
		Away:           &BestPrice{Price: 3.10, Bookmaker: "bookc"},
		BookmakerCount: 3,
	}
	baseline := DetectArbitrage(base, DefaultConfig())

	for _, bump := range []float64{0.01, 0.25, 2.0} {
		raised := base
		raised.Home = &BestPrice{Price: base.Home.Price + bump, Bookmaker: "booka"}
		result := DetectArbitrage(raised, DefaultConfig())
		if result.ArbSum > baseline.ArbSum {
			t.Fatalf("raising home price by %v increased arb sum: %v > %v", bump, result.ArbSum, baseline.ArbSum)
		}
		if baseline.HasArbitrage && !result.HasArbitrage {
			t.Fatalf("raising a price must never revoke an arbitrage")
		}
	}
}
