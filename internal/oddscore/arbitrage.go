package oddscore

// ArbitrageResult reports a dutching calculation over independently-best
// prices across bookmakers. When the implied probabilities of the best price
// per outcome sum to under 1, staking proportionally to each 1/price locks in
// a profit regardless of outcome.
type ArbitrageResult struct {
	// ArbSum is the sum of implied probabilities over all present slots.
	// It is kept at full float precision; only the margin is rounded, and
	// only at report time.
	ArbSum float64 `json:"arb_sum"`

	HasArbitrage bool `json:"has_arbitrage"`

	// ProfitMarginPercent is (1/ArbSum - 1) * 100, only meaningful when
	// HasArbitrage is true
	ProfitMarginPercent float64 `json:"profit_margin_percent,omitempty"`

	BookmakerCount int `json:"bookmaker_count"`
}

// DetectArbitrage computes the arbitrage result for a match's best prices.
// The best prices must already exclude the house bookmaker.
//
// Returns nil when fewer than cfg.MinArbitrageBookmakers quotes contributed,
// or when no slot has a price: too small a sample lets a single wide outlier
// quote manufacture a false arbitrage.
func DetectArbitrage(best BestPrices, cfg Config) *ArbitrageResult {
	minBooks := cfg.MinArbitrageBookmakers
	if minBooks <= 0 {
		minBooks = DefaultMinArbitrageBookmakers
	}
	if best.BookmakerCount < minBooks {
		return nil
	}

	sum := 0.0
	slots := 0
	for _, slot := range []*BestPrice{best.Home, best.Draw, best.Away} {
		if slot == nil || slot.Price <= 1.0 {
			continue
		}
		sum += 1.0 / slot.Price
		slots++
	}
	if slots == 0 {
		return nil
	}

	result := &ArbitrageResult{
		ArbSum:         sum,
		HasArbitrage:   sum < 1.0,
		BookmakerCount: best.BookmakerCount,
	}
	if result.HasArbitrage {
		result.ProfitMarginPercent = (1.0/sum - 1.0) * 100
	}

	return result
}
