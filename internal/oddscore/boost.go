package oddscore

import "github.com/shopspring/decimal"

// BoostPrice derives the house's displayed price for one outcome slot: the
// best public price with a fixed percentage uplift, rounded to 2 decimal
// places. The rounding goes through decimal arithmetic so 2.10 boosts to
// exactly 2.21 rather than a float artifact.
//
// The input must come from the public pool with the house bookmaker already
// excluded; boosting an already-boosted price would compound the markup.
func BoostPrice(best *BestPrice, cfg Config) *BestPrice {
	if best == nil || best.Price <= 1.0 {
		return nil
	}

	pct := cfg.BoostPercent
	if pct <= 0 {
		pct = DefaultBoostPercent
	}

	boosted := decimal.NewFromFloat(best.Price).
		Mul(decimal.NewFromFloat(1 + pct)).
		Round(2)

	price, _ := boosted.Float64()
	return &BestPrice{Price: price, Bookmaker: best.Bookmaker}
}

// BoostPrices applies BoostPrice to every present slot
func BoostPrices(best BestPrices, cfg Config) BestPrices {
	return BestPrices{
		Home:           BoostPrice(best.Home, cfg),
		Away:           BoostPrice(best.Away, cfg),
		Draw:           BoostPrice(best.Draw, cfg),
		BookmakerCount: best.BookmakerCount,
	}
}
