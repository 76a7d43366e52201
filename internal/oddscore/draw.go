package oddscore

// ImputeDrawPrice derives an implied draw price when the sport's market has a
// draw outcome but no bookmaker quoted one.
//
// A real quoted draw price is returned unchanged with its source bookmaker.
// Otherwise, when both home and away best prices exist, the draw probability
// is whatever probability mass the two sides leave over, floored at
// cfg.DrawProbabilityFloor so the implied price stays finite and sane even
// when home and away probabilities already sum to 0.90 or more. The result
// is tagged SourceCalculated.
//
// If either side's best price is absent, or the sport disallows a draw, no
// draw price can be produced and nil is returned.
func ImputeDrawPrice(best BestPrices, policy SportPolicy, cfg Config) *BestPrice {
	if !policy.AllowsDraw {
		return nil
	}
	if best.Draw != nil {
		return best.Draw
	}
	if best.Home == nil || best.Away == nil {
		return nil
	}

	floor := cfg.DrawProbabilityFloor
	if floor <= 0 {
		floor = DefaultDrawProbabilityFloor
	}

	homeProb := 1.0 / best.Home.Price
	awayProb := 1.0 / best.Away.Price
	drawProb := 1.0 - homeProb - awayProb
	if drawProb < floor {
		drawProb = floor
	}

	return &BestPrice{
		Price:     1.0 / drawProb,
		Bookmaker: SourceCalculated,
	}
}
