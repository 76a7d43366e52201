package service

import (
	"github.com/yourusername/odds-iq/internal/config"
	"github.com/yourusername/odds-iq/internal/oddscore"
)

// CoreConfigFrom maps the application scoring configuration onto the scoring
// core's own config, falling back to core defaults for zero values.
func CoreConfigFrom(cfg *config.Config) oddscore.Config {
	out := oddscore.DefaultConfig()
	sc := cfg.Scoring

	if sc.DrawProbabilityFloor > 0 {
		out.DrawProbabilityFloor = sc.DrawProbabilityFloor
	}
	if sc.BoostPercent > 0 {
		out.BoostPercent = sc.BoostPercent
	}
	if sc.HighConfidenceThreshold > 0 {
		out.HighConfidenceThreshold = sc.HighConfidenceThreshold
	}
	if sc.MediumConfidenceThreshold > 0 {
		out.MediumConfidenceThreshold = sc.MediumConfidenceThreshold
	}
	if sc.MinArbitrageBookmakers > 0 {
		out.MinArbitrageBookmakers = sc.MinArbitrageBookmakers
	}
	out.HouseBookmakerKey = sc.HouseBookmakerKey

	return out
}

// PolicyTableFrom builds the sport policy table, applying per-sport
// configuration overrides on top of the built-in policies.
func PolicyTableFrom(cfg *config.Config) *oddscore.PolicyTable {
	table := oddscore.NewPolicyTable()
	for _, sport := range cfg.Sports {
		policy := oddscore.SportPolicy{
			AllowsDraw:   sport.AllowsDraw,
			BoostPercent: sport.BoostPercent,
		}
		if policy.BoostPercent <= 0 {
			policy.BoostPercent = oddscore.DefaultBoostPercent
		}
		table.Set(sport.Key, policy)
	}
	return table
}
