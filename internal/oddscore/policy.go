// Package oddscore implements the market intelligence core: best-price
// aggregation across bookmakers, draw-price imputation, boosted pricing,
// IQ score fusion, arbitrage detection and prediction verification.
//
// Every function in this package is a pure computation over immutable
// snapshots. Given the same inputs, every derived value is bit-for-bit
// reproducible.
package oddscore

import "strings"

// Named constants behind the default Config. DefaultDrawProbabilityFloor
// carries over from the original pricing rules; it has no stated derivation,
// so it stays overridable rather than baked into the math.
const (
	DefaultDrawProbabilityFloor      = 0.10
	DefaultBoostPercent              = 0.05
	DefaultHighConfidenceThreshold   = 75.0
	DefaultMediumConfidenceThreshold = 60.0
	DefaultMinArbitrageBookmakers    = 3
)

// Config holds the tunable constants of the scoring core
type Config struct {
	// DrawProbabilityFloor is the minimum implied draw probability used
	// when imputing a missing draw price
	DrawProbabilityFloor float64

	// BoostPercent is the markup applied to the best public price to
	// produce the house's displayed price
	BoostPercent float64

	// HighConfidenceThreshold and MediumConfidenceThreshold map a winning
	// IQ score onto a discrete confidence band
	HighConfidenceThreshold   float64
	MediumConfidenceThreshold float64

	// MinArbitrageBookmakers is the minimum number of distinct bookmakers
	// required before an arbitrage result is reported. A single wide
	// outlier quote cannot manufacture a false arbitrage this way.
	MinArbitrageBookmakers int

	// HouseBookmakerKey identifies the house's own bookmaker entry, which
	// is always excluded from the pool used to compute the public best
	// price so the boost never compounds on itself
	HouseBookmakerKey string
}

// DefaultConfig returns the core configuration with standard constants
func DefaultConfig() Config {
	return Config{
		DrawProbabilityFloor:      DefaultDrawProbabilityFloor,
		BoostPercent:              DefaultBoostPercent,
		HighConfidenceThreshold:   DefaultHighConfidenceThreshold,
		MediumConfidenceThreshold: DefaultMediumConfidenceThreshold,
		MinArbitrageBookmakers:    DefaultMinArbitrageBookmakers,
	}
}

// SportPolicy describes per-sport market rules
type SportPolicy struct {
	AllowsDraw   bool    `json:"allows_draw"`
	BoostPercent float64 `json:"boost_percent"`
}

// defaultPolicies covers the sports the feed currently carries. Lookups for
// unknown sports fall back to DefaultSportPolicy.
var defaultPolicies = map[string]SportPolicy{
	"soccer":   {AllowsDraw: true, BoostPercent: DefaultBoostPercent},
	"football": {AllowsDraw: true, BoostPercent: DefaultBoostPercent},
	"cricket":  {AllowsDraw: true, BoostPercent: DefaultBoostPercent},
	"baseball": {AllowsDraw: false, BoostPercent: DefaultBoostPercent},
}

// DefaultSportPolicy is the permissive default applied to sports without an
// explicit policy entry: a draw is assumed possible unless evidence says
// otherwise.
var DefaultSportPolicy = SportPolicy{AllowsDraw: true, BoostPercent: DefaultBoostPercent}

// PolicyTable maps sport keys to their market rules. It replaces the
// substring matching on league names that used to decide whether a sport
// allows a draw.
type PolicyTable struct {
	policies map[string]SportPolicy
	fallback SportPolicy
}

// NewPolicyTable returns a policy table seeded with the built-in sports
func NewPolicyTable() *PolicyTable {
	policies := make(map[string]SportPolicy, len(defaultPolicies))
	for k, v := range defaultPolicies {
		policies[k] = v
	}
	return &PolicyTable{policies: policies, fallback: DefaultSportPolicy}
}

// NewPolicyTableWith returns a policy table with explicit entries and fallback
func NewPolicyTableWith(policies map[string]SportPolicy, fallback SportPolicy) *PolicyTable {
	copied := make(map[string]SportPolicy, len(policies))
	for k, v := range policies {
		copied[k] = v
	}
	return &PolicyTable{policies: copied, fallback: fallback}
}

// Set adds or replaces the policy for a sport key
func (t *PolicyTable) Set(sportKey string, policy SportPolicy) {
	t.policies[sportKey] = policy
}

// Lookup returns the policy for a sport key. Keys are matched on their
// leading segment, so "soccer_epl" resolves to the "soccer" policy.
func (t *PolicyTable) Lookup(sportKey string) SportPolicy {
	if p, ok := t.policies[sportKey]; ok {
		return p
	}
	if i := strings.IndexByte(sportKey, '_'); i > 0 {
		if p, ok := t.policies[sportKey[:i]]; ok {
			return p
		}
	}
	return t.fallback
}

// AllowsDraw reports whether the sport's market has a draw outcome
func (t *PolicyTable) AllowsDraw(sportKey string) bool {
	return t.Lookup(sportKey).AllowsDraw
}
