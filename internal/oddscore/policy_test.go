package oddscore

import "testing"

func TestPolicyTableLookup(t *testing.T) {
	table := NewPolicyTable()

	if !table.AllowsDraw("soccer") {
		t.Fatalf("soccer must allow a draw")
	}
	if table.AllowsDraw("baseball") {
		t.Fatalf("baseball must not allow a draw")
	}
	if !table.AllowsDraw("cricket") {
		t.Fatalf("cricket must allow a draw")
	}
}

func TestPolicyTableLeadingSegment(t *testing.T) {
	table := NewPolicyTable()

	if !table.AllowsDraw("soccer_epl") {
		t.Fatalf("league-qualified soccer key must resolve to the soccer policy")
	}
	if table.AllowsDraw("baseball_mlb") {
		t.Fatalf("baseball_mlb must resolve to the baseball policy")
	}
}

func TestPolicyTableUnknownSportDefaults(t *testing.T) {
	table := NewPolicyTable()
	if !table.AllowsDraw("handball_bundesliga") {
		t.Fatalf("unknown sports default to allowing a draw")
	}
}

func TestPolicyTableOverrides(t *testing.T) {
	table := NewPolicyTableWith(
		map[string]SportPolicy{"chess": {AllowsDraw: true, BoostPercent: 0.02}},
		SportPolicy{AllowsDraw: false},
	)

	if got := table.Lookup("chess"); got.BoostPercent != 0.02 {
		t.Fatalf("explicit entry must win, got %+v", got)
	}
	if table.AllowsDraw("anything_else") {
		t.Fatalf("custom fallback must apply to unknown keys")
	}
}
