package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/odds-iq/internal/config"
	"github.com/yourusername/odds-iq/internal/datasource"
	"github.com/yourusername/odds-iq/internal/oddscore"
)

func TestValidateEvent(t *testing.T) {
	validator := NewQuoteValidator(nil)

	tests := []struct {
		name    string
		mutate  func(*datasource.EventData)
		wantErr bool
	}{
		{"valid event", func(ev *datasource.EventData) {}, false},
		{"missing source ID", func(ev *datasource.EventData) { ev.SourceID = "" }, true},
		{"missing sport key", func(ev *datasource.EventData) { ev.SportKey = "" }, true},
		{"missing home team", func(ev *datasource.EventData) { ev.HomeTeam = "" }, true},
		{"identical teams", func(ev *datasource.EventData) { ev.AwayTeam = ev.HomeTeam }, true},
		{"zero start time", func(ev *datasource.EventData) { ev.CommenceTime = time.Time{} }, true},
		{"ancient event", func(ev *datasource.EventData) { ev.CommenceTime = time.Now().Add(-60 * 24 * time.Hour) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := sampleEvent()
			tt.mutate(&ev)
			errs := validator.ValidateEvent(&ev)
			if tt.wantErr {
				assert.NotEmpty(t, errs)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestUsableOutcomesFiltersPrices(t *testing.T) {
	validator := NewQuoteValidator(nil)

	quote := datasource.BookmakerQuote{
		Key: "bet365",
		Outcomes: []datasource.OutcomeQuote{
			{Name: "Arsenal", Price: 2.10},
			{Name: "Chelsea", Price: 1.00},
			{Name: "Draw", Price: 1200.0},
			{Name: "", Price: 3.0},
		},
	}

	usable := validator.UsableOutcomes("evt-1", quote)
	assert.Len(t, usable, 1)
	assert.Equal(t, "Arsenal", usable[0].Name)
}

func TestCoreConfigFromScoringConfig(t *testing.T) {
	cfg := &config.Config{
		Scoring: config.ScoringConfig{
			HouseBookmakerKey:         "houseodds",
			BoostPercent:              0.08,
			DrawProbabilityFloor:      0.12,
			HighConfidenceThreshold:   80,
			MediumConfidenceThreshold: 65,
			MinArbitrageBookmakers:    4,
		},
	}

	core := CoreConfigFrom(cfg)
	assert.Equal(t, "houseodds", core.HouseBookmakerKey)
	assert.Equal(t, 0.08, core.BoostPercent)
	assert.Equal(t, 0.12, core.DrawProbabilityFloor)
	assert.Equal(t, 80.0, core.HighConfidenceThreshold)
	assert.Equal(t, 65.0, core.MediumConfidenceThreshold)
	assert.Equal(t, 4, core.MinArbitrageBookmakers)
}

func TestCoreConfigDefaults(t *testing.T) {
	core := CoreConfigFrom(&config.Config{})
	assert.Equal(t, oddscore.DefaultConfig().DrawProbabilityFloor, core.DrawProbabilityFloor)
	assert.Equal(t, oddscore.DefaultConfig().BoostPercent, core.BoostPercent)
	assert.Empty(t, core.HouseBookmakerKey)
}

func TestPolicyTableFromOverrides(t *testing.T) {
	cfg := &config.Config{
		Sports: []config.SportConfig{
			{Key: "rugby", AllowsDraw: true, BoostPercent: 0.03},
			{Key: "baseball", AllowsDraw: true},
		},
	}

	table := PolicyTableFrom(cfg)

	rugby := table.Lookup("rugby_union")
	assert.True(t, rugby.AllowsDraw)
	assert.Equal(t, 0.03, rugby.BoostPercent)

	// Config override wins over the built-in baseball policy
	assert.True(t, table.AllowsDraw("baseball_mlb"))

	// Untouched built-ins survive
	assert.True(t, table.AllowsDraw("soccer_epl"))
}
