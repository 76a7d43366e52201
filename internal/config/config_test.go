// Package config provides configuration management for the OddsIQ platform.
package config

import (
	"testing"
)

const validConfigPath = "testdata/valid_config.yaml"

// TestLoadConfigSuccess tests loading a valid configuration file
func TestLoadConfigSuccess(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "secret_value")

	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}

	if cfg.App.Name != "odds-iq" {
		t.Errorf("expected app name 'odds-iq', got '%s'", cfg.App.Name)
	}
	if cfg.App.Environment != "development" {
		t.Errorf("expected environment 'development', got '%s'", cfg.App.Environment)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("expected database port 5432, got %d", cfg.Database.Port)
	}
	if cfg.Database.Password != "secret_value" {
		t.Errorf("expected env-expanded password, got '%s'", cfg.Database.Password)
	}
	if len(cfg.OddsFeed.SportKeys) != 2 {
		t.Errorf("expected 2 sport keys, got %d", len(cfg.OddsFeed.SportKeys))
	}
	if cfg.Scoring.HouseBookmakerKey != "oddsiq" {
		t.Errorf("expected house bookmaker 'oddsiq', got '%s'", cfg.Scoring.HouseBookmakerKey)
	}
}

// TestLoadConfigFileNotFound tests handling of missing configuration file
func TestLoadConfigFileNotFound(t *testing.T) {
	if _, err := Load("testdata/nonexistent_config.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

// TestLoadWithDefaults tests defaults survive a missing config file
func TestLoadWithDefaults(t *testing.T) {
	cfg, err := LoadWithDefaults("testdata/nonexistent_config.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.App.Environment != "development" {
		t.Errorf("expected default environment, got '%s'", cfg.App.Environment)
	}
	if cfg.Scoring.DrawProbabilityFloor != 0.10 {
		t.Errorf("expected default draw floor 0.10, got %v", cfg.Scoring.DrawProbabilityFloor)
	}
	if cfg.Scoring.MinArbitrageBookmakers != 3 {
		t.Errorf("expected default arbitrage floor 3, got %d", cfg.Scoring.MinArbitrageBookmakers)
	}
}

// TestValidateConfig tests validation of a loaded configuration
func TestValidateConfig(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "secret_value")

	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}

	if err := Validate(cfg); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

// TestValidateRejectsBadEnvironment tests the custom environment validator
func TestValidateRejectsBadEnvironment(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "secret_value")

	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}

	cfg.App.Environment = "invalid"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for invalid environment")
	}
}

// TestValidateProductionRequiresSSL tests the cross-field SSL rule
func TestValidateProductionRequiresSSL(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "secret_value")

	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}

	cfg.App.Environment = "production"
	cfg.Database.SSLMode = "disable"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for disabled SSL in production")
	}
}

// TestValidateConfidenceThresholdOrder tests the scoring threshold rule
func TestValidateConfidenceThresholdOrder(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "secret_value")

	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}

	cfg.Scoring.MediumConfidenceThreshold = 80
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for inverted confidence thresholds")
	}
}
