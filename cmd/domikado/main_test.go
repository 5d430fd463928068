package main

import "testing"

func TestSetupLogging(t *testing.T) {
	if err := setupLogging("debug"); err != nil {
		t.Errorf("setupLogging(debug) error: %v", err)
	}
	if err := setupLogging("chatty"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestRunCalculateMissingFile(t *testing.T) {
	if err := runCalculate("does/not/exist.yaml", "", false, true); err == nil {
		t.Error("expected error for missing province file")
	}
}

func TestRunCalculateUnknownIndicator(t *testing.T) {
	if err := runCalculate("../../data/provinces/papua.yaml", "literacy_rate,bogus", true, true); err == nil {
		t.Error("expected error for unknown indicator")
	}
}

func TestRunRequirementsJSON(t *testing.T) {
	if err := runRequirements("../../data/provinces/papua.yaml", true); err != nil {
		t.Errorf("runRequirements() error: %v", err)
	}
}
