package model

import (
	"testing"
	"time"

	"go.uber.org/multierr"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := SimulationConfig{
		AnchorPrice:      0,
		MicroTradeAmount: -1,
		TradeInterval:    0,
		InitialCash:      -5,
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if n := len(multierr.Errors(err)); n != 4 {
		t.Errorf("got %d errors, want 4: %v", n, err)
	}
}

func TestValidateRejectsFractionalInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TradeInterval = 1500 * time.Millisecond
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for fractional seconds")
	}
}
