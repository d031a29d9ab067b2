package model

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
)

const (
	// DefaultInitialCash is the cash balance every run starts from.
	DefaultInitialCash = 1000.0
	// DefaultGrowthRate is the per-tick drift of the exponential price model.
	DefaultGrowthRate = 0.0005
)

// SimulationConfig defines the operator inputs of a run.
// Units:
// - AnchorPrice, MicroTradeAmount, InitialCash: USD
// - TradeInterval: whole seconds at the API/config boundary
// - GrowthRate: fraction per tick
type SimulationConfig struct {
	AssetName        string
	AnchorPrice      float64
	MicroTradeAmount float64
	TradeInterval    time.Duration
	GrowthRate       float64
	InitialCash      float64
}

func DefaultConfig() SimulationConfig {
	return SimulationConfig{
		AssetName:        "ACME",
		AnchorPrice:      100,
		MicroTradeAmount: 1,
		TradeInterval:    time.Second,
		GrowthRate:       DefaultGrowthRate,
		InitialCash:      DefaultInitialCash,
	}
}

// Validate reports every invalid field, not just the first one.
func (c SimulationConfig) Validate() error {
	var err error
	if c.AnchorPrice <= 0 {
		err = multierr.Append(err, errors.New("anchor price must be > 0"))
	}
	if c.MicroTradeAmount <= 0 {
		err = multierr.Append(err, errors.New("micro trade amount must be > 0"))
	}
	if c.TradeInterval <= 0 {
		err = multierr.Append(err, errors.New("trade interval must be > 0"))
	} else if c.TradeInterval%time.Second != 0 {
		err = multierr.Append(err, fmt.Errorf("trade interval must be whole seconds, got %s", c.TradeInterval))
	}
	if c.InitialCash < 0 {
		err = multierr.Append(err, errors.New("initial cash must be >= 0"))
	}
	return err
}

// IntervalSeconds is TradeInterval expressed in whole seconds.
func (c SimulationConfig) IntervalSeconds() int {
	return int(c.TradeInterval / time.Second)
}
