package pricemodel

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// ParamInfo describes one tunable of a model.
type ParamInfo struct {
	Name        string
	Type        string // "float", "[]float"
	Description string
	Default     any
}

// Info describes a model for listings.
type Info struct {
	Name        string
	Description string
	Params      []ParamInfo
}

// Catalog lists the models Build understands.
func Catalog() []Info {
	return []Info{
		{
			Name:        "linear",
			Description: "Random walk around the previous price. Each step is uniform noise scaled by the anchor price.",
			Params: []ParamInfo{
				{Name: "volatility", Type: "float", Description: "Step size as a fraction of the anchor price", Default: DefaultLinearVolatility},
			},
		},
		{
			Name:        "exponential",
			Description: "Uniform noise around an exponential trend anchor*(1+growth)^t. Growth comes from the session config.",
			Params: []ParamInfo{
				{Name: "volatility", Type: "float", Description: "Noise as a fraction of the trend price", Default: DefaultExponentialVolatility},
			},
		},
		{
			Name:        "replay",
			Description: "Plays back a fixed price sequence and then holds the last price.",
			Params: []ParamInfo{
				{Name: "prices", Type: "[]float", Description: "Price per tick, starting at tick 1"},
			},
		},
	}
}

// Build constructs a model by name. Unknown params are ignored; params that
// are present but cannot be coerced to the expected type are an error.
func Build(name string, params map[string]any, noise Noise) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		vol, err := num(params, "volatility", DefaultLinearVolatility)
		if err != nil {
			return nil, err
		}
		return &Linear{Volatility: vol, Noise: noise}, nil
	case "exponential":
		vol, err := num(params, "volatility", DefaultExponentialVolatility)
		if err != nil {
			return nil, err
		}
		return &Exponential{Volatility: vol, Noise: noise}, nil
	case "replay":
		prices, err := nums(params, "prices")
		if err != nil {
			return nil, err
		}
		if len(prices) == 0 {
			return nil, fmt.Errorf("replay model requires a non-empty %q param", "prices")
		}
		for i, p := range prices {
			if !(p > 0) {
				return nil, fmt.Errorf("param %q[%d] = %v, must be > 0", "prices", i, p)
			}
		}
		return &Replay{Prices: prices}, nil
	default:
		return nil, fmt.Errorf("unsupported price model: %q", name)
	}
}

func num(m map[string]any, key string, def float64) (float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return def, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("param %q: %w", key, err)
	}
	return f, nil
}

func nums(m map[string]any, key string) ([]float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	if fs, ok := v.([]float64); ok {
		return fs, nil
	}
	raw, err := cast.ToSliceE(v)
	if err != nil {
		return nil, fmt.Errorf("param %q: %w", key, err)
	}
	out := make([]float64, 0, len(raw))
	for i, x := range raw {
		f, err := cast.ToFloat64E(x)
		if err != nil {
			return nil, fmt.Errorf("param %q[%d]: %w", key, i, err)
		}
		out = append(out, f)
	}
	return out, nil
}
