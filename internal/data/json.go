package data

import (
	"errors"
	"fmt"
	"os"

	"anchor-sim/internal/model"

	"github.com/goccy/go-json"
)

// LoadPriceTape reads a recorded price sequence from a JSON file.
func LoadPriceTape(path string) (*model.PriceTape, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tape model.PriceTape
	if err := json.Unmarshal(raw, &tape); err != nil {
		return nil, fmt.Errorf("decode tape %s: %w", path, err)
	}
	if len(tape.Prices) == 0 {
		return nil, errors.New("price tape has no prices")
	}
	for i, p := range tape.Prices {
		if p <= 0 {
			return nil, fmt.Errorf("price tape: prices[%d] = %v, must be > 0", i, p)
		}
	}
	return &tape, nil
}
