package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"anchor-sim/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load asset parameters from a separate YAML (e.g. examples/assets/*.yaml).
	// If both AssetFile and Asset are provided, Asset overrides AssetFile.
	AssetFile  string           `yaml:"asset_file"`
	Asset      AssetConfig      `yaml:"asset"`
	PriceModel PriceModelConfig `yaml:"price_model"`
}

type AssetConfig struct {
	Name             string  `yaml:"name"`
	AnchorPrice      float64 `yaml:"anchor_price"`
	MicroTradeAmount float64 `yaml:"micro_trade_amount"`
	// TradeInterval is in whole seconds.
	TradeInterval int     `yaml:"trade_interval"`
	InitialCash   float64 `yaml:"initial_cash"`
	GrowthRate    float64 `yaml:"growth_rate"`
}

type PriceModelConfig struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.AssetFile != "" {
		assetPath := c.AssetFile
		if !filepath.IsAbs(assetPath) {
			// Relative to the config file first, then to cwd.
			cand := filepath.Join(filepath.Dir(path), assetPath)
			if _, err := os.Stat(cand); err == nil {
				assetPath = cand
			}
		}
		loaded, err := LoadAssetFile(assetPath)
		if err != nil {
			return nil, err
		}
		c.Asset = MergeAsset(loaded, c.Asset)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.ToModelConfig().Validate(); err != nil {
		return fmt.Errorf("asset config invalid: %w", err)
	}
	return nil
}

// ToModelConfig fills unset fields from model.DefaultConfig.
func (c *Config) ToModelConfig() model.SimulationConfig {
	return c.Asset.ToModelConfig()
}

func (a AssetConfig) ToModelConfig() model.SimulationConfig {
	out := model.DefaultConfig()
	if a.Name != "" {
		out.AssetName = a.Name
	}
	if a.AnchorPrice != 0 {
		out.AnchorPrice = a.AnchorPrice
	}
	if a.MicroTradeAmount != 0 {
		out.MicroTradeAmount = a.MicroTradeAmount
	}
	if a.TradeInterval != 0 {
		out.TradeInterval = time.Duration(a.TradeInterval) * time.Second
	}
	if a.InitialCash != 0 {
		out.InitialCash = a.InitialCash
	}
	if a.GrowthRate != 0 {
		out.GrowthRate = a.GrowthRate
	}
	return out
}

type assetFileWrapper struct {
	Asset AssetConfig `yaml:"asset"`
}

// LoadAssetFile reads an asset preset.
func LoadAssetFile(path string) (AssetConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return AssetConfig{}, err
	}
	var w assetFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return AssetConfig{}, err
	}
	return w.Asset, nil
}

// MergeAsset overlays non-zero fields from override onto base.
// This is used when loading an asset file and then applying overrides from the request.
func MergeAsset(base, override AssetConfig) AssetConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.AnchorPrice != 0 {
		out.AnchorPrice = override.AnchorPrice
	}
	if override.MicroTradeAmount != 0 {
		out.MicroTradeAmount = override.MicroTradeAmount
	}
	if override.TradeInterval != 0 {
		out.TradeInterval = override.TradeInterval
	}
	if override.InitialCash != 0 {
		out.InitialCash = override.InitialCash
	}
	if override.GrowthRate != 0 {
		out.GrowthRate = override.GrowthRate
	}
	return out
}
