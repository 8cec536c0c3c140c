package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quantex-io/matchbook/matching"
)

// Config holds the driver settings.
type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
	Markets []string `yaml:"markets"`
}

func defaultConfig() Config {
	var c Config
	c.Logging.Level = "info"
	c.Logging.Pretty = true
	c.Markets = []string{"BTC/USD", "ETH/USD"}
	return c
}

// loadConfig reads the YAML config from path, falling back to defaults
// when no path is given.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// parsePair parses a "BASE/QUOTE" market name into a trading pair.
func parsePair(market string) (matching.TradingPair, error) {
	parts := strings.Split(market, "/")
	if len(parts) != 2 {
		return matching.TradingPair{}, fmt.Errorf("%w: %q", matching.ErrInvalidTradingPair, market)
	}

	pair := matching.NewTradingPair(parts[0], parts[1])
	if !pair.Valid() {
		return matching.TradingPair{}, fmt.Errorf("%w: %q", matching.ErrInvalidTradingPair, market)
	}
	return pair, nil
}
