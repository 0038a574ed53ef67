// Package config loads exchange configuration from a TOML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
)

// Mode selects where the exchange takes its order events from.
const (
	// ModeReplay reads a finite order CSV file and exits at end of input.
	ModeReplay = "replay"
	// ModeStream reads order events from a named pipe until the writer closes it.
	ModeStream = "stream"
)

// Config is the root configuration of the exchange binaries.
type Config struct {
	// Mode is either "replay" or "stream".
	Mode string `toml:"mode"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	Feed      Feed      `toml:"feed"`
	Engine    Engine    `toml:"engine"`
	Simulator Simulator `toml:"simulator"`
}

// Feed configures the order input and trade output locations.
type Feed struct {
	// OrdersPath is the order CSV file read in replay mode.
	OrdersPath string `toml:"orders_path"`
	// PipeName is the named pipe read in stream mode.
	PipeName string `toml:"pipe_name"`
	// TradesPath is the trade CSV file written by the exchange.
	TradesPath string `toml:"trades_path"`
}

// Engine configures event delivery into the matching engine.
type Engine struct {
	// EventBuffer is the capacity of the channel between the feed reader
	// and the engine loop.
	EventBuffer int `toml:"event_buffer"`
}

// Simulator configures the random order generator.
type Simulator struct {
	Seed        int64   `toml:"seed"`
	Events      int     `toml:"events"`
	MinPrice    uint64  `toml:"min_price"`
	MaxPrice    uint64  `toml:"max_price"`
	MinLots     uint64  `toml:"min_lots"`
	MaxLots     uint64  `toml:"max_lots"`
	LotSize     uint64  `toml:"lot_size"`
	MarketRatio float64 `toml:"market_ratio"`
	CancelRatio float64 `toml:"cancel_ratio"`
	// DelayMs pauses between streamed events, approximating a live feed.
	DelayMs int `toml:"delay_ms"`
}

// Defaults returns the configuration used when no file and no environment
// overrides are present.
func Defaults() Config {
	return Config{
		Mode:     ModeReplay,
		LogLevel: "info",
		Feed: Feed{
			OrdersPath: "orders.csv",
			PipeName:   "orders.pipe",
			TradesPath: "trades.csv",
		},
		Engine: Engine{
			EventBuffer: 1024,
		},
		Simulator: Simulator{
			Seed:        1,
			Events:      10000,
			MinPrice:    90,
			MaxPrice:    110,
			MinLots:     1,
			MaxLots:     20,
			LotSize:     10,
			MarketRatio: 0.15,
			CancelRatio: 0.10,
		},
	}
}

// Validate checks cross-field consistency of the configuration.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeReplay, ModeStream:
	default:
		return fmt.Errorf("config: unknown mode %q", c.Mode)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	if c.Mode == ModeReplay && c.Feed.OrdersPath == "" {
		return errors.New("config: feed.orders_path is required in replay mode")
	}
	if c.Mode == ModeStream && c.Feed.PipeName == "" {
		return errors.New("config: feed.pipe_name is required in stream mode")
	}
	if c.Engine.EventBuffer <= 0 {
		return errors.New("config: engine.event_buffer must be positive")
	}
	if c.Simulator.MaxPrice < c.Simulator.MinPrice {
		return errors.New("config: simulator.max_price below simulator.min_price")
	}
	if c.Simulator.MaxLots < c.Simulator.MinLots {
		return errors.New("config: simulator.max_lots below simulator.min_lots")
	}
	if c.Simulator.MinLots == 0 || c.Simulator.LotSize == 0 {
		return errors.New("config: simulator lot bounds must be positive")
	}
	if c.Simulator.MarketRatio < 0 || c.Simulator.MarketRatio > 1 {
		return errors.New("config: simulator.market_ratio must be within [0, 1]")
	}
	if c.Simulator.CancelRatio < 0 || c.Simulator.CancelRatio > 1 {
		return errors.New("config: simulator.cancel_ratio must be within [0, 1]")
	}
	return nil
}
