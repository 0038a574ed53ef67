package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load builds the configuration in three layers: defaults, then the TOML
// file at path (skipped when path is empty), then EXCHANGE_* environment
// variables. A .env file in the working directory is loaded first so it can
// supply the environment overrides.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	// Missing .env is fine, the environment may be set directly
	_ = godotenv.Load()

	setStr(&cfg.Mode, "EXCHANGE_MODE")
	setStr(&cfg.LogLevel, "EXCHANGE_LOG_LEVEL")
	setStr(&cfg.Feed.OrdersPath, "EXCHANGE_ORDERS_PATH")
	setStr(&cfg.Feed.PipeName, "EXCHANGE_PIPE_NAME")
	setStr(&cfg.Feed.TradesPath, "EXCHANGE_TRADES_PATH")
	if err := setInt(&cfg.Engine.EventBuffer, "EXCHANGE_EVENT_BUFFER"); err != nil {
		return Config{}, err
	}
	if err := setInt64(&cfg.Simulator.Seed, "EXCHANGE_SIM_SEED"); err != nil {
		return Config{}, err
	}
	if err := setInt(&cfg.Simulator.Events, "EXCHANGE_SIM_EVENTS"); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setStr(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = n
	return nil
}

func setInt64(dst *int64, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = n
	return nil
}
