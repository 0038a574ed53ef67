package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exchange.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
mode = "stream"
log_level = "debug"

[feed]
pipe_name = "/tmp/orders.pipe"
trades_path = "/tmp/trades.csv"

[engine]
event_buffer = 64

[simulator]
seed = 7
events = 500
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ModeStream, cfg.Mode)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "/tmp/orders.pipe", cfg.Feed.PipeName)
	require.Equal(t, "/tmp/trades.csv", cfg.Feed.TradesPath)
	require.Equal(t, 64, cfg.Engine.EventBuffer)
	require.Equal(t, int64(7), cfg.Simulator.Seed)
	require.Equal(t, 500, cfg.Simulator.Events)

	// Unset fields keep their defaults
	require.Equal(t, Defaults().Simulator.LotSize, cfg.Simulator.LotSize)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("EXCHANGE_MODE", "stream")
	t.Setenv("EXCHANGE_LOG_LEVEL", "warn")
	t.Setenv("EXCHANGE_EVENT_BUFFER", "16")
	t.Setenv("EXCHANGE_SIM_SEED", "99")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ModeStream, cfg.Mode)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, 16, cfg.Engine.EventBuffer)
	require.Equal(t, int64(99), cfg.Simulator.Seed)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Run("bad mode", func(t *testing.T) {
		t.Setenv("EXCHANGE_MODE", "batch")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("bad event buffer", func(t *testing.T) {
		t.Setenv("EXCHANGE_EVENT_BUFFER", "0")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("unparsable env int", func(t *testing.T) {
		t.Setenv("EXCHANGE_EVENT_BUFFER", "lots")
		_, err := Load("")
		require.Error(t, err)
	})
}

func TestValidateSimulatorBounds(t *testing.T) {
	cfg := Defaults()
	cfg.Simulator.MaxPrice = cfg.Simulator.MinPrice - 1
	require.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.Simulator.MarketRatio = 1.5
	require.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.Simulator.LotSize = 0
	require.Error(t, cfg.Validate())
}
