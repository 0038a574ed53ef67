package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/quantarc/exchange-sim/config"
	"github.com/quantarc/exchange-sim/matching"
	"github.com/quantarc/exchange-sim/providers/csvfeed"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to the TOML configuration file")
		mode       = flag.String("mode", "", "override feed mode (replay|stream)")
		orders     = flag.String("orders", "", "override order CSV path")
		trades     = flag.String("trades", "", "override trade CSV output path")
		pipe       = flag.String("pipe", "", "override named pipe path")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlag(&cfg.Mode, *mode)
	applyFlag(&cfg.Feed.OrdersPath, *orders)
	applyFlag(&cfg.Feed.TradesPath, *trades)
	applyFlag(&cfg.Feed.PipeName, *pipe)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	if err := run(cfg, log); err != nil {
		log.Error("exchange failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	input, err := openFeed(cfg, log)
	if err != nil {
		return err
	}
	defer input.Close()

	output, err := os.Create(cfg.Feed.TradesPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", cfg.Feed.TradesPath, err)
	}
	defer output.Close()

	sink := newTradeSink(log, csvfeed.NewTradeWriter(output))
	engine := matching.NewEngine(sink, matching.NewOrderBook())

	log.Info("exchange started", "mode", cfg.Mode, "trades_path", cfg.Feed.TradesPath)
	started := time.Now()

	// Feed reading and matching run as a two-stage pipeline over a bounded
	// channel. The channel preserves arrival order, so time priority is
	// exactly receipt order.
	events := make(chan matching.OrderEvent, cfg.Engine.EventBuffer)
	group, ctx := errgroup.WithContext(context.Background())

	group.Go(func() error {
		defer close(events)
		reader := csvfeed.NewReader(input)
		return reader.Process(
			func(event matching.OrderEvent) error {
				select {
				case events <- event:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			},
			func(err error) {
				log.Warn("skipping malformed feed row", "error", err)
			},
		)
	})

	group.Go(func() error {
		for event := range events {
			if err := engine.Process(event); err != nil {
				// A crossed book is a defect, not an input problem
				if errors.Is(err, matching.ErrCrossedBook) {
					return fmt.Errorf("fatal: %w", err)
				}
				return err
			}
		}
		return nil
	})

	runErr := group.Wait()

	if err := sink.trades.Flush(); err != nil && runErr == nil {
		runErr = fmt.Errorf("flush trades: %w", err)
	}
	if sink.writeErr != nil && runErr == nil {
		runErr = fmt.Errorf("write trades: %w", sink.writeErr)
	}

	sink.logStatistics(engine.OrderBook())
	log.Info("exchange finished",
		"elapsed", time.Since(started).String(), "trades", engine.Trades())
	return runErr
}

// openFeed returns the order event input stream for the configured mode.
func openFeed(cfg config.Config, log *slog.Logger) (io.ReadCloser, error) {
	switch cfg.Mode {
	case config.ModeStream:
		log.Info("waiting for pipe writer", "pipe", cfg.Feed.PipeName)
		return csvfeed.OpenPipeReader(cfg.Feed.PipeName)
	default:
		return os.Open(cfg.Feed.OrdersPath)
	}
}

func applyFlag(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
