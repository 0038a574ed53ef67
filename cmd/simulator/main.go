package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/quantarc/exchange-sim/config"
	"github.com/quantarc/exchange-sim/providers/csvfeed"
	"github.com/quantarc/exchange-sim/simulator"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to the TOML configuration file")
		out        = flag.String("out", "", "write orders to this CSV file instead of the pipe")
		pipe       = flag.String("pipe", "", "override named pipe path")
		seed       = flag.Int64("seed", 0, "override generator seed")
		events     = flag.Int("events", 0, "override generated event count")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *pipe != "" {
		cfg.Feed.PipeName = *pipe
	}
	if *seed != 0 {
		cfg.Simulator.Seed = *seed
	}
	if *events != 0 {
		cfg.Simulator.Events = *events
	}

	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := run(cfg, log, *out); err != nil {
		log.Error("simulator failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger, outPath string) error {
	var (
		output io.WriteCloser
		err    error
		delay  time.Duration
	)
	if outPath != "" {
		output, err = os.Create(outPath)
		log.Info("writing order file", "path", outPath, "events", cfg.Simulator.Events)
	} else {
		log.Info("waiting for pipe reader", "pipe", cfg.Feed.PipeName)
		output, err = csvfeed.OpenPipeWriter(cfg.Feed.PipeName)
		delay = time.Duration(cfg.Simulator.DelayMs) * time.Millisecond
	}
	if err != nil {
		return err
	}
	defer output.Close()

	gen := simulator.NewGenerator(simulator.Config{
		Seed:        cfg.Simulator.Seed,
		Events:      cfg.Simulator.Events,
		MinPrice:    cfg.Simulator.MinPrice,
		MaxPrice:    cfg.Simulator.MaxPrice,
		MinLots:     cfg.Simulator.MinLots,
		MaxLots:     cfg.Simulator.MaxLots,
		LotSize:     cfg.Simulator.LotSize,
		MarketRatio: cfg.Simulator.MarketRatio,
		CancelRatio: cfg.Simulator.CancelRatio,
	})

	writer := csvfeed.NewEventWriter(output)
	written := 0
	for {
		event, ok := gen.Next()
		if !ok {
			break
		}
		if err := writer.Write(event); err != nil {
			return err
		}
		written++
		if delay > 0 {
			// Push each row through immediately so the reader sees a live feed
			if err := writer.Flush(); err != nil {
				return err
			}
			time.Sleep(delay)
		}
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	log.Info("simulation complete", "events", written, "seed", cfg.Simulator.Seed)
	return nil
}
