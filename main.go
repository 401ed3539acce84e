package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/game/manager"
	"snake-classic/headless"
	"snake-classic/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headlessMode := flag.Bool("headless", false, "Play in the terminal; commands are read from stdin")
	seed := flag.Int64("seed", 0, "RNG seed for food placement (0 = config seed, then time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N simulation steps (0 = unlimited)")
	tracePath := flag.String("trace", "", "Write a per-step CSV trace to this file")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logJSON := flag.Bool("log-json", false, "Log as JSON instead of text")
	flag.Parse()

	logger, err := newLogger(os.Stderr, *logLevel, *logJSON)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	if err := run(*configPath, *headlessMode, *seed, *maxTicks, *tracePath, logger); err != nil {
		slog.Error("snake exited with error", "error", err)
		os.Exit(1)
	}
}

func run(configPath string, terminal bool, seed int64, maxTicks int, tracePath string, logger *slog.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	rngSeed := seed
	if rngSeed == 0 {
		rngSeed = cfg.Seed
	}
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts, err := cfg.GameOptions()
	if err != nil {
		return err
	}
	opts.Rand = manager.NewRand(uint64(rngSeed))
	opts.Logger = logger

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		return err
	}

	trace, err := telemetry.CreateTrace(tracePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := trace.Close(); err != nil {
			logger.Warn("closing trace", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting",
		"headless", terminal,
		"seed", rngSeed,
		"tick_interval", cfg.Game.TickInterval,
		"max_ticks", maxTicks,
	)

	if terminal {
		return headless.Run(ctx, g, headless.Options{
			TickInterval: cfg.Game.TickInterval,
			MaxTicks:     maxTicks,
			In:           os.Stdin,
			Out:          os.Stdout,
			ClearScreen:  true,
			Trace:        trace,
		})
	}
	return runWindow(ctx, g, cfg, trace, maxTicks)
}

func newLogger(w io.Writer, level string, asJSON bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid -log-level %q: %w", level, err)
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}
	return slog.New(slog.NewTextHandler(w, hopts)), nil
}
