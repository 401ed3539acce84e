// Package headless runs the game in a terminal: commands arrive one per line
// on a reader and text frames are written after every change.
package headless

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"snake-classic/control"
	"snake-classic/game"
	"snake-classic/render"
	"snake-classic/telemetry"
)

// Options configures Run.
type Options struct {
	TickInterval time.Duration
	// MaxTicks stops the loop after that many clock ticks (0 = unlimited).
	MaxTicks    int
	In          io.Reader
	Out         io.Writer
	ClearScreen bool
	// Trace may be nil.
	Trace *telemetry.TraceWriter
}

// Run drives g until a quit command, ctx cancellation or MaxTicks. Only the
// calling goroutine touches g; the reader goroutine just forwards lines.
func Run(ctx context.Context, g *game.Game, opts Options) error {
	if opts.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", opts.TickInterval)
	}

	done := make(chan struct{})
	defer close(done)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(opts.In)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()

	renderer := render.NewASCII(opts.Out, opts.ClearScreen)
	draw := func() error {
		if err := renderer.Draw(g.Snapshot()); err != nil {
			return fmt.Errorf("drawing frame: %w", err)
		}
		return nil
	}
	if err := draw(); err != nil {
		return err
	}

	ticker := time.NewTicker(opts.TickInterval)
	defer ticker.Stop()

	for frame := 0; opts.MaxTicks == 0 || frame < opts.MaxTicks; {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				// Input closed; keep the clock running.
				lines = nil
				continue
			}
			if control.Apply(g, control.ParseLine(line)) {
				return nil
			}
		case <-ticker.C:
			g.Tick()
			if err := opts.Trace.Write(telemetry.NewTickRecord(frame, g.Snapshot())); err != nil {
				return err
			}
			frame++
		}
		if err := draw(); err != nil {
			return err
		}
	}
	return nil
}
