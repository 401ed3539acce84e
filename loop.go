package main

import (
	"context"

	"snake-classic/config"
	"snake-classic/control"
	"snake-classic/game"
	"snake-classic/telemetry"
	"snake-classic/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// runWindow polls input every frame and ticks every cfg.TickEvery() frames.
func runWindow(ctx context.Context, g *game.Game, cfg *config.Config, trace *telemetry.TraceWriter, maxTicks int) error {
	w, h := ui.WindowSize(g.Grid(), cfg.Screen.CellSize)
	rl.InitWindow(w, h, cfg.Screen.Title)
	defer rl.CloseWindow()

	// Escape pauses instead of closing the window.
	rl.SetExitKey(0)
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	renderer := ui.NewRenderer()
	tickEvery := cfg.TickEvery()
	steps := 0

	for frame := 0; ; frame++ {
		if ctx.Err() != nil {
			return nil
		}
		for _, cmd := range ui.PollCommands() {
			if control.Apply(g, cmd) {
				return nil
			}
		}

		if frame%tickEvery == 0 {
			g.Tick()
			if err := trace.Write(telemetry.NewTickRecord(frame, g.Snapshot())); err != nil {
				return err
			}
			steps++
			if maxTicks > 0 && steps >= maxTicks {
				return nil
			}
		}

		renderer.Draw(g.Snapshot())
	}
}
