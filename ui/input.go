package ui

import (
	"snake-classic/control"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyBindings = []struct {
	keys    []int32
	command control.Command
}{
	{[]int32{rl.KeyW, rl.KeyUp}, control.MoveUp},
	{[]int32{rl.KeyS, rl.KeyDown}, control.MoveDown},
	{[]int32{rl.KeyA, rl.KeyLeft}, control.MoveLeft},
	{[]int32{rl.KeyD, rl.KeyRight}, control.MoveRight},
	{[]int32{rl.KeyEscape, rl.KeyP}, control.TogglePause},
	{[]int32{rl.KeySpace}, control.Reset},
	{[]int32{rl.KeyQ}, control.Quit},
}

// PollCommands returns the commands for keys pressed since the last frame,
// in binding order. Closing the window yields Quit.
func PollCommands() []control.Command {
	var cmds []control.Command
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if rl.IsKeyPressed(k) {
				cmds = append(cmds, b.command)
				break
			}
		}
	}
	if rl.WindowShouldClose() {
		cmds = append(cmds, control.Quit)
	}
	return cmds
}
