package ui

import (
	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	statusHeight  = 30 // Room for the status line below the grid
)

var (
	pausedBackground = rl.Color{R: 30, G: 30, B: 30, A: 255}
	snakeColor       = rl.Green
	headColor        = rl.Color{R: 120, G: 255, B: 120, A: 255}
	foodColor        = rl.Red
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

// WindowSize is the window that fits grid at cellSize pixels per cell.
func WindowSize(grid types.Grid, cellSize int) (int32, int32) {
	w := int32(grid.Width*cellSize) + borderPadding*2
	h := int32(grid.Height*cellSize) + borderPadding*2 + statusHeight
	return w, h
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func background(phase types.Phase) rl.Color {
	switch phase {
	case types.Paused:
		return pausedBackground
	case types.GameOver:
		return rl.Red
	default:
		return rl.Black
	}
}

// Draw renders one frame of s.
func (r *Renderer) Draw(s game.Snapshot) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(background(s.Phase))

	// Calculate available space for grid after border padding and status line
	availableWidth := r.screenWidth - (borderPadding * 2)
	availableHeight := r.screenHeight - (borderPadding * 2) - statusHeight

	cellW := availableWidth / int32(s.Grid.Width)
	cellH := availableHeight / int32(s.Grid.Height)
	r.cellSize = min(cellW, cellH)
	if r.cellSize < 1 {
		r.cellSize = 1
	}

	r.totalGridWidth = r.cellSize * int32(s.Grid.Width)
	r.totalGridHeight = r.cellSize * int32(s.Grid.Height)
	r.offsetX = (r.screenWidth - r.totalGridWidth) / 2
	r.offsetY = borderPadding

	// Food first so the body covers it when it spawned underneath.
	r.drawCell(s.Food, foodColor)

	for i := len(s.Body) - 1; i > 0; i-- {
		r.drawCell(s.Body[i], snakeColor)
	}
	r.drawHead(s.Head(), s.Direction)

	fontSize := int32(statusHeight * 2 / 3)
	rl.DrawText(render.Status(s), r.offsetX, r.offsetY+r.totalGridHeight+borderPadding/2, fontSize, rl.White)
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	rl.DrawRectangle(
		r.offsetX+int32(p.X)*r.cellSize,
		r.offsetY+int32(p.Y)*r.cellSize,
		r.cellSize, r.cellSize, color)
}

// drawHead fills the head cell and marks the heading with a triangle.
func (r *Renderer) drawHead(p types.Point, direction types.Direction) {
	r.drawCell(p, headColor)

	headX := float32(r.offsetX + int32(p.X)*r.cellSize)
	headY := float32(r.offsetY + int32(p.Y)*r.cellSize)
	cell := float32(r.cellSize)
	half := cell / 2

	var a, b, c rl.Vector2
	switch direction {
	case types.Right:
		a = rl.Vector2{X: headX + cell, Y: headY + half}
		b = rl.Vector2{X: headX + half, Y: headY}
		c = rl.Vector2{X: headX + half, Y: headY + cell}
	case types.Left:
		a = rl.Vector2{X: headX, Y: headY + half}
		b = rl.Vector2{X: headX + half, Y: headY + cell}
		c = rl.Vector2{X: headX + half, Y: headY}
	case types.Down:
		a = rl.Vector2{X: headX + half, Y: headY + cell}
		b = rl.Vector2{X: headX + cell, Y: headY + half}
		c = rl.Vector2{X: headX, Y: headY + half}
	default:
		a = rl.Vector2{X: headX + half, Y: headY}
		b = rl.Vector2{X: headX, Y: headY + half}
		c = rl.Vector2{X: headX + cell, Y: headY + half}
	}
	// raylib wants counter-clockwise vertex order.
	rl.DrawTriangle(a, b, c, rl.Yellow)
}
