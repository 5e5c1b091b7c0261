package ui

import (
	"fmt"

	"snake-classic/game"
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize  = 30
	hudMargin = 5
)

// Renderer draws a game view into the raylib window, one pixel per board
// pixel. The window must be the same size as the grid.
type Renderer struct {
	grid types.Grid
}

func NewRenderer(grid types.Grid) *Renderer {
	return &Renderer{grid: grid}
}

func toColor(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (r *Renderer) Draw(v game.View) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(toColor(types.Background))

	if v.State == game.GameOver {
		r.drawGameOver(v)
		return
	}

	cell := int32(r.grid.CellSize)
	snakeColor := toColor(v.SnakeColor)
	for _, p := range v.Segments {
		rl.DrawRectangle(int32(p.X), int32(p.Y), cell, cell, snakeColor)
	}
	rl.DrawRectangle(int32(v.Food.X), int32(v.Food.Y), cell, cell, toColor(v.FoodColor))

	white := toColor(types.White)
	rl.DrawText(fmt.Sprintf("Score: %d", v.Score), hudMargin, hudMargin, fontSize, white)

	best := fmt.Sprintf("Best: %d", v.HighScore)
	rl.DrawText(best, int32(r.grid.Width)-rl.MeasureText(best, fontSize)-hudMargin, hudMargin, fontSize, white)
}

func (r *Renderer) drawGameOver(v game.View) {
	white := toColor(types.White)
	x := int32(r.grid.Width/2 - 70)
	y := int32(r.grid.Height / 2)

	rl.DrawText("Game Over!", x, y-30, fontSize, white)
	rl.DrawText(fmt.Sprintf("Score: %d", v.Score), x, y, fontSize, white)
	rl.DrawText(fmt.Sprintf("Best: %d", v.HighScore), x, y+30, fontSize/2, rl.Gray)
	rl.DrawText(fmt.Sprintf("Avg: %.1f  Median: %.1f", v.AverageScore, v.MedianScore), x, y+45, fontSize/2, rl.Gray)
}
