// Package ai steers the snake without a human at the keyboard.
package ai

import (
	"snake-classic/game"
	"snake-classic/game/types"
)

// Autopilot always heads for the food along the shortest Manhattan path,
// avoiding walls and the body cells still occupied after one step. It does not plan further.
type Autopilot struct{}

func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// Next returns the direction to feed into Game.Turn. The bool is false when
// every move is fatal; the caller may keep its heading.
func (a *Autopilot) Next(v game.View) (types.Direction, bool) {
	if v.State != game.Running || len(v.Segments) == 0 {
		return v.Heading, false
	}

	body := v.Segments
	if v.TailMoves && len(body) > 1 {
		body = body[:len(body)-1]
	}
	blocked := make(map[types.Point]bool, len(body))
	for _, p := range body {
		blocked[p] = true
	}

	head := v.Head()
	best := v.Heading
	bestDist := -1
	for _, dir := range types.Directions {
		if len(v.Segments) > 1 && dir == v.Heading.Opposite() {
			continue
		}
		next := head.Add(dir.Delta(v.Grid.CellSize))
		if !v.Grid.Contains(next) || blocked[next] {
			continue
		}

		d := manhattanDistance(next, v.Food)
		if bestDist < 0 || d < bestDist || (d == bestDist && dir == v.Heading) {
			best, bestDist = dir, d
		}
	}
	return best, bestDist >= 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func manhattanDistance(p1, p2 types.Point) int {
	return abs(p2.X-p1.X) + abs(p2.Y-p1.Y)
}
