package ui

import (
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyToDirection translates a raylib key code. Arrows and WASD are accepted.
func KeyToDirection(key int32) (types.Direction, bool) {
	switch key {
	case rl.KeyUp, rl.KeyW:
		return types.Up, true
	case rl.KeyDown, rl.KeyS:
		return types.Down, true
	case rl.KeyLeft, rl.KeyA:
		return types.Left, true
	case rl.KeyRight, rl.KeyD:
		return types.Right, true
	default:
		return 0, false
	}
}

// PollDirections drains the key queue for this frame and returns the
// directions in the order they were pressed.
func PollDirections() []types.Direction {
	var dirs []types.Direction
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if dir, ok := KeyToDirection(key); ok {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
