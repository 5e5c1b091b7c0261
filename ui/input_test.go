package ui

import (
	"testing"

	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestKeyToDirection(t *testing.T) {
	tests := []struct {
		key  int32
		want types.Direction
		ok   bool
	}{
		{rl.KeyUp, types.Up, true},
		{rl.KeyW, types.Up, true},
		{rl.KeyDown, types.Down, true},
		{rl.KeyS, types.Down, true},
		{rl.KeyLeft, types.Left, true},
		{rl.KeyA, types.Left, true},
		{rl.KeyRight, types.Right, true},
		{rl.KeyD, types.Right, true},
		{rl.KeySpace, 0, false},
	}

	for _, tt := range tests {
		got, ok := KeyToDirection(tt.key)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("KeyToDirection(%d) = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}
