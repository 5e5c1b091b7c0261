package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

// SpawnManager creates the snake for a new round: one segment in the middle
// of the board heading in a random direction.
type SpawnManager struct {
	grid  types.Grid
	rng   *rand.Rand
	color types.Color
}

func NewSpawnManager(grid types.Grid, rng *rand.Rand, color types.Color) *SpawnManager {
	return &SpawnManager{
		grid:  grid,
		rng:   rng,
		color: color,
	}
}

func (sm *SpawnManager) SpawnSnake() *entity.Snake {
	heading := types.Directions[sm.rng.Intn(len(types.Directions))]
	return entity.NewSnake(sm.grid.Center(), heading, sm.grid.CellSize, sm.color)
}
