package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// maxSampleAttempts bounds random sampling before falling back to a scan of
// the free cells.
const maxSampleAttempts = 64

// ErrNoFreeCell is returned when every cell on the board is excluded
var ErrNoFreeCell = errors.New("no free cell left for food")

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// Respawn moves food to a uniformly random cell for which excluded is false.
func (fm *FoodManager) Respawn(food *entity.Food, excluded func(types.Point) bool) error {
	pos, err := fm.GenerateFood(excluded)
	if err != nil {
		return err
	}
	food.Place(pos)
	return nil
}

// GenerateFood picks a random free cell. Sampling is retried a bounded number
// of times; after that the free cells are enumerated so a crowded board still
// gets a uniform pick.
func (fm *FoodManager) GenerateFood(excluded func(types.Point) bool) (types.Point, error) {
	for i := 0; i < maxSampleAttempts; i++ {
		food := fm.grid.CellAt(fm.rng.Intn(fm.grid.Cols()), fm.rng.Intn(fm.grid.Rows()))
		if !excluded(food) {
			return food, nil
		}
	}

	free := make([]types.Point, 0)
	for row := 0; row < fm.grid.Rows(); row++ {
		for col := 0; col < fm.grid.Cols(); col++ {
			p := fm.grid.CellAt(col, row)
			if !excluded(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, ErrNoFreeCell
	}
	return free[fm.rng.Intn(len(free))], nil
}
