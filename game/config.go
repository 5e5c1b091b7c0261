package game

import (
	"math"
	"time"

	"snake-classic/game/types"

	"github.com/pkg/errors"
)

// Config holds the board geometry and timing shared with the frontends
type Config struct {
	Grid          types.Grid
	FPS           int
	TickDivisor   int
	GameOverPause time.Duration
	Seed          uint64
}

func DefaultConfig() Config {
	return Config{
		Grid:          types.DefaultGrid(),
		FPS:           types.TargetFPS,
		TickDivisor:   types.TickDivisor,
		GameOverPause: types.GameOverPause,
		Seed:          uint64(time.Now().UnixNano()),
	}
}

func (c Config) Validate() error {
	g := c.Grid
	if g.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", g.CellSize)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return errors.Errorf("board must have a positive size, got %dx%d", g.Width, g.Height)
	}
	if g.Width%g.CellSize != 0 || g.Height%g.CellSize != 0 {
		return errors.Errorf("board %dx%d is not a multiple of cell size %d", g.Width, g.Height, g.CellSize)
	}
	if g.Cells() < 2 {
		return errors.New("board needs room for the snake and one food")
	}
	if c.FPS <= 0 || c.FPS > int(time.Second) {
		return errors.Errorf("fps must be in 1..%d, got %d", int(time.Second), c.FPS)
	}
	if c.TickDivisor <= 0 {
		return errors.Errorf("tick divisor must be positive, got %d", c.TickDivisor)
	}
	if c.GameOverPause < 0 {
		return errors.Errorf("game over pause must not be negative, got %v", c.GameOverPause)
	}
	if c.GameOverPause > time.Duration(math.MaxInt64)/time.Duration(c.FPS) {
		return errors.Errorf("game over pause %v is too long at %d fps", c.GameOverPause, c.FPS)
	}
	return nil
}

// PauseFrames converts the game over pause into a number of frames
func (c Config) PauseFrames() int {
	return int(c.GameOverPause * time.Duration(c.FPS) / time.Second)
}
