package game

import (
	"snake-classic/game/manager"
	"snake-classic/game/types"
)

// View is everything a frontend reads to draw one frame. TailMoves reports
// whether the tail cell is free on the next move.
type View struct {
	Grid         types.Grid
	State        State
	Segments     []types.Point
	TailMoves    bool
	Heading      types.Direction
	SnakeColor   types.Color
	Food         types.Point
	FoodColor    types.Color
	Score        int
	HighScore    int
	RoundsPlayed int
	AverageScore float64
	MedianScore  float64
	Cause        manager.CollisionType
	PauseLeft    int
}

// View snapshots the current state. Segments is a copy, head first.
func (g *Game) View() View {
	return View{
		Grid:         g.Grid,
		State:        g.state,
		Segments:     g.snake.Segments(),
		TailMoves:    g.snake.TailVacates(),
		Heading:      g.snake.Heading(),
		SnakeColor:   g.snake.Color(),
		Food:         g.food.Position(),
		FoodColor:    g.food.Color(),
		Score:        g.score,
		HighScore:    g.stateMgr.GetHighScore(),
		RoundsPlayed: g.stateMgr.GetRoundsPlayed(),
		AverageScore: g.stateMgr.GetAverageScore(),
		MedianScore:  g.stateMgr.GetMedianScore(),
		Cause:        g.cause,
		PauseLeft:    g.pauseLeft,
	}
}

// Head returns the first segment
func (v View) Head() types.Point {
	return v.Segments[0]
}
