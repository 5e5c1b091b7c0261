package types

import "time"

// Board and timing constants shared by the core and every frontend.
const (
	WindowWidth  = 800
	WindowHeight = 600
	BlockSize    = 20

	TargetFPS     = 60
	TickDivisor   = 5 // Frames per simulation tick
	GameOverPause = 3 * time.Second
)

// Point is a cell-aligned pixel coordinate (top-left corner of a cell)
type Point struct {
	X, Y int
}

// Add returns p shifted by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the board dimensions in pixels and the size of a cell
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// DefaultGrid returns the 800x600 board with 20px cells
func DefaultGrid() Grid {
	return Grid{Width: WindowWidth, Height: WindowHeight, CellSize: BlockSize}
}

func (g Grid) Cols() int {
	return g.Width / g.CellSize
}

func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Cells returns the number of cells on the board
func (g Grid) Cells() int {
	return g.Cols() * g.Rows()
}

// CellAt converts a column/row pair into a pixel coordinate
func (g Grid) CellAt(col, row int) Point {
	return Point{X: col * g.CellSize, Y: row * g.CellSize}
}

// Center returns the cell-aligned middle of the board
func (g Grid) Center() Point {
	return g.CellAt(g.Cols()/2, g.Rows()/2)
}

// Contains reports whether p lies on the board. A coordinate is outside when
// it is negative or beyond the last cell on either axis.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X <= g.Width-g.CellSize &&
		p.Y >= 0 && p.Y <= g.Height-g.CellSize
}

// Color is an RGBA colour independent of any drawing library
type Color struct {
	R, G, B, A uint8
}

var (
	Black = Color{R: 0, G: 0, B: 0, A: 255}
	White = Color{R: 255, G: 255, B: 255, A: 255}
	Red   = Color{R: 255, G: 0, B: 0, A: 255}

	SnakeColor = White
	FoodColor  = Red
	Background = Black
)
