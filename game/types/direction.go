package types

// Direction is a cardinal heading. Frontends translate their own key codes
// into one of these values.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every heading in a stable order
var Directions = [...]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Delta converts the heading into a one-cell displacement
func (d Direction) Delta(cell int) Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -cell}
	case Down:
		return Point{X: 0, Y: cell}
	case Left:
		return Point{X: -cell, Y: 0}
	case Right:
		return Point{X: cell, Y: 0}
	default:
		return Point{}
	}
}
