package entity

import (
	"snake-classic/game/types"
)

// Snake owns its body, heading and the length it is growing toward.
// The body is ordered head first; occupied mirrors it for constant-time lookups.
type Snake struct {
	body         []types.Point
	heading      types.Direction
	targetLength int
	cellSize     int
	occupied     map[types.Point]int
	color        types.Color
}

func NewSnake(startPos types.Point, heading types.Direction, cellSize int, color types.Color) *Snake {
	s := &Snake{
		body:         []types.Point{startPos},
		heading:      heading,
		targetLength: 1,
		cellSize:     cellSize,
		occupied:     make(map[types.Point]int),
		color:        color,
	}
	s.occupied[startPos]++
	return s
}

// NewSnakeFromBody builds a snake whose target length equals the given body.
// The body must be non-empty and ordered head first.
func NewSnakeFromBody(body []types.Point, heading types.Direction, cellSize int, color types.Color) *Snake {
	s := NewSnake(body[0], heading, cellSize, color)
	for _, p := range body[1:] {
		s.body = append(s.body, p)
		s.occupied[p]++
	}
	s.targetLength = len(body)
	return s
}

func (s *Snake) GetHead() types.Point {
	return s.body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.body[len(s.body)-1]
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) TargetLength() int {
	return s.targetLength
}

func (s *Snake) Heading() types.Direction {
	return s.heading
}

func (s *Snake) Color() types.Color {
	return s.color
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

// Contains reports whether any segment occupies p
func (s *Snake) Contains(p types.Point) bool {
	return s.occupied[p] > 0
}

// Turn changes the heading unless it would reverse a snake longer than one
// segment straight into its own neck.
func (s *Snake) Turn(dir types.Direction) {
	if !dir.Valid() {
		return
	}
	if s.Len() > 1 && dir == s.heading.Opposite() {
		return
	}
	s.heading = dir
}

// PeekNextHead returns where the head would be after one step, without moving.
func (s *Snake) PeekNextHead() types.Point {
	return s.GetHead().Add(s.heading.Delta(s.cellSize))
}

// TailVacates reports whether the next move without growth frees the tail cell
func (s *Snake) TailVacates() bool {
	return s.Len() >= s.targetLength
}

// Grow raises the target length by one; the tail stays put on the next move.
func (s *Snake) Grow() {
	s.targetLength++
}

// CommitMove pushes the next head and drops the tail while the body is longer
// than the target length. Collisions are the caller's business.
func (s *Snake) CommitMove(grow bool) {
	if grow {
		s.Grow()
	}
	head := s.PeekNextHead()
	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = head
	s.occupied[head]++

	for len(s.body) > s.targetLength {
		tail := s.body[len(s.body)-1]
		s.body = s.body[:len(s.body)-1]
		if s.occupied[tail]--; s.occupied[tail] <= 0 {
			delete(s.occupied, tail)
		}
	}
}
