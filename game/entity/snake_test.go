package entity

import (
	"testing"

	"snake-classic/game/types"
)

func newTestSnake(head types.Point, heading types.Direction) *Snake {
	return NewSnake(head, heading, types.BlockSize, types.SnakeColor)
}

func TestPeekNextHead(t *testing.T) {
	tests := []struct {
		heading types.Direction
		want    types.Point
	}{
		{types.Right, types.Point{X: 120, Y: 100}},
		{types.Left, types.Point{X: 80, Y: 100}},
		{types.Up, types.Point{X: 100, Y: 80}},
		{types.Down, types.Point{X: 100, Y: 120}},
	}

	for _, tt := range tests {
		t.Run(tt.heading.String(), func(t *testing.T) {
			s := newTestSnake(types.Point{X: 100, Y: 100}, tt.heading)
			if got := s.PeekNextHead(); got != tt.want {
				t.Errorf("PeekNextHead() = %v, want %v", got, tt.want)
			}
			if s.GetHead() != (types.Point{X: 100, Y: 100}) {
				t.Errorf("PeekNextHead mutated the head: %v", s.GetHead())
			}
		})
	}
}

func TestCommitMoveShiftsByOneCell(t *testing.T) {
	s := newTestSnake(types.Point{X: 100, Y: 100}, types.Right)
	s.CommitMove(false)

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if s.GetHead() != (types.Point{X: 120, Y: 100}) {
		t.Errorf("head = %v, want (120,100)", s.GetHead())
	}
	if s.Contains(types.Point{X: 100, Y: 100}) {
		t.Error("old cell still marked occupied")
	}
}

func TestCommitMoveGrowth(t *testing.T) {
	s := newTestSnake(types.Point{X: 100, Y: 100}, types.Right)
	s.CommitMove(true)
	if s.Len() != 2 || s.TargetLength() != 2 {
		t.Fatalf("after growing move: len=%d target=%d, want 2/2", s.Len(), s.TargetLength())
	}
	want := []types.Point{{X: 120, Y: 100}, {X: 100, Y: 100}}
	for i, p := range s.Segments() {
		if p != want[i] {
			t.Errorf("segment %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestGrowThenMove(t *testing.T) {
	s := newTestSnake(types.Point{X: 100, Y: 100}, types.Right)
	s.Grow()
	if s.TargetLength() != 2 {
		t.Fatalf("TargetLength() = %d, want 2", s.TargetLength())
	}

	s.CommitMove(false)
	if s.Len() != 2 {
		t.Errorf("first move: len = %d, want 2", s.Len())
	}
	s.CommitMove(false)
	if s.Len() != 2 {
		t.Errorf("second move: len = %d, want 2", s.Len())
	}
}

func TestLengthMonotonic(t *testing.T) {
	s := newTestSnake(types.Point{X: 0, Y: 0}, types.Right)
	prev := s.Len()
	for i := 0; i < 30; i++ {
		if i%4 == 0 {
			s.Grow()
		}
		s.CommitMove(false)
		if s.Len() < prev {
			t.Fatalf("tick %d: length shrank from %d to %d", i, prev, s.Len())
		}
		if s.Len() > s.TargetLength() {
			t.Fatalf("tick %d: length %d exceeds target %d", i, s.Len(), s.TargetLength())
		}
		if want := min(s.TargetLength(), prev+1); s.Len() != want {
			t.Fatalf("tick %d: len = %d, want %d", i, s.Len(), want)
		}
		prev = s.Len()
	}
}

func TestTurnRejectsReversal(t *testing.T) {
	body := []types.Point{{X: 120, Y: 100}, {X: 100, Y: 100}}
	for _, heading := range types.Directions {
		s := NewSnakeFromBody(body, heading, types.BlockSize, types.SnakeColor)
		s.Turn(heading.Opposite())
		if s.Heading() != heading {
			t.Errorf("heading %v: reversal accepted, now %v", heading, s.Heading())
		}
	}
}

func TestTurnSingleSegmentMayReverse(t *testing.T) {
	s := newTestSnake(types.Point{X: 100, Y: 100}, types.Right)
	s.Turn(types.Left)
	if s.Heading() != types.Left {
		t.Errorf("Heading() = %v, want left", s.Heading())
	}
}

func TestTurnPerpendicular(t *testing.T) {
	body := []types.Point{{X: 120, Y: 100}, {X: 100, Y: 100}}
	s := NewSnakeFromBody(body, types.Right, types.BlockSize, types.SnakeColor)
	s.Turn(types.Up)
	if s.Heading() != types.Up {
		t.Errorf("Heading() = %v, want up", s.Heading())
	}
	s.Turn(types.Direction(42))
	if s.Heading() != types.Up {
		t.Errorf("invalid direction changed heading to %v", s.Heading())
	}
}

func TestTailVacates(t *testing.T) {
	s := newTestSnake(types.Point{X: 100, Y: 100}, types.Right)
	if !s.TailVacates() {
		t.Error("full-length snake should vacate its tail")
	}
	s.Grow()
	if s.TailVacates() {
		t.Error("growing snake should keep its tail")
	}
}

func TestOccupancyFollowsBody(t *testing.T) {
	s := newTestSnake(types.Point{X: 100, Y: 100}, types.Right)
	s.Grow()
	s.Grow()
	s.CommitMove(false)
	s.CommitMove(false)
	s.Turn(types.Down)
	s.CommitMove(false)
	s.CommitMove(false)

	segs := s.Segments()
	for _, p := range segs {
		if !s.Contains(p) {
			t.Errorf("segment %v not reported by Contains", p)
		}
	}
	if len(s.occupied) != len(segs) {
		t.Errorf("occupancy has %d cells, body has %d", len(s.occupied), len(segs))
	}
}
