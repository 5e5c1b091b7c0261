package ai

import (
	"testing"

	"snake-classic/game"
	"snake-classic/game/types"

	"github.com/rs/zerolog"
)

func view(segments []types.Point, heading types.Direction, food types.Point) game.View {
	return game.View{
		Grid:     types.DefaultGrid(),
		State:    game.Running,
		Segments: segments,
		Heading:  heading,
		Food:     food,
	}
}

func TestAutopilotChoosesShortestSafeMove(t *testing.T) {
	tests := []struct {
		name string
		v    game.View
		want types.Direction
	}{
		{
			name: "food below",
			v:    view([]types.Point{{X: 100, Y: 100}}, types.Right, types.Point{X: 100, Y: 200}),
			want: types.Down,
		},
		{
			name: "tie keeps heading",
			v:    view([]types.Point{{X: 100, Y: 100}}, types.Right, types.Point{X: 200, Y: 200}),
			want: types.Right,
		},
		{
			name: "wall ahead",
			v:    view([]types.Point{{X: 780, Y: 100}, {X: 760, Y: 100}}, types.Right, types.Point{X: 780, Y: 300}),
			want: types.Down,
		},
		{
			name: "no reversal into neck",
			v:    view([]types.Point{{X: 100, Y: 100}, {X: 120, Y: 100}}, types.Left, types.Point{X: 300, Y: 80}),
			want: types.Up,
		},
	}

	a := NewAutopilot()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := a.Next(tt.v)
			if !ok {
				t.Fatal("Next reported no safe move")
			}
			if got != tt.want {
				t.Errorf("Next() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAutopilotTrapped(t *testing.T) {
	// head in the corner, body blocking the only open neighbour
	v := view([]types.Point{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 20}, {X: 0, Y: 20}, {X: 0, Y: 40}}, types.Up, types.Point{X: 400, Y: 300})
	if _, ok := NewAutopilot().Next(v); ok {
		t.Error("expected no safe move")
	}
}

func TestAutopilotFollowsVacatingTail(t *testing.T) {
	// head in the corner, the only open neighbour is the tail cell
	body := []types.Point{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 20}, {X: 0, Y: 20}}
	v := view(body, types.Left, types.Point{X: 400, Y: 300})

	v.TailMoves = true
	got, ok := NewAutopilot().Next(v)
	if !ok || got != types.Down {
		t.Errorf("Next() = %v, %v; want down onto the leaving tail", got, ok)
	}

	v.TailMoves = false
	if _, ok := NewAutopilot().Next(v); ok {
		t.Error("tail stays while growing, expected no safe move")
	}
}

// TestAutopilotSoak drives full rounds and checks the board invariants after
// every frame.
func TestAutopilotSoak(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = 2024
	cfg.GameOverPause = 0
	g, err := game.NewGame(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	pilot := NewAutopilot()

	prevLen, maxScore := 0, 0
	for frame := 0; frame < 50000; frame++ {
		if dir, ok := pilot.Next(g.View()); ok {
			g.Turn(dir)
		}
		g.Frame()

		v := g.View()
		if v.State != game.Running {
			prevLen = 0
			continue
		}

		seen := make(map[types.Point]bool, len(v.Segments))
		for _, p := range v.Segments {
			if seen[p] {
				t.Fatalf("frame %d: segment %v repeated", frame, p)
			}
			seen[p] = true
			if !v.Grid.Contains(p) {
				t.Fatalf("frame %d: segment %v off board", frame, p)
			}
		}
		if seen[v.Food] {
			t.Fatalf("frame %d: food %v under the snake", frame, v.Food)
		}
		if len(v.Segments) < prevLen {
			t.Fatalf("frame %d: length dropped from %d to %d", frame, prevLen, len(v.Segments))
		}
		if s := g.GetSnake(); s.Len() > s.TargetLength() {
			t.Fatalf("frame %d: length %d above target %d", frame, s.Len(), s.TargetLength())
		}
		prevLen = len(v.Segments)
		if v.Score > maxScore {
			maxScore = v.Score
		}
	}

	if maxScore == 0 {
		t.Error("autopilot never ate")
	}
}
