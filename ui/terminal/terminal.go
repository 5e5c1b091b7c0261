// Package terminal runs the game inside a tcell screen, one character cell
// per board cell.
package terminal

import (
	"context"
	"fmt"
	"time"

	"snake-classic/game"
	"snake-classic/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	hudRows = 1 // score line above the board
	border  = 1
)

// Pilot chooses a direction for the snake instead of the keyboard
type Pilot interface {
	Next(v game.View) (types.Direction, bool)
}

type Frontend struct {
	screen tcell.Screen
	game   *game.Game
	pilot  Pilot
	fps    int
	log    zerolog.Logger
}

// New wraps an initialised screen. pilot may be nil.
func New(screen tcell.Screen, g *game.Game, fps int, pilot Pilot, logger zerolog.Logger) *Frontend {
	return &Frontend{
		screen: screen,
		game:   g,
		pilot:  pilot,
		fps:    fps,
		log:    logger.With().Str("component", "terminal").Logger(),
	}
}

// Run drives frames until the player quits or ctx is cancelled. Events are
// read on a separate goroutine but only this goroutine touches the game.
func (f *Frontend) Run(ctx context.Context) error {
	cols, rows := f.screen.Size()
	needCols, needRows := f.game.Grid.Cols()+2*border, f.game.Grid.Rows()+2*border+hudRows
	if cols < needCols || rows < needRows {
		return errors.Errorf("terminal is %dx%d, need at least %dx%d", cols, rows, needCols, needRows)
	}

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(f.fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := f.handleEvent(ev); quit {
				f.log.Info().Msg("quit requested")
				return nil
			}
		case <-ticker.C:
			if f.pilot != nil {
				if dir, ok := f.pilot.Next(f.game.View()); ok {
					f.game.Turn(dir)
				}
			}
			f.game.Frame()
			f.Draw(f.game.View())
		}
	}
}

func (f *Frontend) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
	case *tcell.EventKey:
		if IsQuit(ev) {
			return true
		}
		if dir, ok := KeyToDirection(ev); ok && f.pilot == nil {
			f.game.Turn(dir)
		}
	}
	return false
}

// IsQuit reports whether the key asks to leave the game
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// KeyToDirection translates arrows, hjkl and wasd
func KeyToDirection(ev *tcell.EventKey) (types.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.Up, true
	case tcell.KeyDown:
		return types.Down, true
	case tcell.KeyLeft:
		return types.Left, true
	case tcell.KeyRight:
		return types.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k', 'w':
			return types.Up, true
		case 'j', 's':
			return types.Down, true
		case 'h', 'a':
			return types.Left, true
		case 'l', 'd':
			return types.Right, true
		}
	}
	return 0, false
}

func toColor(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// cellOf maps a board coordinate to a screen column and row
func (f *Frontend) cellOf(p types.Point) (int, int) {
	cell := f.game.Grid.CellSize
	return border + p.X/cell, hudRows + border + p.Y/cell
}

// Draw renders v and shows the screen
func (f *Frontend) Draw(v game.View) {
	s := f.screen
	s.Clear()
	def := tcell.StyleDefault

	drawText(s, 0, 0, def, fmt.Sprintf("Score: %d  Best: %d", v.Score, v.HighScore))
	drawBox(s, 0, hudRows, v.Grid.Cols()+1, hudRows+v.Grid.Rows()+1, def)

	if v.State == game.GameOver {
		x := (v.Grid.Cols()+2)/2 - 5
		y := hudRows + (v.Grid.Rows()+2)/2
		drawText(s, x, y-1, def.Bold(true), "Game Over!")
		drawText(s, x, y, def, fmt.Sprintf("Score: %d", v.Score))
		drawText(s, x, y+1, def, fmt.Sprintf("Avg: %.1f", v.AverageScore))
		drawText(s, x, y+2, def, fmt.Sprintf("Median: %.1f", v.MedianScore))
		s.Show()
		return
	}

	snakeStyle := def.Foreground(toColor(v.SnakeColor))
	for i, p := range v.Segments {
		x, y := f.cellOf(p)
		r := tcell.RuneBlock
		if i == 0 {
			r = '@'
		}
		s.SetContent(x, y, r, nil, snakeStyle)
	}
	x, y := f.cellOf(v.Food)
	s.SetContent(x, y, tcell.RuneDiamond, nil, def.Foreground(toColor(v.FoodColor)))

	s.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func drawBox(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style) {
	for col := x1; col <= x2; col++ {
		s.SetContent(col, y1, tcell.RuneHLine, nil, style)
		s.SetContent(col, y2, tcell.RuneHLine, nil, style)
	}
	for row := y1 + 1; row < y2; row++ {
		s.SetContent(x1, row, tcell.RuneVLine, nil, style)
		s.SetContent(x2, row, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
	s.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
	s.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
}
