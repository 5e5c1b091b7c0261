package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"snake-classic/ai"
	"snake-classic/game"
	"snake-classic/ui"
	"snake-classic/ui/terminal"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := game.DefaultConfig()

	width := flag.Int("width", cfg.Grid.Width, "Board width in pixels")
	height := flag.Int("height", cfg.Grid.Height, "Board height in pixels")
	cell := flag.Int("cell", cfg.Grid.CellSize, "Cell size in pixels")
	fps := flag.Int("fps", cfg.FPS, "Frames per second")
	divisor := flag.Int("divisor", cfg.TickDivisor, "Frames per snake move (higher = slower)")
	pause := flag.Duration("pause", cfg.GameOverPause, "How long the game over screen stays up")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	useTerminal := flag.Bool("terminal", false, "Play in the terminal instead of a window")
	autoplay := flag.Bool("autoplay", false, "Let the autopilot steer")
	logLevel := flag.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Write logs to this file instead of stderr")
	flag.Parse()

	cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.CellSize = *width, *height, *cell
	cfg.FPS = *fps
	cfg.TickDivisor = *divisor
	cfg.GameOverPause = *pause
	if *seed != 0 {
		cfg.Seed = *seed
	}

	closeLog, err := setupLogger(*logLevel, *logFile, *useTerminal)
	if err != nil {
		log.Fatal().Err(err).Msg("logger setup failed")
	}
	defer closeLog()

	g, err := game.NewGame(cfg, log.Logger)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		closeLog()
		os.Exit(1)
	}

	var pilot terminal.Pilot
	if *autoplay {
		pilot = ai.NewAutopilot()
	}

	log.Info().
		Int("width", cfg.Grid.Width).
		Int("height", cfg.Grid.Height).
		Int("fps", cfg.FPS).
		Int("divisor", cfg.TickDivisor).
		Uint64("seed", cfg.Seed).
		Bool("terminal", *useTerminal).
		Msg("starting")

	if *useTerminal {
		err := runTerminal(g, cfg, pilot)
		logSession(g)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("terminal frontend stopped")
			closeLog()
			os.Exit(1)
		}
		return
	}
	runWindow(g, cfg, pilot)
	logSession(g)
}

// recentRounds is how many finished rounds are listed when the program exits
const recentRounds = 5

func logSession(g *game.Game) {
	sm := g.GetStateManager()
	for _, r := range sm.GetLastRounds(recentRounds) {
		log.Debug().
			Str("round", r.ID.String()).
			Int("score", r.Score).
			Stringer("cause", r.Cause).
			Dur("duration", r.Duration()).
			Msg("recent round")
	}
	log.Info().
		Int("rounds", sm.GetRoundsPlayed()).
		Int("high_score", sm.GetHighScore()).
		Float64("average", sm.GetAverageScore()).
		Float64("median", sm.GetMedianScore()).
		Msg("session finished")
}

// setupLogger points the global logger at stderr, a file, or nowhere when
// the terminal frontend owns the screen.
func setupLogger(level, file string, quiet bool) (func(), error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return func() {}, errors.Wrapf(err, "parse log level %q", level)
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	closer := func() {}
	switch {
	case file != "":
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return closer, errors.Wrap(err, "open log file")
		}
		out = f
		closer = func() { f.Close() }
	case quiet:
		out = io.Discard
	}

	log.Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return closer, nil
}

// runWindow is the raylib frontend: input, simulation and drawing happen in
// that order once per frame; raylib paces the frames.
func runWindow(g *game.Game, cfg game.Config, pilot terminal.Pilot) {
	rl.InitWindow(int32(cfg.Grid.Width), int32(cfg.Grid.Height), "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))

	renderer := ui.NewRenderer(cfg.Grid)
	for !rl.WindowShouldClose() {
		for _, dir := range ui.PollDirections() {
			if pilot == nil {
				g.Turn(dir)
			}
		}
		if pilot != nil {
			if dir, ok := pilot.Next(g.View()); ok {
				g.Turn(dir)
			}
		}

		g.Frame()
		renderer.Draw(g.View())
	}
	log.Info().Msg("window closed")
}

func runTerminal(g *game.Game, cfg game.Config, pilot terminal.Pilot) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return terminal.New(screen, g, cfg.FPS, pilot, log.Logger).Run(ctx)
}
