package game

import (
	"time"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// State tags what the frontend should draw
type State int

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Game owns the snake, the food and the score. It is driven one frame at a
// time by a single loop and is not safe for concurrent use.
type Game struct {
	Grid types.Grid

	cfg   Config
	state State
	snake *entity.Snake
	food  *entity.Food
	score int

	tickCounter int
	pending     types.Direction
	hasPending  bool

	pauseLeft int
	cause     manager.CollisionType

	roundID   uuid.UUID
	startTime time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	spawnMgr     *manager.SpawnManager
	stateMgr     *manager.StateManager

	log zerolog.Logger
}

func NewGame(cfg Config, logger zerolog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	g := &Game{
		Grid:         cfg.Grid,
		cfg:          cfg,
		food:         entity.NewFood(types.FoodColor),
		collisionMgr: manager.NewCollisionManager(cfg.Grid),
		foodMgr:      manager.NewFoodManager(cfg.Grid, rng),
		spawnMgr:     manager.NewSpawnManager(cfg.Grid, rng, types.SnakeColor),
		stateMgr:     manager.NewStateManager(),
		log:          logger.With().Str("component", "game").Logger(),
	}
	g.Reset()
	return g, nil
}

// Reset starts a fresh round: new snake, new food, zero score.
func (g *Game) Reset() {
	g.snake = g.spawnMgr.SpawnSnake()
	if err := g.foodMgr.Respawn(g.food, g.snake.Contains); err != nil {
		// Validate leaves at least one cell besides the spawn cell
		panic(err)
	}

	g.state = Running
	g.score = 0
	g.tickCounter = 0
	g.hasPending = false
	g.pauseLeft = 0
	g.cause = manager.NoCollision
	g.roundID = uuid.New()
	g.startTime = time.Now()

	g.log.Info().
		Str("round", g.roundID.String()).
		Str("heading", g.snake.Heading().String()).
		Interface("head", g.snake.GetHead()).
		Interface("food", g.food.Position()).
		Msg("round started")
}

// Turn buffers a direction intent. Only the latest intent before a tick is
// applied; input is ignored while the game over screen is shown.
func (g *Game) Turn(dir types.Direction) {
	if g.state != Running || !dir.Valid() {
		return
	}
	g.pending = dir
	g.hasPending = true
}

// Frame advances one presentation frame. The simulation ticks once every
// TickDivisor frames; during game over the pause counts down and the round
// restarts when it runs out.
func (g *Game) Frame() {
	if g.state == GameOver {
		if g.pauseLeft > 0 {
			g.pauseLeft--
		}
		if g.pauseLeft <= 0 {
			g.Reset()
		}
		return
	}

	if g.tickCounter%g.cfg.TickDivisor == 0 {
		g.Tick()
	}
	g.tickCounter++
}

// Tick performs one simulation step.
func (g *Game) Tick() {
	if g.state != Running {
		return
	}

	if g.hasPending {
		g.snake.Turn(g.pending)
		g.hasPending = false
	}

	next := g.snake.PeekNextHead()
	if collision := g.collisionMgr.CheckCollision(next, g.snake); collision != manager.NoCollision {
		g.endRound(collision)
		return
	}

	g.snake.CommitMove(false)
	g.log.Trace().Int("tick", g.tickCounter).Interface("head", g.snake.GetHead()).Msg("moved")

	if g.collisionMgr.IsFoodCollision(g.snake.GetHead(), g.food) {
		g.snake.Grow()
		g.score++
		if err := g.foodMgr.Respawn(g.food, g.snake.Contains); err != nil {
			g.log.Warn().Err(err).Msg("board is full")
			g.endRound(manager.BoardFull)
			return
		}
		g.log.Debug().
			Int("score", g.score).
			Interface("food", g.food.Position()).
			Msg("food eaten")
	}
}

func (g *Game) endRound(cause manager.CollisionType) {
	g.state = GameOver
	g.cause = cause
	g.pauseLeft = g.cfg.PauseFrames()

	round := manager.Round{
		ID:        g.roundID,
		Score:     g.score,
		Length:    g.snake.Len(),
		Cause:     cause,
		StartTime: g.startTime,
		EndTime:   time.Now(),
	}
	g.stateMgr.RecordRound(round)

	g.log.Info().
		Str("round", round.ID.String()).
		Int("score", round.Score).
		Int("length", round.Length).
		Stringer("cause", cause).
		Dur("duration", round.Duration()).
		Int("high_score", g.stateMgr.GetHighScore()).
		Float64("average", g.stateMgr.GetAverageScore()).
		Float64("median", g.stateMgr.GetMedianScore()).
		Msg("game over")
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() *entity.Food {
	return g.food
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) TickCounter() int {
	return g.tickCounter
}

func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateMgr
}
