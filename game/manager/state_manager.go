package manager

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// MaxRounds caps the number of rounds kept in the session history
const MaxRounds = 200

// Round is the outcome of one play session from spawn to game over
type Round struct {
	ID        uuid.UUID
	Score     int
	Length    int
	Cause     CollisionType
	StartTime time.Time
	EndTime   time.Time
}

func (r Round) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager keeps per-process score statistics. Nothing is written to disk.
// It belongs to a single Game and shares its single-goroutine contract.
type StateManager struct {
	highScore    int
	roundsPlayed int
	totalScore   int
	rounds       []Round
}

func NewStateManager() *StateManager {
	return &StateManager{
		rounds: make([]Round, 0),
	}
}

func (sm *StateManager) RecordRound(r Round) {
	if r.Score > sm.highScore {
		sm.highScore = r.Score
	}
	sm.roundsPlayed++
	sm.totalScore += r.Score

	if len(sm.rounds) >= MaxRounds {
		sm.rounds = sm.rounds[1:]
	}
	sm.rounds = append(sm.rounds, r)
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetRoundsPlayed() int {
	return sm.roundsPlayed
}

// GetAverageScore averages over every round played, including ones that fell
// out of the history window.
func (sm *StateManager) GetAverageScore() float64 {
	if sm.roundsPlayed == 0 {
		return 0
	}
	return float64(sm.totalScore) / float64(sm.roundsPlayed)
}

// GetMedianScore is computed over the rounds still in the history
func (sm *StateManager) GetMedianScore() float64 {
	if len(sm.rounds) == 0 {
		return 0
	}
	scores := make([]int, len(sm.rounds))
	for i, r := range sm.rounds {
		scores[i] = r.Score
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

// GetLastRounds returns up to n most recent rounds, oldest first
func (sm *StateManager) GetLastRounds(n int) []Round {
	if n > len(sm.rounds) {
		n = len(sm.rounds)
	}
	if n < 0 {
		n = 0
	}
	out := make([]Round, n)
	copy(out, sm.rounds[len(sm.rounds)-n:])
	return out
}
