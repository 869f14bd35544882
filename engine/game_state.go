package engine

import (
	"log"

	"github.com/lixenwraith/vi-snake/core"
)

// Phase is the simulation state
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "GameOver"
	}
	return "Playing"
}

// DefaultDirection is the heading of a fresh snake
const DefaultDirection = core.DirLeft

// GameState owns the snake, food, score, heading and phase
// Single writer: only the game loop goroutine touches it
type GameState struct {
	Arena     core.Arena
	Snake     *Snake
	Food      core.Point
	Score     int
	Direction core.Direction
	Phase     Phase

	spawner *FoodSpawner
}

// NewGameState creates a playing state with a centered single-segment snake
func NewGameState(arena core.Arena, spawner *FoodSpawner) *GameState {
	if spawner == nil {
		spawner = NewFoodSpawner(0)
	}
	gs := &GameState{
		Arena:   arena,
		spawner: spawner,
	}
	gs.Reset()
	return gs
}

// Reset returns to the initial playing state
// Score, snake, food, heading and phase are replaced together
func (gs *GameState) Reset() {
	gs.Snake = NewSnake(gs.Arena.Center())
	gs.Food = gs.spawner.Spawn(gs.Arena)
	gs.Score = 0
	gs.Direction = DefaultDirection
	gs.Phase = PhasePlaying
}

// IsGameOver reports whether the simulation is frozen
func (gs *GameState) IsGameOver() bool {
	return gs.Phase == PhaseGameOver
}

// SetDirection applies a heading change unless it reverses the current heading
// Stopped is always accepted
func (gs *GameState) SetDirection(d core.Direction) bool {
	if d != core.DirStopped && d == gs.Direction.Opposite() {
		return false
	}
	gs.Direction = d
	return true
}

// Restart resets the game when it is over, a no-op while playing
func (gs *GameState) Restart() bool {
	if gs.Phase != PhaseGameOver {
		return false
	}
	log.Printf("Restart after final score %d", gs.Score)
	gs.Reset()
	return true
}
