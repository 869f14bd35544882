package engine

import (
	"log"

	"github.com/lixenwraith/vi-snake/core"
)

// TickResult describes what one update did
type TickResult struct {
	Moved   bool // Head advanced this tick
	Ate     bool // Food consumed
	Crashed bool // Transitioned to game over
}

// Update advances one tick: movement, then self-collision, then food
// Food is checked every tick, self-collision only on ticks where the head moved.
// A stopped snake never collides with itself, so stopping right after eating
// (tail segment grown under the head) pauses instead of ending the game.
// Does nothing once the game is over
func (gs *GameState) Update() TickResult {
	var res TickResult
	if gs.Phase != PhasePlaying {
		return res
	}

	if gs.Direction != core.DirStopped {
		if _, ok := gs.Snake.Move(gs.Direction, gs.Arena); !ok {
			// Solid edge
			gs.gameOver("wall")
			res.Crashed = true
			return res
		}
		res.Moved = true
	}

	if res.Moved && gs.CheckSelfCollision() {
		res.Crashed = true
	}

	if gs.CheckFood() {
		res.Ate = true
	}

	return res
}

// CheckSelfCollision ends the game if the head overlaps the tail
func (gs *GameState) CheckSelfCollision() bool {
	if !gs.Snake.TailContains(gs.Snake.Head()) {
		return false
	}
	gs.gameOver("self")
	return true
}

// CheckFood consumes the food under the head
// The snake grows at the eaten food cell and a new food cell is drawn
func (gs *GameState) CheckFood() bool {
	if gs.Snake.Head() != gs.Food {
		return false
	}

	gs.Score++
	eaten := gs.Food
	gs.Snake.Grow(eaten)
	gs.Food = gs.spawner.Spawn(gs.Arena)

	log.Printf("Ate food at %v, score %d, length %d, next food %v", eaten, gs.Score, gs.Snake.Len(), gs.Food)
	return true
}

func (gs *GameState) gameOver(cause string) {
	gs.Phase = PhaseGameOver
	gs.Direction = core.DirStopped
	log.Printf("Game over (%s collision) at %v, score %d", cause, gs.Snake.Head(), gs.Score)
}
