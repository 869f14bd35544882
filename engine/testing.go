package engine

import "github.com/lixenwraith/vi-snake/core"

// NewTestGameState creates a wrap-mode state with a fixed food seed for tests
func NewTestGameState(width, height int) *GameState {
	arena, err := core.NewArena(width, height, core.BoundaryWrap)
	if err != nil {
		panic(err)
	}
	return NewGameState(arena, NewFoodSpawner(42))
}
