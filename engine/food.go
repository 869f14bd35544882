package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// FoodSpawner places food at uniformly random playable cells
// Placement does not avoid the snake body
type FoodSpawner struct {
	rng *rand.Rand
}

// NewFoodSpawner creates a spawner; seed 0 seeds from the clock
func NewFoodSpawner(seed int64) *FoodSpawner {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &FoodSpawner{rng: rand.New(rand.NewSource(seed))}
}

// Spawn returns a cell with x in [0,width) and y in [1,height)
func (f *FoodSpawner) Spawn(arena core.Arena) core.Point {
	return SpawnFood(f.rng, arena.Width, arena.Height)
}

// SpawnFood draws one food cell from rng, row 0 is never chosen
func SpawnFood(rng *rand.Rand, width, height int) core.Point {
	return core.Point{
		X: rng.Intn(width),
		Y: core.StatusRow + 1 + rng.Intn(height-core.StatusRow-1),
	}
}
