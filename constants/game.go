package constants

import "time"

// Game Loop Timing Constants
const (
	// TicksPerSecond is the fixed simulation and render rate
	TicksPerSecond = 20

	// TickInterval is the poll budget of one loop iteration
	TickInterval = time.Second / TicksPerSecond
)
