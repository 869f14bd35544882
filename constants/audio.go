package constants

import "time"

// MinSoundGap is the minimum gap between two plays of the same cue (one clock tick)
const MinSoundGap = TickInterval

// Eat Sound Timing (bell)
const (
	EatSoundDuration           = 300 * time.Millisecond
	EatSoundAttack             = 5 * time.Millisecond
	EatSoundFundamentalRelease = 280 * time.Millisecond
	EatSoundOvertoneRelease    = 120 * time.Millisecond
)

// Crash Sound Timing (buzz)
const (
	CrashSoundDuration = 400 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 250 * time.Millisecond
)

// Start Sound Timing (two-note chime)
const (
	StartSoundNote1Duration = 80 * time.Millisecond
	StartSoundNote2Duration = 220 * time.Millisecond
	StartSoundAttack        = 5 * time.Millisecond
	StartSoundNote1Release  = 40 * time.Millisecond
	StartSoundNote2Release  = 160 * time.Millisecond
)
