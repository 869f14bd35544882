package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundStart SoundType = iota // New game chime
	SoundEat                    // Food consumed
	SoundCrash                  // Game over
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"start", "eat", "crash"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
