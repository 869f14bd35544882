package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/vi-snake/constants"
)

// SoundManager plays one-shot cues on the speaker
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	lastPlayed  [soundTypeCount]time.Time
	initialized bool
}

// NewSoundManager creates a new sound manager, nil cfg means defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{cfg: cfg}
}

// Initialize opens the speaker
// Disabled config is not an error; the manager stays silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	sm.initialized = true
	return nil
}

// Play queues a cue, dropping repeats closer than one tick apart
func (sm *SoundManager) Play(sound SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sound < 0 || sound >= soundTypeCount {
		return
	}

	now := time.Now()
	if now.Sub(sm.lastPlayed[sound]) < constants.MinSoundGap {
		return
	}
	sm.lastPlayed[sound] = now

	streamer := GetSoundEffect(sound, sm.cfg)
	if streamer == nil {
		return
	}

	speaker.Play(streamer)
}

// Cleanup stops playback and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
	log.Printf("Audio closed")
}
