package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/vi-snake/constants"
)

// waveform maps a phase in [0, 1) to a sample in [-1, 1]
type waveform func(phase float64) float64

func sine(phase float64) float64 { return math.Sin(2 * math.Pi * phase) }

func square(phase float64) float64 {
	if phase < 0.5 {
		return 1
	}
	return -1
}

func saw(phase float64) float64 { return 2*phase - 1 }

// tone is a fixed-length periodic wave with a linear attack ramp and release fade
type tone struct {
	wave    waveform
	step    float64 // phase increment per sample
	phase   float64
	pos     int
	length  int
	attack  int
	release int
}

func newTone(wave waveform, freq float64, length, attack, release time.Duration, rate beep.SampleRate) *tone {
	return &tone{
		wave:    wave,
		step:    freq / float64(rate),
		length:  rate.N(length),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

// gain is the envelope level at the current sample
func (t *tone) gain() float64 {
	g := 1.0
	if t.pos < t.attack {
		g = float64(t.pos) / float64(t.attack)
	}
	if left := t.length - t.pos; left < t.release {
		g = min(g, float64(left)/float64(t.release))
	}
	return g
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}
		v := t.wave(t.phase) * t.gain()
		samples[i] = [2]float64{v, v}

		t.phase = math.Mod(t.phase+t.step, 1)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// newVolume scales a stream linearly
// math.Log2(0) is -Inf, so zero volume maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateEatSound generates a short bell for food consumption
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E6 with an octave overtone that dies first
	fund := newTone(sine, 1318.51, constants.EatSoundDuration, constants.EatSoundAttack, constants.EatSoundFundamentalRelease, rate)
	over := newTone(sine, 2637.02, constants.EatSoundDuration, constants.EatSoundAttack, constants.EatSoundOvertoneRelease, rate)

	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))

	return newVolume(mixed, cfg.EffectVolumes[SoundEat]*cfg.MasterVolume)
}

// CreateCrashSound generates a low saw buzz for game over
func CreateCrashSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	buzz := newTone(saw, 90.0, constants.CrashSoundDuration, constants.CrashSoundAttack, constants.CrashSoundRelease, rate)
	return newVolume(buzz, cfg.EffectVolumes[SoundCrash]*cfg.MasterVolume)
}

// CreateStartSound generates a rising two-note chime for a new game
func CreateStartSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1 := newTone(square, 987.77, constants.StartSoundNote1Duration, constants.StartSoundAttack, constants.StartSoundNote1Release, rate)
	n2 := newTone(square, 1318.51, constants.StartSoundNote2Duration, constants.StartSoundAttack, constants.StartSoundNote2Release, rate)

	return newVolume(beep.Seq(n1, n2), cfg.EffectVolumes[SoundStart]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for a sound type, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundStart:
		return CreateStartSound(cfg)
	case SoundEat:
		return CreateEatSound(cfg)
	case SoundCrash:
		return CreateCrashSound(cfg)
	default:
		return nil
	}
}
