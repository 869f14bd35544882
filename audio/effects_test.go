package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			for _, v := range buf[j] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Streamer never drained")
	return 0, 0
}

// TestToneLength verifies a tone stops after its duration
func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	tn := newTone(sine, 440, 100*time.Millisecond, 0, 0, rate)

	n, peak := drain(t, tn)

	if n != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), n)
	}
	if peak > 1.0 {
		t.Errorf("Sine peak %f exceeds 1.0", peak)
	}
}

// TestToneSquareValues verifies an unshaped square wave only emits full-scale samples
func TestToneSquareValues(t *testing.T) {
	tn := newTone(square, 220, 20*time.Millisecond, 0, 0, beep.SampleRate(44100))

	samples := make([][2]float64, 100)
	n, ok := tn.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples ok, got n=%d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != 1.0 && v != -1.0 {
			t.Fatalf("Sample %d: expected +/-1, got %f", i, v)
		}
	}
}

// TestToneEnvelope verifies the attack starts silent and the release fades to silence
func TestToneEnvelope(t *testing.T) {
	rate := beep.SampleRate(44100)
	tn := newTone(square, 440, 50*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(50*time.Millisecond))
	n, _ := tn.Stream(samples)
	if n != len(samples) {
		t.Fatalf("Expected %d samples, got %d", len(samples), n)
	}

	if samples[0][0] != 0 {
		t.Errorf("Expected first sample silent, got %f", samples[0][0])
	}
	if v := samples[3][0]; v == 0 || v > 1.0 || v < -1.0 {
		t.Errorf("Expected small non-zero ramp sample, got %f", v)
	}
	if v := samples[n/2][0]; v != 1.0 && v != -1.0 {
		t.Errorf("Expected full scale in sustain, got %f", v)
	}
	last := samples[n-1][0]
	if last < 0 {
		last = -last
	}
	if last > 0.01 {
		t.Errorf("Expected release to end near silence, got %f", last)
	}
}

// TestSoundEffectsRender verifies every cue produces bounded, finite audio
func TestSoundEffectsRender(t *testing.T) {
	cfg := DefaultAudioConfig()

	for s := SoundType(0); s < soundTypeCount; s++ {
		streamer := GetSoundEffect(s, cfg)
		if streamer == nil {
			t.Errorf("%v: expected streamer", s)
			continue
		}
		n, peak := drain(t, streamer)
		if n == 0 {
			t.Errorf("%v: produced no samples", s)
		}
		if peak > 1.0 {
			t.Errorf("%v: peak %f exceeds 1.0", s, peak)
		}
	}

	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("Expected nil streamer for unknown sound")
	}
}

// TestZeroVolumeIsSilent verifies muted cues stream zeros
func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	_, peak := drain(t, CreateCrashSound(cfg))
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %f", peak)
	}
}
