package constants

// Environment overrides, applied over the config file and under command-line flags
const (
	EnvBoundary     = "VI_SNAKE_BOUNDARY"
	EnvSeed         = "VI_SNAKE_SEED"
	EnvAudioEnabled = "VI_SNAKE_AUDIO_ENABLED"
	EnvMasterVolume = "VI_SNAKE_MASTER_VOLUME"
	EnvSampleRate   = "VI_SNAKE_SAMPLE_RATE"
)
