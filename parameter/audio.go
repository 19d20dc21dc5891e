package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Mix levels
const (
	// MusicVolume is the beep effects.Volume level of background tracks (base 2)
	MusicVolume = -2.5

	// EffectVolume is the level of one-shot cues
	EffectVolume = -0.5
)
