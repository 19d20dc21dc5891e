package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/minotaur/parameter"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples; freq may sweep linearly to freqEnd
func oscillator(waveType int, freq, freqEnd float64, samples int, rng *rand.Rand) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0

	for i := range samples {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rng.Float64()*2 - 1
		}

		f := freq + (freqEnd-freq)*float64(i)/float64(samples)
		phase += f / float64(parameter.AudioSampleRate)
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attack, release time.Duration) {
	total := len(buf)
	attackSamples := durationToSamples(attack)
	releaseSamples := durationToSamples(release)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := range total {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixFloatBuffers adds b into a (in place), extending a if needed
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// concatFloatBuffers appends buffers in order
func concatFloatBuffers(parts ...floatBuffer) floatBuffer {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	result := make(floatBuffer, 0, n)
	for _, p := range parts {
		result = append(result, p...)
	}
	return result
}

// normalize scales buf so its peak is at most 1
func normalize(buf floatBuffer) floatBuffer {
	peak := 0.0
	for _, s := range buf {
		peak = math.Max(peak, math.Abs(s))
	}
	if peak > 1 {
		for i := range buf {
			buf[i] /= peak
		}
	}
	return buf
}

func durationToSamples(d time.Duration) int {
	return int(d.Seconds() * float64(parameter.AudioSampleRate))
}

// tone is one enveloped oscillator note
func tone(wave int, freq, freqEnd float64, d time.Duration, rng *rand.Rand) floatBuffer {
	buf := oscillator(wave, freq, freqEnd, durationToSamples(d), rng)
	applyEnvelope(buf, 5*time.Millisecond, d/2)
	return buf
}

// --- Cue generators (unity gain) ---

func generateShot(rng *rand.Rand) floatBuffer {
	crack := tone(waveNoise, 0, 0, 90*time.Millisecond, rng)
	thump := tone(waveSquare, 220, 60, 90*time.Millisecond, rng)
	return mixFloatBuffers(crack, thump, 0.5)
}

func generateHit(rng *rand.Rand) floatBuffer {
	return tone(waveSaw, 140, 90, 160*time.Millisecond, rng)
}

func generateDeath(rng *rand.Rand) floatBuffer {
	groan := tone(waveSaw, 300, 70, 450*time.Millisecond, rng)
	splat := tone(waveNoise, 0, 0, 120*time.Millisecond, rng)
	return mixFloatBuffers(groan, splat, 0.4)
}

func generateAmmo(rng *rand.Rand) floatBuffer {
	// B5 then E6
	return concatFloatBuffers(
		tone(waveSquare, 987.77, 987.77, 70*time.Millisecond, rng),
		tone(waveSquare, 1318.51, 1318.51, 140*time.Millisecond, rng),
	)
}

func generateRoar(rng *rand.Rand) floatBuffer {
	growl := tone(waveSaw, 55, 110, 1200*time.Millisecond, rng)
	breath := tone(waveNoise, 0, 0, 1200*time.Millisecond, rng)
	return mixFloatBuffers(growl, breath, 0.3)
}

func generateWin(rng *rand.Rand) floatBuffer {
	// C5 E5 G5 C6 arpeggio
	notes := []float64{523.25, 659.25, 783.99, 1046.5}
	parts := make([]floatBuffer, 0, len(notes))
	for _, f := range notes {
		parts = append(parts, tone(waveSine, f, f, 150*time.Millisecond, rng))
	}
	return concatFloatBuffers(parts...)
}

func generateLoss(rng *rand.Rand) floatBuffer {
	notes := []float64{392, 311.13, 261.63}
	parts := make([]floatBuffer, 0, len(notes))
	for _, f := range notes {
		parts = append(parts, tone(waveSaw, f, f*0.97, 300*time.Millisecond, rng))
	}
	return concatFloatBuffers(parts...)
}

func generateTorch(rng *rand.Rand) floatBuffer {
	return tone(waveNoise, 0, 0, 250*time.Millisecond, rng)
}

// generateCue dispatches to the cue's generator
func generateCue(c Cue, rng *rand.Rand) floatBuffer {
	var buf floatBuffer
	switch c {
	case CueShot:
		buf = generateShot(rng)
	case CueHit:
		buf = generateHit(rng)
	case CueDeath:
		buf = generateDeath(rng)
	case CueAmmo:
		buf = generateAmmo(rng)
	case CueRoar:
		buf = generateRoar(rng)
	case CueWin:
		buf = generateWin(rng)
	case CueLoss:
		buf = generateLoss(rng)
	case CueTorch:
		buf = generateTorch(rng)
	default:
		return nil
	}
	return normalize(buf)
}
