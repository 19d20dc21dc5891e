package audio

import (
	"math/rand"
	"sync"

	"github.com/gopxl/beep"
)

// format is the stereo layout every cached buffer uses
var format = beep.Format{
	SampleRate:  sampleRate,
	NumChannels: 2,
	Precision:   2,
}

// soundCache stores rendered cue buffers, generated on first use
type soundCache struct {
	mu    sync.RWMutex
	store [cueCount]*beep.Buffer
	rng   *rand.Rand
}

func newSoundCache(seed int64) *soundCache {
	return &soundCache{rng: rand.New(rand.NewSource(seed))}
}

// get returns the cached buffer or renders it
func (c *soundCache) get(cue Cue) *beep.Buffer {
	if cue < 0 || cue >= cueCount {
		return nil
	}

	c.mu.RLock()
	if buf := c.store[cue]; buf != nil {
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if buf := c.store[cue]; buf != nil {
		return buf
	}
	buf := beep.NewBuffer(format)
	buf.Append(monoStreamer(generateCue(cue, c.rng)))
	c.store[cue] = buf
	return buf
}

// preload renders every cue
func (c *soundCache) preload() {
	for cue := range cueCount {
		c.get(cue)
	}
}

// monoStreamer plays a float buffer on both channels once
func monoStreamer(buf floatBuffer) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= len(buf) {
			return 0, false
		}
		n := copy2(samples, buf[pos:])
		pos += n
		return n, true
	})
}

func copy2(dst [][2]float64, src floatBuffer) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i][0] = src[i]
		dst[i][1] = src[i]
	}
	return n
}
