package audio

import (
	"hash/fnv"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// trackPatterns are bass lines in Hz; a track name picks one
var trackPatterns = map[string][]float64{
	"level1": {110, 0, 130.81, 0, 110, 0, 98, 103.83},
	"level2": {98, 116.54, 98, 0, 87.31, 0, 98, 92.5},
	"level3": {82.41, 87.31, 82.41, 87.31, 92.5, 0, 77.78, 82.41},
}

// trackStep is the length of one pattern step
const trackStep = 220 * time.Millisecond

// patternFor returns the pattern of a known track or derives one from the name
func patternFor(track string) []float64 {
	if p, ok := trackPatterns[track]; ok {
		return p
	}
	h := fnv.New32a()
	h.Write([]byte(track))
	root := 80 + float64(h.Sum32()%40)
	return []float64{root, 0, root * 1.2, 0, root, root * 0.9, 0, root * 1.5}
}

// renderTrack synthesizes one pass of a track into a buffer
func renderTrack(track string) (*beep.Buffer, error) {
	buf := beep.NewBuffer(format)
	stepN := sampleRate.N(trackStep)
	for _, freq := range patternFor(track) {
		if freq == 0 {
			buf.Append(beep.Silence(stepN))
			continue
		}
		sine, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			return nil, err
		}
		// Gate each note to 70% of its step
		noteN := stepN * 7 / 10
		buf.Append(beep.Seq(
			&effects.Volume{Streamer: beep.Take(noteN, sine), Base: 2, Volume: -1},
			beep.Silence(stepN-noteN),
		))
	}
	return buf, nil
}

// loopBuffer replays a buffer forever
type loopBuffer struct {
	buf *beep.Buffer
	cur beep.StreamSeeker
}

func newLoopBuffer(buf *beep.Buffer) *loopBuffer {
	return &loopBuffer{buf: buf, cur: buf.Streamer(0, buf.Len())}
}

func (l *loopBuffer) Stream(samples [][2]float64) (int, bool) {
	if l.buf.Len() == 0 {
		return 0, false
	}
	n := 0
	for n < len(samples) {
		m, ok := l.cur.Stream(samples[n:])
		n += m
		if !ok || m == 0 {
			l.cur = l.buf.Streamer(0, l.buf.Len())
		}
	}
	return n, true
}

func (l *loopBuffer) Err() error { return nil }
