package audio

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/minotaur/event"
)

func TestCueForEvents(t *testing.T) {
	tests := []struct {
		ev   event.EventType
		want Cue
		ok   bool
	}{
		{event.EventShot, CueShot, true},
		{event.EventPlayerHit, CueHit, true},
		{event.EventEnemyDeath, CueDeath, true},
		{event.EventAmmoPickup, CueAmmo, true},
		{event.EventKeyPickup, CueRoar, true},
		{event.EventTorchDrop, CueTorch, true},
		{event.EventLevelComplete, CueWin, true},
		{event.EventRunLost, CueLoss, true},
		{event.EventPatrollerSpawn, 0, false},
		{event.EventTrackStart, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.ev.String(), func(t *testing.T) {
			got, ok := CueFor(tt.ev)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("CueFor(%v) = %v, %v; want %v, %v", tt.ev, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestGeneratedCuesAreBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for c := range cueCount {
		buf := generateCue(c, rng)
		if len(buf) == 0 {
			t.Errorf("%v: empty buffer", c)
			continue
		}
		for i, s := range buf {
			if math.IsNaN(s) || math.Abs(s) > 1 {
				t.Fatalf("%v: sample %d = %v out of range", c, i, s)
			}
		}
	}
	if generateCue(cueCount, rng) != nil {
		t.Error("unknown cue should render nothing")
	}
}

func TestEnvelope(t *testing.T) {
	buf := make(floatBuffer, 100)
	for i := range buf {
		buf[i] = 1
	}
	applyEnvelope(buf, 0, 0)
	if buf[0] != 1 || buf[99] != 1 {
		t.Error("zero envelope should leave samples untouched")
	}

	buf = oscillator(waveSquare, 440, 440, durationToSamples(1e8), nil)
	applyEnvelope(buf, 1e7, 1e7)
	if buf[0] != 0 {
		t.Errorf("attack should start silent, got %v", buf[0])
	}
}

func TestSoundCache(t *testing.T) {
	c := newSoundCache(1)
	a := c.get(CueShot)
	if a == nil || a.Len() == 0 {
		t.Fatal("shot cue not rendered")
	}
	if c.get(CueShot) != a {
		t.Error("second get should hit the cache")
	}
	if c.get(Cue(-1)) != nil || c.get(cueCount) != nil {
		t.Error("out of range cue should be nil")
	}
}

func TestTrackRenderAndLoop(t *testing.T) {
	buf, err := renderTrack("level2")
	if err != nil {
		t.Fatalf("renderTrack: %v", err)
	}
	want := len(patternFor("level2")) * sampleRate.N(trackStep)
	if buf.Len() != want {
		t.Errorf("track length %d, want %d", buf.Len(), want)
	}

	l := newLoopBuffer(buf)
	samples := make([][2]float64, buf.Len()+500)
	n, ok := l.Stream(samples)
	if !ok || n != len(samples) {
		t.Errorf("loop streamed %d, %v", n, ok)
	}
}

func TestPatternForUnknownTrack(t *testing.T) {
	a := patternFor("crypt")
	b := patternFor("crypt")
	if len(a) == 0 || a[0] != b[0] {
		t.Error("derived pattern should be deterministic")
	}
}

func TestSoundManagerWithoutSpeaker(t *testing.T) {
	sm := NewSoundManager()
	if sm.Ready() {
		t.Fatal("speaker should not be open")
	}

	sm.Handle(event.GameEvent{Type: event.EventTrackStart, Payload: event.TrackPayload{Track: "level1"}})
	if got := sm.Track(); got != "level1" {
		t.Errorf("track = %q", got)
	}
	sm.Handle(event.GameEvent{Type: event.EventShot})
	sm.Handle(event.GameEvent{Type: event.EventTrackStop})
	if got := sm.Track(); got != "" {
		t.Errorf("track after stop = %q", got)
	}

	sm.SetMuted(true)
	if !sm.Muted() {
		t.Error("mute flag not set")
	}
	sm.Cleanup()
}
