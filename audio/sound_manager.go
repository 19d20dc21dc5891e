package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/minotaur/event"
	"github.com/lixenwraith/minotaur/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays cues and the background track for game events.
// Before Initialize succeeds, or while muted, playback calls only update
// bookkeeping, so a machine without audio runs the game silently.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	track       string
	tracks      map[string]*beep.Buffer
	cache       *soundCache
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		tracks: make(map[string]*beep.Buffer),
		cache:  newSoundCache(time.Now().UnixNano()),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	sm.cache.preload()
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.music != nil {
		sm.music.Paused = true
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Handle implements event.Sink
func (sm *SoundManager) Handle(ev event.GameEvent) {
	switch ev.Type {
	case event.EventTrackStart:
		if p, ok := ev.Payload.(event.TrackPayload); ok {
			sm.StartTrack(p.Track)
		}
	case event.EventTrackStop:
		sm.StopTrack()
	default:
		if cue, ok := CueFor(ev.Type); ok {
			sm.Play(cue)
		}
	}
}

// Play fires a one-shot cue
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	buf := sm.cache.get(cue)
	if buf == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(&effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   parameter.EffectVolume,
	})
	speaker.Unlock()
}

// StartTrack loops the named background track, replacing the current one
func (sm *SoundManager) StartTrack(track string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.track = track
	if !sm.initialized {
		return
	}
	sm.stopMusicLocked()

	buf, ok := sm.tracks[track]
	if !ok {
		var err error
		if buf, err = renderTrack(track); err != nil {
			log.Printf("audio: render track %q: %v", track, err)
			return
		}
		sm.tracks[track] = buf
	}

	sm.music = &beep.Ctrl{
		Streamer: &effects.Volume{
			Streamer: newLoopBuffer(buf),
			Base:     2,
			Volume:   parameter.MusicVolume,
		},
		Paused: sm.muted,
	}
	speaker.Lock()
	sm.mixer.Add(sm.music)
	speaker.Unlock()
}

// StopTrack silences the background track
func (sm *SoundManager) StopTrack() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.track = ""
	sm.stopMusicLocked()
}

func (sm *SoundManager) stopMusicLocked() {
	if sm.music == nil {
		return
	}
	if sm.initialized {
		speaker.Lock()
		sm.music.Streamer = nil
		speaker.Unlock()
	}
	sm.music = nil
}

// SetMuted silences cues and pauses the track
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
	if sm.music != nil && sm.initialized {
		speaker.Lock()
		sm.music.Paused = muted
		speaker.Unlock()
	}
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Track returns the current background track name, empty when stopped
func (sm *SoundManager) Track() string {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.track
}

// Ready reports whether the speaker is open
func (sm *SoundManager) Ready() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

var _ event.Sink = (*SoundManager)(nil)
