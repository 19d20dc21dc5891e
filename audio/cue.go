package audio

import "github.com/lixenwraith/minotaur/event"

// Cue is a one-shot sound effect
type Cue int

const (
	CueShot Cue = iota
	CueHit
	CueDeath
	CueAmmo
	CueRoar
	CueWin
	CueLoss
	CueTorch
	cueCount
)

var cueNames = [cueCount]string{
	CueShot:  "shot",
	CueHit:   "hit",
	CueDeath: "death",
	CueAmmo:  "ammo",
	CueRoar:  "roar",
	CueWin:   "win",
	CueLoss:  "loss",
	CueTorch: "torch",
}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// cueByEvent maps game events to the cue they trigger
var cueByEvent = map[event.EventType]Cue{
	event.EventShot:          CueShot,
	event.EventPlayerHit:     CueHit,
	event.EventChaserWounded: CueHit,
	event.EventEnemyDeath:    CueDeath,
	event.EventAmmoPickup:    CueAmmo,
	event.EventKeyPickup:     CueRoar,
	event.EventTorchDrop:     CueTorch,
	event.EventLevelComplete: CueWin,
	event.EventRunLost:       CueLoss,
}

// CueFor returns the cue of an event type, false for silent events
func CueFor(t event.EventType) (Cue, bool) {
	c, ok := cueByEvent[t]
	return c, ok
}
