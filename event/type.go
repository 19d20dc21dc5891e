package event

// EventType represents the type of game event
type EventType int

const (
	// === Combat ===

	// EventShot fires when the player spends a bullet
	// Trigger: Session.Shoot | Consumer: audio
	EventShot EventType = iota

	// EventPlayerHit fires on every point of contact damage
	// Trigger: Session tick steps 8, 9 | Consumer: audio, HUD flash
	EventPlayerHit

	// EventEnemyDeath fires when a chaser or patroller is destroyed
	// Trigger: projectile resolution | Consumer: audio
	EventEnemyDeath

	// EventChaserWounded fires when an armed shot hits a chaser that survives
	// Trigger: projectile resolution | Consumer: audio
	EventChaserWounded

	// === Pickups ===

	// EventAmmoPickup fires per ammo marker collected
	EventAmmoPickup

	// EventKeyPickup fires once per level when the key is collected
	// Consumer: audio (roar), HUD banner
	EventKeyPickup

	// EventTorchDrop fires when a torch is placed
	EventTorchDrop

	// EventPatrollerSpawn fires when a patroller joins mid-level
	EventPatrollerSpawn

	// === Flow ===

	// EventLevelComplete fires when the player exits with the key
	// Payload: LevelPayload
	EventLevelComplete

	// EventRunWon fires after the last level is completed
	EventRunWon

	// EventRunLost fires when health reaches zero
	EventRunLost

	// === Music ===

	// EventTrackStart selects the looping background track
	// Payload: TrackPayload
	EventTrackStart

	// EventTrackStop silences the background track
	EventTrackStop

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventShot:           "shot",
	EventPlayerHit:      "player_hit",
	EventEnemyDeath:     "enemy_death",
	EventChaserWounded:  "chaser_wounded",
	EventAmmoPickup:     "ammo_pickup",
	EventKeyPickup:      "key_pickup",
	EventTorchDrop:      "torch_drop",
	EventPatrollerSpawn: "patroller_spawn",
	EventLevelComplete:  "level_complete",
	EventRunWon:         "run_won",
	EventRunLost:        "run_lost",
	EventTrackStart:     "track_start",
	EventTrackStop:      "track_stop",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "unknown"
	}
	return eventNames[t]
}

// GameEvent is one discrete occurrence inside a tick
type GameEvent struct {
	Type    EventType
	Payload any
}

// TrackPayload names the background track to loop
type TrackPayload struct {
	Track string
}

// LevelPayload summarizes a finished level
type LevelPayload struct {
	Level int
	Score float64
}
