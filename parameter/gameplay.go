package parameter

import "time"

// Player
const (
	// PlayerHealth is the hit point pool at run start; it carries across levels
	PlayerHealth = 3

	// PlayerAmmo is the bullet count granted at every level setup
	PlayerAmmo = 6

	// AmmoPerPickup is added to the bullet count per ammo marker collected
	AmmoPerPickup = 3

	// AmmoPickups is the number of ammo markers placed per level
	AmmoPickups = 5
)

// Action cooldowns
const (
	// MoveDelay gates player steps while a direction is held
	MoveDelay = 200 * time.Millisecond

	// PatrolDelay is the shared step interval of all patrollers
	PatrolDelay = 500 * time.Millisecond

	// ChaserHitPause suspends every chaser after any chaser hits the player
	ChaserHitPause = 2000 * time.Millisecond

	// PatrollerContactCooldown limits contact damage to one hit per patroller step
	PatrollerContactCooldown = PatrolDelay
)

// Patroller population
const (
	// InitialPatrollers is the patroller count placed at level setup
	InitialPatrollers = 5

	// MaxPatrollers caps dynamic spawning
	MaxPatrollers = 8

	// PatrollerSpawnInterval is the wall-clock gap between spawns
	PatrollerSpawnInterval = 10 * time.Second

	// PatrollerClearance is the Chebyshev distance a new patroller keeps from the player
	PatrollerClearance = 4
)

// Placement
const (
	// KeyMinDistance is the Manhattan distance between maze start and key
	KeyMinDistance = 10

	// ExitMinDistance is the Manhattan distance between key and exit
	ExitMinDistance = 10

	// BloodSpots is the jittered splatter count added around a kill
	BloodSpots = 10
)

// Scoring
const (
	// ScorePerKill is the numerator weight of one kill
	ScorePerKill = 100

	// MinScoreElapsed floors the elapsed time used as score divisor
	MinScoreElapsed = time.Second

	// TopScores is the leaderboard length
	TopScores = 10
)

// Messages
const (
	// BannerDuration is how long a timed HUD banner stays up
	BannerDuration = 3000 * time.Millisecond

	// ChaserBanner is shown when the key wakes the chasers
	ChaserBanner = "The Minotaurs spring to life! Run!"
)
