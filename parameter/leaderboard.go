package parameter

import "time"

// Leaderboard server
const (
	// LeaderboardAddr is the default listen address of `minotaur serve`
	LeaderboardAddr = ":8080"

	// LeaderboardPoll is how often live clients are checked for a changed top list
	LeaderboardPoll = 2 * time.Second

	// LeaderboardMaxLimit caps the limit query parameter
	LeaderboardMaxLimit = 100
)
