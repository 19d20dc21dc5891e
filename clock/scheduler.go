package clock

import "time"

// Category identifies an actor class with its own cooldown
type Category int

const (
	CategoryPlayerMove Category = iota
	CategoryPatrol
	CategoryChase
	CategorySpawn
	categoryCount
)

var categoryNames = [categoryCount]string{
	CategoryPlayerMove: "player_move",
	CategoryPatrol:     "patrol",
	CategoryChase:      "chase",
	CategorySpawn:      "spawn",
}

func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return "unknown"
	}
	return categoryNames[c]
}

// Intervals configures one cooldown per category
type Intervals struct {
	PlayerMove time.Duration
	Patrol     time.Duration
	Chase      time.Duration
	Spawn      time.Duration
}

// Scheduler holds independent cooldowns per actor category.
// Logic gating uses these timers, not frame counts, so logic rate is decoupled
// from render rate.
type Scheduler struct {
	cooldowns [categoryCount]Cooldown
}

// NewScheduler creates a scheduler with every category ready
func NewScheduler(iv Intervals) *Scheduler {
	s := &Scheduler{}
	s.cooldowns[CategoryPlayerMove] = NewCooldown(iv.PlayerMove)
	s.cooldowns[CategoryPatrol] = NewCooldown(iv.Patrol)
	s.cooldowns[CategoryChase] = NewCooldown(iv.Chase)
	s.cooldowns[CategorySpawn] = NewCooldown(iv.Spawn)
	return s
}

// Ready reports whether the category may act at now
func (s *Scheduler) Ready(cat Category, now time.Time) bool {
	if cat < 0 || cat >= categoryCount {
		return false
	}
	return s.cooldowns[cat].Ready(now)
}

// Fire records that the category acted at now
func (s *Scheduler) Fire(cat Category, now time.Time) {
	if cat < 0 || cat >= categoryCount {
		return
	}
	s.cooldowns[cat].Fire(now)
}

// TryFire fires the category if ready
func (s *Scheduler) TryFire(cat Category, now time.Time) bool {
	if cat < 0 || cat >= categoryCount {
		return false
	}
	return s.cooldowns[cat].TryFire(now)
}
