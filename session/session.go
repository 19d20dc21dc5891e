// Package session runs one level of the dungeon and the run that strings
// levels together.
//
// A Session owns every level-scoped mutable value (grid, actors, pickups,
// decals, timers) and advances it with Tick, a fixed eleven-step pass that
// completes before the frame is rendered. A Run owns the run-scoped values
// (start time, kills, health) and replaces its Session on every level change.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/minotaur/clock"
	"github.com/lixenwraith/minotaur/entity"
	"github.com/lixenwraith/minotaur/event"
	"github.com/lixenwraith/minotaur/level"
	"github.com/lixenwraith/minotaur/maze"
	"github.com/lixenwraith/minotaur/parameter"
	"github.com/lixenwraith/minotaur/projectile"
)

// Outcome is the result of one tick
type Outcome int

const (
	// OutcomeContinue: the level is still in play
	OutcomeContinue Outcome = iota
	// OutcomeLevelComplete: the player reached the exit holding the key
	OutcomeLevelComplete
	// OutcomeLost: health reached zero
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeLevelComplete:
		return "level_complete"
	case OutcomeLost:
		return "lost"
	}
	return "unknown"
}

// Cause names the enemy class that ended a lost run
type Cause int

const (
	CauseNone Cause = iota
	CauseChaser
	CausePatroller
)

// Config describes the level to build and the run-scoped values it inherits
type Config struct {
	Descriptor level.Descriptor
	Level      int // 1-based, for display

	Health   int
	Kills    int
	RunStart time.Time
	Now      time.Time

	Rand *rand.Rand // nil seeds from Now
}

// Input is the continuous input state sampled for one tick
type Input struct {
	// Move is the held direction, zero when no movement key is down
	Move entity.Direction
}

// Report is what a tick hands back to the run
type Report struct {
	Outcome Outcome
	Stepped bool // step 1 consumed the held direction
	Cause   Cause
	Elapsed time.Duration
	Score   float64
	Events  []event.GameEvent
}

// Session is the mutable state of one level
type Session struct {
	Level      int
	Descriptor level.Descriptor
	Grid       *maze.Grid
	Start      maze.Point

	Player      *entity.Player
	Chasers     []*entity.Chaser
	Patrollers  []*entity.Patroller
	Projectiles []projectile.Projectile

	Key     *maze.Point // nil once collected
	Exit    maze.Point
	Ammo    []maze.Point
	Torches []maze.Point
	Blood   []maze.Point
	Bodies  []maze.Point

	Kills    int
	RunStart time.Time

	sched      *clock.Scheduler
	pauseUntil time.Time
	banner     clock.Deadline
	message    string
	events     *event.EventQueue
	rng        *rand.Rand
	placer     *placer
}

// New generates the level's maze and places every actor and pickup.
// A draw with too few rooms is retried with fresh randomness.
func New(cfg Config) (*Session, error) {
	if err := cfg.Descriptor.Validate(); err != nil {
		return nil, err
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Now.UnixNano()))
	}

	mcfg := cfg.Descriptor.MazeConfig(0)
	var (
		res maze.Result
		err error
	)
	for range parameter.MazeAttempts {
		res, err = maze.GenerateWith(mcfg, rng)
		if !errors.Is(err, maze.ErrTooFewRooms) {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("level %d: generate maze: %w", cfg.Level, err)
	}

	cfg.Rand = rng
	return build(cfg, res.Grid, res.Start), nil
}

// build places actors and pickups on a ready grid
func build(cfg Config, grid *maze.Grid, start maze.Point) *Session {
	d := cfg.Descriptor
	s := &Session{
		Level:      cfg.Level,
		Descriptor: d,
		Grid:       grid,
		Start:      start,
		Player:     entity.NewPlayer(start, cfg.Health, parameter.PlayerAmmo, d.Torches),
		Kills:      cfg.Kills,
		RunStart:   cfg.RunStart,
		sched: clock.NewScheduler(clock.Intervals{
			PlayerMove: parameter.MoveDelay,
			Patrol:     parameter.PatrolDelay,
			Chase:      d.ChaserSpeed.Duration(),
			Spawn:      parameter.PatrollerSpawnInterval,
		}),
		events: event.NewEventQueue(),
		rng:    cfg.Rand,
		placer: newPlacer(grid, cfg.Rand),
	}
	// First spawn waits a full interval
	s.sched.Fire(clock.CategorySpawn, cfg.Now)

	notStart := func(p maze.Point) bool { return p != start }
	for range d.Chasers {
		pos, ok := s.placer.pick(notStart)
		if !ok {
			pos = start
		}
		s.Chasers = append(s.Chasers, entity.NewChaser(pos, d.ChaserHealth))
	}

	key := s.placer.awayFrom(start, parameter.KeyMinDistance)
	s.Key = &key
	s.Exit = s.placer.awayFrom(key, parameter.ExitMinDistance)

	for range parameter.AmmoPickups {
		if pos, ok := s.placer.pick(notStart); ok {
			s.Ammo = append(s.Ammo, pos)
		}
	}
	for range parameter.InitialPatrollers {
		s.spawnPatroller()
	}

	s.events.Push(event.GameEvent{Type: event.EventTrackStart, Payload: event.TrackPayload{Track: d.Track}})
	return s
}

func (s *Session) spawnPatroller() bool {
	pos, ok := s.placer.clearOf(s.Player.Pos, parameter.PatrollerClearance)
	if !ok {
		return false
	}
	s.Patrollers = append(s.Patrollers, entity.NewPatroller(pos))
	return true
}

// Shoot fires a projectile from the player's tile along the facing direction
func (s *Session) Shoot() bool {
	if s.Player.Ammo <= 0 {
		return false
	}
	s.Player.Ammo--
	s.Projectiles = append(s.Projectiles, projectile.Fire(s.Player.Pos, s.Player.Facing))
	s.events.Emit(event.EventShot)
	return true
}

// DropTorch leaves a light source on the player's tile
func (s *Session) DropTorch() bool {
	if s.Player.Torches <= 0 {
		return false
	}
	s.Player.Torches--
	s.Torches = append(s.Torches, s.Player.Pos)
	s.events.Emit(event.EventTorchDrop)
	return true
}

// Message returns the current banner text, empty when none is shown
func (s *Session) Message() string { return s.message }

// PausedUntil returns the end of the global chaser pause
func (s *Session) PausedUntil() time.Time { return s.pauseUntil }

// Drain returns events queued since the last tick
func (s *Session) Drain() []event.GameEvent { return s.events.Consume() }

// Tick advances the level by one simulation step. The steps run in fixed
// order; a level completion or loss returns at once.
func (s *Session) Tick(now time.Time, in Input) Report {
	// 1. Player movement; facing follows the held direction even when blocked
	stepped := false
	if !in.Move.IsZero() && s.sched.TryFire(clock.CategoryPlayerMove, now) {
		s.Player.Facing = in.Move
		s.Player.Move(in.Move, s.Grid)
		stepped = true
	}

	// 2. Patrollers share one timer
	if s.sched.TryFire(clock.CategoryPatrol, now) {
		for _, p := range s.Patrollers {
			p.Patrol(s.rng, s.Grid)
		}
	}

	// 3. Chasers move only with the key taken and outside the hit pause
	if s.sched.TryFire(clock.CategoryChase, now) && s.Player.HasKey && !now.Before(s.pauseUntil) {
		for _, c := range s.Chasers {
			c.Chase(s.Player.Pos, s.Grid)
		}
	}

	// 4. Projectiles
	s.resolveProjectiles()

	// 5. Spawn
	if len(s.Patrollers) < parameter.MaxPatrollers && s.sched.Ready(clock.CategorySpawn, now) {
		if s.spawnPatroller() {
			s.sched.Fire(clock.CategorySpawn, now)
			s.events.Emit(event.EventPatrollerSpawn)
		}
	}

	// 6. Key
	if s.Key != nil && s.Player.Pos == *s.Key {
		s.Player.HasKey = true
		s.Key = nil
		for _, c := range s.Chasers {
			c.Activate()
		}
		s.message = parameter.ChaserBanner
		s.banner.Arm(now, parameter.BannerDuration)
		s.events.Emit(event.EventKeyPickup)
	}

	// 7. Exit
	if s.Player.HasKey && s.Player.Pos == s.Exit {
		elapsed := now.Sub(s.RunStart)
		score := Score(elapsed, s.Kills)
		s.events.Push(event.GameEvent{
			Type:    event.EventLevelComplete,
			Payload: event.LevelPayload{Level: s.Level, Score: score},
		})
		return s.report(OutcomeLevelComplete, CauseNone, stepped, elapsed, score)
	}

	// 8. Chaser contact, key required
	if s.Player.HasKey {
		for _, c := range s.Chasers {
			if c.Pos != s.Player.Pos || !contactReady(c.LastHit, now, parameter.ChaserHitPause) {
				continue
			}
			c.LastHit = now
			s.pauseUntil = now.Add(parameter.ChaserHitPause)
			if s.hurt() {
				return s.report(OutcomeLost, CauseChaser, stepped, now.Sub(s.RunStart), 0)
			}
		}
	}

	// 9. Patroller contact
	for _, p := range s.Patrollers {
		if p.Pos != s.Player.Pos || !contactReady(p.LastHit, now, parameter.PatrollerContactCooldown) {
			continue
		}
		p.LastHit = now
		if s.hurt() {
			return s.report(OutcomeLost, CausePatroller, stepped, now.Sub(s.RunStart), 0)
		}
	}

	// 10. Ammo
	if len(s.Ammo) > 0 {
		kept := make([]maze.Point, 0, len(s.Ammo))
		for _, a := range s.Ammo {
			if a == s.Player.Pos {
				s.Player.Ammo += parameter.AmmoPerPickup
				s.events.Emit(event.EventAmmoPickup)
				continue
			}
			kept = append(kept, a)
		}
		s.Ammo = kept
	}

	// 11. Banner expiry
	if s.message != "" && !s.banner.Active(now) {
		s.message = ""
		s.banner.Clear()
	}

	return s.report(OutcomeContinue, CauseNone, stepped, now.Sub(s.RunStart), 0)
}

func (s *Session) report(o Outcome, cause Cause, stepped bool, elapsed time.Duration, score float64) Report {
	return Report{
		Outcome: o,
		Stepped: stepped,
		Cause:   cause,
		Elapsed: elapsed,
		Score:   score,
		Events:  s.events.Consume(),
	}
}

// hurt applies one point of damage and reports death
func (s *Session) hurt() bool {
	s.Player.Health--
	s.events.Emit(event.EventPlayerHit)
	return s.Player.Health <= 0
}

func (s *Session) resolveProjectiles() {
	if len(s.Projectiles) == 0 {
		return
	}
	res := projectile.Advance(s.Projectiles, s.Grid, s.Chasers, s.Patrollers, s.Player.HasKey)
	s.Projectiles = res.Projectiles
	s.Chasers = res.Chasers
	s.Patrollers = res.Patrollers

	for _, imp := range res.Impacts {
		switch imp.Kind {
		case projectile.ImpactChaserHit:
			s.events.Emit(event.EventChaserWounded)
		case projectile.ImpactChaserKill, projectile.ImpactPatrollerKill:
			s.Kills++
			s.Bodies = append(s.Bodies, imp.At)
			s.Blood = append(s.Blood, jitter(s.rng, imp.At, parameter.BloodSpots)...)
			s.events.Emit(event.EventEnemyDeath)
		}
	}
}

func contactReady(last, now time.Time, cooldown time.Duration) bool {
	return last.IsZero() || now.Sub(last) > cooldown
}

// Score is kills weighted per kill over elapsed seconds, with elapsed floored
// at MinScoreElapsed so an instant finish stays finite
func Score(elapsed time.Duration, kills int) float64 {
	if elapsed < parameter.MinScoreElapsed {
		elapsed = parameter.MinScoreElapsed
	}
	return float64(kills*parameter.ScorePerKill) / elapsed.Seconds()
}
