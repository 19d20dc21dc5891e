// Package entity holds the movable actors of a level. Each actor exposes one
// wall-constrained move attempt per tick; a blocked move is a silent no-op.
package entity

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/minotaur/maze"
)

// Direction is one of the four unit vectors
type Direction struct {
	DX, DY int
}

var (
	Up    = Direction{0, -1}
	Down  = Direction{0, 1}
	Left  = Direction{-1, 0}
	Right = Direction{1, 0}
)

// Directions lists the four unit moves in patrol order
var Directions = [4]Direction{Down, Right, Up, Left}

// IsZero reports whether d is the null direction
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Terrain answers wall collision; *maze.Grid satisfies it
type Terrain interface {
	Passable(x, y int) bool
}

// Mover is the common movable-entity surface used by the tick orchestrator
type Mover interface {
	Position() maze.Point
	AttemptMove(d Direction, t Terrain) bool
}

// step moves pos by d when the target is passable
func step(pos *maze.Point, d Direction, t Terrain) bool {
	next := pos.Add(d.DX, d.DY)
	if !t.Passable(next.X, next.Y) {
		return false
	}
	*pos = next
	return true
}

// Player is the user-controlled actor
type Player struct {
	Pos     maze.Point
	Health  int
	Ammo    int
	Torches int
	Facing  Direction
	HasKey  bool
}

// NewPlayer creates a player facing up
func NewPlayer(pos maze.Point, health, ammo, torches int) *Player {
	return &Player{
		Pos:     pos,
		Health:  health,
		Ammo:    ammo,
		Torches: torches,
		Facing:  Up,
	}
}

func (p *Player) Position() maze.Point { return p.Pos }

// Move steps one tile unless the target is a Wall
func (p *Player) Move(d Direction, t Terrain) bool {
	return step(&p.Pos, d, t)
}

func (p *Player) AttemptMove(d Direction, t Terrain) bool { return p.Move(d, t) }

// Chaser pursues the player greedily once activated
type Chaser struct {
	Pos     maze.Point
	HP      int
	Active  bool
	LastHit time.Time
}

// NewChaser creates a dormant chaser
func NewChaser(pos maze.Point, hp int) *Chaser {
	return &Chaser{Pos: pos, HP: hp}
}

func (c *Chaser) Position() maze.Point { return c.Pos }

// Activate wakes the chaser; dormant chasers never move
func (c *Chaser) Activate() { c.Active = true }

// Chase takes one axis-priority step toward target: horizontal first, then
// vertical. No lookahead, so a wall between chaser and target can pin it.
func (c *Chaser) Chase(target maze.Point, t Terrain) bool {
	if !c.Active {
		return false
	}
	switch {
	case target.X > c.Pos.X && step(&c.Pos, Right, t):
		return true
	case target.X < c.Pos.X && step(&c.Pos, Left, t):
		return true
	case target.Y > c.Pos.Y && step(&c.Pos, Down, t):
		return true
	case target.Y < c.Pos.Y && step(&c.Pos, Up, t):
		return true
	}
	return false
}

func (c *Chaser) AttemptMove(d Direction, t Terrain) bool { return step(&c.Pos, d, t) }

// Damage removes one hit point and reports whether the chaser died
func (c *Chaser) Damage() bool {
	c.HP--
	return c.HP <= 0
}

// Patroller wanders randomly and dies to any projectile
type Patroller struct {
	Pos        maze.Point
	Directions [4]Direction
	LastHit    time.Time
}

// NewPatroller creates a patroller with the standard four directions
func NewPatroller(pos maze.Point) *Patroller {
	return &Patroller{Pos: pos, Directions: Directions}
}

func (p *Patroller) Position() maze.Point { return p.Pos }

// Patrol tries one uniformly chosen direction; a blocked pick is not retried
func (p *Patroller) Patrol(rng *rand.Rand, t Terrain) bool {
	return step(&p.Pos, p.Directions[rng.Intn(len(p.Directions))], t)
}

func (p *Patroller) AttemptMove(d Direction, t Terrain) bool { return step(&p.Pos, d, t) }

var (
	_ Mover = (*Player)(nil)
	_ Mover = (*Chaser)(nil)
	_ Mover = (*Patroller)(nil)
)
