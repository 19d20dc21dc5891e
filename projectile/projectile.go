// Package projectile advances in-flight shots and resolves their impacts.
//
// Removal never mutates a slice under iteration: chasers and patrollers are
// flagged dead while shots are resolved, and every collection handed back in
// Result is rebuilt from survivors.
package projectile

import (
	"github.com/lixenwraith/minotaur/entity"
	"github.com/lixenwraith/minotaur/maze"
)

// Projectile is one shot in flight
type Projectile struct {
	Pos maze.Point
	Dir entity.Direction
}

// Fire creates a shot at origin heading dir
func Fire(origin maze.Point, dir entity.Direction) Projectile {
	return Projectile{Pos: origin, Dir: dir}
}

// ImpactKind classifies how a shot ended, or that it struck without ending
type ImpactKind int

const (
	// ImpactWall: left the grid or hit a wall, no effect
	ImpactWall ImpactKind = iota
	// ImpactChaserImmune: absorbed by a chaser while the player lacks the key
	ImpactChaserImmune
	// ImpactChaserHit: chaser lost a hit point and survived
	ImpactChaserHit
	// ImpactChaserKill: chaser reached zero hit points
	ImpactChaserKill
	// ImpactPatrollerKill: patroller destroyed
	ImpactPatrollerKill
)

// Impact records one resolved shot
type Impact struct {
	Kind ImpactKind
	At   maze.Point
}

// IsKill reports whether the impact destroyed an enemy
func (i Impact) IsKill() bool {
	return i.Kind == ImpactChaserKill || i.Kind == ImpactPatrollerKill
}

// Result is the post-tick state of shots and their targets
type Result struct {
	Projectiles []Projectile
	Chasers     []*entity.Chaser
	Patrollers  []*entity.Patroller
	Impacts     []Impact
	Kills       []maze.Point
}

// Advance moves every shot one step and resolves at most one impact per shot.
// A shot strikes an enemy standing on its current tile before it moves, so an
// enemy that stepped onto it this tick is still hit. Chasers are tested before
// patrollers. armed reports whether the player holds the key; unarmed shots are
// absorbed by chasers without damage.
func Advance(shots []Projectile, terrain entity.Terrain, chasers []*entity.Chaser, patrollers []*entity.Patroller, armed bool) Result {
	res := Result{Projectiles: make([]Projectile, 0, len(shots))}

	deadChaser := make([]bool, len(chasers))
	deadPatroller := make([]bool, len(patrollers))

	strike := func(p maze.Point) bool {
		if idx := chaserAt(chasers, deadChaser, p); idx >= 0 {
			kind := ImpactChaserImmune
			if armed {
				kind = ImpactChaserHit
				if chasers[idx].Damage() {
					kind = ImpactChaserKill
					deadChaser[idx] = true
					res.Kills = append(res.Kills, p)
				}
			}
			res.Impacts = append(res.Impacts, Impact{Kind: kind, At: p})
			return true
		}
		if idx := patrollerAt(patrollers, deadPatroller, p); idx >= 0 {
			deadPatroller[idx] = true
			res.Kills = append(res.Kills, p)
			res.Impacts = append(res.Impacts, Impact{Kind: ImpactPatrollerKill, At: p})
			return true
		}
		return false
	}

	for _, shot := range shots {
		if strike(shot.Pos) {
			continue
		}

		next := shot.Pos.Add(shot.Dir.DX, shot.Dir.DY)
		if !terrain.Passable(next.X, next.Y) {
			res.Impacts = append(res.Impacts, Impact{Kind: ImpactWall, At: next})
			continue
		}
		if strike(next) {
			continue
		}

		res.Projectiles = append(res.Projectiles, Projectile{Pos: next, Dir: shot.Dir})
	}

	res.Chasers = survivors(chasers, deadChaser)
	res.Patrollers = survivors(patrollers, deadPatroller)
	return res
}

func chaserAt(chasers []*entity.Chaser, dead []bool, p maze.Point) int {
	for i, c := range chasers {
		if !dead[i] && c.Pos == p {
			return i
		}
	}
	return -1
}

func patrollerAt(patrollers []*entity.Patroller, dead []bool, p maze.Point) int {
	for i, e := range patrollers {
		if !dead[i] && e.Pos == p {
			return i
		}
	}
	return -1
}

func survivors[T any](items []T, dead []bool) []T {
	out := make([]T, 0, len(items))
	for i, it := range items {
		if !dead[i] {
			out = append(out, it)
		}
	}
	return out
}
