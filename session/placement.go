package session

import (
	"math/rand"

	"github.com/lixenwraith/minotaur/maze"
)

// placer draws spawn positions from the Floor cells of a generated grid.
// Every draw is bounded: a predicate that nothing satisfies falls back to a
// scored pick instead of sampling forever.
type placer struct {
	floor []maze.Point
	rng   *rand.Rand
}

func newPlacer(g *maze.Grid, rng *rand.Rand) *placer {
	return &placer{floor: g.Cells(maze.Floor), rng: rng}
}

// pick returns a uniformly chosen Floor cell accepted by ok
func (p *placer) pick(ok func(maze.Point) bool) (maze.Point, bool) {
	var candidates []maze.Point
	for _, c := range p.floor {
		if ok == nil || ok(c) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return maze.Point{}, false
	}
	return candidates[p.rng.Intn(len(candidates))], true
}

// farthest returns the Floor cell maximizing dist, ties broken by scan order
func (p *placer) farthest(dist func(maze.Point) int) maze.Point {
	best, bestD := p.floor[0], -1
	for _, c := range p.floor {
		if d := dist(c); d > bestD {
			best, bestD = c, d
		}
	}
	return best
}

// awayFrom picks a Floor cell at Manhattan distance >= min from origin,
// falling back to the farthest cell
func (p *placer) awayFrom(origin maze.Point, min int) maze.Point {
	if c, ok := p.pick(func(c maze.Point) bool { return c.Manhattan(origin) >= min }); ok {
		return c
	}
	return p.farthest(origin.Manhattan)
}

// clearOf picks a Floor cell outside the Chebyshev box of radius around origin
func (p *placer) clearOf(origin maze.Point, radius int) (maze.Point, bool) {
	return p.pick(func(c maze.Point) bool { return c.Chebyshev(origin) > radius })
}

// jitter returns n points scattered within one tile of origin, origin first
func jitter(rng *rand.Rand, origin maze.Point, n int) []maze.Point {
	out := make([]maze.Point, 0, n+1)
	out = append(out, origin)
	for range n {
		out = append(out, origin.Add(rng.Intn(3)-1, rng.Intn(3)-1))
	}
	return out
}
