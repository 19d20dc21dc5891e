package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/minotaur/maze"
	"github.com/lixenwraith/minotaur/session"
)

// Glyph is the rune and color drawn for one tile
type Glyph struct {
	Rune rune
	Fg   tcell.Color
}

// Tile glyphs, in draw priority order
var (
	GlyphWall       = Glyph{'#', RgbWall}
	GlyphTrap       = Glyph{'^', RgbTrap}
	GlyphPlayer     = Glyph{'@', RgbPlayer}
	GlyphChaser     = Glyph{'M', RgbChaser}
	GlyphKey        = Glyph{'K', RgbKey}
	GlyphExit       = Glyph{'E', RgbExit}
	GlyphPatroller  = Glyph{'P', RgbPatroller}
	GlyphProjectile = Glyph{'*', RgbProjectile}
	GlyphAmmo       = Glyph{'A', RgbAmmo}
	GlyphBlood      = Glyph{'+', RgbBlood}
	GlyphBody       = Glyph{'b', RgbBlood}
	GlyphTorch      = Glyph{'T', RgbTorch}
	GlyphFloor      = Glyph{' ', RgbBackground}
)

type pointSet map[maze.Point]struct{}

func setOf(points []maze.Point) pointSet {
	set := make(pointSet, len(points))
	for _, p := range points {
		set[p] = struct{}{}
	}
	return set
}

func (s pointSet) has(p maze.Point) bool {
	_, ok := s[p]
	return ok
}

// scene indexes session positions for per-tile lookup
type scene struct {
	s           *session.Session
	chasers     pointSet
	patrollers  pointSet
	projectiles pointSet
	ammo        pointSet
	blood       pointSet
	bodies      pointSet
	torches     pointSet
}

func newScene(s *session.Session) *scene {
	sc := &scene{
		s:           s,
		chasers:     make(pointSet, len(s.Chasers)),
		patrollers:  make(pointSet, len(s.Patrollers)),
		projectiles: make(pointSet, len(s.Projectiles)),
		ammo:        setOf(s.Ammo),
		blood:       setOf(s.Blood),
		bodies:      setOf(s.Bodies),
		torches:     setOf(s.Torches),
	}
	for _, c := range s.Chasers {
		sc.chasers[c.Pos] = struct{}{}
	}
	for _, p := range s.Patrollers {
		sc.patrollers[p.Pos] = struct{}{}
	}
	for _, p := range s.Projectiles {
		sc.projectiles[p.Pos] = struct{}{}
	}
	return sc
}

// glyph resolves the single glyph for p; the first match wins
func (sc *scene) glyph(p maze.Point) Glyph {
	switch sc.s.Grid.At(p.X, p.Y) {
	case maze.Wall:
		return GlyphWall
	case maze.Trap:
		return GlyphTrap
	}
	switch {
	case sc.s.Player.Pos == p:
		return GlyphPlayer
	case sc.chasers.has(p):
		return GlyphChaser
	case sc.s.Key != nil && *sc.s.Key == p:
		return GlyphKey
	case sc.s.Exit == p:
		return GlyphExit
	case sc.patrollers.has(p):
		return GlyphPatroller
	case sc.projectiles.has(p):
		return GlyphProjectile
	case sc.ammo.has(p):
		return GlyphAmmo
	case sc.blood.has(p):
		return GlyphBlood
	case sc.bodies.has(p):
		return GlyphBody
	case sc.torches.has(p):
		return GlyphTorch
	}
	return GlyphFloor
}

// GlyphAt returns the glyph drawn for p ignoring fog
func GlyphAt(s *session.Session, p maze.Point) Glyph {
	return newScene(s).glyph(p)
}
