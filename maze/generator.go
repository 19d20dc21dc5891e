package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	// ErrInvalidConfig reports room parameters that cannot fit the grid
	ErrInvalidConfig = errors.New("maze: invalid config")

	// ErrTooFewRooms reports a draw that accepted fewer rooms than required
	ErrTooFewRooms = errors.New("maze: too few rooms accepted")
)

// DefaultTrapDensity is grid cells per trap candidate
const DefaultTrapDensity = 15

type Config struct {
	Width, Height int

	// MaxRooms is the number of room proposals, not a guaranteed room count.
	// Overlapping proposals are rejected.
	MaxRooms int

	// Room edge bounds, inclusive
	RoomMinSize, RoomMaxSize int

	// TrapDensity: width*height/TrapDensity trap candidates (0 = default, <0 = none)
	TrapDensity int

	// MinRooms is the fewest accepted rooms before the draw is an error (min 1)
	MinRooms int

	Seed int64 // Optional (0 = Random)
}

type Result struct {
	Grid  *Grid
	Start Point
	Rooms []Room
}

func (cfg Config) validate() error {
	switch {
	case cfg.MaxRooms <= 0:
		return fmt.Errorf("%w: max rooms %d", ErrInvalidConfig, cfg.MaxRooms)
	case cfg.RoomMinSize <= 0 || cfg.RoomMaxSize < cfg.RoomMinSize:
		return fmt.Errorf("%w: room size %d..%d", ErrInvalidConfig, cfg.RoomMinSize, cfg.RoomMaxSize)
	case cfg.Width < cfg.RoomMaxSize+2 || cfg.Height < cfg.RoomMaxSize+2:
		return fmt.Errorf("%w: %dx%d grid cannot hold a %d room with border",
			ErrInvalidConfig, cfg.Width, cfg.Height, cfg.RoomMaxSize)
	}
	return nil
}

// Generate creates a room-and-corridor dungeon seeded from cfg.Seed
func Generate(cfg Config) (Result, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return GenerateWith(cfg, rand.New(rand.NewSource(seed)))
}

// GenerateWith creates a dungeon drawing from rng.
// Every accepted room after the first is corridor-linked to the previously
// accepted room, so all rooms form one chain and every Floor/Trap cell is
// reachable from Start.
func GenerateWith(cfg Config, rng *rand.Rand) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}

	grid := NewGrid(cfg.Width, cfg.Height)
	rooms := make([]Room, 0, cfg.MaxRooms)

	for range cfg.MaxRooms {
		w := randInclusive(rng, cfg.RoomMinSize, cfg.RoomMaxSize)
		h := randInclusive(rng, cfg.RoomMinSize, cfg.RoomMaxSize)
		room := Room{
			X: randInclusive(rng, 1, cfg.Width-w-1),
			Y: randInclusive(rng, 1, cfg.Height-h-1),
			W: w,
			H: h,
		}

		if overlapsAny(room, rooms) {
			continue
		}

		carveRoom(grid, room)
		if len(rooms) > 0 {
			connect(grid, rooms[len(rooms)-1].Center(), room.Center(), rng)
		}
		rooms = append(rooms, room)
	}

	minRooms := max(cfg.MinRooms, 1)
	if len(rooms) < minRooms {
		return Result{}, fmt.Errorf("%w: %d of %d required", ErrTooFewRooms, len(rooms), minRooms)
	}

	start := rooms[0].Center()
	scatterTraps(grid, cfg.TrapDensity, start, rng)

	return Result{
		Grid:  grid,
		Start: start,
		Rooms: rooms,
	}, nil
}

// --- Carving ---

func overlapsAny(r Room, rooms []Room) bool {
	for _, other := range rooms {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}

func carveRoom(g *Grid, r Room) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			g.Set(x, y, Floor)
		}
	}
}

// connect joins two centers with an L-shaped corridor, picking the elbow at
// random: horizontal-then-vertical or vertical-then-horizontal
func connect(g *Grid, from, to Point, rng *rand.Rand) {
	if rng.Intn(2) == 1 {
		carveH(g, from.X, to.X, from.Y)
		carveV(g, from.Y, to.Y, to.X)
	} else {
		carveV(g, from.Y, to.Y, from.X)
		carveH(g, from.X, to.X, to.Y)
	}
}

func carveH(g *Grid, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		g.Set(x, y, Floor)
	}
}

func carveV(g *Grid, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		g.Set(x, y, Floor)
	}
}

// scatterTraps converts random interior Floor cells to Trap.
// Walls and the start cell are never touched.
func scatterTraps(g *Grid, density int, start Point, rng *rand.Rand) {
	if density < 0 {
		return
	}
	if density == 0 {
		density = DefaultTrapDensity
	}
	if g.Width() < 3 || g.Height() < 3 {
		return
	}

	candidates := g.Width() * g.Height() / density
	for range candidates {
		x := randInclusive(rng, 1, g.Width()-2)
		y := randInclusive(rng, 1, g.Height()-2)
		if g.At(x, y) == Floor && (Point{x, y}) != start {
			g.Set(x, y, Trap)
		}
	}
}

func randInclusive(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
