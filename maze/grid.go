package maze

// Tile is the content of one grid cell
type Tile uint8

const (
	Wall Tile = iota
	Floor
	Trap
)

func (t Tile) String() string {
	switch t {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Trap:
		return "trap"
	}
	return "unknown"
}

type Point struct {
	X, Y int
}

// Add returns p offset by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Manhattan returns the 4-directional distance between two points
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Chebyshev returns the king-move distance between two points
func (p Point) Chebyshev(q Point) int {
	return max(abs(p.X-q.X), abs(p.Y-q.Y))
}

// Room is an axis-aligned rectangle used during generation only
type Room struct {
	X, Y, W, H int
}

// Center returns the room center, rounding toward the origin
func (r Room) Center() Point {
	return Point{r.X + r.W/2, r.Y + r.H/2}
}

// Intersects is the strict AABB overlap test; touching edges do not overlap
func (r Room) Intersects(o Room) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Grid is a row-major tile map, all Wall until carved
type Grid struct {
	width, height int
	cells         []Tile
}

// NewGrid creates a grid filled with Wall
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Tile, width*height),
	}
}

// ParseGrid builds a grid from rows of '#' (Wall), '^' (Trap) and anything else (Floor)
func ParseGrid(rows []string) *Grid {
	h := len(rows)
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	g := NewGrid(w, h)
	for y, r := range rows {
		for x := 0; x < w; x++ {
			if x >= len(r) {
				continue
			}
			switch r[x] {
			case '#':
			case '^':
				g.Set(x, y, Trap)
			default:
				g.Set(x, y, Floor)
			}
		}
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) is inside the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the tile at (x, y); out-of-bounds reads as Wall
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.width+x]
}

// Set writes a tile; out-of-bounds writes are ignored
func (g *Grid) Set(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = t
}

// Passable reports whether an entity may stand on (x, y)
func (g *Grid) Passable(x, y int) bool {
	return g.At(x, y) != Wall
}

// Cells returns every point holding the given tile, in row-major order
func (g *Grid) Cells(t Tile) []Point {
	var out []Point
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] == t {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

// Count returns the number of cells holding t
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// String renders the grid with '#', '.' and '^', one row per line
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			switch g.At(x, y) {
			case Wall:
				buf = append(buf, '#')
			case Trap:
				buf = append(buf, '^')
			default:
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
