package maze

// Reachable flood-fills non-Wall cells 4-connected to from.
// The result is indexed [y][x]; a Wall start yields an all-false map.
func Reachable(g *Grid, from Point) [][]bool {
	seen := make([][]bool, g.Height())
	for i := range seen {
		seen[i] = make([]bool, g.Width())
	}
	if !g.Passable(from.X, from.Y) {
		return seen
	}

	queue := []Point{from}
	seen[from.Y][from.X] = true
	dirs := []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, d := range dirs {
			next := curr.Add(d.X, d.Y)
			if !g.Passable(next.X, next.Y) || seen[next.Y][next.X] {
				continue
			}
			seen[next.Y][next.X] = true
			queue = append(queue, next)
		}
	}
	return seen
}

// ReachableCount returns the number of cells Reachable marks
func ReachableCount(g *Grid, from Point) int {
	n := 0
	for _, row := range Reachable(g, from) {
		for _, ok := range row {
			if ok {
				n++
			}
		}
	}
	return n
}
