package maze

import "testing"

func TestParseGridAndPassable(t *testing.T) {
	g := ParseGrid([]string{
		"#####",
		"#.^.#",
		"#####",
	})
	if g.Width() != 5 || g.Height() != 3 {
		t.Fatalf("size %dx%d, want 5x3", g.Width(), g.Height())
	}
	if g.At(2, 1) != Trap {
		t.Errorf("(2,1) = %s, want trap", g.At(2, 1))
	}
	if !g.Passable(2, 1) {
		t.Error("traps are passable")
	}
	if g.Passable(0, 0) {
		t.Error("walls are not passable")
	}
	if g.Passable(-1, 1) || g.Passable(5, 1) {
		t.Error("out of bounds is not passable")
	}
}

func TestReachableStopsAtWalls(t *testing.T) {
	g := ParseGrid([]string{
		"#######",
		"#..#..#",
		"#..#..#",
		"#######",
	})
	seen := Reachable(g, Point{1, 1})
	if !seen[2][2] {
		t.Error("cell in same chamber should be reachable")
	}
	if seen[1][4] {
		t.Error("cell behind wall should not be reachable")
	}
	if n := ReachableCount(g, Point{1, 1}); n != 4 {
		t.Errorf("reachable count %d, want 4", n)
	}
	if n := ReachableCount(g, Point{0, 0}); n != 0 {
		t.Errorf("flood from wall reached %d cells", n)
	}
}

func TestPointDistances(t *testing.T) {
	a, b := Point{1, 2}, Point{4, -2}
	if d := a.Manhattan(b); d != 7 {
		t.Errorf("Manhattan = %d, want 7", d)
	}
	if d := a.Chebyshev(b); d != 4 {
		t.Errorf("Chebyshev = %d, want 4", d)
	}
}
