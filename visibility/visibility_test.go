package visibility

import (
	"testing"

	"github.com/lixenwraith/minotaur/maze"
)

func TestVisible(t *testing.T) {
	player := maze.Point{X: 10, Y: 10}
	torches := []maze.Point{{X: 30, Y: 10}}

	tests := []struct {
		name string
		tile maze.Point
		want bool
	}{
		{"player tile", player, true},
		{"edge of player radius", maze.Point{X: 14, Y: 6}, true},
		{"just outside player radius", maze.Point{X: 15, Y: 10}, false},
		{"diagonal corner counts as Chebyshev", maze.Point{X: 6, Y: 14}, true},
		{"inside torch radius", maze.Point{X: 33, Y: 13}, true},
		{"outside torch radius", maze.Point{X: 34, Y: 10}, false},
		{"between lights", maze.Point{X: 20, Y: 10}, false},
	}

	m := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.IsVisible(tt.tile, player, torches); got != tt.want {
				t.Errorf("IsVisible(%v) = %v, want %v", tt.tile, got, tt.want)
			}
		})
	}
}

func TestFogDisabledShowsEverything(t *testing.T) {
	m := Default()
	far := maze.Point{X: 500, Y: 500}
	if m.IsVisible(far, maze.Point{}, nil) {
		t.Fatal("far tile should be fogged")
	}
	m.Toggle()
	if !m.IsVisible(far, maze.Point{}, nil) {
		t.Error("fog off should reveal every tile")
	}
	m.Toggle()
	if m.IsVisible(far, maze.Point{}, nil) {
		t.Error("second toggle should restore fog")
	}
}
