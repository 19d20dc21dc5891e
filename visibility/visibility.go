// Package visibility answers fog-of-war queries: a tile is observable when it
// is near the player or near a dropped torch.
package visibility

import (
	"github.com/lixenwraith/minotaur/maze"
	"github.com/lixenwraith/minotaur/parameter"
)

// Model holds the radius rule and the global fog switch
type Model struct {
	PlayerRadius int
	TorchRadius  int

	// Enabled false makes every tile visible
	Enabled bool
}

// Default returns the standard radii with fog on
func Default() Model {
	return Model{
		PlayerRadius: parameter.PlayerLightRadius,
		TorchRadius:  parameter.TorchLightRadius,
		Enabled:      true,
	}
}

// Toggle flips the fog switch
func (m *Model) Toggle() {
	m.Enabled = !m.Enabled
}

// IsVisible reports whether tile is within Chebyshev PlayerRadius of player or
// TorchRadius of any torch
func (m Model) IsVisible(tile, player maze.Point, torches []maze.Point) bool {
	if !m.Enabled {
		return true
	}
	return Visible(tile, player, torches, m.PlayerRadius, m.TorchRadius)
}

// Visible is the fog predicate without the global switch
func Visible(tile, player maze.Point, torches []maze.Point, playerRadius, torchRadius int) bool {
	if tile.Chebyshev(player) <= playerRadius {
		return true
	}
	for _, t := range torches {
		if tile.Chebyshev(t) <= torchRadius {
			return true
		}
	}
	return false
}
