package parameter

// Fog of war
const (
	// PlayerLightRadius is the Chebyshev sight radius around the player
	PlayerLightRadius = 4

	// TorchLightRadius is the Chebyshev radius lit by a dropped torch
	TorchLightRadius = 3
)

// Viewport, in tiles either side of the player
const (
	ViewHalfWidth  = 20
	ViewHalfHeight = 15

	// HUDHeight is the number of rows reserved under the map
	HUDHeight = 3
)

// Titles
const (
	GameTitle = "Escape the Minotaur!"
)
