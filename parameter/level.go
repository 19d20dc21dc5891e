package parameter

// Dungeon generation defaults
const (
	// MaxRooms is the number of room proposals per level
	MaxRooms = 15

	// RoomMinSize and RoomMaxSize bound room edge length, inclusive
	RoomMinSize = 3
	RoomMaxSize = 7

	// TrapDensity is grid cells per trap candidate (width*height/TrapDensity draws)
	TrapDensity = 15

	// MinRooms is the fewest accepted rooms a playable level may have
	MinRooms = 2

	// MazeAttempts bounds regeneration when a draw yields too few rooms
	MazeAttempts = 8
)
