// Package level holds the static per-level configuration consulted at level setup.
package level

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/minotaur/maze"
	"github.com/lixenwraith/minotaur/parameter"
)

// ErrInvalidDescriptor reports a descriptor that cannot produce a level
var ErrInvalidDescriptor = errors.New("level: invalid descriptor")

// Descriptor is one row of the level table
type Descriptor struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Torches      int    `yaml:"torches"`
	Chasers      int    `yaml:"chasers"`
	ChaserHealth int    `yaml:"chaser_health"`
	ChaserSpeed  Millis `yaml:"chaser_speed_ms"`
	Track        string `yaml:"track"`

	// Generation overrides; zero means parameter defaults
	MaxRooms    int `yaml:"max_rooms,omitempty"`
	RoomMinSize int `yaml:"room_min_size,omitempty"`
	RoomMaxSize int `yaml:"room_max_size,omitempty"`
}

// Millis is a duration written as whole milliseconds in config files
type Millis int

// Duration converts to time.Duration
func (m Millis) Duration() time.Duration {
	return time.Duration(m) * time.Millisecond
}

// Table is the ordered level sequence; exhausting it wins the run
type Table []Descriptor

// Default returns the three-level table of the original game
func Default() Table {
	return Table{
		{Width: 40, Height: 30, Torches: 4, Chasers: 1, ChaserHealth: 8, ChaserSpeed: 250, Track: "level1"},
		{Width: 50, Height: 40, Torches: 5, Chasers: 2, ChaserHealth: 8, ChaserSpeed: 250, Track: "level2"},
		{Width: 60, Height: 50, Torches: 6, Chasers: 1, ChaserHealth: 15, ChaserSpeed: 200, Track: "level3"},
	}
}

// Len returns the number of levels
func (t Table) Len() int { return len(t) }

// At returns the descriptor for index i, false past the end
func (t Table) At(i int) (Descriptor, bool) {
	if i < 0 || i >= len(t) {
		return Descriptor{}, false
	}
	return t[i], true
}

// Validate checks every descriptor
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: empty level table", ErrInvalidDescriptor)
	}
	for i, d := range t {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	return nil
}

// Validate checks a descriptor against the generator's limits
func (d Descriptor) Validate() error {
	cfg := d.MazeConfig(0)
	switch {
	case d.Width < cfg.RoomMaxSize+2 || d.Height < cfg.RoomMaxSize+2:
		return fmt.Errorf("%w: %dx%d too small for rooms up to %d", ErrInvalidDescriptor, d.Width, d.Height, cfg.RoomMaxSize)
	case d.Torches < 0 || d.Chasers < 0:
		return fmt.Errorf("%w: negative torches or chasers", ErrInvalidDescriptor)
	case d.Chasers > 0 && d.ChaserHealth <= 0:
		return fmt.Errorf("%w: chaser health %d", ErrInvalidDescriptor, d.ChaserHealth)
	case d.ChaserSpeed <= 0:
		return fmt.Errorf("%w: chaser speed %dms", ErrInvalidDescriptor, d.ChaserSpeed)
	}
	return nil
}

// MazeConfig builds the generator config for this level
func (d Descriptor) MazeConfig(seed int64) maze.Config {
	cfg := maze.Config{
		Width:       d.Width,
		Height:      d.Height,
		MaxRooms:    d.MaxRooms,
		RoomMinSize: d.RoomMinSize,
		RoomMaxSize: d.RoomMaxSize,
		TrapDensity: parameter.TrapDensity,
		MinRooms:    parameter.MinRooms,
		Seed:        seed,
	}
	if cfg.MaxRooms == 0 {
		cfg.MaxRooms = parameter.MaxRooms
	}
	if cfg.RoomMinSize == 0 {
		cfg.RoomMinSize = parameter.RoomMinSize
	}
	if cfg.RoomMaxSize == 0 {
		cfg.RoomMaxSize = parameter.RoomMaxSize
	}
	return cfg
}
