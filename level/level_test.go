package level

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/minotaur/parameter"
)

func TestDefaultTable(t *testing.T) {
	table := Default()
	if err := table.Validate(); err != nil {
		t.Fatalf("default table invalid: %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("got %d levels, want 3", table.Len())
	}

	last, ok := table.At(2)
	if !ok {
		t.Fatal("level 3 missing")
	}
	if last.Width != 60 || last.Height != 50 || last.ChaserHealth != 15 {
		t.Errorf("level 3 = %+v", last)
	}
	if last.ChaserSpeed.Duration() != 200*time.Millisecond {
		t.Errorf("level 3 speed %v", last.ChaserSpeed.Duration())
	}
	if _, ok := table.At(3); ok {
		t.Error("index past the table should report false")
	}
}

func TestMazeConfigDefaults(t *testing.T) {
	d := Descriptor{Width: 40, Height: 30, ChaserSpeed: 250}
	cfg := d.MazeConfig(9)
	if cfg.MaxRooms != parameter.MaxRooms || cfg.RoomMinSize != parameter.RoomMinSize || cfg.RoomMaxSize != parameter.RoomMaxSize {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Seed != 9 {
		t.Errorf("seed %d, want 9", cfg.Seed)
	}

	d.MaxRooms, d.RoomMinSize, d.RoomMaxSize = 4, 2, 5
	cfg = d.MazeConfig(0)
	if cfg.MaxRooms != 4 || cfg.RoomMinSize != 2 || cfg.RoomMaxSize != 5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		d    Descriptor
	}{
		{"too small", Descriptor{Width: 5, Height: 30, ChaserSpeed: 250}},
		{"negative torches", Descriptor{Width: 40, Height: 30, Torches: -1, ChaserSpeed: 250}},
		{"dead chasers", Descriptor{Width: 40, Height: 30, Chasers: 1, ChaserHealth: 0, ChaserSpeed: 250}},
		{"no speed", Descriptor{Width: 40, Height: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.d.Validate(); !errors.Is(err, ErrInvalidDescriptor) {
				t.Errorf("got %v, want ErrInvalidDescriptor", err)
			}
		})
	}

	if err := (Table{}).Validate(); !errors.Is(err, ErrInvalidDescriptor) {
		t.Errorf("empty table: got %v", err)
	}
}
