package bees

import (
	"errors"
	"testing"

	"github.com/talgya/beeworld/internal/entropy"
	"github.com/talgya/beeworld/internal/world"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Strategy
		wantErr bool
	}{
		{"none", "none", StrategyNone, false},
		{"random", "random", StrategyRandom, false},
		{"intelligent", "intelligent", StrategyIntelligent, false},
		{"unknown", "clever", 0, true},
		{"empty", "", 0, true},
		{"case sensitive", "Random", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStrategy) {
					t.Errorf("ParseStrategy(%q) error = %v, want ErrInvalidStrategy", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStrategy(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseStrategy(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRandomStepNoPassableNeighbor(t *testing.T) {
	// A bee boxed in by water cannot move; the tick is a defined no-op,
	// not an error.
	w := world.New(5, 5)
	center := world.Pos{Row: 2, Col: 2}
	for _, step := range world.Moore {
		w.PlaceBarrier(center.Apply(step))
	}
	rng := entropy.NewSource(1)

	if got := randomStep(center, w, rng); got != center {
		t.Errorf("randomStep = %v, want no-op at %v", got, center)
	}
}

func TestNearestKnownFlowerTieBreak(t *testing.T) {
	b := New(0, world.Pos{Row: 5, Col: 5}, StrategyIntelligent, 1.0)
	b.Known[world.Pos{Row: 5, Col: 7}] = 10 // Distance 2
	b.Known[world.Pos{Row: 3, Col: 5}] = 10 // Distance 2, smaller row
	b.Known[world.Pos{Row: 5, Col: 4}] = 0  // Closest but exhausted

	target, ok := b.nearestKnownFlower()
	if !ok {
		t.Fatal("no target found")
	}
	if want := (world.Pos{Row: 3, Col: 5}); target != want {
		t.Errorf("target = %v, want %v (smaller row wins the tie)", target, want)
	}
}

func TestNoneHeadingCyclesAcrossTrips(t *testing.T) {
	// Successive trips scan different directions; two consecutive trip
	// headings must differ.
	w := world.New(30, 30)
	hivePos := world.Pos{Row: 15, Col: 15}
	w.PlaceHive(hivePos)
	hive := world.NewHive(hivePos)
	board := NewBoard()
	rng := entropy.NewSource(1)

	b := New(0, hivePos, StrategyNone, 0)

	var firstTrip, secondTrip world.Pos
	// First trip: 4 in-hive ticks, then the first searching move.
	for tick := 0; tick < 5; tick++ {
		b.Step(w, hive, board, rng)
	}
	firstTrip = b.Pos

	// Finish the trip and the next rest, then catch the second trip's
	// first move.
	for b.State != StateInHive {
		b.Step(w, hive, board, rng)
	}
	for b.State == StateInHive {
		b.Step(w, hive, board, rng)
	}
	b.Step(w, hive, board, rng) // First searching move of the second trip
	secondTrip = b.Pos

	if firstTrip == secondTrip {
		t.Errorf("both trips opened with the same move to %v", firstTrip)
	}
}
