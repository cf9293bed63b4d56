package bees

import (
	"testing"

	"github.com/talgya/beeworld/internal/entropy"
	"github.com/talgya/beeworld/internal/world"
)

func TestBoardPublishAndUpdate(t *testing.T) {
	board := NewBoard()
	p := world.Pos{Row: 3, Col: 4}

	board.Publish(p, 80)
	if est, ok := board.Estimate(p); !ok || est != 80 {
		t.Fatalf("Estimate = %d,%v, want 80,true", est, ok)
	}

	// Entries update in place and are never removed.
	board.Publish(p, 0)
	if est, ok := board.Estimate(p); !ok || est != 0 {
		t.Errorf("Estimate after update = %d,%v, want 0,true", est, ok)
	}
	if board.Len() != 1 {
		t.Errorf("Len = %d, want 1", board.Len())
	}
}

func TestCommGatingZeroProbability(t *testing.T) {
	// comm_prob = 0: the board never receives entries, no matter how
	// much the bee knows or how long it rests.
	w := world.New(20, 20)
	hivePos := world.Pos{Row: 10, Col: 10}
	w.PlaceHive(hivePos)
	hive := world.NewHive(hivePos)
	board := NewBoard()
	rng := entropy.NewSource(1)

	b := New(0, hivePos, StrategyIntelligent, 0)
	b.Known[world.Pos{Row: 2, Col: 2}] = 50

	for tick := 0; tick < 100; tick++ {
		b.Step(w, hive, board, rng)
	}
	if board.Len() != 0 {
		t.Errorf("board has %d entries with comm_prob=0, want 0", board.Len())
	}
}

func TestCommGatingCertainProbability(t *testing.T) {
	// comm_prob = 1 with a known location: the very first in-hive tick
	// publishes.
	w := world.New(20, 20)
	hivePos := world.Pos{Row: 10, Col: 10}
	w.PlaceHive(hivePos)
	hive := world.NewHive(hivePos)
	board := NewBoard()
	rng := entropy.NewSource(1)

	b := New(0, hivePos, StrategyIntelligent, 1.0)
	known := world.Pos{Row: 2, Col: 2}
	b.Known[known] = 50

	b.Step(w, hive, board, rng)

	est, ok := board.Estimate(known)
	if !ok {
		t.Fatal("board empty after an in-hive tick with comm_prob=1")
	}
	if est != 50 {
		t.Errorf("published estimate = %d, want 50", est)
	}
}

func TestNoPublishWithoutKnownLocations(t *testing.T) {
	// Publishing requires at least one known location even at
	// comm_prob = 1.
	w := world.New(20, 20)
	hivePos := world.Pos{Row: 10, Col: 10}
	w.PlaceHive(hivePos)
	hive := world.NewHive(hivePos)
	board := NewBoard()
	rng := entropy.NewSource(1)

	b := New(0, hivePos, StrategyIntelligent, 1.0)
	b.Step(w, hive, board, rng)

	if board.Len() != 0 {
		t.Errorf("board has %d entries, want 0 without known locations", board.Len())
	}
}

func TestReadBoardKeepsOwnObservations(t *testing.T) {
	board := NewBoard()
	shared := world.Pos{Row: 1, Col: 1}
	observed := world.Pos{Row: 2, Col: 2}
	board.Publish(shared, 40)
	board.Publish(observed, 99)

	b := New(0, world.Pos{Row: 5, Col: 5}, StrategyIntelligent, 1.0)
	b.Known[observed] = 7 // The bee's own, fresher observation

	b.readBoard(board)

	if b.Known[shared] != 40 {
		t.Errorf("merged estimate = %d, want 40", b.Known[shared])
	}
	if b.Known[observed] != 7 {
		t.Errorf("own observation overwritten: got %d, want 7", b.Known[observed])
	}
}
