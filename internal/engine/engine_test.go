package engine

import (
	"testing"

	"github.com/talgya/beeworld/internal/bees"
	"github.com/talgya/beeworld/internal/world"
)

func TestEngineRunsToCompletion(t *testing.T) {
	w, hive := scenarioWorld(t)
	sim, err := New(w, hive, baseConfig())
	if err != nil {
		t.Fatal(err)
	}

	ticks := 0
	eng := NewEngine(sim)
	eng.OnTick = func(int) { ticks++ }

	res := eng.Run()

	if res.Ticks != 20 {
		t.Errorf("ticks = %d, want 20", res.Ticks)
	}
	if ticks != 20 {
		t.Errorf("OnTick fired %d times, want 20", ticks)
	}

	snap := eng.Snapshot()
	if !snap.Done {
		t.Error("snapshot not done after Run returned")
	}
	if snap.TotalHoney != res.TotalHoney {
		t.Errorf("snapshot honey = %d, result honey = %d", snap.TotalHoney, res.TotalHoney)
	}
}

func TestEngineStop(t *testing.T) {
	w, hive := scenarioWorld(t)
	cfg := baseConfig()
	cfg.SimLength = 1_000_000
	sim, err := New(w, hive, cfg)
	if err != nil {
		t.Fatal(err)
	}

	eng := NewEngine(sim)
	eng.OnTick = func(tick int) {
		if tick == 10 {
			eng.Stop()
		}
	}

	res := eng.Run()
	if res.Ticks != 10 {
		t.Errorf("ticks = %d, want 10 after Stop", res.Ticks)
	}
}

func TestSnapshotViews(t *testing.T) {
	w, hive := scenarioWorld(t)
	cfg := baseConfig()
	cfg.BeeCount = 4
	cfg.Strategy = bees.StrategyRandom
	sim, err := New(w, hive, cfg)
	if err != nil {
		t.Fatal(err)
	}

	eng := NewEngine(sim)
	snap := eng.Snapshot()

	if len(snap.Bees) != 4 {
		t.Fatalf("snapshot bees = %d, want 4", len(snap.Bees))
	}
	for _, b := range snap.Bees {
		if b.State != bees.StateInHive.String() {
			t.Errorf("bee %s state = %s, want in_hive before any tick", b.Name, b.State)
		}
		if b.Pos != (world.Pos{Row: 20, Col: 20}) {
			t.Errorf("bee %s pos = %v, want the hive", b.Name, b.Pos)
		}
	}
	if len(snap.Flowers) != 1 {
		t.Errorf("snapshot flowers = %d, want 1", len(snap.Flowers))
	}
}
