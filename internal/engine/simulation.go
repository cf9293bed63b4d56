package engine

import (
	"fmt"
	"log/slog"

	"github.com/talgya/beeworld/internal/bees"
	"github.com/talgya/beeworld/internal/entropy"
	"github.com/talgya/beeworld/internal/world"
)

// Simulation holds the complete state of one run: the terrain, the
// hive, the communication board, and the bee roster in construction
// order. Bees are advanced strictly in that order within a tick, so
// world mutations made by an earlier bee are visible to later bees in
// the same tick. That ordering is part of the reproducibility contract,
// not an accident.
type Simulation struct {
	World  *world.World
	Hive   *world.Hive
	Board  *bees.Board
	Bees   []*bees.Bee
	Config Config

	// Tick is the number of completed ticks.
	Tick int

	// HoneySeries records the hive's total honey after each tick.
	HoneySeries []int

	// Traces records each bee's position after each tick when
	// Config.RecordTraces is set; Traces[i][t] is bee i after tick t+1.
	Traces [][]world.Pos

	rng *entropy.Source
}

// New creates a simulation over the given world. The hive position
// must be a valid cell; every bee starts there.
func New(w *world.World, hivePos world.Pos, cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if !w.InBounds(hivePos) {
		return nil, fmt.Errorf("hive at (%d,%d): %w", hivePos.Row, hivePos.Col, world.ErrOutOfBounds)
	}

	sim := &Simulation{
		World:  w,
		Hive:   world.NewHive(hivePos),
		Board:  bees.NewBoard(),
		Config: cfg,
		rng:    entropy.NewSource(cfg.Seed),
	}

	for i := 0; i < cfg.BeeCount; i++ {
		sim.Bees = append(sim.Bees, bees.New(i, hivePos, cfg.Strategy, cfg.CommProb))
	}
	if cfg.RecordTraces {
		sim.Traces = make([][]world.Pos, cfg.BeeCount)
	}

	slog.Info("simulation ready",
		"bees", cfg.BeeCount,
		"ticks", cfg.SimLength,
		"strategy", cfg.Strategy.String(),
		"comm_prob", cfg.CommProb,
		"seed", cfg.Seed,
	)
	return sim, nil
}

// StepTick advances the whole world by one tick.
func (s *Simulation) StepTick() {
	for i, b := range s.Bees {
		b.Step(s.World, s.Hive, s.Board, s.rng)
		if s.Config.RecordTraces {
			s.Traces[i] = append(s.Traces[i], b.Pos)
		}
	}
	s.Tick++
	s.HoneySeries = append(s.HoneySeries, s.Hive.Honey())
}

// Done reports whether the configured number of ticks has run.
func (s *Simulation) Done() bool {
	return s.Tick >= s.Config.SimLength
}

// Run steps the simulation to completion and returns its result.
func (s *Simulation) Run() *Result {
	for !s.Done() {
		s.StepTick()
	}
	return s.Result()
}
