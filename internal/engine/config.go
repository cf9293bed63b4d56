// Package engine drives the timestep loop: every bee advances exactly
// once per tick in construction order, then per-tick metrics are
// recorded. See design notes on determinism — the engine owns the only
// randomness source in a run.
package engine

import (
	"fmt"
	"math"

	"github.com/talgya/beeworld/internal/bees"
)

// Config holds the options a single simulation run recognizes.
type Config struct {
	BeeCount     int           // Number of bees, all starting at the hive
	SimLength    int           // Number of ticks to run
	CommProb     float64       // Probability of sharing a location per in-hive tick
	NectarAmount int           // Initial nectar per flower (terrain loading)
	Strategy     bees.Strategy // Movement policy for every bee
	Seed         int64         // Seed for the run's randomness source
	RecordTraces bool          // Keep per-bee position traces for reporting
}

// Validate rejects configurations the engine will not run. Strategy
// strings are parsed (and rejected) earlier by bees.ParseStrategy; by
// the time a Config exists the strategy is already a valid tag.
func (c Config) Validate() error {
	if c.BeeCount < 0 {
		return fmt.Errorf("bee_count must be non-negative, got %d", c.BeeCount)
	}
	if c.SimLength < 0 {
		return fmt.Errorf("sim_length must be non-negative, got %d", c.SimLength)
	}
	if math.IsNaN(c.CommProb) || c.CommProb < 0 || c.CommProb > 1 {
		return fmt.Errorf("comm_prob must be in [0,1], got %g", c.CommProb)
	}
	if c.NectarAmount < 0 {
		return fmt.Errorf("nectar_amount must be non-negative, got %d", c.NectarAmount)
	}
	if c.Strategy > bees.StrategyIntelligent {
		return fmt.Errorf("%w: tag %d", bees.ErrInvalidStrategy, c.Strategy)
	}
	return nil
}
