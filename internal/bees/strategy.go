// Movement strategies. Each policy answers one question: where does a
// searching bee step next? The state machine in bee.go is strategy
// agnostic and only calls into here while the bee is searching.
package bees

import (
	"errors"
	"fmt"

	"github.com/talgya/beeworld/internal/entropy"
	"github.com/talgya/beeworld/internal/world"
)

// ErrInvalidStrategy is returned when configuration names an unknown
// strategy. Rejected before any bee is constructed.
var ErrInvalidStrategy = errors.New("invalid strategy")

// Strategy selects the movement policy a bee uses while searching.
type Strategy uint8

const (
	StrategyNone        Strategy = iota // Fixed heading per trip, cycling across trips
	StrategyRandom                      // Uniform choice among passable neighbors
	StrategyIntelligent                 // Greedy toward the nearest known flower
)

// ParseStrategy maps a configuration string to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "none":
		return StrategyNone, nil
	case "random":
		return StrategyRandom, nil
	case "intelligent":
		return StrategyIntelligent, nil
	default:
		return 0, fmt.Errorf("%w: %q (want none, random, or intelligent)", ErrInvalidStrategy, name)
	}
}

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyNone:
		return "none"
	case StrategyRandom:
		return "random"
	case StrategyIntelligent:
		return "intelligent"
	default:
		return "unknown"
	}
}

// searchStep picks the bee's next position for one searching tick. The
// returned position equals the current one when the policy's move is
// blocked; blocked moves are discarded, never re-rolled, so the tick is
// a no-op but the trip timer still runs.
func searchStep(b *Bee, w *world.World, rng *entropy.Source) world.Pos {
	switch b.Strategy {
	case StrategyRandom:
		return randomStep(b.Pos, w, rng)
	case StrategyIntelligent:
		if target, ok := b.nearestKnownFlower(); ok {
			next := b.Pos.Apply(b.Pos.Toward(target))
			if w.IsPassable(next) {
				return next
			}
			return b.Pos
		}
		// Nothing known yet: behave like a random scout.
		return randomStep(b.Pos, w, rng)
	default: // StrategyNone
		next := b.Pos.Apply(b.heading)
		if w.IsPassable(next) {
			return next
		}
		return b.Pos
	}
}

// randomStep chooses uniformly among the passable Moore neighbors,
// enumerated in row-major order so the draw is the only source of
// randomness. No passable neighbor means no move.
func randomStep(from world.Pos, w *world.World, rng *entropy.Source) world.Pos {
	var open []world.Pos
	for _, step := range world.Moore {
		next := from.Apply(step)
		if w.IsPassable(next) {
			open = append(open, next)
		}
	}
	if len(open) == 0 {
		return from
	}
	return open[rng.Intn(len(open))]
}

// nearestKnownFlower returns the closest known flower position with a
// non-zero nectar estimate. Ties break toward the smaller row, then the
// smaller column, which makes the winner independent of map iteration
// order.
func (b *Bee) nearestKnownFlower() (world.Pos, bool) {
	var best world.Pos
	bestDist := -1
	for p, estimate := range b.Known {
		if estimate <= 0 {
			continue
		}
		d := b.Pos.Manhattan(p)
		if bestDist < 0 || d < bestDist || (d == bestDist && p.Less(best)) {
			best, bestDist = p, d
		}
	}
	return best, bestDist >= 0
}
