package bees

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/talgya/beeworld/internal/entropy"
	"github.com/talgya/beeworld/internal/world"
)

// Timing and capacity constants for a foraging trip.
const (
	HiveRestTicks   = 4  // Ticks spent in the hive before the next trip
	SearchTickLimit = 5  // Fruitless searching ticks before a trip is abandoned
	TripCapacity    = 10 // Maximum nectar carried per trip
)

// State is a bee's position in its foraging cycle.
type State uint8

const (
	StateInHive State = iota
	StateSearching
	StateReturning
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInHive:
		return "in_hive"
	case StateSearching:
		return "searching"
	case StateReturning:
		return "returning"
	default:
		return "unknown"
	}
}

// Bee is a foraging agent. It always occupies exactly one passable,
// in-bounds cell; every move is validated against the world before it
// is applied.
type Bee struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Pos      world.Pos `json:"pos"`
	State    State     `json:"state"`
	Strategy Strategy  `json:"strategy"`
	Carrying int       `json:"carrying"`

	// TicksInState counts ticks spent in the current state; it resets
	// on every transition.
	TicksInState int `json:"ticks_in_state"`

	// TotalCollected is lifetime nectar gathered, for end-of-run
	// reporting.
	TotalCollected int `json:"total_collected"`

	// Known maps every flower position this bee has observed to the
	// nectar value seen at observation time. All strategies record
	// observations; only the intelligent strategy acts on them.
	Known map[world.Pos]int `json:"-"`

	// CommProb gates publishing known locations to the board while in
	// the hive.
	CommProb float64 `json:"-"`

	trips   int        // Completed trip departures, drives the none-strategy heading
	heading world.Step // Current trip heading for StrategyNone
}

// New creates a bee at the hive with the given strategy.
func New(id int, pos world.Pos, strategy Strategy, commProb float64) *Bee {
	return &Bee{
		ID:       id,
		Name:     fmt.Sprintf("b%d", id),
		Pos:      pos,
		State:    StateInHive,
		Strategy: strategy,
		CommProb: commProb,
		Known:    make(map[world.Pos]int),
	}
}

// Step advances the bee by one tick and returns the nectar deposited
// into the hive this tick (0 on most ticks).
func (b *Bee) Step(w *world.World, hive *world.Hive, board *Board, rng *entropy.Source) int {
	switch b.State {
	case StateInHive:
		b.tickInHive(board, rng)
		return 0
	case StateSearching:
		b.tickSearching(w, board, rng)
		return 0
	default:
		return b.tickReturning(w, hive)
	}
}

// tickInHive rests, optionally shares a known flower location, and
// departs on a new trip once the rest period is over.
func (b *Bee) tickInHive(board *Board, rng *entropy.Source) {
	if b.Strategy == StrategyIntelligent && len(b.Known) > 0 && rng.Float() < b.CommProb {
		b.publishOne(board, rng)
	}

	b.TicksInState++
	if b.TicksInState >= HiveRestTicks {
		b.State = StateSearching
		b.TicksInState = 0
		b.Carrying = 0
		b.heading = world.Moore[b.trips%len(world.Moore)]
		b.trips++
	}
}

// publishOne shares one known location with the board. The candidate
// list is sorted so the random draw is the only nondeterminism.
func (b *Bee) publishOne(board *Board, rng *entropy.Source) {
	positions := make([]world.Pos, 0, len(b.Known))
	for p := range b.Known {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].Less(positions[j]) })

	p := positions[rng.Intn(len(positions))]
	board.Publish(p, b.Known[p])
	slog.Debug("bee shared flower location",
		"bee", b.Name, "row", p.Row, "col", p.Col, "estimate", b.Known[p])
}

// tickSearching moves one step per the strategy, scans the 3×3
// neighborhood for nectar, and decides whether the trip continues.
func (b *Bee) tickSearching(w *world.World, board *Board, rng *entropy.Source) {
	if b.Strategy == StrategyIntelligent {
		b.readBoard(board)
	}

	b.Pos = searchStep(b, w, rng)

	collected := b.collectNearby(w)
	if collected > 0 {
		b.Carrying += collected
		b.TotalCollected += collected
		b.State = StateReturning
		b.TicksInState = 0
		slog.Debug("bee collected nectar",
			"bee", b.Name, "amount", collected, "row", b.Pos.Row, "col", b.Pos.Col)
		return
	}

	b.TicksInState++
	if b.TicksInState >= SearchTickLimit {
		// Trip abandoned: head home empty.
		b.State = StateReturning
		b.TicksInState = 0
		b.Carrying = 0
	}
}

// readBoard merges board entries the bee has not observed itself. Its
// own observations are fresher than the board's estimates and are kept.
func (b *Bee) readBoard(board *Board) {
	for _, p := range board.Positions() {
		if _, seen := b.Known[p]; !seen {
			est, _ := board.Estimate(p)
			b.Known[p] = est
		}
	}
}

// collectNearby inspects the 3×3 neighborhood centered on the bee's
// position. Every flower seen is recorded in the bee's known set;
// among flowers with nectar left, the nearest (Manhattan, tie-break
// smaller row then column) is harvested up to the remaining trip
// capacity.
func (b *Bee) collectNearby(w *world.World) int {
	var target world.Pos
	targetDist := -1

	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			p := world.Pos{Row: b.Pos.Row + dr, Col: b.Pos.Col + dc}
			kind, err := w.CellKind(p)
			if err != nil || kind != world.KindFlower {
				continue
			}

			nectar := w.NectarAt(p)
			b.Known[p] = nectar
			if nectar <= 0 {
				continue
			}

			d := b.Pos.Manhattan(p)
			if targetDist < 0 || d < targetDist || (d == targetDist && p.Less(target)) {
				target, targetDist = p, d
			}
		}
	}

	if targetDist < 0 {
		return 0
	}

	collected := w.CollectNectar(target, TripCapacity-b.Carrying)
	b.Known[target] = w.NectarAt(target)
	return collected
}

// tickReturning takes one greedy step toward the hive, deposits on
// arrival, and re-enters the hive.
func (b *Bee) tickReturning(w *world.World, hive *world.Hive) int {
	if b.Pos != hive.Pos {
		b.Pos = homewardStep(b.Pos, hive.Pos, w)
	}
	if b.Pos != hive.Pos {
		b.TicksInState++
		return 0
	}

	deposited := b.Carrying
	hive.Deposit(deposited)
	b.Carrying = 0
	b.State = StateInHive
	b.TicksInState = 0
	if deposited > 0 {
		slog.Debug("bee returned with nectar", "bee", b.Name, "deposited", deposited)
	}
	return deposited
}

// homewardStep is the greedy move toward the hive: the full sign-step
// first, then either axis alone when the diagonal is blocked. All
// options blocked means the bee waits in place this tick.
func homewardStep(from, hive world.Pos, w *world.World) world.Pos {
	step := from.Toward(hive)
	for _, cand := range []world.Step{step, {DR: step.DR}, {DC: step.DC}} {
		if cand == (world.Step{}) {
			continue
		}
		next := from.Apply(cand)
		if w.IsPassable(next) {
			return next
		}
	}
	return from
}
