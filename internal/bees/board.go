// Package bees provides the bee agent, its state machine, the movement
// strategies, and the communication board bees share at the hive.
package bees

import (
	"sort"

	"github.com/talgya/beeworld/internal/world"
)

// Board is the shared registry of known flower locations used by the
// intelligent strategy. It is created empty for each run and only ever
// grows or updates entries; a flower later found empty stays listed and
// simply yields nothing when revisited.
//
// The board is an explicit value passed into the engine and each bee's
// decision step, never package-level state, so tests get a fresh board
// for free.
type Board struct {
	entries map[world.Pos]int
}

// NewBoard creates an empty communication board.
func NewBoard() *Board {
	return &Board{entries: make(map[world.Pos]int)}
}

// Publish records a flower location with its last-known nectar
// estimate, overwriting any previous estimate for the same position.
func (b *Board) Publish(p world.Pos, estimate int) {
	b.entries[p] = estimate
}

// Estimate returns the recorded nectar estimate for p.
func (b *Board) Estimate(p world.Pos) (int, bool) {
	est, ok := b.entries[p]
	return est, ok
}

// Len returns the number of recorded locations.
func (b *Board) Len() int {
	return len(b.entries)
}

// Positions returns all recorded locations in row-major order.
func (b *Board) Positions() []world.Pos {
	out := make([]world.Pos, 0, len(b.entries))
	for p := range b.entries {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
