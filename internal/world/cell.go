// Package world provides the terrain grid, cell model, and hive.
// The grid uses (row, col) positions; row 0 is the top edge.
package world

// Pos identifies a grid cell.
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Manhattan returns the Manhattan distance between two positions.
func (p Pos) Manhattan(q Pos) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// Less orders positions row-major: smaller row first, then smaller column.
// Used as the tie-break everywhere a nearest cell is selected.
func (p Pos) Less(q Pos) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Step is a single-cell displacement.
type Step struct {
	DR int
	DC int
}

// Apply returns the position one step away.
func (p Pos) Apply(s Step) Pos {
	return Pos{Row: p.Row + s.DR, Col: p.Col + s.DC}
}

// Moore is the eight-cell neighborhood in row-major scan order. Every
// policy that enumerates neighbors walks this slice in order, so the
// only nondeterminism left is in explicit random draws.
var Moore = [8]Step{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Toward returns the greedy single step from p toward target: each axis
// moves by the sign of its remaining distance. The zero Step means p is
// already at the target.
func (p Pos) Toward(target Pos) Step {
	return Step{DR: sign(target.Row - p.Row), DC: sign(target.Col - p.Col)}
}

// CellKind classifies a terrain cell.
type CellKind uint8

const (
	KindEmpty    CellKind = iota // Open ground, passable
	KindFlower                   // Nectar source, passable
	KindTree                     // Impassable
	KindBarrier                  // Water, impassable
	KindBuilding                 // Impassable
	KindHive                     // The colony's home cell, passable
)

// KindName returns a human-readable cell kind name.
func KindName(k CellKind) string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindFlower:
		return "flower"
	case KindTree:
		return "tree"
	case KindBarrier:
		return "water"
	case KindBuilding:
		return "building"
	case KindHive:
		return "hive"
	default:
		return "unknown"
	}
}

// Cell is a single tile on the grid. Nectar fields are only meaningful
// when Kind is KindFlower; Capacity is fixed at creation, Nectar counts
// down from it and never goes back up.
type Cell struct {
	Pos      Pos      `json:"pos"`
	Kind     CellKind `json:"kind"`
	Nectar   int      `json:"nectar,omitempty"`
	Capacity int      `json:"capacity,omitempty"`
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
