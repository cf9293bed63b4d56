package world

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned for any query outside the grid extents.
// Callers must validate positions first; the World never clamps.
var ErrOutOfBounds = errors.New("position out of bounds")

// World owns the terrain grid. The grid's shape never changes after
// construction; the only mutation it exposes is nectar consumption.
type World struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`

	cells [][]Cell
}

// New creates an all-empty world of the given dimensions.
func New(rows, cols int) *World {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
		for c := range cells[r] {
			cells[r][c] = Cell{Pos: Pos{Row: r, Col: c}, Kind: KindEmpty}
		}
	}
	return &World{Rows: rows, Cols: cols, cells: cells}
}

// InBounds reports whether p lies on the grid.
func (w *World) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < w.Rows && p.Col >= 0 && p.Col < w.Cols
}

// CellKind returns the kind of the cell at p.
func (w *World) CellKind(p Pos) (CellKind, error) {
	if !w.InBounds(p) {
		return KindEmpty, fmt.Errorf("cell kind at (%d,%d): %w", p.Row, p.Col, ErrOutOfBounds)
	}
	return w.cells[p.Row][p.Col].Kind, nil
}

// Cell returns a copy of the cell at p.
func (w *World) Cell(p Pos) (Cell, error) {
	if !w.InBounds(p) {
		return Cell{}, fmt.Errorf("cell at (%d,%d): %w", p.Row, p.Col, ErrOutOfBounds)
	}
	return w.cells[p.Row][p.Col], nil
}

// IsPassable reports whether a bee may occupy p. Out-of-bounds
// positions are not passable, so movement code can use this as its
// single validity check.
func (w *World) IsPassable(p Pos) bool {
	if !w.InBounds(p) {
		return false
	}
	switch w.cells[p.Row][p.Col].Kind {
	case KindTree, KindBarrier, KindBuilding:
		return false
	default:
		return true
	}
}

// NectarAt returns the nectar remaining at p, or 0 for any non-flower
// cell (including out-of-bounds positions).
func (w *World) NectarAt(p Pos) int {
	if !w.InBounds(p) {
		return 0
	}
	return w.cells[p.Row][p.Col].Nectar
}

// CollectNectar removes up to amount nectar from the flower at p and
// returns the amount actually collected. Non-flower cells and exhausted
// flowers yield 0 with no mutation; this is a normal outcome, not an
// error.
func (w *World) CollectNectar(p Pos, amount int) int {
	if !w.InBounds(p) || amount <= 0 {
		return 0
	}
	cell := &w.cells[p.Row][p.Col]
	if cell.Kind != KindFlower || cell.Nectar <= 0 {
		return 0
	}
	collected := amount
	if collected > cell.Nectar {
		collected = cell.Nectar
	}
	cell.Nectar -= collected
	return collected
}

// PlaceFlower sets the cell at p to a flower with the given capacity.
func (w *World) PlaceFlower(p Pos, capacity int) error {
	return w.place(p, Cell{Pos: p, Kind: KindFlower, Nectar: capacity, Capacity: capacity})
}

// PlaceTree sets the cell at p to a tree.
func (w *World) PlaceTree(p Pos) error {
	return w.place(p, Cell{Pos: p, Kind: KindTree})
}

// PlaceBarrier sets the cell at p to water.
func (w *World) PlaceBarrier(p Pos) error {
	return w.place(p, Cell{Pos: p, Kind: KindBarrier})
}

// PlaceBuilding sets the cell at p to a building.
func (w *World) PlaceBuilding(p Pos) error {
	return w.place(p, Cell{Pos: p, Kind: KindBuilding})
}

// PlaceHive sets the cell at p to the hive cell, overwriting whatever
// terrain the loader put there.
func (w *World) PlaceHive(p Pos) error {
	return w.place(p, Cell{Pos: p, Kind: KindHive})
}

func (w *World) place(p Pos, cell Cell) error {
	if !w.InBounds(p) {
		return fmt.Errorf("place %s at (%d,%d): %w", KindName(cell.Kind), p.Row, p.Col, ErrOutOfBounds)
	}
	w.cells[p.Row][p.Col] = cell
	return nil
}

// Flowers returns a snapshot of every flower position and its remaining
// nectar, in row-major order.
func (w *World) Flowers() []Cell {
	var out []Cell
	for r := range w.cells {
		for c := range w.cells[r] {
			if w.cells[r][c].Kind == KindFlower {
				out = append(out, w.cells[r][c])
			}
		}
	}
	return out
}

// NonEmptyCells returns every cell that is not open ground, in
// row-major order. Observers use this to draw the terrain without
// shipping the whole grid.
func (w *World) NonEmptyCells() []Cell {
	var out []Cell
	for r := range w.cells {
		for c := range w.cells[r] {
			if w.cells[r][c].Kind != KindEmpty {
				out = append(out, w.cells[r][c])
			}
		}
	}
	return out
}

// String returns a summary of the grid.
func (w *World) String() string {
	return fmt.Sprintf("World(%dx%d, flowers=%d)", w.Rows, w.Cols, len(w.Flowers()))
}
