package world

// Hive is the colony's home cell and its running honey total. The
// total only ever grows; deposits of zero or less are ignored.
type Hive struct {
	Pos   Pos `json:"pos"`
	honey int
}

// NewHive creates a hive at the given position.
func NewHive(p Pos) *Hive {
	return &Hive{Pos: p}
}

// Deposit adds collected nectar to the honey total.
func (h *Hive) Deposit(nectar int) {
	if nectar > 0 {
		h.honey += nectar
	}
}

// Honey returns the total honey deposited so far.
func (h *Hive) Honey() int {
	return h.honey
}
