package world

import "testing"

func TestHiveDeposit(t *testing.T) {
	h := NewHive(Pos{20, 20})

	h.Deposit(10)
	h.Deposit(0)
	h.Deposit(-5) // Ignored; the total never decreases
	h.Deposit(3)

	if got := h.Honey(); got != 13 {
		t.Errorf("Honey() = %d, want 13", got)
	}
}
