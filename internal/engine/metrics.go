package engine

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/talgya/beeworld/internal/world"
)

// BeeStats summarizes one bee at the end of a run.
type BeeStats struct {
	Name           string `json:"name"`
	TotalCollected int    `json:"total_collected"`
}

// Result is the end-of-run report handed to the external reporting
// collaborators (CLI summary, CSV export, persistence).
type Result struct {
	TotalHoney  int        `json:"total_honey"`
	Ticks       int        `json:"ticks"`
	HoneySeries []int      `json:"honey_series"`
	PerBee      []BeeStats `json:"per_bee"`

	// SuccessRate is the share of bees that collected any nectar.
	SuccessRate float64 `json:"success_rate"`

	// MeanPerBee and StdDevPerBee summarize the per-bee collection
	// distribution; StdDevPerBee is 0 for fewer than two bees.
	MeanPerBee   float64 `json:"mean_per_bee"`
	StdDevPerBee float64 `json:"stddev_per_bee"`

	// FlowerSnapshot is the remaining nectar per flower at run end.
	FlowerSnapshot []world.Cell `json:"flower_snapshot,omitempty"`

	// Traces holds per-bee position traces when trace recording was on.
	Traces [][]world.Pos `json:"-"`
}

// Result computes the run report from current simulation state.
func (s *Simulation) Result() *Result {
	res := &Result{
		TotalHoney:     s.Hive.Honey(),
		Ticks:          s.Tick,
		HoneySeries:    append([]int(nil), s.HoneySeries...),
		FlowerSnapshot: s.World.Flowers(),
		Traces:         s.Traces,
	}

	succeeded := 0
	collected := make([]float64, 0, len(s.Bees))
	for _, b := range s.Bees {
		res.PerBee = append(res.PerBee, BeeStats{Name: b.Name, TotalCollected: b.TotalCollected})
		collected = append(collected, float64(b.TotalCollected))
		if b.TotalCollected > 0 {
			succeeded++
		}
	}

	if len(s.Bees) > 0 {
		res.SuccessRate = float64(succeeded) / float64(len(s.Bees))
		mean, std := stat.MeanStdDev(collected, nil)
		res.MeanPerBee = mean
		if !math.IsNaN(std) {
			res.StdDevPerBee = std
		}
	}
	return res
}
