// Procedural terrain using layered simplex noise. Used when no map
// file is supplied: a moisture layer carves ponds, a canopy layer
// places tree stands, and a bloom layer scatters flower patches.
package world

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds terrain generation parameters.
type GenConfig struct {
	Rows         int
	Cols         int
	Seed         int64
	WaterLevel   float64 // Moisture threshold above which a cell is water
	TreeLevel    float64 // Canopy threshold above which a cell is a tree
	FlowerLevel  float64 // Bloom threshold above which a cell is a flower
	NectarAmount int     // Initial nectar per generated flower
	Hive         Pos
}

// DefaultGenConfig returns the conventional 40×35 meadow.
func DefaultGenConfig(seed int64) GenConfig {
	return GenConfig{
		Rows:         40,
		Cols:         35,
		Seed:         seed,
		WaterLevel:   0.78,
		TreeLevel:    0.72,
		FlowerLevel:  0.80,
		NectarAmount: 100,
		Hive:         Pos{Row: 20, Col: 20},
	}
}

// Generate creates a world from the config. Deterministic for a given
// seed. The hive cell and its Moore neighborhood are always kept clear
// so bees never start boxed in.
func Generate(cfg GenConfig) *World {
	moisture := opensimplex.NewNormalized(cfg.Seed)
	canopy := opensimplex.NewNormalized(cfg.Seed + 1)
	bloom := opensimplex.NewNormalized(cfg.Seed + 2)

	w := New(cfg.Rows, cfg.Cols)

	const scale = 0.15
	for r := 0; r < cfg.Rows; r++ {
		for c := 0; c < cfg.Cols; c++ {
			p := Pos{Row: r, Col: c}
			if nearHive(p, cfg.Hive) {
				continue
			}

			x, y := float64(r)*scale, float64(c)*scale
			switch {
			case moisture.Eval2(x, y) > cfg.WaterLevel:
				w.PlaceBarrier(p)
			case canopy.Eval2(x, y) > cfg.TreeLevel:
				w.PlaceTree(p)
			case bloom.Eval2(x, y) > cfg.FlowerLevel:
				w.PlaceFlower(p, cfg.NectarAmount)
			}
		}
	}

	w.PlaceHive(cfg.Hive)
	return w
}

func nearHive(p, hive Pos) bool {
	return abs(p.Row-hive.Row) <= 1 && abs(p.Col-hive.Col) <= 1
}
