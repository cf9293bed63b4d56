// Command sweep runs the batch parameter sweep: every combination of
// bee count, nectar amount, and strategy against the same terrain, with
// results printed, exported to CSV, and optionally stored in SQLite.
// The engine itself is sweep-unaware; this driver just invokes it
// repeatedly with fresh worlds.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"gonum.org/v1/gonum/stat"

	"github.com/talgya/beeworld/internal/config"
	"github.com/talgya/beeworld/internal/engine"
	"github.com/talgya/beeworld/internal/persistence"
)

// Swept dimensions, matching the original batch driver.
var (
	beeCounts     = []int{5, 10, 15}
	nectarAmounts = []int{50, 100, 200}
	strategies    = []string{"none", "random", "intelligent"}
)

// sweepRow is one configuration's outcome in the results export.
type sweepRow struct {
	BeeCount       int     `csv:"num_bees"`
	NectarAmount   int     `csv:"nectar_amount"`
	Strategy       string  `csv:"strategy_type"`
	TotalHoney     int     `csv:"total_honey"`
	AvgHoneyPerBee float64 `csv:"avg_honey_per_bee"`
	SuccessRate    float64 `csv:"success_rate"`
}

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are built in)")
	mapFile := flag.String("map", "", "terrain map CSV (empty = generated terrain)")
	paramFile := flag.String("params", "", "legacy CSV parameter file to overlay")
	outPath := flag.String("out", "parameter_sweep_results.csv", "results CSV path")
	flag.Parse()

	setupLogging()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("configuration rejected", "error", err)
		os.Exit(1)
	}
	if *paramFile != "" {
		if err := cfg.ApplyParams(*paramFile); err != nil {
			slog.Error("parameter file rejected", "error", err)
			os.Exit(1)
		}
	}
	if *mapFile != "" {
		cfg.World.MapFile = *mapFile
	}

	var db *persistence.DB
	if cfg.Output.ResultsDB != "" {
		db, err = persistence.Open(cfg.Output.ResultsDB)
		if err != nil {
			slog.Error("results database unavailable", "error", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	sweepID := uuid.NewString()
	slog.Info("parameter sweep starting",
		"sweep_id", sweepID,
		"configurations", len(beeCounts)*len(nectarAmounts)*len(strategies),
		"sim_length", cfg.Simulation.SimLength,
	)

	var rows []sweepRow
	for _, beeCount := range beeCounts {
		for _, nectar := range nectarAmounts {
			for _, strategy := range strategies {
				row, engCfg, res := runOne(cfg, beeCount, nectar, strategy)
				rows = append(rows, row)

				if db != nil {
					if err := db.SaveSweepResult(sweepID, engCfg, res); err != nil {
						slog.Error("saving sweep result failed", "error", err)
						os.Exit(1)
					}
				}
			}
		}
	}

	if err := exportRows(*outPath, rows); err != nil {
		slog.Error("results export failed", "error", err)
		os.Exit(1)
	}
	slog.Info("sweep results exported", "path", *outPath)

	printResults(rows)
	printSummary(rows)
}

// runOne executes a single configuration against a fresh world.
func runOne(base *config.Config, beeCount, nectar int, strategy string) (sweepRow, engine.Config, *engine.Result) {
	cfg := *base
	cfg.Simulation.BeeCount = beeCount
	cfg.Simulation.NectarAmount = nectar
	cfg.Simulation.Strategy = strategy

	terrain, err := cfg.BuildWorld()
	if err != nil {
		slog.Error("terrain setup failed", "error", err)
		os.Exit(1)
	}
	engCfg, err := cfg.EngineConfig()
	if err != nil {
		slog.Error("configuration rejected", "error", err)
		os.Exit(1)
	}
	sim, err := engine.New(terrain, cfg.World.Hive, engCfg)
	if err != nil {
		slog.Error("simulation setup failed", "error", err)
		os.Exit(1)
	}

	res := sim.Run()
	return sweepRow{
		BeeCount:       beeCount,
		NectarAmount:   nectar,
		Strategy:       strategy,
		TotalHoney:     res.TotalHoney,
		AvgHoneyPerBee: res.MeanPerBee,
		SuccessRate:    res.SuccessRate,
	}, engCfg, res
}

func exportRows(path string, rows []sweepRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.MarshalFile(&rows, f)
}

func printResults(rows []sweepRow) {
	fmt.Println("Parameter Sweep Results:")
	fmt.Printf("%-6s %-8s %-12s %-12s %-14s %-12s\n",
		"Bees", "Nectar", "Strategy", "Total Honey", "Avg Honey/Bee", "Success Rate")
	for _, r := range rows {
		fmt.Printf("%-6d %-8d %-12s %-12d %-14.2f %-12.2f\n",
			r.BeeCount, r.NectarAmount, r.Strategy, r.TotalHoney, r.AvgHoneyPerBee, r.SuccessRate)
	}
}

// printSummary averages the per-bee honey and success rate over each
// strategy × nectar-amount group.
func printSummary(rows []sweepRow) {
	fmt.Println("Summary Report:")
	fmt.Printf("%-12s %-8s %-14s %-12s\n", "Strategy", "Nectar", "Avg Honey/Bee", "Success Rate")
	for _, strategy := range strategies {
		for _, nectar := range nectarAmounts {
			var honey, success []float64
			for _, r := range rows {
				if r.Strategy == strategy && r.NectarAmount == nectar {
					honey = append(honey, r.AvgHoneyPerBee)
					success = append(success, r.SuccessRate)
				}
			}
			if len(honey) == 0 {
				continue
			}
			fmt.Printf("%-12s %-8d %-14.2f %-12.2f\n",
				strategy, nectar, stat.Mean(honey, nil), stat.Mean(success, nil))
		}
	}
}

func setupLogging() {
	var handler slog.Handler
	if isatty.IsTerminal(os.Stdout.Fd()) {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(handler))
}
