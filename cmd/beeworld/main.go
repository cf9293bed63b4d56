// Command beeworld runs a single bee-foraging simulation.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gocarina/gocsv"
	"github.com/mattn/go-isatty"

	"github.com/talgya/beeworld/internal/api"
	"github.com/talgya/beeworld/internal/config"
	"github.com/talgya/beeworld/internal/engine"
	"github.com/talgya/beeworld/internal/persistence"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are built in)")
	mapFile := flag.String("map", "", "terrain map CSV (overrides config; empty = generated terrain)")
	paramFile := flag.String("params", "", "legacy CSV parameter file to overlay")
	serve := flag.Bool("serve", false, "serve the observation API and pace the run")
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
	if *serve {
		cfg.Serve.Enabled = true
	}

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

	eng := engine.NewEngine(sim)

	if cfg.Serve.Enabled {
		eng.Interval = time.Duration(cfg.Serve.TickIntervalMS) * time.Millisecond
		server := &api.Server{
			Eng:   eng,
			World: terrain,
			Hive:  cfg.World.Hive,
			Port:  cfg.Serve.Port,
		}
		stream := server.Start()
		eng.OnTick = func(int) { stream.Publish(eng.Snapshot()) }
		fmt.Printf("Watch the run: http://localhost:%d/api/v1/status\n", cfg.Serve.Port)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, stopping run", "signal", sig)
		eng.Stop()
	}()

	start := time.Now()
	res := eng.Run()
	elapsed := time.Since(start)

	fmt.Println("Simulation Summary:")
	fmt.Printf("  Total honey:      %s units\n", humanize.Comma(int64(res.TotalHoney)))
	fmt.Printf("  Honey per bee:    %.2f (stddev %.2f)\n", res.MeanPerBee, res.StdDevPerBee)
	fmt.Printf("  Success rate:     %.2f\n", res.SuccessRate)
	fmt.Printf("  Ticks run:        %d in %s\n", res.Ticks, elapsed.Round(time.Millisecond))

	if cfg.Output.SeriesCSV != "" {
		if err := exportSeries(cfg.Output.SeriesCSV, res); err != nil {
			slog.Error("series export failed", "error", err)
			os.Exit(1)
		}
		slog.Info("honey series exported", "path", cfg.Output.SeriesCSV)
	}

	if cfg.Output.ResultsDB != "" {
		db, err := persistence.Open(cfg.Output.ResultsDB)
		if err != nil {
			slog.Error("results database unavailable", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if _, err := db.SaveRun(engCfg, res); err != nil {
			slog.Error("saving run failed", "error", err)
			os.Exit(1)
		}
	}
}

// seriesRow is one tick of the honey-over-time export.
type seriesRow struct {
	Tick       int `csv:"tick"`
	TotalHoney int `csv:"total_honey"`
}

func exportSeries(path string, res *engine.Result) error {
	rows := make([]seriesRow, len(res.HoneySeries))
	for i, honey := range res.HoneySeries {
		rows[i] = seriesRow{Tick: i + 1, TotalHoney: honey}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.MarshalFile(&rows, f)
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
