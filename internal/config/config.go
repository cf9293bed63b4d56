// Package config provides configuration loading for the simulation:
// YAML files layered over embedded defaults, plus the legacy CSV
// parameter-file format the original tool consumed.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/beeworld/internal/bees"
	"github.com/talgya/beeworld/internal/engine"
	"github.com/talgya/beeworld/internal/world"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all run configuration.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Simulation SimulationConfig `yaml:"simulation"`
	Output     OutputConfig     `yaml:"output"`
	Serve      ServeConfig      `yaml:"serve"`
}

// WorldConfig holds grid dimensions and terrain input.
type WorldConfig struct {
	Rows    int       `yaml:"rows"`
	Cols    int       `yaml:"cols"`
	Hive    world.Pos `yaml:"hive"`
	MapFile string    `yaml:"map_file"`
}

// SimulationConfig holds the engine options.
type SimulationConfig struct {
	BeeCount     int     `yaml:"bee_count"`
	SimLength    int     `yaml:"sim_length"`
	CommProb     float64 `yaml:"comm_prob"`
	NectarAmount int     `yaml:"nectar_amount"`
	Strategy     string  `yaml:"strategy"`
	Seed         int64   `yaml:"rng_seed"`
	RecordTraces bool    `yaml:"record_traces"`
}

// OutputConfig holds result export settings.
type OutputConfig struct {
	ResultsDB string `yaml:"results_db"`
	SeriesCSV string `yaml:"series_csv"`
}

// ServeConfig holds the observation API settings.
type ServeConfig struct {
	Enabled        bool `yaml:"enabled"`
	Port           int  `yaml:"port"`
	TickIntervalMS int  `yaml:"tick_interval_ms"`
}

// Load returns the embedded defaults overlaid with the YAML file at
// path (empty path means defaults only), validated.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return nil, fmt.Errorf("embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks everything the engine would reject, plus grid shape.
func (c *Config) Validate() error {
	if c.World.Rows <= 0 || c.World.Cols <= 0 {
		return fmt.Errorf("world dimensions must be positive, got %dx%d", c.World.Rows, c.World.Cols)
	}
	if c.World.Hive.Row < 0 || c.World.Hive.Row >= c.World.Rows ||
		c.World.Hive.Col < 0 || c.World.Hive.Col >= c.World.Cols {
		return fmt.Errorf("hive (%d,%d) outside %dx%d grid",
			c.World.Hive.Row, c.World.Hive.Col, c.World.Rows, c.World.Cols)
	}

	engCfg, err := c.EngineConfig()
	if err != nil {
		return err
	}
	return engCfg.Validate()
}

// EngineConfig maps the simulation section onto an engine Config.
func (c *Config) EngineConfig() (engine.Config, error) {
	strategy, err := bees.ParseStrategy(c.Simulation.Strategy)
	if err != nil {
		return engine.Config{}, err
	}
	return engine.Config{
		BeeCount:     c.Simulation.BeeCount,
		SimLength:    c.Simulation.SimLength,
		CommProb:     c.Simulation.CommProb,
		NectarAmount: c.Simulation.NectarAmount,
		Strategy:     strategy,
		Seed:         c.Simulation.Seed,
		RecordTraces: c.Simulation.RecordTraces,
	}, nil
}

// BuildWorld constructs the terrain for this configuration: loaded
// from the map file when one is set, generated from the seed otherwise.
func (c *Config) BuildWorld() (*world.World, error) {
	if c.World.MapFile != "" {
		return world.LoadMap(c.World.MapFile, c.World.Rows, c.World.Cols,
			c.Simulation.NectarAmount, c.World.Hive)
	}

	gen := world.DefaultGenConfig(c.Simulation.Seed)
	gen.Rows = c.World.Rows
	gen.Cols = c.World.Cols
	gen.Hive = c.World.Hive
	gen.NectarAmount = c.Simulation.NectarAmount
	return world.Generate(gen), nil
}
