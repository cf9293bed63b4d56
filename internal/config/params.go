// Legacy parameter files: CSV name,value pairs with a header row, the
// format the original tool's batch mode consumed. These are key-value
// rows rather than one-struct-per-row records, so they go through
// encoding/csv directly instead of gocsv.
package config

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// ApplyParams overlays a CSV parameter file onto the configuration.
// Recognized names: num_bees, sim_length, comm_prob, nectar_amount,
// strategy_type, rng_seed. Unknown names are rejected so typos fail
// loudly instead of silently running defaults.
func (c *Config) ApplyParams(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open params file: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return fmt.Errorf("parse params file %s: %w", path, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("params file %s is empty", path)
	}

	for _, row := range rows[1:] { // Skip header
		if len(row) < 2 {
			return fmt.Errorf("params file %s: short row %v", path, row)
		}
		name, value := row[0], row[1]

		switch name {
		case "num_bees":
			c.Simulation.BeeCount, err = parseNonNegativeInt(name, value)
		case "sim_length":
			c.Simulation.SimLength, err = parseNonNegativeInt(name, value)
		case "nectar_amount":
			c.Simulation.NectarAmount, err = parseNonNegativeInt(name, value)
		case "comm_prob":
			c.Simulation.CommProb, err = strconv.ParseFloat(value, 64)
			if err != nil {
				err = fmt.Errorf("parameter comm_prob: %w", err)
			}
		case "strategy_type":
			c.Simulation.Strategy = value
		case "rng_seed":
			c.Simulation.Seed, err = strconv.ParseInt(value, 10, 64)
			if err != nil {
				err = fmt.Errorf("parameter rng_seed: %w", err)
			}
		default:
			return fmt.Errorf("params file %s: unknown parameter %q", path, name)
		}
		if err != nil {
			return err
		}
	}

	return c.Validate()
}

func parseNonNegativeInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parameter %s: %w", name, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("parameter %s must be non-negative, got %d", name, n)
	}
	return n, nil
}
