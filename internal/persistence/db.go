// Package persistence provides SQLite-based storage for completed run
// and sweep results.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/beeworld/internal/engine"
)

// DB wraps a SQLite connection for result storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		strategy TEXT NOT NULL,
		bee_count INTEGER NOT NULL,
		sim_length INTEGER NOT NULL,
		comm_prob REAL NOT NULL,
		nectar_amount INTEGER NOT NULL,
		rng_seed INTEGER NOT NULL,
		total_honey INTEGER NOT NULL,
		success_rate REAL NOT NULL,
		mean_per_bee REAL NOT NULL,
		honey_series_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sweep_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sweep_id TEXT NOT NULL,
		created_at TEXT NOT NULL,
		bee_count INTEGER NOT NULL,
		nectar_amount INTEGER NOT NULL,
		strategy TEXT NOT NULL,
		total_honey INTEGER NOT NULL,
		avg_honey_per_bee REAL NOT NULL,
		success_rate REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_strategy ON runs(strategy);
	CREATE INDEX IF NOT EXISTS idx_sweep_results_sweep ON sweep_results(sweep_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun stores a completed run and returns its generated ID.
func (db *DB) SaveRun(cfg engine.Config, res *engine.Result) (string, error) {
	series, err := json.Marshal(res.HoneySeries)
	if err != nil {
		return "", fmt.Errorf("marshal honey series: %w", err)
	}

	id := uuid.NewString()
	_, err = db.conn.Exec(`
		INSERT INTO runs (id, created_at, strategy, bee_count, sim_length,
			comm_prob, nectar_amount, rng_seed, total_honey, success_rate,
			mean_per_bee, honey_series_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339), cfg.Strategy.String(),
		cfg.BeeCount, cfg.SimLength, cfg.CommProb, cfg.NectarAmount, cfg.Seed,
		res.TotalHoney, res.SuccessRate, res.MeanPerBee, string(series),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	slog.Info("run saved", "run_id", id, "total_honey", res.TotalHoney)
	return id, nil
}

// SaveSweepResult stores one configuration's outcome from a parameter
// sweep. All rows of a sweep share the same sweep ID.
func (db *DB) SaveSweepResult(sweepID string, cfg engine.Config, res *engine.Result) error {
	_, err := db.conn.Exec(`
		INSERT INTO sweep_results (sweep_id, created_at, bee_count,
			nectar_amount, strategy, total_honey, avg_honey_per_bee, success_rate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sweepID, time.Now().UTC().Format(time.RFC3339), cfg.BeeCount,
		cfg.NectarAmount, cfg.Strategy.String(), res.TotalHoney,
		res.MeanPerBee, res.SuccessRate,
	)
	if err != nil {
		return fmt.Errorf("insert sweep result: %w", err)
	}
	return nil
}

// RunRecord is a stored run summary row.
type RunRecord struct {
	ID           string  `db:"id" json:"id"`
	CreatedAt    string  `db:"created_at" json:"created_at"`
	Strategy     string  `db:"strategy" json:"strategy"`
	BeeCount     int     `db:"bee_count" json:"bee_count"`
	SimLength    int     `db:"sim_length" json:"sim_length"`
	CommProb     float64 `db:"comm_prob" json:"comm_prob"`
	NectarAmount int     `db:"nectar_amount" json:"nectar_amount"`
	Seed         int64   `db:"rng_seed" json:"rng_seed"`
	TotalHoney   int     `db:"total_honey" json:"total_honey"`
	SuccessRate  float64 `db:"success_rate" json:"success_rate"`
	MeanPerBee   float64 `db:"mean_per_bee" json:"mean_per_bee"`
}

// RecentRuns returns the most recent stored runs, newest first.
func (db *DB) RecentRuns(limit int) ([]RunRecord, error) {
	var out []RunRecord
	err := db.conn.Select(&out, `
		SELECT id, created_at, strategy, bee_count, sim_length, comm_prob,
			nectar_amount, rng_seed, total_honey, success_rate, mean_per_bee
		FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}
	return out, nil
}
