package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/talgya/beeworld/internal/bees"
	"github.com/talgya/beeworld/internal/world"
)

// Engine paces a simulation through its ticks. With a zero Interval it
// runs flat out; with a positive Interval it sleeps between ticks so an
// observer (the HTTP API, the live stream) can watch the run unfold.
// The simulation itself stays single-threaded — only snapshot reads
// cross goroutines, guarded by the engine's mutex.
type Engine struct {
	Interval time.Duration

	// OnTick, when set, runs after every completed tick. Used to push
	// live snapshots to stream subscribers.
	OnTick func(tick int)

	mu      sync.Mutex
	sim     *Simulation
	stopped bool
}

// NewEngine wraps a simulation in a paced engine.
func NewEngine(sim *Simulation) *Engine {
	return &Engine{sim: sim}
}

// Run steps the simulation to completion (or until Stop) and returns
// the run result.
func (e *Engine) Run() *Result {
	slog.Info("engine started", "interval", e.Interval)

	for {
		start := time.Now()

		e.mu.Lock()
		if e.stopped || e.sim.Done() {
			e.mu.Unlock()
			break
		}
		e.sim.StepTick()
		tick := e.sim.Tick
		e.mu.Unlock()

		if e.OnTick != nil {
			e.OnTick(tick)
		}

		if e.Interval > 0 {
			if elapsed := time.Since(start); elapsed < e.Interval {
				time.Sleep(e.Interval - elapsed)
			}
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	res := e.sim.Result()
	slog.Info("engine finished", "ticks", res.Ticks, "total_honey", res.TotalHoney)
	return res
}

// Stop halts the run after the current tick.
func (e *Engine) Stop() {
	e.mu.Lock()
	e.stopped = true
	e.mu.Unlock()
}

// BeeView is a read-only view of one bee for observers.
type BeeView struct {
	Name     string    `json:"name"`
	Pos      world.Pos `json:"pos"`
	State    string    `json:"state"`
	Carrying int       `json:"carrying"`
	Total    int       `json:"total_collected"`
}

// Snapshot is a consistent copy of observable run state.
type Snapshot struct {
	Tick       int          `json:"tick"`
	Done       bool         `json:"done"`
	TotalHoney int          `json:"total_honey"`
	BoardSize  int          `json:"board_size"`
	Bees       []BeeView    `json:"bees"`
	Flowers    []world.Cell `json:"flowers"`
	Strategy   string       `json:"strategy"`
	SimLength  int          `json:"sim_length"`
}

// Snapshot copies the observable state under the engine lock.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := Snapshot{
		Tick:       e.sim.Tick,
		Done:       e.sim.Done(),
		TotalHoney: e.sim.Hive.Honey(),
		BoardSize:  e.sim.Board.Len(),
		Flowers:    e.sim.World.Flowers(),
		Strategy:   e.sim.Config.Strategy.String(),
		SimLength:  e.sim.Config.SimLength,
	}
	for _, b := range e.sim.Bees {
		snap.Bees = append(snap.Bees, beeView(b))
	}
	return snap
}

func beeView(b *bees.Bee) BeeView {
	return BeeView{
		Name:     b.Name,
		Pos:      b.Pos,
		State:    b.State.String(),
		Carrying: b.Carrying,
		Total:    b.TotalCollected,
	}
}
