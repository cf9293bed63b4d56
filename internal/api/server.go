// Package api provides the read-only HTTP observation surface for a
// paced run: JSON snapshots plus a WebSocket live stream. The core
// never depends on this package; it only reads engine snapshots.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/talgya/beeworld/internal/engine"
	"github.com/talgya/beeworld/internal/world"
)

// Server serves run state over HTTP while the engine is running.
type Server struct {
	Eng   *engine.Engine
	World *world.World
	Hive  world.Pos
	Port  int

	stream *Stream
}

// Start begins serving in a goroutine and returns the stream hub the
// engine should publish ticks to.
func (s *Server) Start() *Stream {
	s.stream = NewStream()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/world", s.handleWorld)
	mux.HandleFunc("/api/v1/bees", s.handleBees)
	mux.HandleFunc("/api/v1/stats", s.handleStats)
	mux.HandleFunc("/api/v1/live", s.stream.HandleWS)

	addr := fmt.Sprintf(":%d", s.Port)
	go func() {
		slog.Info("observation API listening", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
	return s.stream
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.Eng.Snapshot()
	writeJSON(w, map[string]any{
		"tick":        snap.Tick,
		"sim_length":  snap.SimLength,
		"done":        snap.Done,
		"total_honey": snap.TotalHoney,
		"strategy":    snap.Strategy,
	})
}

func (s *Server) handleWorld(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"rows":  s.World.Rows,
		"cols":  s.World.Cols,
		"hive":  s.Hive,
		"cells": s.World.NonEmptyCells(),
	})
}

func (s *Server) handleBees(w http.ResponseWriter, r *http.Request) {
	snap := s.Eng.Snapshot()
	writeJSON(w, map[string]any{
		"tick": snap.Tick,
		"bees": snap.Bees,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	snap := s.Eng.Snapshot()

	states := map[string]int{}
	carrying := 0
	for _, b := range snap.Bees {
		states[b.State]++
		carrying += b.Carrying
	}

	nectarLeft := 0
	for _, f := range snap.Flowers {
		nectarLeft += f.Nectar
	}

	writeJSON(w, map[string]any{
		"tick":           snap.Tick,
		"total_honey":    snap.TotalHoney,
		"bees_by_state":  states,
		"nectar_carried": carrying,
		"nectar_left":    nectarLeft,
		"board_size":     snap.BoardSize,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}
