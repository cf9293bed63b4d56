package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/talgya/beeworld/internal/bees"
	"github.com/talgya/beeworld/internal/engine"
	"github.com/talgya/beeworld/internal/world"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	w := world.New(12, 12)
	hive := world.Pos{Row: 5, Col: 5}
	if err := w.PlaceFlower(world.Pos{Row: 5, Col: 3}, 100); err != nil {
		t.Fatal(err)
	}
	if err := w.PlaceHive(hive); err != nil {
		t.Fatal(err)
	}

	sim, err := engine.New(w, hive, engine.Config{
		BeeCount:     3,
		SimLength:    10,
		CommProb:     0.5,
		NectarAmount: 100,
		Strategy:     bees.StrategyRandom,
		Seed:         42,
	})
	if err != nil {
		t.Fatal(err)
	}
	return &Server{Eng: engine.NewEngine(sim), World: w, Hive: hive}
}

func getJSON(t *testing.T, handler func(w *httptest.ResponseRecorder)) map[string]any {
	t.Helper()
	rec := httptest.NewRecorder()
	handler(rec)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q, want application/json", ct)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestHandleStatus(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest("GET", "/api/v1/status", nil)

	body := getJSON(t, func(rec *httptest.ResponseRecorder) { s.handleStatus(rec, req) })

	if body["tick"].(float64) != 0 {
		t.Errorf("tick = %v, want 0 before any stepping", body["tick"])
	}
	if body["sim_length"].(float64) != 10 {
		t.Errorf("sim_length = %v, want 10", body["sim_length"])
	}
	if body["strategy"].(string) != "random" {
		t.Errorf("strategy = %v, want random", body["strategy"])
	}
	if body["done"].(bool) {
		t.Error("done = true before any stepping")
	}
}

func TestHandleWorld(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest("GET", "/api/v1/world", nil)

	body := getJSON(t, func(rec *httptest.ResponseRecorder) { s.handleWorld(rec, req) })

	if body["rows"].(float64) != 12 || body["cols"].(float64) != 12 {
		t.Errorf("grid = %vx%v, want 12x12", body["rows"], body["cols"])
	}
	cells := body["cells"].([]any)
	if len(cells) != 2 {
		t.Errorf("non-empty cells = %d, want the flower and the hive", len(cells))
	}
}

func TestHandleBees(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest("GET", "/api/v1/bees", nil)

	body := getJSON(t, func(rec *httptest.ResponseRecorder) { s.handleBees(rec, req) })

	beeList := body["bees"].([]any)
	if len(beeList) != 3 {
		t.Fatalf("bees = %d, want 3", len(beeList))
	}
	first := beeList[0].(map[string]any)
	if first["state"].(string) != bees.StateInHive.String() {
		t.Errorf("bee state = %v, want in_hive before any tick", first["state"])
	}
}

func TestHandleStats(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest("GET", "/api/v1/stats", nil)

	body := getJSON(t, func(rec *httptest.ResponseRecorder) { s.handleStats(rec, req) })

	if body["total_honey"].(float64) != 0 {
		t.Errorf("total_honey = %v, want 0 before any stepping", body["total_honey"])
	}
	if body["nectar_left"].(float64) != 100 {
		t.Errorf("nectar_left = %v, want the flower's full 100", body["nectar_left"])
	}
	states := body["bees_by_state"].(map[string]any)
	if states[bees.StateInHive.String()].(float64) != 3 {
		t.Errorf("bees_by_state = %v, want all 3 in_hive", states)
	}
}
