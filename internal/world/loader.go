// Terrain map loading. Map files are CSV with a header row and one
// record per non-empty cell: type,x,y,name,color. Only the flower
// records carry a name and color; they are kept for reporting but have
// no effect on behavior.
package world

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"
)

// MapRecord is one row of a terrain map file.
type MapRecord struct {
	Type  string `csv:"type"`
	X     int    `csv:"x"`
	Y     int    `csv:"y"`
	Name  string `csv:"name"`
	Color string `csv:"color"`
}

// LoadMap reads a terrain map file into a rows×cols world. Every
// flower starts with nectarAmount nectar. Records outside the grid are
// skipped, matching the original tool's behavior. The hive cell is
// placed last so it wins over any terrain record at the same position.
func LoadMap(path string, rows, cols, nectarAmount int, hive Pos) (*World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map file: %w", err)
	}
	defer f.Close()

	var records []*MapRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("parse map file %s: %w", path, err)
	}

	w := New(rows, cols)
	skipped := 0
	for _, rec := range records {
		p := Pos{Row: rec.X, Col: rec.Y}
		if !w.InBounds(p) {
			skipped++
			slog.Debug("map record outside grid, skipped",
				"type", rec.Type, "row", rec.X, "col", rec.Y)
			continue
		}

		switch rec.Type {
		case "flower":
			err = w.PlaceFlower(p, nectarAmount)
		case "tree":
			err = w.PlaceTree(p)
		case "water":
			err = w.PlaceBarrier(p)
		case "building":
			err = w.PlaceBuilding(p)
		default:
			return nil, fmt.Errorf("map file %s: unknown cell type %q at (%d,%d)",
				path, rec.Type, rec.X, rec.Y)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := w.PlaceHive(hive); err != nil {
		return nil, fmt.Errorf("hive position: %w", err)
	}

	slog.Info("terrain loaded",
		"path", path,
		"rows", rows,
		"cols", cols,
		"records", len(records),
		"skipped", skipped,
		"flowers", len(w.Flowers()),
	)
	return w, nil
}
