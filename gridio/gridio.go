// Package gridio reads and writes grid.World maps in the formats consumed by
// external collaborators: the canonical JSON document, a gob binary form, and
// the MovingAI benchmark .map/.scen formats.
//
// Every decoder funnels through grid.NewWorld, so a successfully loaded map
// is already validated and the search core performs no secondary checks.
//
// The JSON document schema:
//
//	{
//	  "width": 10,
//	  "height": 8,
//	  "start": [0, 0],
//	  "goal": [9, 7],
//	  "obstacles": [[3, 2], [3, 3]]
//	}
//
// start and goal may be null; obstacles may be empty.
//
// Errors:
//
//   - ErrFormat: structurally malformed input (bad header, ragged rows,
//     truncated document). Semantic violations (out-of-bounds obstacle and
//     the like) surface as grid.ErrMapValidation from construction.
//   - ErrUnsupportedExt: Load/Save called with an unrecognized extension.
package gridio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/A-D-Alamdari/single-agent-pathfinding/grid"
)

// Sentinel errors for map IO.
var (
	// ErrFormat indicates structurally malformed input.
	ErrFormat = errors.New("gridio: malformed map file")

	// ErrUnsupportedExt indicates an extension no codec handles.
	ErrUnsupportedExt = errors.New("gridio: unsupported map extension (use .json, .gob, or .map)")
)

// mapDocument is the serialized form shared by the JSON and gob codecs.
type mapDocument struct {
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Start     *grid.Coord  `json:"start"`
	Goal      *grid.Coord  `json:"goal"`
	Obstacles []grid.Coord `json:"obstacles"`
}

// docFromWorld projects a world into its serialized form.
func docFromWorld(w *grid.World) mapDocument {
	doc := mapDocument{
		Width:     w.Width(),
		Height:    w.Height(),
		Obstacles: w.Obstacles(),
	}
	if s, ok := w.Start(); ok {
		doc.Start = &s
	}
	if g, ok := w.Goal(); ok {
		doc.Goal = &g
	}

	return doc
}

// worldFromDoc rebuilds a validated world from its serialized form.
func worldFromDoc(doc mapDocument) (*grid.World, error) {
	opts := []grid.Option{grid.WithObstacles(doc.Obstacles...)}
	if doc.Start != nil {
		opts = append(opts, grid.WithStart(*doc.Start))
	}
	if doc.Goal != nil {
		opts = append(opts, grid.WithGoal(*doc.Goal))
	}

	return grid.NewWorld(doc.Width, doc.Height, opts...)
}

// Load reads a map file, dispatching on extension:
// .json, .gob, and MovingAI .map are supported.
func Load(path string) (*grid.World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(f)
	case ".gob":
		return DecodeGob(f)
	case ".map":
		return DecodeMovingAI(f)
	default:
		return nil, ErrUnsupportedExt
	}
}

// Save writes a map file, dispatching on extension (.json or .gob).
// MovingAI output is not supported: the format cannot carry endpoints.
func Save(w *grid.World, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return EncodeJSON(w, f)
	case ".gob":
		return EncodeGob(w, f)
	default:
		return ErrUnsupportedExt
	}
}
