package gridio

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/A-D-Alamdari/single-agent-pathfinding/grid"
)

// gobDocument mirrors mapDocument with plain fields; gob ignores JSON tags
// and custom JSON marshalers, so coordinates serialize as structs here.
type gobDocument struct {
	Width     int
	Height    int
	Start     *grid.Coord
	Goal      *grid.Coord
	Obstacles []grid.Coord
}

// EncodeGob writes w in the binary map format.
func EncodeGob(w *grid.World, out io.Writer) error {
	doc := docFromWorld(w)

	return gob.NewEncoder(out).Encode(gobDocument{
		Width:     doc.Width,
		Height:    doc.Height,
		Start:     doc.Start,
		Goal:      doc.Goal,
		Obstacles: doc.Obstacles,
	})
}

// DecodeGob reads the binary map format and returns a validated world.
func DecodeGob(r io.Reader) (*grid.World, error) {
	var doc gobDocument
	if err := gob.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	return worldFromDoc(mapDocument{
		Width:     doc.Width,
		Height:    doc.Height,
		Start:     doc.Start,
		Goal:      doc.Goal,
		Obstacles: doc.Obstacles,
	})
}
