package gridio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/A-D-Alamdari/single-agent-pathfinding/grid"
)

// EncodeJSON writes w as an indented canonical map document.
func EncodeJSON(w *grid.World, out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(docFromWorld(w))
}

// DecodeJSON reads a canonical map document and returns a validated world.
// Structural failures wrap ErrFormat; semantic failures surface as
// grid.ErrMapValidation from construction.
func DecodeJSON(r io.Reader) (*grid.World, error) {
	var doc mapDocument
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	return worldFromDoc(doc)
}
