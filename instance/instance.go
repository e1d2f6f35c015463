package instance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/cubegather/grid"
	"github.com/katalvlaran/cubegather/topology"
)

// CurrentVersion is the only _version value this package writes, and the
// only one it accepts on load.
const CurrentVersion = 1

// Sentinel errors for instance load/save.
var (
	// ErrBadVersion indicates a loaded document's _version field is
	// missing or not CurrentVersion.
	ErrBadVersion = errors.New("instance: unsupported or missing _version")
	// ErrDisconnected indicates a loaded document's cubes do not form a
	// single 4-connected configuration.
	ErrDisconnected = errors.New("instance: cubes are not connected")
)

type cubeDoc struct {
	X     int       `json:"x"`
	Y     int       `json:"y"`
	Color *[3]uint8 `json:"color,omitempty"`
}

type document struct {
	Version int       `json:"_version"`
	Cubes   []cubeDoc `json:"cubes"`
}

// Load decodes a World from r. It returns ErrBadVersion if the document's
// _version field isn't CurrentVersion, and ErrDisconnected if the cubes
// it describes don't form a single connected configuration.
func Load(ctx context.Context, r io.Reader) (*grid.World, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("instance: load: %w", err)
	}
	if doc.Version != CurrentVersion {
		return nil, ErrBadVersion
	}

	w := grid.NewWorld()
	for _, cd := range doc.Cubes {
		color := grid.DefaultColor
		if cd.Color != nil {
			color = grid.Color{R: cd.Color[0], G: cd.Color[1], B: cd.Color[2]}
		}
		if _, err := w.Add(grid.Cell{X: cd.X, Y: cd.Y}, color); err != nil {
			return nil, fmt.Errorf("instance: load: %w", err)
		}
	}

	connected, err := topology.Connected(ctx, w, grid.NoCube)
	if err != nil {
		return nil, fmt.Errorf("instance: load: %w", err)
	}
	if !connected {
		return nil, ErrDisconnected
	}
	return w, nil
}

// Save encodes w's current cubes (position, and color when it differs
// from grid.DefaultColor) to out, as a CurrentVersion document.
func Save(out io.Writer, w *grid.World) error {
	doc := document{Version: CurrentVersion}
	for _, c := range w.Cubes() {
		cd := cubeDoc{X: c.Pos.X, Y: c.Pos.Y}
		if c.Color != grid.DefaultColor {
			cd.Color = &[3]uint8{c.Color.R, c.Color.G, c.Color.B}
		}
		doc.Cubes = append(doc.Cubes, cd)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("instance: save: %w", err)
	}
	return nil
}
