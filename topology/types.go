package topology

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cubegather/grid"
	"github.com/katalvlaran/lvlath/core"
)

// Sentinel errors for Topology Analyzer operations.
var (
	// ErrEmptyWorld indicates an operation that needs a root cube was
	// called on a World with no cubes.
	ErrEmptyWorld = errors.New("topology: world has no cubes")
)

// cellID renders a cell as the "x,y" vertex identifier used throughout
// this package, matching gridgraph.GridGraph.ToCoreGraph's convention.
func cellID(c grid.Cell) string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// cubeGraph builds an undirected, unweighted core.Graph over every
// occupied cell of w except skip (pass grid.NoCube to include all
// cubes). Edges connect 4-adjacent occupied cells. Unlike
// gridgraph.GridGraph.ToCoreGraph, which emits a vertex for every cell in
// the bounding box regardless of occupancy, this only ever sees cubes —
// BFS/DFS over it can't leak through empty cells.
func cubeGraph(w *grid.World, skip grid.CubeID) (*core.Graph, error) {
	g := core.NewGraph()
	for _, c := range w.Cubes() {
		if c.ID == skip {
			continue
		}
		if err := g.AddVertex(cellID(c.Pos)); err != nil {
			return nil, fmt.Errorf("topology: build graph: %w", err)
		}
	}
	for _, c := range w.Cubes() {
		if c.ID == skip {
			continue
		}
		for _, d := range [2]grid.Compass{grid.CompassE, grid.CompassN} {
			dx, dy := d.Offset()
			nb, ok := w.At(c.Pos.Add(dx, dy))
			if !ok || nb == skip {
				continue
			}
			if _, err := g.AddEdge(cellID(c.Pos), cellID(w.Cube(nb).Pos), 0); err != nil {
				return nil, fmt.Errorf("topology: build graph: %w", err)
			}
		}
	}
	return g, nil
}
