package topology

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cubegather/grid"
	"github.com/katalvlaran/lvlath/bfs"
)

// BridgeLimit is the longest bridge Gather is allowed to extend across a
// gap, expressed in terms of the occupied bounding box: twice the sum of
// its width and height. A bridge longer than this could always be routed
// around the outside instead, and letting it grow unbounded would let a
// single bad gap stall the whole gather phase.
func BridgeLimit(w *grid.World) int {
	minX, minY, maxX, maxY, ok := w.Bounds()
	if !ok {
		return 0
	}
	return 2 * ((maxX - minX + 1) + (maxY - minY + 1))
}

// BridgeCapacity reports how many cubes would still be reachable from the
// downmost-leftmost root if b were pulled out right now: it builds the
// cube graph skipping b, runs bfs.BFS from the root (itself excluding b),
// and returns len(result.Order)-1 — the safety margin Gather checks
// before extending a bridge through b. A margin of 0 means removing b
// would isolate the root from every other remaining cube.
func BridgeCapacity(ctx context.Context, w *grid.World, b grid.CubeID) (int, error) {
	total := w.Len()
	if b != grid.NoCube {
		total--
	}
	if total <= 0 {
		return 0, nil
	}

	var root grid.Cell
	found := false
	for _, c := range w.Cubes() {
		if c.ID == b {
			continue
		}
		if !found || c.Pos.Less(root) {
			root = c.Pos
			found = true
		}
	}
	if !found {
		return 0, nil
	}

	g, err := cubeGraph(w, b)
	if err != nil {
		return 0, err
	}
	res, err := bfs.BFS(g, cellID(root), bfs.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("topology: bridgecapacity: %w", err)
	}
	return len(res.Order) - 1, nil
}
