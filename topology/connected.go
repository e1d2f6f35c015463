package topology

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cubegather/grid"
	"github.com/katalvlaran/lvlath/bfs"
)

// Connected reports whether w's occupied cells form a single 4-connected
// component. If skip is not grid.NoCube, that cube is treated as absent —
// this is how Gather and Compact test "can I remove this cube without
// disconnecting everyone else" before committing a move. ctx is forwarded
// to bfs.BFS via bfs.WithContext, so a caller-supplied deadline (the CLI's
// -timeout flag) aborts a pathological traversal instead of hanging it.
func Connected(ctx context.Context, w *grid.World, skip grid.CubeID) (bool, error) {
	total := w.Len()
	if skip != grid.NoCube {
		total--
	}
	if total <= 1 {
		return true, nil
	}

	var start grid.Cell
	found := false
	for _, c := range w.Cubes() {
		if c.ID == skip {
			continue
		}
		start = c.Pos
		found = true
		break
	}
	if !found {
		return true, nil
	}

	g, err := cubeGraph(w, skip)
	if err != nil {
		return false, err
	}
	res, err := bfs.BFS(g, cellID(start), bfs.WithContext(ctx))
	if err != nil {
		return false, fmt.Errorf("topology: connected: %w", err)
	}
	return len(res.Order) == total, nil
}
