package topology

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cubegather/grid"
	"github.com/katalvlaran/lvlath/dfs"
)

// CutCubes returns, indexed by CubeID, whether each cube is stable (true)
// or a cut cube / articulation point (false) — removing it would
// disconnect the remaining configuration. It is grounded on the standard
// Hopcroft-Tarjan low-link technique, but computed as a second pass over
// the post-order dfs.DFS already gives us, rather than a hand-rolled
// recursive low-link walk: dfs.DFS's Order is post-order (a cube is
// appended only after every descendant has finished, see dfs.go step 8),
// so a child's low-link is always already known by the time its parent
// needs it.
func CutCubes(ctx context.Context, w *grid.World) ([]bool, error) {
	n := w.Len()
	stable := make([]bool, n)
	for i := range stable {
		stable[i] = true
	}
	if n == 0 {
		return stable, nil
	}

	root, _ := w.DownmostLeftmost()
	g, err := cubeGraph(w, grid.NoCube)
	if err != nil {
		return nil, err
	}
	res, err := dfs.DFS(g, cellID(w.Cube(root).Pos), dfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("topology: cutcubes: %w", err)
	}

	idOf := make(map[string]grid.CubeID, n)
	for _, c := range w.Cubes() {
		idOf[cellID(c.Pos)] = c.ID
	}

	depth := res.Depth
	parent := res.Parent
	low := make(map[string]int, n)
	isCut := make(map[string]bool, n)

	for _, v := range res.Order {
		low[v] = depth[v]
		children := 0
		skippedParent := false
		p, hasParent := parent[v]

		neighbors, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("topology: cutcubes: %w", err)
		}
		for _, e := range neighbors {
			nbr := e.To
			if nbr == v {
				nbr = e.From
			}
			if nbr == v {
				continue
			}
			if hasParent && nbr == p && !skippedParent {
				skippedParent = true
				continue
			}
			if pn, ok := parent[nbr]; ok && pn == v {
				// nbr is a DFS-tree child of v; already finalized, since
				// children precede their parent in post-order.
				children++
				if low[nbr] < low[v] {
					low[v] = low[nbr]
				}
				if low[nbr] >= depth[v] {
					isCut[v] = true
				}
				continue
			}
			if d, ok := depth[nbr]; ok && d < low[v] {
				low[v] = d
			}
		}
		if !hasParent {
			isCut[v] = children >= 2
		}
	}

	for _, c := range w.Cubes() {
		if isCut[cellID(c.Pos)] {
			stable[c.ID] = false
		}
	}
	return stable, nil
}
