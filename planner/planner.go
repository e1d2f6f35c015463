package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/cubegather/grid"
	"github.com/katalvlaran/cubegather/move"
)

// ErrNoPath is returned when target is unreachable from cube's current
// cell without disconnecting the rest of the configuration at any step.
var ErrNoPath = errors.New("planner: no legal move path to target")

type step struct {
	from grid.Cell
	dir  grid.Direction
}

// ShortestMovePath returns the shortest sequence of single-cube moves
// that carries cube from its current cell to target, or ErrNoPath if
// none exists. w is left exactly as it was found: the mover is relocated
// step by step while the search runs and restored to its starting cell
// before returning, regardless of outcome.
func ShortestMovePath(ctx context.Context, w *grid.World, cube grid.CubeID, target grid.Cell) ([]grid.Direction, error) {
	start := w.Cube(cube).Pos
	if start == target {
		return nil, nil
	}

	parent := map[grid.Cell]step{}
	visited := map[grid.Cell]bool{start: true}
	queue := []grid.Cell{start}
	cur := start

	err := func() error {
		for len(queue) > 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("planner: shortestmovepath: %w", err)
			}
			expand := queue[0]
			queue = queue[1:]
			if expand == target {
				return nil
			}
			if expand != cur {
				if err := w.Move(cur, expand); err != nil {
					return fmt.Errorf("planner: shortestmovepath: %w", err)
				}
				cur = expand
			}

			dirs, err := move.LegalMoves(ctx, w, cube)
			if err != nil {
				return fmt.Errorf("planner: shortestmovepath: %w", err)
			}
			for _, d := range dirs {
				dest := move.Destination(w, cube, d)
				if visited[dest] {
					continue
				}
				visited[dest] = true
				parent[dest] = step{from: expand, dir: d}
				queue = append(queue, dest)
			}
		}
		return nil
	}()

	if cur != start {
		if restoreErr := w.Move(cur, start); restoreErr != nil {
			return nil, fmt.Errorf("planner: shortestmovepath: restore: %w", restoreErr)
		}
	}
	if err != nil {
		return nil, err
	}
	if !visited[target] {
		return nil, ErrNoPath
	}

	var dirs []grid.Direction
	c := target
	for c != start {
		st, ok := parent[c]
		if !ok {
			return nil, ErrNoPath
		}
		dirs = append(dirs, st.dir)
		c = st.from
	}
	for i, j := 0, len(dirs)-1; i < j; i, j = i+1, j-1 {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs, nil
}
