package gather

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/cubegather/grid"
	"github.com/katalvlaran/cubegather/planner"
	"github.com/katalvlaran/cubegather/topology"
)

// ErrLightConfiguration is returned when a Phase is started on fewer
// than five cubes: too few for a meaningful chunk/link split, so Gather
// has nothing useful to converge toward.
var ErrLightConfiguration = errors.New("gather: configuration too light to gather")

// Move is a single cube relocation, one grid cell in one direction.
type Move struct {
	Cube grid.CubeID
	Dir  grid.Direction
}

// Phase drives the Gather algorithm one move at a time via Next.
type Phase struct {
	w       *grid.World
	pending []grid.Direction
	cube    grid.CubeID
	skip    map[grid.CubeID]bool
	done    bool
}

const minCubesForGather = 5

// NewPhase starts a Gather phase over w. Returns ErrLightConfiguration
// if w holds fewer than five cubes.
func NewPhase(ctx context.Context, w *grid.World) (*Phase, error) {
	if w.Len() < minCubesForGather {
		return nil, ErrLightConfiguration
	}
	if err := topology.MarkComponents(ctx, w); err != nil {
		return nil, fmt.Errorf("gather: newphase: %w", err)
	}
	return &Phase{w: w, skip: make(map[grid.CubeID]bool)}, nil
}

// Done reports whether the phase has converged: no loose link cube
// remains that can be pulled into the chunk within the bridge limit.
func (p *Phase) Done() bool {
	return p.done
}

// Next returns the next single-cell move to commit, or done=true once the
// phase has converged. Callers are expected to apply the returned move
// (via topology.MoveMarked, typically) before calling Next again —
// Phase does not mutate w itself, except transiently inside
// planner.ShortestMovePath, which always restores w before returning.
func (p *Phase) Next(ctx context.Context) (Move, bool, error) {
	if p.done {
		return Move{}, true, nil
	}
	for len(p.pending) == 0 {
		cube, target, found, err := p.pickNext(ctx)
		if err != nil {
			return Move{}, false, err
		}
		if !found {
			p.done = true
			return Move{}, true, nil
		}
		limit := topology.BridgeLimit(p.w)
		margin, err := topology.BridgeCapacity(ctx, p.w, cube)
		if err != nil {
			return Move{}, false, err
		}
		if margin < limit {
			// Pulling cube out would leave fewer than limit other cubes
			// reachable from the root — too risky a bridge to extend
			// through, so this candidate is rejected before ever running
			// the full move-graph search.
			p.skip[cube] = true
			continue
		}
		path, err := planner.ShortestMovePath(ctx, p.w, cube, target)
		if err != nil {
			if errors.Is(err, planner.ErrNoPath) {
				p.skip[cube] = true
				continue
			}
			return Move{}, false, err
		}
		if len(path) > limit {
			p.skip[cube] = true
			continue
		}
		p.cube = cube
		p.pending = path
	}
	dir := p.pending[0]
	p.pending = p.pending[1:]
	return Move{Cube: p.cube, Dir: dir}, false, nil
}

// pickNext chooses the lexicographically-last eligible leaf link cube
// and the lexicographically-first open attachment cell on the chunk
// mass's border.
func (p *Phase) pickNext(ctx context.Context) (grid.CubeID, grid.Cell, bool, error) {
	if err := topology.MarkComponents(ctx, p.w); err != nil {
		return 0, grid.Cell{}, false, fmt.Errorf("gather: pick: %w", err)
	}

	var candidates []grid.Cube
	var chunkCubes []grid.Cube
	for _, c := range p.w.Cubes() {
		switch c.Tag {
		case grid.TagChunkStable, grid.TagChunkCut:
			chunkCubes = append(chunkCubes, c)
		case grid.TagLinkStable, grid.TagLinkCut:
			if p.skip[c.ID] {
				continue
			}
			if degree(p.w, c.Pos) == 1 {
				candidates = append(candidates, c)
			}
		}
	}
	if len(candidates) == 0 || len(chunkCubes) == 0 {
		return 0, grid.Cell{}, false, nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[j].Pos.Less(candidates[i].Pos)
	})
	cube := candidates[0].ID

	targets := openAttachmentCells(p.w, chunkCubes)
	if len(targets) == 0 {
		return 0, grid.Cell{}, false, nil
	}

	return cube, targets[0], true, nil
}

func degree(w *grid.World, cell grid.Cell) int {
	has := w.Neighbors(cell)
	n := 0
	for _, d := range [4]grid.Compass{grid.CompassN, grid.CompassE, grid.CompassS, grid.CompassW} {
		if has[d] {
			n++
		}
	}
	return n
}

// openAttachmentCells returns every empty cell 4-adjacent to a chunk
// cube, sorted by Cell.Less (lexicographic, Y then X).
func openAttachmentCells(w *grid.World, chunk []grid.Cube) []grid.Cell {
	seen := make(map[grid.Cell]bool)
	var cells []grid.Cell
	for _, c := range chunk {
		for _, d := range [4]grid.Compass{grid.CompassN, grid.CompassE, grid.CompassS, grid.CompassW} {
			dx, dy := d.Offset()
			cell := c.Pos.Add(dx, dy)
			if _, occ := w.At(cell); occ {
				continue
			}
			if seen[cell] {
				continue
			}
			seen[cell] = true
			cells = append(cells, cell)
		}
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
	return cells
}
