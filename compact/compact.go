package compact

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/cubegather/grid"
	"github.com/katalvlaran/cubegather/planner"
)

// ErrStuck is returned when every misplaced cube is unreachable from
// every open canonical slot this round — the configuration can't make
// further progress toward its canonical footprint.
var ErrStuck = errors.New("compact: no misplaced cube can reach any open slot")

// Move is a single cube relocation, one grid cell in one direction.
type Move struct {
	Cube grid.CubeID
	Dir  grid.Direction
}

// Phase drives the Compact algorithm one move at a time via Next.
type Phase struct {
	w    *grid.World
	pend []grid.Direction
	cube grid.CubeID
	done bool
}

// NewPhase starts a Compact phase over w.
func NewPhase(w *grid.World) *Phase {
	return &Phase{w: w}
}

// Done reports whether the occupied set already matches the canonical
// footprint.
func (p *Phase) Done() bool {
	return p.done
}

// Next returns the next single-cell move to commit, or done=true once w's
// occupied set exactly matches its canonical footprint.
func (p *Phase) Next(ctx context.Context) (Move, bool, error) {
	if p.done {
		return Move{}, true, nil
	}
	for len(p.pend) == 0 {
		misplaced, empty, found, err := p.candidates()
		if err != nil {
			return Move{}, false, err
		}
		if !found {
			p.done = true
			return Move{}, true, nil
		}
		cube, path, err := firstReachable(ctx, p.w, misplaced, empty)
		if err != nil {
			return Move{}, false, fmt.Errorf("compact: next: %w", err)
		}
		p.cube = cube
		p.pend = path
	}
	dir := p.pend[0]
	p.pend = p.pend[1:]
	return Move{Cube: p.cube, Dir: dir}, false, nil
}

// candidates returns every cube outside the canonical footprint, sorted
// lexicographically-last-first, and every open canonical slot, sorted
// lexicographically-first-first — the priority order firstReachable
// tries them in.
func (p *Phase) candidates() ([]grid.Cube, []grid.Cell, bool, error) {
	slots := CanonicalSlots(p.w)
	want := make(map[grid.Cell]bool, len(slots))
	for _, s := range slots {
		want[s] = true
	}

	var misplaced []grid.Cube
	for _, c := range p.w.Cubes() {
		if !want[c.Pos] {
			misplaced = append(misplaced, c)
		}
	}
	if len(misplaced) == 0 {
		return nil, nil, false, nil
	}
	sort.Slice(misplaced, func(i, j int) bool {
		return misplaced[j].Pos.Less(misplaced[i].Pos)
	})

	var empty []grid.Cell
	for _, s := range slots {
		if _, occ := p.w.At(s); !occ {
			empty = append(empty, s)
		}
	}
	if len(empty) == 0 {
		return nil, nil, false, nil
	}
	sort.Slice(empty, func(i, j int) bool { return empty[i].Less(empty[j]) })

	return misplaced, empty, true, nil
}

// firstReachable tries each misplaced cube against each open slot, in
// priority order, until planner.ShortestMovePath finds a path. A
// ErrNoPath for one pairing is recoverable — the planner keeps probing
// the rest of the grid the configuration never lets it disconnect from —
// so only a failure across every pairing is reported as ErrStuck.
func firstReachable(ctx context.Context, w *grid.World, misplaced []grid.Cube, empty []grid.Cell) (grid.CubeID, []grid.Direction, error) {
	for _, cube := range misplaced {
		for _, target := range empty {
			path, err := planner.ShortestMovePath(ctx, w, cube.ID, target)
			if err == nil {
				return cube.ID, path, nil
			}
			if !errors.Is(err, planner.ErrNoPath) {
				return 0, nil, err
			}
		}
	}
	return 0, nil, ErrStuck
}

// CanonicalSlots returns the n cells of w's canonical footprint: the
// smallest-width rectangle (width = ceil(sqrt(n))) anchored at w's
// current bounding-box corner, filled row-major. A rectangle is trivially
// row- and column-convex. Its shape depends only on n; its position
// follows the lower-left corner of the current bounding box, so it is
// recomputed from the cubes' positions on every call.
func CanonicalSlots(w *grid.World) []grid.Cell {
	n := w.Len()
	if n == 0 {
		return nil
	}
	anchorX, anchorY := 0, 0
	if minX, minY, _, _, ok := w.Bounds(); ok {
		anchorX, anchorY = minX, minY
	}
	width := int(math.Ceil(math.Sqrt(float64(n))))
	if width < 1 {
		width = 1
	}
	slots := make([]grid.Cell, 0, n)
	for i := 0; i < n; i++ {
		row := i / width
		col := i % width
		slots = append(slots, grid.Cell{X: anchorX + col, Y: anchorY + row})
	}
	return slots
}

// IsXYMonotone reports whether w's occupied set is row-convex and
// column-convex: every occupied row and every occupied column forms a
// single contiguous run, with no gaps.
func IsXYMonotone(w *grid.World) bool {
	minX, minY, maxX, maxY, ok := w.Bounds()
	if !ok {
		return true
	}
	for y := minY; y <= maxY; y++ {
		if !contiguousRun(func(x int) bool {
			_, occ := w.At(grid.Cell{X: x, Y: y})
			return occ
		}, minX, maxX) {
			return false
		}
	}
	for x := minX; x <= maxX; x++ {
		if !contiguousRun(func(y int) bool {
			_, occ := w.At(grid.Cell{X: x, Y: y})
			return occ
		}, minY, maxY) {
			return false
		}
	}
	return true
}

func contiguousRun(occupied func(int) bool, lo, hi int) bool {
	first, last := -1, -1
	count := 0
	for i := lo; i <= hi; i++ {
		if !occupied(i) {
			continue
		}
		if first == -1 {
			first = i
		}
		last = i
		count++
	}
	if first == -1 {
		return true
	}
	return last-first+1 == count
}
