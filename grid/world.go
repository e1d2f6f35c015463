package grid

// World is the arena of cubes plus the sparse cell index. It is the sole
// owner of cube identity and position; every other package borrows from it
// — topology and move read it immutably, stepper is the only package that
// commits moves to it.
//
// Complexity: Add/Move/At are O(1) amortized; Remove and Bounds are O(N).
type World struct {
	cubes []Cube
	index map[Cell]CubeID
}

// NewWorld returns an empty World.
func NewWorld() *World {
	return &World{index: make(map[Cell]CubeID)}
}

// Len reports the number of cubes currently in the arena.
func (w *World) Len() int {
	return len(w.cubes)
}

// Cubes returns a read-only view of the arena in identifier order. Callers
// must not retain the slice across a Remove, which reindexes it.
func (w *World) Cubes() []Cube {
	return w.cubes
}

// Cube returns the cube with the given identifier. Panics on an
// out-of-range id; callers are expected to have obtained id from At,
// Cubes, or a prior Add/Move on this same World.
func (w *World) Cube(id CubeID) Cube {
	return w.cubes[id]
}

// At reports the cube occupying cell, if any.
func (w *World) At(cell Cell) (CubeID, bool) {
	id, ok := w.index[cell]
	if !ok {
		return NoCube, false
	}
	return id, true
}

// Add inserts a new cube at cell with the given color and reset position
// equal to cell. Returns ErrOccupiedCell if cell is already occupied.
func (w *World) Add(cell Cell, color Color) (CubeID, error) {
	if _, occupied := w.index[cell]; occupied {
		return NoCube, ErrOccupiedCell
	}
	id := CubeID(len(w.cubes))
	w.cubes = append(w.cubes, Cube{
		ID:      id,
		Pos:     cell,
		Reset:   cell,
		Color:   color,
		ChunkID: NoChunk,
	})
	w.index[cell] = id
	return id, nil
}

// Remove deletes the cube at cell. The arena is compacted: every cube with
// a higher identifier shifts down by one, and the index is rewritten for
// the shifted cubes. Returns ErrEmptyCell if cell holds no cube.
func (w *World) Remove(cell Cell) error {
	id, occupied := w.index[cell]
	if !occupied {
		return ErrEmptyCell
	}
	delete(w.index, cell)
	w.cubes = append(w.cubes[:id], w.cubes[id+1:]...)
	for i := int(id); i < len(w.cubes); i++ {
		w.cubes[i].ID = CubeID(i)
		w.index[w.cubes[i].Pos] = CubeID(i)
	}
	return nil
}

// Move relocates the cube at src to dst. Returns ErrEmptyCell if src is
// empty, ErrOccupiedCell if dst is occupied. The cube's identifier,
// classification, and reset cell are unchanged; this is the "unmarked"
// move — see the topology package for the re-marking variant.
func (w *World) Move(src, dst Cell) error {
	id, occupied := w.index[src]
	if !occupied {
		return ErrEmptyCell
	}
	if _, blocked := w.index[dst]; blocked {
		return ErrOccupiedCell
	}
	delete(w.index, src)
	w.cubes[id].Pos = dst
	w.index[dst] = id
	return nil
}

// SetClassification writes the Tag, ChunkID, and OnBoundary fields for a
// cube. It is exported so that the topology package can record the result
// of its analysis without grid importing topology.
func (w *World) SetClassification(id CubeID, tag Tag, chunkID int, onBoundary bool) {
	w.cubes[id].Tag = tag
	w.cubes[id].ChunkID = chunkID
	w.cubes[id].OnBoundary = onBoundary
}

// Bounds returns the bounding box of current cube positions. ok is false
// for an empty World.
func (w *World) Bounds() (minX, minY, maxX, maxY int, ok bool) {
	if len(w.cubes) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = w.cubes[0].Pos.X, w.cubes[0].Pos.Y
	maxX, maxY = minX, minY
	for _, c := range w.cubes[1:] {
		if c.Pos.X < minX {
			minX = c.Pos.X
		}
		if c.Pos.X > maxX {
			maxX = c.Pos.X
		}
		if c.Pos.Y < minY {
			minY = c.Pos.Y
		}
		if c.Pos.Y > maxY {
			maxY = c.Pos.Y
		}
	}
	return minX, minY, maxX, maxY, true
}

// Neighbors reports, for each of the eight compass directions, whether a
// cube occupies that neighbor of cell.
func (w *World) Neighbors(cell Cell) [8]bool {
	var has [8]bool
	for d := CompassN; d <= CompassNW; d++ {
		dx, dy := d.Offset()
		_, has[d] = w.index[cell.Add(dx, dy)]
	}
	return has
}

// NeighborMap reports, for each of the eight compass directions, the
// CubeID occupying that neighbor of cell, or NoCube if empty.
func (w *World) NeighborMap(cell Cell) [8]CubeID {
	var ids [8]CubeID
	for d := CompassN; d <= CompassNW; d++ {
		dx, dy := d.Offset()
		if id, ok := w.index[cell.Add(dx, dy)]; ok {
			ids[d] = id
		} else {
			ids[d] = NoCube
		}
	}
	return ids
}

// DownmostLeftmost returns the id of the cube with minimal Y, ties broken
// by minimal X — the canonical root used throughout Gather and Compact.
// ok is false for an empty World.
func (w *World) DownmostLeftmost() (CubeID, bool) {
	if len(w.cubes) == 0 {
		return NoCube, false
	}
	best := w.cubes[0]
	for _, c := range w.cubes[1:] {
		if c.Pos.Less(best.Pos) {
			best = c
		}
	}
	return best.ID, true
}

// Reset restores every cube to its original Reset cell. It rebuilds the
// index from scratch and fails with ErrResetCollision if two cubes would
// end up sharing a cell (impossible starting from a valid configuration,
// but checked rather than assumed — see SPEC_FULL.md on the "buggy reset"
// callout this implementation deliberately does not try to reproduce).
func (w *World) Reset() error {
	next := make(map[Cell]CubeID, len(w.cubes))
	for i := range w.cubes {
		w.cubes[i].Pos = w.cubes[i].Reset
		if _, dup := next[w.cubes[i].Pos]; dup {
			return ErrResetCollision
		}
		next[w.cubes[i].Pos] = w.cubes[i].ID
	}
	w.index = next
	return nil
}
