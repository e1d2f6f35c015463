package topology

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cubegather/grid"
)

const (
	classNone = iota
	classLink
	classChunk
	classConnector
)

var cardinals = [4]grid.Compass{grid.CompassN, grid.CompassE, grid.CompassS, grid.CompassW}

// MarkComponents classifies every cube in w as a stable/cut link, a
// stable/cut chunk member, or a connector, and writes the result back
// onto w via SetClassification. It combines two independent passes:
//
//   - CutCubes, for the stable/cut half of each tag.
//   - A stack walked alongside OutsideWalk, for the chunk/link/connector
//     half: each cube's first appearance on the boundary pushes it; a
//     repeat appearance either closes a single dead-end edge (the top of
//     the stack matches the cube directly below it — pop the top as a
//     link leaf) or closes a larger loop (pop everything down to, but
//     not including, the matching cube — everything popped belongs to
//     one new chunk, and the matching cube becomes a connector if
//     anything is still below it on the stack, or the chunk's own root
//     otherwise).
//
// Cubes that never appear in the boundary walk at all are interior to
// some chunk; their chunk id is flood-filled inward from already-tagged
// boundary neighbors. A final pass folds a leaf link whose only neighbor
// is a connector back into that connector's chunk, when the connector
// has no other link attached — promoting both to plain chunk members,
// since a connector with a single dangling link isn't really joining two
// separate structures.
func MarkComponents(ctx context.Context, w *grid.World) error {
	n := w.Len()
	if n == 0 {
		return nil
	}
	if n == 1 {
		root, _ := w.DownmostLeftmost()
		w.SetClassification(root, grid.TagLinkStable, grid.NoChunk, true)
		return nil
	}

	stable, err := CutCubes(ctx, w)
	if err != nil {
		return fmt.Errorf("topology: markcomponents: %w", err)
	}
	order, err := OutsideWalk(w)
	if err != nil {
		return fmt.Errorf("topology: markcomponents: %w", err)
	}

	onBoundary := make(map[grid.CubeID]bool, n)
	for _, id := range order {
		onBoundary[id] = true
	}

	class := make(map[grid.CubeID]int)
	chunkID := make(map[grid.CubeID]int)

	var stack []grid.CubeID
	inStack := make(map[grid.CubeID]bool)
	chunksSeen := 0

	push := func(id grid.CubeID) {
		stack = append(stack, id)
		inStack[id] = true
	}
	pop := func() grid.CubeID {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		inStack[top] = false
		return top
	}

	for _, id := range order {
		if class[id] != classNone && !inStack[id] {
			continue // already finalized earlier in the walk
		}
		if !inStack[id] {
			push(id)
			continue
		}
		if len(stack) >= 2 && stack[len(stack)-2] == id {
			top := pop()
			class[top] = classLink
			continue
		}
		pos := -1
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i] == id {
				pos = i
				break
			}
		}
		if pos < 0 {
			continue // defensive: shouldn't happen for a closed boundary walk
		}
		for len(stack)-1 > pos {
			popped := pop()
			class[popped] = classChunk
			chunkID[popped] = chunksSeen
		}
		if pos > 0 {
			class[id] = classConnector
		} else {
			class[id] = classChunk
			chunkID[id] = chunksSeen
		}
		chunksSeen++
	}

	for len(stack) > 0 {
		id := pop()
		if class[id] == classNone {
			class[id] = classLink
		}
	}
	root := order[0]
	if class[root] == classNone {
		class[root] = classLink
	}

	// Interior cubes never appear on the boundary walk; flood-fill their
	// chunk id inward from whichever already-tagged chunk neighbor is
	// reachable, repeating until every interior cube is assigned.
	for _, c := range w.Cubes() {
		if !onBoundary[c.ID] {
			class[c.ID] = classChunk
		}
	}
	for changed := true; changed; {
		changed = false
		for _, c := range w.Cubes() {
			if class[c.ID] != classChunk {
				continue
			}
			if _, has := chunkID[c.ID]; has {
				continue
			}
			ids := w.NeighborMap(c.Pos)
			for _, d := range cardinals {
				nb := ids[d]
				if nb == grid.NoCube {
					continue
				}
				if cid, has := chunkID[nb]; has {
					chunkID[c.ID] = cid
					changed = true
					break
				}
			}
		}
	}

	foldLeafConnectors(w, class, chunkID)

	for _, c := range w.Cubes() {
		tag := tagFor(class[c.ID], stable[c.ID])
		cid := grid.NoChunk
		if v, ok := chunkID[c.ID]; ok {
			cid = v
		}
		w.SetClassification(c.ID, tag, cid, onBoundary[c.ID])
	}
	return nil
}

// foldLeafConnectors promotes a connector with exactly one link neighbor,
// and that neighbor, into plain chunk members of the connector's chunk —
// a connector that joins only a single dead-end link isn't bridging two
// separate structures.
func foldLeafConnectors(w *grid.World, class map[grid.CubeID]int, chunkID map[grid.CubeID]int) {
	for _, c := range w.Cubes() {
		if class[c.ID] != classLink {
			continue
		}
		ids := w.NeighborMap(c.Pos)
		count := 0
		var sole grid.CubeID = grid.NoCube
		for _, d := range cardinals {
			if ids[d] != grid.NoCube {
				count++
				sole = ids[d]
			}
		}
		if count != 1 || class[sole] != classConnector {
			continue
		}

		otherLink := false
		nids := w.NeighborMap(w.Cube(sole).Pos)
		for _, d := range cardinals {
			nb := nids[d]
			if nb == grid.NoCube || nb == c.ID {
				continue
			}
			if class[nb] == classLink {
				otherLink = true
				break
			}
		}
		if otherLink {
			continue
		}
		cid, ok := chunkID[sole]
		if !ok {
			continue
		}
		class[sole] = classChunk
		chunkID[sole] = cid
		class[c.ID] = classChunk
		chunkID[c.ID] = cid
	}
}

func tagFor(class int, stable bool) grid.Tag {
	switch class {
	case classConnector:
		return grid.TagConnector
	case classChunk:
		if stable {
			return grid.TagChunkStable
		}
		return grid.TagChunkCut
	default:
		if stable {
			return grid.TagLinkStable
		}
		return grid.TagLinkCut
	}
}
