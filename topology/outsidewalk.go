package topology

import "github.com/katalvlaran/cubegather/grid"

// bendOrder gives, for the direction of the walker's last step, the
// preference order in which to try the next cardinal step: turn right
// first, then straight, then left, then reverse. Applied from the
// downmost-leftmost cube with an initial incoming direction of South,
// this traces the configuration's outer boundary counter-clockwise, one
// occupied cell to the next.
var bendOrder = map[grid.Compass][4]grid.Compass{
	grid.CompassN: {grid.CompassE, grid.CompassN, grid.CompassW, grid.CompassS},
	grid.CompassE: {grid.CompassS, grid.CompassE, grid.CompassN, grid.CompassW},
	grid.CompassS: {grid.CompassW, grid.CompassS, grid.CompassE, grid.CompassN},
	grid.CompassW: {grid.CompassN, grid.CompassW, grid.CompassS, grid.CompassE},
}

type boundaryEdge struct {
	cell grid.Cell
	dir  grid.Compass
}

// OutsideWalk traces the bend-table boundary walk starting at the
// downmost-leftmost cube and returns the sequence of cubes visited. The
// start cube appears both at the beginning and the end of the returned
// list (the walk is a closed loop). For a single cube, the list is
// [id, id].
func OutsideWalk(w *grid.World) ([]grid.CubeID, error) {
	root, ok := w.DownmostLeftmost()
	if !ok {
		return nil, ErrEmptyWorld
	}
	if w.Len() == 1 {
		return []grid.CubeID{root, root}, nil
	}

	order := []grid.CubeID{root}
	cur := w.Cube(root).Pos
	incoming := grid.CompassS
	seen := make(map[boundaryEdge]bool)

	for {
		prefs := bendOrder[incoming]
		var chosen grid.Compass
		found := false
		for _, d := range prefs {
			dx, dy := d.Offset()
			if _, ok := w.At(cur.Add(dx, dy)); ok {
				chosen = d
				found = true
				break
			}
		}
		if !found {
			// An isolated cube mid-walk shouldn't happen for a connected
			// configuration with more than one cube; stop defensively.
			break
		}
		e := boundaryEdge{cell: cur, dir: chosen}
		if seen[e] {
			break
		}
		seen[e] = true

		dx, dy := chosen.Offset()
		cur = cur.Add(dx, dy)
		id, _ := w.At(cur)
		order = append(order, id)
		incoming = chosen
	}
	return order, nil
}
