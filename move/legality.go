package move

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/cubegather/grid"
	"github.com/katalvlaran/cubegather/topology"
)

// ErrUnknownCube is returned when a CubeID doesn't exist in the World.
var ErrUnknownCube = errors.New("move: unknown cube")

// allDirections lists every grid.Direction in declaration order, the
// order the planner must iterate to stay deterministic.
var allDirections = [12]grid.Direction{
	grid.DirN, grid.DirE, grid.DirS, grid.DirW,
	grid.DirNW, grid.DirNE, grid.DirEN, grid.DirES,
	grid.DirSE, grid.DirSW, grid.DirWS, grid.DirWN,
}

// slideSupport gives, for each of the four cardinal slide directions,
// the two (flank, flank-diagonal) compass pairs that can carry the cube:
// sliding north needs either a western ledge (W and NW both occupied) or
// an eastern one (E and NE), and the other three cardinals are the same
// rule rotated 90 degrees at a time.
var slideSupport = map[grid.Direction][2][2]grid.Compass{
	grid.DirN: {{grid.CompassW, grid.CompassNW}, {grid.CompassE, grid.CompassNE}},
	grid.DirE: {{grid.CompassN, grid.CompassNE}, {grid.CompassS, grid.CompassSE}},
	grid.DirS: {{grid.CompassE, grid.CompassSE}, {grid.CompassW, grid.CompassSW}},
	grid.DirW: {{grid.CompassS, grid.CompassSW}, {grid.CompassN, grid.CompassNW}},
}

// IsValidIgnoreConnectivity reports whether cube could take dir purely by
// local geometry. A cardinal slide needs an empty destination plus a
// flanking ledge on one side (both the perpendicular neighbor and its
// diagonal toward dir occupied); a diagonal corner move needs an empty
// destination, its first axis clear, and its second axis occupied — the
// cube pivots over the one support cube it still has contact with.
func IsValidIgnoreConnectivity(w *grid.World, cube grid.CubeID, dir grid.Direction) (bool, error) {
	if int(cube) < 0 || int(cube) >= w.Len() {
		return false, fmt.Errorf("%w: %d", ErrUnknownCube, cube)
	}
	pos := w.Cube(cube).Pos
	dx, dy := dir.Offset()
	dest := pos.Add(dx, dy)
	if _, occupied := w.At(dest); occupied {
		return false, nil
	}

	first, second, diagonal := dir.Axes()
	if !diagonal {
		for _, pair := range slideSupport[dir] {
			fdx, fdy := pair[0].Offset()
			sdx, sdy := pair[1].Offset()
			_, flank := w.At(pos.Add(fdx, fdy))
			_, flankDiag := w.At(pos.Add(sdx, sdy))
			if flank && flankDiag {
				return true, nil
			}
		}
		return false, nil
	}
	fdx, fdy := first.Offset()
	sdx, sdy := second.Offset()
	_, firstOccupied := w.At(pos.Add(fdx, fdy))
	_, secondOccupied := w.At(pos.Add(sdx, sdy))
	return !firstOccupied && secondOccupied, nil
}

// IsValid reports whether cube can legally take dir right now: local
// geometry permits it, and lifting the cube out of its current cell
// leaves every other cube connected.
func IsValid(ctx context.Context, w *grid.World, cube grid.CubeID, dir grid.Direction) (bool, error) {
	ok, err := IsValidIgnoreConnectivity(w, cube, dir)
	if err != nil || !ok {
		return false, err
	}
	connected, err := topology.Connected(ctx, w, cube)
	if err != nil {
		return false, fmt.Errorf("move: isvalid: %w", err)
	}
	return connected, nil
}

// LegalMoves returns every direction currently legal for cube, in
// grid.Direction declaration order.
func LegalMoves(ctx context.Context, w *grid.World, cube grid.CubeID) ([]grid.Direction, error) {
	var legal []grid.Direction
	for _, d := range allDirections {
		ok, err := IsValid(ctx, w, cube, d)
		if err != nil {
			return nil, err
		}
		if ok {
			legal = append(legal, d)
		}
	}
	return legal, nil
}

// Destination returns the cell cube would occupy after taking dir.
func Destination(w *grid.World, cube grid.CubeID, dir grid.Direction) grid.Cell {
	dx, dy := dir.Offset()
	return w.Cube(cube).Pos.Add(dx, dy)
}
