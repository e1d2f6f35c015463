package grid

import "errors"

// Sentinel errors for Grid Store operations.
var (
	// ErrOccupiedCell indicates Add or Move targeted a cell already holding a cube.
	ErrOccupiedCell = errors.New("grid: cell already occupied")
	// ErrEmptyCell indicates Remove or Move referenced a cell with no cube.
	ErrEmptyCell = errors.New("grid: cell is empty")
	// ErrResetCollision indicates Reset would place two cubes on the same cell.
	ErrResetCollision = errors.New("grid: reset would collide two cubes on one cell")
)

// NoCube is the sentinel CubeID returned by At and NeighborMap for an empty cell.
const NoCube CubeID = -1

// NoChunk is the ChunkID value meaning "this cube belongs to no chunk".
const NoChunk = -1

// Cell is an integer grid coordinate. X grows east, Y grows north.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Less orders cells by (Y, X) ascending, the lexicographic tie-break
// the Gather and Compact phases use throughout.
func (c Cell) Less(o Cell) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// Color is an RGB triple. Used only by the out-of-scope UI and by the
// vector-graphics export glyphs; the algorithm never reads it.
type Color struct {
	R, G, B uint8
}

// DefaultColor is the color assigned to a cube when an instance omits one.
var DefaultColor = Color{R: 68, G: 187, B: 248}

// Tag classifies a cube as produced by the Topology Analyzer from the
// occupied cell set alone.
type Tag int

const (
	TagNone Tag = iota
	TagLinkStable
	TagLinkCut
	TagChunkStable
	TagChunkCut
	TagConnector
)

// String renders a Tag for diagnostics and vector-graphics export.
func (t Tag) String() string {
	switch t {
	case TagLinkStable:
		return "LinkStable"
	case TagLinkCut:
		return "LinkCut"
	case TagChunkStable:
		return "ChunkStable"
	case TagChunkCut:
		return "ChunkCut"
	case TagConnector:
		return "Connector"
	default:
		return "None"
	}
}

// Compass enumerates the eight neighbor directions used by Neighbors and
// NeighborMap. Declaration order is N, NE, E, SE, S, SW, W, NW.
type Compass int

const (
	CompassN Compass = iota
	CompassNE
	CompassE
	CompassSE
	CompassS
	CompassSW
	CompassW
	CompassNW
)

// compassOffsets gives the (dx, dy) offset for each Compass value, indexed
// by its iota value. X grows east, Y grows north.
var compassOffsets = [8][2]int{
	CompassN:  {0, 1},
	CompassNE: {1, 1},
	CompassE:  {1, 0},
	CompassSE: {1, -1},
	CompassS:  {0, -1},
	CompassSW: {-1, -1},
	CompassW:  {-1, 0},
	CompassNW: {-1, 1},
}

// Offset returns the (dx, dy) step for c.
func (c Compass) Offset() (dx, dy int) {
	o := compassOffsets[c]
	return o[0], o[1]
}

// Opposite returns the compass direction pointing the other way.
func (c Compass) Opposite() Compass {
	return (c + 4) % 8
}

// Direction enumerates the twelve moves a cube can make: the four
// cardinal slides and the eight diagonal corner moves, each diagonal
// split into its two pivot orders (e.g. NE pivots north-then-east, EN
// pivots east-then-north — they land on the same cell but require
// different support cubes to be free). Declared in this exact order
// because the Move Graph Planner iterates directions in declaration
// order to keep its move generation deterministic.
type Direction int

const (
	DirN Direction = iota
	DirE
	DirS
	DirW
	DirNW
	DirNE
	DirEN
	DirES
	DirSE
	DirSW
	DirWS
	DirWN
)

var directionNames = [...]string{
	DirN: "N", DirE: "E", DirS: "S", DirW: "W",
	DirNW: "NW", DirNE: "NE", DirEN: "EN", DirES: "ES",
	DirSE: "SE", DirSW: "SW", DirWS: "WS", DirWN: "WN",
}

// String renders a Direction for diagnostics and transcripts.
func (d Direction) String() string {
	if int(d) < 0 || int(d) >= len(directionNames) {
		return "?"
	}
	return directionNames[d]
}

var directionOffsets = [...][2]int{
	DirN: {0, 1}, DirE: {1, 0}, DirS: {0, -1}, DirW: {-1, 0},
	DirNW: {-1, 1}, DirNE: {1, 1}, DirEN: {1, 1}, DirES: {1, -1},
	DirSE: {1, -1}, DirSW: {-1, -1}, DirWS: {-1, -1}, DirWN: {-1, 1},
}

// Offset returns the net (dx, dy) displacement the move ends at, relative
// to the cube's starting cell.
func (d Direction) Offset() (dx, dy int) {
	o := directionOffsets[d]
	return o[0], o[1]
}

// axisPairs gives, for each diagonal Direction, the two compass steps it
// decomposes into, in pivot order: the neighbor cell toward First must be
// empty (the cube swings through it), and the neighbor toward Second must
// be occupied (the cube pivots over it). Cardinal directions decompose
// into nothing.
var axisPairs = map[Direction][2]Compass{
	DirNW: {CompassN, CompassW},
	DirNE: {CompassN, CompassE},
	DirEN: {CompassE, CompassN},
	DirES: {CompassE, CompassS},
	DirSE: {CompassS, CompassE},
	DirSW: {CompassS, CompassW},
	DirWS: {CompassW, CompassS},
	DirWN: {CompassW, CompassN},
}

// Axes returns the two orthogonal compass steps a diagonal move pivots
// through, First before Second. ok is false for the four cardinal
// directions, which need no pivot decomposition.
func (d Direction) Axes() (first, second Compass, ok bool) {
	p, ok := axisPairs[d]
	if !ok {
		return 0, 0, false
	}
	return p[0], p[1], true
}

// IsDiagonal reports whether d is one of the eight corner moves.
func (d Direction) IsDiagonal() bool {
	_, ok := axisPairs[d]
	return ok
}

// CubeID indexes a cube in a World's arena. NoCube (-1) denotes "no cube".
type CubeID int

// Cube is a single unit square. Pos is mutable; Reset and Color are fixed
// at creation. Tag, ChunkID, and OnBoundary are written only by
// topology.MarkComponents, called directly or through the topology
// package's marked operations.
type Cube struct {
	ID         CubeID
	Pos        Cell
	Reset      Cell
	Color      Color
	Tag        Tag
	ChunkID    int
	OnBoundary bool
}
