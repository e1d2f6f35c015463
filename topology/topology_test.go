package topology

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubegather/grid"
)

func addAll(t *testing.T, cells []grid.Cell) *grid.World {
	t.Helper()
	w := grid.NewWorld()
	for _, c := range cells {
		_, err := w.Add(c, grid.DefaultColor)
		require.NoError(t, err)
	}
	return w
}

func TestConnectedSingleAndLine(t *testing.T) {
	w := addAll(t, []grid.Cell{{X: 0, Y: 0}})
	ok, err := Connected(context.Background(), w, grid.NoCube)
	require.NoError(t, err)
	assert.True(t, ok)

	w = addAll(t, []grid.Cell{{0, 0}, {1, 0}, {2, 0}})
	ok, err = Connected(context.Background(), w, grid.NoCube)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConnectedDetectsSplit(t *testing.T) {
	w := addAll(t, []grid.Cell{{0, 0}, {1, 0}, {3, 0}, {4, 0}})
	ok, err := Connected(context.Background(), w, grid.NoCube)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConnectedWithSkip(t *testing.T) {
	// A 3-cube line: removing the middle cube disconnects the ends.
	w := addAll(t, []grid.Cell{{0, 0}, {1, 0}, {2, 0}})
	middle, ok := w.At(grid.Cell{1, 0})
	require.True(t, ok)
	connected, err := Connected(context.Background(), w, middle)
	require.NoError(t, err)
	assert.False(t, connected)

	end, ok := w.At(grid.Cell{0, 0})
	require.True(t, ok)
	connected, err = Connected(context.Background(), w, end)
	require.NoError(t, err)
	assert.True(t, connected)
}

func TestCutCubesLine(t *testing.T) {
	// Straight line: the two interior cubes are cut cubes, the ends are not.
	w := addAll(t, []grid.Cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}})
	stable, err := CutCubes(context.Background(), w)
	require.NoError(t, err)

	idFor := func(x int) grid.CubeID {
		id, _ := w.At(grid.Cell{x, 0})
		return id
	}
	assert.True(t, stable[idFor(0)])
	assert.False(t, stable[idFor(1)])
	assert.False(t, stable[idFor(2)])
	assert.True(t, stable[idFor(3)])
}

func TestCutCubesSolidBlockAllStable(t *testing.T) {
	// A 2x2 block has a cycle; no cube is a cut cube.
	w := addAll(t, []grid.Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
	stable, err := CutCubes(context.Background(), w)
	require.NoError(t, err)
	for _, s := range stable {
		assert.True(t, s)
	}
}

func TestOutsideWalkStartsAndEndsAtRoot(t *testing.T) {
	w := addAll(t, []grid.Cell{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}})
	order, err := OutsideWalk(w)
	require.NoError(t, err)
	require.True(t, len(order) >= 2)
	assert.Equal(t, order[0], order[len(order)-1])

	root, _ := w.DownmostLeftmost()
	assert.Equal(t, root, order[0])
}

func TestOutsideWalkSingleCube(t *testing.T) {
	w := addAll(t, []grid.Cell{{5, 5}})
	order, err := OutsideWalk(w)
	require.NoError(t, err)
	require.Len(t, order, 2)
	assert.Equal(t, order[0], order[1])
}

func TestMarkComponentsSolidBlockIsOneChunk(t *testing.T) {
	w := addAll(t, []grid.Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
	require.NoError(t, MarkComponents(context.Background(), w))

	chunk := -1
	for _, c := range w.Cubes() {
		if chunk == -1 {
			chunk = c.ChunkID
		}
		assert.Equal(t, chunk, c.ChunkID)
		assert.Contains(t, []grid.Tag{grid.TagChunkStable, grid.TagChunkCut}, c.Tag)
	}
}

func TestMarkComponentsSingleCubeIsLinkStable(t *testing.T) {
	w := addAll(t, []grid.Cell{{0, 0}})
	require.NoError(t, MarkComponents(context.Background(), w))
	c := w.Cube(0)
	assert.Equal(t, grid.TagLinkStable, c.Tag)
	assert.True(t, c.OnBoundary)
}

func TestMarkComponentsLineHasNoConnectors(t *testing.T) {
	// A straight line has no cycle, so the stack algorithm finds no loop
	// closure and every cube remains a link; the two interior cubes are
	// also cut cubes (see TestCutCubesLine), so they end up LinkCut while
	// the two ends are LinkStable.
	w := addAll(t, []grid.Cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}})
	require.NoError(t, MarkComponents(context.Background(), w))
	for _, c := range w.Cubes() {
		assert.Contains(t, []grid.Tag{grid.TagLinkStable, grid.TagLinkCut}, c.Tag)
	}
}

func TestMarkComponentsOnBoundaryInvariant(t *testing.T) {
	// Every Connector must lie on the boundary walk.
	w := addAll(t, []grid.Cell{
		{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1},
		{1, 1}, // close the block so a real cycle (and thus a chunk) exists
	})
	require.NoError(t, MarkComponents(context.Background(), w))
	for _, c := range w.Cubes() {
		if c.Tag == grid.TagConnector {
			assert.True(t, c.OnBoundary, "connector %v must be on the boundary", c.Pos)
		}
	}
}

func TestMarkComponentsIdempotent(t *testing.T) {
	w := addAll(t, []grid.Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 0}})
	require.NoError(t, MarkComponents(context.Background(), w))
	first := append([]grid.Cube(nil), w.Cubes()...)
	require.NoError(t, MarkComponents(context.Background(), w))
	second := w.Cubes()
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Tag, second[i].Tag)
		assert.Equal(t, first[i].ChunkID, second[i].ChunkID)
		assert.Equal(t, first[i].OnBoundary, second[i].OnBoundary)
	}
}

func TestBridgeCapacityAndLimit(t *testing.T) {
	w := addAll(t, []grid.Cell{{0, 0}, {1, 0}, {2, 0}})
	middle, _ := w.At(grid.Cell{1, 0})
	end, _ := w.At(grid.Cell{2, 0})

	margin, err := BridgeCapacity(context.Background(), w, middle)
	require.NoError(t, err)
	assert.Equal(t, 0, margin, "removing the middle cube strands the end cube from the root")

	margin, err = BridgeCapacity(context.Background(), w, end)
	require.NoError(t, err)
	assert.Equal(t, 1, margin, "removing the leaf end cube still leaves the middle cube reachable")

	margin, err = BridgeCapacity(context.Background(), w, grid.NoCube)
	require.NoError(t, err)
	assert.Equal(t, 2, margin, "removing nothing leaves both other cubes reachable from the root")

	limit := BridgeLimit(w)
	assert.Equal(t, 2*(3+1), limit)
}

func TestMarkedOpsKeepClassificationFresh(t *testing.T) {
	w := grid.NewWorld()
	_, err := AddMarked(context.Background(), w, grid.Cell{0, 0}, grid.DefaultColor)
	require.NoError(t, err)
	_, err = AddMarked(context.Background(), w, grid.Cell{1, 0}, grid.DefaultColor)
	require.NoError(t, err)

	for _, c := range w.Cubes() {
		assert.NotEqual(t, grid.TagNone, c.Tag)
	}

	require.NoError(t, RemoveMarked(context.Background(), w, grid.Cell{1, 0}))
	assert.Equal(t, 1, w.Len())
	assert.Equal(t, grid.TagLinkStable, w.Cube(0).Tag)
}
