package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRemoveMove(t *testing.T) {
	w := NewWorld()

	id0, err := w.Add(Cell{0, 0}, DefaultColor)
	require.NoError(t, err)
	id1, err := w.Add(Cell{1, 0}, DefaultColor)
	require.NoError(t, err)
	assert.Equal(t, CubeID(0), id0)
	assert.Equal(t, CubeID(1), id1)

	_, err = w.Add(Cell{0, 0}, DefaultColor)
	assert.ErrorIs(t, err, ErrOccupiedCell)

	err = w.Move(Cell{0, 0}, Cell{0, 1})
	require.NoError(t, err)
	got, ok := w.At(Cell{0, 1})
	require.True(t, ok)
	assert.Equal(t, id0, got)

	err = w.Move(Cell{9, 9}, Cell{9, 8})
	assert.ErrorIs(t, err, ErrEmptyCell)

	err = w.Move(Cell{0, 1}, Cell{1, 0})
	assert.ErrorIs(t, err, ErrOccupiedCell)
}

func TestRemoveCompactsIdentifiers(t *testing.T) {
	w := NewWorld()
	idA, _ := w.Add(Cell{0, 0}, DefaultColor)
	idB, _ := w.Add(Cell{1, 0}, DefaultColor)
	idC, _ := w.Add(Cell{2, 0}, DefaultColor)
	require.Equal(t, []CubeID{0, 1, 2}, []CubeID{idA, idB, idC})

	require.NoError(t, w.Remove(Cell{1, 0}))
	require.Equal(t, 2, w.Len())

	// idC shifted down to index 1 and the index was rewritten for it.
	got, ok := w.At(Cell{2, 0})
	require.True(t, ok)
	assert.Equal(t, CubeID(1), got)
	assert.Equal(t, Cell{2, 0}, w.Cube(got).Pos)

	err := w.Remove(Cell{1, 0})
	assert.ErrorIs(t, err, ErrEmptyCell)
}

func TestInvariantIndexConsistency(t *testing.T) {
	w := NewWorld()
	w.Add(Cell{0, 0}, DefaultColor)
	w.Add(Cell{1, 0}, DefaultColor)
	w.Add(Cell{0, 1}, DefaultColor)
	require.NoError(t, w.Remove(Cell{1, 0}))
	require.NoError(t, w.Move(Cell{0, 1}, Cell{1, 1}))

	for _, c := range w.Cubes() {
		id, ok := w.At(c.Pos)
		require.True(t, ok)
		assert.Equal(t, c.ID, id)
	}
}

func TestBounds(t *testing.T) {
	w := NewWorld()
	_, _, _, _, ok := w.Bounds()
	assert.False(t, ok)

	w.Add(Cell{-1, 2}, DefaultColor)
	w.Add(Cell{3, -4}, DefaultColor)
	minX, minY, maxX, maxY, ok := w.Bounds()
	require.True(t, ok)
	assert.Equal(t, -1, minX)
	assert.Equal(t, -4, minY)
	assert.Equal(t, 3, maxX)
	assert.Equal(t, 2, maxY)
}

func TestNeighborsAndNeighborMap(t *testing.T) {
	w := NewWorld()
	w.Add(Cell{0, 0}, DefaultColor)
	w.Add(Cell{1, 0}, DefaultColor)
	w.Add(Cell{0, 1}, DefaultColor)

	has := w.Neighbors(Cell{0, 0})
	assert.True(t, has[CompassE])
	assert.True(t, has[CompassN])
	assert.False(t, has[CompassS])

	ids := w.NeighborMap(Cell{0, 0})
	assert.NotEqual(t, NoCube, ids[CompassE])
	assert.Equal(t, NoCube, ids[CompassS])
}

func TestDownmostLeftmost(t *testing.T) {
	w := NewWorld()
	_, ok := w.DownmostLeftmost()
	assert.False(t, ok)

	w.Add(Cell{5, 5}, DefaultColor)
	w.Add(Cell{0, 0}, DefaultColor)
	w.Add(Cell{1, 0}, DefaultColor)

	id, ok := w.DownmostLeftmost()
	require.True(t, ok)
	assert.Equal(t, Cell{0, 0}, w.Cube(id).Pos)
}

func TestReset(t *testing.T) {
	w := NewWorld()
	w.Add(Cell{0, 0}, DefaultColor)
	w.Add(Cell{1, 0}, DefaultColor)
	require.NoError(t, w.Move(Cell{0, 0}, Cell{0, 5}))

	require.NoError(t, w.Reset())
	for _, c := range w.Cubes() {
		assert.Equal(t, c.Reset, c.Pos)
	}
}
