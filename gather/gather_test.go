package gather

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubegather/grid"
	"github.com/katalvlaran/cubegather/topology"
)

func buildWorld(t *testing.T, cells []grid.Cell) *grid.World {
	t.Helper()
	w := grid.NewWorld()
	for _, c := range cells {
		_, err := w.Add(c, grid.DefaultColor)
		require.NoError(t, err)
	}
	return w
}

func TestNewPhaseRejectsLightConfiguration(t *testing.T) {
	w := buildWorld(t, []grid.Cell{{0, 0}, {1, 0}, {2, 0}})
	_, err := NewPhase(context.Background(), w)
	assert.ErrorIs(t, err, ErrLightConfiguration)
}

func TestPhaseConvergesAndPreservesConnectivity(t *testing.T) {
	// A 2x2 chunk with a two-cube tail dangling off it; Gather should
	// terminate and never disconnect the configuration along the way.
	w := buildWorld(t, []grid.Cell{
		{0, 0}, {1, 0}, {0, 1}, {1, 1}, // 2x2 chunk
		{2, 0},                        // attached to the chunk
		{3, 0},                        // dangling leaf
	})
	n := w.Len()
	phase, err := NewPhase(context.Background(), w)
	require.NoError(t, err)

	converged := false
	for i := 0; i < 200; i++ {
		mv, done, err := phase.Next(context.Background())
		require.NoError(t, err)
		if done {
			converged = true
			break
		}
		require.NoError(t, topology.MoveMarked(context.Background(), w, w.Cube(mv.Cube).Pos, destOf(w, mv)))
		connected, err := topology.Connected(context.Background(), w, grid.NoCube)
		require.NoError(t, err)
		assert.True(t, connected, "gather must never disconnect the configuration")
	}
	assert.True(t, converged, "phase should converge within the iteration budget")
	assert.Equal(t, n, w.Len())
}

func destOf(w *grid.World, mv Move) grid.Cell {
	dx, dy := mv.Dir.Offset()
	return w.Cube(mv.Cube).Pos.Add(dx, dy)
}
