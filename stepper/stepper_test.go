package stepper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubegather/compact"
	"github.com/katalvlaran/cubegather/grid"
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

func TestRunLightConfigurationSkipsGatherRunsCompact(t *testing.T) {
	w := buildWorld(t, []grid.Cell{{0, 0}, {1, 0}, {2, 0}})
	s := New(w)
	transcript, err := s.Run(context.Background())
	require.NoError(t, err)
	for _, st := range transcript {
		assert.Equal(t, StepCompact, st.Kind)
	}
	assert.True(t, compact.IsXYMonotone(w))
}

func TestRunFullPipelineProducesMonotoneResult(t *testing.T) {
	w := buildWorld(t, []grid.Cell{
		{0, 0}, {1, 0}, {0, 1}, {1, 1},
		{2, 0}, {3, 0},
	})
	n := w.Len()
	s := New(w)
	transcript, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, transcript)
	assert.Equal(t, n, w.Len())
	assert.True(t, compact.IsXYMonotone(w))
	assert.Equal(t, transcript, s.Transcript())
}
