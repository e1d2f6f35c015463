package instance

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubegather/grid"
)

func TestLoadRejectsBadVersion(t *testing.T) {
	_, err := Load(context.Background(), strings.NewReader(`{"_version": 99, "cubes": []}`))
	assert.ErrorIs(t, err, ErrBadVersion)
}

func TestLoadRejectsDisconnected(t *testing.T) {
	doc := `{"_version": 1, "cubes": [{"x":0,"y":0},{"x":5,"y":5}]}`
	_, err := Load(context.Background(), strings.NewReader(doc))
	assert.ErrorIs(t, err, ErrDisconnected)
}

func TestLoadAssignsDefaultColor(t *testing.T) {
	doc := `{"_version": 1, "cubes": [{"x":0,"y":0},{"x":1,"y":0}]}`
	w, err := Load(context.Background(), strings.NewReader(doc))
	require.NoError(t, err)
	for _, c := range w.Cubes() {
		assert.Equal(t, grid.DefaultColor, c.Color)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	w := grid.NewWorld()
	_, err := w.Add(grid.Cell{0, 0}, grid.DefaultColor)
	require.NoError(t, err)
	_, err = w.Add(grid.Cell{1, 0}, grid.Color{R: 10, G: 20, B: 30})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, w))

	reloaded, err := Load(context.Background(), &buf)
	require.NoError(t, err)
	require.Equal(t, w.Len(), reloaded.Len())

	for _, c := range w.Cubes() {
		id, ok := reloaded.At(c.Pos)
		require.True(t, ok)
		assert.Equal(t, c.Color, reloaded.Cube(id).Color)
	}
}
