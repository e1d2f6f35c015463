package topology

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cubegather/grid"
)

// AddMarked inserts a cube and re-runs MarkComponents so the returned
// World reflects up-to-date Tag/ChunkID/OnBoundary fields immediately.
func AddMarked(ctx context.Context, w *grid.World, cell grid.Cell, color grid.Color) (grid.CubeID, error) {
	id, err := w.Add(cell, color)
	if err != nil {
		return grid.NoCube, err
	}
	if err := MarkComponents(ctx, w); err != nil {
		return grid.NoCube, fmt.Errorf("topology: addmarked: %w", err)
	}
	return id, nil
}

// RemoveMarked deletes the cube at cell and re-runs MarkComponents.
func RemoveMarked(ctx context.Context, w *grid.World, cell grid.Cell) error {
	if err := w.Remove(cell); err != nil {
		return err
	}
	if err := MarkComponents(ctx, w); err != nil {
		return fmt.Errorf("topology: removemarked: %w", err)
	}
	return nil
}

// MoveMarked relocates the cube at src to dst and re-runs MarkComponents.
func MoveMarked(ctx context.Context, w *grid.World, src, dst grid.Cell) error {
	if err := w.Move(src, dst); err != nil {
		return err
	}
	if err := MarkComponents(ctx, w); err != nil {
		return fmt.Errorf("topology: movemarked: %w", err)
	}
	return nil
}
