// Package grid implements the Grid Store: an append-only arena of cubes
// plus a sparse index from integer grid cells to cube identifiers.
//
// What:
//
//   - World holds a []Cube arena and a map[Cell]CubeID index.
//   - Add/Remove/Move/At/Bounds/Neighbors/NeighborMap are the Grid Store
//     operations; none of them inspect or update cube classification.
//     SetClassification is the one writer of classification fields, and
//     only the topology package calls it.
//   - Cube identifiers are stable across Add/Move and only shift on
//     Remove, which compacts the arena and rewrites the index.
//
// Why:
//
//   - O(1) "which cube is at this cell?" lookups without cyclic
//     vertex<->world references.
//   - Keeping classification out of this package breaks an import cycle:
//     topology depends on grid, and move depends on topology, so grid
//     cannot depend on topology for a "marked" Move variant. The
//     topology package supplies AddMarked/RemoveMarked/MoveMarked on top
//     of these primitives instead.
//
// Errors:
//
//   - ErrOccupiedCell: Add/Move target cell already holds a cube.
//   - ErrEmptyCell: Remove/Move source cell holds no cube.
//   - ErrResetCollision: Reset would place two cubes on the same cell.
package grid
