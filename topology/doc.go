// Package topology implements the Topology Analyzer: pure functions over a
// *grid.World's occupied cell set. Nothing in this package adds, removes,
// or moves cubes except the *Marked wrappers, which call a grid.World
// method and then immediately re-run MarkComponents — the "marked" half of
// the Grid Store's two-flavor operations described in grid's doc comment.
// MarkComponents itself writes only the cubes' classification fields.
//
// What:
//
//   - Connected reports whether a World (optionally with one cube removed)
//     is 4-connected.
//   - CutCubes finds articulation points of the cube-adjacency graph.
//   - OutsideWalk traces the counter-clockwise... more precisely the
//     bend-table-driven boundary walk starting at the downmost-leftmost
//     cube.
//   - MarkComponents classifies every cube as Chunk/Link/Connector and
//     writes the result onto the World.
//   - BridgeCapacity and BridgeLimit support Gather's bridge-extension
//     feasibility check.
//
// Why this package depends on lvlath's core/bfs/dfs:
//
//   - Connected and the cut-cube DFS both reduce to standard graph
//     algorithms once the occupied cells are viewed as a graph. Rather
//     than hand-rolling BFS/DFS a second time, this package converts the
//     occupied cells into a *core.Graph (grounded on
//     gridgraph.GridGraph.ToCoreGraph's vertex-ID convention, "x,y", but
//     restricted to occupied cells only — ToCoreGraph itself includes
//     every cell in the bounding box regardless of occupancy, which would
//     let BFS/DFS walk through empty cells and defeat the connectivity
//     check) and calls bfs.BFS / dfs.DFS exactly as they are written in
//     the pack.
//   - OutsideWalk and the stack-based chunk/link/connector classification
//     have no analogue in the pack; they are new code, written in the
//     step-numbered procedural style of gridgraph.ConnectedComponents.
package topology
