// Package planner finds the shortest legal move path for a single cube
// across an otherwise-fixed World, a breadth-first search over a move
// graph that is generated on the fly rather than built up front.
//
// The walker here is grounded on bfs.go's queue/visited/parent shape, but
// where bfs.BFS expands a pre-built core.Graph's static adjacency list,
// this walker has no graph to hand lvlath's bfs.BFS: the neighbor set of
// a cell depends on which other cubes currently occupy the board, and
// changes as soon as the mover cube itself moves one step, so it is
// generated for each cell by calling move.LegalMoves. The mover cube is
// temporarily relocated to each frontier cell while its neighbors are
// queried — the only cube that ever moves during planning — and restored
// to its starting cell before ShortestMovePath returns, leaving the
// World exactly as it found it.
package planner
