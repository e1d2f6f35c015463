// Package cubegather computes a reconfiguration plan for a modular robot
// built from unit-square cubes on an integer grid.
//
// Given a connected initial configuration, it runs the Gather&Compact
// algorithm — a Gather phase that collects every cube into a single chunk
// rooted at the downmost-leftmost cube, followed by a Compact phase that
// sorts the chunk into the canonical xy-monotone staircase — and exposes
// the result as a lazy sequence of legal single-cube moves.
//
// Subpackages:
//
//	grid/     — the cube arena and sparse cell index (Grid Store)
//	topology/ — connectivity, cut-cube, and chunk/link/connector analysis
//	move/     — the twelve move directions and their legality
//	planner/  — shortest legal move path between two cells
//	gather/   — the Gather phase
//	compact/  — the Compact phase
//	stepper/  — pulls moves from a phase and commits them to the grid
//	instance/ — JSON instance loading and saving
//	vexport/  — deterministic SVG export of a configuration
//	cmd/cubegather/ — CLI driver (single instance or batch)
//
// See SPEC_FULL.md and DESIGN.md for the full design and grounding notes.
package cubegather
