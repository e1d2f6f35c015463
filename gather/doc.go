// Package gather implements the Gather phase: pulling loose link cubes
// into the stable chunk mass one at a time until nothing but chunk
// remains (or nothing more can be pulled in without breaking a bridge
// limit).
//
// Phase exposes the generator-style Next() used throughout this system's
// phase machinery: each call returns the single next cube move, not a
// whole multi-hop relocation, so a caller (stepper, or a UI driving one
// frame at a time) can commit and re-render between every individual
// slide.
//
// Each round, MarkComponents is recomputed, a leaf link cube is chosen
// (degree-1, tagged Link), and the target is the lexicographically first
// (Y, then X) empty cell adjacent to the current chunk mass.
// planner.ShortestMovePath supplies the actual route; if the cube's
// topology.BridgeCapacity is below topology.BridgeLimit, no route is
// found, or the route is longer than topology.BridgeLimit, that cube is
// skipped for the rest of the phase and the next candidate cube is tried
// against the same target.
package gather
