// Package compact implements the Compact phase: once Gather has merged
// every cube into one chunk, Compact rearranges that chunk into the
// canonical footprint — a shape that is both row-convex and
// column-convex ("XY-monotone" in the sense this system uses the term),
// the same deterministic rectangle for any given cube count.
//
// Phase follows the same generator-style Next() as gather.Phase: each
// call moves the lexicographically-last cube sitting outside the target
// footprint into the lexicographically-first open slot inside it, via
// planner.ShortestMovePath, until the occupied set exactly matches the
// canonical footprint.
package compact
