// Package stepper drives a full Gather-then-Compact run over a World,
// one committed move at a time, and exposes the resulting transcript —
// the ordered list of (cube, direction) tuples applied — for callers
// that want to replay, log, or animate the run rather than just read its
// final state.
package stepper
