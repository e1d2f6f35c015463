// Package move implements the Move Model's legality predicates:
// given a World and a cube, which of the twelve grid.Direction moves are
// legal right now, and what is the resulting configuration if one is
// taken.
//
// A cardinal move (N/E/S/W) needs an empty destination plus a flanking
// ledge: the perpendicular neighbor on one side and its diagonal toward
// the destination must both be occupied, giving the cube something to
// slide along. A diagonal move needs an empty destination cell, its
// first axis clear, and its second axis occupied — the occupied one is
// the pivot the cube turns around, the clear one is the clearance it
// swings through. This is the standard sliding-cube corner rule used
// throughout the reconfiguration literature this system is modeled on.
//
// A move is legal only if it also keeps every other cube connected: the
// cube being moved is lifted out, topology.Connected checks the rest of
// the world still holds together, and — since a legal destination is by
// construction adjacent to the remaining configuration — the result
// after landing is connected too.
package move
