// Package vexport renders a World to a deterministic SVG document, one
// glyph per cube keyed by its topology Tag, for inspection.
//
// The pack's only SVG-adjacent library, srwiley/oksvg plus
// srwiley/rasterx (used by the teacher's chessboard renderer), reads and
// rasterizes existing SVG/path data — the wrong direction for producing
// a new document, so it has no home here. No repo in the pack writes
// SVG or any other markup, so this falls back to the standard library:
// text/template for the fixed document envelope, fmt for the per-cube
// glyphs within it. See DESIGN.md for why no pack dependency fits.
package vexport
