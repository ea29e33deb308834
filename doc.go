// Package grid provides a fixed-size, generically-typed 2D array backed by
// one-dimensional storage, with bounds-checked access and full-scan search.
//
// What:
//
//   - Grid[T] is the single capability interface; two storage engines
//     implement it and are never exposed to callers.
//   - Flat engine: one contiguous buffer of width×height elements, with the
//     column-major offset formula x*height + y. All rows of a column are
//     adjacent, so column scans and copies touch one contiguous block.
//   - Nested engine: one independent slice per column. Simpler allocation,
//     two indirections per access.
//   - New and NewWithOptions select the engine by comparing width*height
//     against Options.SizeThreshold (default 1000). The choice is purely a
//     performance decision and is invisible at the interface: both engines
//     produce identical results for every operation.
//
// Why:
//
//   - Game maps, cellular automata, rasters: dense value fields addressed
//     by (x, y) where locality matters as the field grows.
//
// Traversal:
//
//   - Every scan (Do, FirstWhere, Where, FirstOfType, OfType) visits
//     coordinates column-major: x outer ascending, y inner ascending.
//   - Construction order is unspecified; the init function is only
//     guaranteed to run exactly once per coordinate, exhaustively.
//
// Complexity:
//
//   - At / Set / Lookup: O(1).
//   - Construction, Clone, String: O(W×H).
//   - FirstWhere / Where / FirstOfType / OfType: O(W×H) full scan, no
//     secondary index, no caching between calls.
//
// Errors:
//
//   - ErrInvalidDimensions: width or height ≤ 0 at construction.
//   - ErrOutOfBounds: coordinate outside [0,width)×[0,height) passed to a
//     checked accessor; wrapped with the failing method, the offending
//     coordinates and the grid dimensions. Lookup never errors and signals
//     absence with its boolean instead.
//
// The grid carries no internal synchronization; concurrent mutation is
// undefined and must be serialized by the caller.
package grid
