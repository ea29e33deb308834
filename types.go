// Core types and options for the grid package.
package grid

// InitFunc produces the element for coordinate (x, y) during construction.
// It is invoked exactly once per coordinate, in an unspecified but exhaustive
// order; conforming callers must not rely on any particular sequence.
// It is assumed pure: reproducible output for a coordinate, no side effects.
type InitFunc[T any] func(x, y int) T

// Predicate reports whether an element matches a search condition.
type Predicate[T any] func(v T) bool

// PointData pairs an element with the coordinates it was found at.
// It is a snapshot taken at scan time, not a live reference into the grid:
// later Set calls do not alter previously returned PointData values.
type PointData[T any] struct {
	Element T
	X, Y    int
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// DefaultSizeThreshold is the element count above which New selects the
// flat contiguous engine.
const DefaultSizeThreshold = 1000

// Options contains tunable parameters for engine selection.
type Options struct {
	// SizeThreshold: grids with width*height above it use flat contiguous
	// storage; smaller grids use one slice per column. Any positive value
	// preserves behavior — the threshold only shifts performance. A value
	// ≤ 0 selects the flat engine for every valid grid.
	SizeThreshold int
}

// DefaultOptions returns Options with SizeThreshold = DefaultSizeThreshold.
func DefaultOptions() Options {
	return Options{SizeThreshold: DefaultSizeThreshold}
}
