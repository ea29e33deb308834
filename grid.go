// Grid capability interface and engine-selecting constructors.
package grid

import (
	"fmt"
	"strings"
)

// Grid is the capability contract shared by both storage engines.
// Dimensions are fixed at construction; width > 0 and height > 0 hold for
// the lifetime of the instance. Every coordinate (x,y) with 0 ≤ x < width
// and 0 ≤ y < height maps to exactly one storage slot and vice versa.
//
// Callers depend only on this interface; which engine backs it is an
// internal performance decision.
type Grid[T any] interface {
	// Width returns the number of columns.
	Width() int
	// Height returns the number of rows.
	Height() int
	// Len returns the total element count, width*height.
	Len() int

	// At returns the element at (x, y), or ErrOutOfBounds (wrapped with
	// coordinates and dimensions) when the coordinate is out of range.
	At(x, y int) (T, error)
	// Lookup returns the element at (x, y) and true, or the zero value and
	// false when the coordinate is out of range. It never errors.
	Lookup(x, y int) (T, bool)
	// Set stores v at (x, y). A successful Set affects only that slot;
	// a subsequent At returns the most recently written value.
	Set(x, y int, v T) error

	// Column returns a copied snapshot of column x, top to bottom
	// (y ascending). Mutating the returned slice does not affect the grid.
	Column(x int) ([]T, error)

	// FirstWhere returns the first element satisfying pred under the fixed
	// column-major traversal (x outer, y inner), or false if none match.
	FirstWhere(pred Predicate[T]) (PointData[T], bool)
	// Where returns all elements satisfying pred, eagerly materialized in
	// traversal order. An empty result is returned when nothing matches.
	Where(pred Predicate[T]) []PointData[T]
	// Do visits every element in traversal order and stops early when f
	// returns false. Read-only with respect to the callback.
	Do(f func(x, y int, v T) bool)

	// Clone returns a deep copy backed by the same engine.
	Clone() Grid[T]

	// String renders one line per row (row 0 first), column values left to
	// right, comma-separated. Diagnostic output, identical across engines.
	fmt.Stringer
}

// New constructs a grid with DefaultOptions: the nested engine when
// width*height ≤ DefaultSizeThreshold, the flat engine above it.
// Returns ErrInvalidDimensions when width ≤ 0 or height ≤ 0.
// Complexity: O(W×H) time and memory.
func New[T any](width, height int, init InitFunc[T]) (Grid[T], error) {
	return NewWithOptions(width, height, init, DefaultOptions())
}

// NewWithOptions constructs a grid, selecting the engine by comparing
// width*height against opts.SizeThreshold. Both engines satisfy the
// identical Grid contract; the threshold is a tuning knob, not a
// correctness boundary.
func NewWithOptions[T any](width, height int, init InitFunc[T], opts Options) (Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if width*height > opts.SizeThreshold {
		return NewFlat(width, height, init)
	}

	return NewNested(width, height, init)
}

// dumpRows renders the diagnostic dump shared by both engines: one line per
// row in row-major visual order, so the text reads like the grid looks.
// Not for hot paths.
// Complexity: O(W×H).
func dumpRows[T any](g Grid[T]) string {
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if x > 0 {
				b.WriteString(", ")
			}
			v, _ := g.At(x, y)
			fmt.Fprintf(&b, "%v", v)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
