// Nested storage engine: one independent slice per column.
package grid

import "fmt"

// nestedGrid stores width column slices of height elements each:
// cols[x][y]. Each access indirects through two slices, but allocation is
// simple and adequate while totals stay small.
type nestedGrid[T any] struct {
	width, height int
	cols          [][]T // len == width, each column len == height
}

// Compile-time interface & fmt.Stringer conformance.
var (
	_ Grid[int]    = (*nestedGrid[int])(nil)
	_ fmt.Stringer = (*nestedGrid[int])(nil)
)

// NewNested constructs the nested engine directly, bypassing the selection
// policy. init runs exactly once per coordinate, column by column; callers
// must not rely on the order.
// Returns ErrInvalidDimensions when width ≤ 0 or height ≤ 0.
// Complexity: O(W×H) time, W+1 allocations.
func NewNested[T any](width, height int, init InitFunc[T]) (Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	cols := make([][]T, width)
	for x := range cols {
		col := make([]T, height)
		for y := range col {
			col[y] = init(x, y)
		}
		cols[x] = col
	}

	return &nestedGrid[T]{width: width, height: height, cols: cols}, nil
}

// Width returns the column count. Complexity: O(1).
func (g *nestedGrid[T]) Width() int { return g.width }

// Height returns the row count. Complexity: O(1).
func (g *nestedGrid[T]) Height() int { return g.height }

// Len returns width*height. Complexity: O(1).
func (g *nestedGrid[T]) Len() int { return g.width * g.height }

// inBounds reports whether (x, y) lies within the grid boundaries.
// Complexity: O(1).
func (g *nestedGrid[T]) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the element at (x, y) or a wrapped ErrOutOfBounds.
// Complexity: O(1).
func (g *nestedGrid[T]) At(x, y int) (T, error) {
	if !g.inBounds(x, y) {
		var zero T
		return zero, boundsErrorf("At", x, y, g.width, g.height)
	}

	return g.cols[x][y], nil
}

// Lookup returns the element at (x, y) and true, or the zero value and
// false when out of range. Complexity: O(1).
func (g *nestedGrid[T]) Lookup(x, y int) (T, bool) {
	if !g.inBounds(x, y) {
		var zero T
		return zero, false
	}

	return g.cols[x][y], true
}

// Set stores v at (x, y) or returns a wrapped ErrOutOfBounds. The write
// touches exactly one slot. Complexity: O(1).
func (g *nestedGrid[T]) Set(x, y int, v T) error {
	if !g.inBounds(x, y) {
		return boundsErrorf("Set", x, y, g.width, g.height)
	}
	g.cols[x][y] = v

	return nil
}

// Column copies column x. The copy keeps the snapshot independent of later
// Set calls, matching the flat engine.
// Complexity: O(H).
func (g *nestedGrid[T]) Column(x int) ([]T, error) {
	if x < 0 || x >= g.width {
		return nil, boundsErrorf("Column", x, 0, g.width, g.height)
	}
	col := make([]T, g.height)
	copy(col, g.cols[x])

	return col, nil
}

// Do visits each element in the fixed column-major traversal order (x outer,
// y inner) and stops early when f returns false.
// Complexity: O(W×H), no allocations.
func (g *nestedGrid[T]) Do(f func(x, y int, v T) bool) {
	for x := 0; x < g.width; x++ {
		col := g.cols[x]
		for y := 0; y < g.height; y++ {
			if !f(x, y, col[y]) {
				return
			}
		}
	}
}

// FirstWhere returns the first match under the traversal order, or false.
// Full scan, no index. Complexity: O(W×H).
func (g *nestedGrid[T]) FirstWhere(pred Predicate[T]) (PointData[T], bool) {
	for x := 0; x < g.width; x++ {
		col := g.cols[x]
		for y := 0; y < g.height; y++ {
			if pred(col[y]) {
				return PointData[T]{Element: col[y], X: x, Y: y}, true
			}
		}
	}

	return PointData[T]{}, false
}

// Where returns all matches in traversal order, eagerly materialized.
// Complexity: O(W×H).
func (g *nestedGrid[T]) Where(pred Predicate[T]) []PointData[T] {
	var out []PointData[T]
	for x := 0; x < g.width; x++ {
		col := g.cols[x]
		for y := 0; y < g.height; y++ {
			if pred(col[y]) {
				out = append(out, PointData[T]{Element: col[y], X: x, Y: y})
			}
		}
	}

	return out
}

// Clone returns an independent deep copy on the same engine.
// Complexity: O(W×H).
func (g *nestedGrid[T]) Clone() Grid[T] {
	cols := make([][]T, g.width)
	for x := range cols {
		col := make([]T, g.height)
		copy(col, g.cols[x])
		cols[x] = col
	}

	return &nestedGrid[T]{width: g.width, height: g.height, cols: cols}
}

// String renders the row-major diagnostic dump.
func (g *nestedGrid[T]) String() string {
	return dumpRows[T](g)
}
