// Flat storage engine: a single contiguous buffer in column-major order.
package grid

import "fmt"

// flatGrid stores width×height elements in one flat slice using the
// column-major offset x*height + y: all rows of a column are contiguous,
// so column-oriented operations touch a single memory block while
// row-oriented operations stride by height.
type flatGrid[T any] struct {
	width, height int
	data          []T // len == width*height, offset = x*height + y
}

// Compile-time interface & fmt.Stringer conformance.
var (
	_ Grid[int]    = (*flatGrid[int])(nil)
	_ fmt.Stringer = (*flatGrid[int])(nil)
)

// NewFlat constructs the flat engine directly, bypassing the selection
// policy. init runs exactly once per coordinate; the flat engine happens to
// initialize in storage order, but callers must not rely on that.
// Returns ErrInvalidDimensions when width ≤ 0 or height ≤ 0.
// Complexity: O(W×H) time, one allocation of W×H elements.
func NewFlat[T any](width, height int, init InitFunc[T]) (Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]T, width*height)
	for k := range data {
		// Inverse mapping hands init its natural coordinates.
		data[k] = init(k/height, k%height)
	}

	return &flatGrid[T]{width: width, height: height, data: data}, nil
}

// Width returns the column count. Complexity: O(1).
func (g *flatGrid[T]) Width() int { return g.width }

// Height returns the row count. Complexity: O(1).
func (g *flatGrid[T]) Height() int { return g.height }

// Len returns width*height. Complexity: O(1).
func (g *flatGrid[T]) Len() int { return g.width * g.height }

// offsetOf computes the column-major offset x*height + y, or reports that
// (x, y) is out of range. Every accessor and scan goes through this formula
// or its inverse; nothing else indexes the buffer.
// Complexity: O(1).
func (g *flatGrid[T]) offsetOf(x, y int) (int, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0, false
	}

	return x*g.height + y, true
}

// At returns the element at (x, y) or a wrapped ErrOutOfBounds.
// Complexity: O(1).
func (g *flatGrid[T]) At(x, y int) (T, error) {
	off, ok := g.offsetOf(x, y)
	if !ok {
		var zero T
		return zero, boundsErrorf("At", x, y, g.width, g.height)
	}

	return g.data[off], nil
}

// Lookup returns the element at (x, y) and true, or the zero value and
// false when out of range. Complexity: O(1).
func (g *flatGrid[T]) Lookup(x, y int) (T, bool) {
	off, ok := g.offsetOf(x, y)
	if !ok {
		var zero T
		return zero, false
	}

	return g.data[off], true
}

// Set stores v at (x, y) or returns a wrapped ErrOutOfBounds. The write
// touches exactly one slot. Complexity: O(1).
func (g *flatGrid[T]) Set(x, y int, v T) error {
	off, ok := g.offsetOf(x, y)
	if !ok {
		return boundsErrorf("Set", x, y, g.width, g.height)
	}
	g.data[off] = v

	return nil
}

// Column copies column x out of the buffer. Thanks to the column-major
// layout this is a single contiguous copy.
// Complexity: O(H).
func (g *flatGrid[T]) Column(x int) ([]T, error) {
	if x < 0 || x >= g.width {
		return nil, boundsErrorf("Column", x, 0, g.width, g.height)
	}
	col := make([]T, g.height)
	copy(col, g.data[x*g.height:(x+1)*g.height])

	return col, nil
}

// Do visits each element in the fixed column-major traversal order and
// stops early when f returns false. Storage order already is x-outer,
// y-inner, so a single linear pass over the buffer suffices.
// Complexity: O(W×H), no allocations.
func (g *flatGrid[T]) Do(f func(x, y int, v T) bool) {
	for k, v := range g.data {
		if !f(k/g.height, k%g.height, v) {
			return
		}
	}
}

// FirstWhere returns the first match under the traversal order, or false.
// Full scan, no index. Complexity: O(W×H).
func (g *flatGrid[T]) FirstWhere(pred Predicate[T]) (PointData[T], bool) {
	for k, v := range g.data {
		if pred(v) {
			return PointData[T]{Element: v, X: k / g.height, Y: k % g.height}, true
		}
	}

	return PointData[T]{}, false
}

// Where returns all matches in traversal order, eagerly materialized.
// Complexity: O(W×H).
func (g *flatGrid[T]) Where(pred Predicate[T]) []PointData[T] {
	var out []PointData[T]
	for k, v := range g.data {
		if pred(v) {
			out = append(out, PointData[T]{Element: v, X: k / g.height, Y: k % g.height})
		}
	}

	return out
}

// Clone returns an independent deep copy on the same engine.
// Complexity: O(W×H).
func (g *flatGrid[T]) Clone() Grid[T] {
	cp := make([]T, len(g.data))
	copy(cp, g.data)

	return &flatGrid[T]{width: g.width, height: g.height, data: cp}
}

// String renders the row-major diagnostic dump.
func (g *flatGrid[T]) String() string {
	return dumpRows[T](g)
}
