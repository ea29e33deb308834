// Type-filtered search over a Grid.
//
// The original dynamic-language operation tested each element's runtime type.
// In Go that narrows to an interface assertion: the element is boxed to any
// and asserted to the requested type R. This is most useful on grids whose
// element type is an interface (e.g. Grid[any], Grid[Shape]); on a grid with
// a concrete element type the assertion can only succeed for R identical to
// that type. Methods cannot carry type parameters, so these are package-level
// functions rather than part of the Grid interface.
package grid

// FirstOfType returns the first element whose dynamic value is of type R,
// paired with its coordinates, under the same column-major traversal order
// as FirstWhere. The boolean is false when no element matches.
// Complexity: O(W×H) full scan.
func FirstOfType[R any, T any](g Grid[T]) (PointData[R], bool) {
	var found PointData[R]
	var ok bool
	g.Do(func(x, y int, v T) bool {
		r, matches := any(v).(R)
		if !matches {
			return true
		}
		found = PointData[R]{Element: r, X: x, Y: y}
		ok = true

		return false
	})

	return found, ok
}

// OfType returns all elements whose dynamic value is of type R, in traversal
// order, additionally filtered by pred when pred is non-nil. A nil pred
// means no further filtering.
// Complexity: O(W×H) full scan.
func OfType[R any, T any](g Grid[T], pred Predicate[R]) []PointData[R] {
	var out []PointData[R]
	g.Do(func(x, y int, v T) bool {
		r, matches := any(v).(R)
		if !matches {
			return true
		}
		if pred != nil && !pred(r) {
			return true
		}
		out = append(out, PointData[R]{Element: r, X: x, Y: y})

		return true
	})

	return out
}
