// Connectivity-based neighbor snapshots.
package grid

// Neighbor offsets per connectivity, in fixed clockwise order starting
// north. Precomputed so traversals never branch on the connectivity mode.
var (
	conn4Offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Neighbors returns snapshots of the in-bounds neighbors of (x, y) under the
// given connectivity, in the fixed offset order. Off-grid neighbors are
// skipped, so corners and edges return fewer entries. Returns a wrapped
// ErrOutOfBounds when (x, y) itself is out of range.
// Complexity: O(1) — at most 8 lookups.
func Neighbors[T any](g Grid[T], x, y int, conn Connectivity) ([]PointData[T], error) {
	if _, ok := g.Lookup(x, y); !ok {
		return nil, boundsErrorf("Neighbors", x, y, g.Width(), g.Height())
	}
	offsets := conn4Offsets[:]
	if conn == Conn8 {
		offsets = conn8Offsets[:]
	}
	out := make([]PointData[T], 0, len(offsets))
	for _, d := range offsets {
		nx, ny := x+d[0], y+d[1]
		if v, ok := g.Lookup(nx, ny); ok {
			out = append(out, PointData[T]{Element: v, X: nx, Y: ny})
		}
	}

	return out, nil
}
