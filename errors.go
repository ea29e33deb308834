// Sentinel errors for the grid package. All operations return these
// sentinels, optionally wrapped with call context; callers match them via
// errors.Is. No operation panics on user-supplied coordinates or dimensions.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a constructor received width ≤ 0 or height ≤ 0.
	ErrInvalidDimensions = errors.New("grid: width and height must be > 0")

	// ErrOutOfBounds indicates a coordinate outside [0,width) × [0,height).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// boundsErrorf wraps ErrOutOfBounds with the failing method, the offending
// coordinates and the current dimensions for diagnostics.
func boundsErrorf(method string, x, y, width, height int) error {
	return fmt.Errorf("grid.%s(%d,%d): dimensions %dx%d: %w", method, x, y, width, height, ErrOutOfBounds)
}
