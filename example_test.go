package grid_test

import (
	"fmt"

	"github.com/lvlgrid/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: construction and access
////////////////////////////////////////////////////////////////////////////////

// ExampleNew builds a small multiplication-table grid and reads it back.
// The engine behind the interface is a size-based performance decision and
// never visible to the caller.
func ExampleNew() {
	g, _ := grid.New(3, 3, func(x, y int) int { return x * y })

	v, _ := g.At(2, 2)
	fmt.Println("At(2,2):", v)
	fmt.Print(g)
	// Output:
	// At(2,2): 4
	// 0, 0, 0
	// 0, 1, 2
	// 0, 2, 4
}

////////////////////////////////////////////////////////////////////////////////
// Example: search
////////////////////////////////////////////////////////////////////////////////

// Example_firstWhere scans column-major (x outer, y inner) for the first
// element above a threshold.
func Example_firstWhere() {
	g, _ := grid.New(3, 3, func(x, y int) int { return 10*x + y })

	p, ok := g.FirstWhere(func(v int) bool { return v > 15 })
	fmt.Println(ok, p.Element, p.X, p.Y)
	// Output:
	// true 20 2 0
}

// Example_ofType filters a mixed-type grid down to one dynamic type.
func Example_ofType() {
	g, _ := grid.New(2, 2, func(x, y int) any {
		if (x+y)%2 == 0 {
			return x + y
		}
		return "odd"
	})

	for _, p := range grid.OfType[int](g, nil) {
		fmt.Printf("(%d,%d)=%d\n", p.X, p.Y, p.Element)
	}
	// Output:
	// (0,0)=0
	// (1,1)=2
}

////////////////////////////////////////////////////////////////////////////////
// Example: neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleNeighbors lists the orthogonal neighborhood of a corner cell.
func ExampleNeighbors() {
	g, _ := grid.New(3, 3, func(x, y int) int { return 10*x + y })

	ns, _ := grid.Neighbors(g, 0, 0, grid.Conn4)
	for _, n := range ns {
		fmt.Printf("(%d,%d)=%d\n", n.X, n.Y, n.Element)
	}
	// Output:
	// (1,0)=10
	// (0,1)=1
}
