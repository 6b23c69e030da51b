package core_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/goldrush/core"
)

// ExampleNew builds a small instance with one missing edge and inspects it.
func ExampleNew() {
	inf := math.Inf(1)
	dist := [][]float64{
		{0, 1, inf, 2},
		{1, 0, 1, inf},
		{inf, 1, 0, 1},
		{2, inf, 1, 0},
	}
	gold := []float64{0, 3, 5, 2}

	g, err := core.New(dist, gold)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("nodes:", g.N())
	fmt.Println("gold total:", g.TotalGold())
	fmt.Println("edge 0-2:", g.HasEdge(0, 2))
	fmt.Printf("density: %.2f\n", g.Density())
	// Output:
	// nodes: 4
	// gold total: 10
	// edge 0-2: false
	// density: 0.67
}
