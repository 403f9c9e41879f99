package lpdict_test

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/mat"

	"github.com/askiada/lpdict"
)

func ExampleSimplex() {
	// maximize x1 + x2 subject to x1 <= 4, x2 <= 3
	c := mat.NewDense(1, 2, []float64{1, 1})
	A := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	b := mat.NewDense(2, 1, []float64{4, 3})

	res, err := lpdict.Simplex(c, A, b, 0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Status)
	fmt.Println(res.Value)
	fmt.Println(res.Solution)
	// Output:
	// optimal
	// 7
	// [4 3]
}

func ExampleSolve() {
	// x1 + x2 <= -1 has no solution with x >= 0
	t, err := lpdict.FromRows([][]float64{
		{0, 1, 1},
		{-1, -1, -1},
	})
	if err != nil {
		log.Fatal(err)
	}
	res, err := lpdict.Solve(t)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Status)
	// Output:
	// infeasible
}
