package bulkspline_test

import (
	"fmt"

	bulkspline "github.com/tphakala/go-bulk-spline"
)

func ExampleBulkEvaluator() {
	ramp, err := bulkspline.SplineFromNodes([]bulkspline.Node{
		{X: 0, Y: 0, Derivative: 1},
		{X: 1, Y: 1, Derivative: 1},
	})
	if err != nil {
		panic(err)
	}

	e := bulkspline.NewBulkEvaluator(3)
	e.AttachSpline(0, ramp, 0)
	e.AttachSpline(1, ramp, 0.5)
	// Index 2 stays unattached.

	for range 3 {
		fmt.Printf("%.2f %.2f %.2f\n", e.Y(0), e.Y(1), e.Y(2))
		e.Advance(0.25)
	}
	fmt.Println(e.IsValid(1), e.IsValid(2))
	// Output:
	// 0.00 0.50 0.00
	// 0.25 0.75 0.00
	// 0.50 1.00 0.00
	// true false
}

func ExampleSample() {
	ramp, err := bulkspline.SplineFromNodes([]bulkspline.Node{
		{X: 0, Y: 0, Derivative: 2},
		{X: 1, Y: 2, Derivative: 2},
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.1f\n", bulkspline.Sample(ramp, 0, 0.5, 4))
	// Output:
	// [0.0 1.0 2.0 2.0]
}
