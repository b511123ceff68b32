package impactfunc_test

import (
	"fmt"

	"github.com/riskforge/catrisk/impactfunc"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSet
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Register a tropical-cyclone step curve that destroys everything at
//	wind speeds of 40 m/s and above, then evaluate the damage ratio a
//	calculation engine would apply at three intensities.
//
// Complexity: O(log samples) per evaluation.
func ExampleSet() {
	set := impactfunc.NewSet()
	fn, err := impactfunc.StepFunc("TC", 1, 40, 120)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if err = set.Add(fn); err != nil {
		fmt.Println("error:", err)

		return
	}

	curve, _ := set.Get("TC", 1)
	for _, wind := range []float64{25, 40, 80} {
		fmt.Printf("mdr(%v)=%v\n", wind, curve.CalcMDR(wind))
	}
	// Output:
	// mdr(25)=0
	// mdr(40)=1
	// mdr(80)=1
}
