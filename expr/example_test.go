package expr_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-scgf/expr"
)

// ExampleRat_Cancel reduces a rational function to lowest terms.
func ExampleRat_Cancel() {
	r := expr.MustParse("(p^2*q + p*q^2)/(p^2 - q^2)")
	fmt.Println(r.Cancel())
	// Output: (p*q)/(p - q)
}

// ExampleExp shows the second-order germ carried for exp(q_0).
func ExampleExp() {
	e, _ := expr.Exp(1, 0, +1)
	fmt.Println(e)
	// Output: 1 + (1)*q_0 + (1/2)*q_0^2
}
