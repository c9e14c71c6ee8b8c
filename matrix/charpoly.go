// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlath-scgf/expr"
)

// CharPoly returns the coefficients of det(λI − A) in DESCENDING powers of λ:
// p[0] = 1 (given as one), p[n] = det(−A).
//
// MAIN DESCRIPTION:
//   - Samuelson–Berkowitz algorithm; ring operations only, so symbolic and
//     germ-valued entries are fine.
//
// Implementation:
//   - Stage 1: p_0 = [1].
//   - Stage 2: for r = 1..n split the leading r×r block as [[A', C], [R, a]]
//     and form the first column of the (r+1)×r Toeplitz matrix T_r:
//     [1, −a, −R·C, −R·A'·C, …, −R·A'^{r−2}·C].
//   - Stage 3: p_r = T_r · p_{r−1}.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - O(n⁴) ring operations, O(n²) extra space.
func CharPoly[T Element[T]](a *Dense[T], one T) ([]T, error) {
	if a == nil {
		return nil, fmt.Errorf("CharPoly: %w", ErrNilMatrix)
	}
	if a.r != a.c {
		return nil, fmt.Errorf("CharPoly(%dx%d): %w", a.r, a.c, ErrNonSquare)
	}
	n, zero := a.r, a.zero
	p := []T{one}
	for r := 1; r <= n; r++ {
		k := r - 1 // index of the new row/column
		col := make([]T, r+1)
		col[0] = one
		col[1] = a.at(k, k).Neg()

		// v walks A'^m · C; R·v gives the next Toeplitz entry.
		v := make([]T, k)
		for i := 0; i < k; i++ {
			v[i] = a.at(i, k)
		}
		for m := 2; m <= r; m++ {
			dot := zero
			for i := 0; i < k; i++ {
				dot = dot.Add(a.at(k, i).Mul(v[i]))
			}
			col[m] = dot.Neg()
			if m < r {
				v = mulBlock(a, k, v, zero)
			}
		}

		next := make([]T, r+1)
		for i := 0; i <= r; i++ {
			sum := zero
			for j := 0; j < r && j <= i; j++ {
				sum = sum.Add(col[i-j].Mul(p[j]))
			}
			next[i] = sum
		}
		p = next
	}

	return p, nil
}

// mulBlock returns A'·v for the leading k×k block A' of a.
func mulBlock[T Element[T]](a *Dense[T], k int, v []T, zero T) []T {
	out := make([]T, k)
	for i := 0; i < k; i++ {
		sum := zero
		for j := 0; j < k; j++ {
			sum = sum.Add(a.at(i, j).Mul(v[j]))
		}
		out[i] = sum
	}

	return out
}

// Coefficients returns the characteristic-polynomial coefficients of wq in
// ASCENDING order: a[0] is det(−Wq), a[1] the linear term, and so on.
// With simplify set, every coefficient of every germ is cancelled; later
// differentiation and substitution depend on this to stay tractable.
func Coefficients(wq *Dense[expr.Series], simplify bool) ([]expr.Series, error) {
	desc, err := CharPoly(wq, expr.Scalar(expr.RatInt(1)))
	if err != nil {
		return nil, fmt.Errorf("Coefficients: %w", err)
	}
	asc := make([]expr.Series, len(desc))
	for i, c := range desc {
		if simplify {
			c = c.Cancel()
		}
		asc[len(desc)-1-i] = c
	}

	return asc, nil
}
