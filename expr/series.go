// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math/big"
	"strings"
)

// Series is a second-order Taylor germ in n counting variables q_0..q_{n-1}:
//
//	s = c0 + Σ_i lin[i]·q_i + Σ_{i≤j} quad[i,j]·q_i·q_j   (mod degree 3)
//
// A Series with n == 0 is a scalar and combines with a Series of any n.
// Mixing two non-scalar Series of different n is a programmer error and panics.
type Series struct {
	n    int
	c0   Rat
	lin  []Rat // len n
	quad []Rat // upper triangle, packed row-major: (i,j), i<=j
}

// tri returns the packed index of (i,j), i<=j, in an n×n upper triangle.
func tri(n, i, j int) int {
	if i > j {
		i, j = j, i
	}
	return i*n - i*(i-1)/2 + (j - i)
}

// Scalar returns the constant germ c (n == 0).
func Scalar(c Rat) Series { return Series{c0: c} }

// Constant returns the constant germ c in n variables.
func Constant(n int, c Rat) Series {
	return Series{n: n, c0: c, lin: make([]Rat, n), quad: make([]Rat, n*(n+1)/2)}
}

// Exp returns the germ of exp(sign·q_i) in n variables: 1 + sign·q_i + q_i²/2.
// sign must be +1 or -1.
func Exp(n, i, sign int) (Series, error) {
	if i < 0 || i >= n {
		return Series{}, fmt.Errorf("Exp(%d of %d): %w", i, n, ErrTiltIndex)
	}
	s := Constant(n, RatInt(1))
	s.lin[i] = RatInt(int64(sign))
	s.quad[tri(n, i, i)] = RatFrac(1, 2)

	return s, nil
}

// Vars returns the number of counting variables (0 for scalars).
func (s Series) Vars() int { return s.n }

// widen returns s as a germ in n variables.
func (s Series) widen(n int) Series {
	if s.n == n {
		return s
	}
	if s.n != 0 {
		panic(fmt.Sprintf("expr: series in %d variables combined with %d", s.n, n))
	}
	out := Constant(n, s.c0)

	return out
}

// common returns the variable count of a combination of s and o.
func (s Series) common(o Series) int {
	if s.n >= o.n {
		return s.n
	}
	return o.n
}

// Add returns s+o.
func (s Series) Add(o Series) Series {
	n := s.common(o)
	a, b := s.widen(n), o.widen(n)
	out := Series{n: n, c0: a.c0.Add(b.c0), lin: make([]Rat, n), quad: make([]Rat, len(a.quad))}
	for i := range out.lin {
		out.lin[i] = a.lin[i].Add(b.lin[i])
	}
	for k := range out.quad {
		out.quad[k] = a.quad[k].Add(b.quad[k])
	}

	return out
}

// Neg returns -s.
func (s Series) Neg() Series { return s.Map(Rat.Neg) }

// Sub returns s-o.
func (s Series) Sub(o Series) Series { return s.Add(o.Neg()) }

// Mul returns s*o truncated after second order.
func (s Series) Mul(o Series) Series {
	if s.n == 0 {
		return o.Map(func(r Rat) Rat { return s.c0.Mul(r) })
	}
	if o.n == 0 {
		return s.Map(func(r Rat) Rat { return r.Mul(o.c0) })
	}
	n := s.common(o)
	a, b := s.widen(n), o.widen(n)
	out := Series{n: n, c0: a.c0.Mul(b.c0), lin: make([]Rat, n), quad: make([]Rat, len(a.quad))}
	for i := 0; i < n; i++ {
		out.lin[i] = a.c0.Mul(b.lin[i]).Add(a.lin[i].Mul(b.c0))
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			k := tri(n, i, j)
			v := a.c0.Mul(b.quad[k]).Add(a.quad[k].Mul(b.c0))
			if i == j {
				v = v.Add(a.lin[i].Mul(b.lin[i]))
			} else {
				v = v.Add(a.lin[i].Mul(b.lin[j])).Add(a.lin[j].Mul(b.lin[i]))
			}
			out.quad[k] = v
		}
	}

	return out
}

// Scale returns c·s.
func (s Series) Scale(c Rat) Series {
	return s.Map(func(r Rat) Rat { return c.Mul(r) })
}

// Map applies f to every coefficient.
func (s Series) Map(f func(Rat) Rat) Series {
	out := Series{n: s.n, c0: f(s.c0), lin: make([]Rat, len(s.lin)), quad: make([]Rat, len(s.quad))}
	for i, r := range s.lin {
		out.lin[i] = f(r)
	}
	for k, r := range s.quad {
		out.quad[k] = f(r)
	}

	return out
}

// MapErr applies f to every coefficient and stops at the first error.
func (s Series) MapErr(f func(Rat) (Rat, error)) (Series, error) {
	var err error
	out := s.Map(func(r Rat) Rat {
		if err != nil {
			return r
		}
		var v Rat
		v, err = f(r)
		return v
	})
	if err != nil {
		return Series{}, err
	}

	return out, nil
}

// Cancel cancels every coefficient.
func (s Series) Cancel() Series { return s.Map(Rat.Cancel) }

// IsZero reports whether every coefficient vanishes.
func (s Series) IsZero() bool {
	if !s.c0.IsZero() {
		return false
	}
	for _, r := range s.lin {
		if !r.IsZero() {
			return false
		}
	}
	for _, r := range s.quad {
		if !r.IsZero() {
			return false
		}
	}

	return true
}

// Equal reports coefficient-wise equality.
func (s Series) Equal(o Series) bool {
	n := s.common(o)
	if (s.n != n && s.n != 0) || (o.n != n && o.n != 0) {
		return false
	}
	a, b := s.widen(n), o.widen(n)
	if !a.c0.Equal(b.c0) {
		return false
	}
	for i := range a.lin {
		if !a.lin[i].Equal(b.lin[i]) {
			return false
		}
	}
	for k := range a.quad {
		if !a.quad[k].Equal(b.quad[k]) {
			return false
		}
	}

	return true
}

// At0 returns the value at zero tilt.
func (s Series) At0() Rat { return s.c0 }

// D returns ∂s/∂q_i at zero tilt.
func (s Series) D(i int) (Rat, error) {
	if s.n == 0 {
		return Rat{}, nil
	}
	if i < 0 || i >= s.n {
		return Rat{}, fmt.Errorf("D(%d of %d): %w", i, s.n, ErrTiltIndex)
	}
	return s.lin[i], nil
}

// D2 returns ∂²s/∂q_i∂q_j at zero tilt.
func (s Series) D2(i, j int) (Rat, error) {
	if s.n == 0 {
		return Rat{}, nil
	}
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return Rat{}, fmt.Errorf("D2(%d,%d of %d): %w", i, j, s.n, ErrTiltIndex)
	}
	v := s.quad[tri(s.n, i, j)]
	if i == j {
		return v.Scale(big.NewRat(2, 1)), nil
	}

	return v, nil
}

// String renders the non-zero coefficients, e.g. "1 + (a)*q_0 + (1/2)*q_0^2".
func (s Series) String() string {
	var parts []string
	if !s.c0.IsZero() {
		parts = append(parts, s.c0.String())
	}
	for i, r := range s.lin {
		if !r.IsZero() {
			parts = append(parts, fmt.Sprintf("(%s)*q_%d", r, i))
		}
	}
	for i := 0; i < s.n; i++ {
		for j := i; j < s.n; j++ {
			r := s.quad[tri(s.n, i, j)]
			if r.IsZero() {
				continue
			}
			if i == j {
				parts = append(parts, fmt.Sprintf("(%s)*q_%d^2", r, i))
			} else {
				parts = append(parts, fmt.Sprintf("(%s)*q_%d*q_%d", r, i, j))
			}
		}
	}
	if len(parts) == 0 {
		return "0"
	}

	return strings.Join(parts, " + ")
}
