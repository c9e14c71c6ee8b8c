// SPDX-License-Identifier: MIT

package expr

import (
	"strconv"
	"strings"
)

// Symbol is a named formal variable, e.g. "w_{12}" or "u".
type Symbol string

// factor is one power sym^exp of a monomial (exp > 0).
type factor struct {
	sym Symbol
	exp int
}

// monomial is a product of factors sorted by symbol name.
// The empty monomial is the constant 1.
type monomial []factor

// key returns the canonical map key of m; the empty monomial maps to "".
// Each factor is written as len:sym followed by its exponent and ';', so
// symbols containing '*' or '^' cannot collide with products or powers.
func (m monomial) key() string {
	if len(m) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, f := range m {
		sb.WriteString(strconv.Itoa(len(f.sym)))
		sb.WriteByte(':')
		sb.WriteString(string(f.sym))
		sb.WriteString(strconv.Itoa(f.exp))
		sb.WriteByte(';')
	}

	return sb.String()
}

// render writes m as "a^2*b".
func (m monomial) render(sb *strings.Builder) {
	for i, f := range m {
		if i > 0 {
			sb.WriteByte('*')
		}
		sb.WriteString(string(f.sym))
		if f.exp != 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(f.exp))
		}
	}
}

// totalDegree returns the sum of all exponents.
func (m monomial) totalDegree() int {
	d := 0
	for _, f := range m {
		d += f.exp
	}

	return d
}

// mul returns m*o by merging both sorted factor lists.
func (m monomial) mul(o monomial) monomial {
	if len(m) == 0 {
		return o
	}
	if len(o) == 0 {
		return m
	}
	out := make(monomial, 0, len(m)+len(o))
	i, j := 0, 0
	for i < len(m) && j < len(o) {
		switch {
		case m[i].sym == o[j].sym:
			out = append(out, factor{sym: m[i].sym, exp: m[i].exp + o[j].exp})
			i++
			j++
		case m[i].sym < o[j].sym:
			out = append(out, m[i])
			i++
		default:
			out = append(out, o[j])
			j++
		}
	}
	out = append(out, m[i:]...)
	out = append(out, o[j:]...)

	return out
}

// divides reports whether m divides o.
func (m monomial) divides(o monomial) bool {
	j := 0
	for _, f := range m {
		for j < len(o) && o[j].sym < f.sym {
			j++
		}
		if j == len(o) || o[j].sym != f.sym || o[j].exp < f.exp {
			return false
		}
		j++
	}

	return true
}

// quo returns o/m; the caller guarantees m.divides(o).
func (m monomial) quo(o monomial) monomial {
	out := make(monomial, 0, len(o))
	i := 0
	for _, f := range o {
		if i < len(m) && m[i].sym == f.sym {
			if e := f.exp - m[i].exp; e > 0 {
				out = append(out, factor{sym: f.sym, exp: e})
			}
			i++
			continue
		}
		out = append(out, f)
	}

	return out
}

// degree returns the exponent of s in m.
func (m monomial) degree(s Symbol) int {
	for _, f := range m {
		if f.sym == s {
			return f.exp
		}
	}

	return 0
}

// without returns m with every power of s removed.
func (m monomial) without(s Symbol) monomial {
	for i, f := range m {
		if f.sym == s {
			out := make(monomial, 0, len(m)-1)
			out = append(out, m[:i]...)
			return append(out, m[i+1:]...)
		}
	}

	return m
}

// compareLex orders monomials lexicographically, symbols ranked by name
// (the alphabetically first symbol is the most significant).
// It returns -1, 0 or +1.
func compareLex(a, b monomial) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].sym == b[j].sym:
			if a[i].exp != b[j].exp {
				if a[i].exp > b[j].exp {
					return 1
				}
				return -1
			}
			i++
			j++
		case a[i].sym < b[j].sym:
			// a carries a more significant symbol that b lacks.
			return 1
		default:
			return -1
		}
	}
	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	}

	return 0
}
