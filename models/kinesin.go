// SPDX-License-Identifier: MIT

package models

import (
	"fmt"

	"github.com/katalvlaran/lvlath-scgf/core"
	"github.com/katalvlaran/lvlath-scgf/expr"
)

// Preset bundles a model, its chord choice and an exact parametrization.
type Preset struct {
	Name   string
	Model  *core.Model
	Chords []core.Edge
	Param  expr.Subst
}

// constant is one named constant of a parametrization table; its value may
// refer to constants listed before it.
type constant struct {
	name, value string
}

// table resolves constants in order and substitutes them into the rates.
func table(consts []constant, rates map[expr.Symbol]string) (expr.Subst, error) {
	env := expr.Subst{}
	for _, c := range consts {
		v, err := expr.Parse(c.value)
		if err != nil {
			return nil, fmt.Errorf("constant %s: %w", c.name, err)
		}
		if v, err = v.Subst(env); err != nil {
			return nil, fmt.Errorf("constant %s: %w", c.name, err)
		}
		env[expr.Symbol(c.name)] = v.Cancel()
	}
	out := make(expr.Subst, len(rates))
	for sym, src := range rates {
		v, err := expr.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("rate %s: %w", sym, err)
		}
		if v, err = v.Subst(env); err != nil {
			return nil, fmt.Errorf("rate %s: %w", sym, err)
		}
		out[sym] = v.Cancel()
	}

	return out, nil
}

// Load factors: with u = e^{f/20}, e^{0.15 f} = u³, e^{0.25 f} = u⁵,
// e^{−0.65 f} = u^{−13} and e^{0.35 f} = u⁷. v = e^{Δμ}.

var kinesin4Constants = []constant{
	{"K", "490000000000"},
	{"k13", "300000"},
	{"k31", "24/100"},
	{"k14", "100"},
	{"k41", "2"},
	{"k43", "251608/10^11"},
	{"k34", "K*k43*k14*k31/(k41*k13)"},
	{"k32", "(k31/k13)^2*k14"},
	{"k23", "k41"},
	{"k21", "k43"},
	{"k12", "k34"},
}

var kinesin4Rates = map[expr.Symbol]string{
	Rate(0, 2): "k13*u^-13", // mechanical step
	Rate(2, 0): "k31*u^7",
	Rate(0, 1): "2*k12/(1+u^3)", // ADP, P attachment
	Rate(1, 0): "2*k21/(1+u^3)",
	Rate(1, 2): "2*k23*v/(K*(1+u^5))", // ATP attachment
	Rate(2, 1): "2*k32/(1+u^5)",
	Rate(2, 3): "2*k34/(1+u^3)", // ADP, P attachment
	Rate(3, 2): "2*k43/(1+u^3)",
	Rate(3, 0): "2*k41*v/(K*(1+u^5))", // ATP attachment
	Rate(0, 3): "2*k14/(1+u^5)",
	Rate(1, 3): "0",
	Rate(3, 1): "0",
}

var kinesin6Constants = []constant{
	{"K", "490000000000"},
	{"k25", "300000"},
	{"k52", "24/100"},
	{"k56", "100"},
	{"k65", "5/196"},
	{"k16", "2/100"},
	{"k12", "2"},
	{"k21", "k56"},
	{"k23", "k56"},
	{"k34", "k56"},
	{"k32", "k65"},
	{"k43", "k16"},
	{"k45", "k12"},
	{"k54", "k21*(k52/k25)^2"},
	{"k61", "k56"},
}

var kinesin6Rates = map[expr.Symbol]string{
	Rate(1, 4): "k25*u^-13", // mechanical step
	Rate(4, 1): "k52*u^7",
	Rate(0, 1): "2*k12*v/(K*(1+u^5))", // ATP attachment
	Rate(1, 0): "2*k21/(1+u^5)",
	Rate(0, 5): "2*k16/(1+u^3)", // P attachment
	Rate(5, 0): "2*k61/(1+u^3)",
	Rate(3, 4): "2*k45*v/(K*(1+u^5))", // ATP attachment
	Rate(4, 3): "2*k54/(1+u^5)",
	Rate(3, 2): "2*k43/(1+u^3)", // P attachment
	Rate(2, 3): "2*k34/(1+u^3)",
	Rate(1, 2): "2*k23/(1+u^3)",
	Rate(2, 1): "2*k32/(1+u^3)", // ADP attachment
	Rate(4, 5): "2*k56/(1+u^3)",
	Rate(5, 4): "2*k65/(1+u^3)", // ADP attachment
}

// Kinesin4 returns the 4-state kinesin network of Altaner and Vollmer:
// a square 0–1–2–3 with the mechanical diagonal 0–2 and chords 0→2, 1→2.
func Kinesin4() (*core.Model, []core.Edge, error) {
	m, err := FromPairs([][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {2, 3}}, core.WithName("kinesin4"))
	if err != nil {
		return nil, nil, err
	}
	return m, []core.Edge{{From: 0, To: 2}, {From: 1, To: 2}}, nil
}

// Kinesin6 returns the 6-state kinesin network of Liepelt and Lipowsky:
// two chemical cycles sharing the mechanical step 1–4, chords 1→4, 3→4.
func Kinesin6() (*core.Model, []core.Edge, error) {
	m, err := FromPairs([][2]int{{0, 1}, {0, 5}, {1, 2}, {1, 4}, {2, 3}, {3, 4}, {4, 5}}, core.WithName("kinesin6"))
	if err != nil {
		return nil, nil, err
	}
	return m, []core.Edge{{From: 1, To: 4}, {From: 3, To: 4}}, nil
}

// Kinesin4Exact is the exact parametrization of Kinesin4 in u and v.
func Kinesin4Exact() (expr.Subst, error) { return table(kinesin4Constants, kinesin4Rates) }

// Kinesin6Exact is the exact parametrization of Kinesin6 in u and v.
func Kinesin6Exact() (expr.Subst, error) { return table(kinesin6Constants, kinesin6Rates) }

// UVTransform returns a mutually inverse pair of substitutions that moves
// expressions from u to s = 1/u and back. Negative powers of u from the
// mechanical step become polynomial in s.
func UVTransform() (simp, unsimp expr.Subst) {
	return expr.Subst{"u": expr.MustParse("1/s")}, expr.Subst{"s": expr.MustParse("1/u")}
}

// Presets returns every named preset, keyed by name.
func Presets() (map[string]Preset, error) {
	out := make(map[string]Preset, 2)
	for _, p := range []struct {
		name  string
		build func() (*core.Model, []core.Edge, error)
		param func() (expr.Subst, error)
	}{
		{"kinesin4", Kinesin4, Kinesin4Exact},
		{"kinesin6", Kinesin6, Kinesin6Exact},
	} {
		m, chords, err := p.build()
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", p.name, err)
		}
		param, err := p.param()
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", p.name, err)
		}
		out[p.name] = Preset{Name: p.name, Model: m, Chords: chords, Param: param}
	}

	return out, nil
}
