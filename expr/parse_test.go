package expr_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-scgf/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseLiterals checks that decimal literals are read exactly.
func TestParseLiterals(t *testing.T) {
	cases := map[string]expr.Rat{
		"0.15":    expr.RatFrac(3, 20),
		"4.9e11":  expr.RatInt(490000000000),
		"2.5E-2":  expr.RatFrac(1, 40),
		"3/4":     expr.RatFrac(3, 4),
		"-2^2":    expr.RatInt(-4),
		"2^-1":    expr.RatFrac(1, 2),
		"(1+1)^3": expr.RatInt(8),
	}
	for src, want := range cases {
		got, err := expr.Parse(src)
		require.NoError(t, err, src)
		assert.True(t, got.Equal(want), "%s = %s", src, got)
	}
}

// TestParseSymbols accepts LaTeX-flavoured identifiers used by rate tables.
func TestParseSymbols(t *testing.T) {
	r, err := expr.Parse(`w_{12}*\Delta\mu + Θ'`)
	require.NoError(t, err)
	assert.Equal(t, []expr.Symbol{`\Delta\mu`, "w_{12}", "Θ'"}, r.Vars())
}

// TestParseErrors reports sentinel errors for malformed input.
func TestParseErrors(t *testing.T) {
	for _, src := range []string{"", "a +", "(a", "a b", "2 $ 3", ")"} {
		_, err := expr.Parse(src)
		require.ErrorIs(t, err, expr.ErrSyntax, src)
	}
	_, err := expr.Parse("a^b")
	require.ErrorIs(t, err, expr.ErrExponent)
	_, err = expr.Parse("a^(1/2)")
	require.ErrorIs(t, err, expr.ErrExponent)
	_, err = expr.Parse("a/(b-b)")
	require.ErrorIs(t, err, expr.ErrDivisionByZero)
}

// TestParseSubst builds substitution tables from string maps.
func TestParseSubst(t *testing.T) {
	s, err := expr.ParseSubst(map[string]string{"w_{12}": "2*k/(1+u^3)"})
	require.NoError(t, err)
	require.Contains(t, s, expr.Symbol("w_{12}"))
	assert.Equal(t, []expr.Symbol{"w_{12}"}, s.Keys())

	_, err = expr.ParseSubst(map[string]string{"1x": "2"})
	require.ErrorIs(t, err, expr.ErrSyntax)
}
