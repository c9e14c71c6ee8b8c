package expr_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-scgf/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSeriesExpInverse checks exp(q)·exp(-q) = 1 to second order.
func TestSeriesExpInverse(t *testing.T) {
	up, err := expr.Exp(2, 1, +1)
	require.NoError(t, err)
	down, err := expr.Exp(2, 1, -1)
	require.NoError(t, err)

	assert.True(t, up.Mul(down).Equal(expr.Constant(2, expr.RatInt(1))))

	_, err = expr.Exp(2, 2, +1)
	require.ErrorIs(t, err, expr.ErrTiltIndex)
}

// TestSeriesDerivatives reads first and second partials at zero tilt.
func TestSeriesDerivatives(t *testing.T) {
	a := expr.Sym("a")
	e0, _ := expr.Exp(2, 0, +1)
	e1, _ := expr.Exp(2, 1, -1)
	s := e0.Mul(e1).Scale(a) // a·exp(q0 - q1)

	d0, err := s.D(0)
	require.NoError(t, err)
	assert.True(t, d0.Equal(a))

	d1, _ := s.D(1)
	assert.True(t, d1.Equal(a.Neg()))

	d00, _ := s.D2(0, 0)
	assert.True(t, d00.Equal(a))

	d01, _ := s.D2(0, 1)
	assert.True(t, d01.Equal(a.Neg()))

	d10, _ := s.D2(1, 0)
	assert.True(t, d10.Equal(d01))

	assert.True(t, s.At0().Equal(a))

	_, err = s.D2(0, 5)
	require.ErrorIs(t, err, expr.ErrTiltIndex)
}

// TestSeriesScalarBroadcast mixes scalars with multivariate germs.
func TestSeriesScalarBroadcast(t *testing.T) {
	e, _ := expr.Exp(1, 0, +1)
	two := expr.Scalar(expr.RatInt(2))

	sum := e.Add(two)
	assert.True(t, sum.At0().Equal(expr.RatInt(3)))
	assert.Equal(t, 1, sum.Vars())

	prod := two.Mul(e)
	d, _ := prod.D(0)
	assert.True(t, d.Equal(expr.RatInt(2)))
	assert.True(t, prod.Sub(e).Sub(e).IsZero())
}
