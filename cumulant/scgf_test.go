// SPDX-License-Identifier: MIT

package cumulant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-scgf/cumulant"
	"github.com/katalvlaran/lvlath-scgf/expr"
	"github.com/katalvlaran/lvlath-scgf/matrix"
)

// germ returns rate·exp(sign·q_i) in b tilts, or the plain rate for sign 0.
func germ(t *testing.T, b int, rate string, i, sign int) expr.Series {
	t.Helper()
	r := expr.Constant(b, expr.MustParse(rate))
	if sign == 0 {
		return r
	}
	e, err := expr.Exp(b, i, sign)
	require.NoError(t, err)

	return r.Mul(e)
}

func tilted(t *testing.T, cells [2][2]expr.Series) *matrix.Dense[expr.Series] {
	t.Helper()
	wq, err := matrix.NewDense(2, 2, expr.Series{})
	require.NoError(t, err)
	for i := range cells {
		for j := range cells[i] {
			require.NoError(t, wq.Set(i, j, cells[i][j]))
		}
	}

	return wq
}

// symmetricHopping is a walker on a two-site ring jumping either way with
// rate r; every jump counts ±1.
func symmetricHopping(t *testing.T) *matrix.Dense[expr.Series] {
	hop := germ(t, 1, "r", 0, 1).Add(germ(t, 1, "r", 0, -1))
	return tilted(t, [2][2]expr.Series{
		{germ(t, 1, "-2*r", 0, 0), hop},
		{hop, germ(t, 1, "-2*r", 0, 0)},
	})
}

// oneWayRing completes a cycle 0→1→0 with rates p and q; the closing jump counts.
func oneWayRing(t *testing.T) *matrix.Dense[expr.Series] {
	return tilted(t, [2][2]expr.Series{
		{germ(t, 1, "-p", 0, 0), germ(t, 1, "p", 0, 0)},
		{germ(t, 1, "q", 0, 1), germ(t, 1, "-q", 0, 0)},
	})
}

func TestSCGFSymmetricTwoState(t *testing.T) {
	lam, err := cumulant.SCGF(symmetricHopping(t))
	require.NoError(t, err)
	assert.True(t, lam.At0().IsZero())
	c, err := lam.D(0)
	require.NoError(t, err)
	assert.True(t, c.IsZero())
	cov, err := lam.D2(0, 0)
	require.NoError(t, err)
	assertRat(t, "2*r", cov)

	res, err := cumulant.FromTilted(symmetricHopping(t), 1)
	require.NoError(t, err)
	assert.True(t, res.Current[0].IsZero())
	assertRat(t, "2*r", res.Covariance[0][0])
	assert.Nil(t, res.Chords)
}

func TestSCGFOneWayRing(t *testing.T) {
	lam, err := cumulant.SCGF(oneWayRing(t))
	require.NoError(t, err)
	c, err := lam.D(0)
	require.NoError(t, err)
	assertRat(t, "p*q/(p+q)", c)
	cov, err := lam.D2(0, 0)
	require.NoError(t, err)
	assertRat(t, "p*q*(p^2+q^2)/(p+q)^3", cov)

	// Both routes agree.
	res, err := cumulant.FromTilted(oneWayRing(t), 1)
	require.NoError(t, err)
	assertRat(t, "p*q/(p+q)", res.Current[0])
	assert.True(t, res.Covariance[0][0].Equal(cov))
}

func TestSCGFErrors(t *testing.T) {
	_, err := cumulant.SCGF(nil)
	assert.ErrorIs(t, err, cumulant.ErrNotTwoByTwo)

	big, err := matrix.NewDense(3, 3, expr.Series{})
	require.NoError(t, err)
	_, err = cumulant.SCGF(big)
	assert.ErrorIs(t, err, cumulant.ErrNotTwoByTwo)

	notGen := tilted(t, [2][2]expr.Series{
		{germ(t, 1, "-1", 0, 0), germ(t, 1, "2", 0, 1)},
		{germ(t, 1, "1", 0, 0), germ(t, 1, "-1", 0, 0)},
	})
	_, err = cumulant.SCGF(notGen)
	assert.ErrorIs(t, err, cumulant.ErrNotGenerator)

	zero := tilted(t, [2][2]expr.Series{})
	_, err = cumulant.SCGF(zero)
	assert.ErrorIs(t, err, cumulant.ErrNotGenerator)
}

func TestFromTiltedErrors(t *testing.T) {
	_, err := cumulant.FromTilted(nil, 1)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	nought := germ(t, 1, "0", 0, 0)
	zero := tilted(t, [2][2]expr.Series{{nought, nought}, {nought, nought}})
	_, err = cumulant.FromTilted(zero, 1)
	assert.ErrorIs(t, err, cumulant.ErrDegenerate)
}

// TestFromTiltedTiltCount rejects a tilt count that does not match the
// germs instead of returning zero currents.
func TestFromTiltedTiltCount(t *testing.T) {
	scalar := func(src string) expr.Series { return expr.Scalar(expr.MustParse(src)) }
	untilted := tilted(t, [2][2]expr.Series{
		{scalar("-p"), scalar("p")},
		{scalar("q"), scalar("-q")},
	})
	_, err := cumulant.FromTilted(untilted, 1)
	assert.ErrorIs(t, err, expr.ErrTiltIndex)

	_, err = cumulant.FromTilted(oneWayRing(t), 2)
	assert.ErrorIs(t, err, expr.ErrTiltIndex)

	_, err = cumulant.FromTilted(oneWayRing(t), 0)
	assert.ErrorIs(t, err, expr.ErrTiltIndex)

	// Scalar entries mix with tilted ones.
	mixed := tilted(t, [2][2]expr.Series{
		{scalar("-p"), scalar("p")},
		{germ(t, 1, "q", 0, 1), scalar("-q")},
	})
	res, err := cumulant.FromTilted(mixed, 1)
	require.NoError(t, err)
	want, err := cumulant.FromTilted(oneWayRing(t), 1)
	require.NoError(t, err)
	assert.True(t, res.Current[0].Equal(want.Current[0]))
	assert.True(t, res.Covariance[0][0].Equal(want.Covariance[0][0]))
}
