// SPDX-License-Identifier: MIT

package cumulant_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvlath-scgf/core"
	"github.com/katalvlaran/lvlath-scgf/cumulant"
	"github.com/katalvlaran/lvlath-scgf/expr"
	"github.com/katalvlaran/lvlath-scgf/validate"
)

func model(t *testing.T, rates map[core.Edge]string) *core.Model {
	t.Helper()
	in := make(map[core.Edge]expr.Rat, len(rates))
	for e, s := range rates {
		in[e] = expr.MustParse(s)
	}
	m, err := core.FromRates(in)
	require.NoError(t, err)

	return m
}

func ring3(t *testing.T, a, b, c, d, e, f string) *core.Model {
	return model(t, map[core.Edge]string{
		{From: 0, To: 1}: a, {From: 1, To: 0}: b,
		{From: 1, To: 2}: c, {From: 2, To: 1}: d,
		{From: 2, To: 0}: e, {From: 0, To: 2}: f,
	})
}

func assertRat(t *testing.T, want string, got expr.Rat) {
	t.Helper()
	assert.True(t, got.Equal(expr.MustParse(want)), "got %s, want %s", got, want)
}

var chord01 = []core.Edge{{From: 0, To: 1}}

func TestComputeRing3Current(t *testing.T) {
	res, err := cumulant.Compute(ring3(t, "a", "b", "c", "d", "e", "f"), chord01)
	require.NoError(t, err)
	require.Equal(t, 1, res.Len())
	assertRat(t, "(a*c*e - b*d*f)/(a*c+a*d+a*e+b*d+b*e+b*f+c*e+c*f+d*f)", res.Current[0])
	assert.Equal(t, []expr.Symbol{"q_{0}"}, res.Tilts)
	assert.Equal(t, chord01, res.Chords)
}

func TestComputeUniformRing(t *testing.T) {
	res, err := cumulant.Compute(ring3(t, "r", "r", "r", "r", "r", "r"), chord01)
	require.NoError(t, err)
	assert.True(t, res.Current[0].IsZero())
	assertRat(t, "2*r/9", res.Covariance[0][0])

	d, err := res.Diffusion(0)
	require.NoError(t, err)
	assertRat(t, "r/9", d)
}

func TestComputeBiasedRing(t *testing.T) {
	res, err := cumulant.Compute(ring3(t, "k", "w", "k", "w", "k", "w"), []core.Edge{{From: 2, To: 0}})
	require.NoError(t, err)
	assertRat(t, "(k-w)/3", res.Current[0])
	c, cov, err := res.Float(map[expr.Symbol]float64{"k": 2, "w": 1})
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, c[0], 1e-12)
	assert.Greater(t, cov[0][0], 0.0)

	fano, err := res.Fano(0)
	require.NoError(t, err)
	f, err := fano.Float(map[expr.Symbol]float64{"k": 2, "w": 1})
	require.NoError(t, err)
	assert.InDelta(t, cov[0][0]/c[0], f, 1e-12)
}

func TestComputeTwoChords(t *testing.T) {
	// Square with a diagonal, unit rates except a driven edge 0→1.
	m := model(t, map[core.Edge]string{
		{From: 0, To: 1}: "k", {From: 1, To: 0}: "1",
		{From: 1, To: 2}: "1", {From: 2, To: 1}: "1",
		{From: 2, To: 3}: "1", {From: 3, To: 2}: "1",
		{From: 3, To: 0}: "1", {From: 0, To: 3}: "1",
		{From: 0, To: 2}: "1", {From: 2, To: 0}: "1",
	})
	chords := []core.Edge{{From: 1, To: 2}, {From: 2, To: 3}}
	res, err := cumulant.Compute(m, chords)
	require.NoError(t, err)
	require.Equal(t, 2, res.Len())
	assertRat(t, res.Covariance[0][1].String(), res.Covariance[1][0])

	// At k = 1 the model is in equilibrium: no current.
	eq, err := res.Subst(expr.Subst{"k": expr.RatInt(1)})
	require.NoError(t, err)
	assert.True(t, eq.Cancel().Current[0].IsZero())
	assert.True(t, eq.Cancel().Current[1].IsZero())
}

func TestComputeRejectsInconsistent(t *testing.T) {
	two := model(t, map[core.Edge]string{{From: 0, To: 1}: "r", {From: 1, To: 0}: "r"})
	res, err := cumulant.Compute(two, chord01)
	assert.Nil(t, res)
	require.ErrorIs(t, err, validate.ErrInconsistent)
	var ve *validate.Error
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, validate.CheckBetti, ve.Check)
	assert.Equal(t, validate.ReasonTooLarge, ve.Reason)

	// The spanning-tree check can be switched off, the Betti check cannot.
	_, err = cumulant.Compute(two, chord01, cumulant.WithValidation(validate.WithoutSpanningTreeCheck()))
	assert.ErrorIs(t, err, validate.ErrInconsistent)
}

func TestComputeParam(t *testing.T) {
	m := ring3(t, "a", "b", "c", "d", "e", "f")
	param := expr.Subst{
		"a": expr.MustParse("2*x"), "c": expr.MustParse("2*x"), "e": expr.MustParse("2*x"),
		"b": expr.MustParse("x"), "d": expr.MustParse("x"), "f": expr.MustParse("x"),
	}
	res, err := cumulant.Compute(m, chord01, cumulant.WithParam(param))
	require.NoError(t, err)
	assertRat(t, "x/3", res.Current[0])

	direct, err := cumulant.Compute(ring3(t, "2*x", "x", "2*x", "x", "2*x", "x"), chord01)
	require.NoError(t, err)
	assert.True(t, res.Equal(direct))
}

// TestSimplificationIdempotence: a mutually inverse transform pair does not
// change the results, only the route to them.
func TestSimplificationIdempotence(t *testing.T) {
	m := ring3(t, "a", "b", "c", "d", "e", "f")
	param := expr.Subst{
		"a": expr.MustParse("u*v"), "b": expr.MustParse("1/u"),
		"c": expr.MustParse("2"), "d": expr.MustParse("3/u"),
		"e": expr.MustParse("u+1"), "f": expr.MustParse("1"),
	}
	simp := expr.Subst{"u": expr.MustParse("1/s")}
	unsimp := expr.Subst{"s": expr.MustParse("1/u")}

	plain, err := cumulant.Compute(m, chord01, cumulant.WithParam(param))
	require.NoError(t, err)
	staged, err := cumulant.Compute(m, chord01,
		cumulant.WithParam(param),
		cumulant.WithSimplification(cumulant.ApplyTransform(simp, unsimp)),
	)
	require.NoError(t, err)
	assert.True(t, plain.Equal(staged), "plain\n%s\nstaged\n%s", plain, staged)
	assert.NotContains(t, staged.String(), "s")
}

// finishes runs f and fails the test when it takes longer than limit.
func finishes(t *testing.T, limit time.Duration, f func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		f()
	}()
	select {
	case <-done:
	case <-time.After(limit):
		t.Fatalf("still running after %s", limit)
	}
}

// TestComputeRing3Staged cancels every covariance term of the fully
// symbolic ring on its own.
func TestComputeRing3Staged(t *testing.T) {
	m := ring3(t, "a", "b", "c", "d", "e", "f")
	var (
		staged, plain *cumulant.Result
		errS, errP    error
	)
	finishes(t, 30*time.Second, func() {
		staged, errS = cumulant.Compute(m, chord01, cumulant.WithSimplification(cumulant.ApplyTransform(nil, nil)))
		plain, errP = cumulant.Compute(m, chord01)
	})
	require.NoError(t, errS)
	require.NoError(t, errP)
	assert.True(t, staged.Equal(plain))
	assertRat(t, "(a*c*e - b*d*f)/(a*c+a*d+a*e+b*d+b*e+b*f+c*e+c*f+d*f)", staged.Current[0])

	// The cancelled denominator is a power of the normalization.
	sigma := expr.MustParse("a*c+a*d+a*e+b*d+b*e+b*f+c*e+c*f+d*f").Num()
	den := staged.Covariance[0][0].Den()
	_, ok := sigma.Pow(3).DivExact(den)
	assert.True(t, ok, "den = %s", den)
}

func TestComputeObserverAndLogs(t *testing.T) {
	var phases []string
	obs := cumulant.ObserverFunc(func(name string, elapsed time.Duration) {
		assert.GreaterOrEqual(t, elapsed, time.Duration(0))
		phases = append(phases, name)
	})
	sink, logs := observer.New(zapcore.DebugLevel)

	_, err := cumulant.Compute(ring3(t, "a", "b", "c", "d", "e", "f"), chord01,
		cumulant.WithObserver(obs),
		cumulant.WithLogger(zap.New(sink)),
		cumulant.WithSimplification(cumulant.ApplyTransform(nil, nil)),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		cumulant.PhaseGenerator, cumulant.PhaseCharPoly, cumulant.PhaseCurrent,
		cumulant.PhaseSimplifyCurrent, cumulant.PhaseCovariance,
		cumulant.PhaseSimplifyCovariance, cumulant.PhaseDone,
	}, phases)
	assert.Equal(t, len(phases), logs.FilterMessage("phase finished").Len())

	phases = nil
	_, err = cumulant.Compute(ring3(t, "a", "b", "c", "d", "e", "f"), chord01, cumulant.WithObserver(obs))
	require.NoError(t, err)
	assert.NotContains(t, phases, cumulant.PhaseSimplifyCurrent)
}

func TestResultHelpers(t *testing.T) {
	res, err := cumulant.Compute(ring3(t, "k", "w", "k", "w", "k", "w"), chord01)
	require.NoError(t, err)

	_, err = res.Diffusion(1)
	assert.ErrorIs(t, err, cumulant.ErrIndex)
	_, err = res.Fano(-1)
	assert.ErrorIs(t, err, cumulant.ErrIndex)

	eq, err := res.Subst(expr.Subst{"w": expr.MustParse("k")})
	require.NoError(t, err)
	_, err = eq.Fano(0)
	assert.ErrorIs(t, err, expr.ErrDivisionByZero)

	_, _, err = res.Float(map[expr.Symbol]float64{"k": 1})
	assert.ErrorIs(t, err, expr.ErrUnboundSymbol)
}
