// SPDX-License-Identifier: MIT

package modelfile_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-scgf/core"
	"github.com/katalvlaran/lvlath-scgf/cumulant"
	"github.com/katalvlaran/lvlath-scgf/expr"
	"github.com/katalvlaran/lvlath-scgf/modelfile"
)

func assertRat(t *testing.T, want string, got expr.Rat) {
	t.Helper()
	assert.True(t, got.Equal(expr.MustParse(want)), "got %s, want %s", got, want)
}

func TestLoadRing3(t *testing.T) {
	f, err := modelfile.Load(filepath.Join("testdata", "ring3.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "uniform-ring", f.Name)
	assert.Equal(t, 3, f.States)
	assert.Nil(t, f.SpanningTreeCheck)

	m, err := f.Model()
	require.NoError(t, err)
	assert.Equal(t, "uniform-ring", m.Name())
	assert.Equal(t, 6, m.EdgeCount())

	chords, err := f.ResolveChords(m)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1}}, chords)

	opts, err := f.Options()
	require.NoError(t, err)
	assert.Empty(t, opts)
	assert.Empty(t, f.ValidateOptions())

	res, err := cumulant.Compute(m, chords, opts...)
	require.NoError(t, err)
	assertRat(t, "2*r/9", res.Covariance[0][0])
}

func TestLoadBiasedDefaults(t *testing.T) {
	f, err := modelfile.Load(filepath.Join("testdata", "biased.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "biased", f.Name, "name falls back to the file name")
	require.NotNil(t, f.SpanningTreeCheck)
	assert.False(t, *f.SpanningTreeCheck)
	assert.Len(t, f.ValidateOptions(), 1)

	m, err := f.Model()
	require.NoError(t, err)
	chords, err := f.ResolveChords(m)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 1, To: 2}}, chords, "omitted chords are the spanning-tree complement")

	opts, err := f.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 3)

	res, err := cumulant.Compute(m, chords, opts...)
	require.NoError(t, err)
	assertRat(t, "w/3", res.Current[0])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := modelfile.Load(filepath.Join("testdata", "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read model file")
}

func TestParseRejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
		msg  string
	}{
		{"no rates", "name: x\n", modelfile.ErrInvalid, "Rates: required"},
		{"negative state", "rates: [{from: -1, to: 0, rate: a}]\n", modelfile.ErrInvalid, "Rates[0].From: gte=0"},
		{"self loop", "rates: [{from: 1, to: 1, rate: a}]\n", modelfile.ErrInvalid, "Rates[0].To: nefield=From"},
		{"empty rate", "rates: [{from: 0, to: 1}]\n", modelfile.ErrInvalid, "Rates[0].Rate: required"},
		{"short chord", "rates: [{from: 0, to: 1, rate: a}]\nchords: [[0]]\n", modelfile.ErrInvalid, "Chords[0]: len=2"},
		{"one state", "states: 1\nrates: [{from: 0, to: 1, rate: a}]\n", modelfile.ErrInvalid, "States: min=2"},
		{"half simplify", "rates: [{from: 0, to: 1, rate: a}]\nsimplify: {simp: {u: 1/s}}\n", modelfile.ErrInvalid, "Simplify.Unsimp: required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := modelfile.Parse([]byte(tc.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "%v", err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestParseBadYAML(t *testing.T) {
	_, err := modelfile.Parse([]byte("rates: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode model file")
}

func TestModelErrors(t *testing.T) {
	f, err := modelfile.Parse([]byte("rates: [{from: 0, to: 1, rate: 'a +'}]\n"))
	require.NoError(t, err)
	_, err = f.Model()
	assert.True(t, errors.Is(err, expr.ErrSyntax), "%v", err)

	f, err = modelfile.Parse([]byte("states: 4\nrates: [{from: 0, to: 1, rate: a}, {from: 1, to: 0, rate: b}]\n"))
	require.NoError(t, err)
	_, err = f.Model()
	assert.True(t, errors.Is(err, modelfile.ErrStateCount), "%v", err)
}

func TestOptionsErrors(t *testing.T) {
	f, err := modelfile.Parse([]byte("rates: [{from: 0, to: 1, rate: a}]\nparam: {a: '2*'}\n"))
	require.NoError(t, err)
	_, err = f.Options()
	assert.True(t, errors.Is(err, expr.ErrSyntax), "%v", err)

	f, err = modelfile.Parse([]byte("rates: [{from: 0, to: 1, rate: a}]\nsimplify: {simp: {u: 1/s}, unsimp: {'1x': u}}\n"))
	require.NoError(t, err)
	_, err = f.Options()
	assert.True(t, errors.Is(err, expr.ErrSyntax), "%v", err)
}

func TestOptionsExtraAppended(t *testing.T) {
	f, err := modelfile.Parse([]byte("rates: [{from: 0, to: 1, rate: a}]\n"))
	require.NoError(t, err)
	opts, err := f.Options(cumulant.WithParam(expr.Subst{"a": expr.RatInt(1)}))
	require.NoError(t, err)
	assert.Len(t, opts, 1)
}
