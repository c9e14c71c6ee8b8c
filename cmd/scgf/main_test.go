// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-scgf/validate"
)

const ring3 = `name: ring3
rates:
  - {from: 0, to: 1, rate: r}
  - {from: 1, to: 0, rate: r}
  - {from: 1, to: 2, rate: r}
  - {from: 2, to: 1, rate: r}
  - {from: 2, to: 0, rate: r}
  - {from: 0, to: 2, rate: r}
`

func writeModel(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", writeModel(t, ring3))
	require.NoError(t, err)
	assert.Contains(t, out, "consistent: 3 states, 3 edges, 1 chords [1→2]")
}

func TestCheckInconsistent(t *testing.T) {
	out, err := run(t, "check", writeModel(t, ring3+"chords: [[0, 1], [1, 2]]\n"))
	require.Error(t, err)
	assert.Contains(t, out, "inconsistent")
	assert.Contains(t, out, "too large")
}

func TestCheckPreset(t *testing.T) {
	out, err := run(t, "check", "--preset", "kinesin4")
	require.NoError(t, err)
	assert.Contains(t, out, "consistent: 4 states, 5 edges, 2 chords")
}

func TestChords(t *testing.T) {
	out, err := run(t, "chords", writeModel(t, ring3))
	require.NoError(t, err)
	assert.Equal(t, "chord 0: 1→2 cycle [1 2 0]\n", out)
}

func TestCumulants(t *testing.T) {
	out, err := run(t, "cumulants", writeModel(t, ring3), "--eval", "r=9", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "chord 0: 1→2 cycle [1 2 0]")
	assert.Contains(t, out, "2/9*r")
	assert.Contains(t, out, "c(r=9) = [0]")
	assert.Contains(t, out, `scgf_computations_total{outcome="ok"} 1`)
	assert.Contains(t, out, `scgf_phase_duration_seconds_count{phase="charpoly"} 1`)
}

func TestCumulantsRejected(t *testing.T) {
	_, err := run(t, "cumulants", writeModel(t, ring3+"chords: [[0, 1], [1, 2]]\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, validate.ErrInconsistent), "%v", err)
	assert.Contains(t, err.Error(), "cumulants: Compute: validate: betti")
}

// square 0-1-2-3 with diagonal 0-2; chords 0→1, 1→2 leave state 1 outside
// the remaining edges.
const isolatingChords = `rates:
  - {from: 0, to: 1, rate: r}
  - {from: 1, to: 0, rate: r}
  - {from: 1, to: 2, rate: r}
  - {from: 2, to: 1, rate: r}
  - {from: 2, to: 3, rate: r}
  - {from: 3, to: 2, rate: r}
  - {from: 3, to: 0, rate: r}
  - {from: 0, to: 3, rate: r}
  - {from: 0, to: 2, rate: r}
  - {from: 2, to: 0, rate: r}
chords: [[0, 1], [1, 2]]
`

func TestCumulantsSpanningTreeCheck(t *testing.T) {
	_, err := run(t, "cumulants", writeModel(t, isolatingChords))
	require.Error(t, err)
	assert.True(t, errors.Is(err, validate.ErrInconsistent), "%v", err)
	assert.Contains(t, err.Error(), "spanning-tree")

	out, err := run(t, "cumulants", writeModel(t, isolatingChords+"spanning_tree_check: false\n"), "--metrics")
	require.NoError(t, err)
	assert.NotContains(t, out, "cycle")
	assert.Contains(t, out, "c = [")
	assert.Contains(t, out, `scgf_computations_total{outcome="ok"} 1`)
}

func TestSourceErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		msg  string
	}{
		{"no source", []string{"check"}, "give a model file or --preset"},
		{"both", []string{"check", "--preset", "kinesin4", "x.yaml"}, "mutually exclusive"},
		{"unknown preset", []string{"chords", "--preset", "myosin"}, `unknown preset "myosin" (have kinesin4, kinesin6)`},
		{"bad eval", []string{"cumulants", "--preset", "kinesin4", "--eval", "u"}, "want sym=value"},
		{"bad eval value", []string{"cumulants", "--preset", "kinesin4", "--eval", "u=x"}, `--eval "u=x"`},
		{"missing file", []string{"check", "absent.yaml"}, "read model file"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestParseEvals(t *testing.T) {
	vals, err := parseEvals([]string{"k=2", " w = 0.5 "})
	require.NoError(t, err)
	assert.Equal(t, 2.0, vals["k"])
	assert.Equal(t, 0.5, vals["w"])
}
