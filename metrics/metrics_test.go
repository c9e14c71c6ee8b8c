// SPDX-License-Identifier: MIT

package metrics_test

import (
	"bytes"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-scgf/core"
	"github.com/katalvlaran/lvlath-scgf/cumulant"
	"github.com/katalvlaran/lvlath-scgf/expr"
	"github.com/katalvlaran/lvlath-scgf/metrics"
)

func TestPhaseObserver(t *testing.T) {
	r := metrics.NewRegistry()
	r.Phase(cumulant.PhaseCharPoly, 20*time.Millisecond)
	r.Phase(cumulant.PhaseCharPoly, 30*time.Millisecond)

	obs, err := r.PhaseDuration.GetMetricWithLabelValues(cumulant.PhaseCharPoly)
	require.NoError(t, err)
	var metric dto.Metric
	require.NoError(t, obs.(prometheus.Metric).Write(&metric))
	assert.Equal(t, uint64(2), metric.GetHistogram().GetSampleCount())
	assert.InDelta(t, 0.05, metric.GetHistogram().GetSampleSum(), 1e-9)
}

func TestComputeFeedsRegistry(t *testing.T) {
	m, err := core.FromRates(map[core.Edge]expr.Rat{
		{From: 0, To: 1}: expr.Sym("k"), {From: 1, To: 0}: expr.Sym("w"),
		{From: 1, To: 2}: expr.Sym("k"), {From: 2, To: 1}: expr.Sym("w"),
		{From: 2, To: 0}: expr.Sym("k"), {From: 0, To: 2}: expr.Sym("w"),
	})
	require.NoError(t, err)

	r := metrics.NewRegistry()
	_, err = cumulant.Compute(m, []core.Edge{{From: 0, To: 1}}, cumulant.WithObserver(r))
	require.NoError(t, err)
	r.RecordRun(3, 1, metrics.OutcomeOK)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "# TYPE scgf_phase_duration_seconds histogram")
	assert.Contains(t, out, `scgf_phase_duration_seconds_count{phase="done"} 1`)
	assert.Contains(t, out, `scgf_phase_duration_seconds_count{phase="charpoly"} 1`)
	assert.Contains(t, out, `scgf_computations_total{outcome="ok"} 1`)
	assert.Contains(t, out, "scgf_last_run_states 3")
	assert.NotContains(t, out, `phase="simplify-current"`)
}

// TestConcurrentRuns records from several goroutines while another one
// renders; run with -race.
func TestConcurrentRuns(t *testing.T) {
	r := metrics.NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				r.Phase(cumulant.PhaseCurrent, time.Millisecond)
				r.RecordRun(4, 2, metrics.OutcomeOK)
				assert.NoError(t, r.WriteText(io.Discard))
			}
		}()
	}
	wg.Wait()

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	assert.Contains(t, buf.String(), `scgf_computations_total{outcome="ok"} 400`)
	assert.Contains(t, buf.String(), `scgf_phase_duration_seconds_count{phase="current"} 400`)
}
