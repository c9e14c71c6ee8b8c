// SPDX-License-Identifier: MIT

// Package metrics records the phase timings of cumulant computations as
// Prometheus metrics and renders them in the text exposition format.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/lvlath-scgf/cumulant"
)

const namespace = "scgf"

// Outcome labels of ComputationsTotal.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Registry holds the engine metrics on a private Prometheus registry.
// All methods are safe for concurrent use.
type Registry struct {
	PhaseDuration     *prometheus.HistogramVec
	ComputationsTotal *prometheus.CounterVec
	LastRunStates     prometheus.Gauge
	LastRunChords     prometheus.Gauge

	registry *prometheus.Registry
}

var _ cumulant.Observer = (*Registry)(nil)

// NewRegistry creates and registers all metrics.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{
		PhaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "phase_duration_seconds",
			Help:      "Duration of each phase of a cumulant computation.",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120, 600},
		}, []string{"phase"}),
		ComputationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "computations_total",
			Help:      "Cumulant computations by outcome.",
		}, []string{"outcome"}),
		LastRunStates: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_states",
			Help:      "Number of states of the last model computed.",
		}),
		LastRunChords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_chords",
			Help:      "Number of chords of the last model computed.",
		}),
		registry: reg,
	}
	reg.MustRegister(r.PhaseDuration, r.ComputationsTotal, r.LastRunStates, r.LastRunChords)

	return r
}

// Phase implements cumulant.Observer.
func (r *Registry) Phase(name string, elapsed time.Duration) {
	r.PhaseDuration.WithLabelValues(name).Observe(elapsed.Seconds())
}

// RecordRun counts a finished computation of a model with the given size.
func (r *Registry) RecordRun(states, chords int, outcome string) {
	r.ComputationsTotal.WithLabelValues(outcome).Inc()
	r.LastRunStates.Set(float64(states))
	r.LastRunChords.Set(float64(chords))
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// WriteText gathers every metric and writes it in the Prometheus text format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
