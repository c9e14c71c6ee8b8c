// SPDX-License-Identifier: MIT

package cumulant

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-scgf/expr"
	"github.com/katalvlaran/lvlath-scgf/validate"
)

// Phase names reported to an Observer, in the order they occur.
// The simplify phases are reported only when simplification is enabled.
const (
	PhaseGenerator          = "generator"
	PhaseCharPoly           = "charpoly"
	PhaseCurrent            = "current"
	PhaseSimplifyCurrent    = "simplify-current"
	PhaseCovariance         = "covariance"
	PhaseSimplifyCovariance = "simplify-covariance"
	PhaseDone               = "done"
)

// Observer receives the duration of every finished phase. PhaseDone carries
// the total. Observers must not block.
type Observer interface {
	Phase(name string, elapsed time.Duration)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(name string, elapsed time.Duration)

// Phase calls f.
func (f ObserverFunc) Phase(name string, elapsed time.Duration) { f(name, elapsed) }

// Option configures Compute and FromTilted.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	param      expr.Subst
	simp       Simplification
	logger     *zap.Logger
	observer   Observer
	validation []validate.Option
}

// WithParam sets the parametrization substituted into the results.
func WithParam(p expr.Subst) Option {
	return func(o *Options) { o.param = p }
}

// WithSimplification selects the simplification mode.
func WithSimplification(s Simplification) Option {
	return func(o *Options) { o.simp = s }
}

// WithLogger sets the logger for phase records and validation diagnostics.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver registers a phase observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.observer = obs }
}

// WithValidation forwards options to the validator.
func WithValidation(opts ...validate.Option) Option {
	return func(o *Options) { o.validation = append(o.validation, opts...) }
}

func gatherOptions(opts []Option) Options {
	o := Options{simp: SkipSimplification(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// clock times consecutive phases.
type clock struct {
	o           *Options
	start, mark time.Time
}

func newClock(o *Options) *clock {
	now := time.Now()
	return &clock{o: o, start: now, mark: now}
}

// phase closes the running phase under name.
func (c *clock) phase(name string) {
	now := time.Now()
	elapsed := now.Sub(c.mark)
	if name == PhaseDone {
		elapsed = now.Sub(c.start)
	}
	c.mark = now
	c.o.logger.Debug("phase finished",
		zap.String("phase", name),
		zap.Duration("elapsed", elapsed),
		zap.Duration("total", now.Sub(c.start)),
	)
	if c.o.observer != nil {
		c.o.observer.Phase(name, elapsed)
	}
}
