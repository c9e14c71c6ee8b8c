// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvlath-scgf/core"
	"github.com/katalvlaran/lvlath-scgf/cumulant"
	"github.com/katalvlaran/lvlath-scgf/expr"
	"github.com/katalvlaran/lvlath-scgf/metrics"
	"github.com/katalvlaran/lvlath-scgf/spanning"
	"github.com/katalvlaran/lvlath-scgf/validate"
)

// app carries the state shared by all subcommands.
type app struct {
	verbose bool
	preset  string
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "scgf",
		Short: "Scaled cumulants of chord currents of Markov jump models",
		Long: `scgf computes the mean currents and the covariance matrix of the
chord currents of a continuous-time Markov jump process, exactly and
symbolically, from the characteristic polynomial of its tilted generator.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(a.verbose)
			if err != nil {
				return errors.Wrap(err, "init logger")
			}
			a.logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "development logging with phase timings")
	root.PersistentFlags().StringVar(&a.preset, "preset", "", "use a built-in model (kinesin4, kinesin6) instead of a file")

	root.AddCommand(a.checkCmd(), a.chordsCmd(), a.cumulantsCmd())

	return root
}

// newLogger returns a development logger when verbose, otherwise a
// production logger that only reports warnings.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.Encoding = "console"

	return cfg.Build()
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [model.yaml]",
		Short: "Check that a model and its chords are consistent",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSource(args, a.preset)
			if err != nil {
				return err
			}
			opts := append([]validate.Option{validate.WithLogger(a.logger)}, src.validate...)
			if err := validate.Validate(src.model, src.chords, opts...); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "inconsistent: %v\n", err)
				return errors.Wrap(err, "check")
			}
			st := src.model.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "consistent: %d states, %d edges, %d chords %v\n",
				st.StateCount, st.UndirectedCount, len(src.chords), src.chords)
			return nil
		},
	}
}

func (a *app) chordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chords [model.yaml]",
		Short: "Print a canonical chord set and its fundamental cycles",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSource(args, a.preset)
			if err != nil {
				return err
			}
			chords, err := spanning.Chords(src.model)
			if err != nil {
				return errors.Wrap(err, "chords")
			}
			return writeCycles(cmd.OutOrStdout(), src, chords)
		},
	}
}

func writeCycles(w io.Writer, src *source, chords []core.Edge) error {
	cycles, err := spanning.FundamentalCycles(src.model, chords)
	if err != nil {
		return errors.Wrap(err, "fundamental cycles")
	}
	for i, c := range chords {
		fmt.Fprintf(w, "chord %d: %v cycle %v\n", i, c, cycles[i])
	}

	return nil
}

func (a *app) cumulantsCmd() *cobra.Command {
	var (
		evals       []string
		withMetrics bool
	)
	cmd := &cobra.Command{
		Use:   "cumulants [model.yaml]",
		Short: "Compute the current vector and covariance matrix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseEvals(evals)
			if err != nil {
				return err
			}
			src, err := loadSource(args, a.preset)
			if err != nil {
				return err
			}
			reg := metrics.NewRegistry()
			opts := append([]cumulant.Option{
				cumulant.WithLogger(a.logger),
				cumulant.WithObserver(reg),
			}, src.opts...)

			res, err := cumulant.Compute(src.model, src.chords, opts...)
			reg.RecordRun(src.model.StateCount(), len(src.chords), outcome(err))
			if err != nil {
				return errors.Wrap(err, "cumulants")
			}
			out := cmd.OutOrStdout()
			// Without the spanning-tree check the chords need not close
			// fundamental cycles; the cumulants are still printed.
			if err := writeCycles(out, src, src.chords); err != nil {
				a.logger.Warn("no fundamental cycles", zap.Error(err))
			}
			fmt.Fprint(out, res.Cancel())
			if len(vals) > 0 {
				c, cov, err := res.Float(vals)
				if err != nil {
					return errors.Wrap(err, "evaluate")
				}
				fmt.Fprintf(out, "c(%s) = %v\nC(%s) = %v\n", evalString(evals), c, evalString(evals), cov)
			}
			if withMetrics {
				return reg.WriteText(out)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&evals, "eval", nil, "evaluate numerically with sym=value (repeatable)")
	cmd.Flags().BoolVar(&withMetrics, "metrics", false, "print phase timings in the Prometheus text format")

	return cmd
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, validate.ErrInconsistent):
		return metrics.OutcomeRejected
	}
	return metrics.OutcomeFailed
}

// parseEvals reads sym=value pairs.
func parseEvals(evals []string) (map[expr.Symbol]float64, error) {
	vals := make(map[expr.Symbol]float64, len(evals))
	for _, e := range evals {
		k, v, ok := strings.Cut(e, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, errors.Errorf("--eval %q: want sym=value", e)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "--eval %q", e)
		}
		vals[expr.Symbol(strings.TrimSpace(k))] = f
	}

	return vals, nil
}

func evalString(evals []string) string { return strings.Join(evals, ", ") }
