// SPDX-License-Identifier: MIT

package modelfile

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlath-scgf/core"
	"github.com/katalvlaran/lvlath-scgf/cumulant"
	"github.com/katalvlaran/lvlath-scgf/expr"
	"github.com/katalvlaran/lvlath-scgf/spanning"
	"github.com/katalvlaran/lvlath-scgf/validate"
)

var (
	// ErrInvalid marks a document that fails structural validation.
	ErrInvalid = errors.New("modelfile: invalid model file")

	// ErrStateCount marks a document whose rates disagree with its states field.
	ErrStateCount = errors.New("modelfile: state count mismatch")
)

var structValidator = validator.New()

// Transition is one directed rate of a model file.
type Transition struct {
	From int    `yaml:"from" validate:"gte=0"`
	To   int    `yaml:"to" validate:"gte=0,nefield=From"`
	Rate string `yaml:"rate" validate:"required"`
}

// Simplify is the simp/unsimp substitution pair of a model file.
type Simplify struct {
	Simp   map[string]string `yaml:"simp" validate:"required,min=1"`
	Unsimp map[string]string `yaml:"unsimp" validate:"required,min=1"`
}

// File is a parsed model document.
type File struct {
	Name              string            `yaml:"name"`
	States            int               `yaml:"states" validate:"omitempty,min=2"`
	Rates             []Transition      `yaml:"rates" validate:"required,min=1,dive"`
	Chords            [][]int           `yaml:"chords" validate:"omitempty,dive,len=2,dive,gte=0"`
	Param             map[string]string `yaml:"param"`
	Simplify          *Simplify         `yaml:"simplify"`
	SpanningTreeCheck *bool             `yaml:"spanning_tree_check"`
}

// Load reads and parses the model file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read model file")
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return f, nil
}

// Parse decodes and validates a model document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "decode model file")
	}
	if err := structValidator.Struct(&f); err != nil {
		return nil, errors.Wrap(ErrInvalid, formatValidationError(err))
	}

	return &f, nil
}

// Model builds the core.Model of f. Duplicate transitions keep the last rate.
func (f *File) Model() (*core.Model, error) {
	m := core.NewModel(core.WithName(f.Name))
	for i, t := range f.Rates {
		r, err := expr.Parse(t.Rate)
		if err != nil {
			return nil, errors.Wrapf(err, "rates[%d] %d->%d", i, t.From, t.To)
		}
		if err := m.SetRate(t.From, t.To, r); err != nil {
			return nil, errors.Wrapf(err, "rates[%d]", i)
		}
	}
	if f.States != 0 && m.StateCount() != f.States {
		return nil, errors.Wrapf(ErrStateCount, "declared %d, rates span %d", f.States, m.StateCount())
	}

	return m, nil
}

// ResolveChords returns the chords of f, or a canonical chord set of m when the
// file names none.
func (f *File) ResolveChords(m *core.Model) ([]core.Edge, error) {
	if len(f.Chords) == 0 {
		chords, err := spanning.Chords(m)
		if err != nil {
			return nil, errors.Wrap(err, "select chords")
		}
		return chords, nil
	}
	out := make([]core.Edge, len(f.Chords))
	for i, c := range f.Chords {
		out[i] = core.Edge{From: c[0], To: c[1]}
	}

	return out, nil
}

// Options translates the param, simplify and spanning_tree_check fields into
// cumulant options. extra options are appended and win over the file.
func (f *File) Options(extra ...cumulant.Option) ([]cumulant.Option, error) {
	var opts []cumulant.Option
	if len(f.Param) > 0 {
		p, err := expr.ParseSubst(f.Param)
		if err != nil {
			return nil, errors.Wrap(err, "param")
		}
		opts = append(opts, cumulant.WithParam(p))
	}
	if f.Simplify != nil {
		simp, err := expr.ParseSubst(f.Simplify.Simp)
		if err != nil {
			return nil, errors.Wrap(err, "simplify.simp")
		}
		unsimp, err := expr.ParseSubst(f.Simplify.Unsimp)
		if err != nil {
			return nil, errors.Wrap(err, "simplify.unsimp")
		}
		opts = append(opts, cumulant.WithSimplification(cumulant.ApplyTransform(simp, unsimp)))
	}
	if f.SpanningTreeCheck != nil {
		opts = append(opts, cumulant.WithValidation(validate.WithSpanningTreeCheck(*f.SpanningTreeCheck)))
	}

	return append(opts, extra...), nil
}

// ValidateOptions returns the validate options the file asks for.
func (f *File) ValidateOptions() []validate.Option {
	if f.SpanningTreeCheck == nil {
		return nil
	}
	return []validate.Option{validate.WithSpanningTreeCheck(*f.SpanningTreeCheck)}
}

// formatValidationError renders validator field errors as one line,
// "Rates[0].Rate: required; States: min".
func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		ns := fe.Namespace()
		if i := strings.IndexByte(ns, '.'); i >= 0 {
			ns = ns[i+1:]
		}
		if fe.Param() != "" {
			msgs = append(msgs, ns+": "+fe.Tag()+"="+fe.Param())
		} else {
			msgs = append(msgs, ns+": "+fe.Tag())
		}
	}
	sort.Strings(msgs)

	return strings.Join(msgs, "; ")
}
