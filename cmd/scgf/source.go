// SPDX-License-Identifier: MIT

package main

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlath-scgf/core"
	"github.com/katalvlaran/lvlath-scgf/cumulant"
	"github.com/katalvlaran/lvlath-scgf/modelfile"
	"github.com/katalvlaran/lvlath-scgf/models"
	"github.com/katalvlaran/lvlath-scgf/validate"
)

var errNoSource = errors.New("give a model file or --preset")

// source is a model with its chords and the options its origin asks for.
type source struct {
	model    *core.Model
	chords   []core.Edge
	opts     []cumulant.Option
	validate []validate.Option
}

// loadSource resolves either the model file in args or the named preset.
func loadSource(args []string, preset string) (*source, error) {
	switch {
	case preset != "" && len(args) > 0:
		return nil, errors.New("--preset and a model file are mutually exclusive")
	case preset != "":
		return presetSource(preset)
	case len(args) == 1:
		return fileSource(args[0])
	}

	return nil, errNoSource
}

func fileSource(path string) (*source, error) {
	f, err := modelfile.Load(path)
	if err != nil {
		return nil, err
	}
	m, err := f.Model()
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	chords, err := f.ResolveChords(m)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	opts, err := f.Options()
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return &source{model: m, chords: chords, opts: opts, validate: f.ValidateOptions()}, nil
}

// presetSource evaluates a preset in its exact u, v parametrization and
// simplifies through s = 1/u.
func presetSource(name string) (*source, error) {
	presets, err := models.Presets()
	if err != nil {
		return nil, errors.Wrap(err, "load presets")
	}
	p, ok := presets[name]
	if !ok {
		names := make([]string, 0, len(presets))
		for n := range presets {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, errors.Errorf("unknown preset %q (have %s)", name, strings.Join(names, ", "))
	}
	simp, unsimp := models.UVTransform()

	return &source{
		model:  p.Model,
		chords: p.Chords,
		opts: []cumulant.Option{
			cumulant.WithParam(p.Param),
			cumulant.WithSimplification(cumulant.ApplyTransform(simp, unsimp)),
		},
	}, nil
}
