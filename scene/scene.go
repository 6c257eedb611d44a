// Copyright (c) Koya Sakuma & AUTHORS
// SPDX-License-Identifier: MIT

// Package scene implements an in-memory molecular scene that satisfies
// the showcolor.Host interface.
//
// # Structure
//
// A Scene holds an ordered list of models, each an ordered list of
// atoms, plus an interned palette of colors addressed by handle. It
// stands in for a live viewer: tests and the command line build scenes
// (or load them from JSON snapshots), run commands against them, and
// read the resulting labels back. Like the viewer it mimics, a Scene
// serializes command execution and is not safe for concurrent use.
package scene

import (
	"fmt"
	"io"
	"os"

	"github.com/yakomaxa/showcolor"
)

// A Scene is a reference host. The zero value is not ready for use;
// call New or Load.
type Scene struct {
	// Output receives lines written through the Print primitive.
	// New sets it to os.Stdout; tests point it at a buffer.
	Output io.Writer

	models []*model
	byName map[string]*model

	palette []showcolor.Color
	refs    map[showcolor.Color]showcolor.ColorRef
}

type model struct {
	name    string
	atoms   []*atom
	byIndex map[int]*atom
}

type atom struct {
	index int
	color showcolor.ColorRef
	label string
}

// New returns an empty scene ready for use.
func New() *Scene {
	return &Scene{
		Output: os.Stdout,
		byName: make(map[string]*model),
		refs:   make(map[showcolor.Color]showcolor.ColorRef),
	}
}

// Add appends an atom with the given display color to the named model,
// creating the model the first time its name appears. Adding an index
// already present in the model recolors that atom and clears its label.
// The returned handle identifies the interned color; equal triples
// share a handle.
func (s *Scene) Add(mod string, index int, c showcolor.Color) showcolor.ColorRef {
	ref := s.intern(c)
	m := s.model(mod)
	if a, ok := m.byIndex[index]; ok {
		a.color = ref
		a.label = ""
		return ref
	}
	a := &atom{index: index, color: ref}
	m.atoms = append(m.atoms, a)
	m.byIndex[index] = a
	return ref
}

func (s *Scene) intern(c showcolor.Color) showcolor.ColorRef {
	if ref, ok := s.refs[c]; ok {
		return ref
	}
	ref := showcolor.ColorRef(len(s.palette))
	s.palette = append(s.palette, c)
	s.refs[c] = ref
	return ref
}

func (s *Scene) model(name string) *model {
	if m, ok := s.byName[name]; ok {
		return m
	}
	m := &model{name: name, byIndex: make(map[int]*atom)}
	s.models = append(s.models, m)
	s.byName[name] = m
	return m
}

// Atoms implements part of showcolor.Host. Atoms are reported in model
// load order, then insertion order within each model.
func (s *Scene) Atoms() ([]showcolor.Atom, error) {
	var out []showcolor.Atom
	for _, m := range s.models {
		for _, a := range m.atoms {
			out = append(out, showcolor.Atom{Model: m.name, Index: a.index, Color: a.color})
		}
	}
	return out, nil
}

// ColorTuple implements part of showcolor.Host.
func (s *Scene) ColorTuple(ref showcolor.ColorRef) (showcolor.Color, error) {
	if ref < 0 || int(ref) >= len(s.palette) {
		return showcolor.Color{}, fmt.Errorf("color ref %d out of range", ref)
	}
	return s.palette[ref], nil
}

// Label implements part of showcolor.Host. The label expression must be
// a quoted string literal; anything else is rejected, as is a selection
// that does not match a loaded atom.
func (s *Scene) Label(sel showcolor.Selection, expr string) error {
	text, err := evalLabel(expr)
	if err != nil {
		return err
	}
	m, ok := s.byName[sel.Model]
	if !ok {
		return fmt.Errorf("no model %q", sel.Model)
	}
	a, ok := m.byIndex[sel.Index]
	if !ok {
		return fmt.Errorf("no atom with index %d in model %q", sel.Index, sel.Model)
	}
	a.label = text
	return nil
}

// evalLabel evaluates a label text expression. The labeling pass only
// ever issues string literals, so that is all the reference host
// understands.
func evalLabel(expr string) (string, error) {
	if len(expr) >= 2 {
		if q := expr[0]; (q == '\'' || q == '"') && expr[len(expr)-1] == q {
			return expr[1 : len(expr)-1], nil
		}
	}
	return "", fmt.Errorf("invalid label expression %q", expr)
}

// Print implements part of showcolor.Host.
func (s *Scene) Print(msg string) { fmt.Fprintln(s.Output, msg) }

// Labels returns the displayed labels keyed by atom selection. Atoms
// with no label are omitted.
func (s *Scene) Labels() map[showcolor.Selection]string {
	out := make(map[showcolor.Selection]string)
	for _, m := range s.models {
		for _, a := range m.atoms {
			if a.label != "" {
				out[showcolor.Selection{Model: m.name, Index: a.index}] = a.label
			}
		}
	}
	return out
}

// Models returns the model names in load order.
func (s *Scene) Models() []string {
	out := make([]string, len(s.models))
	for i, m := range s.models {
		out[i] = m.name
	}
	return out
}
