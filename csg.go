// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csg

import (
	"io"

	"cogentcore.org/csg/base/errors"
	"cogentcore.org/csg/config"
	"cogentcore.org/csg/filter"
	"cogentcore.org/csg/render"
	"cogentcore.org/csg/scope"
	"cogentcore.org/csg/shapes"
	"cogentcore.org/csg/tree"
)

// Builder builds models. It can be used for any number of builds,
// including concurrent ones, as long as its fields are not changed.
type Builder struct {

	// Registry is the registry of known operations.
	Registry *filter.Registry

	// Settings are the settings each build starts from.
	Settings *config.Settings
}

// New returns a new [Builder] with the standard operations and the given
// settings, or the default settings if they are nil.
func New(settings *config.Settings) *Builder {
	if settings == nil {
		settings = config.Default()
	}
	return &Builder{Registry: shapes.Standard(), Settings: settings}
}

// Known returns whether the given operation is known to the builder.
func (b *Builder) Known(op string) bool {
	return b.Registry.Known(op)
}

// NewScope returns a new top-level [scope.Scope] with a new tree, in the
// initial state of the settings of the builder.
func (b *Builder) NewScope() (*scope.Scope, error) {
	st, err := b.Settings.State()
	if err != nil {
		return nil, err
	}
	return scope.New(tree.NewArena(), filter.NewPipeline(b.Registry)).SetState(st), nil
}

// Build runs the given function to record calls into a new scope, and
// returns the resulting model. Any error stops the build, and is logged
// and returned, with no model.
func (b *Builder) Build(fun func(s *scope.Scope)) (*Model, error) {
	s, err := b.NewScope()
	if err != nil {
		return nil, errors.Log(err)
	}
	fun(s)
	if err := s.Err(); err != nil {
		return nil, errors.Log(err)
	}
	return &Model{Elements: s.Elements(), Warnings: s.Warnings(), Options: b.Settings.Render}, nil
}

// Model is a finished model.
type Model struct {

	// Elements are the top-level elements of the model.
	Elements []tree.Element

	// Warnings are the warnings that occurred while building the model.
	Warnings []string

	// Options are the options the model is rendered with.
	Options render.Options
}

// Lines returns the lines of OpenSCAD code of the model.
func (m *Model) Lines() []string {
	return render.Lines(m.Elements, m.Options)
}

// String returns the OpenSCAD code of the model.
func (m *Model) String() string {
	return render.String(m.Elements, m.Options)
}

// WriteTo writes the OpenSCAD code of the model to the given writer.
func (m *Model) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())
	return int64(n), err
}

// Dump returns a YAML dump of the tree of the model, for debugging.
func (m *Model) Dump() ([]byte, error) {
	return tree.Dump(m.Elements)
}
