// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render renders a tree of recorded elements as OpenSCAD code.
package render

import (
	"strings"

	"cogentcore.org/csg/base/indent"
	"cogentcore.org/csg/tree"
	"cogentcore.org/csg/value"
)

// Options are the options for rendering.
type Options struct {

	// Clean is whether to indent the children of blocks.
	Clean bool `toml:"clean" yaml:"clean"`

	// Tabs is whether to indent with tabs instead of spaces.
	Tabs bool `toml:"tabs" yaml:"tabs"`

	// Indent is the number of spaces per indentation level.
	Indent int `toml:"indent" yaml:"indent"`
}

// DefaultOptions are the default rendering options.
var DefaultOptions = Options{Clean: true, Indent: 2}

func (o Options) char() indent.Character {
	if o.Tabs {
		return indent.Tab
	}
	return indent.Space
}

// Lines renders the given elements and their children as lines of code.
// An element with no children is a statement ending in a semicolon, one
// with a single child is followed by that child on the same line, and one
// with more children is followed by a block in braces.
func Lines(elements []tree.Element, opts Options) []string {
	var out []string
	for _, e := range elements {
		r := e.Record()
		if r == nil {
			continue
		}
		switch r.Kind {
		case tree.Call:
			out = append(out, call(e, r, opts)...)
		case tree.Comment:
			out = append(out, "/* "+r.Text+" */")
		case tree.Include:
			out = append(out, "include <"+r.Text+">;")
		case tree.Use:
			out = append(out, "use <"+r.Text+">;")
		case tree.Assign:
			out = append(out, r.Text+" = "+value.Literal(r.Value)+";")
		}
	}
	return out
}

// String renders the given elements as code, with a final newline.
func String(elements []tree.Element, opts Options) string {
	lines := Lines(elements, opts)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Call returns the call of the given record, without children or
// a terminating semicolon: modifier, operation, and arguments.
func Call(r *tree.Record) string {
	args := make([]string, 0, len(r.Args)+r.Named.Len())
	for _, a := range r.Args {
		args = append(args, value.Literal(a))
	}
	if r.Named != nil {
		for _, kv := range r.Named.Order {
			args = append(args, kv.Key+" = "+value.Literal(kv.Value))
		}
	}
	return r.Modifier.Prefix() + r.Op + "(" + strings.Join(args, ", ") + ")"
}

func call(e tree.Element, r *tree.Record, opts Options) []string {
	c := Call(r)
	kids := e.Children()
	switch len(kids) {
	case 0:
		return []string{c + ";"}
	case 1:
		lines := Lines(kids, opts)
		if len(lines) == 0 {
			return []string{c + ";"}
		}
		lines[0] = c + " " + lines[0]
		return lines
	}
	lines := Lines(kids, opts)
	if opts.Clean {
		lines = indent.Lines(lines, opts.char(), 1, opts.Indent)
	}
	out := make([]string, 0, len(lines)+2)
	out = append(out, c+" {")
	out = append(out, lines...)
	return append(out, "}")
}
