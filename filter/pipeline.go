// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"maps"
	"slices"

	"cogentcore.org/csg/scope"
	"cogentcore.org/csg/tree"
	"cogentcore.org/csg/value"
)

// maxAliasDepth is the maximum number of alias renamings of one call.
const maxAliasDepth = 8

// Processor is the primary processor of an operation, run after its
// filter steps. It may return a replacement for the call, which is then
// substituted for it in the tree.
type Processor struct {

	// Params are the names of the named arguments the processor accepts,
	// in the order that positional arguments map onto them.
	Params []string

	// Defaults are the values of params that are not given.
	Defaults value.Map

	// Run runs the processor with the bound arguments. It returns the zero
	// [tree.Element] for no substitution, or an element of the call's tree
	// to substitute for the call.
	Run func(c *Context, args value.Map) (tree.Element, error)
}

// bind returns the arguments of the call that the processor accepts,
// with positional arguments taken as the params in order.
func (p *Processor) bind(c *Context) value.Map {
	r := c.Record()
	args := maps.Clone(p.Defaults)
	if args == nil {
		args = value.Map{}
	}
	named := c.Named()
	for _, name := range p.Params {
		if v, ok := named.Get(name); ok {
			args[name] = v
		}
	}
	for i, v := range r.Args {
		if i >= len(p.Params) {
			break
		}
		name := p.Params[i]
		if named.Has(name) {
			c.Scope.Warn("%s(): overwriting argument %s with positional argument %d", c.Op, name, i+1)
		}
		args[name] = v
	}
	return args
}

// Pipeline transforms recorded calls according to a [Registry].
// It implements [scope.Transformer].
type Pipeline struct {
	Registry *Registry
}

// NewPipeline returns a new [Pipeline] for the given registry.
func NewPipeline(r *Registry) *Pipeline {
	return &Pipeline{Registry: r}
}

// Transform runs the filter steps of the operation of the given call
// on it, and then its primary processor, if any. It returns the element
// left in the tree: the call itself, or the replacement the processor
// substituted for it. Unknown operations are an error, which suggests
// the closest known operation if there is one.
func (p *Pipeline) Transform(s *scope.Scope, call tree.Element) (tree.Element, error) {
	r := call.Record()
	if r == nil {
		return tree.Element{}, tree.Errorf(tree.TypeMismatch, "", "can only transform a valid element")
	}
	c := &Context{Scope: s, Call: call, Op: r.Op}
	return p.transform(c, 0)
}

func (p *Pipeline) transform(c *Context, depth int) (tree.Element, error) {
	r := c.Record()
	e, ok := p.Registry.ops[r.Op]
	if !ok {
		err := tree.Errorf(tree.UnknownOperation, r.Op, "unknown operation")
		err.Suggestion, _ = p.Registry.Suggest(r.Op)
		return tree.Element{}, err
	}
	for _, st := range e.steps {
		if err := st.Apply(c); err != nil {
			return tree.Element{}, err
		}
	}
	if e.alias != "" {
		if depth >= maxAliasDepth {
			return tree.Element{}, c.Errorf(tree.Validation, "too many levels of aliases")
		}
		named := c.Named()
		for _, k := range slices.Sorted(maps.Keys(e.extra)) {
			named.SetMissing(k, e.extra[k])
		}
		r.Op = e.alias
		return p.transform(c, depth+1)
	}
	if e.proc == nil {
		return c.Call, nil
	}
	res, err := e.proc.Run(c, e.proc.bind(c))
	if err != nil {
		return tree.Element{}, err
	}
	if res == (tree.Element{}) || res == c.Call {
		return c.Call, nil
	}
	if !res.IsValid() || res.Arena() != c.Call.Arena() {
		return tree.Element{}, c.Errorf(tree.Validation, "processor returned invalid result %s", res.GoString())
	}
	if err := c.Call.Replace(res); err != nil {
		return tree.Element{}, err
	}
	return res, nil
}
