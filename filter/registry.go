// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"maps"
	"slices"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"cogentcore.org/csg/value"
)

// SuggestThreshold is the minimum similarity for [Registry.Suggest]
// to suggest a known operation name.
const SuggestThreshold = 0.7

// entry is the registration of one operation.
type entry struct {
	steps []Step
	proc  *Processor

	// alias is the operation this one is an alias of, if any,
	// and extra holds the named arguments it implies.
	alias string
	extra value.Map
}

// Builder builds a [Registry]. Steps are queued with [Builder.Filter]
// on top of the default steps set with [Builder.DefaultFilters], and are
// consumed by the next registration with [Builder.Passthrough] or
// [Builder.Define], after which the queue is reset to the defaults.
type Builder struct {
	defaults []Step
	queued   []Step
	ops      map[string]*entry
}

// NewBuilder returns a new empty [Builder].
func NewBuilder() *Builder {
	return &Builder{ops: map[string]*entry{}}
}

// DefaultFilters sets the default steps for subsequent registrations,
// and resets the queue to them.
func (b *Builder) DefaultFilters(steps ...Step) *Builder {
	b.defaults = slices.Clone(steps)
	b.queued = slices.Clone(steps)
	return b
}

// Filter queues the given step for the next registration, replacing
// any queued step with the same name.
func (b *Builder) Filter(st Step) *Builder {
	b.queued = slices.DeleteFunc(b.queued, func(q Step) bool { return q.Name == st.Name })
	b.queued = append(b.queued, st)
	return b
}

func (b *Builder) consume() []Step {
	steps := b.queued
	b.queued = slices.Clone(b.defaults)
	return steps
}

// Passthrough registers the given operations with the queued steps
// and no processor.
func (b *Builder) Passthrough(ops ...string) *Builder {
	steps := b.consume()
	for _, op := range ops {
		b.ops[op] = &entry{steps: slices.Clone(steps)}
	}
	return b
}

// Define registers the given operation with the queued steps
// followed by the given primary processor.
func (b *Builder) Define(op string, proc Processor) *Builder {
	b.ops[op] = &entry{steps: b.consume(), proc: &proc}
	return b
}

// Alias registers from as another name for the operation to,
// implying the given extra named arguments. Named arguments given
// in the call win over the extra ones. The renamed call is then
// transformed fully as a call to the operation to.
func (b *Builder) Alias(from, to string, extra value.Map) *Builder {
	b.ops[from] = &entry{alias: to, extra: maps.Clone(extra)}
	return b
}

// Build returns a new [Registry] of everything registered so far.
// The builder can continue to be used without affecting it.
func (b *Builder) Build() *Registry {
	r := &Registry{ops: make(map[string]entry, len(b.ops))}
	for op, e := range b.ops {
		r.ops[op] = entry{steps: slices.Clone(e.steps), proc: e.proc, alias: e.alias, extra: maps.Clone(e.extra)}
	}
	r.names = slices.Sorted(maps.Keys(r.ops))
	return r
}

// Registry maps operation names to their filter steps and processors.
// It is immutable and safe to share between goroutines.
type Registry struct {
	ops   map[string]entry
	names []string
}

// Known returns whether the given operation is registered.
func (r *Registry) Known(op string) bool {
	_, ok := r.ops[op]
	return ok
}

// Ops returns the sorted names of all registered operations.
func (r *Registry) Ops() []string {
	return slices.Clone(r.names)
}

// Steps returns the filter steps registered for the given operation.
func (r *Registry) Steps(op string) []Step {
	return slices.Clone(r.ops[op].steps)
}

// HasProcessor returns whether the given operation has a primary processor.
func (r *Registry) HasProcessor(op string) bool {
	return r.ops[op].proc != nil
}

// AliasOf returns the operation the given operation is an alias of, if any.
func (r *Registry) AliasOf(op string) (string, bool) {
	e := r.ops[op]
	return e.alias, e.alias != ""
}

// Suggest returns the known operation name most similar to the given
// one, if any is at least [SuggestThreshold] similar.
func (r *Registry) Suggest(op string) (string, bool) {
	jw := metrics.NewJaroWinkler()
	best, score := "", 0.0
	for _, name := range r.names {
		if sim := strutil.Similarity(op, name, jw); sim > score {
			best, score = name, sim
		}
	}
	if score < SuggestThreshold {
		return "", false
	}
	return best, true
}
