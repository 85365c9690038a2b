// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"slices"
	"strings"

	"cogentcore.org/csg/base/ordmap"
)

// Args is an ordered set of named argument values. The order only
// matters for producing deterministic output: it is the order in which
// names were first set.
type Args struct {
	ordmap.Map[string, any]
}

// NewArgs returns new [Args] holding the given values,
// added in sorted name order.
func NewArgs(m Map) *Args {
	a := &Args{}
	a.Init()
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	slices.Sort(names)
	for _, k := range names {
		a.Add(k, m[k])
	}
	return a
}

// Len returns the number of named values.
func (a *Args) Len() int {
	if a == nil {
		return 0
	}
	return a.Map.Len()
}

// Get returns the value for the given name, and whether it is present.
func (a *Args) Get(name string) (any, bool) {
	if a == nil {
		return nil, false
	}
	return a.ValueByKeyTry(name)
}

// Has returns whether the given name is present.
func (a *Args) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Set sets the value for the given name, keeping its position if
// it is already present.
func (a *Args) Set(name string, v any) {
	a.Add(name, v)
}

// SetMissing sets the value for the given name only if it is not
// already present, returning whether it was set.
func (a *Args) SetMissing(name string, v any) bool {
	return a.AddMissing(name, v)
}

// Delete removes the given name, returning its value and whether
// it was present.
func (a *Args) Delete(name string) (any, bool) {
	v, ok := a.Get(name)
	if ok {
		a.DeleteKey(name)
	}
	return v, ok
}

// MergeMissing adds all values of from whose names are not already
// present. Values already present always win.
func (a *Args) MergeMissing(from *Args) {
	if from == nil {
		return
	}
	for _, kv := range from.Order {
		a.AddMissing(kv.Key, kv.Value)
	}
}

// Clone returns a copy of the args. Values are shared.
func (a *Args) Clone() *Args {
	c := &Args{}
	c.Init()
	if a != nil {
		c.Copy(&a.Map)
	}
	return c
}

// ToMap returns the args as an unordered [Map].
func (a *Args) ToMap() Map {
	m := Map{}
	if a == nil {
		return m
	}
	for _, kv := range a.Order {
		m[kv.Key] = kv.Value
	}
	return m
}

// String returns the args as name: value pairs, in order.
func (a *Args) String() string {
	if a == nil {
		return ""
	}
	parts := make([]string, len(a.Order))
	for i, kv := range a.Order {
		parts[i] = kv.Key + ": " + Literal(kv.Value)
	}
	return strings.Join(parts, ", ")
}
