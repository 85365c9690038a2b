// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scope provides the scoped environment in which shape
// construction calls are recorded into a [tree.Arena].
package scope

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/csg/tree"
	"cogentcore.org/csg/value"
	"github.com/jinzhu/copier"
)

// historySize is the number of recent operations kept for diagnostics.
const historySize = 10

// Transformer transforms a freshly recorded call element, possibly
// substituting another element for it. It is implemented by filter.Pipeline.
type Transformer interface {
	Transform(s *Scope, call tree.Element) (tree.Element, error)
}

// State is the inheritable state of a [Scope]. A nested scope starts
// with a copy of the state of its parent, and any changes it makes are
// reverted when it exits.
type State struct {

	// Resolution is the current curve resolution.
	Resolution Resolution

	// Defaults are the named arguments added to calls that do not
	// already have them.
	Defaults *value.Args

	// Modifier is the modifier applied to recorded calls.
	Modifier tree.Modifier

	// Preprocess is whether recorded calls are run through the [Transformer].
	Preprocess bool
}

// DefaultState returns the state of a new [Scope].
func DefaultState() State {
	return State{
		Resolution: DefaultResolution,
		Defaults:   value.NewArgs(value.Map{"center": false}),
		Preprocess: true,
	}
}

// Scope records shape construction calls into a list of elements.
// A Scope is not safe for concurrent use.
type Scope struct {
	arena       *tree.Arena
	transformer Transformer
	state       State

	// list is the list that calls are currently recorded into.
	list tree.ListID

	// top is the list of top-level elements.
	top tree.ListID

	// oneTime is a modifier applied only to the next recorded call.
	oneTime tree.Modifier

	err      error
	warnings []string
	history  []string
}

// New returns a new [Scope] recording into a new top-level list of the
// given arena, with calls transformed by the given [Transformer], which
// may be nil.
func New(a *tree.Arena, t Transformer) *Scope {
	if a == nil {
		a = tree.NewArena()
	}
	s := &Scope{arena: a, transformer: t, state: DefaultState()}
	s.top = a.NewList()
	s.list = s.top
	return s
}

// SetState sets the current state of the scope.
func (s *Scope) SetState(st State) *Scope {
	s.state = st
	if s.state.Defaults == nil {
		s.state.Defaults = value.NewArgs(nil)
	}
	return s
}

// State returns a deep copy of the current state of the scope.
func (s *Scope) State() State {
	var st State
	if err := copier.CopyWithOption(&st, &s.state, copier.Option{DeepCopy: true}); err != nil {
		slog.Error("scope: copying state", "err", err)
		st = s.state
		st.Defaults = s.state.Defaults.Clone()
	}
	return st
}

// Arena returns the arena that the scope records into.
func (s *Scope) Arena() *tree.Arena {
	return s.arena
}

// Elements returns the top-level elements recorded so far.
func (s *Scope) Elements() []tree.Element {
	return s.arena.Elements(s.top)
}

// Err returns the first fatal error that occurred, if any.
// After an error, nothing more is recorded.
func (s *Scope) Err() error {
	return s.err
}

// Fail records the given error as the fatal error of the scope,
// unless there already is one.
func (s *Scope) Fail(err error) {
	if err == nil || s.err != nil {
		return
	}
	s.err = err
	slog.Debug("scope: build failed", "err", err, "recent", s.History())
}

// Warn records a non-fatal warning, which is also logged.
func (s *Scope) Warn(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	s.warnings = append(s.warnings, msg)
	slog.Warn(msg)
}

// Warnings returns the warnings recorded so far.
func (s *Scope) Warnings() []string {
	return slices.Clone(s.warnings)
}

// History returns the most recently recorded operations, oldest first.
func (s *Scope) History() []string {
	return slices.Clone(s.history)
}

func (s *Scope) pushHistory(op string) {
	s.history = append(s.history, op)
	if n := len(s.history); n > historySize {
		s.history = slices.Delete(s.history, 0, n-historySize)
	}
}

// nested runs body in a nested scope with a fresh list, and returns
// that list. The state of the scope is restored when body returns.
func (s *Scope) nested(body func(s *Scope)) tree.ListID {
	saved := s.State()
	list, oneTime := s.list, s.oneTime
	s.list = s.arena.NewList()
	s.oneTime = tree.NoModifier
	defer func() {
		s.state = saved
		s.list, s.oneTime = list, oneTime
	}()
	body(s)
	return s.list
}

// Record records a call to the given operation, with the given positional
// and named arguments, into the current list. If body is non-nil, it is run
// in a nested scope and the calls it records become the children of the call.
// Unless preprocessing is off, the call is then run through the
// [Transformer], which may substitute another element for it; the returned
// element is the one left in the tree. After a fatal error, Record does
// nothing and returns the zero [tree.Element].
func (s *Scope) Record(op string, args []any, named value.Map, body func(s *Scope)) tree.Element {
	return s.RecordArgs(op, args, value.NewArgs(named), body)
}

// RecordArgs is like [Scope.Record], but takes ordered named arguments,
// which are used directly.
func (s *Scope) RecordArgs(op string, args []any, named *value.Args, body func(s *Scope)) tree.Element {
	if s.err != nil {
		return tree.Element{}
	}
	kids := tree.NoList
	if body != nil {
		kids = s.nested(body)
		if s.err != nil {
			return tree.Element{}
		}
	}
	if named == nil {
		named = value.NewArgs(nil)
	}
	mod := s.state.Modifier
	if s.oneTime != tree.NoModifier {
		mod = s.oneTime
	}
	el := s.arena.New(tree.Record{Kind: tree.Call, Op: op, Args: slices.Clone(args), Named: named, Modifier: mod})
	if kids != tree.NoList {
		s.arena.SetChildren(el.ID(), kids)
	}
	s.arena.Append(s.list, el.ID())
	s.oneTime = tree.NoModifier
	s.pushHistory(op)
	if !s.state.Preprocess || s.transformer == nil {
		return el
	}
	res, err := s.transformer.Transform(s, el)
	if err != nil {
		s.Fail(err)
		return tree.Element{}
	}
	return res
}

// Capture runs body in a nested scope with preprocessing off, and returns
// the first element it recorded, detached from any list. It returns the
// zero [tree.Element] if nothing was recorded.
func (s *Scope) Capture(body func(s *Scope)) tree.Element {
	if s.err != nil {
		return tree.Element{}
	}
	l := s.nested(func(s *Scope) {
		s.state.Preprocess = false
		body(s)
	})
	els := s.arena.Elements(l)
	if s.err != nil || len(els) == 0 {
		return tree.Element{}
	}
	first := els[0]
	first.Detach()
	return first
}

// Combine moves the given items into the children of target, as in
// [tree.Combine]. Errors are recorded as fatal errors of the scope.
func (s *Scope) Combine(target tree.Element, items ...any) tree.Element {
	if s.err != nil {
		return tree.Element{}
	}
	last, err := tree.Combine(target, items...)
	if err != nil {
		s.Fail(err)
		return tree.Element{}
	}
	return last
}

// Inject moves the given existing elements into the current list.
func (s *Scope) Inject(elements ...tree.Element) {
	if s.err != nil {
		return
	}
	for _, e := range elements {
		if !e.IsValid() || e.Arena() != s.arena {
			s.Fail(tree.Errorf(tree.TypeMismatch, "inject", "%s is not an element of this tree", e.GoString()))
			return
		}
		s.arena.Append(s.list, e.ID())
	}
}

func (s *Scope) statement(r tree.Record) tree.Element {
	if s.err != nil {
		return tree.Element{}
	}
	el := s.arena.New(r)
	s.arena.Append(s.list, el.ID())
	return el
}

// Comment records a comment.
func (s *Scope) Comment(text string) tree.Element {
	return s.statement(tree.Record{Kind: tree.Comment, Text: text})
}

// Include records an include of the given file.
func (s *Scope) Include(path string) tree.Element {
	return s.statement(tree.Record{Kind: tree.Include, Text: path})
}

// Use records a use of the given file.
func (s *Scope) Use(path string) tree.Element {
	return s.statement(tree.Record{Kind: tree.Use, Text: path})
}

// Assign records a variable assignment.
func (s *Scope) Assign(name string, v any) tree.Element {
	return s.statement(tree.Record{Kind: tree.Assign, Text: name, Value: v})
}
