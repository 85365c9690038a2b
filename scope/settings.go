// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scope

import (
	"maps"
	"slices"

	"cogentcore.org/csg/tree"
	"cogentcore.org/csg/value"
)

// Resolution merges the given settings into the current [Resolution]
// (see [Resolution.With]) and returns the result. If body is non-nil,
// the new resolution applies only while body runs; otherwise it applies
// to the rest of the current scope. With no settings and no body it just
// returns the current resolution.
func (s *Scope) Resolution(set value.Map, body func(s *Scope)) Resolution {
	if s.err != nil || (len(set) == 0 && body == nil) {
		return s.state.Resolution
	}
	res, redundant, err := s.state.Resolution.With(set)
	if err != nil {
		s.Fail(err)
		return s.state.Resolution
	}
	if redundant {
		s.Warn("both fragments_per_turn and degrees_per_fragment set; only one is needed, as each is derived from the other")
	}
	if body == nil {
		s.state.Resolution = res
		return res
	}
	prev := s.state.Resolution
	s.state.Resolution = res
	defer func() { s.state.Resolution = prev }()
	body(s)
	return res
}

// FragmentCount returns the number of fragments used for a circle of
// the given radius under the current resolution.
func (s *Scope) FragmentCount(radius float64) float64 {
	return s.state.Resolution.FragmentCount(radius)
}

// FragmentCountDiameter is like [Scope.FragmentCount] for a diameter.
func (s *Scope) FragmentCountDiameter(d float64) float64 {
	return s.FragmentCount(d / 2)
}

// Defaults sets the given default named arguments, which are added to
// calls that do not specify them, overriding previous defaults with the
// same names. If body is non-nil, the new defaults apply only while body
// runs. It returns a copy of the resulting defaults.
func (s *Scope) Defaults(set value.Map, body func(s *Scope)) *value.Args {
	if s.err != nil || (len(set) == 0 && body == nil) {
		return s.state.Defaults.Clone()
	}
	prev := s.state.Defaults
	merged := prev.Clone()
	for _, k := range slices.Sorted(maps.Keys(set)) {
		merged.Set(k, set[k])
	}
	s.state.Defaults = merged
	if body != nil {
		defer func() { s.state.Defaults = prev }()
		body(s)
	}
	return merged.Clone()
}

// Preprocessor turns the filter pipeline on or off while body runs.
func (s *Scope) Preprocessor(enabled bool, body func(s *Scope)) {
	if s.err != nil {
		return
	}
	prev := s.state.Preprocess
	s.state.Preprocess = enabled
	defer func() { s.state.Preprocess = prev }()
	body(s)
}

// Preprocessing returns whether the filter pipeline is currently on.
func (s *Scope) Preprocessing() bool {
	return s.state.Preprocess
}

func (s *Scope) modifier(m tree.Modifier, body func(s *Scope)) {
	if s.err != nil {
		return
	}
	if body == nil {
		s.oneTime = m
		return
	}
	prev := s.state.Modifier
	s.state.Modifier = m
	defer func() { s.state.Modifier = prev }()
	body(s)
}

// Background renders the calls recorded by body in the background (%).
// With a nil body it applies only to the next recorded call.
func (s *Scope) Background(body func(s *Scope)) {
	s.modifier(tree.Background, body)
}

// Highlight highlights the calls recorded by body (#).
// With a nil body it applies only to the next recorded call.
func (s *Scope) Highlight(body func(s *Scope)) {
	s.modifier(tree.Highlight, body)
}

// RootOnly renders only the calls recorded by body (!).
// With a nil body it applies only to the next recorded call.
func (s *Scope) RootOnly(body func(s *Scope)) {
	s.modifier(tree.RootOnly, body)
}
