// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scope

import (
	"maps"
	"math"
	"slices"

	"cogentcore.org/csg/tree"
	"cogentcore.org/csg/value"
)

// Resolution holds the settings that control how finely curved
// surfaces are approximated by polygon fragments.
type Resolution struct {

	// Minimum is the minimum size of a fragment ($fs).
	Minimum float64 `toml:"minimum" yaml:"minimum"`

	// FragmentsPerTurn is the maximum number of fragments in a full turn.
	// It is always 360 / DegreesPerFragment.
	FragmentsPerTurn float64 `toml:"fragments_per_turn" yaml:"fragments_per_turn"`

	// DegreesPerFragment is the minimum angle of a fragment ($fa).
	DegreesPerFragment float64 `toml:"degrees_per_fragment" yaml:"degrees_per_fragment"`

	// Fragments is a fixed number of fragments ($fn), overriding
	// the other settings when it is not 0.
	Fragments float64 `toml:"fragments" yaml:"fragments"`
}

// DefaultResolution is the resolution of a new [Scope], which matches
// the defaults of the downstream geometry kernel.
var DefaultResolution = Resolution{
	Minimum:            2,
	FragmentsPerTurn:   30,
	DegreesPerFragment: 12,
	Fragments:          0,
}

// resolutionAliases maps alternate setting names onto their canonical name.
var resolutionAliases = map[string]string{
	"facets_per_turn":   "fragments_per_turn",
	"degrees_per_facet": "degrees_per_fragment",
	"facets":            "fragments",
}

// Settings returns the resolution as named settings.
func (r Resolution) Settings() value.Map {
	return value.Map{
		"minimum":              r.Minimum,
		"fragments_per_turn":   r.FragmentsPerTurn,
		"degrees_per_fragment": r.DegreesPerFragment,
		"fragments":            r.Fragments,
	}
}

// With returns the resolution with the given named settings merged in.
// Settings with nil values are ignored. Only one of fragments_per_turn
// and degrees_per_fragment is needed, as each is derived from the other;
// if both are given, fragments_per_turn wins and redundant is true.
func (r Resolution) With(set value.Map) (res Resolution, redundant bool, err error) {
	res = r
	canon := value.Map{}
	for _, k := range slices.Sorted(maps.Keys(set)) {
		v := set[k]
		if v == nil {
			continue
		}
		if c, ok := resolutionAliases[k]; ok {
			if _, has := set[c]; has && set[c] != nil {
				continue
			}
			k = c
		}
		canon[k] = v
	}
	_, hasTurn := canon["fragments_per_turn"]
	_, hasDeg := canon["degrees_per_fragment"]
	redundant = hasTurn && hasDeg

	for _, k := range slices.Sorted(maps.Keys(canon)) {
		f, ok := value.Float(canon[k])
		if !ok {
			return r, redundant, tree.Errorf(tree.Validation, "resolution", "%s must be a number, not %s", k, value.Literal(canon[k]))
		}
		switch k {
		case "minimum":
			if f <= 0 {
				return r, redundant, tree.Errorf(tree.Validation, "resolution", "minimum must be positive, not %v", f)
			}
			res.Minimum = f
		case "fragments":
			if f < 0 {
				return r, redundant, tree.Errorf(tree.Validation, "resolution", "fragments must not be negative, not %v", f)
			}
			res.Fragments = f
		case "fragments_per_turn", "degrees_per_fragment":
			if f <= 0 {
				return r, redundant, tree.Errorf(tree.Validation, "resolution", "%s must be positive, not %v", k, f)
			}
		default:
			return r, redundant, tree.Errorf(tree.Validation, "resolution", "unknown setting %q", k)
		}
	}
	switch {
	case hasTurn:
		res.FragmentsPerTurn = value.FloatOr(canon["fragments_per_turn"], 0)
		res.DegreesPerFragment = 360 / res.FragmentsPerTurn
	case hasDeg:
		res.DegreesPerFragment = value.FloatOr(canon["degrees_per_fragment"], 0)
		res.FragmentsPerTurn = 360 / res.DegreesPerFragment
	}
	return res, redundant, nil
}

// FragmentCount returns the number of fragments used to approximate
// a circle of the given radius: the fixed [Resolution.Fragments] if it
// is set, and otherwise the smaller of [Resolution.FragmentsPerTurn]
// and the number of fragments of [Resolution.Minimum] size that fit
// around the circumference.
func (r Resolution) FragmentCount(radius float64) float64 {
	if r.Fragments != 0 {
		return r.Fragments
	}
	return math.Min(r.FragmentsPerTurn, radius*2*math.Pi/r.Minimum)
}
