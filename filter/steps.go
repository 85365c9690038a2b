// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"math"
	"strings"

	"cogentcore.org/csg/scope"
	"cogentcore.org/csg/tree"
	"cogentcore.org/csg/value"
)

// XYZ returns a step that packs the named arguments x, y and, if depth
// is true, z into one coordinate vector, using def for missing axes.
// The vector becomes the named argument arg, or the first positional
// argument if arg is "". Nothing happens if none of the axes are given.
func XYZ(def float64, arg string, depth bool) Step {
	axes := []string{"x", "y"}
	if depth {
		axes = append(axes, "z")
	}
	return Step{
		Name:   "xyz",
		Params: value.Map{"default": def, "arg": arg, "depth": depth},
		Apply: func(c *Context) error {
			named := c.Named()
			if !named.Has("x") && !named.Has("y") && !named.Has("z") {
				return nil
			}
			for _, k := range []string{"x", "y", "z"} {
				if v, ok := named.Get(k); ok && !value.IsNumber(v) {
					return c.Errorf(tree.Validation, "%s must be a number, not %s", k, value.Literal(v))
				}
			}
			coords := make([]any, len(axes))
			for i, k := range axes {
				v, _ := named.Delete(k)
				if v == nil {
					v = def
				}
				coords[i] = v
			}
			if arg != "" {
				named.Set(arg, coords)
				return nil
			}
			r := c.Record()
			r.Args = append([]any{coords}, r.Args...)
			return nil
		},
	}
}

// renaming maps alternate argument names onto one canonical name.
type renaming struct {
	to   string
	from []string
}

func (rn renaming) apply(named *value.Args) {
	var v any
	found := false
	for _, k := range rn.from {
		if x, ok := named.Get(k); ok && x != nil {
			if !found {
				v, found = x, true
			}
		}
	}
	if !found {
		return
	}
	for _, k := range rn.from {
		named.Delete(k)
	}
	named.Set(rn.to, v)
}

// Rename returns a step that renames any of the given alternate
// argument names to the canonical name to. The first alternate that
// is given wins, and all of the alternates are removed.
func Rename(to string, from ...string) Step {
	rn := renaming{to: to, from: from}
	return Step{
		Name:   "rename_args",
		Params: value.Map{strings.Join(from, "|"): to},
		Apply: func(c *Context) error {
			rn.apply(c.Named())
			return nil
		},
	}
}

// diameters maps diameter names onto the radius names they are halved into.
var diameters = []renaming{
	{"r", []string{"diameter", "dia", "d"}},
	{"r1", []string{"diameter1", "diameter_1", "dia1", "dia_1", "d1"}},
	{"r2", []string{"diameter2", "diameter_2", "dia2", "dia_2", "d2"}},
	{"ir", []string{"id", "inner_diameter", "inner_d"}},
	{"ir1", []string{"id1", "inner_diameter_1", "inner_diameter1"}},
	{"ir2", []string{"id2", "inner_diameter_2", "inner_diameter2"}},
}

// innerRadii maps inner radius names onto their circumradius names.
var innerRadii = [][2]string{{"ir", "r"}, {"ir1", "r1"}, {"ir2", "r2"}}

// mapNumber applies fun to a number, or to both ends of a [value.Range].
func mapNumber(v any, fun func(f float64) float64) (any, bool) {
	if rg, ok := v.(value.Range); ok {
		s, sok := value.Float(rg.Start)
		e, eok := value.Float(rg.End)
		if !sok || !eok {
			return nil, false
		}
		return value.Range{Start: fun(s), End: fun(e), Exclusive: rg.Exclusive}, true
	}
	f, ok := value.Float(v)
	if !ok {
		return nil, false
	}
	return fun(f), true
}

// ExpandedNames returns a step that accepts friendlier argument names:
//   - radius names: radius, radius1, radius_1, radius2, radius_2
//   - facets, fragments and sides for $fn
//   - inner radius names: inr, inradius, in_radius, inner_r, inner_radius
//   - width as a diameter, and height or h as heightLabel
//   - diameter names, which are halved into radii, including ranges
//   - inner radii, converted to circumradii using the $fn side count
//   - a radius range, split into r1 and r2
func ExpandedNames(heightLabel string) Step {
	renames := []renaming{
		{"r", []string{"radius"}},
		{"r1", []string{"radius1", "radius_1"}},
		{"r2", []string{"radius2", "radius_2"}},
		{"$fn", []string{"facets", "fragments", "sides"}},
		{"ir", []string{"inr", "inradius", "in_radius", "inner_r", "inner_radius"}},
		{"diameter", []string{"width"}},
		{heightLabel, []string{"height", "h"}},
	}
	return Step{
		Name:   "expanded_names",
		Params: value.Map{"height_label": heightLabel},
		Apply: func(c *Context) error {
			named := c.Named()
			for _, rn := range renames {
				rn.apply(named)
			}
			for _, dm := range diameters {
				for _, k := range dm.from {
					v, ok := named.Get(k)
					if !ok {
						continue
					}
					named.Delete(k)
					half, ok := mapNumber(v, func(f float64) float64 { return f / 2 })
					if !ok {
						return c.Errorf(tree.Validation, "%s must be a number or a range, not %s", k, value.Literal(v))
					}
					named.Set(dm.to, half)
				}
			}
			for _, ir := range innerRadii {
				v, ok := named.Get(ir[0])
				if !ok {
					continue
				}
				sides, ok := named.Get("$fn")
				if !ok || !value.IsNumber(sides) {
					return c.Errorf(tree.MissingParameter, "use of inner radius requires a sides, facets or fragments argument")
				}
				if !value.IsWhole(sides) {
					return c.Errorf(tree.Validation, "sides must be a whole number, not %s", value.Literal(sides))
				}
				n := value.FloatOr(sides, 0)
				if n < 3 {
					return c.Errorf(tree.ConstraintViolation, "sides must be at least 3 to use inner radius, not %s", value.Literal(sides))
				}
				named.Delete(ir[0])
				scale := math.Cos(math.Pi / n)
				circ, ok := mapNumber(v, func(f float64) float64 { return f / scale })
				if !ok {
					return c.Errorf(tree.Validation, "%s must be a number or a range, not %s", ir[0], value.Literal(v))
				}
				named.Set(ir[1], circ)
			}
			if v, _ := named.Get("r"); v != nil {
				if rg, ok := v.(value.Range); ok {
					named.Delete("r")
					named.Set("r1", rg.Start)
					named.Set("r2", rg.End)
				}
			}
			return nil
		},
	}
}

// LayoutDefaults returns a step that adds the current defaults of the
// scope to the call, for each name the call does not already have.
func LayoutDefaults() Step {
	return Step{
		Name: "layout_defaults",
		Apply: func(c *Context) error {
			c.Named().MergeMissing(c.Scope.Defaults(nil, nil))
			return nil
		},
	}
}

// resolutionNames are the special variables that resolution settings
// are passed to the call as. FragmentsPerTurn is passed through
// DegreesPerFragment, which is derived from it.
var resolutionNames = []struct {
	name string
	get  func(r scope.Resolution) float64
}{
	{"$fa", func(r scope.Resolution) float64 { return r.DegreesPerFragment }},
	{"$fs", func(r scope.Resolution) float64 { return r.Minimum }},
	{"$fn", func(r scope.Resolution) float64 { return r.Fragments }},
}

// Resolution returns a step that passes the current resolution of the
// scope to the call as $fa, $fs and $fn, for each setting that differs
// from [scope.DefaultResolution] and is not already given.
func Resolution() Step {
	return Step{
		Name: "resolution",
		Apply: func(c *Context) error {
			res := c.Scope.Resolution(nil, nil)
			named := c.Named()
			for _, rn := range resolutionNames {
				v := rn.get(res)
				if v == rn.get(scope.DefaultResolution) {
					continue
				}
				named.SetMissing(rn.name, v)
			}
			return nil
		},
	}
}

// Rule is a validation rule for one named argument: its value must
// have one of the given types, or be equal to one of the given values.
type Rule struct {
	Name   string
	Types  []value.Type
	Values []any
}

// Types returns a [Rule] that the given argument has one of the given types.
func Types(name string, types ...value.Type) Rule {
	return Rule{Name: name, Types: types}
}

// OneOf returns a [Rule] that the given argument is one of the given values.
func OneOf(name string, values ...any) Rule {
	return Rule{Name: name, Values: values}
}

func (ru Rule) allows(v any) bool {
	t := value.TypeOf(v)
	for _, at := range ru.Types {
		if at == t {
			return true
		}
	}
	lit := value.Literal(v)
	for _, av := range ru.Values {
		if value.TypeOf(av) == t && value.Literal(av) == lit {
			return true
		}
	}
	return false
}

func (ru Rule) String() string {
	var parts []string
	for _, t := range ru.Types {
		parts = append(parts, t.String())
	}
	for _, v := range ru.Values {
		parts = append(parts, value.Literal(v))
	}
	return strings.Join(parts, " or ")
}

// Validate returns a step that checks the given named arguments,
// when present, against their rules.
func Validate(rules ...Rule) Step {
	params := value.Map{}
	for _, ru := range rules {
		params[ru.Name] = ru.String()
	}
	return Step{
		Name:   "validate",
		Params: params,
		Apply: func(c *Context) error {
			named := c.Named()
			for _, ru := range rules {
				v, ok := named.Get(ru.Name)
				if !ok || ru.allows(v) {
					continue
				}
				return c.Errorf(tree.Validation, "argument %s must be %s, not %s", ru.Name, ru, value.Literal(v))
			}
			return nil
		},
	}
}

// Require returns a step that checks that the given named arguments are given.
func Require(names ...string) Step {
	return Step{
		Name:   "require_args",
		Params: value.Map{"names": strings.Join(names, ", ")},
		Apply: func(c *Context) error {
			for _, n := range names {
				if !c.Named().Has(n) {
					return c.Errorf(tree.MissingParameter, "requires argument %s", n)
				}
			}
			return nil
		},
	}
}

// Refuse returns a step that checks that none of the given named
// arguments are given, to catch mistakes like a height for a 2D shape.
func Refuse(names ...string) Step {
	return Step{
		Name:   "refuse_args",
		Params: value.Map{"names": strings.Join(names, ", ")},
		Apply: func(c *Context) error {
			for _, n := range names {
				if c.Named().Has(n) {
					return c.Errorf(tree.Validation, "does not support argument %s", n)
				}
			}
			return nil
		},
	}
}
