// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapes provides the standard OpenSCAD operation table, with
// rounded variants of cube, cylinder and square synthesized from
// primitive operations, and named regular polygons and prisms.
package shapes

import (
	"log/slog"
	"strings"

	"cogentcore.org/csg/filter"
	"cogentcore.org/csg/tree"
	"cogentcore.org/csg/value"
)

// Polygons are the names of regular polygons and their numbers of sides.
var Polygons = []struct {
	Name  string
	Sides int
}{
	{"triangle", 3},
	{"equilateral_triangle", 3},
	{"pentagon", 5},
	{"hexagon", 6},
	{"heptagon", 7},
	{"octagon", 8},
	{"nonagon", 9},
	{"enneagon", 9},
	{"decagon", 10},
	{"hendecagon", 11},
	{"undecagon", 11},
	{"dodecagon", 12},
	{"tridecagon", 13},
	{"tetradecagon", 14},
	{"pentadecagon", 15},
	{"hexadecagon", 16},
	{"heptadecagon", 17},
	{"octadecagon", 18},
	{"enneadecagon", 19},
	{"icosagon", 20},
	{"triacontagon", 30},
	{"tetracontagon", 40},
	{"pentacontagon", 50},
	{"hexacontagon", 60},
	{"heptacontagon", 70},
	{"octacontagon", 80},
	{"enneacontagon", 90},
	{"hectogon", 100},
}

// Standard returns a new registry of the standard operations.
func Standard() *filter.Registry {
	return Register(filter.NewBuilder()).Build()
}

// Register registers the standard operations with the given builder,
// and returns it so that more can be added.
func Register(b *filter.Builder) *filter.Builder {
	b.DefaultFilters(filter.XYZ(0, "", true))
	b.Passthrough("rotate", "translate", "mirror", "resize")
	b.DefaultFilters(filter.XYZ(1, "", true))
	b.Passthrough("scale")

	b.DefaultFilters()
	b.Passthrough("multmatrix", "color")

	b.DefaultFilters(filter.Resolution(), filter.LayoutDefaults(), filter.ExpandedNames("h"))

	b.Filter(filter.XYZ(1, "", true))
	b.Filter(filter.Rename("corner_radius", "r", "cr", "corner_r"))
	b.Filter(filter.Validate(
		filter.Types("size", value.Vector, value.Number),
		filter.OneOf("center", true, false),
		filter.Types("corner_radius", value.Number)))
	b.Define("cube", cubeProcessor)

	b.Filter(filter.Rename("corner_radius", "cr", "corner_r"))
	b.Filter(filter.Validate(
		filter.Types("h", value.Number),
		filter.Types("r1", value.Number, value.Nil),
		filter.Types("r2", value.Number, value.Nil),
		filter.Types("r", value.Number, value.Nil),
		filter.OneOf("center", true, false),
		filter.Types("corner_radius", value.Number)))
	b.Define("cylinder", cylinderProcessor)

	b.Passthrough("sphere")
	b.Passthrough("polyhedron")

	b.Filter(filter.XYZ(1, "size", false))
	b.Filter(filter.Rename("corner_radius", "r", "cr", "corner_r"))
	b.Filter(filter.Validate(
		filter.Types("size", value.Vector, value.Number),
		filter.OneOf("center", true, false),
		filter.Types("corner_radius", value.Number)))
	b.Define("square", squareProcessor)

	b.Filter(filter.Refuse("h"))
	b.Passthrough("circle")
	b.Filter(filter.Refuse("h"))
	b.Passthrough("polygon")

	b.Filter(filter.ExpandedNames("height"))
	b.Passthrough("linear_extrude")
	b.Passthrough("rotate_extrude")

	b.DefaultFilters()
	b.Passthrough("minkowski", "hull", "import", "import_dxf", "projection")
	b.Passthrough("union", "difference", "intersection", "render")

	for _, p := range Polygons {
		b.Alias(p.Name, "circle", value.Map{"sides": p.Sides})
	}
	b.Alias("ngon", "circle", value.Map{"sides": 3})
	b.Alias("prism", "cylinder", value.Map{"sides": 3})
	b.Alias("triangular_prism", "cylinder", value.Map{"sides": 3})
	for _, p := range Polygons {
		if strings.HasSuffix(p.Name, "gon") {
			b.Alias(p.Name+"al_prism", "cylinder", value.Map{"sides": p.Sides})
		}
	}
	return b
}

// facets returns the fixed number of fragments of the call, or 0.
func facets(c *filter.Context) float64 {
	v, _ := c.Named().Get("$fn")
	return value.FloatOr(v, 0)
}

// cornerRadius returns the corner radius of the call. A corner radius
// of 0 is removed from the call, as it has no meaning downstream.
func cornerRadius(c *filter.Context, args value.Map) (float64, error) {
	cr := value.FloatOr(args["corner_radius"], 0)
	if cr < 0 {
		return 0, c.Errorf(tree.ConstraintViolation, "corner radius must not be negative, not %s", value.FormatNumber(cr))
	}
	if cr == 0 {
		if v, ok := c.Named().Delete("corner_radius"); ok {
			slog.Debug("corner radius ignored", "op", c.Op, "value", v)
		}
	}
	return cr, nil
}

var cubeProcessor = filter.Processor{
	Params:   []string{"size", "center", "corner_radius"},
	Defaults: value.Map{"size": vec(1, 1, 1), "center": false, "corner_radius": 0},
	Run: func(c *filter.Context, args value.Map) (tree.Element, error) {
		cr, err := cornerRadius(c, args)
		if err != nil || cr == 0 {
			return tree.Element{}, err
		}
		return RoundedRectangularPrism(c.Scope, Rounded{
			Size:         args["size"],
			Center:       value.Truthy(args["center"]),
			CornerRadius: cr,
			Facets:       facets(c),
		})
	},
}

var cylinderProcessor = filter.Processor{
	Params:   []string{"h", "r1", "r2", "r", "center", "corner_radius"},
	Defaults: value.Map{"h": 1, "center": false, "corner_radius": 0},
	Run: func(c *filter.Context, args value.Map) (tree.Element, error) {
		cr, err := cornerRadius(c, args)
		if err != nil || cr == 0 {
			return tree.Element{}, err
		}
		r := value.FloatOr(args["r"], 1)
		return RoundedCylinder(c.Scope, Cylinder{
			H:            value.FloatOr(args["h"], 1),
			R1:           value.FloatOr(args["r1"], r),
			R2:           value.FloatOr(args["r2"], r),
			Center:       value.Truthy(args["center"]),
			CornerRadius: cr,
			Facets:       facets(c),
		})
	},
}

var squareProcessor = filter.Processor{
	Params:   []string{"size", "center", "corner_radius"},
	Defaults: value.Map{"size": vec(1, 1), "center": false, "corner_radius": 0},
	Run: func(c *filter.Context, args value.Map) (tree.Element, error) {
		cr, err := cornerRadius(c, args)
		if err != nil || cr == 0 {
			return tree.Element{}, err
		}
		return RoundedRectangle(c.Scope, Rounded{
			Size:         args["size"],
			Center:       value.Truthy(args["center"]),
			CornerRadius: cr,
			Facets:       facets(c),
		})
	},
}
