// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"math"
	"slices"

	"cogentcore.org/csg/scope"
	"cogentcore.org/csg/tree"
	"cogentcore.org/csg/value"
)

// Rounded are the parameters of a rounded rectangle or
// rounded rectangular prism.
type Rounded struct {

	// Size is the size, as a number for all axes or a vector.
	// Missing axes have a size of 1.
	Size any

	// Center is whether the shape is centered on the origin,
	// instead of having its minimum corner there.
	Center bool

	// CornerRadius is the radius of the rounded corners.
	CornerRadius float64

	// Facets is a fixed number of fragments for the whole shape,
	// or 0 to use the resolution of the scope.
	Facets float64
}

// Cylinder are the parameters of a rounded cylinder.
type Cylinder struct {

	// H is the height.
	H float64

	// R1 and R2 are the bottom and top radii.
	R1, R2 float64

	// Center is whether the cylinder is centered vertically on the origin.
	Center bool

	// CornerRadius is the radius of the rounded edges.
	CornerRadius float64

	// Facets is the number of fragments around the cylinder, or 0
	// to compute it from the smaller radius and the resolution.
	Facets float64
}

// sizeOf returns the size of n axes given as a number or a vector.
func sizeOf(op string, v any, n int) ([]float64, error) {
	size := make([]float64, n)
	if f, ok := value.Float(v); ok {
		for i := range size {
			size[i] = f
		}
		return size, nil
	}
	els, ok := value.Elems(v)
	if !ok && v != nil {
		return nil, tree.Errorf(tree.Validation, op, "size must be a number or a vector, not %s", value.Literal(v))
	}
	for i := range size {
		size[i] = 1
		if i >= len(els) || els[i] == nil {
			continue
		}
		f, ok := value.Float(els[i])
		if !ok {
			return nil, tree.Errorf(tree.Validation, op, "size must only contain numbers, not %s", value.Literal(els[i]))
		}
		size[i] = f
	}
	return size, nil
}

// vec returns a vector of the given numbers, without negative zeros.
func vec(xs ...float64) []any {
	v := make([]any, len(xs))
	for i, x := range xs {
		if x == 0 {
			x = 0
		}
		v[i] = x
	}
	return v
}

// named returns ordered named arguments from name, value pairs.
func named(pairs ...any) *value.Args {
	a := value.NewArgs(nil)
	for i := 0; i+1 < len(pairs); i += 2 {
		a.Set(pairs[i].(string), pairs[i+1])
	}
	return a
}

// quarterFragments returns the number of fragments for a circle of the
// given radius, rounded to a multiple of 4 so that each quadrant of the
// circle has whole fragments.
func quarterFragments(s *scope.Scope, radius float64) float64 {
	return math.Round(s.FragmentCount(radius)/4) * 4
}

// RoundedRectangle records a rectangle with rounded corners, as the union
// of two overlapping rectangles and four corner circles, and returns it
// without adding it to the current list. The corner radius can be at most
// half of the smallest side.
func RoundedRectangle(s *scope.Scope, p Rounded) (tree.Element, error) {
	const op = "rounded_rectangle"
	size, err := sizeOf(op, p.Size, 2)
	if err != nil {
		return tree.Element{}, err
	}
	cr := p.CornerRadius
	if mx := slices.Min(size) / 2; cr > mx {
		return tree.Element{}, tree.Errorf(tree.ConstraintViolation, op, "corner radius %s is too big; the maximum for this rectangle is %s", value.FormatNumber(cr), value.FormatNumber(mx))
	}
	w, h := size[0], size[1]
	cd := cr * 2
	cx, cy := w/2-cr, h/2-cr
	offset := vec(w/2, h/2)
	if p.Center {
		offset = vec(0, 0)
	}
	corners := [][2]float64{{cx, cy}, {cx, -cy}, {-cx, -cy}, {-cx, cy}}

	el := s.Capture(func(s *scope.Scope) {
		s.Resolution(value.Map{"fragments": p.Facets}, func(s *scope.Scope) {
			s.Record("translate", []any{offset}, nil, func(s *scope.Scope) {
				s.Record("union", nil, nil, func(s *scope.Scope) {
					s.RecordArgs("square", []any{vec(w, h-cd)}, named("center", true), nil)
					s.RecordArgs("square", []any{vec(w-cd, h)}, named("center", true), nil)
					s.Preprocessor(true, func(s *scope.Scope) {
						s.Resolution(value.Map{"fragments": quarterFragments(s, cr)}, func(s *scope.Scope) {
							for _, c := range corners {
								s.Record("translate", []any{vec(c[0], c[1])}, nil, func(s *scope.Scope) {
									s.Record("circle", nil, value.Map{"r": cr}, nil)
								})
							}
						})
					})
				})
			})
		})
	})
	if err := s.Err(); err != nil {
		return tree.Element{}, err
	}
	return el, nil
}

// RoundedCylinder records a cylinder with rounded edges, possibly tapered,
// as a rotate extrusion of the hull of its rounded profile, and returns it
// without adding it to the current list. The corner radius can be at most
// the smaller radius.
func RoundedCylinder(s *scope.Scope, p Cylinder) (tree.Element, error) {
	const op = "rounded_cylinder"
	cr, h := p.CornerRadius, p.H
	mr := math.Min(p.R1, p.R2)
	if cr > mr {
		return tree.Element{}, tree.Errorf(tree.ConstraintViolation, op, "corner radius %s is too big; the maximum for this cylinder is %s", value.FormatNumber(cr), value.FormatNumber(mr))
	}
	facets := p.Facets
	if facets == 0 {
		facets = s.FragmentCount(mr)
	}
	z := 0.0
	if p.Center {
		z = -h / 2
	}
	// radius of the wall at each height
	table := [][2]float64{{0, p.R1}, {h, p.R2}}
	// the corner circles touch a tapered wall slightly off their center height
	off := cr * math.Sin(math.Atan2(p.R2-p.R1, h)/2)

	el := s.Capture(func(s *scope.Scope) {
		tr := s.Record("translate", []any{vec(0, 0, z)}, nil, nil)
		ex := s.RecordArgs("rotate_extrude", nil, named("$fn", facets), func(s *scope.Scope) {
			s.Record("hull", nil, nil, func(s *scope.Scope) {
				s.Record("translate", []any{vec(scope.Lookup(h-cr-off, table)-cr, h-cr)}, nil, func(s *scope.Scope) {
					s.RecordArgs("circle", nil, named("r", cr, "$fn", facets), nil)
				})
				s.Record("translate", []any{vec(scope.Lookup(cr-off, table)-cr, cr)}, nil, func(s *scope.Scope) {
					s.RecordArgs("circle", nil, named("r", cr, "$fn", facets), nil)
				})
				s.Record("square", []any{vec(mr-cr, h)}, nil, nil)
			})
		})
		s.Combine(tr, ex)
	})
	if err := s.Err(); err != nil {
		return tree.Element{}, err
	}
	return el, nil
}

// RoundedRectangularPrism records a box with rounded edges and corners,
// as the union of three extruded rounded rectangles, one along each axis,
// and eight corner spheres, and returns it without adding it to the
// current list. The corner radius can be at most half of the smallest side.
func RoundedRectangularPrism(s *scope.Scope, p Rounded) (tree.Element, error) {
	const op = "rounded_rectangular_prism"
	size, err := sizeOf(op, p.Size, 3)
	if err != nil {
		return tree.Element{}, err
	}
	cr := p.CornerRadius
	if mx := slices.Min(size) / 2; cr > mx {
		return tree.Element{}, tree.Errorf(tree.ConstraintViolation, op, "corner radius %s is too big; the maximum for this box is %s", value.FormatNumber(cr), value.FormatNumber(mx))
	}
	sx, sy, sz := size[0], size[1], size[2]
	cd := cr * 2
	offset := vec(sx/2, sy/2, sz/2)
	if p.Center {
		offset = vec(0, 0, 0)
	}
	xr, yr, zr := sx/2-cr, sy/2-cr, sz/2-cr
	var corners [][3]float64
	for _, x := range []float64{xr, -xr} {
		for _, y := range []float64{yr, -yr} {
			for _, z := range []float64{zr, -zr} {
				corners = append(corners, [3]float64{x, y, z})
			}
		}
	}

	// extrude records a rounded rectangle of the given size extruded by height
	extrude := func(s *scope.Scope, height, w, d float64) {
		s.RecordArgs("linear_extrude", nil, named("height", height, "center", true), func(s *scope.Scope) {
			rr, err := RoundedRectangle(s, Rounded{Size: vec(w, d), Center: true, CornerRadius: cr, Facets: p.Facets})
			if err != nil {
				s.Fail(err)
				return
			}
			s.Inject(rr)
		})
	}

	el := s.Capture(func(s *scope.Scope) {
		s.Resolution(value.Map{"fragments": p.Facets}, func(s *scope.Scope) {
			s.Record("union", nil, nil, func(s *scope.Scope) {
				s.Record("translate", []any{offset}, nil, func(s *scope.Scope) {
					extrude(s, sz-cd, sx, sy)
					s.Record("rotate", []any{vec(90, 0, 0)}, nil, func(s *scope.Scope) {
						extrude(s, sy-cd, sx, sz)
					})
					s.Record("rotate", []any{vec(0, 90, 0)}, nil, func(s *scope.Scope) {
						extrude(s, sx-cd, sz, sy)
					})
					s.Preprocessor(true, func(s *scope.Scope) {
						s.Resolution(value.Map{"fragments": quarterFragments(s, cr)}, func(s *scope.Scope) {
							for _, c := range corners {
								s.Record("translate", []any{vec(c[0], c[1], c[2])}, nil, func(s *scope.Scope) {
									cornerSphere(s, cr)
								})
							}
						})
					})
				})
			})
		})
	})
	if err := s.Err(); err != nil {
		return tree.Element{}, err
	}
	return el, nil
}

// cornerSphere records a sphere of the given radius as the rotate
// extrusion of a half circle.
func cornerSphere(s *scope.Scope, r float64) {
	s.Record("rotate_extrude", nil, nil, func(s *scope.Scope) {
		s.Record("intersection", nil, nil, func(s *scope.Scope) {
			s.Record("circle", nil, value.Map{"r": r}, nil)
			s.Record("translate", []any{vec(r, 0, 0)}, nil, func(s *scope.Scope) {
				s.RecordArgs("square", []any{vec(r*2, r*4)}, named("center", true), nil)
			})
		})
	})
}
