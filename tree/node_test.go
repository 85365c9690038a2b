// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/csg/base/errors"
	. "cogentcore.org/csg/tree"
	"cogentcore.org/csg/value"
)

func newCall(a *Arena, l ListID, op string, named value.Map) Element {
	e := a.New(Record{Op: op, Named: value.NewArgs(named)})
	if l != NoList {
		a.Append(l, e.ID())
	}
	return e
}

func TestCombineMoves(t *testing.T) {
	a := NewArena()
	top := a.NewList()
	union := newCall(a, top, "union", nil)
	diff := newCall(a, top, "difference", nil)
	cube := newCall(a, top, "cube", value.Map{"size": 2})

	last, err := Combine(union, cube)
	require.NoError(t, err)
	assert.Equal(t, cube, last)
	assert.Equal(t, []Element{union, diff}, a.Elements(top))
	assert.Equal(t, []Element{cube}, union.Children())
	assert.Equal(t, 0, cube.Index())

	// moving again removes it from the previous parent
	_, err = Combine(diff, cube)
	require.NoError(t, err)
	assert.Equal(t, 0, union.NumChildren())
	assert.Equal(t, []Element{cube}, diff.Children())

	par, ok := Parent(cube)
	assert.True(t, ok)
	assert.Equal(t, diff, par)
	_, ok = Parent(union)
	assert.False(t, ok)
}

func TestCombineChain(t *testing.T) {
	a := NewArena()
	top := a.NewList()
	tr := newCall(a, top, "translate", nil)
	sphere := newCall(a, top, "sphere", nil)
	circle := newCall(a, top, "circle", nil)

	last, err := Combine(tr, []Element{sphere, circle})
	require.NoError(t, err)
	assert.Equal(t, circle, last)
	assert.Equal(t, []Element{sphere, circle}, tr.Children())
	assert.Equal(t, 1, circle.Index())
	assert.Equal(t, []Element{sphere, circle}, circle.Siblings())
}

func TestCombineErrors(t *testing.T) {
	a := NewArena()
	top := a.NewList()
	union := newCall(a, top, "union", nil)
	cube := newCall(a, top, "cube", nil)

	_, err := Combine(union, "cube")
	assert.True(t, errors.Is(err, ErrTypeMismatch))
	_, err = Combine(Element{}, cube)
	assert.True(t, errors.Is(err, ErrTypeMismatch))
	_, err = Combine(union, NewArena().New(Record{Op: "other"}))
	assert.True(t, errors.Is(err, ErrTypeMismatch))

	_, err = Combine(union, cube)
	require.NoError(t, err)
	_, err = Combine(cube, union)
	assert.True(t, errors.Is(err, ErrValidation))
	_, err = Combine(union, union)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestReplace(t *testing.T) {
	a := NewArena()
	top := a.NewList()
	first := newCall(a, top, "circle", nil)
	cube := newCall(a, top, "cube", value.Map{"corner_radius": 1})
	cube.Record().Modifier = Highlight
	last := newCall(a, top, "sphere", nil)

	scratch := a.NewList()
	sub := newCall(a, scratch, "union", nil)
	require.NoError(t, cube.Replace(sub))

	assert.Equal(t, []Element{first, sub, last}, a.Elements(top))
	assert.True(t, cube.IsDetached())
	assert.Empty(t, a.List(scratch))
	assert.Equal(t, Highlight, sub.Record().Modifier)
	assert.Equal(t, 1, sub.Index())

	assert.Error(t, cube.Replace(first))
	assert.True(t, errors.Is(Element{}.Replace(first), ErrTypeMismatch))
}

func TestDetach(t *testing.T) {
	a := NewArena()
	top := a.NewList()
	c := newCall(a, top, "circle", nil)
	assert.False(t, c.IsDetached())
	c.Detach()
	assert.True(t, c.IsDetached())
	assert.Equal(t, -1, c.Index())
	assert.Nil(t, c.Siblings())
	assert.Equal(t, 1, a.NumRecords())
}

func TestRecordString(t *testing.T) {
	a := NewArena()
	e := a.New(Record{Op: "cylinder", Args: []any{10}, Named: value.NewArgs(value.Map{"r": 2.5})})
	assert.Equal(t, "cylinder(10, r: 2.5)", e.String())
	assert.Equal(t, "nil", Element{}.String())

	as := a.New(Record{Kind: Assign, Text: "wall", Value: 2})
	assert.Equal(t, "wall = 2", as.String())
	assert.Equal(t, "%", Background.Prefix())
	assert.Equal(t, "", NoModifier.Prefix())
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Kind: UnknownOperation, Op: "cbue", Suggestion: "cube"}
	assert.Equal(t, `unknown operation in cbue() (did you mean "cube"?)`, err.Error())
	assert.True(t, errors.Is(err, ErrUnknownOperation))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "constraint violation in cube(): too big",
		Errorf(ConstraintViolation, "cube", "too %s", "big").Error())
}
