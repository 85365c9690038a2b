// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value defines the dynamic argument values carried by recorded
// calls, their numeric coercion, and their serialization as literals of
// the OpenSCAD language.
//
// Values are plain Go values held in an any: nil is undef, bools,
// strings, all integer and float kinds are numbers, slices and arrays
// are vectors, and the [Range] and [Expr] types cover ranges and raw
// expressions.
package value

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Map is a set of named values, as supplied by a caller.
// Its iteration order is irrelevant; see [Args] for the
// ordered form stored on records.
type Map map[string]any

// Range is an interval between two values. Exclusive reports
// whether the end value is excluded from the range.
type Range struct {
	Start     any
	End       any
	Exclusive bool
}

// NewRange returns a new inclusive [Range] from start to end.
func NewRange(start, end any) Range {
	return Range{Start: start, End: end}
}

func (r Range) String() string {
	dots := ".."
	if r.Exclusive {
		dots = "..."
	}
	return fmt.Sprintf("%v%s%v", r.Start, dots, r.End)
}

// Expr is a raw expression emitted verbatim, such as a
// special variable like $t.
type Expr string

// Type is the kind of a value, as used for argument validation.
type Type int32

const (
	// Nil is the type of a nil (undef) value.
	Nil Type = iota

	// Number is the type of all Go integer and float values.
	Number

	// Bool is the type of bool values.
	Bool

	// String is the type of string values.
	String

	// Vector is the type of slices and arrays.
	Vector

	// RangeType is the type of [Range] values.
	RangeType

	// ExprType is the type of [Expr] values.
	ExprType

	// Other is the type of any value that can not be represented.
	Other
)

var typeNames = [...]string{"undef", "number", "bool", "string", "vector", "range", "expression", "other"}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int32(t))
	}
	return typeNames[t]
}

// TypeOf returns the [Type] of the given value.
func TypeOf(v any) Type {
	switch v.(type) {
	case nil:
		return Nil
	case bool:
		return Bool
	case string:
		return String
	case Range:
		return RangeType
	case Expr:
		return ExprType
	}
	if _, ok := Float(v); ok {
		return Number
	}
	if _, ok := Elems(v); ok {
		return Vector
	}
	return Other
}

// IsNumber returns whether the given value is a number.
func IsNumber(v any) bool {
	_, ok := Float(v)
	return ok
}

func num[T constraints.Integer | constraints.Float](x T) float64 {
	return float64(x)
}

// Float returns the given value as a float64 if it is any Go
// integer or float kind, and false otherwise.
func Float(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return num(x), true
	case int:
		return num(x), true
	case int8:
		return num(x), true
	case int16:
		return num(x), true
	case int32:
		return num(x), true
	case int64:
		return num(x), true
	case uint:
		return num(x), true
	case uint8:
		return num(x), true
	case uint16:
		return num(x), true
	case uint32:
		return num(x), true
	case uint64:
		return num(x), true
	case uintptr:
		return num(x), true
	}
	return 0, false
}

// FloatOr returns the given value as a float64, or def if it is not a number.
func FloatOr(v any, def float64) float64 {
	if f, ok := Float(v); ok {
		return f
	}
	return def
}

// IsWhole returns whether the given value is a number with no fractional part.
func IsWhole(v any) bool {
	f, ok := Float(v)
	return ok && f == float64(int64(f))
}

// Elems returns the elements of the given value if it is a
// slice or array, and false otherwise.
func Elems(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case string, nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	res := make([]any, rv.Len())
	for i := range res {
		res[i] = rv.Index(i).Interface()
	}
	return res, true
}

// Floats returns the elements of the given vector as float64 values.
// It returns false if the value is not a vector of numbers.
func Floats(v any) ([]float64, bool) {
	el, ok := Elems(v)
	if !ok {
		return nil, false
	}
	res := make([]float64, len(el))
	for i, e := range el {
		f, ok := Float(e)
		if !ok {
			return nil, false
		}
		res[i] = f
	}
	return res, true
}

// Truthy returns whether the given value counts as set: it is false for
// nil, false, and empty strings, and true otherwise.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	return true
}
