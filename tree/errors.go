// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "fmt"

// ErrorKind is the kind of a build failure. All kinds are fatal
// to the build in which they occur.
type ErrorKind int32

const (
	// Validation is an argument type or shape mismatch.
	Validation ErrorKind = iota + 1

	// MissingParameter is a required argument that is absent.
	MissingParameter

	// ConstraintViolation is a set of arguments that can not produce
	// a shape, such as a corner radius larger than half the smallest size.
	ConstraintViolation

	// UnknownOperation is an operation name that is not registered.
	UnknownOperation

	// TypeMismatch is an attempt to combine a value into the tree
	// that can not be combined.
	TypeMismatch
)

var errorKindNames = map[ErrorKind]string{
	Validation:          "validation error",
	MissingParameter:    "missing parameter",
	ConstraintViolation: "constraint violation",
	UnknownOperation:    "unknown operation",
	TypeMismatch:        "type mismatch",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int32(k))
}

// Error is a build failure of a given [ErrorKind], optionally
// attributed to an operation.
type Error struct {
	Kind ErrorKind

	// Op is the operation that failed, if known.
	Op string

	// Msg describes the failure.
	Msg string

	// Suggestion is the closest known operation name, for
	// [UnknownOperation] failures.
	Suggestion string
}

// Sentinel errors for matching with errors.Is against the kind
// of an [*Error].
var (
	ErrValidation          = &Error{Kind: Validation}
	ErrMissingParameter    = &Error{Kind: MissingParameter}
	ErrConstraintViolation = &Error{Kind: ConstraintViolation}
	ErrUnknownOperation    = &Error{Kind: UnknownOperation}
	ErrTypeMismatch        = &Error{Kind: TypeMismatch}
)

// Errorf returns a new [*Error] of the given kind for the given operation,
// with a message formatted from the given format and arguments.
func Errorf(kind ErrorKind, op string, format string, a ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, a...)}
}

func (e *Error) Error() string {
	res := e.Kind.String()
	if e.Op != "" {
		res += " in " + e.Op + "()"
	}
	if e.Msg != "" {
		res += ": " + e.Msg
	}
	if e.Suggestion != "" {
		res += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return res
}

// Is reports whether the target is an [*Error] of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
