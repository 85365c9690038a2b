// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the tree of recorded calls that describes a
// constructive solid geometry model. All records live in one [Arena];
// an [Element] is a handle on one record, and children are ordered
// lists of record ids, so moving a node to a new parent never copies it.
package tree

import (
	"strings"

	"cogentcore.org/csg/value"
)

// Kind is the kind of statement a [Record] represents.
type Kind int32

const (
	// Call is an operation call, like cube(size = 2);
	Call Kind = iota

	// Comment is a block comment.
	Comment

	// Include is an include <path>; statement, which
	// references and executes the content of a file.
	Include

	// Use is a use <path>; statement, which only
	// references the content of a file.
	Use

	// Assign is a name = value; statement.
	Assign
)

var kindNames = [...]string{"call", "comment", "include", "use", "assign"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Modifier is a rendering hint that affects how a node is
// displayed, not how it is computed.
type Modifier int32

const (
	// NoModifier is the absence of a modifier.
	NoModifier Modifier = iota

	// Background renders the node transparently, without
	// including it in the model (%).
	Background

	// Highlight renders the node highlighted, while still
	// including it in the model (#).
	Highlight

	// RootOnly renders only this node, ignoring the rest
	// of the model (!).
	RootOnly
)

// Prefix returns the one-character prefix of the modifier,
// or an empty string for [NoModifier].
func (m Modifier) Prefix() string {
	switch m {
	case Background:
		return "%"
	case Highlight:
		return "#"
	case RootOnly:
		return "!"
	}
	return ""
}

func (m Modifier) String() string {
	switch m {
	case Background:
		return "background"
	case Highlight:
		return "highlight"
	case RootOnly:
		return "root"
	}
	return "none"
}

// Record is the data of one recorded statement. Its children are
// held by the [Arena], not the record itself.
type Record struct {

	// Kind is the kind of statement.
	Kind Kind

	// Op is the operation name of a [Call].
	Op string

	// Args are the positional arguments of a [Call].
	Args []any

	// Named are the named arguments of a [Call].
	Named *value.Args

	// Modifier is the rendering modifier of a [Call].
	Modifier Modifier

	// Text is the comment text of a [Comment], the path of an
	// [Include] or [Use], or the variable name of an [Assign].
	Text string

	// Value is the assigned value of an [Assign].
	Value any
}

// String returns the record as op(args, name: value) for calls,
// and a short description otherwise.
func (r *Record) String() string {
	switch r.Kind {
	case Call:
		parts := make([]string, 0, len(r.Args)+r.Named.Len())
		for _, a := range r.Args {
			parts = append(parts, value.Literal(a))
		}
		if r.Named.Len() > 0 {
			parts = append(parts, r.Named.String())
		}
		return r.Op + "(" + strings.Join(parts, ", ") + ")"
	case Assign:
		return r.Text + " = " + value.Literal(r.Value)
	}
	return r.Kind.String() + " " + r.Text
}
