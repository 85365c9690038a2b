// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "fmt"

// Combinable is implemented by values that can be combined
// into the tree with [Combine].
type Combinable interface {

	// AsElement returns the [Element] of this value.
	AsElement() Element
}

// Element is a handle on one [Record] in an [Arena]. It is a small
// value type; copies refer to the same record. The zero Element is
// invalid and refers to no record.
type Element struct {
	arena *Arena
	id    ID
}

// AsElement implements [Combinable].
func (e Element) AsElement() Element {
	return e
}

// IsValid returns whether the element refers to a record.
func (e Element) IsValid() bool {
	return e.arena != nil && e.arena.valid(e.id)
}

// Arena returns the arena that owns the element's record.
func (e Element) Arena() *Arena {
	return e.arena
}

// ID returns the id of the element's record in its arena.
func (e Element) ID() ID {
	return e.id
}

// Record returns the element's record, which may be modified in place.
// It returns nil for an invalid element.
func (e Element) Record() *Record {
	if !e.IsValid() {
		return nil
	}
	return &e.arena.records[e.id]
}

// List returns the list the element currently lives in,
// or [NoList] if it is detached.
func (e Element) List() ListID {
	if !e.IsValid() {
		return NoList
	}
	return e.arena.in[e.id]
}

// IsDetached returns whether the element is in no list.
func (e Element) IsDetached() bool {
	return e.List() == NoList
}

// Index returns the position of the element within its siblings,
// or -1 if it is detached.
func (e Element) Index() int {
	if !e.IsValid() {
		return -1
	}
	return e.arena.index(e.id)
}

// Siblings returns all of the elements in the list the element
// lives in, including itself.
func (e Element) Siblings() []Element {
	if e.IsDetached() {
		return nil
	}
	return e.arena.Elements(e.List())
}

// Children returns the children of the element, in order.
func (e Element) Children() []Element {
	if !e.IsValid() {
		return nil
	}
	return e.arena.Elements(e.arena.kids[e.id])
}

// NumChildren returns the number of children of the element.
func (e Element) NumChildren() int {
	if !e.IsValid() {
		return 0
	}
	return len(e.arena.List(e.arena.kids[e.id]))
}

// ChildList returns the list holding the children of the element,
// creating it if it does not exist yet.
func (e Element) ChildList() ListID {
	return e.arena.children(e.id)
}

// Detach removes the element from the list it lives in.
// The record stays in the arena and can be attached again.
func (e Element) Detach() {
	if e.IsValid() {
		e.arena.detach(e.id)
	}
}

// Replace puts the given element at the position of this element,
// detaching this element. The replacement is moved from wherever it
// was before. If the replacement has no modifier, it takes the
// modifier of this element.
func (e Element) Replace(with Element) error {
	if !e.IsValid() || !with.IsValid() || with.arena != e.arena {
		return Errorf(TypeMismatch, e.op(), "can only replace an element with another element of the same tree")
	}
	if with.id == e.id {
		return nil
	}
	l := e.List()
	if l == NoList {
		return Errorf(Validation, e.op(), "can not replace a detached element")
	}
	if with.arena.isAncestor(with.id, e.id) {
		return Errorf(Validation, e.op(), "can not replace an element with one of its ancestors")
	}
	with.Detach()
	idx := e.Index()
	e.arena.detach(e.id)
	e.arena.insert(l, idx, with.id)
	if r := with.Record(); r.Modifier == NoModifier {
		r.Modifier = e.Record().Modifier
	}
	return nil
}

// op returns the operation name of the element for error messages.
func (e Element) op() string {
	if r := e.Record(); r != nil {
		return r.Op
	}
	return ""
}

// String returns the record of the element as op(args, name: value).
func (e Element) String() string {
	r := e.Record()
	if r == nil {
		return "nil"
	}
	return r.String()
}

// Combine moves each of the given items to the end of the children of
// target, removing it from wherever it was before: combining is always
// a move, never a copy. Each item must be [Combinable], or a slice of
// elements. It returns the last item combined, so that combinations
// can be chained.
func Combine(target Element, items ...any) (Element, error) {
	if !target.IsValid() {
		return Element{}, Errorf(TypeMismatch, "", "can only combine into a valid element")
	}
	var flat []Element
	for _, it := range items {
		switch x := it.(type) {
		case []Element:
			flat = append(flat, x...)
		case Combinable:
			flat = append(flat, x.AsElement())
		default:
			return Element{}, Errorf(TypeMismatch, target.op(), "can not combine %T into the tree; it is not an element", it)
		}
	}
	var last Element
	for _, el := range flat {
		if !el.IsValid() || el.arena != target.arena {
			return Element{}, Errorf(TypeMismatch, target.op(), "can only combine elements of the same tree")
		}
		if target.arena.isAncestor(el.id, target.id) {
			return Element{}, Errorf(Validation, target.op(), "can not combine %s into itself", el)
		}
		target.arena.Append(target.ChildList(), el.id)
		last = el
	}
	return last, nil
}

// GoString returns a debugging representation of the element and its id.
func (e Element) GoString() string {
	return fmt.Sprintf("tree.Element{%d: %s}", e.id, e.String())
}
