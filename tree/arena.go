// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"slices"

	"cogentcore.org/csg/base/findfast"
)

// ID is the index of a [Record] in its [Arena].
type ID int32

// ListID is the index of an ordered list of record ids in an [Arena].
// Every call record has its own list of children, and every open
// construction scope accumulates into a list.
type ListID int32

// NoList is the [ListID] of a detached record, which is in no list.
const NoList ListID = -1

// Arena owns all of the records of a model and all of the lists
// that order them. A record appears in at most one list at a time.
// The zero value is not usable; use [NewArena].
type Arena struct {
	records []Record

	// in is the list that each record is currently in.
	in []ListID

	// kids is the children list of each record, or NoList if none
	// has been needed yet.
	kids []ListID

	// lists are the ordered lists of record ids.
	lists [][]ID

	// hints are the last known index of each record in its list,
	// used as the starting point for finding it again.
	hints []int
}

// NewArena returns a new empty [Arena].
func NewArena() *Arena {
	return &Arena{}
}

// NewList adds a new empty list to the arena and returns its id.
func (a *Arena) NewList() ListID {
	a.lists = append(a.lists, nil)
	return ListID(len(a.lists) - 1)
}

// List returns the ids in the given list. The result must not be modified.
func (a *Arena) List(l ListID) []ID {
	if l < 0 || int(l) >= len(a.lists) {
		return nil
	}
	return a.lists[l]
}

// Elements returns handles for all of the records in the given list.
func (a *Arena) Elements(l ListID) []Element {
	ids := a.List(l)
	res := make([]Element, len(ids))
	for i, id := range ids {
		res[i] = Element{arena: a, id: id}
	}
	return res
}

// NumRecords returns the total number of records ever created in the arena,
// including detached ones.
func (a *Arena) NumRecords() int {
	return len(a.records)
}

// New adds the given record to the arena as a detached record
// and returns its [Element].
func (a *Arena) New(r Record) Element {
	a.records = append(a.records, r)
	a.in = append(a.in, NoList)
	a.kids = append(a.kids, NoList)
	a.hints = append(a.hints, 0)
	return Element{arena: a, id: ID(len(a.records) - 1)}
}

// valid returns whether the given id is a record of this arena.
func (a *Arena) valid(id ID) bool {
	return id >= 0 && int(id) < len(a.records)
}

// SetChildren sets the children list of the given record to the given list,
// which must not be the children list of another record. The previous
// children list of the record, if any, is left orphaned.
func (a *Arena) SetChildren(id ID, l ListID) {
	a.kids[id] = l
	for i, c := range a.lists[l] {
		a.in[c] = l
		a.hints[c] = i
	}
}

// children returns the children list of the given record,
// creating it if needed.
func (a *Arena) children(id ID) ListID {
	if a.kids[id] == NoList {
		a.kids[id] = a.NewList()
	}
	return a.kids[id]
}

// index returns the index of the given record in its list, or -1.
func (a *Arena) index(id ID) int {
	l := a.in[id]
	if l == NoList {
		return -1
	}
	idx := findfast.Find(a.lists[l], id, a.hints[id])
	if idx >= 0 {
		a.hints[id] = idx
	}
	return idx
}

// detach removes the given record from the list it is in, if any.
func (a *Arena) detach(id ID) {
	idx := a.index(id)
	if idx < 0 {
		return
	}
	l := a.in[id]
	a.lists[l] = slices.Delete(a.lists[l], idx, idx+1)
	a.in[id] = NoList
}

// Append moves the given record to the end of the given list,
// removing it from the list it was in before.
func (a *Arena) Append(l ListID, id ID) {
	a.detach(id)
	a.lists[l] = append(a.lists[l], id)
	a.in[id] = l
	a.hints[id] = len(a.lists[l]) - 1
}

// insert moves the given record to the given index of the given list,
// removing it from the list it was in before.
func (a *Arena) insert(l ListID, idx int, id ID) {
	a.detach(id)
	a.lists[l] = slices.Insert(a.lists[l], idx, id)
	a.in[id] = l
	a.hints[id] = idx
}

// isAncestor returns whether the record anc contains id somewhere
// in its subtree, or is id itself.
func (a *Arena) isAncestor(anc, id ID) bool {
	if anc == id {
		return true
	}
	l := a.kids[anc]
	if l == NoList {
		return false
	}
	for _, c := range a.lists[l] {
		if a.isAncestor(c, id) {
			return true
		}
	}
	return false
}
