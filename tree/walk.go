// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// Walk calls the given function on each of the given elements and
// all of their descendants, depth first and in order, with the depth of
// each element relative to the given ones. Returning [Break] from the
// function stops walking that element's children.
func Walk(elements []Element, fun func(e Element, depth int) bool) {
	walk(elements, 0, fun)
}

func walk(elements []Element, depth int, fun func(e Element, depth int) bool) {
	for _, e := range elements {
		if fun(e, depth) {
			walk(e.Children(), depth+1, fun)
		}
	}
}

// Parent returns the element whose children list contains the given
// element, and false if the element is at the top level of a scope
// or detached.
func Parent(e Element) (Element, bool) {
	l := e.List()
	if l == NoList {
		return Element{}, false
	}
	for id, kl := range e.arena.kids {
		if kl == l {
			return Element{arena: e.arena, id: ID(id)}, true
		}
	}
	return Element{}, false
}
