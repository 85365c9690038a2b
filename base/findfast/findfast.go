// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package findfast implements an optimized bidirectional slice searching
// algorithm that can save a lot of time if you have some rough idea
// as to where an item might be, such as its index the last time it
// was looked up.
package findfast

// Find returns the index of the given value in the given slice,
// searching outward from the optional starting index. See [FindFunc].
// Returns -1 if not found.
func Find[T comparable](s []T, v T, startIndex ...int) int {
	return FindFunc(s, func(e T) bool { return e == v }, startIndex...)
}

// FindFunc returns index of item in slice that matches target
// according to given match function, using the given optional
// starting index to optimize the search by searching bidirectionally
// outward from given index. If no starting index is given, the
// search starts in the middle. Returns -1 if not found.
func FindFunc[T any](s []T, match func(e T) bool, startIndex ...int) int {
	n := len(s)
	if n == 0 {
		return -1
	}
	si := -1
	if len(startIndex) > 0 {
		si = startIndex[0]
	}
	if si < 0 {
		si = n / 2
	}
	if si == 0 {
		for idx, e := range s {
			if match(e) {
				return idx
			}
		}
		return -1
	}
	if si >= n {
		si = n - 1
	}
	up, down := si+1, si
	for up < n || down >= 0 {
		if down >= 0 {
			if match(s[down]) {
				return down
			}
			down--
		}
		if up < n {
			if match(s[up]) {
				return up
			}
			up++
		}
	}
	return -1
}
