// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scope

import (
	"slices"
	"sort"
)

// Lookup looks up the given key in the given table of key, value pairs,
// linearly interpolating the value between the two nearest keys when there
// is no exact match. Keys outside of the range of the table are clamped to
// the value at the first or last key. The table does not need to be sorted,
// and is not modified. An empty table gives 0.
func Lookup(key float64, table [][2]float64) float64 {
	if len(table) == 0 {
		return 0
	}
	t := slices.Clone(table)
	slices.SortStableFunc(t, func(a, b [2]float64) int {
		switch {
		case a[0] < b[0]:
			return -1
		case a[0] > b[0]:
			return 1
		}
		return 0
	})
	if key <= t[0][0] {
		return t[0][1]
	}
	last := t[len(t)-1]
	if key >= last[0] {
		return last[1]
	}
	bi := sort.Search(len(t), func(i int) bool { return t[i][0] >= key })
	b := t[bi]
	if b[0] == key {
		return b[1]
	}
	a := t[bi-1]
	p := (key - a[0]) / (b[0] - a[0])
	return a[1] + (b[1]-a[1])*p
}
